package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/store-dashboard/pkg/log"
)

// ReportPanic expects the result of recover() called by the deferred caller.
func ReportPanic(ctx context.Context, logger log.Logger, msg any) (panicCaught bool) {
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
