package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run stops every job as soon as one of them returns, the first error wins.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.ContextJob) worker.ContextJob {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	group := worker.NewFailFastGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(job))
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
