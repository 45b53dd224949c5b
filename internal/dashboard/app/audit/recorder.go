//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Recorder=Recorder"
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/observability"
	"github.com/klwxsrx/store-dashboard/pkg/persistence"
	pkgtime "github.com/klwxsrx/store-dashboard/pkg/time"
)

const retentionLockName = "session_audit_retention"

type (
	// Recorder never fails the audited operation, storage errors are logged.
	Recorder interface {
		Record(ctx context.Context, eventType EventType, subject Subject)
		Purge(ctx context.Context, maxAge time.Duration) error
	}

	Subject struct {
		UserID *string
		Role   string
	}

	recorder struct {
		repo        Repository
		transaction persistence.Transaction
		clock       pkgtime.Clock
		observer    observability.Observer
		logger      log.Logger
	}

	nopRecorder struct{}
)

func NewRecorder(
	repo Repository,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
	observer observability.Observer,
	logger log.Logger,
) Recorder {
	return recorder{
		repo:        repo,
		transaction: transaction,
		clock:       clock,
		observer:    observer,
		logger:      logger,
	}
}

func NewNopRecorder() Recorder {
	return nopRecorder{}
}

func (r recorder) Record(ctx context.Context, eventType EventType, subject Subject) {
	event := Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     subject.UserID,
		Role:       subject.Role,
		OccurredAt: r.clock.Now(ctx),
	}
	if requestID, ok := r.observer.RequestID(ctx); ok {
		event.RequestID = &requestID
	}

	err := r.repo.Store(ctx, event)
	if err != nil {
		r.logger.
			WithError(err).
			WithField("auditEvent", string(eventType)).
			Warn(ctx, "failed to store audit event")
	}
}

func (r recorder) Purge(ctx context.Context, maxAge time.Duration) error {
	before := r.clock.Now(ctx).Add(-maxAge)

	var deleted int64
	err := r.transaction.Execute(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = r.repo.DeleteBefore(ctx, before)
		return err
	}, retentionLockName)
	if err != nil {
		return fmt.Errorf("purge audit events: %w", err)
	}

	if deleted > 0 {
		r.logger.WithField("deleted", deleted).Info(ctx, "audit events purged")
	}
	return nil
}

func (nopRecorder) Record(context.Context, EventType, Subject) {}

func (nopRecorder) Purge(context.Context, time.Duration) error {
	return nil
}
