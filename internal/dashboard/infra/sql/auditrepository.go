package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/audit"
	pkgsql "github.com/klwxsrx/store-dashboard/pkg/sql"
)

const auditTable = "session_audit"

type auditRepository struct {
	db pkgsql.Client
}

func NewAuditRepository(db pkgsql.Client) audit.Repository {
	return auditRepository{db: db}
}

func (r auditRepository) Store(ctx context.Context, event audit.Event) error {
	query, args, err := sq.
		Insert(auditTable).
		Columns("id", "type", "user_id", "role", "request_id", "occurred_at").
		Values(event.ID, string(event.Type), event.UserID, event.Role, event.RequestID, event.OccurredAt.UTC()).
		Suffix("on conflict (id) do nothing").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r auditRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := sq.
		Delete(auditTable).
		Where(sq.Lt{"occurred_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
