//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Repository=Repository"
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventLoginSucceeded  EventType = "login_succeeded"
	EventLoginFailed     EventType = "login_failed"
	EventLogout          EventType = "logout"
	EventSessionRejected EventType = "session_rejected"
)

type (
	EventType string

	Event struct {
		ID         uuid.UUID
		Type       EventType
		UserID     *string
		Role       string
		RequestID  *string
		OccurredAt time.Time
	}

	Repository interface {
		Store(context.Context, Event) error
		DeleteBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
