package http

import (
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
)

type (
	loginIn struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	SessionOut struct {
		Role         string                                    `json:"role"`
		UserID       *string                                   `json:"userId,omitempty"`
		Capabilities map[permission.Resource]permission.Access `json:"capabilities"`
	}
)

func newSessionOut(principal auth.Principal) SessionOut {
	return SessionOut{
		Role:         principal.Role.String(),
		UserID:       principal.UserID,
		Capabilities: permission.Capabilities(principal.Role),
	}
}
