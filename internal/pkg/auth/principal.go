package auth

import (
	"github.com/klwxsrx/store-dashboard/pkg/auth"
)

const PrincipalTypeDashboardUser auth.PrincipalType = "dashboardUser"

type (
	// Principal is the dashboard user recovered from a session,
	// LoginToken authorizes its calls to the backend.
	Principal struct {
		Role       Role
		UserID     *string
		LoginToken string
	}

	SessionToken struct {
		Value string
	}
)

func (p Principal) Type() auth.PrincipalType {
	return PrincipalTypeDashboardUser
}

func (p Principal) ID() *string {
	return p.UserID
}

func (t SessionToken) Type() auth.PrincipalType {
	return PrincipalTypeDashboardUser
}
