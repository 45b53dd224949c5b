package auth

import "strings"

const (
	RoleNone       Role = ""
	RoleSuperAdmin Role = "superAdmin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleUser       Role = "user"
)

type Role string

var knownRoles = map[Role]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
	RoleManager:    {},
	RoleUser:       {},
}

// ParseRole returns RoleNone for anything but the four known roles, matching is case-sensitive.
func ParseRole(value string) Role {
	role := Role(strings.TrimSpace(value))
	if _, ok := knownRoles[role]; !ok {
		return RoleNone
	}

	return role
}

func (r Role) Known() bool {
	_, ok := knownRoles[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}
