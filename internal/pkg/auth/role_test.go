package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
)

func TestParseRole_Returns(t *testing.T) {
	tests := []struct {
		value    string
		expected auth.Role
	}{
		{value: "superAdmin", expected: auth.RoleSuperAdmin},
		{value: "admin", expected: auth.RoleAdmin},
		{value: " manager ", expected: auth.RoleManager},
		{value: "user", expected: auth.RoleUser},
		{value: "guest", expected: auth.RoleNone},
		{value: "Admin", expected: auth.RoleNone},
		{value: "", expected: auth.RoleNone},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			role := auth.ParseRole(tc.value)
			assert.Equal(t, tc.expected, role)
			assert.Equal(t, tc.expected != auth.RoleNone, role.Known())
		})
	}
}
