package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
)

func TestParse_Returns(t *testing.T) {
	userID := "u9"
	tests := []struct {
		name     string
		plain    string
		expected session.Credential
		role     auth.Role
	}{
		{
			name:     "full_credential",
			plain:    `{"tokens":"tok-1","role":"manager","userId":"u9"}`,
			expected: session.Credential{Tokens: "tok-1", Role: "manager", UserID: &userID},
			role:     auth.RoleManager,
		},
		{
			name:     "without_user_id",
			plain:    `{"tokens":"tok-2","role":"superAdmin"}`,
			expected: session.Credential{Tokens: "tok-2", Role: "superAdmin"},
			role:     auth.RoleSuperAdmin,
		},
		{
			name:     "unknown_role_is_kept",
			plain:    `{"tokens":"tok-3","role":"guest"}`,
			expected: session.Credential{Tokens: "tok-3", Role: "guest"},
			role:     auth.RoleNone,
		},
		{
			name:     "missing_fields",
			plain:    `{}`,
			expected: session.Credential{},
			role:     auth.RoleNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := session.Parse(tc.plain)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
			assert.Equal(t, tc.role, c.EffectiveRole())
		})
	}
}

func TestParse_ReturnsErrorForMalformedJSON(t *testing.T) {
	for _, plain := range []string{"", "not json", `{"tokens":1}`, `{"tokens":"a"`} {
		_, err := session.Parse(plain)
		assert.ErrorIs(t, err, session.ErrMalformedCredential, plain)
	}
}

func TestSerialize_ReturnsCompactJSONInFieldOrder(t *testing.T) {
	userID := "u9"

	plain, err := session.Serialize(session.Credential{Tokens: "tok-1", Role: "manager", UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, `{"tokens":"tok-1","role":"manager","userId":"u9"}`, plain)

	plain, err = session.Serialize(session.Credential{Tokens: "tok-1", Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, `{"tokens":"tok-1","role":"user"}`, plain)
}

func TestCredential_Principal_UsesEffectiveRole(t *testing.T) {
	principal := session.Credential{Tokens: "tok", Role: "guest"}.Principal()

	assert.Equal(t, auth.RoleNone, principal.Role)
	assert.Equal(t, "tok", principal.LoginToken)
	assert.Nil(t, principal.ID())
}
