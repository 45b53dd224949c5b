package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
)

var ErrMalformedCredential = errors.New("credential is not valid json")

// Credential is the plaintext session: the backend login token, the role as issued,
// and an optional user id. Role is kept verbatim, use EffectiveRole for decisions.
type Credential struct {
	Tokens string  `json:"tokens"`
	Role   string  `json:"role"`
	UserID *string `json:"userId,omitempty"`
}

func (c Credential) EffectiveRole() auth.Role {
	return auth.ParseRole(c.Role)
}

func (c Credential) Principal() auth.Principal {
	return auth.Principal{
		Role:       c.EffectiveRole(),
		UserID:     c.UserID,
		LoginToken: c.Tokens,
	}
}

func Serialize(c Credential) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("serialize credential: %w", err)
	}

	return string(data), nil
}

func Parse(plain string) (Credential, error) {
	var c Credential
	err := json.Unmarshal([]byte(plain), &c)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}

	return c, nil
}
