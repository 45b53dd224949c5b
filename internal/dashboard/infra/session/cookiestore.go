package session

import (
	"context"
	"fmt"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
)

// CookieStore keeps the whole credential in the cookie value,
// obfuscated with the codec. There is no server state to delete.
type CookieStore struct {
	codec *credential.Codec
}

func NewCookieStore(codec *credential.Codec) CookieStore {
	return CookieStore{codec: codec}
}

func (s CookieStore) Save(_ context.Context, c session.Credential) (session.Token, error) {
	plain, err := session.Serialize(c)
	if err != nil {
		return "", err
	}

	return session.Token(s.codec.Encode(plain)), nil
}

func (s CookieStore) Load(_ context.Context, token session.Token) (session.Credential, error) {
	if token == "" {
		return session.Credential{}, session.ErrSessionNotFound
	}

	plain, err := s.codec.Decode(string(token))
	if err != nil {
		return session.Credential{}, fmt.Errorf("%w: %w", session.ErrInvalidSession, err)
	}

	c, err := session.Parse(plain)
	if err != nil {
		return session.Credential{}, fmt.Errorf("%w: %w", session.ErrInvalidSession, err)
	}

	return c, nil
}

func (s CookieStore) Delete(context.Context, session.Token) error {
	return nil
}
