//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Store=Store"
package session

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("session is invalid")
)

type (
	// Token is the opaque value kept in the session cookie.
	Token string

	// Store is the single access point to session state.
	// Load returns ErrSessionNotFound for an empty or unknown token
	// and ErrInvalidSession when the stored value cannot be decoded.
	Store interface {
		Save(context.Context, Credential) (Token, error)
		Load(context.Context, Token) (Credential, error)
		Delete(context.Context, Token) error
	}
)
