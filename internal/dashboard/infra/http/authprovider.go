package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	"github.com/klwxsrx/store-dashboard/pkg/log"
)

type sessionAuthProvider struct {
	authService service.Authentication
	logger      log.Logger
}

// NewSessionAuthProvider treats a missing, unknown or undecodable session as anonymous,
// routes that need a principal reject such requests on their own.
func NewSessionAuthProvider(authService service.Authentication, logger log.Logger) pkgauth.Provider[auth.Principal] {
	return sessionAuthProvider{
		authService: authService,
		logger:      logger,
	}
}

func (p sessionAuthProvider) Authenticate(ctx context.Context, token pkgauth.Token) (pkgauth.Authentication[auth.Principal], error) {
	sessionToken, ok := token.(auth.SessionToken)
	if !ok {
		return nil, fmt.Errorf("unsupported token type %T", token)
	}

	credential, err := p.authService.Verify(ctx, session.Token(sessionToken.Value))
	if errors.Is(err, session.ErrSessionNotFound) {
		return pkgauth.Auth[auth.Principal]{}, nil
	}
	if errors.Is(err, session.ErrInvalidSession) {
		p.logger.WithError(err).Warn(ctx, "session cookie rejected")
		return pkgauth.Auth[auth.Principal]{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}

	principal := credential.Principal()
	return pkgauth.Auth[auth.Principal]{AuthPrincipal: &principal}, nil
}
