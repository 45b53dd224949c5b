//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Authentication=Authentication"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/audit"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
)

type (
	Authentication interface {
		Login(ctx context.Context, login, password string) (SessionData, error)
		Logout(context.Context, session.Token) error
		Verify(context.Context, session.Token) (session.Credential, error)
	}

	SessionData struct {
		Token      session.Token
		Credential session.Credential
	}

	authenticationService struct {
		backend  backend.Backend
		sessions session.Store
		audit    audit.Recorder
	}
)

func NewAuthentication(
	backend backend.Backend,
	sessions session.Store,
	audit audit.Recorder,
) Authentication {
	return authenticationService{
		backend:  backend,
		sessions: sessions,
		audit:    audit,
	}
}

// Login replaces any previous session wholesale, the caller overwrites the cookie.
func (s authenticationService) Login(ctx context.Context, login, password string) (SessionData, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return SessionData{}, backend.ErrInvalidCredentials
	}

	result, err := s.backend.Login(ctx, backend.LoginRequest{
		Login:    login,
		Password: password,
	})
	if errors.Is(err, backend.ErrInvalidCredentials) || errors.Is(err, backend.ErrUnauthenticated) {
		s.audit.Record(ctx, audit.EventLoginFailed, audit.Subject{})
		return SessionData{}, backend.ErrInvalidCredentials
	}
	if err != nil {
		return SessionData{}, fmt.Errorf("login to backend: %w", err)
	}

	credential := session.Credential{
		Tokens: result.Tokens,
		Role:   result.Role,
		UserID: result.UserID,
	}
	token, err := s.sessions.Save(ctx, credential)
	if err != nil {
		return SessionData{}, fmt.Errorf("save session: %w", err)
	}

	s.audit.Record(ctx, audit.EventLoginSucceeded, subjectOf(credential))
	return SessionData{
		Token:      token,
		Credential: credential,
	}, nil
}

func (s authenticationService) Logout(ctx context.Context, token session.Token) error {
	credential, err := s.sessions.Load(ctx, token)
	if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrInvalidSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	err = s.sessions.Delete(ctx, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.audit.Record(ctx, audit.EventLogout, subjectOf(credential))
	return nil
}

func (s authenticationService) Verify(ctx context.Context, token session.Token) (session.Credential, error) {
	credential, err := s.sessions.Load(ctx, token)
	if errors.Is(err, session.ErrInvalidSession) {
		s.audit.Record(ctx, audit.EventSessionRejected, audit.Subject{})
		return session.Credential{}, err
	}
	if err != nil {
		return session.Credential{}, err
	}

	return credential, nil
}

func subjectOf(c session.Credential) audit.Subject {
	return audit.Subject{
		UserID: c.UserID,
		Role:   c.Role,
	}
}
