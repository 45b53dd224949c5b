package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

const (
	resourcePathPattern = "/{resource}"
	entityPathPattern   = "/{resource}/{id}"
)

var loginRoute = pkghttp.Route{Method: http.MethodPost, URL: "/auth/login"}

type (
	Backend struct {
		client  pkghttp.Client
		secrets credential.Secrets
	}

	loginIn struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	loginOut struct {
		Tokens string  `json:"tokens"`
		Role   string  `json:"role"`
		UserID *string `json:"userId"`
	}
)

func NewBackend(client pkghttp.Client, secrets credential.Secrets) Backend {
	return Backend{
		client:  client,
		secrets: secrets,
	}
}

// Login authorizes with the write secret and an empty login token, there is none before login.
func (b Backend) Login(ctx context.Context, req backend.LoginRequest) (backend.LoginResult, error) {
	authorization := credential.Authorization(credential.OperationWrite, b.secrets.Write, "")

	resp, err := b.client.NewRequest(ctx, loginRoute).
		SetHeader("Authorization", credential.HeaderValue(authorization)).
		SetBody(loginIn{Login: req.Login, Password: req.Password}).
		Send()
	if err != nil {
		return backend.LoginResult{}, fmt.Errorf("%w: %w", backend.ErrUnavailable, err)
	}
	defer resp.Close()

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden || code == http.StatusBadRequest:
		return backend.LoginResult{}, backend.ErrInvalidCredentials
	case code >= http.StatusInternalServerError:
		return backend.LoginResult{}, fmt.Errorf("%w: status %d", backend.ErrUnavailable, code)
	case code != http.StatusOK && code != http.StatusCreated:
		return backend.LoginResult{}, fmt.Errorf("unexpected login status %d", code)
	}

	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[loginOut](), nil)
	if err != nil {
		return backend.LoginResult{}, fmt.Errorf("parse login response: %w", err)
	}
	if out.Tokens == "" {
		return backend.LoginResult{}, errors.New("login response has no token")
	}

	return backend.LoginResult{
		Tokens: out.Tokens,
		Role:   out.Role,
		UserID: out.UserID,
	}, nil
}

func (b Backend) Fetch(ctx context.Context, req backend.ResourceRequest) (backend.ResourceResponse, error) {
	op := req.Operation()
	authorization, err := credential.StrictAuthorization(op, b.secrets.For(op), req.LoginToken)
	if err != nil {
		return backend.ResourceResponse{}, fmt.Errorf("%w: %w", backend.ErrUnauthenticated, err)
	}

	path := resourcePathPattern
	if req.ID != nil {
		path = entityPathPattern
	}

	request := b.client.NewRequest(ctx, pkghttp.Route{Method: req.Method, URL: path}).
		SetPathParam("resource", string(req.Resource)).
		SetHeader("Authorization", credential.HeaderValue(authorization)).
		SetHeader("Accept", "application/json")
	if req.ID != nil {
		request = request.SetPathParam("id", *req.ID)
	}
	if len(req.Query) > 0 {
		request = request.SetQueryParams(req.Query)
	}
	if len(req.Body) > 0 {
		request = request.
			SetHeader("Content-Type", "application/json").
			SetBody(req.Body)
	}

	resp, err := request.Send()
	if err != nil {
		return backend.ResourceResponse{}, fmt.Errorf("%w: %w", backend.ErrUnavailable, err)
	}
	defer resp.Close()

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return backend.ResourceResponse{}, backend.ErrUnauthenticated
	case code == http.StatusNotFound:
		return backend.ResourceResponse{}, backend.ErrNotFound
	case code >= http.StatusInternalServerError:
		return backend.ResourceResponse{}, fmt.Errorf("%w: status %d", backend.ErrUnavailable, code)
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.RawBody(), nil)
	if err != nil {
		return backend.ResourceResponse{}, fmt.Errorf("read backend response: %w", err)
	}

	return backend.ResourceResponse{
		StatusCode: resp.StatusCode(),
		Body:       body,
	}, nil
}
