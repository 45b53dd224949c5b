//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Backend=Backend"
package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
)

var (
	ErrUnauthenticated    = errors.New("backend rejected authorization")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNotFound           = errors.New("backend resource not found")
	ErrUnavailable        = errors.New("backend unavailable")
)

type (
	Backend interface {
		Login(context.Context, LoginRequest) (LoginResult, error)
		Fetch(context.Context, ResourceRequest) (ResourceResponse, error)
	}

	LoginRequest struct {
		Login    string
		Password string
	}

	// LoginResult carries the role exactly as the backend reports it.
	LoginResult struct {
		Tokens string
		Role   string
		UserID *string
	}

	ResourceRequest struct {
		Method     string
		Resource   permission.Resource
		ID         *string
		Query      url.Values
		Body       []byte
		LoginToken string
	}

	ResourceResponse struct {
		StatusCode int
		Body       []byte
	}
)

func (r ResourceRequest) Operation() credential.Operation {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return credential.OperationRead
	}

	return credential.OperationWrite
}
