package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

func WithErrorMapping() pkghttp.ServerOption {
	return pkghttp.WithErrorMapping(map[int][]error{
		http.StatusUnauthorized: {
			pkgauth.ErrUnauthenticated,
			backend.ErrInvalidCredentials,
			backend.ErrUnauthenticated,
		},
		http.StatusForbidden: {
			pkgauth.ErrPermissionDenied,
		},
		http.StatusNotFound: {
			ErrUnknownResource,
			backend.ErrNotFound,
		},
		http.StatusBadGateway: {
			backend.ErrUnavailable,
		},
	})
}
