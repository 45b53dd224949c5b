package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

type GetSessionHandler struct{}

func NewGetSessionHandler() GetSessionHandler {
	return GetSessionHandler{}
}

func (h GetSessionHandler) Method() string {
	return http.MethodGet
}

func (h GetSessionHandler) Path() string {
	return "/session"
}

func (h GetSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](r.Context())
	if !ok || authentication.Principal() == nil {
		return pkgauth.ErrUnauthenticated
	}

	w.SetJSONBody(newSessionOut(*authentication.Principal()))
	return nil
}
