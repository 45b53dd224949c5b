package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

const (
	SessionCookieName = "sessionToken"
	RequestIDHeader   = pkghttp.DefaultRequestIDHeader
)

func SessionTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	value, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](SessionCookieName), nil)
	if err != nil || value == "" {
		return nil, false
	}

	return auth.SessionToken{
		Value: value,
	}, true
}
