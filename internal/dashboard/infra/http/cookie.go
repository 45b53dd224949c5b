package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	internalhttp "github.com/klwxsrx/store-dashboard/internal/pkg/http"
)

type CookieConfig struct {
	Secure bool
	// TTL of zero issues a browser-session cookie.
	TTL time.Duration
}

func NewSessionCookie(token session.Token, config CookieConfig) *http.Cookie {
	cookie := &http.Cookie{
		Name:     internalhttp.SessionCookieName,
		Value:    string(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if config.TTL > 0 {
		cookie.MaxAge = int(config.TTL / time.Second)
	}

	return cookie
}

func NewExpiredSessionCookie(config CookieConfig) *http.Cookie {
	return &http.Cookie{
		Name:     internalhttp.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
