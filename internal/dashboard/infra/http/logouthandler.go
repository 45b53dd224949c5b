package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	internalhttp "github.com/klwxsrx/store-dashboard/internal/pkg/http"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

// LogoutHandler always expires the cookie, even when there is no session to delete.
type LogoutHandler struct {
	authService  service.Authentication
	cookieConfig CookieConfig
}

func NewLogoutHandler(authService service.Authentication, cookieConfig CookieConfig) LogoutHandler {
	return LogoutHandler{
		authService:  authService,
		cookieConfig: cookieConfig,
	}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/auth/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	token := pkghttp.ParseRequestOptional(r, pkghttp.CookieValue[string](internalhttp.SessionCookieName), nil)
	if token != nil && *token != "" {
		err := h.authService.Logout(r.Context(), session.Token(*token))
		if err != nil {
			return err
		}
	}

	w.SetCookie(NewExpiredSessionCookie(h.cookieConfig))
	w.SetStatusCode(http.StatusNoContent)
	return nil
}
