package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

type LoginHandler struct {
	authService  service.Authentication
	cookieConfig CookieConfig
}

func NewLoginHandler(authService service.Authentication, cookieConfig CookieConfig) LoginHandler {
	return LoginHandler{
		authService:  authService,
		cookieConfig: cookieConfig,
	}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/auth/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), err)
	if err != nil {
		return err
	}

	data, err := h.authService.Login(r.Context(), in.Login, in.Password)
	if err != nil {
		return err
	}

	w.SetCookie(NewSessionCookie(data.Token, h.cookieConfig))
	w.SetJSONBody(newSessionOut(data.Credential.Principal()))
	return nil
}
