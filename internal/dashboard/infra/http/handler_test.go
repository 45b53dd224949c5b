package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	servicemock "github.com/klwxsrx/store-dashboard/internal/dashboard/app/service/mock"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	dashboardhttp "github.com/klwxsrx/store-dashboard/internal/dashboard/infra/http"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/store-dashboard/internal/pkg/http"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
	"github.com/klwxsrx/store-dashboard/pkg/log"
)

const validSessionToken = "encoded-session"

var cookieConfig = dashboardhttp.CookieConfig{TTL: time.Hour}

func newServer(authService *servicemock.Authentication, resources *servicemock.Resources) http.Handler {
	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithAuth(
			dashboardhttp.NewSessionAuthProvider(authService, log.NewStub()),
			internalhttp.SessionTokenProvider,
		),
		dashboardhttp.WithErrorMapping(),
	)

	srv.Register(dashboardhttp.NewLoginHandler(authService, cookieConfig))
	srv.Register(dashboardhttp.NewLogoutHandler(authService, cookieConfig))
	srv.Register(dashboardhttp.NewGetSessionHandler(), pkghttp.WithAuthenticationRequirement())
	for _, handler := range dashboardhttp.NewResourceHandlers(resources) {
		srv.Register(handler, pkghttp.WithAuthenticationRequirement())
	}

	return srv.HTTPHandler()
}

func withSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: internalhttp.SessionCookieName, Value: validSessionToken})
	return r
}

func expectSession(authService *servicemock.Authentication, role string) {
	userID := "u9"
	authService.EXPECT().Verify(gomock.Any(), session.Token(validSessionToken)).
		Return(session.Credential{Tokens: "tok-1", Role: role, UserID: &userID}, nil)
}

func findCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == internalhttp.SessionCookieName {
			return cookie
		}
	}
	require.Fail(t, "session cookie is not set")
	return nil
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := servicemock.NewAuthentication(ctrl)
	authService.EXPECT().Login(gomock.Any(), "manager", "secret").Return(service.SessionData{
		Token:      "new-session",
		Credential: session.Credential{Tokens: "tok-1", Role: "manager"},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"manager","password":"secret"}`))
	newServer(authService, servicemock.NewResources(ctrl)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(t, rec.Result())
	assert.Equal(t, "new-session", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	assert.JSONEq(t, `{
		"role": "manager",
		"capabilities": {
			"stores": {"read": true, "write": false},
			"users": {"read": true, "write": true},
			"products": {"read": true, "write": true},
			"expenses": {"read": true, "write": true},
			"incomes": {"read": true, "write": false}
		}
	}`, rec.Body.String())
}

func TestLoginHandler_ReturnsError(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		loginErr     error
		expectedCode int
	}{
		{name: "malformed_body", body: `{"login":`, expectedCode: http.StatusBadRequest},
		{name: "invalid_credentials", body: `{"login":"a","password":"b"}`, loginErr: backend.ErrInvalidCredentials, expectedCode: http.StatusUnauthorized},
		{name: "backend_unavailable", body: `{"login":"a","password":"b"}`, loginErr: backend.ErrUnavailable, expectedCode: http.StatusBadGateway},
		{name: "unexpected_error", body: `{"login":"a","password":"b"}`, loginErr: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := servicemock.NewAuthentication(ctrl)
			if tc.loginErr != nil {
				authService.EXPECT().Login(gomock.Any(), "a", "b").Return(service.SessionData{}, tc.loginErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
			newServer(authService, servicemock.NewResources(ctrl)).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogoutHandler_ExpiresCookie(t *testing.T) {
	t.Run("with_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := servicemock.NewAuthentication(ctrl)
		expectSession(authService, "manager")
		authService.EXPECT().Logout(gomock.Any(), session.Token(validSessionToken)).Return(nil)

		rec := httptest.NewRecorder()
		newServer(authService, servicemock.NewResources(ctrl)).
			ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/auth/logout", nil)))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		cookie := findCookie(t, rec.Result())
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})

	t.Run("without_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		rec := httptest.NewRecorder()
		newServer(servicemock.NewAuthentication(ctrl), servicemock.NewResources(ctrl)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, -1, findCookie(t, rec.Result()).MaxAge)
	})
}

func TestGetSessionHandler_ReturnsPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := servicemock.NewAuthentication(ctrl)
	expectSession(authService, "user")

	rec := httptest.NewRecorder()
	newServer(authService, servicemock.NewResources(ctrl)).
		ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/session", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"role": "user",
		"userId": "u9",
		"capabilities": {
			"stores": {"read": true, "write": false},
			"products": {"read": true, "write": false}
		}
	}`, rec.Body.String())
}

func TestGetSessionHandler_UnknownRoleHasNoCapabilities(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := servicemock.NewAuthentication(ctrl)
	expectSession(authService, "guest")

	rec := httptest.NewRecorder()
	newServer(authService, servicemock.NewResources(ctrl)).
		ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/session", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role": "", "userId": "u9", "capabilities": {}}`, rec.Body.String())
}

func TestGetSessionHandler_ReturnsUnauthorized(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		noCookie  bool
	}{
		{name: "no_cookie", noCookie: true},
		{name: "unknown_session", verifyErr: session.ErrSessionNotFound},
		{name: "undecodable_session", verifyErr: session.ErrInvalidSession},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := servicemock.NewAuthentication(ctrl)

			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if !tc.noCookie {
				req = withSession(req)
				authService.EXPECT().Verify(gomock.Any(), session.Token(validSessionToken)).
					Return(session.Credential{}, tc.verifyErr)
			}

			rec := httptest.NewRecorder()
			newServer(authService, servicemock.NewResources(ctrl)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetSessionHandler_ReturnsInternalErrorForStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := servicemock.NewAuthentication(ctrl)
	authService.EXPECT().Verify(gomock.Any(), session.Token(validSessionToken)).
		Return(session.Credential{}, errors.New("redis is down"))

	rec := httptest.NewRecorder()
	newServer(authService, servicemock.NewResources(ctrl)).
		ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/session", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResourceHandler_ProxiesRequest(t *testing.T) {
	id := "42"
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expected backend.ResourceRequest
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/api/stores?page=2",
			expected: backend.ResourceRequest{
				Method:   http.MethodGet,
				Resource: permission.ResourceStores,
				Query:    url.Values{"page": {"2"}},
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/products",
			body:   `{"title":"milk"}`,
			expected: backend.ResourceRequest{
				Method:   http.MethodPost,
				Resource: permission.ResourceProducts,
				Query:    url.Values{},
				Body:     []byte(`{"title":"milk"}`),
			},
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/api/products/42",
			body:   `{"title":"bread"}`,
			expected: backend.ResourceRequest{
				Method:   http.MethodPut,
				Resource: permission.ResourceProducts,
				ID:       &id,
				Query:    url.Values{},
				Body:     []byte(`{"title":"bread"}`),
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/expenses/42",
			expected: backend.ResourceRequest{
				Method:   http.MethodDelete,
				Resource: permission.ResourceExpenses,
				ID:       &id,
				Query:    url.Values{},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := servicemock.NewAuthentication(ctrl)
			expectSession(authService, "manager")

			resources := servicemock.NewResources(ctrl)
			resources.EXPECT().Call(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req backend.ResourceRequest) (backend.ResourceResponse, error) {
					assert.Equal(t, tc.expected, req)

					authentication, ok := pkgauth.GetAuthentication[auth.Principal](ctx)
					require.True(t, ok)
					require.NotNil(t, authentication.Principal())
					assert.Equal(t, "tok-1", authentication.Principal().LoginToken)

					return backend.ResourceResponse{StatusCode: http.StatusCreated, Body: []byte(`{"id":"42"}`)}, nil
				})

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))

			rec := httptest.NewRecorder()
			newServer(authService, resources).ServeHTTP(rec, withSession(req))

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestResourceHandler_WritesEmptyBackendBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := servicemock.NewAuthentication(ctrl)
	expectSession(authService, "admin")

	resources := servicemock.NewResources(ctrl)
	resources.EXPECT().Call(gomock.Any(), gomock.Any()).
		Return(backend.ResourceResponse{StatusCode: http.StatusNoContent}, nil)

	rec := httptest.NewRecorder()
	newServer(authService, resources).
		ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/stores/1", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestResourceHandler_ReturnsError(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		callErr      error
		expectCall   bool
		expectedCode int
	}{
		{name: "unknown_resource", target: "/api/warehouses", expectedCode: http.StatusNotFound},
		{name: "permission_denied", target: "/api/admins", callErr: pkgauth.ErrPermissionDenied, expectCall: true, expectedCode: http.StatusForbidden},
		{name: "backend_rejects_token", target: "/api/stores", callErr: backend.ErrUnauthenticated, expectCall: true, expectedCode: http.StatusUnauthorized},
		{name: "entity_not_found", target: "/api/stores/7", callErr: backend.ErrNotFound, expectCall: true, expectedCode: http.StatusNotFound},
		{name: "backend_unavailable", target: "/api/stores", callErr: backend.ErrUnavailable, expectCall: true, expectedCode: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := servicemock.NewAuthentication(ctrl)
			expectSession(authService, "manager")

			resources := servicemock.NewResources(ctrl)
			if tc.expectCall {
				resources.EXPECT().Call(gomock.Any(), gomock.Any()).Return(backend.ResourceResponse{}, tc.callErr)
			}

			rec := httptest.NewRecorder()
			newServer(authService, resources).
				ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, tc.target, nil)))

			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestResourceHandler_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	newServer(servicemock.NewAuthentication(ctrl), servicemock.NewResources(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
