package http_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/permission"
	backendhttp "github.com/klwxsrx/store-dashboard/internal/dashboard/infra/backend/http"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
)

var testSecrets = credential.Secrets{Read: "GET123", Write: "POST456"}

type recordedRequest struct {
	method        string
	path          string
	query         url.Values
	authorization string
	body          string
}

func newBackend(t *testing.T, code int, body string) (backendhttp.Backend, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*recorded = recordedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			query:         r.URL.Query(),
			authorization: r.Header.Get("Authorization"),
			body:          string(data),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := pkghttp.NewClient(pkghttp.WithClientDestination("backend", srv.URL))
	return backendhttp.NewBackend(client, testSecrets), recorded
}

func decodeAuthorization(t *testing.T, header string) string {
	t.Helper()

	require.True(t, strings.HasPrefix(header, "Basic "), header)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)
	return string(raw)
}

func TestBackend_Login_ReturnsResult(t *testing.T) {
	b, recorded := newBackend(t, http.StatusOK, `{"tokens":"tok-1","role":"manager","userId":"u9"}`)

	result, err := b.Login(context.Background(), backend.LoginRequest{Login: "manager", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", result.Tokens)
	assert.Equal(t, "manager", result.Role)
	require.NotNil(t, result.UserID)
	assert.Equal(t, "u9", *result.UserID)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/auth/login", recorded.path)
	assert.JSONEq(t, `{"login":"manager","password":"secret"}`, recorded.body)
	assert.Equal(t, `user:{"postToken":"POST456","loginToken":""}`, decodeAuthorization(t, recorded.authorization))
}

func TestBackend_Login_ReturnsError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		expected error
	}{
		{name: "rejected_credentials", code: http.StatusUnauthorized, expected: backend.ErrInvalidCredentials},
		{name: "forbidden", code: http.StatusForbidden, expected: backend.ErrInvalidCredentials},
		{name: "backend_failure", code: http.StatusBadGateway, expected: backend.ErrUnavailable},
		{name: "response_without_token", code: http.StatusOK, body: `{"role":"user"}`},
		{name: "malformed_response", code: http.StatusOK, body: `{`, expected: pkghttp.ErrParsingError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newBackend(t, tc.code, tc.body)

			_, err := b.Login(context.Background(), backend.LoginRequest{Login: "l", Password: "p"})
			require.Error(t, err)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestBackend_Fetch_UsesSecretByMethod(t *testing.T) {
	id := "42"
	tests := []struct {
		name          string
		request       backend.ResourceRequest
		expectedPath  string
		expectedAuth  string
		expectedBody  string
		expectedQuery url.Values
	}{
		{
			name: "list_is_read",
			request: backend.ResourceRequest{
				Method:     http.MethodGet,
				Resource:   permission.ResourceStores,
				Query:      url.Values{"page": {"2"}},
				LoginToken: "abc.def",
			},
			expectedPath:  "/stores",
			expectedAuth:  `user:{"getToken":"GET123","loginToken":"abc.def"}`,
			expectedQuery: url.Values{"page": {"2"}},
		},
		{
			name: "update_is_write",
			request: backend.ResourceRequest{
				Method:     http.MethodPut,
				Resource:   permission.ResourceProducts,
				ID:         &id,
				Body:       []byte(`{"title":"milk"}`),
				LoginToken: "abc.def",
			},
			expectedPath:  "/products/42",
			expectedAuth:  `user:{"postToken":"POST456","loginToken":"abc.def"}`,
			expectedBody:  `{"title":"milk"}`,
			expectedQuery: url.Values{},
		},
		{
			name: "delete_is_write",
			request: backend.ResourceRequest{
				Method:     http.MethodDelete,
				Resource:   permission.ResourceExpenses,
				ID:         &id,
				LoginToken: "t",
			},
			expectedPath:  "/expenses/42",
			expectedAuth:  `user:{"postToken":"POST456","loginToken":"t"}`,
			expectedQuery: url.Values{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, recorded := newBackend(t, http.StatusOK, `{"ok":true}`)

			resp, err := b.Fetch(context.Background(), tc.request)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Body))

			assert.Equal(t, tc.request.Method, recorded.method)
			assert.Equal(t, tc.expectedPath, recorded.path)
			assert.Equal(t, tc.expectedQuery, recorded.query)
			assert.Equal(t, tc.expectedBody, recorded.body)
			assert.Equal(t, tc.expectedAuth, decodeAuthorization(t, recorded.authorization))
		})
	}
}

func TestBackend_Fetch_ReturnsError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		loginToken string
		expected   error
	}{
		{name: "empty_login_token_fails_fast", code: http.StatusOK, loginToken: "", expected: backend.ErrUnauthenticated},
		{name: "backend_rejects_token", code: http.StatusUnauthorized, loginToken: "t", expected: backend.ErrUnauthenticated},
		{name: "not_found", code: http.StatusNotFound, loginToken: "t", expected: backend.ErrNotFound},
		{name: "backend_failure", code: http.StatusInternalServerError, loginToken: "t", expected: backend.ErrUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, recorded := newBackend(t, tc.code, `{}`)

			_, err := b.Fetch(context.Background(), backend.ResourceRequest{
				Method:     http.MethodGet,
				Resource:   permission.ResourceUsers,
				LoginToken: tc.loginToken,
			})
			assert.ErrorIs(t, err, tc.expected)

			if tc.loginToken == "" {
				assert.Empty(t, recorded.method)
			}
		})
	}
}

func TestBackend_Fetch_PassesClientErrorsThrough(t *testing.T) {
	b, _ := newBackend(t, http.StatusConflict, `{"error":"duplicate"}`)

	resp, err := b.Fetch(context.Background(), backend.ResourceRequest{
		Method:     http.MethodPost,
		Resource:   permission.ResourceUsers,
		Body:       []byte(`{}`),
		LoginToken: "t",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"error":"duplicate"}`, string(resp.Body))
}
