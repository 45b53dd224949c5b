package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/metric"
	"github.com/klwxsrx/store-dashboard/pkg/observability"
)

func TestClient_Send_ReturnsParsableResponse(t *testing.T) {
	var received *http.Request
	var receivedBody map[string]string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r
		_ = json.NewDecoder(r.Body).Decode(&receivedBody)

		w.Header().Set("Content-Type", "application/json")
		http.SetCookie(w, &http.Cookie{Name: "backend", Value: "yes"})
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"name":"store-1"}`))
	}))
	defer backend.Close()

	observer := observability.New()
	client := pkghttp.NewClientFactory(
		pkghttp.WithRequestObservability(observer, pkghttp.DefaultRequestIDHeader),
		pkghttp.WithRequestLogging(log.NewStub(), log.LevelDebug, log.LevelWarn),
		pkghttp.WithRequestMetrics(metric.NewMetricsStub()),
	).InitClient("backend", backend.URL, pkghttp.WithRequestHeader("X-Static", "1"))

	ctx := observer.WithRequestID(context.Background(), "req-1")
	resp, err := client.NewRequest(ctx, pkghttp.Route{Method: http.MethodPost, URL: "/stores/{id}"}).
		SetPathParam("id", "7").
		SetQueryParams(url.Values{"page": {"2"}}).
		SetHeader("Authorization", "Basic abc").
		SetBody(map[string]string{"title": "new"}).
		Send()
	require.NoError(t, err)
	defer resp.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode())

	type storeResponse struct {
		Name string `json:"name"`
	}
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[storeResponse](), nil)
	require.NoError(t, err)
	assert.Equal(t, "store-1", body.Name)

	cookie, err := pkghttp.ParseResponse(resp, pkghttp.Cookie("backend"), nil)
	require.NoError(t, err)
	assert.Equal(t, "yes", cookie.Value)

	require.NotNil(t, received)
	assert.Equal(t, "/stores/7", received.URL.Path)
	assert.Equal(t, "2", received.URL.Query().Get("page"))
	assert.Equal(t, "Basic abc", received.Header.Get("Authorization"))
	assert.Equal(t, "1", received.Header.Get("X-Static"))
	assert.Equal(t, "req-1", received.Header.Get(pkghttp.DefaultRequestIDHeader))
	assert.Equal(t, map[string]string{"title": "new"}, receivedBody)
}

func TestClient_Send_ReturnsErrorForUnreachableDestination(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	address := backend.URL
	backend.Close()

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("closed", address),
		pkghttp.WithRequestLogging(log.NewStub(), log.LevelDebug, log.LevelWarn),
	)

	resp, err := client.NewRequest(context.Background(), pkghttp.Route{Method: http.MethodGet, URL: "/"}).Send()
	assert.Error(t, err)
	assert.Nil(t, resp)
}
