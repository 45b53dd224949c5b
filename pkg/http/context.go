package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/store-dashboard/pkg/auth"
)

type contextKey int

const (
	handlerMetaContextKey contextKey = iota
)

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code  int
	Panic *Panic
	Error error
	Auth  auth.Authentication[auth.Principal]

	errorMappings []errorMapping
}

type errorMapping struct {
	statusCode int
	predicate  func(error) bool
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}

// errorStatusCode prefers mappings registered closer to the handler.
func (m *handlerMetadata) errorStatusCode(err error, fallback int) int {
	for i := len(m.errorMappings) - 1; i >= 0; i-- {
		if m.errorMappings[i].predicate(err) {
			return m.errorMappings[i].statusCode
		}
	}

	return fallback
}

func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	mappings := make([]errorMapping, 0, len(statusCodes))
	for statusCode, errs := range statusCodes {
		errs := errs
		mappings = append(mappings, errorMapping{
			statusCode: statusCode,
			predicate: func(err error) bool {
				for _, expected := range errs {
					if errors.Is(err, expected) {
						return true
					}
				}
				return false
			},
		})
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := getHandlerMetadata(r.Context())
			meta.errorMappings = append(meta.errorMappings, mappings...)
			handler.ServeHTTP(w, r)
		})
	})
}

func WithMW(mw HandlerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}
