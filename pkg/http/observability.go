package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/store-dashboard/pkg/observability"
)

type RequestIDExtractor func(*http.Request) (string, bool)

// WithObservability assigns the first request id an extractor yields,
// requests without one are served untouched.
func WithObservability(observer observability.Observer, extractors ...RequestIDExtractor) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				id, ok := extractor(r)
				if !ok {
					continue
				}

				r = r.WithContext(observer.WithRequestID(r.Context(), id))
				w.Header().Set(DefaultRequestIDHeader, id)
				break
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func NewHTTPHeaderRequestIDExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) (string, bool) {
		id := r.Header.Get(header)
		return id, id != ""
	}
}

func NewRandomUUIDRequestIDExtractor() RequestIDExtractor {
	return func(_ *http.Request) (string, bool) {
		return uuid.New().String(), true
	}
}
