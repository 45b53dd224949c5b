package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
	SetRawJSONBody(data []byte) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	body     []byte
	bodyErr  error
	httpCode int
	codeSet  bool
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	w.codeSet = true
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body, w.bodyErr = json.Marshal(data)
	return w
}

// SetRawJSONBody writes already encoded JSON as is, an empty body is written as no body.
func (w *responseWriter) SetRawJSONBody(data []byte) ResponseWriter {
	w.bodyErr = nil
	w.body = nil
	if len(data) > 0 {
		w.body = data
	}
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	if err == nil && w.bodyErr != nil {
		err = fmt.Errorf("failed to encode body: %w", w.bodyErr)
	}

	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	case err != nil:
		httpCode = meta.errorStatusCode(err, w.statusCodeOnError())
	}

	meta.Code = httpCode
	meta.Error = err

	if err != nil || w.body == nil {
		w.impl.WriteHeader(httpCode)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	if _, writeErr := w.impl.Write(w.body); writeErr != nil {
		meta.Error = fmt.Errorf("failed to write body: %w", writeErr)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &panic

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func (w *responseWriter) statusCodeOnError() int {
	if w.codeSet && w.httpCode >= http.StatusBadRequest {
		return w.httpCode
	}

	return http.StatusInternalServerError
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
