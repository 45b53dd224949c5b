package http

import (
	"net/http"

	"github.com/klwxsrx/store-dashboard/pkg/auth"
	"github.com/klwxsrx/store-dashboard/pkg/log"
)

const requestLogEntry = "request"

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			loggerWithFields := getRequestResponseFieldsLogger(r, meta.Code, logger)
			loggerWithFields = withAuthenticationFields(meta.Auth, loggerWithFields)

			if meta.Panic != nil {
				loggerWithFields.With(log.Fields{
					"panic": log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					},
				}).Error(r.Context(), "handler panic")
				return
			}

			if meta.Error != nil {
				loggerWithFields = loggerWithFields.WithError(meta.Error)
			}

			if meta.Code >= http.StatusInternalServerError {
				loggerWithFields.Log(r.Context(), errorLevel, "request handled with internal error")
			} else {
				loggerWithFields.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func withAuthenticationFields(authentication auth.Authentication[auth.Principal], logger log.Logger) log.Logger {
	if authentication == nil || !authentication.IsAuthenticated() {
		return logger
	}

	principal := *authentication.Principal()
	fields := log.Fields{
		"type": principal.Type(),
	}
	if id := principal.ID(); id != nil {
		fields["id"] = *id
	}

	return logger.WithField("principal", fields)
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(wrapFieldsWithRequestLogEntry(log.Fields{
		"method": r.Method,
		"host":   r.URL.Host,
		"path":   r.URL.Path,
	}))
}

func getRequestResponseFieldsLogger(r *http.Request, code int, logger log.Logger) log.Logger {
	return logger.With(wrapFieldsWithRequestLogEntry(log.Fields{
		"method": r.Method,
		"host":   r.URL.Host,
		"path":   r.URL.Path,
		"code":   code,
	}))
}

func wrapFieldsWithRequestLogEntry(fields log.Fields) log.Fields {
	return log.Fields{requestLogEntry: fields}
}
