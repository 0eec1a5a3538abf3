package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
)

const RequestIDHeader = "X-Request-ID"

func LoggingMiddleware(logger zerolog.Logger, next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLogger := logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		reqLogger.Debug().Msg("started")

		err := next(w, r.WithContext(reqLogger.WithContext(r.Context())))

		status := http.StatusOK
		if err != nil {
			status = customerrors.GetStatus(err)
		}

		event := reqLogger.Info()
		if status >= http.StatusInternalServerError {
			event = reqLogger.Error().Err(err)
		}
		event.Int("status", status).Dur("duration", time.Since(start)).Msg("completed")

		return err
	}
}
