package middleware

import (
	"net/http"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const CorrelationIDHeader = "X-Correlation-ID"

// Correlation attaches a correlation id to every request logger and echoes
// it back to the caller. Requests that already carry one keep it, so gateway
// log lines can be joined with the platform's.
func Correlation(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			requestLogger := logger.WithValues("correlation-id", correlationID)
			w.Header().Add(CorrelationIDHeader, correlationID)

			next.ServeHTTP(w, r.WithContext(logr.NewContext(r.Context(), requestLogger)))
		})
	}
}
