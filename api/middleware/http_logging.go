package middleware

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

// HTTPLogging logs one line when a broker request arrives and one when its
// response goes out, capturing the status and body size along the way.
func HTTPLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := logr.FromContextOrDiscard(r.Context()).WithName("http-logger")

		logger.Info("request", "url", r.URL, "method", r.Method, "remoteAddr", r.RemoteAddr, "contentLength", r.ContentLength)

		capture := &capturingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(capture, r)

		logger.Info("response", "url", r.URL, "method", r.Method, "status", capture.status, "size", capture.size, "durationMillis", time.Since(start).Milliseconds())
	})
}

type capturingResponseWriter struct {
	http.ResponseWriter
	size   int
	status int
}

func (w *capturingResponseWriter) Write(body []byte) (int, error) {
	size, err := w.ResponseWriter.Write(body)
	w.size += size
	return size, err
}

func (w *capturingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
}
