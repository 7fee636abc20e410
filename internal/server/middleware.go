package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"MarketWarRoom/internal/metrics"
)

// logging logs every request with a correlation id and records the
// per-route request counter.
func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		metrics.HTTPRequests.WithLabelValues(routeLabel(r.URL.Path), strconv.Itoa(rw.statusCode)).Inc()
		log.Printf("[INFO] %s %s %s -> %d (%s) req_id=%s",
			r.RemoteAddr, r.Method, r.URL.Path, rw.statusCode, time.Since(start), reqID)
	})
}

// routeLabel collapses symbol-specific paths so the request counter keeps
// a bounded label set.
func routeLabel(path string) string {
	if strings.HasPrefix(path, "/api/symbols/") && strings.HasSuffix(path, "/analysis") {
		return "/api/symbols/{symbol}/analysis"
	}
	return path
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	return rw.ResponseWriter.Write(b)
}
