package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status    int
	bytesSent int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.ResponseWriter.WriteHeader(code)
	r.status = code
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytesSent += n
	return n, err
}

// logRequests logs each response: 5xx at error, 4xx at warn, the rest at info.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		args := []any{
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes_sent", rec.bytesSent,
			"duration", time.Since(start),
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			s.logger.Error(r.Context(), "response", args...)
		case rec.status >= http.StatusBadRequest:
			s.logger.Warn(r.Context(), "response", args...)
		default:
			s.logger.Info(r.Context(), "response", args...)
		}
	})
}
