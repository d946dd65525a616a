package http

import (
	"log"
	"net/http"
	"time"
)

// RequestLogger wraps next and emits one line per request with the
// method, path, response status and elapsed time.
func RequestLogger(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Printf("request method=%s path=%s status=%d duration=%s",
			r.Method, r.URL.Path, sw.status, time.Since(started))
	})
}

// statusWriter remembers the first status code written so the logger
// can report it after the handler returns.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}
