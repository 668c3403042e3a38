package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ocr-api/api/internal/handle"
)

// New wires the recognition routes onto a server with sane timeouts. Route
// paths are part of the service's public contract; don't rename them.
func New(addr string, h *handle.Handle, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ocr/predict-by-path", h.PredictByPath)
	mux.HandleFunc("/ocr/predict-by-base64", h.PredictByBase64)
	mux.HandleFunc("/ocr/predict-by-file", h.PredictByFile)
	mux.HandleFunc("/ocr/predict-by-url", h.PredictByURL)

	return &http.Server{
		Addr:              addr,
		Handler:           withLogging(log, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withLogging(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(rec, r)
		log.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
