package httpapi

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Soulverse-Ecosystem/status-check/internal/httpapi/middleware"
)

// Server publishes the latest status artifact over HTTP. It only serves
// what the run pass already persisted; it never probes anything itself.
type Server struct {
	Logger          *zap.Logger
	ArtifactPath    string
	RateLimitPerMin int
	RateLimitBurst  int
}

func NewServer(l *zap.Logger, artifactPath string, perMin, burst int) *Server {
	return &Server{
		Logger:          l,
		ArtifactPath:    artifactPath,
		RateLimitPerMin: perMin,
		RateLimitBurst:  burst,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RateLimit(s.RateLimitPerMin, s.RateLimitBurst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/status.json", s.handleStatus)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	b, err := os.ReadFile(s.ArtifactPath)
	if errors.Is(err, os.ErrNotExist) {
		http.Error(w, `{"error":"no snapshot published yet"}`, http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		s.Logger.Error("artifact_read_failed", zap.String("path", s.ArtifactPath), zap.Error(err))
		http.Error(w, `{"error":"status unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(b)
}
