package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openclo/openclo/internal/metrics"
	"github.com/openclo/openclo/internal/server/ratelimit"
	"github.com/openclo/openclo/internal/store"
	"github.com/openclo/openclo/internal/types"
)

// AnalyzerService is the slice of the analysis pipeline the HTTP layer
// depends on.
type AnalyzerService interface {
	Analyze(ctx context.Context, profile types.UserProfile, experiences []types.Experience) (*types.AnalysisResult, error)
	Checklist(ctx context.Context, title, description string) ([]types.ChecklistItem, error)
	Suggest(ctx context.Context, profile types.UserProfile, category types.ExperienceCategory, existingTitles []string) ([]string, error)
}

// Config holds server configuration.
type Config struct {
	Port int
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	analyzer    AnalyzerService
	store       *store.Store
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
	logger      *zap.Logger
	metrics     metrics.Recorder
	gatherer    prometheus.Gatherer
}

// New creates a new server instance. Dependencies are passed explicitly;
// the server owns only HTTP concerns.
func New(cfg Config, analyzer AnalyzerService, st *store.Store, logger *zap.Logger, recorder metrics.Recorder, gatherer prometheus.Gatherer) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	s := &Server{
		analyzer:    analyzer,
		store:       st,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		validate:    validator.New(),
		logger:      logger,
		metrics:     recorder,
		gatherer:    gatherer,
	}

	mux := http.NewServeMux()

	// AI pipeline endpoints
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/checklist", s.handleChecklist)
	mux.HandleFunc("POST /api/suggest", s.handleSuggest)

	// State endpoints
	mux.HandleFunc("GET /api/state", s.handleGetState)
	mux.HandleFunc("PUT /api/profile", s.handleSetProfile)
	mux.HandleFunc("POST /api/experiences", s.handleAddExperience)
	mux.HandleFunc("PUT /api/experiences/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /api/experiences/{id}", s.handleRemoveExperience)
	mux.HandleFunc("POST /api/plans/{id}/toggle", s.handleToggleActionPlan)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("GET /api/vocabulary", s.handleGetVocabulary)

	mux.HandleFunc("GET /health", s.handleHealth)
	if gatherer != nil {
		mux.Handle("GET /metrics", metrics.Handler(gatherer))
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withMetrics(s.withLogging(s.withSecurityHeaders(s.withCORS(mux))))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI round-trips are slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		s.rateLimiter.Stop()
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// withRateLimit applies the fixed-window limiter to /api/ routes.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		clientID := clientKey(r)
		allowed, info := s.rateLimiter.Allow(clientID)

		setRateLimitHeaders(w, info)
		if !allowed {
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			s.errorResponse(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withMetrics records request counts and durations.
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.metrics.RecordHTTPStatus(r.Method, r.URL.Path, sw.status)
		s.metrics.RecordHTTPDuration(r.Method, r.URL.Path, time.Since(start))
	})
}

// withLogging logs one line per request with a generated request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withSecurityHeaders sets the standard security response headers.
func (s *Server) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		next.ServeHTTP(w, r)
	})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientKey extracts the rate-limit key for a request: the first
// forwarded-for address, then X-Real-IP, then the remote address host, and
// finally a shared "unknown" bucket.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return "unknown"
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// statusWriter records the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
