package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/morrowland/archetype-report/internal/accesscode"
	"github.com/morrowland/archetype-report/internal/archetype"
	"github.com/morrowland/archetype-report/internal/handler"
	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/metrics"
	"github.com/morrowland/archetype-report/internal/payment"
	"github.com/morrowland/archetype-report/internal/report"
)

type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. All collaborators are injected: the narrative
// maps and registry are built once at bootstrap, and handlers close over
// them rather than reaching for globals.
func NewServer(port int, version string, reportService *report.Service, codeStore accesscode.Store, gateway payment.Gateway, narratives archetype.Narratives) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check and deployment verification routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Pages
	r.Get("/", handler.HandleIndex())
	r.Get("/subtype", handler.HandleSubtypeQuiz())

	// Report flow
	r.Get("/generate-free-code", handler.HandleGenerateFreeCode(codeStore))
	r.Get("/report", handler.HandleReport(codeStore))
	r.Get("/create-checkout-session", handler.HandleCreateCheckoutSession(gateway))
	r.Get("/api/render-report", handler.HandleRenderReport(reportService))
	r.Get("/api/download-report", handler.HandleDownloadReport(reportService))

	// Diagnostic dump of every narrative. Unauthenticated; keep off public
	// deployments or put it behind the reverse proxy's ACL.
	r.Get("/debug/all-reports", handler.HandleDebugAllReports(narratives))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
