package http

import (
	"context"
	"net/http"
	"sync"

	"finmon/internal/middleware/cors"
	"finmon/internal/middleware/ratelimit"
	"finmon/internal/middleware/security"
	"finmon/internal/middleware/trace"
	"finmon/internal/services"
	"finmon/internal/store"
)

type Server struct {
	http.Server
	transactions *services.TransactionService
	analysis     *services.AnalysisService
	lister       store.TransactionLister
	rateLimiter  *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, txs *services.TransactionService, analysis *services.AnalysisService, lister store.TransactionLister, corsConfig cors.Config) *Server {
	mux := http.NewServeMux()

	s := &Server{
		transactions: txs,
		analysis:     analysis,
		lister:       lister,
		rateLimiter:  ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/transactions", s.handleListTransactions)
	mux.Handle("/add_transaction",
		s.rateLimiter.Middleware(extractClientIP)(http.HandlerFunc(s.handleAddTransaction)))
	mux.HandleFunc("/performance_analysis", s.handlePerformanceAnalysis)
	mux.HandleFunc("/detailed_analysis", s.handleDetailedAnalysis)

	// Outermost first: tracing, then CORS, then security headers.
	var handler http.Handler = mux
	handler = security.Headers(security.DefaultHeadersConfig())(handler)
	handler = cors.Middleware(corsConfig)(handler)
	handler = trace.NewMiddleware(extractClientIP).Middleware(handler)

	s.Server = http.Server{
		Addr:    addr,
		Handler: handler,
	}

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// extractClientIP resolves the client address, honoring proxy headers.
func extractClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
