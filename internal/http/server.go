// Package http exposes the aggregation engine as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"dompet/internal/cache"
	applog "dompet/internal/log"
	"dompet/internal/services"
)

// Services bundles everything the API serves.
type Services struct {
	Reports       *services.ReportService
	Budgets       *services.BudgetService
	Wallets       *services.WalletService
	Subscriptions *services.SubscriptionService
	Transactions  *services.TransactionService
	Categories    *services.CategoryService
}

// Options tune the server-side report cache and budget ownership.
type Options struct {
	// BudgetOwner scopes every budget route. Single-user deployments
	// run with one owner.
	BudgetOwner string
	CacheSize   int
	CacheTTL    time.Duration
}

type Server struct {
	http.Server
	svc   Services
	owner string

	// reportCache holds rendered report responses. Any ledger write
	// flushes it.
	reportCache *cache.LRUCache[reportResponse]
	janitor     *cache.Janitor
	rateLimiter *rateLimiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server.
func NewServer(addr string, svc Services, opts Options, logger *applog.Logger) *Server {
	if opts.CacheSize < 1 {
		opts.CacheSize = 64
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}

	mux := http.NewServeMux()

	s := &Server{
		svc:         svc,
		owner:       opts.BudgetOwner,
		reportCache: cache.NewLRUCache[reportResponse](opts.CacheSize, opts.CacheTTL),
		janitor:     cache.NewJanitor(),
		rateLimiter: newRateLimiter(),
	}
	s.janitor.Register(s.reportCache)
	s.janitor.Start(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/report", s.handleGetReport)
	mux.HandleFunc("GET /api/advice", s.handleGetAdvice)

	mux.HandleFunc("GET /api/budgets", s.handleGetBudgets)
	mux.HandleFunc("PUT /api/budgets", s.handlePutBudget)

	mux.HandleFunc("GET /api/categories", s.handleGetCategories)
	mux.HandleFunc("POST /api/categories", s.handlePostCategory)

	mux.HandleFunc("GET /api/wallets", s.handleGetWallets)
	mux.HandleFunc("PUT /api/wallets/{id}/balance", s.handlePutWalletBalance)

	mux.HandleFunc("GET /api/subscriptions", s.handleGetSubscriptions)
	mux.HandleFunc("POST /api/subscriptions", s.handlePostSubscription)
	mux.HandleFunc("DELETE /api/subscriptions/{id}", s.handleDeleteSubscription)
	mux.HandleFunc("POST /api/subscriptions/{id}/pay", s.handlePaySubscription)

	mux.HandleFunc("GET /api/transactions", s.handleGetTransactions)
	mux.HandleFunc("POST /api/transactions", s.handlePostTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handlePutTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	var handler http.Handler = mux
	handler = s.withProtection(handler)
	if logger != nil {
		handler = applog.Middleware(logger.WithComponent(applog.ComponentHTTP))(handler)
	}

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// withProtection adds security headers and rate limits mutating
// requests.
func (s *Server) withProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// Shutdown stops the background routines and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.janitor.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// flushCaches drops every cached report. Called on any ledger write.
func (s *Server) flushCaches() {
	s.reportCache.Flush()
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
