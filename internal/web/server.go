// Package web provides the HTTP server and JSON handlers for the
// coffee-shop analytics API.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/beandata/coffeeshop-api/internal/config"
	"github.com/beandata/coffeeshop-api/internal/store"
	"github.com/beandata/coffeeshop-api/internal/web/middleware"
)

// Queries is the read contract the handlers need from the store.
type Queries interface {
	CustomersWithBirthday(ctx context.Context, month time.Month, day int) ([]store.BirthdayCustomer, error)
	TopSellingProducts(ctx context.Context, year, limit int) ([]store.ProductSales, error)
	LastOrderPerCustomer(ctx context.Context) ([]store.CustomerLastOrder, error)
}

// Server is the HTTP server for the analytics API.
type Server struct {
	queries Queries
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server

	// now is swappable in tests; the birthday endpoint matches against it.
	now func() time.Time
}

// NewServer creates a new Server instance.
func NewServer(queries Queries, cfg *config.Config) *Server {
	s := &Server{
		queries: queries,
		cfg:     cfg,
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Server.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes. Paths mirror the resource layout of
// the dataset: customer reads under /customers, product reads under /products.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/customers", func(r chi.Router) {
		r.Get("/birthday", s.handleBirthdays)
		r.Get("/last-order-per-customer", s.handleLastOrders)
	})

	s.router.Route("/products", func(r chi.Router) {
		r.Get("/top-selling-products/{year}", s.handleTopProducts)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking; this API serves JSON only
		w.Header().Set("X-Frame-Options", "DENY")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
