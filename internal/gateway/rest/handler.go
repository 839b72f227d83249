package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"primedex/internal/core/auth"
	"primedex/internal/core/catalog"
	"primedex/internal/core/prime"
	"primedex/internal/core/primesdb"
	"primedex/internal/core/pubsub"
	"primedex/internal/events"
	gwconfig "primedex/internal/gateway/config"
)

// Default body size limit for JSON requests
const DefaultMaxBodySize = 1 << 20 // 1MB

// Default request timeout
const DefaultRequestTimeout = 30 * time.Second

type Handler struct {
	primes   *prime.Service
	index    *primesdb.Loader
	catalog  catalog.Store
	auth     *auth.Service
	recorder *events.Recorder
	events   pubsub.Publisher
	cfg      gwconfig.GatewayConfig

	startedAt time.Time
}

// HandlerOption configures optional collaborators of a Handler.
type HandlerOption func(*Handler)

// WithIndex exposes the index loader's stats on the admin endpoint.
func WithIndex(l *primesdb.Loader) HandlerOption {
	return func(h *Handler) { h.index = l }
}

// WithCatalog enables the plate sample endpoint.
func WithCatalog(store catalog.Store) HandlerOption {
	return func(h *Handler) { h.catalog = store }
}

// WithAuth enables the token and admin endpoints.
func WithAuth(svc *auth.Service) HandlerOption {
	return func(h *Handler) { h.auth = svc }
}

// WithRecorder publishes a query event per completed search.
func WithRecorder(rec *events.Recorder, pub pubsub.Publisher) HandlerOption {
	return func(h *Handler) {
		h.recorder = rec
		h.events = pub
	}
}

func NewHandler(primes *prime.Service, cfg gwconfig.GatewayConfig, opts ...HandlerOption) *Handler {
	if primes == nil {
		panic("prime service cannot be nil")
	}

	h := &Handler{
		primes:    primes,
		cfg:       cfg,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Note: Request ID and panic recovery are handled by the unified server middleware
	mux.HandleFunc("GET /healthz", withTimeout(h.handleHealth, 5*time.Second))

	mux.HandleFunc("GET /v1/primes/check", withTimeout(h.handleCheck, DefaultRequestTimeout))
	mux.HandleFunc("GET /v1/primes/closest", withTimeout(h.handleClosest, DefaultRequestTimeout))

	mux.HandleFunc("POST /v1/plates/search", withTimeout(maxBodySize(h.handlePlateSearch, DefaultMaxBodySize), DefaultRequestTimeout))
	mux.HandleFunc("GET /v1/plates/samples", withTimeout(h.handleSamples, DefaultRequestTimeout))

	// Long-lived connection, no timeout wrapper
	mux.HandleFunc("GET /ws/primes/stream", h.handleStream)

	mux.HandleFunc("POST /v1/auth/token", withTimeout(maxBodySize(h.handleToken, DefaultMaxBodySize), DefaultRequestTimeout))
	mux.HandleFunc("GET /v1/admin/info", withTimeout(h.adminOnly(h.handleAdminInfo), DefaultRequestTimeout))
}

// record emits a query event when a recorder is configured.
func (h *Handler) record(kind events.Kind, number uint64, count, results int, elapsed time.Duration) {
	if h.recorder == nil {
		return
	}
	h.recorder.Record(events.NewSearchEvent(kind, number, count, results, elapsed))
}

// adminOnly requires a valid bearer token issued by the auth service.
func (h *Handler) adminOnly(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.auth == nil {
			writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "Admin auth is not configured")
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Bearer token required")
			return
		}

		if _, err := h.auth.ValidateToken(token); err != nil {
			writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid or expired token")
			return
		}

		handler(w, r)
	}
}

// maxBodySize wraps a handler with request body size limiting
func maxBodySize(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// withTimeout wraps a handler with a context timeout
func withTimeout(next http.HandlerFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}
