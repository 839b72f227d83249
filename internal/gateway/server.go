// Package gateway registers the public API routes.
package gateway

import (
	"net/http"

	"primedex/internal/core/auth"
	"primedex/internal/core/catalog"
	"primedex/internal/core/prime"
	"primedex/internal/core/primesdb"
	"primedex/internal/core/pubsub"
	"primedex/internal/events"
	gwconfig "primedex/internal/gateway/config"
	"primedex/internal/gateway/rest"
)

// Server is a route registrar for the API layer.
type Server struct {
	rest *rest.Handler
}

// ServerOption configures optional collaborators of a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	index    *primesdb.Loader
	catalog  catalog.Store
	auth     *auth.Service
	recorder *events.Recorder
	events   pubsub.Publisher
}

// WithIndex exposes index loader stats on the admin endpoint.
func WithIndex(l *primesdb.Loader) ServerOption {
	return func(c *serverConfig) { c.index = l }
}

// WithCatalog enables the plate sample endpoint.
func WithCatalog(store catalog.Store) ServerOption {
	return func(c *serverConfig) { c.catalog = store }
}

// WithAuth enables the token and admin endpoints.
func WithAuth(svc *auth.Service) ServerOption {
	return func(c *serverConfig) { c.auth = svc }
}

// WithRecorder publishes a query event per completed search.
func WithRecorder(rec *events.Recorder, pub pubsub.Publisher) ServerOption {
	return func(c *serverConfig) {
		c.recorder = rec
		c.events = pub
	}
}

// NewServer creates a new API Server (route registrar).
func NewServer(primes *prime.Service, cfg gwconfig.GatewayConfig, opts ...ServerOption) *Server {
	sc := &serverConfig{}
	for _, opt := range opts {
		opt(sc)
	}

	var restOpts []rest.HandlerOption
	if sc.index != nil {
		restOpts = append(restOpts, rest.WithIndex(sc.index))
	}
	if sc.catalog != nil {
		restOpts = append(restOpts, rest.WithCatalog(sc.catalog))
	}
	if sc.auth != nil {
		restOpts = append(restOpts, rest.WithAuth(sc.auth))
	}
	if sc.recorder != nil {
		restOpts = append(restOpts, rest.WithRecorder(sc.recorder, sc.events))
	}

	return &Server{
		rest: rest.NewHandler(primes, cfg, restOpts...),
	}
}

// RegisterRoutes registers all API routes to the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	s.rest.RegisterRoutes(mux)
}
