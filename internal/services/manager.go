// Package services wires the application components together and owns
// their lifecycle.
package services

import (
	"log/slog"

	natsio "github.com/nats-io/nats.go"

	"primedex/internal/config"
	"primedex/internal/core/auth"
	"primedex/internal/core/catalog"
	"primedex/internal/core/prime"
	"primedex/internal/core/primesdb"
	"primedex/internal/core/pubsub"
	"primedex/internal/events"
	"primedex/internal/server"
)

type Manager struct {
	cfg    *config.Config
	logger *slog.Logger

	loader    *primesdb.Loader
	primes    *prime.Service
	catalog   catalog.Store
	publisher pubsub.Publisher
	natsConn  *natsio.Conn
	recorder  *events.Recorder
	auth      *auth.Service
	server    server.Service
}

func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		cfg:    cfg,
		logger: logger,
	}
}

// Primes exposes the query facade, mainly for tests.
func (m *Manager) Primes() *prime.Service {
	return m.primes
}

// Server exposes the network layer, mainly for tests.
func (m *Manager) Server() server.Service {
	return m.server
}
