package services

import (
	"context"
	"fmt"

	"primedex/internal/core/auth"
	"primedex/internal/core/catalog"
	"primedex/internal/core/prime"
	"primedex/internal/core/primesdb"
	"primedex/internal/events"
	"primedex/internal/gateway"
	"primedex/internal/server"
)

// Init builds all components in dependency order. A missing index or
// an unreachable event broker degrades the service instead of failing
// startup; only the network layer is mandatory.
func (m *Manager) Init(ctx context.Context) error {
	m.initPrimeService(ctx)

	if err := m.initCatalog(ctx); err != nil {
		return err
	}

	m.initEvents()

	if err := m.initAuth(); err != nil {
		return err
	}

	return m.initServer()
}

// initPrimeService loads the packed index and builds the query facade.
// The loader doubles as the facade's source: when nothing could be
// loaded it reports no buffer and every query falls back to trial
// division.
func (m *Manager) initPrimeService(ctx context.Context) {
	m.loader = primesdb.New(m.cfg.Index)

	if m.cfg.Index.Enabled {
		if err := m.loader.Load(ctx); err != nil {
			m.logger.Warn("Index unavailable, queries fall back to trial division", "error", err)
		} else {
			stats := m.loader.Stats()
			m.logger.Info("Index loaded", "size", stats.Size, "origin", stats.Origin)
		}
	}

	m.primes = prime.NewService(m.loader)
}

func (m *Manager) initCatalog(ctx context.Context) error {
	store, err := catalog.Open(ctx, m.cfg.Catalog)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	m.catalog = store
	m.logger.Info("Catalog ready", "backend", store.Backend())
	return nil
}

func (m *Manager) initEvents() {
	pub, nc, err := events.OpenPublisher(m.cfg.Events)
	if err != nil {
		m.logger.Warn("Event publisher unavailable, queries will not be recorded", "error", err)
		return
	}
	m.publisher = pub
	m.natsConn = nc
	m.recorder = events.NewRecorder(pub)
}

func (m *Manager) initAuth() error {
	if !m.cfg.Auth.Enabled {
		return nil
	}

	svc, err := auth.NewService(m.cfg.Auth)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}
	m.auth = svc
	return nil
}

func (m *Manager) initServer() error {
	m.server = server.New(m.cfg.Server, m.logger)

	opts := []gateway.ServerOption{
		gateway.WithIndex(m.loader),
		gateway.WithCatalog(m.catalog),
	}
	if m.auth != nil {
		opts = append(opts, gateway.WithAuth(m.auth))
	}
	if m.recorder != nil {
		opts = append(opts, gateway.WithRecorder(m.recorder, m.publisher))
	}

	gw := gateway.NewServer(m.primes, m.cfg.Gateway, opts...)
	gw.RegisterRoutes(m.server.HTTPMux())
	return nil
}
