package services

import (
	"context"
)

// Start runs the HTTP server. It blocks until a fatal error occurs or
// the context is canceled.
func (m *Manager) Start(ctx context.Context) error {
	return m.server.Start(ctx)
}
