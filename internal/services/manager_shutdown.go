package services

import (
	"context"
)

// Shutdown stops the server and releases component resources. Errors
// are logged, not returned; shutdown always runs to completion.
func (m *Manager) Shutdown(ctx context.Context) {
	if m.server != nil {
		if err := m.server.Stop(ctx); err != nil {
			m.logger.Error("Error stopping server", "error", err)
		}
	}

	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			m.logger.Error("Error closing event publisher", "error", err)
		}
	}
	if m.natsConn != nil {
		m.logger.Info("Closing NATS connection")
		m.natsConn.Close()
	}

	if m.catalog != nil {
		if err := m.catalog.Close(ctx); err != nil {
			m.logger.Error("Error closing catalog", "error", err)
		}
	}
}
