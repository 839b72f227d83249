package server

import (
	"errors"
	"fmt"
	"net/http"
)

// initHTTPServer builds the http.Server around the shared mux with the
// middleware chain applied. Timeouts come from config so a stalled
// index fetch upstream never translates into hung client connections.
func (s *serverImpl) initHTTPServer() {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.HTTPPort),
		Handler:      s.wrapMiddleware(s.httpMux),
		ReadTimeout:  s.cfg.HTTPReadTimeout,
		WriteTimeout: s.cfg.HTTPWriteTimeout,
		IdleTimeout:  s.cfg.HTTPIdleTimeout,
	}
}

// runHTTPServer serves until Stop closes the listener. A closed server
// is the normal shutdown path, not an error.
func (s *serverImpl) runHTTPServer(errChan chan<- error) {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("http server: %w", err)
	}
}
