package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		HTTPPort: 8080,
	}
	srv := New(cfg, nil)
	require.NotNil(t, srv)
}

func TestServer_StartStop(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		HTTPPort: 0, // Let OS choose
	}
	srv := New(cfg, nil)
	require.NotNil(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	// Give it a moment to start
	time.Sleep(100 * time.Millisecond)

	err := srv.Stop(context.Background())
	assert.NoError(t, err)

	cancel() // Signal Start to exit

	select {
	case err := <-errChan:
		assert.NoError(t, err) // Should be nil on normal shutdown
	case <-time.After(1 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestServer_DoubleStart(t *testing.T) {
	srv := New(Config{Host: "localhost", HTTPPort: 0}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)

	err := srv.Start(ctx)
	assert.Error(t, err)

	_ = srv.Stop(context.Background())
}

func TestServer_RegisterHTTPHandler(t *testing.T) {
	srv := New(Config{}, nil)

	srv.RegisterHTTPHandler("/test", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	mux := srv.HTTPMux()
	require.NotNil(t, mux)

	req := httptest.NewRequest("GET", "/test", nil)
	h, pattern := mux.Handler(req)
	assert.Equal(t, "/test", pattern)
	assert.NotNil(t, h)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.NotZero(t, cfg.HTTPReadTimeout)
	assert.NotZero(t, cfg.ShutdownTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.HTTPPort = 70000
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RateLimit.Requests = 0
	assert.Error(t, cfg.Validate())
}
