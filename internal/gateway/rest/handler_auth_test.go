package rest

import (
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedex/internal/core/auth"
)

func newTestAuth(t *testing.T) *auth.Service {
	t.Helper()

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	svc, err := auth.NewService(auth.Config{
		Enabled:           true,
		PrivateKeyFile:    filepath.Join(t.TempDir(), "key.pem"),
		AdminPasswordHash: hash,
		TokenTTL:          time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestHandleToken(t *testing.T) {
	mux := newTestMux(t, WithAuth(newTestAuth(t)))

	var resp TokenResponse
	rr := doJSON(t, mux, "POST", "/v1/auth/token", strings.NewReader(`{"password": "hunter2"}`), &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 60, resp.ExpiresIn)
}

func TestHandleToken_WrongPassword(t *testing.T) {
	mux := newTestMux(t, WithAuth(newTestAuth(t)))

	rr := doJSON(t, mux, "POST", "/v1/auth/token", strings.NewReader(`{"password": "nope"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleToken_MissingPassword(t *testing.T) {
	mux := newTestMux(t, WithAuth(newTestAuth(t)))

	rr := doJSON(t, mux, "POST", "/v1/auth/token", strings.NewReader(`{}`), nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleToken_AuthDisabled(t *testing.T) {
	mux := newTestMux(t)

	rr := doJSON(t, mux, "POST", "/v1/auth/token", strings.NewReader(`{"password": "hunter2"}`), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
