package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"primedex/internal/core/prime"
	gwconfig "primedex/internal/gateway/config"
)

// oracleSource has no index buffer so every query runs on trial
// division.
type oracleSource struct{}

func (oracleSource) Buffer() ([]byte, bool) { return nil, false }

func newTestMux(t *testing.T, opts ...HandlerOption) *http.ServeMux {
	t.Helper()

	cfg := gwconfig.DefaultGatewayConfig()
	h := NewHandler(prime.NewService(oracleSource{}), cfg, opts...)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body io.Reader, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if out != nil && rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
	}
	return rr
}

func TestHandleHealth(t *testing.T) {
	mux := newTestMux(t)

	var resp HealthResponse
	rr := doJSON(t, mux, "GET", "/healthz", nil, &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", resp.Status)
}

func TestNewHandler_NilServicePanics(t *testing.T) {
	require.Panics(t, func() {
		NewHandler(nil, gwconfig.DefaultGatewayConfig())
	})
}
