package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCheck(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name   string
		number string
		prime  bool
	}{
		{"prime", "101", true},
		{"composite", "100", false},
		{"zero", "0", false},
		{"one", "1", false},
		{"two", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp CheckResponse
			rr := doJSON(t, mux, "GET", "/v1/primes/check?number="+tt.number, nil, &resp)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.prime, resp.Prime)
			assert.Equal(t, "oracle", resp.Source)
		})
	}
}

func TestHandleCheck_BadInput(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing number", "/v1/primes/check"},
		{"not a number", "/v1/primes/check?number=abc"},
		{"negative", "/v1/primes/check?number=-7"},
		{"overflow", "/v1/primes/check?number=99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, mux, "GET", tt.target, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandleClosest(t *testing.T) {
	mux := newTestMux(t)

	var resp ClosestResponse
	rr := doJSON(t, mux, "GET", "/v1/primes/closest?number=100&count=2", nil, &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, MatchJSON{Prime: 101, Distance: 1}, resp.Matches[0])
	assert.Equal(t, MatchJSON{Prime: 103, Distance: 3}, resp.Matches[1])
}

func TestHandleClosest_DefaultCount(t *testing.T) {
	mux := newTestMux(t)

	var resp ClosestResponse
	rr := doJSON(t, mux, "GET", "/v1/primes/closest?number=1000", nil, &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 10, resp.Count)
	assert.Len(t, resp.Matches, 10)
}

func TestHandleClosest_CountClamped(t *testing.T) {
	mux := newTestMux(t)

	var resp ClosestResponse
	rr := doJSON(t, mux, "GET", "/v1/primes/closest?number=50&count=100000", nil, &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 512, resp.Count)
	assert.Len(t, resp.Matches, 512)
}

func TestHandleClosest_BadInput(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing number", "/v1/primes/closest"},
		{"negative count", "/v1/primes/closest?number=10&count=-1"},
		{"garbage count", "/v1/primes/closest?number=10&count=xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, mux, "GET", tt.target, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandleClosest_SortedByDistance(t *testing.T) {
	mux := newTestMux(t)

	var resp ClosestResponse
	rr := doJSON(t, mux, "GET", "/v1/primes/closest?number=1000000&count=20", nil, &resp)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, resp.Matches, 20)
	for i := 1; i < len(resp.Matches); i++ {
		assert.LessOrEqual(t, resp.Matches[i-1].Distance, resp.Matches[i].Distance)
	}
}
