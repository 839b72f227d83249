package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_AllowsWithinBudget(t *testing.T) {
	l := NewMemoryLimiter(Config{Enabled: true, Requests: 3, Window: time.Minute})
	defer l.(Stoppable).Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a"), "request %d should pass", i)
	}
	assert.False(t, l.Allow("a"), "fourth request should be limited")
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(Config{Enabled: true, Requests: 1, Window: time.Minute})
	defer l.(Stoppable).Stop()

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestMemoryLimiter_Reset(t *testing.T) {
	l := NewMemoryLimiter(Config{Enabled: true, Requests: 1, Window: time.Minute})
	defer l.(Stoppable).Stop()

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	l.Reset("a")
	assert.True(t, l.Allow("a"))
}

func TestMemoryLimiter_Refills(t *testing.T) {
	l := NewMemoryLimiter(Config{Enabled: true, Requests: 10, Window: 100 * time.Millisecond})
	defer l.(Stoppable).Stop()

	for i := 0; i < 10; i++ {
		l.Allow("a")
	}
	assert.False(t, l.Allow("a"))

	time.Sleep(50 * time.Millisecond) // half a window refills ~5 tokens
	assert.True(t, l.Allow("a"))
}

func TestMemoryLimiter_Disabled(t *testing.T) {
	l := NewMemoryLimiter(Config{Enabled: false, Requests: 1, Window: time.Minute})
	defer l.(Stoppable).Stop()

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("a"))
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "10.0.0.1:1234",
			want:       "10.0.0.1",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for chain takes first",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 70.1.2.3"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}
