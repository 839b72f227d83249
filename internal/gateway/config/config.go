// Package config holds the configuration for the HTTP gateway.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type GatewayConfig struct {
	// DefaultCount is the number of closest primes returned when the
	// client does not ask for a specific count.
	DefaultCount int `yaml:"default_count"`

	// MaxCount caps the number of closest primes a single request may
	// ask for.
	MaxCount int `yaml:"max_count"`

	// MaxPlateParts caps the number of parts accepted in one plate
	// search request.
	MaxPlateParts int `yaml:"max_plate_parts"`

	Stream StreamConfig `yaml:"stream"`
}

type StreamConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowDevOrigin bool     `yaml:"allow_dev_origin"`
}

func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		DefaultCount:  10,
		MaxCount:      512,
		MaxPlateParts: 8,
		Stream: StreamConfig{
			AllowedOrigins: []string{"http://localhost:8080", "http://localhost:3000", "http://localhost:5173"},
			AllowDevOrigin: true,
		},
	}
}

// ApplyDefaults fills in zero values with defaults.
func (g *GatewayConfig) ApplyDefaults() {
	defaults := DefaultGatewayConfig()
	if g.DefaultCount == 0 {
		g.DefaultCount = defaults.DefaultCount
	}
	if g.MaxCount == 0 {
		g.MaxCount = defaults.MaxCount
	}
	if g.MaxPlateParts == 0 {
		g.MaxPlateParts = defaults.MaxPlateParts
	}
	if len(g.Stream.AllowedOrigins) == 0 {
		g.Stream.AllowedOrigins = defaults.Stream.AllowedOrigins
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (g *GatewayConfig) ApplyEnvOverrides() {
	if val := os.Getenv("PRIMEDEX_MAX_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			g.MaxCount = n
		}
	}
}

// Validate returns an error if the configuration is invalid.
func (g *GatewayConfig) Validate() error {
	if g.DefaultCount <= 0 {
		return fmt.Errorf("gateway.default_count must be positive, got %d", g.DefaultCount)
	}
	if g.MaxCount < g.DefaultCount {
		return fmt.Errorf("gateway.max_count (%d) must be at least default_count (%d)", g.MaxCount, g.DefaultCount)
	}
	if g.MaxPlateParts <= 0 {
		return fmt.Errorf("gateway.max_plate_parts must be positive, got %d", g.MaxPlateParts)
	}
	return nil
}
