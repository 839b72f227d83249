package events

import (
	"fmt"
	"os"
)

// Backend selects the event transport.
const (
	BackendMemory = "memory"
	BackendNATS   = "nats"
)

// Config holds event publishing configuration.
type Config struct {
	// Backend is "memory" or "nats".
	Backend string `yaml:"backend"`

	// NATSURL is the server address for the nats backend.
	NATSURL string `yaml:"nats_url"`

	// Stream is the JetStream stream name for the nats backend.
	Stream string `yaml:"stream"`

	// SubjectPrefix is prepended to all publish subjects.
	SubjectPrefix string `yaml:"subject_prefix"`

	// Capacity bounds the memory backend's ring buffer.
	Capacity int `yaml:"capacity"`
}

// DefaultConfig returns the default events configuration.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendMemory,
		NATSURL:       "nats://localhost:4222",
		Stream:        "PRIMEDEX",
		SubjectPrefix: "primedex",
		Capacity:      128,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	if c.NATSURL == "" {
		c.NATSURL = defaults.NATSURL
	}
	if c.Stream == "" {
		c.Stream = defaults.Stream
	}
	if c.SubjectPrefix == "" {
		c.SubjectPrefix = defaults.SubjectPrefix
	}
	if c.Capacity == 0 {
		c.Capacity = defaults.Capacity
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("PRIMEDEX_EVENTS_BACKEND"); val != "" {
		c.Backend = val
	}
	if val := os.Getenv("PRIMEDEX_NATS_URL"); val != "" {
		c.NATSURL = val
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendNATS:
	default:
		return fmt.Errorf("events: unknown backend %q", c.Backend)
	}
	if c.Backend == BackendNATS && c.NATSURL == "" {
		return fmt.Errorf("events: nats_url is required for the nats backend")
	}
	return nil
}
