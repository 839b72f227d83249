// Package catalog serves the demo database of precomputed primes used
// for example plates. It is demo data, not correctness-bearing: when
// the configured backend is unreachable the factory degrades to an
// in-memory store seeded by trial division instead of failing startup.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"primedex/internal/core/catalog/memory"
	"primedex/internal/core/catalog/mongo"
)

// Store provides read access to the demo prime collection.
type Store interface {
	// Count returns the number of primes in the catalog.
	Count(ctx context.Context) (int64, error)

	// Sample returns up to n random primes from the catalog.
	Sample(ctx context.Context, n int) ([]uint64, error)

	// Backend names the implementation for diagnostics.
	Backend() string

	// Close releases resources.
	Close(ctx context.Context) error
}

// Backend selects the catalog implementation.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config holds the catalog configuration.
type Config struct {
	// Backend is "memory" or "mongo".
	Backend string `yaml:"backend"`

	// URI and Database locate the mongo catalog.
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`

	// SeedLimit is the exclusive upper bound for the memory backend's
	// generated primes.
	SeedLimit uint64 `yaml:"seed_limit"`
}

// DefaultConfig returns the default catalog configuration.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendMemory,
		URI:       "mongodb://localhost:27017",
		Database:  "primedex",
		SeedLimit: 10000,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	if c.URI == "" {
		c.URI = defaults.URI
	}
	if c.Database == "" {
		c.Database = defaults.Database
	}
	if c.SeedLimit == 0 {
		c.SeedLimit = defaults.SeedLimit
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("PRIMEDEX_CATALOG_BACKEND"); val != "" {
		c.Backend = val
	}
	if val := os.Getenv("PRIMEDEX_MONGO_URI"); val != "" {
		c.URI = val
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("catalog: unknown backend %q", c.Backend)
	}
	if c.Backend == BackendMongo && c.URI == "" {
		return fmt.Errorf("catalog: uri is required for the mongo backend")
	}
	return nil
}

// Open constructs the configured Store. A mongo backend that cannot be
// reached degrades to the memory store with a warning.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if cfg.Backend == BackendMongo {
		store, err := mongo.NewStore(ctx, cfg.URI, cfg.Database)
		if err == nil {
			return store, nil
		}
		slog.Warn("Catalog mongo backend unavailable, using memory store", "uri", cfg.URI, "error", err)
	}
	return memory.NewStore(cfg.SeedLimit), nil
}
