package primesdb

import (
	"fmt"
	"os"
	"time"
)

// Config holds the index data source configuration.
type Config struct {
	// Enabled controls whether an index buffer is loaded at all.
	// When false every primality query runs on trial division.
	Enabled bool `yaml:"enabled"`

	// URL is the remote location of the PrimesDB file, fetched when no
	// local cache exists.
	URL string `yaml:"url"`

	// CacheFile is the local copy of the index. It is read before any
	// network access and written after a successful fetch.
	CacheFile string `yaml:"cache_file"`

	// FetchTimeout bounds the remote download.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// DefaultConfig returns the default index source configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		URL:          "https://github.com/pekesoft/PrimesDB/raw/main/PrimesDB/0000.pdb",
		CacheFile:    "data/primesdb_cache.bin",
		FetchTimeout: 30 * time.Second,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.URL == "" {
		c.URL = defaults.URL
	}
	if c.CacheFile == "" {
		c.CacheFile = defaults.CacheFile
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = defaults.FetchTimeout
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("PRIMEDEX_INDEX_URL"); val != "" {
		c.URL = val
	}
	if val := os.Getenv("PRIMEDEX_INDEX_CACHE_FILE"); val != "" {
		c.CacheFile = val
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.URL == "" && c.CacheFile == "" {
		return fmt.Errorf("index: either url or cache_file must be set when enabled")
	}
	return nil
}
