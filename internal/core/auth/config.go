package auth

import (
	"fmt"
	"os"
	"time"
)

// Config holds admin authentication configuration.
type Config struct {
	// Enabled gates the admin endpoints. When false no token can be
	// issued and the token and admin routes answer 503.
	Enabled bool `yaml:"enabled"`

	// PrivateKeyFile is the RSA signing key, generated on first start
	// when missing.
	PrivateKeyFile string `yaml:"private_key_file"`

	// AdminPasswordHash is the bcrypt hash exchanged for a token.
	AdminPasswordHash string `yaml:"admin_password_hash"`

	// TokenTTL bounds issued token lifetime.
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// DefaultConfig returns the default auth configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		PrivateKeyFile: "data/admin_signing_key.pem",
		TokenTTL:       time.Hour,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.PrivateKeyFile == "" {
		c.PrivateKeyFile = defaults.PrivateKeyFile
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = defaults.TokenTTL
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("PRIMEDEX_ADMIN_PASSWORD_HASH"); val != "" {
		c.AdminPasswordHash = val
		c.Enabled = true
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("auth: admin_password_hash is required when enabled")
	}
	return nil
}
