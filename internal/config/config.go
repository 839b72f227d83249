// Package config assembles the application configuration from defaults,
// YAML files and environment variables.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"primedex/internal/core/auth"
	"primedex/internal/core/catalog"
	"primedex/internal/core/primesdb"
	"primedex/internal/events"
	gateway "primedex/internal/gateway/config"
	"primedex/internal/server"
)

// Config holds the application configuration
type Config struct {
	Server  server.Config         `yaml:"server"`
	Logging LoggingConfig         `yaml:"logging"`
	Gateway gateway.GatewayConfig `yaml:"gateway"`

	// Components
	Index   primesdb.Config `yaml:"index"`
	Catalog catalog.Config  `yaml:"catalog"`
	Events  events.Config   `yaml:"events"`
	Auth    auth.Config     `yaml:"auth"`
}

// ServiceConfig defines the standard configuration lifecycle methods.
// Each component config implements this interface to keep configuration
// handling consistent across the application.
type ServiceConfig interface {
	// ApplyDefaults fills zero values with sensible defaults
	ApplyDefaults()

	// ApplyEnvOverrides applies environment variable overrides
	ApplyEnvOverrides()

	// Validate returns an error if the configuration is invalid
	Validate() error
}

// ApplyServiceConfigs applies the configuration lifecycle to all component
// configs. It calls ApplyDefaults, ApplyEnvOverrides and Validate in order.
func ApplyServiceConfigs(configs ...ServiceConfig) error {
	for _, cfg := range configs {
		cfg.ApplyDefaults()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig loads configuration from files and environment variables.
// Order: defaults -> config.yml -> config.local.yml -> ApplyEnvOverrides -> Validate
func LoadConfig() *Config {
	// 1. Start with default values (so YAML can override them, including bool fields)
	cfg := &Config{
		Server:  server.DefaultConfig(),
		Logging: DefaultLoggingConfig(),
		Gateway: gateway.DefaultGatewayConfig(),
		Index:   primesdb.DefaultConfig(),
		Catalog: catalog.DefaultConfig(),
		Events:  events.DefaultConfig(),
		Auth:    auth.DefaultConfig(),
	}

	// 2. Load config.yml (overrides defaults)
	loadFile("config/config.yml", cfg)

	// 3. Load config.local.yml (overrides config.yml)
	loadFile("config/config.local.yml", cfg)

	// 4. Apply the configuration lifecycle to each component
	cfg.Logging.ApplyDefaults()
	if err := ApplyServiceConfigs(
		&cfg.Server,
		&cfg.Gateway,
		&cfg.Index,
		&cfg.Catalog,
		&cfg.Events,
		&cfg.Auth,
	); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	return cfg
}

func loadFile(filename string, cfg *Config) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return // File doesn't exist, skip
		}
		log.Printf("Warning: Error reading %s: %v", filename, err)
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("Warning: Error parsing %s: %v", filename, err)
	}
}
