// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-truststore.
//
// go-truststore is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package config loads the YAML configuration consumed by the truststore CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration
type Config struct {
	Trust   TrustConfig   `yaml:"trust"`
	Logging LoggingConfig `yaml:"logging"`
}

// TrustConfig controls which anchor sources participate in trust decisions
type TrustConfig struct {
	// DisableSystemRoots selects a store with zero implicit trust.
	DisableSystemRoots bool `yaml:"disable_system_roots"`

	// CertFiles overrides the built-in candidate CA bundle files.
	CertFiles []string `yaml:"cert_files"`

	// CertDirs overrides the built-in candidate certificate directories.
	CertDirs []string `yaml:"cert_dirs"`

	// AdditionalCAFiles are PEM or DER files whose certificates are added
	// as additional trust anchors on top of the system roots.
	AdditionalCAFiles []string `yaml:"additional_ca_files"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	if c.Trust.DisableSystemRoots && (len(c.Trust.CertFiles) > 0 || len(c.Trust.CertDirs) > 0) {
		return fmt.Errorf("cert_files and cert_dirs have no effect when disable_system_roots is set")
	}
	return nil
}
