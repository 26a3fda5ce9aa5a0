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

package cli

import (
	"fmt"
	"os"

	"github.com/jeremyhahn/go-truststore/internal/config"
	"github.com/jeremyhahn/go-truststore/pkg/logging"
	"github.com/jeremyhahn/go-truststore/pkg/truststore"
)

// loadConfig merges the optional config file with command-line flags.
// Flags win over file values.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if noSystemRoots {
		cfg.Trust.DisableSystemRoots = true
	}
	cfg.Trust.AdditionalCAFiles = append(cfg.Trust.AdditionalCAFiles, caFiles...)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newDiscoverer builds the discoverer the CLI inspects, honoring any
// search-location overrides from the configuration file.
func newDiscoverer(cfg *config.Config, logger *logging.Logger) *truststore.Discoverer {
	return truststore.NewDiscoverer(&truststore.DiscovererConfig{
		CertFiles: cfg.Trust.CertFiles,
		CertDirs:  cfg.Trust.CertDirs,
		Logger:    logger,
	})
}

// buildStore constructs the trust store the commands operate on.
func buildStore(cfg *config.Config) (truststore.SystemTrustStore, error) {
	logger := logging.NewLogger(cfg.Logging.Level == "debug")

	var store truststore.SystemTrustStore
	switch {
	case cfg.Trust.DisableSystemRoots:
		store = truststore.New(&truststore.Config{
			DisableSystemRoots: true,
			Logger:             logger,
		})
	case len(cfg.Trust.CertFiles) > 0 || len(cfg.Trust.CertDirs) > 0:
		// Custom search locations bypass the process-wide cache so the
		// configured paths are honored on every invocation.
		roots := newDiscoverer(cfg, logger).Discover()
		store = truststore.New(&truststore.Config{
			System: truststore.NewSetSource(roots),
			Logger: logger,
		})
	default:
		store = truststore.New(&truststore.Config{Logger: logger})
	}

	for _, path := range cfg.Trust.AdditionalCAFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file %s: %w", path, err)
		}
		anchors, err := truststore.ParseAnchors(data)
		if err != nil {
			return nil, fmt.Errorf("no certificates in CA file %s: %w", path, err)
		}
		for _, a := range anchors {
			if err := store.AddTrustAnchor(a); err != nil {
				return nil, err
			}
		}
		printVerbose("added %d anchors from %s", len(anchors), path)
	}
	return store, nil
}
