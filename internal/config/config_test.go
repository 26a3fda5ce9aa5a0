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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Trust.DisableSystemRoots)
	assert.Empty(t, cfg.Trust.AdditionalCAFiles)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
trust:
  disable_system_roots: false
  additional_ca_files:
    - /etc/enterprise/roots.pem
  cert_dirs:
    - /opt/certs
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"/etc/enterprise/roots.pem"}, cfg.Trust.AdditionalCAFiles)
	assert.Equal(t, []string{"/opt/certs"}, cfg.Trust.CertDirs)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "trust: [not a mapping")
	cfg, err := Load(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestValidate_InvalidLoggingLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidate_ConflictingTrustSettings(t *testing.T) {
	cfg := Default()
	cfg.Trust.DisableSystemRoots = true
	cfg.Trust.CertDirs = []string{"/opt/certs"}
	assert.Error(t, cfg.Validate())

	cfg.Trust.CertDirs = nil
	assert.NoError(t, cfg.Validate())
}
