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

package truststore

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jeremyhahn/go-truststore/pkg/logging"
	"github.com/jeremyhahn/go-truststore/pkg/metrics"
)

// Environment variables that override the built-in search locations,
// following the OpenSSL convention.
const (
	// CertFileEnv names a single CA bundle file. When set and non-empty
	// it replaces the built-in candidate file list entirely.
	CertFileEnv = "SSL_CERT_FILE"

	// CertDirEnv names one or more certificate directories, separated by
	// the platform's path-list separator. When set and non-empty it
	// replaces the built-in candidate directory list entirely.
	CertDirEnv = "SSL_CERT_DIR"
)

// FileSystem abstracts the read operations discovery performs so tests can
// substitute fixtures and observe access counts.
type FileSystem interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WalkFiles returns the non-directory entries reachable recursively
	// beneath root. Bundle directories commonly hold symlinks, so links
	// are included; they resolve (or fail) at read time.
	WalkFiles(root string) ([]string, error)
}

// EnvFunc looks up an environment variable, reporting whether it was set.
// The default is os.LookupEnv.
type EnvFunc func(key string) (string, bool)

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFileSystem) WalkFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DiscovererConfig configures a Discoverer. The zero value (or a nil
// pointer) uses the host defaults.
type DiscovererConfig struct {
	// CertFiles overrides the built-in candidate bundle files.
	CertFiles []string

	// CertDirs overrides the built-in candidate directories.
	CertDirs []string

	// FS overrides the file system collaborator.
	FS FileSystem

	// Env overrides environment lookup.
	Env EnvFunc

	// Logger overrides the default logger.
	Logger *logging.Logger
}

// Discoverer locates root certificates on platforms without a queryable
// native trust-store API by searching a prioritized list of well-known
// bundle files and certificate directories.
type Discoverer struct {
	files  []string
	dirs   []string
	fs     FileSystem
	env    EnvFunc
	logger *logging.Logger
}

// NewDiscoverer creates a Discoverer. A nil config selects the built-in
// candidate lists for the host operating system family.
func NewDiscoverer(cfg *DiscovererConfig) *Discoverer {
	if cfg == nil {
		cfg = &DiscovererConfig{}
	}
	d := &Discoverer{
		files:  cfg.CertFiles,
		dirs:   cfg.CertDirs,
		fs:     cfg.FS,
		env:    cfg.Env,
		logger: cfg.Logger,
	}
	if d.files == nil {
		d.files = certFiles
	}
	if d.dirs == nil {
		d.dirs = certDirectories
	}
	if d.fs == nil {
		d.fs = osFileSystem{}
	}
	if d.env == nil {
		d.env = os.LookupEnv
	}
	if d.logger == nil {
		d.logger = logging.DefaultLogger()
	}
	return d
}

// CandidateFiles returns the bundle files that will be tried, in order,
// after applying the SSL_CERT_FILE override.
func (d *Discoverer) CandidateFiles() []string {
	if v, ok := d.env(CertFileEnv); ok && v != "" {
		return []string{v}
	}
	files := make([]string, len(d.files))
	copy(files, d.files)
	return files
}

// CandidateDirs returns the certificate directories that will be tried, in
// order, after applying the SSL_CERT_DIR override.
func (d *Discoverer) CandidateDirs() []string {
	if v, ok := d.env(CertDirEnv); ok && v != "" {
		return filepath.SplitList(v)
	}
	dirs := make([]string, len(d.dirs))
	copy(dirs, d.dirs)
	return dirs
}

// Discover locates, reads, parses, and de-duplicates root certificates.
//
// The file phase tries each candidate bundle in order and stops at the
// first file that yields at least one certificate; later files are never
// merged in. The directory phase then walks each candidate directory in
// order, merging every certificate found in any file beneath it, and stops
// after the first directory that yielded at least one certificate. The two
// phases are unioned, collapsing duplicates by encoding.
//
// Unreadable candidates and unparseable entries are skipped. Finding
// nothing at all is reported as a warning, never an error; the empty set
// is still usable and simply fails all trust decisions downstream.
func (d *Discoverer) Discover() *AnchorSet {
	start := time.Now()
	set := NewAnchorSet()

	fileOK := false
	for _, path := range d.CandidateFiles() {
		data, err := d.fs.ReadFile(path)
		if err != nil {
			metrics.RecordCandidateSkipped(metrics.PhaseFile)
			d.logger.Debugf("skipping CA bundle %s: %v", path, err)
			continue
		}
		if d.collect(set, path, data) {
			fileOK = true
			break
		}
	}

	dirOK := false
	for _, dir := range d.CandidateDirs() {
		paths, err := d.fs.WalkFiles(dir)
		if err != nil {
			metrics.RecordCandidateSkipped(metrics.PhaseDir)
			d.logger.Debugf("skipping CA directory %s: %v", dir, err)
			continue
		}
		for _, path := range paths {
			data, err := d.fs.ReadFile(path)
			if err != nil {
				metrics.RecordCandidateSkipped(metrics.PhaseDir)
				d.logger.Debugf("skipping CA file %s: %v", path, err)
				continue
			}
			if d.collect(set, path, data) {
				dirOK = true
			}
		}
		// First directory that produced certificates wins; file-phase
		// semantics intentionally differ (first file wins outright).
		if dirOK {
			break
		}
	}

	if !fileOK && !dirOK {
		d.logger.Warnf("no CA certificates were found; set %s or %s to override the search locations",
			CertFileEnv, CertDirEnv)
	}

	metrics.RecordDiscovery(set.Len(), time.Since(start).Seconds())
	d.logger.Debugf("root certificate discovery loaded %d anchors in %s", set.Len(), time.Since(start))
	return set
}

// collect parses data and adds every certificate to set, reporting whether
// at least one certificate was parsed from this candidate.
func (d *Discoverer) collect(set *AnchorSet, path string, data []byte) bool {
	anchors, err := ParseAnchors(data)
	if err != nil {
		metrics.RecordParseError()
		d.logger.Debugf("no certificates in %s: %v", path, err)
		return false
	}
	for _, a := range anchors {
		set.Add(a)
	}
	return true
}

// Process-wide discovered root cache. Discovery performs blocking file IO
// and runs exactly once per process; every caller after the first observes
// the same read-only set.
var (
	systemRootsOnce sync.Once
	systemRoots     *AnchorSet

	// newSystemDiscoverer is swapped by tests to observe the discovery run.
	newSystemDiscoverer = func() *Discoverer { return NewDiscoverer(nil) }
)

// SystemRoots returns the process-wide set of discovered root certificates,
// running discovery on first use. The first caller blocks until the set is
// populated; the result is immutable and shared thereafter.
func SystemRoots() *AnchorSet {
	systemRootsOnce.Do(func() {
		systemRoots = newSystemDiscoverer().Discover()
	})
	return systemRoots
}

// PrimeSystemRoots warms the discovery cache on a background goroutine so
// the first trust decision does not pay for the file-system walk. Optional;
// correctness never depends on it.
func PrimeSystemRoots() {
	go SystemRoots()
}

// ResetSystemRootsForTesting discards the cached discovery result so the
// next SystemRoots call runs discovery again. Test harnesses only; never
// safe concurrently with SystemRoots.
func ResetSystemRootsForTesting() {
	systemRootsOnce = sync.Once{}
	systemRoots = nil
}
