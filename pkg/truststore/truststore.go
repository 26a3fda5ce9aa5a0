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

// Package truststore resolves the root certificates a host platform trusts
// for TLS server authentication and exposes them through one queryable view
// that callers can layer additional trust anchors onto without mutating the
// platform's own root store.
//
// A SystemTrustStore composes up to three layers: the platform's anchor
// source (a native keystore query engine, or the file-system discovery
// fallback on platforms without one), a per-instance set of caller-added
// anchors, and an optional set of test anchors supplied at construction.
// Trust membership is the union of the layers; classification operations
// distinguish vendor-shipped roots from everything else.
package truststore

import (
	"crypto/x509"

	"github.com/jeremyhahn/go-truststore/pkg/logging"
)

// Source supplies system trust anchors to a SystemTrustStore. Platform
// keystore bindings (NSS, Keychain, CryptoAPI) implement this contract;
// the package's own discovery fallback provides one built from the file
// system.
//
// All implementations must be safe for concurrent use.
type Source interface {
	// Contains reports whether the source trusts an anchor with the same
	// exact encoding.
	Contains(a *Anchor) bool

	// IsKnownRoot reports whether the anchor is a pre-installed,
	// vendor-shipped root, as opposed to one installed by a user or
	// administrator. Matching is byte-exact.
	IsKnownRoot(a *Anchor) bool

	// Anchors enumerates the source's trust anchors.
	Anchors() []*Anchor
}

// SystemTrustStore is the public entry point for trust-anchor resolution.
// One concrete composition strategy is selected at construction time;
// instances are safe for concurrent use.
type SystemTrustStore interface {
	// UsesSystemTrustStore reports whether platform-provided roots
	// participate in trust decisions. False only for the empty variant.
	UsesSystemTrustStore() bool

	// AddTrustAnchor layers an additional anchor onto this instance.
	// The platform store is never mutated. Idempotent.
	AddTrustAnchor(a *Anchor) error

	// IsAdditionalTrustAnchor reports whether the anchor was added via
	// AddTrustAnchor, distinguishing caller-injected trust from
	// platform trust.
	IsAdditionalTrustAnchor(a *Anchor) bool

	// IsKnownRoot reports whether the anchor is a vendor-shipped root of
	// the platform. Never true for additional or test anchors.
	IsKnownRoot(a *Anchor) bool

	// Contains reports whether any layer trusts the anchor. This is the
	// membership predicate consumed by path-building logic.
	Contains(a *Anchor) bool

	// Anchors enumerates the composed trust view, de-duplicated.
	Anchors() []*Anchor

	// CertPool returns the composed trust view as an x509.CertPool for
	// use with crypto/x509 verification.
	CertPool() *x509.CertPool
}

// Config selects the composition strategy for a SystemTrustStore.
type Config struct {
	// System supplies the platform anchor source. When nil and system
	// roots are not disabled, the file-system discovery fallback is used.
	System Source

	// DisableSystemRoots selects the empty variant: no platform roots
	// participate and IsKnownRoot is false for every input. Additional
	// anchors still work.
	DisableSystemRoots bool

	// TestAnchors, when non-nil, is layered in transparently: its anchors
	// are trusted but are never additional anchors or known roots. The
	// set must be fully populated before construction; anchors added to
	// it afterwards are not observed by this instance.
	TestAnchors *AnchorSet

	// Logger overrides the default logger.
	Logger *logging.Logger
}

// systemStore is the single SystemTrustStore implementation; the variants
// differ only in the composer's system source and the uses flag.
type systemStore struct {
	comp *composer
	uses bool
}

// New creates a SystemTrustStore for the given configuration. A nil config
// selects the platform default: the native source when one is supplied by
// the build, otherwise the discovery fallback.
func New(cfg *Config) SystemTrustStore {
	if cfg == nil {
		cfg = &Config{}
	}
	switch {
	case cfg.DisableSystemRoots:
		return &systemStore{
			comp: newComposer(nil, cfg.TestAnchors, cfg.Logger),
			uses: false,
		}
	case cfg.System != nil:
		return &systemStore{
			comp: newComposer(cfg.System, cfg.TestAnchors, cfg.Logger),
			uses: true,
		}
	default:
		return &systemStore{
			comp: newComposer(NewSetSource(SystemRoots()), cfg.TestAnchors, cfg.Logger),
			uses: true,
		}
	}
}

// NewEmpty creates the empty variant: zero implicit trust, usable by tests
// and by configurations that explicitly disable system roots.
func NewEmpty() SystemTrustStore {
	return New(&Config{DisableSystemRoots: true})
}

func (s *systemStore) UsesSystemTrustStore() bool {
	return s.uses
}

func (s *systemStore) AddTrustAnchor(a *Anchor) error {
	return s.comp.addTrustAnchor(a)
}

func (s *systemStore) IsAdditionalTrustAnchor(a *Anchor) bool {
	return s.comp.isAdditionalTrustAnchor(a)
}

func (s *systemStore) IsKnownRoot(a *Anchor) bool {
	return s.comp.isKnownRoot(a)
}

func (s *systemStore) Contains(a *Anchor) bool {
	return s.comp.contains(a)
}

func (s *systemStore) Anchors() []*Anchor {
	return s.comp.anchors()
}

func (s *systemStore) CertPool() *x509.CertPool {
	pool := x509.NewCertPool()
	for _, a := range s.comp.anchors() {
		pool.AddCert(a.Certificate())
	}
	return pool
}

// setSource adapts a read-only AnchorSet into a Source. Every anchor in the
// set is treated as a vendor-shipped root, matching the semantics of
// platforms whose entire system store ships with the OS image.
type setSource struct {
	set *AnchorSet
}

// NewSetSource wraps a populated anchor set as a system Source. The set
// must not be mutated after the source is created.
func NewSetSource(set *AnchorSet) Source {
	if set == nil {
		set = NewAnchorSet()
	}
	return setSource{set: set}
}

func (s setSource) Contains(a *Anchor) bool {
	return s.set.Contains(a)
}

func (s setSource) IsKnownRoot(a *Anchor) bool {
	return s.set.Contains(a)
}

func (s setSource) Anchors() []*Anchor {
	return s.set.Anchors()
}

// Verify interface compliance at compile time
var _ SystemTrustStore = (*systemStore)(nil)
var _ Source = setSource{}
