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
	"sync"

	"github.com/jeremyhahn/go-truststore/pkg/logging"
	"github.com/jeremyhahn/go-truststore/pkg/metrics"
)

// composer layers a system anchor source, a per-instance mutable set of
// additional anchors, and an optional set of test anchors into one queryable
// trust view.
//
// The system and test layers are captured at construction and never mutated
// through the composer. Only the additional layer changes after
// construction, so it alone is guarded by the mutex.
type composer struct {
	system Source     // may be nil (empty variant)
	test   *AnchorSet // snapshot reference, may be nil
	logger *logging.Logger

	mu         sync.RWMutex
	additional *AnchorSet
}

func newComposer(system Source, test *AnchorSet, logger *logging.Logger) *composer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &composer{
		system:     system,
		test:       test,
		logger:     logger,
		additional: NewAnchorSet(),
	}
}

// addTrustAnchor inserts the anchor into the additional layer. The system
// and test layers are never mutated. Idempotent for identical encodings.
func (c *composer) addTrustAnchor(a *Anchor) error {
	if a == nil {
		return ErrNilAnchor
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.additional.Add(a) {
		metrics.RecordAnchorAdded(metrics.LayerAdditional)
		c.logger.Debugf("added trust anchor: %s", a.Subject())
	}
	return nil
}

// isAdditionalTrustAnchor reports membership in the additional layer only.
// It distinguishes caller-injected trust from platform trust.
func (c *composer) isAdditionalTrustAnchor(a *Anchor) bool {
	if a == nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.additional.Contains(a)
}

// isKnownRoot reports whether the anchor is a vendor-shipped root in the
// system layer. Requires a byte-exact match; anchors known only to the
// additional or test layers are never known roots.
func (c *composer) isKnownRoot(a *Anchor) bool {
	if a == nil || c.system == nil {
		return false
	}
	return c.system.IsKnownRoot(a)
}

// contains is the trust-membership predicate: the anchor is trusted if any
// layer contains it.
func (c *composer) contains(a *Anchor) bool {
	if a == nil {
		return false
	}
	if c.system != nil && c.system.Contains(a) {
		return true
	}
	if c.test != nil && c.test.Contains(a) {
		return true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.additional.Contains(a)
}

// anchors enumerates the composed view in layer order (system, additional,
// test), collapsing duplicates by encoding.
func (c *composer) anchors() []*Anchor {
	merged := NewAnchorSet()
	if c.system != nil {
		for _, a := range c.system.Anchors() {
			merged.Add(a)
		}
	}

	c.mu.RLock()
	for _, a := range c.additional.Anchors() {
		merged.Add(a)
	}
	c.mu.RUnlock()

	if c.test != nil {
		for _, a := range c.test.Anchors() {
			merged.Add(a)
		}
	}
	return merged.Anchors()
}
