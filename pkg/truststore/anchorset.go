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

// AnchorSet is an ordered, de-duplicated collection of trust anchors keyed
// by their exact DER encoding. Insertion order is preserved for
// deterministic enumeration.
//
// AnchorSet is not synchronized. Callers that mutate a set from multiple
// goroutines must serialize access; a set that is never mutated after
// population is safe for unsynchronized concurrent reads.
type AnchorSet struct {
	index   map[string]struct{}
	anchors []*Anchor
}

// NewAnchorSet creates a set containing the given anchors, de-duplicated
// in order. Nil anchors are ignored.
func NewAnchorSet(anchors ...*Anchor) *AnchorSet {
	s := &AnchorSet{
		index: make(map[string]struct{}),
	}
	for _, a := range anchors {
		s.Add(a)
	}
	return s
}

// Add inserts the anchor if no anchor with the same encoding is present.
// Returns true if the anchor was inserted, false if it was already present
// or nil. Re-adding an existing anchor is a no-op, not an error.
func (s *AnchorSet) Add(a *Anchor) bool {
	if a == nil {
		return false
	}
	key := a.key()
	if _, exists := s.index[key]; exists {
		return false
	}
	s.index[key] = struct{}{}
	s.anchors = append(s.anchors, a)
	return true
}

// Contains reports whether an anchor with the same exact encoding is
// present. Membership is identity equality, never object identity.
func (s *AnchorSet) Contains(a *Anchor) bool {
	if a == nil {
		return false
	}
	_, exists := s.index[a.key()]
	return exists
}

// Len returns the number of distinct anchors in the set.
func (s *AnchorSet) Len() int {
	return len(s.anchors)
}

// Anchors returns the anchors in insertion order. The returned slice is a
// fresh copy; the anchors themselves are shared and immutable.
func (s *AnchorSet) Anchors() []*Anchor {
	anchors := make([]*Anchor, len(s.anchors))
	copy(anchors, s.anchors)
	return anchors
}
