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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorSet_AddDeduplicates(t *testing.T) {
	a := generateTestAnchor(t, "Test Root A")

	set := NewAnchorSet()
	assert.True(t, set.Add(a))
	assert.Equal(t, 1, set.Len())

	// Same encoding through a distinct object
	dup, err := ParseAnchor(a.Raw())
	require.NoError(t, err)
	assert.False(t, set.Add(dup))
	assert.Equal(t, 1, set.Len())
	assert.Len(t, set.Anchors(), 1)
}

func TestAnchorSet_AddNil(t *testing.T) {
	set := NewAnchorSet()
	assert.False(t, set.Add(nil))
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains(nil))
}

func TestAnchorSet_ContainsByIdentity(t *testing.T) {
	a := generateTestAnchor(t, "Test Root A")
	b := generateTestAnchor(t, "Test Root A") // same name, different bytes

	set := NewAnchorSet(a)

	dup, err := ParseAnchor(a.Raw())
	require.NoError(t, err)
	assert.True(t, set.Contains(dup))
	assert.False(t, set.Contains(b))
}

func TestAnchorSet_PreservesInsertionOrder(t *testing.T) {
	a := generateTestAnchor(t, "Test Root A")
	b := generateTestAnchor(t, "Test Root B")
	c := generateTestAnchor(t, "Test Root C")

	set := NewAnchorSet(b, a, c)

	anchors := set.Anchors()
	require.Len(t, anchors, 3)
	assert.True(t, anchors[0].Equal(b))
	assert.True(t, anchors[1].Equal(a))
	assert.True(t, anchors[2].Equal(c))
}

func TestAnchorSet_AnchorsIsACopy(t *testing.T) {
	a := generateTestAnchor(t, "Test Root A")
	set := NewAnchorSet(a)

	anchors := set.Anchors()
	anchors[0] = nil

	require.Len(t, set.Anchors(), 1)
	assert.NotNil(t, set.Anchors()[0])
}
