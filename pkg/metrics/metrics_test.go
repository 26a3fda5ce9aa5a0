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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsEnabled(t *testing.T) {
	// Metrics should be enabled by default
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled by default")
	}

	Disable()
	if IsEnabled() {
		t.Error("Expected metrics to be disabled after Disable()")
	}

	Enable()
	if !IsEnabled() {
		t.Error("Expected metrics to be enabled after Enable()")
	}
}

func TestRecordDiscovery(t *testing.T) {
	Enable()

	before := testutil.ToFloat64(DiscoveryRuns)
	RecordDiscovery(142, 0.02)

	after := testutil.ToFloat64(DiscoveryRuns)
	if after != before+1 {
		t.Errorf("Expected discovery run counter to increment, got %f -> %f", before, after)
	}

	if got := testutil.ToFloat64(DiscoveredAnchors); got != 142 {
		t.Errorf("Expected 142 discovered anchors, got %f", got)
	}
}

func TestRecordAnchorAdded(t *testing.T) {
	Enable()
	AnchorsAdded.Reset()

	RecordAnchorAdded(LayerAdditional)
	RecordAnchorAdded(LayerAdditional)
	RecordAnchorAdded(LayerSystem)

	if got := testutil.ToFloat64(AnchorsAdded.WithLabelValues(LayerAdditional)); got != 2 {
		t.Errorf("Expected 2 additional anchors recorded, got %f", got)
	}
	if got := testutil.ToFloat64(AnchorsAdded.WithLabelValues(LayerSystem)); got != 1 {
		t.Errorf("Expected 1 system anchor recorded, got %f", got)
	}
}

func TestRecordCandidateSkipped(t *testing.T) {
	Enable()
	CandidatesSkipped.Reset()

	RecordCandidateSkipped(PhaseFile)
	RecordCandidateSkipped(PhaseDir)
	RecordCandidateSkipped(PhaseDir)

	if got := testutil.ToFloat64(CandidatesSkipped.WithLabelValues(PhaseFile)); got != 1 {
		t.Errorf("Expected 1 file-phase skip, got %f", got)
	}
	if got := testutil.ToFloat64(CandidatesSkipped.WithLabelValues(PhaseDir)); got != 2 {
		t.Errorf("Expected 2 dir-phase skips, got %f", got)
	}
}

func TestDisabledRecordingIsNoOp(t *testing.T) {
	Disable()
	defer Enable()

	AnchorsAdded.Reset()
	RecordAnchorAdded(LayerAdditional)

	if got := testutil.ToFloat64(AnchorsAdded.WithLabelValues(LayerAdditional)); got != 0 {
		t.Errorf("Expected no anchors recorded while disabled, got %f", got)
	}
}
