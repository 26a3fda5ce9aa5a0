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

// Package metrics provides Prometheus instrumentation for trust-anchor
// resolution: discovery runs, anchors loaded per layer, skipped candidates,
// and parse failures.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all truststore metrics
	Namespace = "truststore"

	// Label names
	LabelLayer = "layer"
	LabelPhase = "phase"

	// Layer values
	LayerSystem     = "system"
	LayerAdditional = "additional"
	LayerTest       = "test"

	// Discovery phase values
	PhaseFile = "file"
	PhaseDir  = "dir"
)

var (
	// DiscoveryRuns counts root-certificate discovery runs. Under normal
	// operation this is at most one per process.
	DiscoveryRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "discovery_runs_total",
			Help:      "Total number of root certificate discovery runs",
		},
	)

	// DiscoveryDuration tracks how long a discovery run took in seconds.
	DiscoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "discovery_duration_seconds",
			Help:      "Duration of root certificate discovery runs in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// DiscoveredAnchors reports the number of anchors the last discovery
	// run produced.
	DiscoveredAnchors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "discovered_anchors",
			Help:      "Number of trust anchors produced by the last discovery run",
		},
	)

	// AnchorsAdded counts anchors inserted into a trust layer, by layer.
	AnchorsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "anchors_added_total",
			Help:      "Total number of trust anchors added, by layer",
		},
		[]string{LabelLayer},
	)

	// CandidatesSkipped counts unreadable or inaccessible search
	// candidates, by discovery phase.
	CandidatesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_skipped_total",
			Help:      "Total number of unreadable discovery candidates skipped, by phase",
		},
		[]string{LabelPhase},
	)

	// ParseErrors counts candidates whose bytes yielded no certificate.
	ParseErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "parse_errors_total",
			Help:      "Total number of candidates that contained no parseable certificate",
		},
	)

	// enabled tracks whether metrics collection is enabled
	enabled atomic.Bool
)

func init() {
	// Metrics are enabled by default
	enabled.Store(true)
}

// RecordDiscovery records one completed discovery run with the number of
// anchors it produced and its duration in seconds.
func RecordDiscovery(anchors int, duration float64) {
	if !enabled.Load() {
		return
	}
	DiscoveryRuns.Inc()
	DiscoveryDuration.Observe(duration)
	DiscoveredAnchors.Set(float64(anchors))
}

// RecordAnchorAdded records an anchor inserted into the given layer
// (use the Layer* constants).
func RecordAnchorAdded(layer string) {
	if !enabled.Load() {
		return
	}
	AnchorsAdded.WithLabelValues(layer).Inc()
}

// RecordCandidateSkipped records an unreadable discovery candidate in the
// given phase (use the Phase* constants).
func RecordCandidateSkipped(phase string) {
	if !enabled.Load() {
		return
	}
	CandidatesSkipped.WithLabelValues(phase).Inc()
}

// RecordParseError records a candidate that contained no parseable
// certificate.
func RecordParseError() {
	if !enabled.Load() {
		return
	}
	ParseErrors.Inc()
}

// Enable turns metrics collection on.
func Enable() {
	enabled.Store(true)
}

// Disable turns metrics collection off. Recording functions become no-ops.
func Disable() {
	enabled.Store(false)
}

// IsEnabled reports whether metrics collection is enabled.
func IsEnabled() bool {
	return enabled.Load()
}
