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

import "errors"

// Anchor errors
var (
	// ErrNilAnchor is returned when a nil or empty trust anchor is supplied.
	ErrNilAnchor = errors.New("truststore: nil trust anchor")

	// ErrCertParse is returned when bytes do not parse as a certificate.
	ErrCertParse = errors.New("truststore: certificate parse failed")

	// ErrNoCertificates is returned when input contains no parseable certificates.
	ErrNoCertificates = errors.New("truststore: no certificates found")
)

// Configuration errors
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("truststore: invalid configuration")
)
