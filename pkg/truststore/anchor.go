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
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// Anchor is a single trust anchor: a parsed X.509 certificate together with
// its exact DER encoding. Anchors are immutable once created and are compared
// by their raw encoding, never by subject or public key. Two certificates
// with identical names but different encodings are different anchors.
type Anchor struct {
	cert *x509.Certificate
	raw  []byte
}

// NewAnchor wraps an already-parsed certificate as a trust anchor.
// Returns ErrNilAnchor if cert is nil or carries no raw encoding.
func NewAnchor(cert *x509.Certificate) (*Anchor, error) {
	if cert == nil || len(cert.Raw) == 0 {
		return nil, ErrNilAnchor
	}
	raw := make([]byte, len(cert.Raw))
	copy(raw, cert.Raw)
	return &Anchor{cert: cert, raw: raw}, nil
}

// ParseAnchor parses a single DER-encoded certificate into a trust anchor.
func ParseAnchor(der []byte) (*Anchor, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCertParse, err)
	}
	return NewAnchor(cert)
}

// pemPrefix marks text-armored input. Leading whitespace and comment lines
// before the first block are tolerated, matching OpenSSL bundle files.
var pemPrefix = []byte("-----BEGIN ")

// ParseAnchors parses data as a concatenation of zero or more certificates,
// auto-detecting the encoding. PEM input may interleave non-certificate
// blocks and comments; those are skipped. DER input is treated as a raw
// concatenation of certificates.
//
// All parseable certificates are returned. ErrNoCertificates is returned
// only when no certificate could be extracted at all.
func ParseAnchors(data []byte) ([]*Anchor, error) {
	if bytes.Contains(data, pemPrefix) {
		return parsePEMAnchors(data)
	}
	certs, err := x509.ParseCertificates(data)
	if err != nil && len(certs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoCertificates, err)
	}
	anchors := make([]*Anchor, 0, len(certs))
	for _, cert := range certs {
		anchor, err := NewAnchor(cert)
		if err != nil {
			continue
		}
		anchors = append(anchors, anchor)
	}
	if len(anchors) == 0 {
		return nil, ErrNoCertificates
	}
	return anchors, nil
}

// parsePEMAnchors walks every PEM block in data, collecting the CERTIFICATE
// blocks that parse. Blocks of other types and undecodable certificates are
// skipped so one bad entry does not poison an otherwise valid bundle.
func parsePEMAnchors(data []byte) ([]*Anchor, error) {
	var anchors []*Anchor
	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		anchor, err := NewAnchor(cert)
		if err != nil {
			continue
		}
		anchors = append(anchors, anchor)
	}
	if len(anchors) == 0 {
		return nil, ErrNoCertificates
	}
	return anchors, nil
}

// Certificate returns the parsed certificate backing this anchor.
// Callers must not modify the returned certificate.
func (a *Anchor) Certificate() *x509.Certificate {
	return a.cert
}

// Raw returns a copy of the anchor's DER encoding.
func (a *Anchor) Raw() []byte {
	raw := make([]byte, len(a.raw))
	copy(raw, a.raw)
	return raw
}

// Subject returns the certificate subject for diagnostics.
func (a *Anchor) Subject() string {
	return a.cert.Subject.String()
}

// Equal reports whether both anchors carry byte-identical encodings.
func (a *Anchor) Equal(other *Anchor) bool {
	if a == nil || other == nil {
		return a == other
	}
	return bytes.Equal(a.raw, other.raw)
}

// key is the identity used for set membership: the exact DER bytes.
func (a *Anchor) key() string {
	return string(a.raw)
}
