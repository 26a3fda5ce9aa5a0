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

package cli

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-truststore/pkg/truststore"
)

func generateTestAnchor(t *testing.T, cn string) *truststore.Anchor {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			CommonName: cn,
		},
		NotBefore:             time.Now().Add(-1 * time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(certDER)
	require.NoError(t, err)

	anchor, err := truststore.NewAnchor(cert)
	require.NoError(t, err)

	return anchor
}

func TestPrintAnchorList_Text(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	anchors := []*truststore.Anchor{
		generateTestAnchor(t, "Root A"),
		generateTestAnchor(t, "Root B"),
	}
	require.NoError(t, printer.PrintAnchorList(anchors))

	out := buf.String()
	assert.Contains(t, out, "Trust anchors (2):")
	assert.Contains(t, out, "CN=Root A")
	assert.Contains(t, out, "CN=Root B")
}

func TestPrintAnchorList_Empty(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	require.NoError(t, printer.PrintAnchorList(nil))
	assert.Contains(t, buf.String(), "No trust anchors found")
}

func TestPrintAnchorList_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)

	require.NoError(t, printer.PrintAnchorList([]*truststore.Anchor{
		generateTestAnchor(t, "Root A"),
	}))

	var out struct {
		Count   int `json:"count"`
		Anchors []struct {
			Subject     string `json:"subject"`
			Fingerprint string `json:"fingerprint"`
		} `json:"anchors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Anchors, 1)
	assert.Equal(t, "CN=Root A", out.Anchors[0].Subject)
	assert.Len(t, out.Anchors[0].Fingerprint, 64)
}

func TestPrintCheckResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)

	require.NoError(t, printer.PrintCheckResult(CheckResult{
		Subject:   "CN=Root A",
		Trusted:   true,
		KnownRoot: true,
	}))

	var out CheckResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.True(t, out.Trusted)
	assert.True(t, out.KnownRoot)
	assert.False(t, out.Additional)

	buf.Reset()
	printer = NewPrinter("text", &buf)
	require.NoError(t, printer.PrintCheckResult(CheckResult{Subject: "CN=Root A"}))
	assert.Contains(t, buf.String(), "Trusted:           false")
}

func TestPrintPaths(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	require.NoError(t, printer.PrintPaths(
		[]string{"/etc/ssl/certs/ca-certificates.crt"},
		[]string{"/etc/ssl/certs"},
	))

	out := buf.String()
	assert.Contains(t, out, "Candidate bundle files:")
	assert.Contains(t, out, "/etc/ssl/certs/ca-certificates.crt")
	assert.Contains(t, out, "Candidate directories:")
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("xml", &buf)

	assert.Error(t, printer.PrintAnchorList(nil))
	assert.Error(t, printer.PrintCheckResult(CheckResult{}))
	assert.Error(t, printer.PrintPaths(nil, nil))
}
