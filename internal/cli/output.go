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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jeremyhahn/go-truststore/pkg/truststore"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// anchorSummary is the JSON shape for one trust anchor.
type anchorSummary struct {
	Subject     string `json:"subject"`
	Fingerprint string `json:"fingerprint"`
	NotAfter    string `json:"not_after"`
}

func summarize(a *truststore.Anchor) anchorSummary {
	sum := sha256.Sum256(a.Raw())
	return anchorSummary{
		Subject:     a.Subject(),
		Fingerprint: hex.EncodeToString(sum[:]),
		NotAfter:    a.Certificate().NotAfter.Format("2006-01-02"),
	}
}

// PrintAnchorList prints the composed trust anchors
func (p *Printer) PrintAnchorList(anchors []*truststore.Anchor) error {
	switch p.format {
	case OutputFormatJSON:
		list := make([]anchorSummary, len(anchors))
		for i, a := range anchors {
			list[i] = summarize(a)
		}
		return p.printJSON(map[string]interface{}{
			"anchors": list,
			"count":   len(anchors),
		})
	case OutputFormatTable:
		if len(anchors) == 0 {
			fmt.Fprintln(p.writer, "No trust anchors found")
			return nil
		}
		fmt.Fprintf(p.writer, "%-60s %-12s %s\n", "SUBJECT", "NOT AFTER", "SHA-256")
		fmt.Fprintln(p.writer, strings.Repeat("-", 96))
		for _, a := range anchors {
			s := summarize(a)
			fmt.Fprintf(p.writer, "%-60.60s %-12s %.16s\n", s.Subject, s.NotAfter, s.Fingerprint)
		}
		return nil
	case OutputFormatText:
		if len(anchors) == 0 {
			fmt.Fprintln(p.writer, "No trust anchors found")
			return nil
		}
		fmt.Fprintf(p.writer, "Trust anchors (%d):\n", len(anchors))
		for _, a := range anchors {
			fmt.Fprintf(p.writer, "  - %s\n", a.Subject())
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// CheckResult is the outcome of a trust query for one certificate.
type CheckResult struct {
	Subject    string `json:"subject"`
	Trusted    bool   `json:"trusted"`
	KnownRoot  bool   `json:"known_root"`
	Additional bool   `json:"additional"`
}

// PrintCheckResult prints the trust classification of a certificate
func (p *Printer) PrintCheckResult(result CheckResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(result)
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintf(p.writer, "Subject:           %s\n", result.Subject)
		fmt.Fprintf(p.writer, "Trusted:           %t\n", result.Trusted)
		fmt.Fprintf(p.writer, "Known root:        %t\n", result.KnownRoot)
		fmt.Fprintf(p.writer, "Additional anchor: %t\n", result.Additional)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintPaths prints the effective discovery search locations
func (p *Printer) PrintPaths(files, dirs []string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"cert_files": files,
			"cert_dirs":  dirs,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintln(p.writer, "Candidate bundle files:")
		for _, f := range files {
			fmt.Fprintf(p.writer, "  - %s\n", f)
		}
		fmt.Fprintln(p.writer, "Candidate directories:")
		for _, d := range dirs {
			fmt.Fprintf(p.writer, "  - %s\n", d)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintVersion prints version information
func (p *Printer) PrintVersion(version, commit, date string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"version": version,
			"commit":  commit,
			"date":    date,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintf(p.writer, "truststore %s\n", version)
		fmt.Fprintf(p.writer, "  Git Commit: %s\n", commit)
		fmt.Fprintf(p.writer, "  Built:      %s\n", date)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %s\n", err)
		return werr
	}
}

func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
