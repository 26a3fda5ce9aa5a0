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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-truststore/pkg/truststore"
)

// checkCmd classifies a certificate against the composed trust view
var checkCmd = &cobra.Command{
	Use:   "check <cert-file>",
	Short: "Check whether a certificate is trusted",
	Long: `Check whether the certificate in the given PEM or DER file is a
trusted anchor, and whether it is a vendor-shipped platform root or
a caller-added one`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		certFile := args[0]
		cfg, err := loadConfig()
		if err != nil {
			handleError(err)
			return
		}
		printer := NewPrinter(outputFormat, os.Stdout)

		// #nosec G304 - Certificate file path from CLI argument
		data, err := os.ReadFile(certFile)
		if err != nil {
			handleError(fmt.Errorf("failed to read certificate file: %w", err))
			return
		}

		anchors, err := truststore.ParseAnchors(data)
		if err != nil {
			handleError(fmt.Errorf("failed to parse certificate: %w", err))
			return
		}
		anchor := anchors[0]
		if len(anchors) > 1 {
			printVerbose("%s contains %d certificates; checking the first", certFile, len(anchors))
		}

		store, err := buildStore(cfg)
		if err != nil {
			handleError(err)
			return
		}

		result := CheckResult{
			Subject:    anchor.Subject(),
			Trusted:    store.Contains(anchor),
			KnownRoot:  store.IsKnownRoot(anchor),
			Additional: store.IsAdditionalTrustAnchor(anchor),
		}
		if err := printer.PrintCheckResult(result); err != nil {
			handleError(err)
		}
	},
}
