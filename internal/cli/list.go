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
	"os"

	"github.com/spf13/cobra"
)

// listCmd enumerates the composed trust view
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trust anchors",
	Long:  `List every trust anchor in the composed view: system roots plus any additional anchors`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			handleError(err)
			return
		}
		printer := NewPrinter(outputFormat, os.Stdout)

		store, err := buildStore(cfg)
		if err != nil {
			handleError(err)
			return
		}

		printVerbose("uses system trust store: %t", store.UsesSystemTrustStore())

		if err := printer.PrintAnchorList(store.Anchors()); err != nil {
			handleError(err)
		}
	},
}
