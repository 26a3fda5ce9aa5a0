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

	"github.com/jeremyhahn/go-truststore/pkg/logging"
)

// pathsCmd shows the effective discovery search locations
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show certificate search locations",
	Long: `Show the CA bundle files and certificate directories discovery will
try, in order, after applying the SSL_CERT_FILE and SSL_CERT_DIR
environment overrides and any configured locations`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			handleError(err)
			return
		}
		printer := NewPrinter(outputFormat, os.Stdout)

		d := newDiscoverer(cfg, logging.NewLogger(verbose))
		if err := printer.PrintPaths(d.CandidateFiles(), d.CandidateDirs()); err != nil {
			handleError(err)
		}
	},
}
