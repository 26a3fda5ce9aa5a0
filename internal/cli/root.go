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

// Package cli implements the truststore command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flag values
	configFile    string
	outputFormat  string
	verbose       bool
	noSystemRoots bool
	caFiles       []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "truststore",
	Short: "truststore CLI - Inspect the platform trust store",
	Long: `truststore CLI resolves the root certificates the host platform
trusts for TLS server authentication and answers membership and
classification questions about them.

System roots come from the platform's native store where one exists,
or from the standard certificate bundle locations on the file system
(overridable with SSL_CERT_FILE and SSL_CERT_DIR). Additional anchors
can be layered on top without mutating the platform store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is none)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format (text, json, table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&noSystemRoots, "no-system-roots", false,
		"exclude platform roots from trust decisions")
	rootCmd.PersistentFlags().StringArrayVar(&caFiles, "ca-file", nil,
		"additional CA bundle to trust (repeatable)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(versionCmd)
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(outputFormat, os.Stderr)
	_ = printer.PrintError(err) // Error printing to stderr is best-effort
	os.Exit(1)
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}
