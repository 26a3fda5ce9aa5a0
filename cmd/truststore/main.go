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

package main

import (
	"fmt"
	"os"

	"github.com/jeremyhahn/go-truststore/internal/cli"
	"github.com/jeremyhahn/go-truststore/pkg/truststore"
)

func main() {
	// Warm the discovery cache while cobra parses flags; commands that
	// never touch system roots simply ignore the result.
	truststore.PrimeSystemRoots()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
