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

//go:build !linux && !dragonfly && !freebsd && !netbsd && !openbsd && !solaris

package truststore

// Platforms with a native trust-store API have no built-in search
// locations; discovery still honors the SSL_CERT_FILE and SSL_CERT_DIR
// overrides when a caller opts into it.
var certFiles []string

var certDirectories []string
