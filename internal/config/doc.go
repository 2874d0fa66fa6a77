// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and saves slidertip configuration.
//
// A configuration lists slider definitions plus display and watch settings.
// TOML is the primary format; JSON is accepted as a fallback.
//
// # Configuration Precedence
//
// Configuration is loaded from (first match wins):
//   - the file named by $SLIDERTIP_CONFIG
//   - ~/.slidertip/config.toml
//   - ~/.slidertip/config.json
//   - Built-in defaults
//
// SLIDERTIP_LOCALE and SLIDERTIP_PRECISION override the display section
// afterwards.
//
// # Example
//
//	version = "1"
//
//	[display]
//	locale = "de"
//	precision = 4
//
//	[[slider]]
//	id = "samples"
//	name = "Number of Samples"
//	kind = "log"
//	min = 10.0
//	max = 10000.0
//	state = 100.0
package config
