// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides helpers shared by the slidertip packages.
//
// # Key Functions
//
// Number Formatting:
//   - FormatSignificant: %g-style output with a fixed number of significant digits
//   - FormatInteger: integral floats without exponent notation
//   - FormatLocale: locale-aware decimal output (golang.org/x/text)
//   - ParseFloat: strict parsing of user supplied numbers
//
// Display Width:
//   - StringWidth, TruncateWidth, PadRight: column handling backed by go-runewidth
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	label := util.FormatSignificant(1234567, 6) // "1.23457e+06"
//	cell := util.PadRight("3⁄2π", 8)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
