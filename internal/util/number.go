// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatLocale formats f for the BCP 47 locale tag with digit grouping and
// at most maxFrac decimals. An empty tag formats with FormatDisplay.
func FormatLocale(f float64, tag string, maxFrac int) (string, error) {
	if tag == "" {
		return FormatDisplay(f), nil
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FormatDisplay(f), nil
	}
	if maxFrac < 0 {
		maxFrac = 0
	}
	p := message.NewPrinter(lang)
	return p.Sprint(number.Decimal(f, number.MaxFractionDigits(maxFrac))), nil
}
