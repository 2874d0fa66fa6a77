// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyNumber is returned by ParseFloat for blank input.
var ErrEmptyNumber = errors.New("empty number")

// FormatFloat formats f with prec decimals.
func FormatFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// FormatSignificant formats f with at most digits significant digits,
// switching to exponent notation for very large or small magnitudes and
// dropping trailing zeros.
func FormatSignificant(f float64, digits int) string {
	if digits <= 0 {
		digits = 1
	}
	return strconv.FormatFloat(f, 'g', digits, 64)
}

// FormatInteger formats an integral float without a fractional part or
// exponent. Non-integral values are rounded half away from zero first.
func FormatInteger(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(math.Round(f), 'f', 0, 64)
}

// FormatDisplay formats a tooltip value: integers without decimals,
// everything else with the shortest representation that round-trips.
func FormatDisplay(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return FormatInteger(f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseFloat parses a user supplied number. Surrounding whitespace is
// ignored; "inf" and "nan" are accepted as strconv does.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
