// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// NiceDigits is the number of decimals LogNiceRounded keeps.
const NiceDigits = 4

// linearCutoff is the log10 position below which LogLinearRounded shows 0.
var linearCutoff = math.Log10(1.25)

// maxSquareRoot is floor(sqrt(math.MaxInt64)).
const maxSquareRoot = 3037000499

// ErrNotSquare is returned by SquareRoot for values that are not perfect squares.
var ErrNotSquare = errors.New("not a perfect square")

// =============================================================================
// LOGARITHMIC TRANSFORMS
// =============================================================================

// LogLinearRounded interprets v as a base-10 logarithm and returns 10^v
// rounded to the nearest integer. Positions whose linear value would be below
// 1.25 collapse to 0.
func LogLinearRounded(v float64) float64 {
	if v < linearCutoff {
		return 0
	}
	return math.Round(math.Pow(10, v))
}

// LogNiceRounded interprets v as a base-10 logarithm and returns 10^v rounded
// to one tenth of its order of magnitude, then to NiceDigits decimals.
// It matches the values produced by the log slider's marks, so the tooltip
// agrees with the tick labels.
func LogNiceRounded(v float64) float64 {
	return RoundTo(RoundNice(math.Pow(10, v)), NiceDigits)
}

// RoundNice rounds x to the nearest multiple of a tenth of its order of
// magnitude, e.g. 123.456 -> 120 and 0.0034 -> 0.0034. The relative error
// is at most about 5%.
func RoundNice(x float64) float64 {
	if x == 0 {
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x)

	step := math.Pow(10, math.Floor(math.Log10(x))) / 10
	return sign * math.Round(x/step) * step
}

// RoundTo rounds x half away from zero to the given number of decimals.
func RoundTo(x float64, digits int) float64 {
	p := math.Pow10(digits)
	scaled := x * p
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / p
}

// LogDown maps a displayed value back to a log slider position.
// It is not an exact inverse of LogNiceRounded because of the rounding.
func LogDown(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log10(v)
}

// =============================================================================
// SQUARE AND PI
// =============================================================================

// Square returns v*v.
func Square[N Number](v N) N {
	return v * v
}

// SquareRoot returns the integer root of a perfect square.
func SquareRoot(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNotSquare
	}
	r := min(int64(math.Sqrt(float64(n))), maxSquareRoot)
	// float64 loses precision above 2^53; settle on the exact root.
	for r > 0 && r*r > n {
		r--
	}
	for r < maxSquareRoot && (r+1)*(r+1) <= n {
		r++
	}
	if r*r != n {
		return 0, ErrNotSquare
	}
	return r, nil
}

// PiUp maps a position expressed in multiples of pi to radians.
func PiUp(v float64) float64 {
	return v * math.Pi
}

// PiDown maps radians to a position expressed in multiples of pi.
func PiDown(v float64) float64 {
	return v / math.Pi
}
