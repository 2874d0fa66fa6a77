// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transform holds the tooltip transforms used by slidertip.
//
// A slider reports its raw position (frequently the base-10 logarithm of the
// quantity it controls); a transform maps that position to the number shown
// in the slider's tooltip. Every function in this package is pure: no state is
// kept between calls and all of them are safe for concurrent use.
//
// # Transforms
//
//   - LogLinearRounded ("trafo_L"): 10^v rounded to an integer, 0 below log10(1.25)
//   - LogNiceRounded ("transform_log_nice"): 10^v rounded to a nice value, 4 decimals
//   - Fibonacci ("transform_fib"): the n-th Fibonacci number
//   - Square ("transform_square"): v*v
//
// Invalid input such as NaN is not rejected; it propagates following IEEE 754
// rules.
//
// # Usage
//
//	fn, err := transform.Lookup("transform_log_nice")
//	if err != nil {
//	    return err
//	}
//	shown := fn(sliderPosition)
package transform
