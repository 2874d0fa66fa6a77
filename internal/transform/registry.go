// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Func maps a slider position to the value shown in its tooltip.
type Func func(float64) float64

// Registered transform names. These are the names a host UI refers to in a
// slider's tooltip configuration.
const (
	NameLogLinear = "trafo_L"
	NameLogNice   = "transform_log_nice"
	NameFibonacci = "transform_fib"
	NameSquare    = "transform_square"
)

// ErrUnknownTransform is returned when a name is not registered.
var ErrUnknownTransform = errors.New("unknown transform")

type entry struct {
	fn          Func
	description string
}

// registry is built once and never modified, so lookups need no locking.
var registry = map[string]entry{
	NameLogLinear: {
		fn:          LogLinearRounded,
		description: "10^v rounded to an integer, 0 below log10(1.25)",
	},
	NameLogNice: {
		fn:          LogNiceRounded,
		description: "10^v rounded to a tenth of its magnitude, 4 decimals",
	},
	NameFibonacci: {
		fn:          Fibonacci,
		description: "n-th Fibonacci number for index v",
	},
	NameSquare: {
		fn:          Square[float64],
		description: "v squared",
	},
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, error) {
	e, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return e.fn, nil
}

// Apply looks up name and applies it to v.
func Apply(name string, v float64) (float64, error) {
	fn, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(v), nil
}

// Has reports whether name is registered.
func Has(name string) bool {
	_, ok := registry[strings.TrimSpace(name)]
	return ok
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of the named transform, or an
// empty string if it is not registered.
func Describe(name string) string {
	return registry[strings.TrimSpace(name)].description
}
