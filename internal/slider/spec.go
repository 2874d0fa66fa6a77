// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jeranaias/slidertip/internal/transform"
)

var (
	// ErrInvalidSpec is returned for slider definitions that cannot be built.
	ErrInvalidSpec = errors.New("invalid slider")
	// ErrOutOfRange is returned when a manual value maps outside the slider.
	ErrOutOfRange = errors.New("value outside slider range")
)

// Spec is the stored definition of a slider.
//
// Min and Max are in value space for log sliders (both must be positive), in
// multiples of pi for pi sliders and in index space for fib and square
// sliders. State is the current value; fib and square sliders derive it from
// Index instead.
type Spec struct {
	ID        string  `toml:"id" json:"id"`
	Name      string  `toml:"name" json:"name"`
	Kind      Kind    `toml:"kind" json:"kind"`
	Min       float64 `toml:"min" json:"min"`
	Max       float64 `toml:"max" json:"max"`
	State     float64 `toml:"state" json:"state"`
	Index     int     `toml:"index,omitempty" json:"index,omitempty"`
	Transform string  `toml:"transform,omitempty" json:"transform,omitempty"`
	Template  string  `toml:"template,omitempty" json:"template,omitempty"`
}

// Validate checks the definition and returns the first problem found.
func (s Spec) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidSpec, s.Name, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidSpec)
	}
	kind, err := ParseKind(string(s.Kind))
	if err != nil {
		return fail("unknown kind %q", s.Kind)
	}
	if !finite(s.Min) || !finite(s.Max) || !finite(s.State) {
		return fail("min, max and state must be finite")
	}
	if s.Min >= s.Max {
		return fail("min (%g) must be below max (%g)", s.Min, s.Max)
	}
	if s.Transform != "" && !transform.Has(s.Transform) {
		return fail("unknown transform %q", s.Transform)
	}

	switch kind {
	case KindLog:
		if s.Min <= 0 {
			return fail("log slider needs min > 0, got %g", s.Min)
		}
	case KindFib, KindSquare:
		if float64(s.Index) < s.Min || float64(s.Index) > s.Max {
			return fail("index %d outside [%g, %g]", s.Index, s.Min, s.Max)
		}
		want := indexValue(kind, s.Index)
		if s.State != 0 && s.State != want {
			return fail("state %g does not match index %d (expected %g)", s.State, s.Index, want)
		}
		return nil
	}

	if s.State < s.Min || s.State > s.Max {
		return fail("state %g outside [%g, %g]", s.State, s.Min, s.Max)
	}
	return nil
}

func indexValue(kind Kind, index int) float64 {
	if kind == KindFib {
		return transform.Fibonacci(float64(index))
	}
	return transform.Square(float64(index))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
