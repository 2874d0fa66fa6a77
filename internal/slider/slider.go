// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"fmt"
	"math"
	"sync"

	"github.com/jeranaias/slidertip/internal/transform"
)

// rangeTolerance absorbs float noise when checking positions against the
// slider bounds.
const rangeTolerance = 1e-9

// maxExactInt is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactInt = 1 << 53

// Slider is a validated slider together with its current state.
// It is safe for concurrent use.
type Slider struct {
	spec Spec

	mu    sync.RWMutex
	state float64 // value space; radians for pi sliders
	index int     // fib and square sliders only
}

// New validates spec and builds a slider from it.
func New(spec Spec) (*Slider, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.Kind, _ = ParseKind(string(spec.Kind))

	s := &Slider{spec: spec}
	switch spec.Kind {
	case KindPi:
		s.state = transform.PiUp(spec.State)
	case KindFib, KindSquare:
		s.index = spec.Index
		s.state = indexValue(spec.Kind, spec.Index)
	default:
		s.state = spec.State
	}
	return s, nil
}

// ID returns the slider's identifier.
func (s *Slider) ID() string { return s.spec.ID }

// Name returns the slider's label.
func (s *Slider) Name() string { return s.spec.Name }

// Kind returns the slider's kind.
func (s *Slider) Kind() Kind { return s.spec.Kind }

// State returns the current value.
func (s *Slider) State() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Index returns the current index of a fib or square slider.
func (s *Slider) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Spec returns the slider definition with the current state written back,
// suitable for persisting.
func (s *Slider) Spec() Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spec := s.spec
	switch spec.Kind {
	case KindPi:
		spec.State = transform.PiDown(s.state)
	case KindFib, KindSquare:
		spec.Index = s.index
		spec.State = s.state
	default:
		spec.State = s.state
	}
	return spec
}

// Range returns the slider bounds in position space.
func (s *Slider) Range() (lo, hi float64) {
	if s.spec.Kind == KindLog {
		return math.Log10(s.spec.Min), math.Log10(s.spec.Max)
	}
	return s.spec.Min, s.spec.Max
}

// =============================================================================
// POSITION <-> VALUE
// =============================================================================

// Up maps a slider position to the value it represents.
func (s *Slider) Up(pos float64) float64 {
	switch s.spec.Kind {
	case KindLog:
		return transform.RoundNice(math.Pow(10, pos))
	case KindPi:
		return transform.PiUp(pos)
	case KindFib:
		return transform.Fibonacci(pos)
	case KindSquare:
		return transform.Square(pos)
	default:
		return pos
	}
}

// Down maps a value back to a slider position. For log sliders this is not
// an exact inverse of Up because Up rounds. Fib and square sliders reject
// values that are not Fibonacci numbers or perfect squares.
func (s *Slider) Down(value float64) (float64, error) {
	switch s.spec.Kind {
	case KindLog:
		return transform.LogDown(value), nil
	case KindPi:
		return transform.PiDown(value), nil
	case KindFib:
		n, err := exactInt(value, transform.ErrNotFibonacci)
		if err != nil {
			return 0, err
		}
		idx, err := transform.FibonacciIndex(n)
		if err != nil {
			return 0, fmt.Errorf("%g: %w", value, err)
		}
		// F(1) == F(2); prefer the index the slider can reach.
		if idx == 1 && s.spec.Min > 1 {
			idx = 2
		}
		return float64(idx), nil
	case KindSquare:
		n, err := exactInt(value, transform.ErrNotSquare)
		if err != nil {
			return 0, err
		}
		root, err := transform.SquareRoot(n)
		if err != nil {
			return 0, fmt.Errorf("%g: %w", value, err)
		}
		// Both roots square to n; keep the one inside the slider.
		if float64(root) > s.spec.Max && -float64(root) >= s.spec.Min {
			root = -root
		}
		return float64(root), nil
	default:
		return value, nil
	}
}

func exactInt(value float64, notMember error) (int64, error) {
	if value != math.Trunc(value) || math.Abs(value) > maxExactInt {
		return 0, fmt.Errorf("%g: %w", value, notMember)
	}
	return int64(value), nil
}

// Position returns the slider position for the current state.
func (s *Slider) Position() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.spec.Kind {
	case KindLog:
		return transform.LogDown(s.state)
	case KindPi:
		return transform.PiDown(s.state)
	case KindFib, KindSquare:
		return float64(s.index)
	default:
		return s.state
	}
}

// Display returns the tooltip value for a position: the configured
// transform applied to pos, or pos itself when there is none.
func (s *Slider) Display(pos float64) (float64, error) {
	name := s.Tooltip().Transform
	if name == "" {
		return pos, nil
	}
	return transform.Apply(name, pos)
}

// =============================================================================
// STATE UPDATES
// =============================================================================

// UpdateState records a new slider position reported by the host UI.
func (s *Slider) UpdateState(pos float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.spec.Kind {
	case KindLinear:
		s.state = math.Trunc(pos)
	case KindFib, KindSquare:
		s.index = int(pos)
		s.state = indexValue(s.spec.Kind, s.index)
	default:
		s.state = s.Up(pos)
	}
}

// ManualInput converts a typed value into a slider position, updates the
// state from it and returns the position.
func (s *Slider) ManualInput(value float64) (float64, error) {
	if !finite(value) {
		return 0, fmt.Errorf("%w: %g", ErrOutOfRange, value)
	}
	pos, err := s.Down(value)
	if err != nil {
		return 0, err
	}
	lo, hi := s.Range()
	if pos < lo-rangeTolerance || pos > hi+rangeTolerance {
		return 0, fmt.Errorf("%w: %g maps to %g, slider covers [%g, %g]", ErrOutOfRange, value, pos, lo, hi)
	}
	s.UpdateState(pos)
	return pos, nil
}
