// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/slidertip/internal/transform"
)

func mustNew(t *testing.T, spec Spec) *Slider {
	t.Helper()
	s, err := New(spec)
	require.NoError(t, err)
	return s
}

func logSpec() Spec {
	return Spec{ID: "samples", Name: "Number of Samples", Kind: KindLog, Min: 0.01, Max: 100, State: 1}
}

func fibSpec() Spec {
	return Spec{ID: "fib", Name: "Number of Samples", Kind: KindFib, Min: 2, Max: 12, Index: 5}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		errMsg string
	}{
		{name: "empty name", mutate: func(s *Spec) { s.Name = " " }, errMsg: "name must not be empty"},
		{name: "unknown kind", mutate: func(s *Spec) { s.Kind = "dial" }, errMsg: "unknown kind"},
		{name: "min not below max", mutate: func(s *Spec) { s.Min = 100 }, errMsg: "must be below max"},
		{name: "log min zero", mutate: func(s *Spec) { s.Min = 0 }, errMsg: "min > 0"},
		{name: "unknown transform", mutate: func(s *Spec) { s.Transform = "transform_cube" }, errMsg: "unknown transform"},
		{name: "state outside range", mutate: func(s *Spec) { s.State = 1000 }, errMsg: "outside"},
		{name: "nan state", mutate: func(s *Spec) { s.State = math.NaN() }, errMsg: "finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := logSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpec)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSpecValidate_Indexed(t *testing.T) {
	spec := fibSpec()
	require.NoError(t, spec.Validate())

	spec.State = 5
	assert.NoError(t, spec.Validate(), "state matching F(index) is accepted")

	spec.State = 6
	assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec)

	spec = fibSpec()
	spec.Index = 13
	assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec)

	square := Spec{Name: "grid", Kind: KindSquare, Min: 4, Max: 100, State: 16, Index: 4}
	assert.NoError(t, square.Validate())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("Fibonacci")
	require.NoError(t, err)
	assert.Equal(t, KindFib, got)

	got, err = ParseKind("LOGARITHMIC")
	require.NoError(t, err)
	assert.Equal(t, KindLog, got)

	_, err = ParseKind("knob")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.False(t, Kind("knob").Valid())
}

func TestNew_NormalizesKind(t *testing.T) {
	spec := fibSpec()
	spec.Kind = "Fibonacci"
	s := mustNew(t, spec)
	assert.Equal(t, KindFib, s.Kind())
	assert.Equal(t, 5.0, s.State())
}

// =============================================================================
// POSITION / VALUE TESTS
// =============================================================================

func TestLogSlider(t *testing.T) {
	s := mustNew(t, logSpec())

	lo, hi := s.Range()
	assert.InDelta(t, -2, lo, 1e-12)
	assert.InDelta(t, 2, hi, 1e-12)
	assert.InDelta(t, 0, s.Position(), 1e-12)
	assert.InDelta(t, 4.0/30, s.Step(), 1e-12)

	assert.InDelta(t, 120, s.Up(math.Log10(123.456)), 1e-9)

	shown, err := s.Display(math.Log10(0.0034))
	require.NoError(t, err)
	assert.InDelta(t, 0.0034, shown, 1e-12)

	pos, err := s.ManualInput(10)
	require.NoError(t, err)
	assert.InDelta(t, 1, pos, 1e-12)
	assert.InDelta(t, 10, s.State(), 1e-9)

	_, err = s.ManualInput(1000)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.InDelta(t, 10, s.State(), 1e-9, "rejected input leaves state alone")

	_, err = s.ManualInput(math.Inf(1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFibSlider(t *testing.T) {
	s := mustNew(t, fibSpec())
	assert.Equal(t, 5.0, s.State())
	assert.Equal(t, 5.0, s.Position())
	assert.Equal(t, 1.0, s.Step())

	shown, err := s.Display(10)
	require.NoError(t, err)
	assert.Equal(t, 55.0, shown)

	pos, err := s.ManualInput(21)
	require.NoError(t, err)
	assert.Equal(t, 8.0, pos)
	assert.Equal(t, 8, s.Index())
	assert.Equal(t, 21.0, s.State())

	pos, err = s.ManualInput(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, pos, "F(1) == F(2), the reachable index wins")

	_, err = s.ManualInput(4)
	assert.ErrorIs(t, err, transform.ErrNotFibonacci)
	_, err = s.ManualInput(2.5)
	assert.ErrorIs(t, err, transform.ErrNotFibonacci)
	_, err = s.ManualInput(233)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSquareSlider(t *testing.T) {
	s := mustNew(t, Spec{ID: "grid", Name: "Grid", Kind: KindSquare, Min: -5, Max: 3, Index: 2})
	assert.Equal(t, 4.0, s.State())

	pos, err := s.ManualInput(16)
	require.NoError(t, err)
	assert.Equal(t, -4.0, pos, "only the negative root is inside the slider")
	assert.Equal(t, 16.0, s.State())

	pos, err = s.ManualInput(9)
	require.NoError(t, err)
	assert.Equal(t, 3.0, pos)

	_, err = s.ManualInput(2)
	assert.ErrorIs(t, err, transform.ErrNotSquare)

	shown, err := s.Display(-3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, shown)
}

func TestPiSlider(t *testing.T) {
	s := mustNew(t, Spec{ID: "phi", Name: "φ", Kind: KindPi, Min: 0, Max: 2, State: 1})
	assert.InDelta(t, math.Pi, s.State(), 1e-12)
	assert.InDelta(t, 1, s.Position(), 1e-12)
	assert.Equal(t, PiTemplate, s.Tooltip().Template)

	pos, err := s.ManualInput(math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pos, 1e-12)

	s.UpdateState(1.5)
	assert.InDelta(t, 1.5*math.Pi, s.State(), 1e-12)
	assert.InDelta(t, 1.5, s.Spec().State, 1e-12)

	shown, err := s.Display(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, shown, "pi sliders show the multiple, the template adds π")
}

func TestLinearAndFloatSliders(t *testing.T) {
	lin := mustNew(t, Spec{Name: "κ", Kind: KindLinear, Min: 0, Max: 50, State: 10})
	lin.UpdateState(42.7)
	assert.Equal(t, 42.0, lin.State())
	assert.Equal(t, "", lin.Tooltip().Transform)

	f := mustNew(t, Spec{Name: "σ", Kind: KindFloat, Min: 0, Max: 5, State: 0.5})
	f.UpdateState(0.25)
	assert.Equal(t, 0.25, f.State())
	assert.Equal(t, 0.0, f.Step())
	assert.Empty(t, f.Marks())

	pos, err := f.ManualInput(6)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Zero(t, pos)
}

func TestDisplay_ConfiguredTransform(t *testing.T) {
	s := mustNew(t, Spec{
		Name:      "L",
		Kind:      KindFloat,
		Min:       math.Log10(1.2),
		Max:       4.001,
		State:     2,
		Transform: transform.NameLogLinear,
	})

	shown, err := s.Display(2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, shown)

	shown, err = s.Display(math.Log10(1.2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, shown)
}

func TestSpec_RoundTrip(t *testing.T) {
	spec := fibSpec()
	s := mustNew(t, spec)
	s.UpdateState(7)

	got := s.Spec()
	assert.Equal(t, 7, got.Index)
	assert.Equal(t, 13.0, got.State)
	assert.NoError(t, got.Validate())

	again := mustNew(t, got)
	assert.Equal(t, s.Position(), again.Position())
}

func TestSlider_ConcurrentUpdates(t *testing.T) {
	s := mustNew(t, fibSpec())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.UpdateState(float64(2 + (g+i)%11))
				_ = s.State()
				_ = s.Position()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, transform.Fibonacci(float64(s.Index())), s.State())
}
