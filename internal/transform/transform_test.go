// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// LOGARITHMIC TRANSFORM TESTS
// =============================================================================

func TestLogLinearRounded(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "far below cutoff", value: -1, want: 0},
		{name: "just below cutoff", value: math.Log10(1.25) - 0.001, want: 0},
		{name: "at cutoff", value: math.Log10(1.25), want: 1},
		{name: "one", value: 1, want: 10},
		{name: "two", value: 2, want: 100},
		{name: "half decade", value: 0.5, want: 3},
		{name: "rounds up", value: math.Log10(2.6), want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LogLinearRounded(tt.value))
		})
	}
}

func TestLogLinearRounded_NaN(t *testing.T) {
	assert.True(t, math.IsNaN(LogLinearRounded(math.NaN())))
}

func TestLogNiceRounded(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "zero position is one", value: 0, want: 1},
		{name: "hundred", value: 2, want: 100},
		{name: "two significant digits", value: math.Log10(123.456), want: 120},
		{name: "small magnitude kept", value: math.Log10(0.0034), want: 0.0034},
		{name: "truncated to four decimals", value: math.Log10(0.00034), want: 0.0003},
		{name: "rounds into next decade", value: math.Log10(9.96), want: 10},
		{name: "large value", value: math.Log10(56789), want: 57000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LogNiceRounded(tt.value), 1e-9)
		})
	}
}

func TestLogNiceRounded_FourDecimals(t *testing.T) {
	for _, v := range []float64{-5, -3.3, -2.1, -1, 0.25, 1.7} {
		got := LogNiceRounded(v)
		scaled := got * 1e4
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6, "value %v gave %v", v, got)
	}
}

func TestRoundNice(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{x: 0, want: 0},
		{x: 123.456, want: 120},
		{x: -123.456, want: -120},
		{x: 1234, want: 1200},
		{x: 0.0034, want: 0.0034},
		{x: 0.00347, want: 0.0035},
		{x: 1, want: 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundNice(tt.x), 1e-12, "RoundNice(%v)", tt.x)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.2346, RoundTo(1.23456, 4))
	assert.Equal(t, 3.0, RoundTo(2.5, 0))
	assert.Equal(t, -3.0, RoundTo(-2.5, 0))
	assert.Equal(t, 1e308, RoundTo(1e308, 4))
}

func TestLogDown(t *testing.T) {
	assert.Equal(t, 0.0, LogDown(0))
	assert.Equal(t, 0.0, LogDown(-10))
	assert.InDelta(t, 2, LogDown(100), 1e-12)
	assert.InDelta(t, -1, LogDown(0.1), 1e-12)
}

// =============================================================================
// FIBONACCI TESTS
// =============================================================================

func TestFibonacci(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: -5, want: 0},
		{value: 0, want: 0},
		{value: 0.9, want: 0},
		{value: 1, want: 1},
		{value: 2, want: 1},
		{value: 2.9, want: 1},
		{value: 3, want: 2},
		{value: 10, want: 55},
		{value: 20, want: 6765},
		{value: 50, want: 12586269025},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fibonacci(tt.value), "Fibonacci(%v)", tt.value)
	}
}

func TestFibonacci_MatchesRecursion(t *testing.T) {
	var fib func(n int) float64
	fib = func(n int) float64 {
		if n < 1 {
			return 0
		}
		if n <= 2 {
			return 1
		}
		return fib(n-1) + fib(n-2)
	}
	for n := -2; n <= 25; n++ {
		assert.Equal(t, fib(n), Fibonacci(float64(n)), "n=%d", n)
	}
}

func TestFibonacci_Limits(t *testing.T) {
	assert.True(t, math.IsNaN(Fibonacci(math.NaN())))
	assert.False(t, math.IsInf(Fibonacci(MaxFibonacciIndex), 0))
	assert.Equal(t, Fibonacci(MaxFibonacciIndex), Fibonacci(MaxFibonacciIndex+0.5), "fractional index truncates before the overflow check")
	assert.True(t, math.IsInf(Fibonacci(MaxFibonacciIndex+1), 1))
	assert.True(t, math.IsInf(Fibonacci(math.Inf(1)), 1))
	assert.Equal(t, 0.0, Fibonacci(math.Inf(-1)))
}

func TestFibonacciIndex(t *testing.T) {
	tests := []struct {
		n       int64
		want    int
		wantErr bool
	}{
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 3},
		{n: 55, want: 10},
		{n: 7540113804746346429, want: 92},
		{n: 4, wantErr: true},
		{n: -1, wantErr: true},
		{n: math.MaxInt64, wantErr: true},
	}
	for _, tt := range tests {
		got, err := FibonacciIndex(tt.n)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrNotFibonacci, "FibonacciIndex(%d)", tt.n)
			continue
		}
		require.NoError(t, err, "FibonacciIndex(%d)", tt.n)
		assert.Equal(t, tt.want, got, "FibonacciIndex(%d)", tt.n)
	}
}

func TestIsFibonacci(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 3, 5, 8, 13, 21, 144} {
		assert.True(t, IsFibonacci(n), "%d", n)
	}
	for _, n := range []int64{-1, 4, 6, 7, 100} {
		assert.False(t, IsFibonacci(n), "%d", n)
	}
}

// =============================================================================
// SQUARE TESTS
// =============================================================================

func TestSquare(t *testing.T) {
	assert.Equal(t, 9, Square(-3))
	assert.Equal(t, 0, Square(0))
	assert.Equal(t, 2.25, Square(1.5))
	assert.Equal(t, 9.0, Square(-3.0))
	assert.Equal(t, float32(6.25), Square(float32(2.5)))
	assert.Equal(t, int64(1<<40), Square(int64(1<<20)))
}

func TestSquareRoot(t *testing.T) {
	r, err := SquareRoot(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), r)

	r, err = SquareRoot(144)
	require.NoError(t, err)
	assert.Equal(t, int64(12), r)

	r, err = SquareRoot(maxSquareRoot * maxSquareRoot)
	require.NoError(t, err)
	assert.Equal(t, int64(maxSquareRoot), r)

	for _, n := range []int64{-4, 2, 10, math.MaxInt64} {
		_, err := SquareRoot(n)
		assert.ErrorIs(t, err, ErrNotSquare, "SquareRoot(%d)", n)
	}
}

func TestPiRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi, PiUp(1), 1e-15)
	assert.InDelta(t, 1.5, PiDown(PiUp(1.5)), 1e-15)
}

// =============================================================================
// PURITY TESTS
// =============================================================================

func TestTransforms_Idempotent(t *testing.T) {
	inputs := []float64{-2, -0.3, 0, 0.0969, 0.5, 1, 2.25, 7, 12}
	for _, name := range Names() {
		fn, err := Lookup(name)
		require.NoError(t, err)
		for _, v := range inputs {
			first := fn(v)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, fn(v), "%s(%v) changed on call %d", name, v, i)
			}
		}
	}
}

func TestTransforms_Concurrent(t *testing.T) {
	want := make(map[string]float64)
	for _, name := range Names() {
		want[name], _ = Apply(name, 3)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for name, w := range want {
					if got, _ := Apply(name, 3); got != w {
						errs <- name
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Errorf("%s returned a different value under concurrent use", name)
	}
}
