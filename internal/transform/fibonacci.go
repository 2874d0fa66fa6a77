// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"errors"
	"math"
)

// MaxFibonacciIndex is the largest n for which F(n) fits in a float64.
const MaxFibonacciIndex = 1476

// ErrNotFibonacci is returned when a value is not a Fibonacci number.
var ErrNotFibonacci = errors.New("not a Fibonacci number")

// Fibonacci returns the n-th Fibonacci number where n is v truncated toward
// zero: F(n) = 0 for n < 1, 1 for n = 1 and 2, F(n-1)+F(n-2) otherwise.
// The sum is evaluated in float64, which yields the same values as the
// recursive definition evaluated in doubles. Indexes past MaxFibonacciIndex
// return +Inf.
func Fibonacci(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	t := math.Trunc(v)
	if t < 1 {
		return 0
	}
	if t > MaxFibonacciIndex {
		return math.Inf(1)
	}

	n := int(t)
	prev, cur := 0.0, 1.0
	for i := 1; i < n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// IsFibonacci reports whether n is a Fibonacci number.
func IsFibonacci(n int64) bool {
	_, err := FibonacciIndex(n)
	return err == nil
}

// FibonacciIndex returns the smallest i >= 0 with F(i) == n.
func FibonacciIndex(n int64) (int, error) {
	if n < 0 {
		return 0, ErrNotFibonacci
	}
	if n == 0 {
		return 0, nil
	}

	var prev, cur int64 = 0, 1
	for i := 1; ; i++ {
		if cur == n {
			return i, nil
		}
		if cur > n || cur > math.MaxInt64-prev {
			return 0, ErrNotFibonacci
		}
		prev, cur = cur, prev+cur
	}
}
