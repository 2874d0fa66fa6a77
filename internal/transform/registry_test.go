// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"trafo_L",
		"transform_fib",
		"transform_log_nice",
		"transform_square",
	}, Names())
}

func TestLookup(t *testing.T) {
	fn, err := Lookup(NameSquare)
	require.NoError(t, err)
	assert.Equal(t, 16.0, fn(-4))

	fn, err = Lookup("  " + NameFibonacci + "\n")
	require.NoError(t, err)
	assert.Equal(t, 55.0, fn(10))

	_, err = Lookup("transform_cube")
	assert.ErrorIs(t, err, ErrUnknownTransform)
	assert.Contains(t, err.Error(), "transform_cube")

	_, err = Lookup("TRAFO_L")
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestApply(t *testing.T) {
	got, err := Apply(NameLogLinear, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = Apply(NameLogNice, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	_, err = Apply("", 1)
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestHasAndDescribe(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, Has(name))
		assert.NotEmpty(t, Describe(name), name)
	}
	assert.False(t, Has("nope"))
	assert.Empty(t, Describe("nope"))
}
