// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package slider models the sliders whose tooltips are fed by package
// transform.
//
// A slider has a kind that fixes how its raw position relates to the value it
// controls:
//
//   - linear: integer values, human readable step (1, 5, 25, 50, ...)
//   - float:  continuous values, no marks
//   - log:    position is log10 of the value, marks show nice rounded values
//   - pi:     position is a multiple of pi
//   - fib:    position is a Fibonacci index, the value is F(index)
//   - square: position is an index, the value is index squared
//
// For each kind the package computes the step, the tick marks and the tooltip
// configuration a host UI needs, maps positions to values and back (Up and
// Down), and converts manually typed values into slider positions.
//
// Rendering and event wiring belong to the host UI; Descriptor returns a plain
// data description it can consume.
package slider
