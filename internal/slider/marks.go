// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"math"

	"github.com/jeranaias/slidertip/internal/transform"
	"github.com/jeranaias/slidertip/internal/util"
)

const (
	// stepCount is the number of slider steps aimed for by linear sliders.
	stepCount = 100
	// logStepCount is the number of steps across a log slider's range.
	logStepCount = 30
	// markIntervals is the number of gaps between tick marks.
	markIntervals = 5
	// markDigits is the number of significant digits on log slider marks.
	markDigits = 6
)

// Mark is a labelled tick at a slider position.
type Mark struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// Step returns the position increment of the slider. Zero means the slider
// is continuous and the host decides.
func (s *Slider) Step() float64 {
	switch s.spec.Kind {
	case KindLinear:
		return linearStep(s.spec.Min, s.spec.Max)
	case KindLog:
		lo, hi := s.Range()
		return (hi - lo) / logStepCount
	case KindFib, KindSquare:
		return 1
	default:
		return 0
	}
}

// linearStep rounds (max-min)/100 down to a human readable step from the
// decade sequences 1, 5, 25, 50 / 10, 50, 250, 500 / ...
func linearStep(lo, hi float64) float64 {
	raw := math.Floor((hi - lo) / stepCount)
	sequence := []float64{1, 5, 25, 50}
	prev := 1.0
	for {
		for _, s := range sequence {
			if raw < s {
				return prev
			}
			prev = s
		}
		for i := range sequence {
			sequence[i] *= 10
		}
	}
}

// niceMark rounds large linear mark values to hundreds or thousands, ties
// to even.
func niceMark(x float64) float64 {
	switch {
	case x >= 1000:
		return math.RoundToEven(x/1000) * 1000
	case x >= 100:
		return math.RoundToEven(x/100) * 100
	default:
		return x
	}
}

// Marks returns the tick marks for the slider in ascending position order.
// Float sliders have none.
func (s *Slider) Marks() []Mark {
	lo, hi := s.spec.Min, s.spec.Max
	step := (hi - lo) / markIntervals

	var ms markSet
	switch s.spec.Kind {
	case KindLinear:
		for i := 0; i <= markIntervals; i++ {
			v := niceMark(math.Trunc(lo + float64(i)*step))
			ms.add(v, util.FormatInteger(v))
		}
	case KindLog:
		lo, hi = s.Range()
		step = (hi - lo) / markIntervals
		for i := 0; i <= markIntervals; i++ {
			pos := lo + float64(i)*step
			ms.add(pos, util.FormatSignificant(s.Up(pos), markDigits))
		}
	case KindPi:
		if fixed := piMarks(lo, hi); fixed != nil {
			return fixed
		}
		for i := 0; i <= markIntervals; i++ {
			v := niceMark(math.Trunc(lo + float64(i)*step))
			ms.add(v, util.FormatInteger(v)+"π")
		}
	case KindFib:
		for i := 0; i <= markIntervals; i++ {
			idx := math.Trunc(lo + float64(i)*step)
			ms.add(idx, util.FormatInteger(transform.Fibonacci(idx)))
		}
	case KindSquare:
		for i := 0; i <= markIntervals; i++ {
			idx := math.Trunc(lo + float64(i)*step)
			ms.add(idx, util.FormatInteger(transform.Square(idx)))
		}
	}
	return ms.marks
}

// piMarks returns fraction labels for the common [0, 2] and [0, 1] ranges.
func piMarks(lo, hi float64) []Mark {
	switch {
	case lo == 0 && hi == 2:
		return []Mark{
			{Position: 0, Label: "0"},
			{Position: 0.5, Label: "½π"},
			{Position: 1, Label: "π"},
			{Position: 1.5, Label: "3⁄2π"},
			{Position: 2, Label: "2π"},
		}
	case lo == 0 && hi == 1:
		return []Mark{
			{Position: 0, Label: "0"},
			{Position: 0.25, Label: "¼π"},
			{Position: 0.5, Label: "½π"},
			{Position: 0.75, Label: "¾π"},
			{Position: 1, Label: "π"},
		}
	}
	return nil
}

// markSet keeps marks unique by position; a later label replaces an
// earlier one at the same position.
type markSet struct {
	marks []Mark
}

func (m *markSet) add(pos float64, label string) {
	for i := range m.marks {
		if m.marks[i].Position == pos {
			m.marks[i].Label = label
			return
		}
	}
	m.marks = append(m.marks, Mark{Position: pos, Label: label})
}
