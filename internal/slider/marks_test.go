// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLinearStep(t *testing.T) {
	tests := []struct {
		lo, hi float64
		want   float64
	}{
		{lo: 0, hi: 50, want: 1},
		{lo: 0, hi: 100, want: 1},
		{lo: 0, hi: 700, want: 5},
		{lo: 0, hi: 3000, want: 25},
		{lo: 0, hi: 15000, want: 50},
		{lo: 0, hi: 60000, want: 500},
		{lo: 10, hi: 1000, want: 5},
	}
	for _, tt := range tests {
		if got := linearStep(tt.lo, tt.hi); got != tt.want {
			t.Errorf("linearStep(%g, %g) = %g, want %g", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMarks(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want []Mark
	}{
		{
			name: "linear",
			spec: Spec{Name: "n", Kind: KindLinear, Min: 0, Max: 1000},
			want: []Mark{
				{0, "0"}, {200, "200"}, {400, "400"}, {600, "600"}, {800, "800"}, {1000, "1000"},
			},
		},
		{
			name: "linear rounding merges duplicates",
			spec: Spec{Name: "n", Kind: KindLinear, Min: 0, Max: 1234},
			want: []Mark{
				{0, "0"}, {200, "200"}, {500, "500"}, {700, "700"}, {1000, "1000"},
			},
		},
		{
			name: "log",
			spec: Spec{Name: "n", Kind: KindLog, Min: 0.01, Max: 100, State: 1},
			want: []Mark{
				{-2, "0.01"}, {-1.2, "0.063"}, {-0.4, "0.4"}, {0.4, "2.5"}, {1.2, "16"}, {2, "100"},
			},
		},
		{
			name: "fibonacci",
			spec: Spec{Name: "n", Kind: KindFib, Min: 2, Max: 12, Index: 2},
			want: []Mark{
				{2, "1"}, {4, "3"}, {6, "8"}, {8, "21"}, {10, "55"}, {12, "144"},
			},
		},
		{
			name: "square",
			spec: Spec{Name: "n", Kind: KindSquare, Min: 0, Max: 10, Index: 4},
			want: []Mark{
				{0, "0"}, {2, "4"}, {4, "16"}, {6, "36"}, {8, "64"}, {10, "100"},
			},
		},
		{
			name: "pi full turn",
			spec: Spec{Name: "φ", Kind: KindPi, Min: 0, Max: 2},
			want: []Mark{
				{0, "0"}, {0.5, "½π"}, {1, "π"}, {1.5, "3⁄2π"}, {2, "2π"},
			},
		},
		{
			name: "pi half turn",
			spec: Spec{Name: "θ", Kind: KindPi, Min: 0, Max: 1},
			want: []Mark{
				{0, "0"}, {0.25, "¼π"}, {0.5, "½π"}, {0.75, "¾π"}, {1, "π"},
			},
		},
		{
			name: "pi wide",
			spec: Spec{Name: "ω", Kind: KindPi, Min: 0, Max: 10},
			want: []Mark{
				{0, "0π"}, {2, "2π"}, {4, "4π"}, {6, "6π"}, {8, "8π"}, {10, "10π"},
			},
		},
		{
			name: "float",
			spec: Spec{Name: "σ", Kind: KindFloat, Min: 0, Max: 5},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.spec)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if diff := cmp.Diff(tt.want, s.Marks(), approx); diff != "" {
				t.Errorf("Marks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	s, err := New(Spec{ID: "samples", Name: "Number of Samples", Kind: KindLog, Min: 10, Max: 10000, State: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := s.Descriptor("dynamic-option", "sphere")
	want := Descriptor{
		ID:    ComponentID{Type: "dynamic-option", Index: "samples", Renderer: "sphere"},
		Label: "Number of Samples",
		Kind:  KindLog,
		Min:   1,
		Max:   4,
		Value: 2,
		Step:  0.1,
		Marks: s.Marks(),
		Tooltip: Tooltip{
			Placement:     "bottom",
			AlwaysVisible: true,
			Transform:     "transform_log_nice",
		},
		UpdateMode: "drag",
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Descriptor mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	tooltip, ok := decoded["tooltip"].(map[string]any)
	if !ok || tooltip["transform"] != "transform_log_nice" || tooltip["always_visible"] != true {
		t.Errorf("unexpected tooltip JSON: %s", data)
	}
	if decoded["updatemode"] != "drag" {
		t.Errorf("unexpected updatemode in %s", data)
	}
}
