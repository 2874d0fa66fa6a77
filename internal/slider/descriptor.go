// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

// PiTemplate is the tooltip template of pi sliders.
const PiTemplate = "{value}π"

// Tooltip is the tooltip configuration handed to the host UI.
type Tooltip struct {
	Placement     string `json:"placement"`
	AlwaysVisible bool   `json:"always_visible"`
	Transform     string `json:"transform,omitempty"`
	Template      string `json:"template,omitempty"`
}

// ComponentID identifies a slider widget in the host UI.
type ComponentID struct {
	Type     string `json:"type"`
	Index    string `json:"index"`
	Renderer string `json:"renderer,omitempty"`
}

// Descriptor is a plain data description of a slider widget.
type Descriptor struct {
	ID         ComponentID `json:"id"`
	Label      string      `json:"label"`
	Kind       Kind        `json:"kind"`
	Min        float64     `json:"min"`
	Max        float64     `json:"max"`
	Value      float64     `json:"value"`
	Step       float64     `json:"step,omitempty"`
	Marks      []Mark      `json:"marks,omitempty"`
	Tooltip    Tooltip     `json:"tooltip"`
	UpdateMode string      `json:"updatemode"`
}

// Tooltip returns the tooltip configuration: the configured transform and
// template, or the kind's defaults.
func (s *Slider) Tooltip() Tooltip {
	t := Tooltip{
		Placement:     "bottom",
		AlwaysVisible: true,
		Transform:     s.spec.Transform,
		Template:      s.spec.Template,
	}
	if t.Transform == "" {
		t.Transform = s.spec.Kind.DefaultTransform()
	}
	if t.Template == "" && s.spec.Kind == KindPi {
		t.Template = PiTemplate
	}
	return t
}

// Descriptor describes the slider widget for the host UI. Bounds and value
// are in position space.
func (s *Slider) Descriptor(componentType, rendererID string) Descriptor {
	lo, hi := s.Range()
	return Descriptor{
		ID: ComponentID{
			Type:     componentType,
			Index:    s.spec.ID,
			Renderer: rendererID,
		},
		Label:      s.spec.Name,
		Kind:       s.spec.Kind,
		Min:        lo,
		Max:        hi,
		Value:      s.Position(),
		Step:       s.Step(),
		Marks:      s.Marks(),
		Tooltip:    s.Tooltip(),
		UpdateMode: "drag",
	}
}
