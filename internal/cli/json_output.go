// json_output.go - JSON output support for scripts and host UIs.
//
// Every command accepts --json and then writes exactly one JSONResponse
// document to stdout.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jeranaias/slidertip/internal/slider"
)

// JSONResponse is the envelope written by every command in JSON mode.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC 3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Write encodes the response as indented JSON to w.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}

// EvalData represents the data returned by the eval command.
type EvalData struct {
	Transform string       `json:"transform"`
	Results   []EvalResult `json:"results"`
}

// EvalResult is one evaluated input. Value is null when the result is NaN
// or infinite, which JSON cannot represent.
type EvalResult struct {
	Input   string   `json:"input"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// SliderInfo summarises a configured slider for the list command.
type SliderInfo struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      slider.Kind `json:"kind"`
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	Value     float64     `json:"value"`
	Display   string      `json:"display"`
	Transform string      `json:"transform,omitempty"`
}

// TransformInfo describes a registered transform.
type TransformInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MarksData represents the marks of one slider.
type MarksData struct {
	Slider string        `json:"slider"`
	Kind   slider.Kind   `json:"kind"`
	Step   float64       `json:"step"`
	Marks  []slider.Mark `json:"marks"`
}

// InputData represents the data returned by the input command.
type InputData struct {
	Slider   string  `json:"slider"`
	Input    float64 `json:"input"`
	Position float64 `json:"position"`
	State    float64 `json:"state"`
	Display  string  `json:"display"`
	Saved    string  `json:"saved,omitempty"`
}

// ConfigData represents the data returned by config subcommands.
type ConfigData struct {
	Path    string   `json:"config_path"`
	Exists  bool     `json:"exists"`
	Valid   bool     `json:"valid"`
	Sliders int      `json:"sliders"`
	Locale  string   `json:"locale,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
