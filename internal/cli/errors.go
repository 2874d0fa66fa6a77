// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for slidertip commands.
//
// PATTERN:
//   - Handlers ALWAYS return errors (never print and return nil)
//   - main decides how to display them and which exit code to use
//   - Library sentinels are matched with errors.Is, never by message

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/slidertip/internal/config"
	"github.com/jeranaias/slidertip/internal/slider"
	"github.com/jeranaias/slidertip/internal/transform"
	"github.com/jeranaias/slidertip/internal/util"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates an unknown slider or transform
	ExitNotFoundError = 7
	// ExitRangeError indicates a value that does not map onto the slider
	ExitRangeError = 9
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "input", "config")
	Action  string // Action being performed (e.g., "save", "init")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError reports malformed command-line input.
type UsageError struct {
	Reason  string // What is wrong
	Example string // A valid invocation (optional)
	Err     error  // Underlying error (if any)
}

func (e *UsageError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Example != "" {
		msg += "\nExample: " + e.Example
	}
	return msg
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// reportedError wraps an error the handler has already shown to the user.
// DisplayError prints nothing for it; the exit code still follows the
// wrapped error.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// NewUsageError creates a usage error with an example invocation.
func NewUsageError(reason, example string) error {
	return &UsageError{Reason: reason, Example: example}
}

// ErrMissingArgument creates an error for a missing required argument.
func ErrMissingArgument(argName, example string) error {
	return &UsageError{Reason: fmt.Sprintf("missing argument <%s>", argName), Example: example}
}

// parseNumber parses a command-line number, wrapping failures as usage
// errors.
func parseNumber(s, example string) (float64, error) {
	v, err := util.ParseFloat(s)
	if err != nil {
		return 0, &UsageError{Reason: "invalid value", Example: example, Err: err}
	}
	return v, nil
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeFor maps an error returned by a handler to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var validateErrs config.ValidateErrors
	switch {
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.Is(err, transform.ErrUnknownTransform),
		errors.Is(err, config.ErrSliderNotFound):
		return ExitNotFoundError
	case errors.Is(err, slider.ErrOutOfRange),
		errors.Is(err, transform.ErrNotFibonacci),
		errors.Is(err, transform.ErrNotSquare):
		return ExitRangeError
	case errors.As(err, &validateErrs),
		errors.Is(err, slider.ErrInvalidSpec),
		errors.Is(err, errConfig):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

// errConfig marks failures to load or save the configuration file.
var errConfig = errors.New("configuration error")

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err to w: a JSON error envelope in JSON mode,
// otherwise a styled "Error:" line.
func DisplayError(w io.Writer, err error, jsonMode bool, command string) {
	var rep *reportedError
	if err == nil || errors.As(err, &rep) {
		return
	}
	if jsonMode {
		_ = NewJSONErrorResponse(command, err).Write(w)
		return
	}
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("Error:"), err)
}
