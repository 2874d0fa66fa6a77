// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slider

import (
	"fmt"
	"strings"

	"github.com/jeranaias/slidertip/internal/transform"
)

// Kind selects how a slider position maps to the value it controls.
type Kind string

const (
	KindLinear Kind = "linear"
	KindFloat  Kind = "float"
	KindLog    Kind = "log"
	KindPi     Kind = "pi"
	KindFib    Kind = "fib"
	KindSquare Kind = "square"
)

// Kinds returns all slider kinds.
func Kinds() []Kind {
	return []Kind{KindLinear, KindFloat, KindLog, KindPi, KindFib, KindSquare}
}

// ParseKind parses a kind name, ignoring case and surrounding whitespace.
// "fibonacci" and "logarithmic" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindLinear, KindFloat, KindLog, KindPi, KindFib, KindSquare:
		return k, nil
	case "fibonacci":
		return KindFib, nil
	case "logarithmic":
		return KindLog, nil
	default:
		return "", fmt.Errorf("%w: unknown slider kind %q", ErrInvalidSpec, s)
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

func (k Kind) String() string {
	return string(k)
}

// DefaultTransform returns the tooltip transform a slider of kind k uses when
// none is configured.
func (k Kind) DefaultTransform() string {
	switch k {
	case KindLog:
		return transform.NameLogNice
	case KindFib:
		return transform.NameFibonacci
	case KindSquare:
		return transform.NameSquare
	default:
		return ""
	}
}

// indexed reports whether the slider position is an integer index whose
// value is derived from it.
func (k Kind) indexed() bool {
	return k == KindFib || k == KindSquare
}
