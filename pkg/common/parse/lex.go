/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	EndOfInput
)

func (k LexErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case EndOfInput:
		return "EndOfInput"
	}
	return "Unknown"
}

// LexError describes a single character a scanner could not turn into a token.
type LexError struct {
	Kind     LexErrorKind
	Char     rune
	Location Location
}

func (e LexError) Error() string {
	if e.Kind == EndOfInput {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected character '%c'", e.Char)
}

func (e LexError) Span() Location {
	return e.Location
}

// LexErrors is every error found during a single scanning pass.
type LexErrors []LexError

func (l LexErrors) Error() string {
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// FormatError renders each error against the input, one caret block per error.
func (l LexErrors) FormatError(input string) string {
	var b strings.Builder
	for _, e := range l {
		s := NewSyntaxError(e, "Error: "+e.Error())
		b.WriteString(s.FormatError(input))
	}
	return b.String()
}
