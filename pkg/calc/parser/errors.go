/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

type ErrorKind int

const (
	ExpectedLiteral ErrorKind = iota
	ExpectedRightParen
	LeftoverTokens
	InvalidNumber
	InvalidDuration
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedLiteral:
		return "ExpectedLiteral"
	case ExpectedRightParen:
		return "ExpectedRightParen"
	case LeftoverTokens:
		return "LeftoverTokens"
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidDuration:
		return "InvalidDuration"
	}
	return "Unknown"
}

// Error is a structural problem with an expression. Token is where the
// problem was found. For LeftoverTokens, Leftover holds every token that
// was not consumed; for InvalidDuration, Err holds the cause.
type Error struct {
	Kind     ErrorKind
	Token    parse.Token
	Leftover []parse.Token
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedLiteral:
		return fmt.Sprintf("expected a number, a duration or '(', found %s", found(e.Token))
	case ExpectedRightParen:
		return fmt.Sprintf("expected ')', found %s", found(e.Token))
	case LeftoverTokens:
		return fmt.Sprintf("unexpected %s after expression", found(e.Token))
	case InvalidNumber:
		return fmt.Sprintf("invalid number '%s'", e.Token.Lexeme)
	case InvalidDuration:
		return fmt.Sprintf("invalid duration '%s': %v", e.Token.Lexeme, e.Err)
	}
	return "invalid expression"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Span returns the part of the input the error refers to. A duration
// error that knows its own position inside the literal is narrowed to it.
func (e *Error) Span() parse.Location {
	if e.Kind == LeftoverTokens && len(e.Leftover) > 0 {
		return parse.Location{
			Start: e.Leftover[0].Location.Start,
			End:   e.Leftover[len(e.Leftover)-1].Location.End,
		}
	}

	var inner parse.Located
	if e.Kind == InvalidDuration && errors.As(e.Err, &inner) {
		return inner.Span().Shift(e.Token.Location.Start)
	}

	return e.Token.Location
}

func found(t parse.Token) string {
	if t.Lexeme == "" {
		return "end of input"
	}
	return "'" + t.Lexeme + "'"
}
