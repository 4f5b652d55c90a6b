/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

type ParseErrorKind int

const (
	ExpectedNumber ParseErrorKind = iota
	ExceededMaxComponents
	ExpectedNumberAfterDecimal
	ExpectedSecondsIdentifier
	UnexpectedSecondsIdentifier
	ExpectedTwoDigitMinutes
	ExpectedTwoDigitSeconds
	MinutesOutOfRange
	SecondsOutOfRange
	FractionalSecondsTooLarge
	ExpectedEndOfInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case ExpectedNumber:
		return "ExpectedNumber"
	case ExceededMaxComponents:
		return "ExceededMaxComponents"
	case ExpectedNumberAfterDecimal:
		return "ExpectedNumberAfterDecimal"
	case ExpectedSecondsIdentifier:
		return "ExpectedSecondsIdentifier"
	case UnexpectedSecondsIdentifier:
		return "UnexpectedSecondsIdentifier"
	case ExpectedTwoDigitMinutes:
		return "ExpectedTwoDigitMinutes"
	case ExpectedTwoDigitSeconds:
		return "ExpectedTwoDigitSeconds"
	case MinutesOutOfRange:
		return "MinutesOutOfRange"
	case SecondsOutOfRange:
		return "SecondsOutOfRange"
	case FractionalSecondsTooLarge:
		return "FractionalSecondsTooLarge"
	case ExpectedEndOfInput:
		return "ExpectedEndOfInput"
	}
	return "Unknown"
}

// ParseError describes structurally invalid duration text. Location is
// relative to the text handed to Parse.
type ParseError struct {
	Kind     ParseErrorKind
	Lexeme   string
	Location parse.Location
}

func (e *ParseError) Span() parse.Location {
	return e.Location
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ExpectedNumber:
		return fmt.Sprintf("expected a number, found %s", found(e.Lexeme))
	case ExceededMaxComponents:
		return "a duration has at most three components (hours:minutes:seconds)"
	case ExpectedNumberAfterDecimal:
		return fmt.Sprintf("expected fractional seconds after '.', found %s", found(e.Lexeme))
	case ExpectedSecondsIdentifier:
		return fmt.Sprintf("expected 's' after seconds-only duration '%s'", e.Lexeme)
	case UnexpectedSecondsIdentifier:
		return "'s' is only allowed after a seconds-only duration"
	case ExpectedTwoDigitMinutes:
		return fmt.Sprintf("expected two digit minutes, found '%s'", e.Lexeme)
	case ExpectedTwoDigitSeconds:
		return fmt.Sprintf("expected two digit seconds, found '%s'", e.Lexeme)
	case MinutesOutOfRange:
		return fmt.Sprintf("minutes must be less than 60, found '%s'", e.Lexeme)
	case SecondsOutOfRange:
		return fmt.Sprintf("seconds must be less than 60, found '%s'", e.Lexeme)
	case FractionalSecondsTooLarge:
		return fmt.Sprintf("fractional seconds are limited to 9 digits, found '%s'", e.Lexeme)
	case ExpectedEndOfInput:
		return fmt.Sprintf("unexpected '%s' after duration", e.Lexeme)
	}
	return "invalid duration"
}

// Parser turns duration text into a Duration.
type Parser struct {
	Scanner Scanner
	tokens  []parse.Token
	pos     int
}

// Parse parses duration text of the form
//
//	duration        = [ "-" ] number 1*2( ":" 2DIGIT ) [ "." 1*9DIGIT ]
//	                / [ "-" ] number [ "." 1*9DIGIT ] "s"
//
// Lexical failures are returned as parse.LexErrors, structural failures as
// *ParseError and range failures as ErrOverflow.
func Parse(text string) (Duration, error) {
	p := Parser{Scanner: Scanner{Input: text}}
	return p.Parse()
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

func (p *Parser) peek() parse.Token {
	if p.pos >= len(p.tokens) {
		end := len(p.Scanner.Input)
		return parse.Token{Type: TOK_EOF, Location: parse.Location{Start: end, End: end}}
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() parse.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) Parse() (Duration, error) {
	var err error
	p.tokens, err = p.Scanner.Scan()
	if err != nil {
		return Duration{}, err
	}

	negative := false
	if p.peek().Type == TOK_HYPHEN {
		p.next()
		negative = true
	}

	// Components are numbers separated by colons.
	var components []parse.Token
	for {
		t := p.next()
		if t.Type != TOK_NUMBER {
			return Duration{}, newParseError(ExpectedNumber, t)
		}
		components = append(components, t)

		if p.peek().Type != TOK_COLON {
			break
		}
		p.next()
	}
	if len(components) > 3 {
		first, last := components[0], components[len(components)-1]
		return Duration{}, &ParseError{
			Kind:     ExceededMaxComponents,
			Lexeme:   p.Scanner.Input[first.Location.Start:last.Location.End],
			Location: parse.Location{Start: first.Location.Start, End: last.Location.End},
		}
	}

	var fraction *parse.Token
	if p.peek().Type == TOK_FULL_STOP {
		p.next()
		t := p.next()
		if t.Type != TOK_NUMBER {
			return Duration{}, newParseError(ExpectedNumberAfterDecimal, t)
		}
		fraction = &t
	}

	secondsOnly := false
	if p.peek().Type == TOK_S {
		secondsOnly = true
		p.next()
	}

	if t := p.peek(); t.Type != TOK_EOF {
		return Duration{}, newParseError(ExpectedEndOfInput, t)
	}

	if secondsOnly && len(components) != 1 {
		return Duration{}, newParseError(UnexpectedSecondsIdentifier, p.tokens[len(p.tokens)-1])
	}
	if !secondsOnly && len(components) == 1 {
		return Duration{}, newParseError(ExpectedSecondsIdentifier, components[0])
	}

	b := NewBuilder()
	if negative {
		b.Negative()
	}

	n := len(components)

	if n == 3 {
		hours, err := strconv.ParseUint(components[0].Lexeme, 10, 64)
		if err != nil {
			return Duration{}, ErrOverflow
		}
		b.Hours(hours)
	}

	if n >= 2 {
		m := components[n-2]
		if len(m.Lexeme) != 2 {
			return Duration{}, newParseError(ExpectedTwoDigitMinutes, m)
		}
		minutes, _ := strconv.ParseUint(m.Lexeme, 10, 8)
		if minutes >= MinutesPerHour {
			return Duration{}, newParseError(MinutesOutOfRange, m)
		}
		b.Minutes(uint8(minutes))
	}

	s := components[n-1]
	if len(s.Lexeme) != 2 && !secondsOnly {
		return Duration{}, newParseError(ExpectedTwoDigitSeconds, s)
	}
	seconds, err := strconv.ParseUint(s.Lexeme, 10, 64)
	if err != nil || seconds >= SecondsPerMinute {
		return Duration{}, newParseError(SecondsOutOfRange, s)
	}
	b.Seconds(uint8(seconds))

	if fraction != nil {
		if len(fraction.Lexeme) > Precision {
			return Duration{}, newParseError(FractionalSecondsTooLarge, *fraction)
		}
		padded := fraction.Lexeme + strings.Repeat("0", Precision-len(fraction.Lexeme))
		nanos, _ := strconv.ParseUint(padded, 10, 32)
		b.Nanoseconds(uint32(nanos))
	}

	return b.Build()
}

func found(lexeme string) string {
	if lexeme == "" {
		return "end of input"
	}
	return "'" + lexeme + "'"
}

func newParseError(kind ParseErrorKind, t parse.Token) *ParseError {
	return &ParseError{Kind: kind, Lexeme: t.Lexeme, Location: t.Location}
}
