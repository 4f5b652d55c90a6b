/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package scanner splits expression text into number, duration, operator
// and parenthesis tokens.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

type Scanner struct {
	Input string
	Pos   int
}

// MatchNumericRun returns the length of the numeric run starting at the
// current position, and whether that run is shaped like a duration.
//
// Grammar:
//
//	numeric-run     = DIGIT *(DIGIT / "." / ":" / "s" / "n")
//	duration        = numeric-run containing ":" or "s"
//	number          = numeric-run containing neither
func (s *Scanner) MatchNumericRun() (int, bool) {
	size := 0
	for i := s.Pos; i < len(s.Input) && isNumericRune(s.Input[i]); i++ {
		size++
	}

	run := s.Input[s.Pos : s.Pos+size]
	return size, strings.ContainsAny(run, ":s")
}

// Emit the next Token found on Scanner.Input, skipping leading whitespace.
// An unrecognized character is consumed and reported as a LexError.
func (s *Scanner) Emit() (parse.Token, *parse.LexError) {
	var t parse.Token

	for s.Pos < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.Pos += width
	}

	start := s.Pos
	if start >= len(s.Input) {
		t.Type = TOK_EOF
		t.Location = parse.Location{Start: start, End: start}
		return t, nil
	}

	r, width := utf8.DecodeRuneInString(s.Input[start:])
	skip := width

	switch {
	case r == '+':
		t.Type = TOK_PLUS
	case r == '-':
		t.Type = TOK_MINUS
	case r == '*':
		t.Type = TOK_STAR
	case r == '/':
		t.Type = TOK_SLASH
	case r == '(':
		t.Type = TOK_PAREN_L
	case r == ')':
		t.Type = TOK_PAREN_R
	case r >= '0' && r <= '9':
		var isDuration bool
		skip, isDuration = s.MatchNumericRun()
		t.Type = TOK_NUMBER
		if isDuration {
			t.Type = TOK_DURATION
		}
	default:
		s.Pos += width
		return t, &parse.LexError{
			Kind:     parse.UnexpectedCharacter,
			Char:     r,
			Location: parse.Location{Start: start, End: s.Pos},
		}
	}

	s.Pos = start + skip
	t.Lexeme = s.Input[start:s.Pos]
	t.Location = parse.Location{Start: start, End: s.Pos}

	return t, nil
}

// Scan tokenizes the entire input. All lexical errors are gathered into a
// single parse.LexErrors before the scan fails. The trailing TOK_EOF is not
// included in the result.
func (s *Scanner) Scan() ([]parse.Token, error) {
	var tokens []parse.Token
	var errs parse.LexErrors

	for {
		tok, err := s.Emit()
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		if tok.Type == TOK_EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}

func isNumericRune(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == ':' || c == 's' || c == 'n'
}
