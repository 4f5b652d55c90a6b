/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"unicode/utf8"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_HYPHEN
	TOK_NUMBER
	TOK_COLON
	TOK_FULL_STOP
	TOK_S
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_HYPHEN:
		return "TOK_HYPHEN"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_FULL_STOP:
		return "TOK_FULL_STOP"
	case TOK_S:
		return "TOK_S"
	}
	return "TOK_UNKNOWN"
}

// Scanner splits duration text into digit runs and punctuation.
type Scanner struct {
	Input string
	Pos   int
}

// MatchNumber returns the length of the digit run at the current position.
//
// Grammar:
//
//	number          = 1*DIGIT
func (s *Scanner) MatchNumber() int {
	size := 0
	for i := s.Pos; i < len(s.Input) && isDigit(s.Input[i]); i++ {
		size++
	}
	return size
}

// Emit returns the next token, or a LexError for a character that is not
// part of the duration alphabet.
func (s *Scanner) Emit() (parse.Token, *parse.LexError) {
	var t parse.Token

	start := s.Pos
	if start >= len(s.Input) {
		t.Type = TOK_EOF
		t.Location = parse.Location{Start: start, End: start}
		return t, nil
	}

	r, width := utf8.DecodeRuneInString(s.Input[start:])
	skip := width

	switch {
	case r == '-':
		t.Type = TOK_HYPHEN
	case r == ':':
		t.Type = TOK_COLON
	case r == '.':
		t.Type = TOK_FULL_STOP
	case r == 's':
		t.Type = TOK_S
	case r >= '0' && r <= '9':
		t.Type = TOK_NUMBER
		skip = s.MatchNumber()
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

// Scan tokenizes the whole input. Every lexical error is collected before
// returning, and any error at all fails the scan.
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

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
