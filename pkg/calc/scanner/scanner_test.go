/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"errors"
	"testing"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

func TestMatchNumericRun(t *testing.T) {
	s := Scanner{Input: "12.5 + 1"}

	width, isDuration := s.MatchNumericRun()
	if width != 4 {
		t.Errorf("12.5 should have width of 4, not %d", width)
	}
	if isDuration {
		t.Error("12.5 should not be a duration")
	}

	s.Input = "1:02:03.5*2"
	width, isDuration = s.MatchNumericRun()
	if width != len("1:02:03.5") {
		t.Errorf("1:02:03.5 should have width %d, not %d", len("1:02:03.5"), width)
	}
	if !isDuration {
		t.Error("1:02:03.5 should be a duration")
	}

	s.Input = "42s)"
	width, isDuration = s.MatchNumericRun()
	if width != 3 || !isDuration {
		t.Errorf("42s should be a duration of width 3, got %d %v", width, isDuration)
	}
}

func TestEmitNumber(t *testing.T) {
	s := Scanner{Input: "12345 hi"}

	tok, err := s.Emit()
	if err != nil {
		t.Fatal(err)
	}

	if tok.Type != TOK_NUMBER {
		t.Error("wanted TOK_NUMBER, got", tok.Type.ToString())
	}

	if tok.Lexeme != "12345" {
		t.Error("wanted 12345, got", tok.Lexeme)
	}
}

func TestEmitMarkedNumber(t *testing.T) {
	s := Scanner{Input: "1.5n*2"}

	tok, _ := s.Emit()
	if tok.Type != TOK_NUMBER || tok.Lexeme != "1.5n" {
		t.Errorf("wanted TOK_NUMBER 1.5n, got %s %s", tok.Type.ToString(), tok.Lexeme)
	}
}

func TestEmitDuration(t *testing.T) {
	s := Scanner{Input: "   0:11:22 - 30s"}

	tok, _ := s.Emit()
	if tok.Type != TOK_DURATION || tok.Lexeme != "0:11:22" {
		t.Errorf("wanted TOK_DURATION 0:11:22, got %s %s", tok.Type.ToString(), tok.Lexeme)
	}
	if tok.Location != (parse.Location{Start: 3, End: 10}) {
		t.Errorf("unexpected location %v", tok.Location)
	}

	tok, _ = s.Emit()
	if tok.Type != TOK_MINUS {
		t.Error("wanted TOK_MINUS, got", tok.Type.ToString())
	}

	tok, _ = s.Emit()
	if tok.Type != TOK_DURATION || tok.Lexeme != "30s" {
		t.Errorf("wanted TOK_DURATION 30s, got %s %s", tok.Type.ToString(), tok.Lexeme)
	}

	tok, _ = s.Emit()
	if tok.Type != TOK_EOF {
		t.Error("wanted TOK_EOF, got", tok.Type.ToString())
	}
}

func TestNegativeLiteralIsSeparateToken(t *testing.T) {
	s := Scanner{Input: "-1:00"}
	tokens, err := s.Scan()
	if err != nil {
		t.Fatal(err)
	}

	expected := []TokenType{TOK_MINUS, TOK_DURATION}
	if len(tokens) != len(expected) {
		t.Fatalf("wanted %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token %d: wanted %s, got %s", i, expected[i].ToString(), tok.Type.ToString())
		}
	}
}

func TestScanExpression(t *testing.T) {
	s := Scanner{Input: "(2 + 4)*6/1:00 - 3"}

	tokens, err := s.Scan()
	if err != nil {
		t.Fatal(err)
	}

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{TOK_PAREN_L, "("},
		{TOK_NUMBER, "2"},
		{TOK_PLUS, "+"},
		{TOK_NUMBER, "4"},
		{TOK_PAREN_R, ")"},
		{TOK_STAR, "*"},
		{TOK_NUMBER, "6"},
		{TOK_SLASH, "/"},
		{TOK_DURATION, "1:00"},
		{TOK_MINUS, "-"},
		{TOK_NUMBER, "3"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("wanted %d tokens, got %d", len(expected), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Type != expected[i].typ || tok.Lexeme != expected[i].lexeme {
			t.Errorf("token %d: wanted %s %q, got %s %q", i,
				expected[i].typ.ToString(), expected[i].lexeme, tok.Type.ToString(), tok.Lexeme)
		}
	}
}

func TestScanCollectsAllErrors(t *testing.T) {
	s := Scanner{Input: "1 % 2 & 3"}

	tokens, err := s.Scan()
	if tokens != nil {
		t.Error("a failed scan should not return tokens")
	}

	var lexErrs parse.LexErrors
	if !errors.As(err, &lexErrs) {
		t.Fatalf("wanted parse.LexErrors, got %T", err)
	}

	if len(lexErrs) != 2 {
		t.Fatalf("wanted 2 errors, got %d", len(lexErrs))
	}

	if lexErrs[0].Char != '%' || lexErrs[0].Location.Start != 2 {
		t.Errorf("unexpected first error %+v", lexErrs[0])
	}

	if lexErrs[1].Char != '&' || lexErrs[1].Location.Start != 6 {
		t.Errorf("unexpected second error %+v", lexErrs[1])
	}

	if err.Error() != "unexpected character '%'; unexpected character '&'" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestScanEmpty(t *testing.T) {
	s := Scanner{Input: "  \t "}

	tokens, err := s.Scan()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 0 {
		t.Errorf("wanted no tokens, got %d", len(tokens))
	}
}
