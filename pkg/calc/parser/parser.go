/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package parser builds an expression tree from text using recursive
// descent. Precedence, loosest first: + and -, then * and /, then unary
// negation. All binary operators are left-associative.
package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dburkart/timecalc/pkg/calc/ast"
	"github.com/dburkart/timecalc/pkg/calc/scanner"
	"github.com/dburkart/timecalc/pkg/calc/value"
	"github.com/dburkart/timecalc/pkg/common/parse"
	"github.com/dburkart/timecalc/pkg/duration"
)

type Parser struct {
	Scanner scanner.Scanner
	tokens  []parse.Token
	pos     int
}

// Parse is a convenience wrapper around Parser.Parse.
func Parse(input string) (ast.ASTNode, error) {
	p := Parser{Scanner: scanner.Scanner{Input: input}}
	return p.Parse()
}

// Parse scans the whole input, then parses it. A scan failure is returned
// as parse.LexErrors, anything else as *Error.
func (p *Parser) Parse() (tree ast.ASTNode, err error) {
	defer func() {
		if e := recover(); e != nil {
			parseError, ok := e.(*Error)
			if !ok {
				panic(e)
			}
			tree, err = nil, parseError
		}
	}()

	p.tokens, err = p.Scanner.Scan()
	if err != nil {
		return nil, err
	}
	p.pos = 0

	tree = p.expression()

	// Trailing input is never silently ignored
	if p.pos < len(p.tokens) {
		return nil, &Error{
			Kind:     LeftoverTokens,
			Token:    p.tokens[p.pos],
			Leftover: p.tokens[p.pos:],
		}
	}

	return tree, nil
}

// Tokens returns the tokens consumed by the last call to Parse.
func (p *Parser) Tokens() []parse.Token {
	return p.tokens
}

func (p *Parser) peek() parse.Token {
	if p.pos >= len(p.tokens) {
		end := len(p.Scanner.Input)
		return parse.Token{Type: scanner.TOK_EOF, Location: parse.Location{Start: end, End: end}}
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

// expression returns the root of an expression tree
//
// Grammar:
//
//	expression      = addition
func (p *Parser) expression() ast.ASTNode {
	return p.addition()
}

// addition returns a left-folded chain of BinaryOpNodes, or a single term
//
// Grammar:
//
//	addition        = multiplication *( ( "+" / "-" ) multiplication )
func (p *Parser) addition() ast.ASTNode {
	lh := p.multiplication()

	for {
		tok := p.peek()
		if tok.Type != scanner.TOK_PLUS && tok.Type != scanner.TOK_MINUS {
			return lh
		}
		p.next()

		op, _ := ast.BinaryOpFromToken(tok)
		rh := p.multiplication()
		lh = &ast.BinaryOpNode{BaseNode: ast.BaseNode{Token: tok}, Left: lh, Op: op, Right: rh}
	}
}

// multiplication returns a left-folded chain of BinaryOpNodes, or a single
// factor
//
// Grammar:
//
//	multiplication  = unary *( ( "*" / "/" ) unary )
func (p *Parser) multiplication() ast.ASTNode {
	lh := p.unary()

	for {
		tok := p.peek()
		if tok.Type != scanner.TOK_STAR && tok.Type != scanner.TOK_SLASH {
			return lh
		}
		p.next()

		op, _ := ast.BinaryOpFromToken(tok)
		rh := p.unary()
		lh = &ast.BinaryOpNode{BaseNode: ast.BaseNode{Token: tok}, Left: lh, Op: op, Right: rh}
	}
}

// unary returns a UnaryOpNode, or the primary it would have wrapped. Only a
// single negation is accepted.
//
// Grammar:
//
//	unary           = [ "-" ] primary
func (p *Parser) unary() ast.ASTNode {
	tok := p.peek()
	if tok.Type != scanner.TOK_MINUS {
		return p.primary()
	}
	p.next()

	return &ast.UnaryOpNode{BaseNode: ast.BaseNode{Token: tok}, Operand: p.primary()}
}

// primary returns a LiteralNode or a parenthesized expression
//
// Grammar:
//
//	primary         = number / duration / "(" expression ")"
func (p *Parser) primary() ast.ASTNode {
	tok := p.next()

	switch tok.Type {
	case scanner.TOK_NUMBER, scanner.TOK_DURATION:
		return &ast.LiteralNode{BaseNode: ast.BaseNode{Token: tok}, Val: literal(tok)}
	case scanner.TOK_PAREN_L:
		inner := p.expression()

		closing := p.next()
		if closing.Type != scanner.TOK_PAREN_R {
			panic(&Error{Kind: ExpectedRightParen, Token: closing})
		}

		return inner
	}

	panic(&Error{Kind: ExpectedLiteral, Token: tok})
}

// literal converts a number or duration token into its value. A number
// may carry a trailing "n" to mark it explicitly as a plain number.
//
// Grammar:
//
//	number          = 1*DIGIT [ "." 1*DIGIT ] [ "n" ]
func literal(tok parse.Token) value.Value {
	if tok.Type == scanner.TOK_DURATION {
		d, err := duration.Parse(tok.Lexeme)
		if err != nil {
			panic(&Error{Kind: InvalidDuration, Token: tok, Err: err})
		}
		return value.MakeDuration(d)
	}

	digits := strings.TrimSuffix(tok.Lexeme, "n")
	if strings.Count(digits, ".") > 1 || strings.HasSuffix(digits, ".") || strings.Contains(digits, "n") {
		panic(&Error{Kind: InvalidNumber, Token: tok})
	}

	n, err := decimal.NewFromString(digits)
	if err != nil {
		panic(&Error{Kind: InvalidNumber, Token: tok, Err: err})
	}

	return value.MakeNumber(n)
}
