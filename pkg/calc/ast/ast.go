/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/timecalc/pkg/calc/scanner"
	"github.com/dburkart/timecalc/pkg/calc/value"
	"github.com/dburkart/timecalc/pkg/common/parse"
)

// ASTNode is implemented only by the node types in this package.
type ASTNode interface {
	Value() string
	node()
}

type Visitor interface {
	Visit(ASTNode) Visitor
}

type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
)

func (o BinaryOp) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

// BinaryOpFromToken maps an operator token to its BinaryOp.
func BinaryOpFromToken(t parse.Token) (BinaryOp, bool) {
	switch t.Type {
	case scanner.TOK_PLUS:
		return Add, true
	case scanner.TOK_MINUS:
		return Subtract, true
	case scanner.TOK_STAR:
		return Multiply, true
	case scanner.TOK_SLASH:
		return Divide, true
	}
	return 0, false
}

type (
	BaseNode struct {
		Token parse.Token
	}

	LiteralNode struct {
		BaseNode
		Val value.Value
	}

	// UnaryOpNode is a negation; Token is the '-'.
	UnaryOpNode struct {
		BaseNode
		Operand ASTNode
	}

	// BinaryOpNode is an infix operation; Token is the operator.
	BinaryOpNode struct {
		BaseNode
		Left  ASTNode
		Op    BinaryOp
		Right ASTNode
	}
)

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

func (*BaseNode) node() {}

//-- LiteralNode

func (l *LiteralNode) Value() string {
	return l.Val.Kind().String() + " " + l.Val.String()
}

//-- BinaryOpNode

func (b *BinaryOpNode) Value() string {
	return b.Op.String()
}
