/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package calc evaluates expressions over decimal numbers and durations.
//
// Numbers combine freely. Durations add to and subtract from durations,
// scale by numbers, and divide by durations to give a number. Every other
// pairing is an *EvalError. Number results are rounded half away from zero
// to nine decimal places.
package calc

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dburkart/timecalc/pkg/calc/ast"
	"github.com/dburkart/timecalc/pkg/calc/parser"
	"github.com/dburkart/timecalc/pkg/calc/value"
	"github.com/dburkart/timecalc/pkg/common/parse"
	"github.com/dburkart/timecalc/pkg/duration"
)

var minusOne = decimal.NewFromInt(-1)

// Evaluate parses and evaluates a single expression. Errors are
// parse.LexErrors, *parser.Error or *EvalError.
func Evaluate(text string) (value.Value, error) {
	tree, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Eval(tree)
}

// Eval evaluates an already parsed expression tree. The first failure
// in any subtree ends the evaluation.
func Eval(node ast.ASTNode) (value.Value, error) {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Val, nil

	case *ast.UnaryOpNode:
		operand, err := Eval(n.Operand)
		if err != nil {
			return nil, err
		}
		return negate(operand), nil

	case *ast.BinaryOpNode:
		left, err := Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return binary(n.Token, n.Op, left, right)
	}

	panic("Unexpected ASTNode passed to Eval")
}

func negate(operand value.Value) value.Value {
	switch operand.Kind() {
	case value.Number:
		return value.MakeNumber(value.NumberVal(operand).Mul(minusOne))
	case value.Duration:
		return value.MakeDuration(value.DurationVal(operand).Neg())
	}
	panic("Unexpected value kind")
}

func binary(op parse.Token, o ast.BinaryOp, left, right value.Value) (value.Value, error) {
	switch {
	case left.Kind() == value.Number && right.Kind() == value.Number:
		return numbers(op, o, value.NumberVal(left), value.NumberVal(right))

	case left.Kind() == value.Duration && right.Kind() == value.Duration:
		return durations(op, o, value.DurationVal(left), value.DurationVal(right))

	case left.Kind() == value.Duration && right.Kind() == value.Number:
		return scale(op, o, value.DurationVal(left), value.NumberVal(right))

	case left.Kind() == value.Number && right.Kind() == value.Duration:
		if o == ast.Multiply {
			return scale(op, o, value.DurationVal(right), value.NumberVal(left))
		}
		return nil, mixedError(op, o)
	}
	panic("Unexpected value kind")
}

func numbers(op parse.Token, o ast.BinaryOp, n1, n2 decimal.Decimal) (value.Value, error) {
	switch o {
	case ast.Add:
		return value.MakeNumber(round(n1.Add(n2))), nil
	case ast.Subtract:
		return value.MakeNumber(round(n1.Sub(n2))), nil
	case ast.Multiply:
		return value.MakeNumber(round(n1.Mul(n2))), nil
	case ast.Divide:
		if n2.IsZero() {
			return nil, &EvalError{Kind: DivideByZero, Op: op, Err: duration.ErrDivideByZero}
		}
		return value.MakeNumber(n1.DivRound(n2, duration.Precision)), nil
	}
	panic("Unexpected binary operator")
}

func durations(op parse.Token, o ast.BinaryOp, d1, d2 duration.Duration) (value.Value, error) {
	switch o {
	case ast.Add:
		d, err := d1.Add(d2)
		if err != nil {
			return nil, durationError(op, err)
		}
		return value.MakeDuration(d), nil
	case ast.Subtract:
		d, err := d1.Sub(d2)
		if err != nil {
			return nil, durationError(op, err)
		}
		return value.MakeDuration(d), nil
	case ast.Multiply:
		return nil, &EvalError{Kind: MultiplyTimes, Op: op}
	case ast.Divide:
		ratio, err := d1.DivDuration(d2)
		if err != nil {
			return nil, durationError(op, err)
		}
		return value.MakeNumber(ratio), nil
	}
	panic("Unexpected binary operator")
}

// scale handles duration * number, number * duration and duration / number.
func scale(op parse.Token, o ast.BinaryOp, d duration.Duration, k decimal.Decimal) (value.Value, error) {
	var (
		result duration.Duration
		err    error
	)

	switch o {
	case ast.Multiply:
		result, err = d.Mul(k)
	case ast.Divide:
		result, err = d.Div(k)
	default:
		return nil, mixedError(op, o)
	}

	if err != nil {
		return nil, durationError(op, err)
	}
	return value.MakeDuration(result), nil
}

func mixedError(op parse.Token, o ast.BinaryOp) error {
	switch o {
	case ast.Add:
		return &EvalError{Kind: AddTimeAndNumber, Op: op}
	case ast.Subtract:
		return &EvalError{Kind: SubtractTimeAndNumber, Op: op}
	case ast.Divide:
		return &EvalError{Kind: DivideNumberByTime, Op: op}
	}
	return &EvalError{Kind: MultiplyTimes, Op: op}
}

func durationError(op parse.Token, err error) error {
	switch {
	case errors.Is(err, duration.ErrDivideByZero):
		return &EvalError{Kind: DivideByZero, Op: op, Err: err}
	case errors.Is(err, duration.ErrOverflow):
		return &EvalError{Kind: Overflow, Op: op, Err: err}
	}
	return err
}

func round(n decimal.Decimal) decimal.Decimal {
	return n.Round(duration.Precision)
}
