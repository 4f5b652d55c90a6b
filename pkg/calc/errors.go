/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"github.com/dburkart/timecalc/pkg/common/parse"
)

type EvalErrorKind int

const (
	MultiplyTimes EvalErrorKind = iota
	AddTimeAndNumber
	SubtractTimeAndNumber
	DivideNumberByTime
	DivideByZero
	Overflow
)

func (k EvalErrorKind) String() string {
	switch k {
	case MultiplyTimes:
		return "MultiplyTimes"
	case AddTimeAndNumber:
		return "AddTimeAndNumber"
	case SubtractTimeAndNumber:
		return "SubtractTimeAndNumber"
	case DivideNumberByTime:
		return "DivideNumberByTime"
	case DivideByZero:
		return "DivideByZero"
	case Overflow:
		return "Overflow"
	}
	return "Unknown"
}

// EvalError is an operation that is not defined for its operands, or whose
// result cannot be represented. Op is the operator token that failed.
type EvalError struct {
	Kind EvalErrorKind
	Op   parse.Token
	Err  error
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case MultiplyTimes:
		return "cannot multiply a duration by a duration"
	case AddTimeAndNumber:
		return "cannot add a duration and a number"
	case SubtractTimeAndNumber:
		return "cannot subtract a duration and a number"
	case DivideNumberByTime:
		return "cannot divide a number by a duration"
	case DivideByZero:
		return "division by zero"
	case Overflow:
		return "result is out of the representable duration range"
	}
	return "evaluation failed"
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func (e *EvalError) Span() parse.Location {
	return e.Op.Location
}
