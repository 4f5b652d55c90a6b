/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package value holds the two kinds of value an expression can produce:
// decimal numbers and durations.
package value

import (
	"github.com/shopspring/decimal"

	"github.com/dburkart/timecalc/pkg/duration"
)

type Kind int

const (
	Unknown Kind = iota

	Number
	Duration
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Duration:
		return "duration"
	}
	return "unknown"
}

type Value interface {
	Kind() Kind
	String() string
}

type (
	numberVal   struct{ d decimal.Decimal }
	durationVal struct{ d duration.Duration }
)

func (numberVal) Kind() Kind   { return Number }
func (durationVal) Kind() Kind { return Duration }

func (x numberVal) String() string   { return x.d.String() }
func (x durationVal) String() string { return x.d.String() }

// Equal reports whether two values are of the same kind and numerically
// equal. Numbers with different scales (1.50 and 1.5) are equal.
func (x numberVal) Equal(v Value) bool {
	y, ok := v.(numberVal)
	return ok && x.d.Equal(y.d)
}

func (x durationVal) Equal(v Value) bool {
	y, ok := v.(durationVal)
	return ok && x.d == y.d
}

func MakeNumber(d decimal.Decimal) Value     { return numberVal{d} }
func MakeDuration(d duration.Duration) Value { return durationVal{d} }
func MakeInt(i int64) Value                  { return numberVal{decimal.NewFromInt(i)} }

func NumberVal(v Value) decimal.Decimal {
	switch x := v.(type) {
	case numberVal:
		return x.d
	default:
		panic("Not a number")
	}
}

func DurationVal(v Value) duration.Duration {
	switch x := v.(type) {
	case durationVal:
		return x.d
	default:
		panic("Not a duration")
	}
}

// Seconds returns v as a count of seconds: a number as-is, a duration as
// its exact decimal number of seconds.
func Seconds(v Value) decimal.Decimal {
	switch x := v.(type) {
	case numberVal:
		return x.d
	case durationVal:
		return x.d.Decimal()
	default:
		panic("Not a value")
	}
}
