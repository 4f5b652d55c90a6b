/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	maxWholeSeconds = decimal.NewFromInt(math.MaxInt64)
	minusOne        = decimal.NewFromInt(-1)
)

// FromDecimal converts a number of seconds into a Duration. The value is
// rounded half away from zero to nanosecond precision before it is split
// into whole seconds and a sub-second remainder.
func FromDecimal(seconds decimal.Decimal) (Duration, error) {
	rounded := seconds.Round(Precision)

	abs := rounded.Abs()
	whole := abs.Truncate(0)
	if whole.GreaterThan(maxWholeSeconds) {
		return Duration{}, ErrOverflow
	}

	total := uint64(whole.IntPart())
	nanos := uint32(abs.Sub(whole).Shift(Precision).IntPart())

	b := NewBuilder().
		Hours(total / SecondsPerHour).
		Minutes(uint8(total % SecondsPerHour / SecondsPerMinute)).
		Seconds(uint8(total % SecondsPerMinute)).
		Nanoseconds(nanos)
	if rounded.IsNegative() {
		b.Negative()
	}

	return b.Build()
}

// Add returns d + o.
func (d Duration) Add(o Duration) (Duration, error) {
	return FromDecimal(d.Decimal().Add(o.Decimal()))
}

// Sub returns d - o.
func (d Duration) Sub(o Duration) (Duration, error) {
	return FromDecimal(d.Decimal().Sub(o.Decimal()))
}

// Mul returns d scaled by k.
func (d Duration) Mul(k decimal.Decimal) (Duration, error) {
	return FromDecimal(d.Decimal().Mul(k))
}

// Div returns d divided by the scalar k.
func (d Duration) Div(k decimal.Decimal) (Duration, error) {
	if k.IsZero() {
		return Duration{}, ErrDivideByZero
	}
	return FromDecimal(d.Decimal().DivRound(k, Precision))
}

// DivDuration returns the ratio d / o, rounded half away from zero to
// nanosecond precision.
func (d Duration) DivDuration(o Duration) (decimal.Decimal, error) {
	if o.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}
	return d.Decimal().DivRound(o.Decimal(), Precision), nil
}

// Neg returns -d. The range is symmetric, so negation cannot overflow.
func (d Duration) Neg() Duration {
	n, err := d.Mul(minusOne)
	if err != nil {
		panic(err)
	}
	return n
}
