/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dur(h uint64, m, s uint8, ns uint32) Duration {
	return NewBuilder().Hours(h).Minutes(m).Seconds(s).Nanoseconds(ns).MustBuild()
}

func negDur(h uint64, m, s uint8, ns uint32) Duration {
	return NewBuilder().Negative().Hours(h).Minutes(m).Seconds(s).Nanoseconds(ns).MustBuild()
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want Duration
	}{
		{Zero, Zero, Zero},
		{dur(0, 0, 0, 1), dur(0, 0, 0, 999_999_999), dur(0, 0, 1, 0)},
		{dur(0, 0, 0, 500_000_000), dur(0, 0, 0, 800_000_000), dur(0, 0, 1, 300_000_000)},
		{dur(0, 0, 59, 0), dur(0, 0, 1, 0), dur(0, 1, 0, 0)},
		{dur(0, 0, 34, 0), dur(0, 0, 34, 0), dur(0, 1, 8, 0)},
		{dur(0, 37, 0, 0), dur(0, 37, 0, 0), dur(1, 14, 0, 0)},
		{dur(1, 23, 45, 0), dur(5, 43, 21, 0), dur(7, 7, 6, 0)},
		{dur(0, 0, 1, 0), negDur(0, 0, 2, 0), negDur(0, 0, 1, 0)},
		{negDur(0, 0, 0, 500_000_000), negDur(0, 0, 0, 500_000_000), negDur(0, 0, 1, 0)},
		{negDur(1, 0, 0, 0), dur(0, 30, 0, 0), negDur(0, 30, 0, 0)},
	}

	for _, tc := range tests {
		got, err := tc.a.Add(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s + %s", tc.a, tc.b)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, want Duration
	}{
		{Zero, Zero, Zero},
		{dur(0, 11, 22, 0), dur(0, 33, 44, 0), negDur(0, 22, 22, 0)},
		{dur(1, 0, 0, 0), dur(0, 0, 1, 0), dur(0, 59, 59, 0)},
		{dur(0, 0, 1, 0), dur(0, 0, 0, 1), dur(0, 0, 0, 999_999_999)},
		{negDur(0, 0, 1, 0), negDur(0, 0, 1, 0), Zero},
		{negDur(0, 0, 0, 1), dur(0, 0, 0, 1), negDur(0, 0, 0, 2)},
	}

	for _, tc := range tests {
		got, err := tc.a.Sub(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s - %s", tc.a, tc.b)
	}
}

func TestSelfCancellation(t *testing.T) {
	samples := []Duration{
		Zero,
		dur(0, 0, 0, 1),
		negDur(0, 0, 0, 1),
		dur(12, 34, 56, 789_000_000),
		negDur(98, 7, 6, 543_210_000),
		dur(MaxHours, 30, 7, 999_999_999),
		negDur(MaxHours, 30, 7, 999_999_999),
	}

	for _, a := range samples {
		diff, err := a.Sub(a)
		require.NoError(t, err)
		assert.Equal(t, Zero, diff, "%s - %s", a, a)

		sum, err := a.Add(a.Neg())
		require.NoError(t, err)
		assert.Equal(t, Zero, sum, "%s + -%s", a, a)
	}
}

func TestAddOverflow(t *testing.T) {
	_, err := dur(MaxHours, 30, 7, 999_999_999).Add(dur(0, 0, 0, 1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = negDur(MaxHours, 30, 7, 999_999_999).Sub(dur(0, 0, 0, 1))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMulAndDiv(t *testing.T) {
	half := decimal.RequireFromString("1.5")

	got, err := dur(0, 30, 0, 0).Mul(half)
	require.NoError(t, err)
	assert.Equal(t, dur(0, 45, 0, 0), got)

	got, err = dur(1, 11, 11, 0).Mul(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.Equal(t, dur(2, 22, 22, 0), got)

	got, err = dur(12, 24, 48, 0).Div(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.Equal(t, dur(6, 12, 24, 0), got)

	got, err = dur(0, 0, 1, 0).Div(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, dur(0, 0, 0, 333_333_333), got)

	got, err = dur(0, 0, 2, 0).Div(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, dur(0, 0, 0, 666_666_667), got)

	got, err = dur(1, 0, 0, 0).Mul(decimal.NewFromInt(-1))
	require.NoError(t, err)
	assert.Equal(t, negDur(1, 0, 0, 0), got)
}

func TestMulRoundsHalfAwayFromZero(t *testing.T) {
	half := decimal.RequireFromString("0.5")

	got, err := dur(0, 0, 0, 1).Mul(half)
	require.NoError(t, err)
	assert.Equal(t, dur(0, 0, 0, 1), got)

	got, err = negDur(0, 0, 0, 1).Mul(half)
	require.NoError(t, err)
	assert.Equal(t, negDur(0, 0, 0, 1), got)

	got, err = dur(0, 0, 0, 3).Mul(decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.Equal(t, Zero, got)
}

func TestDivideByZero(t *testing.T) {
	_, err := dur(0, 0, 33, 0).Div(decimal.Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = dur(0, 0, 22, 0).DivDuration(Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = Zero.DivDuration(NewBuilder().Negative().MustBuild())
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivDuration(t *testing.T) {
	tests := []struct {
		a, b Duration
		want string
	}{
		{dur(4, 44, 44, 0), dur(5, 55, 55, 0), "0.8"},
		{dur(2, 22, 22, 0), dur(1, 11, 11, 0), "2"},
		{dur(0, 0, 30, 0), dur(0, 1, 0, 0), "0.5"},
		{dur(0, 0, 1, 0), dur(0, 0, 3, 0), "0.333333333"},
		{dur(0, 0, 2, 0), dur(0, 0, 3, 0), "0.666666667"},
		{negDur(0, 30, 0, 0), dur(1, 0, 0, 0), "-0.5"},
		{Zero, negDur(0, 0, 0, 1), "0"},
	}

	for _, tc := range tests {
		got, err := tc.a.DivDuration(tc.b)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s / %s = %s, want %s", tc.a, tc.b, got, tc.want)
	}
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
	}{
		{"0", Zero},
		{"-0", Zero},
		{"1.2", dur(0, 0, 1, 200_000_000)},
		{"-1.2", negDur(0, 0, 1, 200_000_000)},
		{"59.9999999996", dur(0, 1, 0, 0)},
		{"3661.000000001", dur(1, 1, 1, 1)},
		{"-0.0000000004", Zero},
		{"9223372036854775807.999999999", dur(MaxHours, 30, 7, 999_999_999)},
	}

	for _, tc := range tests {
		got, err := FromDecimal(decimal.RequireFromString(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := FromDecimal(decimal.RequireFromString("9223372036854775808"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, d := range []Duration{Zero, dur(0, 0, 0, 1), negDur(0, 0, 0, 1), negDur(3, 2, 1, 5), dur(MaxHours, 30, 7, 999_999_999), negDur(MaxHours, 30, 7, 999_999_999)} {
		back, err := FromDecimal(d.Decimal())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}
