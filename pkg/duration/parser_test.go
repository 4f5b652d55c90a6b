/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dburkart/timecalc/pkg/common/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		text string
		want Duration
	}{
		{"0s", Zero},
		{"-0s", Zero},
		{"00:00", Zero},
		{"-00:00.000", Zero},
		{"1s", dur(0, 0, 1, 0)},
		{"59.5s", dur(0, 0, 59, 500_000_000)},
		{"-0.000000001s", negDur(0, 0, 0, 1)},
		{"01:00", dur(0, 1, 0, 0)},
		{"59:59.999999999", dur(0, 59, 59, 999_999_999)},
		{"1:00:00", dur(1, 0, 0, 0)},
		{"12:34:56.789", dur(12, 34, 56, 789_000_000)},
		{"-1:23:45", negDur(1, 23, 45, 0)},
		{"0:11:22", dur(0, 11, 22, 0)},
		{"2562047788015215:30:07.999999999", dur(MaxHours, 30, 7, 999_999_999)},
		{"-2562047788015215:30:07.999999999", negDur(MaxHours, 30, 7, 999_999_999)},
	}

	for _, tc := range tests {
		got, err := Parse(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		text string
		kind ParseErrorKind
	}{
		{"", ExpectedNumber},
		{"-", ExpectedNumber},
		{"1:", ExpectedNumber},
		{"--1s", ExpectedNumber},
		{"1:2:3:4", ExceededMaxComponents},
		{"1.", ExpectedNumberAfterDecimal},
		{"1.s", ExpectedNumberAfterDecimal},
		{"5", ExpectedSecondsIdentifier},
		{"1.5", ExpectedSecondsIdentifier},
		{"1:30s", UnexpectedSecondsIdentifier},
		{"1:5:30", ExpectedTwoDigitMinutes},
		{"100:00", ExpectedTwoDigitMinutes},
		{"05:3", ExpectedTwoDigitSeconds},
		{"1:00:300", ExpectedTwoDigitSeconds},
		{"00:60:00", MinutesOutOfRange},
		{"00:60", SecondsOutOfRange},
		{"61s", SecondsOutOfRange},
		{"12:34:56.0123456789", FractionalSecondsTooLarge},
		{"1s2", ExpectedEndOfInput},
		{"1:00-", ExpectedEndOfInput},
	}

	for _, tc := range tests {
		_, err := Parse(tc.text)
		var perr *ParseError
		if assert.ErrorAs(t, err, &perr, tc.text) {
			assert.Equal(t, tc.kind, perr.Kind, "%q: %v", tc.text, err)
		}
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse("00:60:00")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "60", perr.Lexeme)
	assert.Equal(t, parse.Location{Start: 3, End: 5}, perr.Location)
	assert.Equal(t, "minutes must be less than 60, found '60'", perr.Error())

	_, err = Parse("1:")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "expected a number, found end of input", perr.Error())
}

func TestParseOverflow(t *testing.T) {
	for _, text := range []string{
		"2562047788015215:30:08",
		"-2562047788015216:00:00",
		"99999999999999999999:00:00",
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrOverflow, text)
	}
}

func TestParseLexErrors(t *testing.T) {
	_, err := Parse("1a:b0")

	var lexErrs parse.LexErrors
	require.True(t, errors.As(err, &lexErrs))
	require.Len(t, lexErrs, 2)
	assert.Equal(t, 'a', lexErrs[0].Char)
	assert.Equal(t, parse.Location{Start: 1, End: 2}, lexErrs[0].Location)
	assert.Equal(t, 'b', lexErrs[1].Char)
	assert.Equal(t, parse.Location{Start: 3, End: 4}, lexErrs[1].Location)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Zero, "0s"},
		{dur(0, 0, 0, 1), "0.000000001s"},
		{negDur(0, 0, 1, 200_000_000), "-1.2s"},
		{dur(0, 0, 59, 0), "59s"},
		{dur(0, 1, 0, 0), "01:00"},
		{negDur(0, 22, 22, 0), "-22:22"},
		{dur(1, 14, 0, 0), "1:14:00"},
		{dur(7, 7, 6, 0), "7:07:06"},
		{dur(12, 34, 56, 789_000_000), "12:34:56.789"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.d.String())
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, d := range []Duration{
		Zero,
		dur(0, 0, 0, 1),
		negDur(0, 0, 0, 999_999_999),
		dur(0, 0, 42, 0),
		negDur(0, 9, 8, 70_000_000),
		dur(100, 0, 0, 100),
		negDur(MaxHours, 30, 7, 999_999_999),
		dur(MaxHours, 30, 7, 999_999_999),
	} {
		back, err := Parse(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, back, d.String())
	}
}

func TestTextMarshaling(t *testing.T) {
	type record struct {
		Elapsed Duration `json:"elapsed"`
	}

	out, err := json.Marshal(record{Elapsed: dur(1, 2, 3, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"elapsed":"1:02:03"}`, string(out))

	var in record
	require.NoError(t, json.Unmarshal([]byte(`{"elapsed":"-0.25s"}`), &in))
	assert.Equal(t, negDur(0, 0, 0, 250_000_000), in.Elapsed)

	assert.Error(t, json.Unmarshal([]byte(`{"elapsed":"1:5"}`), &in))
}
