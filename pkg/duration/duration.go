/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package duration implements a signed, nanosecond-precision amount of
// elapsed time with exact decimal arithmetic.
//
// A Duration is stored as a number of whole seconds plus a non-negative
// nanosecond offset. Negative durations are biased the same way two's
// complement biases negative integers: -1.2s is stored as -2s + 0.8s. This
// keeps the offset non-negative and makes ordering a plain comparison of the
// two fields. Zero is always stored as (0, 0).
//
// The representable range is +/- 2,562,047,788,015,215:30:07.999999999
// (2^63-1 seconds plus 999,999,999 nanoseconds).
package duration

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MaxHours   uint64 = 2_562_047_788_015_215
	MaxMinutes uint8  = 30
	MaxSeconds uint8  = 7

	NanosPerSecond   uint32 = 1_000_000_000
	SecondsPerMinute        = 60
	MinutesPerHour          = 60
	SecondsPerHour          = SecondsPerMinute * MinutesPerHour

	// Precision is the number of fractional decimal digits a Duration holds.
	Precision = 9
)

type Duration struct {
	seconds int64
	nanos   uint32
}

// Zero is the empty duration.
var Zero = Duration{}

// WholeSeconds returns the biased whole-second field.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// NanoOffset returns the biased nanosecond field.
func (d Duration) NanoOffset() uint32 {
	return d.nanos
}

// Signum returns -1, 0 or 1 depending on the sign of d.
func (d Duration) Signum() int {
	switch {
	case d.seconds < 0:
		return -1
	case d.seconds > 0, d.nanos > 0:
		return 1
	}
	return 0
}

func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanos == 0
}

// magnitude returns the absolute number of whole seconds in d.
func (d Duration) magnitude() uint64 {
	if d.seconds < 0 {
		return uint64(-(d.seconds + 1))
	}
	return uint64(d.seconds)
}

// Hours returns the hours component of |d|.
func (d Duration) Hours() uint64 {
	return d.magnitude() / SecondsPerHour
}

// Minutes returns the minutes component of |d|.
func (d Duration) Minutes() uint8 {
	return uint8(d.magnitude() % SecondsPerHour / SecondsPerMinute)
}

// Seconds returns the seconds component of |d|.
func (d Duration) Seconds() uint8 {
	return uint8(d.magnitude() % SecondsPerMinute)
}

// Nanoseconds returns the sub-second component of |d|.
func (d Duration) Nanoseconds() uint32 {
	if d.seconds < 0 {
		return NanosPerSecond - d.nanos
	}
	return d.nanos
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.seconds < o.seconds:
		return -1
	case d.seconds > o.seconds:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	}
	return 0
}

// Decimal returns the exact number of seconds in d.
func (d Duration) Decimal() decimal.Decimal {
	return decimal.New(d.seconds, 0).Add(decimal.New(int64(d.nanos), -Precision))
}

// String formats d as [-][H:]MM:SS[.fraction], or [-]S[.fraction]s when d
// is shorter than a minute.
func (d Duration) String() string {
	var b strings.Builder

	hours, minutes, seconds, nanos := d.Hours(), d.Minutes(), d.Seconds(), d.Nanoseconds()

	if d.Signum() == -1 {
		b.WriteByte('-')
	}
	if hours > 0 {
		b.WriteString(strconv.FormatUint(hours, 10))
		b.WriteByte(':')
	}
	if hours > 0 || minutes > 0 {
		b.WriteString(twoDigits(minutes))
		b.WriteByte(':')
		b.WriteString(twoDigits(seconds))
	} else {
		b.WriteString(strconv.Itoa(int(seconds)))
	}

	if nanos > 0 {
		frac := strconv.FormatUint(uint64(nanos), 10)
		frac = strings.Repeat("0", Precision-len(frac)) + frac
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(frac, "0"))
	}

	if hours == 0 && minutes == 0 {
		b.WriteByte('s')
	}

	return b.String()
}

func twoDigits(n uint8) string {
	if n < 10 {
		return "0" + strconv.Itoa(int(n))
	}
	return strconv.Itoa(int(n))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
