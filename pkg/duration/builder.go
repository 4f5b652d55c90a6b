/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

// Builder accumulates the components of a Duration. Setters never fail; the
// first out-of-range component is reported by Build.
type Builder struct {
	negative    bool
	hours       uint64
	minutes     uint8
	seconds     uint8
	nanoseconds uint32
	err         error
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Negative() *Builder {
	b.negative = true
	return b
}

func (b *Builder) Hours(hours uint64) *Builder {
	b.hours = hours
	return b
}

func (b *Builder) Minutes(minutes uint8) *Builder {
	if minutes >= MinutesPerHour {
		b.fail(&RangeError{Component: "minutes", Value: uint64(minutes), Max: MinutesPerHour - 1})
		return b
	}
	b.minutes = minutes
	return b
}

func (b *Builder) Seconds(seconds uint8) *Builder {
	if seconds >= SecondsPerMinute {
		b.fail(&RangeError{Component: "seconds", Value: uint64(seconds), Max: SecondsPerMinute - 1})
		return b
	}
	b.seconds = seconds
	return b
}

func (b *Builder) Nanoseconds(nanoseconds uint32) *Builder {
	if nanoseconds >= NanosPerSecond {
		b.fail(&RangeError{Component: "nanoseconds", Value: uint64(nanoseconds), Max: uint64(NanosPerSecond - 1)})
		return b
	}
	b.nanoseconds = nanoseconds
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the Duration described by the builder, applying the negative
// bias. It fails if a setter was given an out-of-range component or if the
// magnitude exceeds MaxHours:MaxMinutes:MaxSeconds.999999999.
func (b *Builder) Build() (Duration, error) {
	if b.err != nil {
		return Duration{}, b.err
	}

	if b.hours > MaxHours ||
		(b.hours == MaxHours && b.minutes > MaxMinutes) ||
		(b.hours == MaxHours && b.minutes == MaxMinutes && b.seconds > MaxSeconds) {
		return Duration{}, ErrOverflow
	}

	seconds := int64(b.hours*SecondsPerHour + uint64(b.minutes)*SecondsPerMinute + uint64(b.seconds))
	nanos := b.nanoseconds

	// Zero has no negative form.
	if b.negative && (seconds != 0 || nanos != 0) {
		seconds = -seconds - 1
		nanos = NanosPerSecond - nanos
	}

	return Duration{seconds: seconds, nanos: nanos}, nil
}

// MustBuild is like Build but panics on error. It is intended for literals
// in tests and package-level variables.
func (b *Builder) MustBuild() Duration {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
