/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package duration

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow     = errors.New("duration exceeds the representable range")
	ErrDivideByZero = errors.New("division by zero")
)

// RangeError reports a builder component outside of its allowed range.
type RangeError struct {
	Component string
	Value     uint64
	Max       uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between 0 and %d, got %d", e.Component, e.Max, e.Value)
}
