/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location is a half-open byte range [Start, End) into the scanned input.
type Location struct {
	Start int
	End   int
}

// Shift returns the location moved right by offset bytes.
func (l Location) Shift(offset int) Location {
	return Location{Start: l.Start + offset, End: l.End + offset}
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}

// Located is implemented by errors that can point at the input that caused them.
type Located interface {
	Span() Location
}
