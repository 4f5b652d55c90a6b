/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"errors"

	"github.com/dburkart/timecalc/pkg/common/parse"
)

// FormatError renders err against the expression that caused it. Errors
// that know their position get a caret under the offending input.
func FormatError(input string, err error) string {
	var located parse.Located
	if errors.As(err, &located) {
		syntaxError := parse.NewSyntaxError(located, "Error: "+err.Error())
		return syntaxError.FormatError(input)
	}

	var lexErrs parse.LexErrors
	if errors.As(err, &lexErrs) {
		return lexErrs.FormatError(input)
	}

	return "Error: " + err.Error() + "\n"
}
