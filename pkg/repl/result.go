/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/dburkart/timecalc/pkg/calc/value"
)

// Result pairs an expression with the value it evaluated to.
type Result struct {
	Expression string
	Value      value.Value
}

type resultJSON struct {
	Expression string `json:"expression"`
	Type       string `json:"type"`
	Result     string `json:"result"`
	Seconds    string `json:"seconds,omitempty"`
}

func (r Result) String() string {
	return r.Value.String()
}

func (r Result) Headers() []string {
	return []string{"expression", "type", "result", "seconds"}
}

func (r Result) Values() [][]string {
	return [][]string{{r.Expression, r.Value.Kind().String(), r.Value.String(), r.seconds()}}
}

// HumanValues is Values with the seconds column grouped in thousands.
func (r Result) HumanValues() [][]string {
	seconds := ""
	if r.Value.Kind() == value.Duration {
		seconds = commaDecimal(value.Seconds(r.Value))
	}
	return [][]string{{r.Expression, r.Value.Kind().String(), r.Value.String(), seconds}}
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Expression: r.Expression,
		Type:       r.Value.Kind().String(),
		Result:     r.Value.String(),
		Seconds:    r.seconds(),
	})
}

// seconds is only meaningful for durations; a number already is its value.
func (r Result) seconds() string {
	if r.Value.Kind() != value.Duration {
		return ""
	}
	return value.Seconds(r.Value).String()
}

// commaDecimal formats d with thousands separators in its whole part.
// Duration seconds always fit in an int64.
func commaDecimal(d decimal.Decimal) string {
	s := d.String()

	fraction := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		fraction = s[i:]
	}

	whole := humanize.Comma(d.Truncate(0).IntPart())
	if d.IsNegative() && d.GreaterThan(decimal.NewFromInt(-1)) {
		whole = "-" + whole
	}
	return whole + fraction
}
