/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Printable is anything an OutputWriter can render.
type Printable interface {
	fmt.Stringer
	Headers() []string
	Values() [][]string
}

// HumanPrintable is a Printable that has a friendlier rendering for tables.
type HumanPrintable interface {
	Printable
	HumanValues() [][]string
}

type OutputWriter interface {
	Write(v Printable) error
}

const (
	FormatPlain = "plain"
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Formats lists every format NewOutputWriter understands.
var Formats = []string{FormatPlain, FormatText, FormatCSV, FormatJSON}

type PlainWriter struct {
	w io.Writer
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

// NewOutputWriter returns the writer for format t. Unknown formats fall
// back to plain output.
func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case FormatCSV:
		return CSVWriter{
			w,
		}
	case FormatJSON:
		return JSONWriter{
			w,
		}
	case FormatText:
		return TextWriter{
			w,
		}
	}
	return PlainWriter{
		w,
	}
}

// IsFormat reports whether t names a known output format.
func IsFormat(t string) bool {
	for _, f := range Formats {
		if f == t {
			return true
		}
	}
	return false
}

func (w PlainWriter) Write(v Printable) error {
	_, err := fmt.Fprintln(w.w, v.String())
	return err
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return err
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) error {
	rows := v.Values()
	if h, ok := v.(HumanPrintable); ok {
		rows = h.HumanValues()
	}

	headers := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	return enc.Encode(v)
}
