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

type Printable interface {
	Headers() []string
	Values() [][]string
}

// Titled is implemented by printables that carry a section name.
type Titled interface {
	Title() string
}

type OutputWriter interface {
	Write(v Printable)
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

var Formats = []string{"text", "csv", "json"}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func title(v Printable) string {
	if t, ok := v.(Titled); ok {
		return t.Title()
	}
	return ""
}

func (w CSVWriter) Write(v Printable) {
	if t := title(v); t != "" {
		fmt.Fprintf(w.w, "# %s\n", t)
	}
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) {
	if t := title(v); t != "" {
		fmt.Fprintf(w.w, "%s:\n", t)
	}
	table := tablewriter.NewWriter(w.w)
	table.Header(v.Headers())
	table.Bulk(v.Values())
	table.Render()
}

func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	enc.Encode(v)
}
