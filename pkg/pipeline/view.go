/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package pipeline

import (
	"strconv"
	"strings"

	"github.com/dburkart/lextab/pkg/lexer"
)

// View is one printable section of a Result.
type View struct {
	Name   string     `json:"title"`
	Header []string   `json:"headers"`
	Rows   [][]string `json:"values"`
}

func (v View) Title() string {
	return v.Name
}

func (v View) Headers() []string {
	return v.Header
}

func (v View) Values() [][]string {
	return v.Rows
}

// StrippedView shows the comment-free source, one row per line.
func (r Result) StrippedView(lineNumbers bool) View {
	v := View{Name: "stripped", Header: []string{"source"}}
	if r.Stripped == "" {
		return v
	}

	if lineNumbers {
		v.Header = []string{"line", "source"}
	}

	for i, line := range strings.Split(r.Stripped, "\n") {
		if lineNumbers {
			v.Rows = append(v.Rows, []string{strconv.Itoa(i + 1), line})
			continue
		}
		v.Rows = append(v.Rows, []string{line})
	}
	return v
}

func (r Result) TokensView() View {
	v := View{Name: "tokens", Header: []string{"#", "type", "code", "lexeme", "position"}}
	for i, tok := range r.Tokens {
		v.Rows = append(v.Rows, []string{
			strconv.Itoa(i),
			tok.Type.ToString(),
			strconv.Itoa(tok.Type.Code()),
			tok.Lexeme,
			tok.Location.String(),
		})
	}
	return v
}

func (r Result) ListingView(typ lexer.TokenType) View {
	v := View{Name: typ.Name(), Header: []string{"index", "lexeme"}}
	if r.Table != nil {
		v.Rows = r.Table.Listing(typ)
	}
	return v
}

func (r Result) DescriptorsView() View {
	v := View{Name: "descriptors", Header: []string{"descriptors"}}
	if r.Table != nil {
		v.Rows = [][]string{{r.Table.Descriptors()}}
	}
	return v
}

func (r Result) PseudocodeView() View {
	v := View{Name: "pseudocode", Header: []string{"pseudocode"}}
	if r.Table != nil {
		v.Rows = [][]string{{r.Table.Pseudocode}}
	}
	return v
}

// Views returns every section in display order.
func (r Result) Views(lineNumbers bool) []View {
	views := []View{
		r.StrippedView(lineNumbers),
		r.TokensView(),
		r.DescriptorsView(),
		r.PseudocodeView(),
	}
	for _, typ := range lexer.TokenTypes {
		views = append(views, r.ListingView(typ))
	}
	return views
}
