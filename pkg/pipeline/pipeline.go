/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package pipeline

import (
	"fmt"
	"strings"

	"github.com/dburkart/lextab/pkg/cleanup"
	"github.com/dburkart/lextab/pkg/descriptor"
	"github.com/dburkart/lextab/pkg/lexer"
)

// Options control the stages that have any. The zero value strips comments
// without regard to string literals; use DefaultOptions for the usual
// behaviour.
type Options struct {
	StringAware bool
}

func DefaultOptions() Options {
	return Options{StringAware: true}
}

// Result carries the output of every stage. Table is nil when tokenizing
// failed.
type Result struct {
	Source   string            `json:"-"`
	Stripped string            `json:"stripped"`
	Tokens   []lexer.Token     `json:"tokens"`
	Table    *descriptor.Table `json:"table"`
}

// Run strips, tokenizes and builds the descriptor table for source with the
// default options.
func Run(source string) (Result, error) {
	return DefaultOptions().Run(source)
}

// Run strips, tokenizes and builds the descriptor table for source. The
// stripped text is returned even when tokenizing fails, alongside the
// *parse.LexError.
func (o Options) Run(source string) (Result, error) {
	stripper := cleanup.Stripper{StringAware: o.StringAware}
	r := Result{
		Source:   source,
		Stripped: stripper.Strip(source),
	}

	tokens, err := lexer.Tokenize(r.Stripped)
	if err != nil {
		return r, err
	}

	r.Tokens = tokens
	r.Table = descriptor.Build(tokens)
	return r, nil
}

// Dump renders every section of a successful result as plain text.
func (r Result) Dump() string {
	var b strings.Builder

	b.WriteString("== stripped\n")
	if r.Stripped != "" {
		b.WriteString(r.Stripped)
		b.WriteString("\n")
	}

	b.WriteString("== tokens\n")
	for _, tok := range r.Tokens {
		b.WriteString(fmt.Sprintf("%s %s\n", tok.Type.ToString(), tok.Lexeme))
	}

	if r.Table == nil {
		return b.String()
	}

	b.WriteString("== descriptors\n")
	b.WriteString(r.Table.Descriptors())
	b.WriteString("\n== pseudocode\n")
	b.WriteString(r.Table.Pseudocode)
	b.WriteString("\n")

	for _, typ := range lexer.TokenTypes {
		b.WriteString(fmt.Sprintf("== %s\n", typ.Name()))
		for _, row := range r.Table.Listing(typ) {
			b.WriteString(strings.Join(row, " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}
