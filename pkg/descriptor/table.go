/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package descriptor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dburkart/lextab/pkg/lexer"
)

// Entry stands in for one token: its category code and its index in the
// dictionary for that category.
type Entry struct {
	Code  int
	Index int
}

func (e Entry) String() string {
	return fmt.Sprintf("(%d,%d)", e.Code, e.Index)
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.Code, e.Index})
}

// Table is the result of one Build call.
type Table struct {
	Dictionaries map[lexer.TokenType]*Dictionary
	Entries      []Entry
	Pseudocode   string
}

// Build assigns every distinct lexeme an index within its token type, in
// order of first occurrence, and renders the descriptor and pseudocode
// streams in token order.
func Build(tokens []lexer.Token) *Table {
	t := &Table{
		Dictionaries: make(map[lexer.TokenType]*Dictionary, len(lexer.TokenTypes)),
		Entries:      make([]Entry, 0, len(tokens)),
	}

	for _, typ := range lexer.TokenTypes {
		t.Dictionaries[typ] = NewDictionary()
	}

	for _, tok := range tokens {
		t.Dictionaries[tok.Type].Insert(tok.Lexeme)
	}

	pseudo := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		i, _ := t.Dictionaries[tok.Type].IndexOf(tok.Lexeme)
		t.Entries = append(t.Entries, Entry{Code: tok.Type.Code(), Index: i})
		pseudo = append(pseudo, render(tok, i))
	}
	t.Pseudocode = strings.Join(pseudo, " ")

	return t
}

func render(tok lexer.Token, i int) string {
	switch tok.Type {
	case lexer.TOK_IDENTIFIER:
		return "id" + strconv.Itoa(i)
	case lexer.TOK_CONSTANT:
		return "const" + strconv.Itoa(i)
	case lexer.TOK_STRING:
		return "str" + strconv.Itoa(i)
	}
	return tok.Lexeme
}

// Descriptors renders the entry stream as space separated (code,index) pairs.
func (t *Table) Descriptors() string {
	parts := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Listing returns the index -> lexeme rows for one token type.
func (t *Table) Listing(typ lexer.TokenType) [][]string {
	d := t.Dictionaries[typ]
	rows := make([][]string, 0, d.Len())
	for i, lexeme := range d.lexemes {
		rows = append(rows, []string{strconv.Itoa(i), lexeme})
	}
	return rows
}

func (t *Table) MarshalJSON() ([]byte, error) {
	dicts := make(map[string]*Dictionary, len(t.Dictionaries))
	for typ, d := range t.Dictionaries {
		dicts[typ.Name()] = d
	}

	return json.Marshal(struct {
		Dictionaries map[string]*Dictionary `json:"dictionaries"`
		Descriptors  []Entry                `json:"descriptors"`
		Pseudocode   string                 `json:"pseudocode"`
	}{dicts, t.Entries, t.Pseudocode})
}
