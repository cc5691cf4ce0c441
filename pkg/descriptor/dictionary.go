/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package descriptor

import "encoding/json"

// Dictionary is an insertion-ordered set of lexemes. Each lexeme keeps the
// index it was assigned when first inserted.
type Dictionary struct {
	lexemes []string
	index   map[string]int
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		lexemes: []string{},
		index:   make(map[string]int),
	}
}

// Insert adds lexeme if it has not been seen and returns its index.
func (d *Dictionary) Insert(lexeme string) int {
	if i, ok := d.index[lexeme]; ok {
		return i
	}

	i := len(d.lexemes)
	d.lexemes = append(d.lexemes, lexeme)
	d.index[lexeme] = i
	return i
}

func (d *Dictionary) IndexOf(lexeme string) (int, bool) {
	i, ok := d.index[lexeme]
	return i, ok
}

func (d *Dictionary) Lexeme(i int) string {
	return d.lexemes[i]
}

func (d *Dictionary) Len() int {
	return len(d.lexemes)
}

// Lexemes returns a copy of the dictionary contents in index order.
func (d *Dictionary) Lexemes() []string {
	ret := make([]string, len(d.lexemes))
	copy(ret, d.lexemes)
	return ret
}

func (d *Dictionary) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.lexemes)
}
