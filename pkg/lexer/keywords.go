/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lexer

import "sort"

var keywords = map[string]struct{}{
	"int": {}, "char": {}, "bool": {}, "void": {}, "float": {}, "double": {},
	"long": {}, "short": {}, "signed": {}, "unsigned": {}, "const": {},
	"static": {}, "struct": {}, "class": {}, "public": {}, "private": {},
	"protected": {}, "virtual": {}, "friend": {}, "template": {},
	"namespace": {}, "using": {}, "enum": {}, "union": {}, "if": {},
	"else": {}, "for": {}, "while": {}, "do": {}, "switch": {}, "case": {},
	"default": {}, "break": {}, "goto": {}, "return": {}, "new": {},
	"delete": {}, "sizeof": {}, "this": {}, "throw": {}, "try": {},
	"catch": {}, "true": {}, "false": {}, "nullptr": {}, "operator": {},
	"mutable": {}, "inline": {}, "auto": {}, "asm": {},
}

// IsKeyword reports whether word is a reserved word.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for k := range keywords {
		words = append(words, k)
	}
	sort.Strings(words)
	return words
}

// Multi-character operators, longest first so the first prefix match is the
// maximal one.
var operators = []string{
	"<<=", ">>=",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "<<", ">>", "<=", ">=", "==",
	"!=", "&&", "||", "&=", "|=", "->",
}

func isOperatorStart(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|', '^':
		return true
	}
	return false
}

func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', ';', ',', ':':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isBoundary reports whether c may directly follow a word, number or string.
func isBoundary(c byte) bool {
	return isWhitespace(c) || isSeparator(c) || isOperatorStart(c)
}
