/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	IncorrectIdentifier ErrorKind = iota
	IncorrectKeyword
	IncorrectOperator
	IncorrectConstant
)

func (k ErrorKind) ToString() string {
	switch k {
	case IncorrectIdentifier:
		return "Identifier"
	case IncorrectKeyword:
		return "Keyword"
	case IncorrectOperator:
		return "Operator"
	case IncorrectConstant:
		return "Constant"
	}
	return "Unknown"
}

// LexError reports the first character at which scanning could not continue.
type LexError struct {
	Kind     ErrorKind
	Location Location
}

func NewLexError(k ErrorKind, l Location) *LexError {
	return &LexError{Kind: k, Location: l}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s error at %d:%d (%s)", e.Kind.ToString(), e.Location.Line, e.Location.Column, printable(e.Location.Char))
}

// FormatError renders the offending line of input with a caret under the
// failing column.
func (e *LexError) FormatError(input string) string {
	lines := strings.Split(input, "\n")

	line := ""
	if int(e.Location.Line) < len(lines) {
		line = lines[e.Location.Line]
	}

	errorString := fmt.Sprintf("Lexical error found on line %d:\n", e.Location.Line+1)
	errorString += line
	errorString += fmt.Sprintf("\n%s^ ", strings.Repeat(" ", int(e.Location.Column)))
	errorString += fmt.Sprintf("%s\n", e.Error())
	return errorString
}

func printable(r rune) string {
	switch r {
	case 0:
		return "EOF"
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(r)
}
