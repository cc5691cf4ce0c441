/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cleanup

import (
	"fmt"
	"strings"
)

type state int

const (
	stateNormal state = iota
	stateSlash
	stateLineComment
	stateBlockComment
	stateBlockStar
	stateString
	stateStringEscape
)

// Stripper removes // and /* */ comments from source text and collapses the
// whitespace left behind.
//
// When StringAware is set, comment markers inside double-quoted string
// literals are left alone. A literal ends at the next unescaped quote or at
// the end of the line.
type Stripper struct {
	StringAware bool
}

// Strip runs a string-aware Stripper over source.
func Strip(source string) string {
	s := Stripper{StringAware: true}
	return s.Strip(source)
}

// Strip returns a fresh copy of source with comments removed. Runs of spaces
// and tabs become a single space, indentation and trailing whitespace on each
// line is dropped, blank lines collapse, and the document carries no leading
// or trailing blank lines. An unterminated block comment swallows the rest of
// the input.
func (s Stripper) Strip(source string) string {
	w := writer{}
	st := stateNormal

	for i := 0; i < len(source); i++ {
		c := source[i]

		switch st {
		case stateSlash:
			switch c {
			case '/':
				st = stateLineComment
				continue
			case '*':
				st = stateBlockComment
				continue
			}
			w.char('/')
			st = stateNormal
		case stateLineComment:
			if c != '\n' {
				continue
			}
			st = stateNormal
		case stateBlockComment:
			if c == '*' {
				st = stateBlockStar
			}
			continue
		case stateBlockStar:
			switch c {
			case '/':
				st = stateNormal
			case '*':
			default:
				st = stateBlockComment
			}
			continue
		case stateString:
			switch c {
			case '\n':
				st = stateNormal
			case '\\':
				w.raw(c)
				st = stateStringEscape
				continue
			case '"':
				w.raw(c)
				st = stateNormal
				continue
			default:
				w.raw(c)
				continue
			}
		case stateStringEscape:
			if c == '\n' {
				st = stateNormal
				break
			}
			w.raw(c)
			st = stateString
			continue
		}

		// stateNormal, possibly re-entered with the lookahead character
		switch c {
		case ' ', '\t', '\r':
			w.space()
		case '\n':
			w.newline()
		case '/':
			st = stateSlash
		case '"':
			w.char(c)
			if s.StringAware {
				st = stateString
			}
		default:
			w.char(c)
		}
	}

	if st == stateSlash {
		w.char('/')
	}

	return w.String()
}

// writer is the append-only output buffer. Whitespace is held back until the
// next visible character so that it can be collapsed or dropped.
type writer struct {
	out            strings.Builder
	pendingSpace   bool
	pendingNewline bool
}

func (w *writer) space() {
	if w.pendingNewline {
		return
	}
	w.pendingSpace = true
}

func (w *writer) newline() {
	w.pendingSpace = false
	if w.out.Len() > 0 {
		w.pendingNewline = true
	}
}

func (w *writer) char(c byte) {
	if w.pendingNewline {
		w.out.WriteByte('\n')
	} else if w.pendingSpace {
		w.out.WriteByte(' ')
	}
	w.pendingNewline = false
	w.pendingSpace = false
	w.out.WriteByte(c)
}

// raw writes string literal contents verbatim.
func (w *writer) raw(c byte) {
	w.out.WriteByte(c)
}

func (w *writer) String() string {
	return w.out.String()
}

// Number prefixes every line of text with its 1-based line number.
func Number(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for idx, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		b.WriteString(fmt.Sprintf("%-3d%s\n", idx+1, line))
	}
	return b.String()
}
