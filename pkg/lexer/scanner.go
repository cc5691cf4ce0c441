/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lexer

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/lextab/pkg/common/parse"
)

// Scanner walks Input one token at a time. Start is the offset of the token
// being matched and Pos the offset of the next unread byte. Input is expected
// to be ASCII; any other byte is rejected.
type Scanner struct {
	Input string
	Start int
	Pos   int

	line      uint
	lineStart int

	emitted bool
	last    Token
}

// Tokenize scans all of source. On the first invalid character it returns a
// *parse.LexError and no tokens.
func Tokenize(source string) ([]Token, error) {
	s := Scanner{Input: source}
	tokens := []Token{}

	for {
		tok, err := s.Emit()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// peek returns the byte offset bytes past Pos without consuming it, or 0 past
// the end of Input.
func (s *Scanner) peek(offset int) byte {
	i := s.Pos + offset
	if i >= len(s.Input) {
		return 0
	}
	return s.Input[i]
}

func (s *Scanner) location(pos int) parse.Location {
	loc := parse.Location{Line: s.line, Column: uint(pos - s.lineStart)}
	if pos < len(s.Input) {
		loc.Char, _ = utf8.DecodeRuneInString(s.Input[pos:])
	}
	return loc
}

func (s *Scanner) fail(kind parse.ErrorKind, pos int) error {
	return parse.NewLexError(kind, s.location(pos))
}

// MatchWord returns the length of the next token, assuming it is an
// identifier or keyword.
//
// Grammar:
//
//	word            = (ALPHA / "_") *(ALPHA / DIGIT / "_")
func (s *Scanner) MatchWord() int {
	size := 0
	for c := s.peek(0); isLetter(c) || (size > 0 && isDigit(c)); c = s.peek(size) {
		size++
	}
	return size
}

// MatchDirective returns the length of the next token, assuming it is a
// preprocessor directive such as #include.
//
// Grammar:
//
//	directive       = "#" 1*(ALPHA / DIGIT / "_")
func (s *Scanner) MatchDirective() (int, error) {
	size := 1
	for c := s.peek(size); isLetter(c) || isDigit(c); c = s.peek(size) {
		size++
	}

	if size == 1 {
		return 0, s.fail(parse.IncorrectKeyword, s.Pos+1)
	}
	return size, nil
}

// MatchNumber returns the length of the next token, assuming it is a
// numeric constant.
//
// Grammar:
//
//	number          = [sign] 1*DIGIT ["." 1*DIGIT] [("e" / "E") [sign] 1*DIGIT]
//	sign            = "+" / "-"
func (s *Scanner) MatchNumber() (int, error) {
	size := 0

	if c := s.peek(0); c == '+' || c == '-' {
		size++
	}

	digits := func() int {
		n := 0
		for isDigit(s.peek(size)) {
			size++
			n++
		}
		return n
	}

	// expect fails at the character after a dangling marker, or at the
	// marker itself when input ends there.
	expect := func() error {
		if s.Pos+size >= len(s.Input) {
			return s.fail(parse.IncorrectConstant, s.Pos+size-1)
		}
		return s.fail(parse.IncorrectConstant, s.Pos+size)
	}

	if digits() == 0 {
		return 0, expect()
	}

	if s.peek(size) == '.' {
		size++
		if digits() == 0 {
			return 0, expect()
		}
	}

	if c := s.peek(size); c == 'e' || c == 'E' {
		size++
		if c := s.peek(size); c == '+' || c == '-' {
			size++
		}
		if digits() == 0 {
			return 0, expect()
		}
	}

	return size, nil
}

// MatchString returns the length of the next token, assuming it is a string
// literal. A backslash keeps the following character from closing the
// literal; the literal may not cross a line.
//
// Grammar:
//
//	string          = DQUOTE *(CHAR / "\" CHAR) DQUOTE
func (s *Scanner) MatchString() (int, error) {
	size := 1

	for {
		if s.Pos+size >= len(s.Input) {
			return 0, s.fail(parse.IncorrectConstant, s.Pos)
		}

		switch s.peek(size) {
		case '\n':
			return 0, s.fail(parse.IncorrectConstant, s.Pos)
		case '\\':
			if c := s.peek(size + 1); c == '\n' || s.Pos+size+1 >= len(s.Input) {
				return 0, s.fail(parse.IncorrectConstant, s.Pos)
			}
			size += 2
		case '"':
			return size + 1, nil
		default:
			size++
		}
	}
}

// MatchOperator returns the length of the longest operator at Pos.
func (s *Scanner) MatchOperator() int {
	rest := s.Input[s.Pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return len(op)
		}
	}
	return 1
}

// lastIsOperand reports whether the previously emitted token can be the left
// side of a binary operator.
func (s *Scanner) lastIsOperand() bool {
	if !s.emitted {
		return false
	}

	switch s.last.Type {
	case TOK_IDENTIFIER, TOK_CONSTANT, TOK_STRING:
		return true
	case TOK_SEPARATOR:
		return s.last.Lexeme == ")" || s.last.Lexeme == "]"
	}
	return false
}

// checkBoundary fails unless the byte at end terminates a token.
func (s *Scanner) checkBoundary(end int, kind parse.ErrorKind) error {
	if end >= len(s.Input) || isBoundary(s.Input[end]) {
		return nil
	}
	return s.fail(kind, end)
}

// Emit the next Token found on Scanner.Input. At the end of input it returns
// io.EOF.
func (s *Scanner) Emit() (Token, error) {
	var t Token

	for {
		if s.Pos >= len(s.Input) {
			return t, io.EOF
		}

		c := s.peek(0)
		if !isWhitespace(c) {
			break
		}

		s.Pos++
		if c == '\n' {
			s.line++
			s.lineStart = s.Pos
		}
	}

	s.Start = s.Pos
	t.Location = s.location(s.Start)

	c := s.peek(0)
	skip := 0
	var err error

	switch {
	case isLetter(c):
		skip = s.MatchWord()
		t.Type = TOK_IDENTIFIER
		kind := parse.IncorrectIdentifier
		if IsKeyword(s.Input[s.Pos : s.Pos+skip]) {
			t.Type = TOK_KEYWORD
			kind = parse.IncorrectKeyword
		}
		err = s.checkBoundary(s.Pos+skip, kind)
	case c == '#':
		t.Type = TOK_IDENTIFIER
		skip, err = s.MatchDirective()
		if err == nil {
			err = s.checkBoundary(s.Pos+skip, parse.IncorrectIdentifier)
		}
	case isDigit(c), (c == '+' || c == '-') && isDigit(s.peek(1)) && !s.lastIsOperand():
		t.Type = TOK_CONSTANT
		skip, err = s.MatchNumber()
		if err == nil {
			err = s.checkBoundary(s.Pos+skip, parse.IncorrectConstant)
		}
	case c == '"':
		t.Type = TOK_STRING
		skip, err = s.MatchString()
		if err == nil {
			err = s.checkBoundary(s.Pos+skip, parse.IncorrectConstant)
		}
	case isOperatorStart(c):
		t.Type = TOK_OPERATOR
		skip = s.MatchOperator()
	case isSeparator(c):
		t.Type = TOK_SEPARATOR
		skip = 1
	default:
		err = s.fail(parse.IncorrectOperator, s.Pos)
	}

	if err != nil {
		return Token{}, err
	}

	s.Pos = s.Start + skip
	t.Lexeme = s.Input[s.Start:s.Pos]
	s.Start = s.Pos

	s.emitted = true
	s.last = t

	return t, nil
}
