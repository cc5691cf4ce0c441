/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lexer

import (
	"encoding/json"

	"github.com/dburkart/lextab/pkg/common/parse"
)

type TokenType int

// The order of these constants fixes the category codes: (iota+1)*10.
const (
	TOK_KEYWORD TokenType = iota
	TOK_IDENTIFIER
	TOK_OPERATOR
	TOK_CONSTANT
	TOK_STRING
	TOK_SEPARATOR
)

// TokenTypes lists every token type in category code order.
var TokenTypes = []TokenType{
	TOK_KEYWORD,
	TOK_IDENTIFIER,
	TOK_OPERATOR,
	TOK_CONSTANT,
	TOK_STRING,
	TOK_SEPARATOR,
}

// Code returns the legacy category code of t, used in descriptor output.
func (t TokenType) Code() int {
	return (int(t) + 1) * 10
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_OPERATOR:
		return "TOK_OPERATOR"
	case TOK_CONSTANT:
		return "TOK_CONSTANT"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_SEPARATOR:
		return "TOK_SEPARATOR"
	}
	return "TOK_UNKNOWN"
}

// Name is the human-readable plural used for listing tables.
func (t TokenType) Name() string {
	switch t {
	case TOK_KEYWORD:
		return "keywords"
	case TOK_IDENTIFIER:
		return "identifiers"
	case TOK_OPERATOR:
		return "operators"
	case TOK_CONSTANT:
		return "constants"
	case TOK_STRING:
		return "strings"
	case TOK_SEPARATOR:
		return "separators"
	}
	return "unknown"
}

func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToString())
}

// Token is a classified lexeme. Location is the position of its first
// character.
type Token struct {
	Type     TokenType      `json:"type"`
	Lexeme   string         `json:"lexeme"`
	Location parse.Location `json:"-"`
}
