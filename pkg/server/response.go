/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/pipeline"
)

type StripResponse struct {
	Stripped string `json:"stripped"`
}

type ErrResponse struct {
	Code     int    `json:"code"`
	Err      string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Line     uint   `json:"line"`
	Column   uint   `json:"column"`
	Char     string `json:"char,omitempty"`
	Stripped string `json:"stripped,omitempty"`
}

func NewErrResponse(code int, err error) ErrResponse {
	return ErrResponse{Code: code, Err: err.Error()}
}

// LexErrResponse reports where tokenizing stopped, along with the stripped
// text the location refers to.
func LexErrResponse(code int, err *parse.LexError, r pipeline.Result) ErrResponse {
	resp := NewErrResponse(code, err)
	resp.Kind = err.Kind.ToString()
	resp.Line = err.Location.Line
	resp.Column = err.Location.Column
	if err.Location.Char != 0 {
		resp.Char = string(err.Location.Char)
	}
	resp.Stripped = r.Stripped
	return resp
}
