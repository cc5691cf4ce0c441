/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dburkart/lextab/pkg/cleanup"
	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/lexer"
	"github.com/dburkart/lextab/pkg/pipeline"
	pkgerrors "github.com/pkg/errors"
)

// ErrExit is returned by Execute when the session should end.
var ErrExit = errors.New("exit")

// Session accumulates source lines and renders the analysis of the buffer
// on demand.
type Session struct {
	Options     pipeline.Options
	LineNumbers bool

	out    io.Writer
	writer OutputWriter
	source []string
}

func NewSession(out io.Writer, format string, opts pipeline.Options) *Session {
	return &Session{
		Options: opts,
		out:     out,
		writer:  NewOutputWriter(out, format),
	}
}

// Source returns the buffered program text.
func (s *Session) Source() string {
	return strings.Join(s.source, "\n")
}

func (s *Session) Execute(cmd Command) error {
	switch cmd.Name {
	case CommandSource:
		s.source = append(s.source, cmd.Arg)
	case CommandClear:
		s.source = nil
	case CommandLoad:
		b, err := os.ReadFile(cmd.Arg)
		if err != nil {
			return pkgerrors.Wrapf(err, "unable to load %s", cmd.Arg)
		}
		s.source = strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		fmt.Fprintf(s.out, "loaded %d lines\n", len(s.source))
	case CommandShow:
		return s.show(cmd.Arg)
	case CommandHelp:
		fmt.Fprintln(s.out, "usage:")
		fmt.Fprintln(s.out, "    <source line>        append a line to the buffer")
		fmt.Fprintf(s.out, "    :show [section]      one of %s\n", strings.Join(Sections, ", "))
		fmt.Fprintln(s.out, "    :load <path>         replace the buffer with a file")
		fmt.Fprintln(s.out, "    :clear               empty the buffer")
		fmt.Fprintln(s.out, "    :exit")
	case CommandExit:
		return ErrExit
	}
	return nil
}

func (s *Session) show(section string) error {
	source := s.Source()
	r, err := s.Options.Run(source)

	if section == "stripped" {
		if s.LineNumbers {
			fmt.Fprint(s.out, cleanup.Number(r.Stripped))
			return nil
		}
		s.writer.Write(r.StrippedView(false))
		return nil
	}

	if err != nil {
		var lexErr *parse.LexError
		if errors.As(err, &lexErr) {
			fmt.Fprint(s.out, lexErr.FormatError(r.Stripped))
		}
		return err
	}

	switch section {
	case "tokens":
		s.writer.Write(r.TokensView())
	case "descriptors":
		s.writer.Write(r.DescriptorsView())
	case "pseudocode":
		s.writer.Write(r.PseudocodeView())
	case "tables":
		for _, typ := range lexer.TokenTypes {
			s.writer.Write(r.ListingView(typ))
		}
	default:
		for _, v := range r.Views(s.LineNumbers) {
			s.writer.Write(v)
		}
	}
	return nil
}
