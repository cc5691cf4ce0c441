/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/pipeline"
)

func TestParseREPLCommand(t *testing.T) {
	t.Run("source", func(t *testing.T) {
		cmd, err := ParseREPLCommand([]byte("int x = 5;"))
		if err != nil {
			t.Fail()
		}
		if cmd.Name != CommandSource || cmd.Arg != "int x = 5;" {
			t.Errorf("wanted source line, got %+v", cmd)
		}
	})
	t.Run("show default", func(t *testing.T) {
		cmd, err := ParseREPLCommand([]byte(":show"))
		if err != nil {
			t.Fail()
		}
		if cmd.Name != CommandShow || cmd.Arg != "all" {
			t.Errorf("wanted :show all, got %+v", cmd)
		}
	})
	t.Run("show section", func(t *testing.T) {
		cmd, err := ParseREPLCommand([]byte(":SHOW Tokens"))
		if err != nil {
			t.Fail()
		}
		if cmd.Name != CommandShow || cmd.Arg != "tokens" {
			t.Errorf("wanted :show tokens, got %+v", cmd)
		}
	})
	t.Run("show unknown section", func(t *testing.T) {
		_, err := ParseREPLCommand([]byte(":show bogus"))
		if err == nil {
			t.Fail()
		}
	})
	t.Run("load", func(t *testing.T) {
		cmd, err := ParseREPLCommand([]byte(":load  main.cpp "))
		if err != nil {
			t.Fail()
		}
		if cmd.Name != CommandLoad || cmd.Arg != "main.cpp" {
			t.Errorf("wanted :load main.cpp, got %+v", cmd)
		}
	})
	t.Run("load missing path", func(t *testing.T) {
		_, err := ParseREPLCommand([]byte(":load"))
		if err == nil {
			t.Fail()
		}
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := ParseREPLCommand([]byte(":frobnicate"))
		if err == nil {
			t.Fail()
		}
	})
	t.Run("exit", func(t *testing.T) {
		cmd, err := ParseREPLCommand([]byte(":exit"))
		if err != nil || cmd.Name != CommandExit {
			t.Fail()
		}
	})
}

func TestSession(t *testing.T) {
	out := new(bytes.Buffer)
	s := NewSession(out, "csv", pipeline.DefaultOptions())

	for _, line := range []string{"int x = 5; // five", ":show pseudocode"} {
		cmd, err := ParseREPLCommand([]byte(line))
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Execute(cmd); err != nil {
			t.Fatal(err)
		}
	}

	want := "# pseudocode\npseudocode\nint id0 = const0 ;\n"
	if out.String() != want {
		t.Errorf("wanted %q, got %q", want, out.String())
	}
}

func TestSessionLexError(t *testing.T) {
	out := new(bytes.Buffer)
	s := NewSession(out, "text", pipeline.DefaultOptions())

	s.Execute(Command{Name: CommandSource, Arg: "x = 1.2.3;"})
	err := s.Execute(Command{Name: CommandShow, Arg: "tokens"})

	var lexErr *parse.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wanted *parse.LexError, got %v", err)
	}
	if !strings.Contains(out.String(), "x = 1.2.3;\n       ^") {
		t.Errorf("wanted a caret under the second dot, got %q", out.String())
	}
}

func TestSessionLoadAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	if err := os.WriteFile(path, []byte("int a;\nint b;\n"), 0666); err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	s := NewSession(out, "json", pipeline.DefaultOptions())

	if err := s.Execute(Command{Name: CommandLoad, Arg: path}); err != nil {
		t.Fatal(err)
	}
	if s.Source() != "int a;\nint b;" {
		t.Errorf("wanted the file contents, got %q", s.Source())
	}

	s.Execute(Command{Name: CommandClear})
	if s.Source() != "" {
		t.Errorf("wanted an empty buffer, got %q", s.Source())
	}

	if err := s.Execute(Command{Name: CommandLoad, Arg: path + ".missing"}); err == nil {
		t.Error("wanted an error loading a missing file")
	}

	if err := s.Execute(Command{Name: CommandExit}); err != ErrExit {
		t.Errorf("wanted ErrExit, got %v", err)
	}
}

func TestCSVWriter(t *testing.T) {
	out := new(bytes.Buffer)
	w := NewOutputWriter(out, "csv")

	w.Write(pipeline.View{Name: "identifiers", Header: []string{"index", "lexeme"}, Rows: [][]string{{"0", "x"}}})

	want := "# identifiers\nindex,lexeme\n0,x\n"
	if out.String() != want {
		t.Errorf("wanted %q, got %q", want, out.String())
	}
}

func TestJSONWriter(t *testing.T) {
	out := new(bytes.Buffer)
	w := NewOutputWriter(out, "json")

	w.Write(pipeline.View{Name: "constants", Header: []string{"index", "lexeme"}, Rows: [][]string{{"0", "5"}}})

	want := `{"title":"constants","headers":["index","lexeme"],"values":[["0","5"]]}` + "\n"
	if out.String() != want {
		t.Errorf("wanted %q, got %q", want, out.String())
	}
}
