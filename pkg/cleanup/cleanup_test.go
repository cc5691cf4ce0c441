/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cleanup

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line comment", "// note\nint y;", "int y;"},
		{"block comment", "/* a\nb */ float z;", " float z;"},
		{"trailing line comment", "int x; // set x\nx = 1;", "int x;\nx = 1;"},
		{"inline block comment", "a = /* one */ 1;", "a = 1;"},
		{"block comment glues", "int/**/x;", "intx;"},
		{"star in block comment", "/** doc **/x", "x"},
		{"division", "a = b / c;", "a = b / c;"},
		{"division at end", "a /", "a /"},
		{"blank lines", "a;\n\n\n\nb;", "a;\nb;"},
		{"indentation", "{\n\t\tx;\n    y;\n}", "{\nx;\ny;\n}"},
		{"space runs", "int    x\t\t=  1;", "int x = 1;"},
		{"leading and trailing blank lines", "\n\n  \nint x;\n\n  \n", "int x;"},
		{"unterminated block comment", "int x; /* never closed\nint y;", "int x;"},
		{"comment marker in string", `s = "http://x /* y */";`, `s = "http://x /* y */";`},
		{"escaped quote in string", `s = "a\"//b"; // c`, `s = "a\"//b";`},
		{"whitespace in string", `"a   b"`, `"a   b"`},
		{"unterminated string ends at newline", "s = \"abc\n// c\nx;", "s = \"abc\nx;"},
		{"crlf", "a;\r\nb;\r\n", "a;\nb;"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Strip(tc.input)
			if got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStripLegacy(t *testing.T) {
	s := Stripper{StringAware: false}

	got := s.Strip(`s = "http://x"; y;`)
	want := `s = "http:`
	if got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"// note\nint y;",
		"/* a\nb */ float z;",
		"  int   x ;  // trailing\n\n\n\t/* x */ y = a / b;\n",
		`s = "a\"//b"; // c` + "\n  t = \"  \";",
		"/ /* c */ /x",
		"a/\n/b",
		"x = \"unterminated\n  // c\ny;",
		"#include <iostream>\n\nint main() {\n\treturn 0; /* done */\n}\n",
	}

	for _, stringAware := range []bool{true, false} {
		s := Stripper{StringAware: stringAware}
		for _, in := range inputs {
			once := s.Strip(in)
			twice := s.Strip(once)
			if once != twice {
				t.Errorf("strip is not idempotent for %q (string-aware %v): %q then %q", in, stringAware, once, twice)
			}
		}
	}
}

func TestNumber(t *testing.T) {
	got := Number("int x;\nx = 1;\n")
	want := "1  int x;\n2  x = 1;\n"
	if got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}

	if Number("") != "" {
		t.Error("wanted empty text to stay empty")
	}
}
