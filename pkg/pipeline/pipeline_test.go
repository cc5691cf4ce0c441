/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/lexer"
)

func TestRun(t *testing.T) {
	testDirectory, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	if err != nil || len(tests) == 0 {
		t.Fatalf("no test inputs found in %s", inputDirectory)
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			inputBytes, err := os.ReadFile(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}

			pieces := strings.SplitN(string(inputBytes), "\n", 2)
			shouldPass := strings.ToUpper(strings.TrimSpace(pieces[0])) == "PASS"
			source := ""
			if len(pieces) > 1 {
				source = pieces[1]
			}

			actual := ""
			result, err := Run(source)
			if shouldPass && err != nil {
				t.Fatal(err)
			}
			if !shouldPass && err == nil {
				t.Fatalf("Expected source to fail: %s", test)
			}

			if shouldPass {
				actual = result.Dump()
			} else {
				actual = err.Error()
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}

func TestRunScenarios(t *testing.T) {
	t.Run("line comment", func(t *testing.T) {
		r, err := Run("// note\nint y;")
		if err != nil {
			t.Fatal(err)
		}
		if r.Stripped != "int y;" {
			t.Errorf("wanted 'int y;', got %q", r.Stripped)
		}
		if len(r.Tokens) != 3 || r.Tokens[0].Type != lexer.TOK_KEYWORD || r.Tokens[1].Lexeme != "y" {
			t.Errorf("unexpected tokens %v", r.Tokens)
		}
	})

	t.Run("block comment", func(t *testing.T) {
		r, err := Run("/* a\nb */ float z;")
		if err != nil {
			t.Fatal(err)
		}
		if r.Stripped != " float z;" {
			t.Errorf("wanted ' float z;', got %q", r.Stripped)
		}
		if r.Table.Pseudocode != "float id0 ;" {
			t.Errorf("wanted 'float id0 ;', got '%s'", r.Table.Pseudocode)
		}
	})

	t.Run("error keeps stripped text", func(t *testing.T) {
		r, err := Run("// lead\n1.2.3")

		var lexErr *parse.LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("wanted *parse.LexError, got %v", err)
		}
		if lexErr.Kind != parse.IncorrectConstant || lexErr.Location.Column != 3 {
			t.Errorf("wanted a constant error at column 3, got %s", lexErr)
		}
		if r.Stripped != "1.2.3" {
			t.Errorf("wanted '1.2.3', got %q", r.Stripped)
		}
		if r.Table != nil || r.Tokens != nil {
			t.Error("wanted no table or tokens alongside an error")
		}
	})

	t.Run("legacy stripping", func(t *testing.T) {
		r, err := Options{}.Run(`s = "a//b";`)
		if err == nil {
			t.Fatalf("wanted the truncated string to fail, got %v", r.Tokens)
		}
		if r.Stripped != `s = "a` {
			t.Errorf("wanted 's = \"a', got %q", r.Stripped)
		}
	})
}

func TestRunConcurrent(t *testing.T) {
	sources := []string{"int a = 1;", "float b = 2.0;", "x <<= 3;", "return \"s\";"}
	want := make([]string, len(sources))
	for i, src := range sources {
		r, err := Run(src)
		if err != nil {
			t.Fatal(err)
		}
		want[i] = r.Dump()
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, src := range sources {
			wg.Add(1)
			go func(i int, src string) {
				defer wg.Done()
				r, err := Run(src)
				if err != nil {
					t.Error(err)
					return
				}
				if r.Dump() != want[i] {
					t.Errorf("concurrent run of %q diverged", src)
				}
			}(i, src)
		}
	}
	wg.Wait()
}

func TestViews(t *testing.T) {
	r, err := Run("int x;\nx = 1;")
	if err != nil {
		t.Fatal(err)
	}

	views := r.Views(true)
	if len(views) != 4+len(lexer.TokenTypes) {
		t.Fatalf("wanted %d views, got %d", 4+len(lexer.TokenTypes), len(views))
	}

	stripped := views[0]
	if len(stripped.Rows) != 2 || stripped.Rows[1][0] != "2" || stripped.Rows[1][1] != "x = 1;" {
		t.Errorf("unexpected stripped rows %v", stripped.Rows)
	}

	tokens := r.TokensView()
	if tokens.Rows[3][3] != "x" || tokens.Rows[3][4] != "1:0" {
		t.Errorf("unexpected token row %v", tokens.Rows[3])
	}
}
