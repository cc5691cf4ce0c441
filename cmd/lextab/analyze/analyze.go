/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package analyze

import (
	"fmt"
	"io"
	"os"

	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/pipeline"
	"github.com/dburkart/lextab/pkg/repl"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Print the stripped source, tokens and descriptor tables of each file",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		opts := pipeline.Options{StringAware: viper.GetBool("strip.string-aware")}

		analyses := Files(args, opts, viper.GetInt("analyze.workers"))

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("output.format"))
		failed := Report(log, os.Stdout, os.Stderr, writer, analyses, viper.GetBool("output.line-numbers"))

		if failed > 0 {
			return errors.Errorf("%d of %d files failed", failed, len(analyses))
		}
		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("workers", "w", 4, "Number of files analyzed at once")

	// Bind flags to viper
	viper.BindPFlag("analyze.workers", Command.Flags().Lookup("workers"))
}

type Analysis struct {
	Path   string
	Size   int
	Result pipeline.Result
	Err    error
}

// Files reads and analyzes every path, at most workers at a time. The
// returned slice is in the same order as paths.
func Files(paths []string, opts pipeline.Options, workers int) []Analysis {
	mapper := iter.Mapper[string, Analysis]{MaxGoroutines: workers}

	return mapper.Map(paths, func(path *string) Analysis {
		a := Analysis{Path: *path}

		b, err := os.ReadFile(*path)
		if err != nil {
			a.Err = errors.Wrapf(err, "unable to read %s", *path)
			return a
		}

		a.Size = len(b)
		a.Result, a.Err = opts.Run(string(b))
		return a
	})
}

// Report prints every analysis and returns how many of them failed.
func Report(log zerolog.Logger, out, errOut io.Writer, writer repl.OutputWriter, analyses []Analysis, lineNumbers bool) int {
	failed := 0

	for _, a := range analyses {
		if len(analyses) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", a.Path)
		}

		if a.Err != nil {
			failed++

			var lexErr *parse.LexError
			if errors.As(a.Err, &lexErr) {
				fmt.Fprint(errOut, lexErr.FormatError(a.Result.Stripped))
			}
			log.Error().Err(a.Err).Str("file", a.Path).Msg("analysis failed")
			continue
		}

		for _, v := range a.Result.Views(lineNumbers) {
			writer.Write(v)
		}

		log.Info().
			Str("file", a.Path).
			Str("size", humanize.Bytes(uint64(a.Size))).
			Str("tokens", humanize.Comma(int64(len(a.Result.Tokens)))).
			Msg("analyzed")
	}

	return failed
}
