/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bench

import (
	"os"
	"time"

	"github.com/dburkart/lextab/pkg/cleanup"
	"github.com/dburkart/lextab/pkg/descriptor"
	"github.com/dburkart/lextab/pkg/lexer"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "bench FILE",
	Short: "Time each pipeline stage over a file",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		b, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", args[0])
		}
		source := string(b)
		count := viper.GetInt("bench.count")
		stripper := cleanup.Stripper{StringAware: viper.GetBool("strip.string-aware")}

		log.Info().Str("file", args[0]).Str("size", humanize.Bytes(uint64(len(b)))).Int("count", count).Send()

		var stripped string
		timeIt(log, "strip", count, func() {
			stripped = stripper.Strip(source)
		})

		var tokens []lexer.Token
		timeIt(log, "tokenize", count, func() {
			tokens, err = lexer.Tokenize(stripped)
		})
		if err != nil {
			return err
		}

		timeIt(log, "build", count, func() {
			descriptor.Build(tokens)
		})

		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().Int("count", 1000, "Number of runs per stage")

	// Bind flags to viper
	viper.BindPFlag("bench.count", Command.Flags().Lookup("count"))
}

func timeIt(log zerolog.Logger, name string, count int, f func()) {
	t := time.Now()
	for i := 0; i < count; i++ {
		f()
	}
	d := time.Since(t)

	per := time.Duration(0)
	if count > 0 {
		per = d / time.Duration(count)
	}
	log.Info().Str("dur", d.String()).Str("per-run", per.String()).Str("name", name).Send()
}
