/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/lextab/pkg/pipeline"
	"github.com/dburkart/lextab/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactively build up a source buffer and inspect its analysis",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		session := repl.NewSession(
			os.Stdout,
			viper.GetString("output.format"),
			pipeline.Options{StringAware: viper.GetBool("strip.string-aware")},
		)
		session.LineNumbers = viper.GetBool("output.line-numbers")

		readlinePrompt(log, session)
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeSectionOptions() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for i := range repl.Sections {
		ret = append(ret, readline.PcItem(repl.Sections[i]))
	}
	return ret
}

func readlinePrompt(log zerolog.Logger, session *repl.Session) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem(":help"),
		readline.PcItem(":show", makeSectionOptions()...),
		readline.PcItem(":load", readline.PcItemDynamic(listFiles)),
		readline.PcItem(":clear"),
		readline.PcItem(":exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start the prompt")
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		cmd, err := repl.ParseREPLCommand([]byte(strings.TrimRight(ln.Line, " \t")))
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		err = session.Execute(cmd)
		if err == repl.ErrExit {
			break
		}
		if err != nil {
			log.Error().Err(err).Send()
		}
	}
	rl.Clean()
}

func listFiles(line string) []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return []string{}
	}

	names := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
