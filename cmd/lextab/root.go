/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lextab

import (
	"fmt"
	"os"

	"github.com/dburkart/lextab/cmd/lextab/analyze"
	"github.com/dburkart/lextab/cmd/lextab/bench"
	"github.com/dburkart/lextab/cmd/lextab/repl"
	"github.com/dburkart/lextab/cmd/lextab/serve"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "lextab",
		Short: "lextab strips, tokenizes and tabulates C/C++ source",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the lextab config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format [csv, json, text]")
	rootCmd.PersistentFlags().Bool("line-numbers", false, "Number the lines of stripped source")
	rootCmd.PersistentFlags().Bool("legacy-strip", false, "Strip comment markers inside string literals too")

	// Bind viper config to the root flags
	viper.BindPFlag("lextab.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("lextab.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("output.line-numbers", rootCmd.PersistentFlags().Lookup("line-numbers"))
	viper.BindPFlag("strip.legacy", rootCmd.PersistentFlags().Lookup("legacy-strip"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("lextab version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	analyze.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	serve.Command.Version = rootCmd.Version
	bench.Command.Version = rootCmd.Version
	rootCmd.AddCommand(analyze.Command)
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(serve.Command)
	rootCmd.AddCommand(bench.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
