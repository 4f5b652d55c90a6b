/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timecalc

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/timecalc/cmd/timecalc/eval"
	"github.com/dburkart/timecalc/cmd/timecalc/interactive"
	"github.com/dburkart/timecalc/cmd/timecalc/session"
)

const (
	ExitEvaluationFailure = 2
	ExitFailure           = 1
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "timecalc [expression...]",
		Short: "Timecalc is a calculator for durations",
		Long: `Timecalc evaluates arithmetic over durations and decimal numbers.

With arguments, they are joined with spaces and evaluated once. Without
arguments an interactive session is started. Use -- before an expression
that starts with a minus sign.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return eval.Command.RunE(cmd, args)
			}
			return interactive.Command.RunE(cmd, args)
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
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the timecalc config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "plain", "Output format of results [plain, text, csv, json]")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write evaluation metrics to this file on exit")

	// Bind viper config to the root flags
	viper.BindPFlag("timecalc.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("timecalc.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("timecalc.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("timecalc.metrics-file", rootCmd.PersistentFlags().Lookup("metrics-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("timecalc version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	eval.Command.Version = rootCmd.Version
	interactive.Command.Version = rootCmd.Version
	rootCmd.AddCommand(eval.Command)
	rootCmd.AddCommand(interactive.Command)
}

// Execute runs the command line and exits with 2 if an expression failed
// to evaluate, or 1 on any other error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var failure *session.Failure
		if errors.As(err, &failure) {
			os.Exit(ExitEvaluationFailure)
		}

		log, ok := viper.Get("logger").(zerolog.Logger)
		if !ok {
			log = zerolog.New(os.Stderr)
		}
		log.Error().Err(err).Msg("root command failed")
		os.Exit(ExitFailure)
	}
}
