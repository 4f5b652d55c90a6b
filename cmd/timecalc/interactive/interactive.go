/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package interactive

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/timecalc/cmd/timecalc/session"
	"github.com/dburkart/timecalc/pkg/repl"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively, one per line",

	RunE: func(cmd *cobra.Command, args []string) error {
		log, ok := viper.Get("logger").(zerolog.Logger)
		if !ok {
			log = zerolog.Nop()
		}

		id := uuid.New()
		log = log.With().Str("session", id.String()).Logger()
		viper.Set("logger", log)

		s, err := session.FromViper(os.Stdout, os.Stderr)
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          viper.GetString("timecalc.prompt"),
			HistoryFile:     viper.GetString("timecalc.history-file"),
			AutoComplete:    completer(),
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",

			HistorySearchFold:   true,
			FuncFilterInputRune: filterInput,
		})
		if err != nil {
			return errors.Wrap(err, "starting line editor")
		}
		defer rl.Close()

		log.Debug().Msg("interactive session started")

		loopErr := Loop(rl, rl.Stdout(), s)
		if err := s.Close(); err != nil && loopErr == nil {
			return err
		}
		return loopErr
	},
}

func init() {
	// Flags for this command
	Command.Flags().String("prompt", "\033[31m>\033[0m ", "Prompt shown before each expression")
	Command.Flags().String("history-file", "", "Keep line history in this file")

	// Bind flags to viper
	viper.BindPFlag("timecalc.prompt", Command.Flags().Lookup("prompt"))
	viper.BindPFlag("timecalc.history-file", Command.Flags().Lookup("history-file"))
}

// LineReader is the part of *readline.Instance the loop needs.
type LineReader interface {
	Line() *readline.Result
}

// Loop reads lines until EOF or exit. Evaluation failures are reported and
// the loop continues; only output errors end it early.
func Loop(r LineReader, w io.Writer, s *session.Session) error {
	for {
		ln := r.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		cmd := repl.ParseREPLCommand([]byte(ln.Line))

		switch cmd.Kind {
		case repl.CommandEmpty:
			continue
		case repl.CommandHelp:
			fmt.Fprint(w, repl.Help)
		case repl.CommandExit:
			return nil
		case repl.CommandOutput:
			if err := s.SetFormat(cmd.Arg); err != nil {
				fmt.Fprintln(w, err)
			}
		case repl.CommandEvaluate:
			err := s.Evaluate(cmd.Arg)
			var failure *session.Failure
			if err != nil && !errors.As(err, &failure) {
				return err
			}
		}
	}
	return nil
}

func completer() *readline.PrefixCompleter {
	formats := []readline.PrefixCompleterInterface{}
	for _, f := range repl.Formats {
		formats = append(formats, readline.PcItem(f))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("output", formats...),
		readline.PcItem("exit"),
	)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
