/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package eval

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dburkart/timecalc/cmd/timecalc/session"
)

var Command = &cobra.Command{
	Use:   "eval expression...",
	Short: "Evaluate a single expression",
	Long: `Evaluate joins its arguments with spaces, evaluates the result as a
single expression and prints it.`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := session.FromViper(os.Stdout, os.Stderr)
		if err != nil {
			return err
		}

		evalErr := s.Evaluate(strings.Join(args, " "))
		if err := s.Close(); err != nil && evalErr == nil {
			return err
		}
		return evalErr
	},
}
