/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
)

type CommandKind int

const (
	CommandEvaluate CommandKind = iota
	CommandEmpty
	CommandHelp
	CommandExit
	CommandOutput
)

// Command is a single line of interactive input.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseREPLCommand parses input from the command line. Anything that is
// not a known command is an expression to evaluate.
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) Command {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return Command{Kind: CommandEmpty}
	}

	// commands with an argument have a space after them, if not then they
	// are command only like EXIT
	cmd := b
	arg := []byte{}
	if ind := bytes.IndexByte(b, ' '); ind != -1 {
		cmd = b[0:ind]
		arg = bytes.TrimSpace(b[ind+1:])
	}

	switch strings.ToUpper(string(cmd)) {
	case "HELP", "?":
		if len(arg) == 0 {
			return Command{Kind: CommandHelp}
		}
	case "EXIT", "QUIT":
		if len(arg) == 0 {
			return Command{Kind: CommandExit}
		}
	case "OUTPUT":
		return Command{Kind: CommandOutput, Arg: strings.ToLower(string(arg))}
	}

	return Command{Kind: CommandEvaluate, Arg: string(b)}
}

// Help is printed in response to the help command.
const Help = `Enter an expression to evaluate it, for example:

    1:23:45 + 5:43:21
    0:30:00 * 1.5
    4:44:44 / 5:55:55

Durations are H:MM:SS, MM:SS or SSs, each with optional fractional seconds.
Numbers are plain decimals, optionally suffixed with n (1.5n).
Operators: + - * / and parentheses. A leading - negates.

Commands:
    help            show this message
    output FORMAT   switch output format (plain, text, csv, json)
    exit            leave the session
`
