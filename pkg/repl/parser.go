/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

const (
	CommandSource = "SOURCE"
	CommandShow   = "SHOW"
	CommandLoad   = "LOAD"
	CommandClear  = "CLEAR"
	CommandHelp   = "HELP"
	CommandExit   = "EXIT"
)

// Sections that can be passed to :show.
var Sections = []string{"all", "stripped", "tokens", "descriptors", "pseudocode", "tables"}

type Command struct {
	Name string
	Arg  string
}

// ParseREPLCommand parses input from the command line. Lines starting with
// ':' are commands; anything else is a line of source.
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Command, error) {
	if len(b) == 0 || b[0] != ':' {
		return Command{Name: CommandSource, Arg: string(b)}, nil
	}

	b = b[1:]
	cmd := b
	arg := []byte{}

	// all commands have a space after them, if not then they are command only
	// like :clear
	ind := bytes.IndexByte(b, ' ')
	if ind != -1 {
		cmd = b[0:ind]
		arg = bytes.TrimSpace(b[ind+1:])
	}

	switch name := strings.ToUpper(string(cmd)); name {
	case CommandShow:
		section := strings.ToLower(string(arg))
		if section == "" {
			section = "all"
		}
		for _, s := range Sections {
			if s == section {
				return Command{Name: CommandShow, Arg: section}, nil
			}
		}
		return Command{}, errors.Errorf("unknown section '%s'", section)
	case CommandLoad:
		if len(arg) == 0 {
			return Command{}, errors.New(":load requires a file path")
		}
		return Command{Name: CommandLoad, Arg: string(arg)}, nil
	case CommandClear, CommandHelp, CommandExit:
		return Command{Name: name}, nil
	}

	return Command{}, errors.Errorf("unknown command ':%s'", cmd)
}
