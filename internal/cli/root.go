/*
 * root.go, part of ffconv.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package cli provides the command-line interface of ff2omm.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/ffconv/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Execute runs the root command with the arguments in os.Args and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the root command with the given arguments and outputs, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	var U *commands.UsageError
	if errors.As(err, &U) {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), U.Error())
		return ExitUsage
	}
	_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return ExitError
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	O := new(commands.Options)
	rootCmd := &cobra.Command{
		Use:   "ff2omm",
		Short: "Convert force-field parameters to OpenMM",
		Long: `ff2omm converts force-field parameters from AMBER frcmod files, LAMMPS
parameter files and Tinker/AMOEBA prm files into OpenMM force-field XML elements.

The converted elements are printed to the standard output, one per line, in the
order of the input. Lines that can't be converted are printed in grey, so they
can be dealt with by hand. Input files can be compressed with gzip or zstd.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	O.AddFlags(rootCmd)
	rootCmd.AddCommand(commands.NewFrcmodCommand(O))
	rootCmd.AddCommand(commands.NewLammpsCommand(O))
	rootCmd.AddCommand(commands.NewTinkerCommand(O))
	return rootCmd
}
