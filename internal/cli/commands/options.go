/*
 * options.go, part of ffconv.
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

package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rmera/ffconv/internal/config"
)

// Options are the flags shared by all the conversion commands.
type Options struct {
	ConfigPath  string
	NoColor     bool
	HideSkipped bool
	Summary     bool
	Charge      string
	Plot        string
	Verbose     bool
}

// AddFlags registers the shared flags in cmd, as persistent flags.
func (O *Options) AddFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&O.ConfigPath, "config", "", "YAML configuration file")
	f.BoolVar(&O.NoColor, "no-color", false, "don't colour the lines that are not converted")
	f.BoolVar(&O.HideSkipped, "hide-skipped", false, "don't print the lines that are not converted")
	f.BoolVar(&O.Summary, "summary", false, "print a summary of the conversion to stderr")
	f.StringVar(&O.Charge, "charge", "", "placeholder for the charge attribute of Atom elements")
	f.StringVar(&O.Plot, "plot", "", "write histograms of the converted force constants, one per kind, named after this file")
	f.BoolVarP(&O.Verbose, "verbose", "v", false, "verbose logging")
}

// Config returns the configuration for a run: the configuration file, if given,
// or the defaults, with the flags set in cmd applied on top.
func (O *Options) Config(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if O.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(O.ConfigPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("no-color") && O.NoColor {
		cfg.Color = config.ColorNever
	}
	if flags.Changed("hide-skipped") {
		cfg.ShowSkipped = !O.HideSkipped
	}
	if flags.Changed("summary") {
		cfg.Summary = O.Summary
	}
	if flags.Changed("charge") {
		cfg.ChargePlaceholder = O.Charge
	}
	if flags.Changed("plot") {
		cfg.Plot = O.Plot
	}
	return cfg, config.Validate(cfg)
}

// Logger returns the logger for a run, writing to w. Log lines are
// coloured following cfg, like the converted output.
func (O *Options) Logger(w io.Writer, cfg *config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if O.Verbose {
		level = zerolog.DebugLevel
	}
	var nocolor bool
	switch cfg.Color {
	case config.ColorNever:
		nocolor = true
	case config.ColorAuto:
		nocolor = color.NoColor
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: nocolor}).Level(level).With().Timestamp().Logger()
}
