/*
 * config.go, part of ffconv.
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

// Package config reads the configuration file of the ff2omm command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rmera/ffconv/omm"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultSkipPrefix is printed before the Tinker lines that are not converted.
const DefaultSkipPrefix = "skipping line:  "

// Config holds the options of the ff2omm command.
type Config struct {
	//written in the charge attribute of the Atom elements
	ChargePlaceholder string `yaml:"charge_placeholder"`
	//auto, always or never
	Color string `yaml:"color"`
	//print the lines that are not converted
	ShowSkipped bool `yaml:"show_skipped"`
	//prefix for Tinker lines that are not converted
	SkipPrefix string `yaml:"skip_prefix"`
	//print a summary of the conversion to stderr
	Summary bool `yaml:"summary"`
	//if not empty, histograms of the converted constants are written to files named after this one
	Plot string `yaml:"plot"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		ChargePlaceholder: omm.DefaultCharge,
		Color:             ColorAuto,
		ShowSkipped:       true,
		SkipPrefix:        DefaultSkipPrefix,
	}
}

// Load reads the YAML configuration file in path. Options missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse reads a YAML configuration from data.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks cfg for errors.
func Validate(cfg *Config) error {
	if cfg.ChargePlaceholder == "" {
		return errors.New("charge_placeholder: can't be empty")
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: must be %s, %s or %s, not %q", ColorAuto, ColorAlways, ColorNever, cfg.Color)
	}
	return nil
}
