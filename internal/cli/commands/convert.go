/*
 * convert.go, part of ffconv.
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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/ffio"
	"github.com/rmera/ffconv/frcmod"
	"github.com/rmera/ffconv/lammps"
	"github.com/rmera/ffconv/omm"
	"github.com/rmera/ffconv/report"
	"github.com/rmera/ffconv/tinker"
)

// UsageError is returned when a command is called with the wrong arguments.
type UsageError struct {
	Message string
	Usage   string
}

func (U *UsageError) Error() string {
	return U.Message + "\nUSAGE: " + U.Usage
}

// oneFile accepts exactly one argument, the parameter file.
func oneFile(missing string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &UsageError{Message: missing, Usage: cmd.UseLine()}
		}
		return nil
	}
}

// NewFrcmodCommand creates the frcmod command.
func NewFrcmodCommand(O *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "frcmod <lig.frcmod>",
		Short: "Convert an AMBER frcmod file",
		Long: `Convert the BOND, ANGLE, DIHE, IMPROPER and NONBON blocks of an AMBER
frcmod file to OpenMM force-field elements. Each block is printed in that order,
followed by an empty line. Lines outside those blocks are printed in grey.`,
		Args: oneFile("No FRCMOD file specified!"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], ffconv.FRCMOD, O)
		},
	}
}

// NewLammpsCommand creates the lammps command.
func NewLammpsCommand(O *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "lammps <lig.param>",
		Short: "Convert a LAMMPS parameter file",
		Long: `Convert the bond_coeff, angle_coeff, dihedral_coeff and pair_coeff lines of
a LAMMPS parameter file to OpenMM force-field elements. Pairs of different atom
types are printed with their converted values for manual inspection. Buckingham
pairs of the same type give an Atom element with zero sigma and epsilon.`,
		Args: oneFile("No LAMMPS param file specified!"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], ffconv.LAMMPS, O)
		},
	}
}

// NewTinkerCommand creates the tinker command.
func NewTinkerCommand(O *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tinker <tinker-parameter-file.prm>",
		Short: "Convert a Tinker/AMOEBA parameter file",
		Long: `Convert the bond, angle, strbnd, torsion, vdw, opbend, pitors, multipole and
polarize records of a Tinker parameter file to OpenMM AMOEBA force-field elements.
Multipoles are only supported in the z-then-x and z-then-x-then-y frames.`,
		Args: oneFile("No AMOEBA Force Field file specified!"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], ffconv.Tinker, O)
		},
	}
}

func run(cmd *cobra.Command, path string, d ffconv.Dialect, O *Options) error {
	cfg, err := O.Config(cmd)
	if err != nil {
		return err
	}
	log := O.Logger(cmd.ErrOrStderr(), cfg)
	f, comp, err := ffio.Open(path)
	if err != nil {
		return fmt.Errorf("opening parameter file: %w", err)
	}
	defer f.Close()
	log.Debug().Str("file", path).Str("compression", string(comp)).Str("dialect", d.String()).Msg("opened parameter file")

	E := omm.NewEmitter(d)
	E.ChargePlaceholder = cfg.ChargePlaceholder
	R := NewRenderer(cmd.OutOrStdout(), cfg, d)
	results, err := convert(f, d, E, R)
	if cfg.Summary {
		if err2 := report.Summarize(results).Write(cmd.ErrOrStderr()); err2 != nil {
			log.Warn().Err(err2).Msg("writing summary")
		}
	}
	if cfg.Plot != "" {
		names, err2 := report.PlotAll(results, cfg.Plot)
		if err2 != nil {
			log.Warn().Err(err2).Msg("plotting force constants")
		}
		for _, v := range names {
			log.Info().Str("file", v).Msg("wrote histogram")
		}
	}
	if err != nil {
		log.Error().Err(err).Str("file", path).Int("records", len(results)).Msg("conversion stopped")
		return err
	}
	log.Debug().Int("records", len(results)).Msg("conversion finished")
	return nil
}

// convert converts and renders the file in r. The results are rendered
// even if the conversion stops early.
func convert(r io.Reader, d ffconv.Dialect, E *omm.Emitter, R *Renderer) ([]ffconv.Result, error) {
	var results []ffconv.Result
	var err error
	switch d {
	case ffconv.FRCMOD:
		B, err := frcmod.Extract(r)
		if err != nil {
			return nil, err
		}
		C := frcmod.ConvertBlocks(B, E)
		R.RenderAll(C.Rest)
		for _, v := range C.Sections {
			R.RenderAll(v)
			R.Break()
		}
		return C.All(), nil
	case ffconv.LAMMPS:
		results, err = lammps.Convert(r, E)
	default:
		results, err = tinker.Convert(r, E)
	}
	R.RenderAll(results)
	return results, err
}
