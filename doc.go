/*
 * doc.go, part of ffconv.
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

/*
Package ffconv converts force-field parameters from AMBER frcmod files, LAMMPS
parameter dumps and Tinker/AMOEBA prm files into record fragments for OpenMM
force-field XML files.

This package contains the types shared by the whole module: the dialects and
parameter kinds, the term types, which hold one parameter record either in source
units (as read by the tokenizers in the frcmod, lammps and tinker packages) or in
OpenMM units (as returned by the units package), and the Result of processing one
input line.

The omm package formats converted terms. Each dialect package puts the pieces
together for its own format, so, for instance, converting a LAMMPS file is:

	results, err := lammps.Convert(reader, omm.NewEmitter(ffconv.LAMMPS))

Lines that can't be converted are not errors: they come back as Passthrough or
Diagnostic results. Only an input that ends in the middle of a multi-line record
makes the conversion stop.
*/
package ffconv
