/*
 * conversion.go, part of ffconv.
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

package units

import "math"

//Conversion factors. Energies are converted to kJ/mol, lengths to nm.
const (
	Kcal2KJ = 4.184
	KJ2Kcal = 1 / 4.184
	A2nm    = 0.1
	Nm2A    = 10.0
	Bohr2A  = 0.52917720859
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
	//The (rounded) value the Tinker tools use for out-of-plane bends.
	TinkerRad2Deg = 57.2957795130
)

// SixthRootOf2 relates the Lennard-Jones minimum to sigma, Rmin=2^(1/6)*sigma.
var SixthRootOf2 = math.Pow(2, 1.0/6.0)

// RminHalf2Sigma returns the sigma, in nm, that corresponds to the given Rmin/2 in A.
func RminHalf2Sigma(rminhalf float64) float64 {
	return A2nm * 2 * rminhalf / SixthRootOf2
}

// Sigma2RminHalf is the inverse of RminHalf2Sigma.
func Sigma2RminHalf(sigma float64) float64 {
	return sigma * SixthRootOf2 / (2 * A2nm)
}

// periodicity coerces a torsion periodicity to the nearest integer. AMBER uses
// negative periodicities to signal that more terms follow, so the sign is dropped.
func periodicity(n float64) float64 {
	return math.Abs(math.Round(n))
}
