/*
 * transform.go, part of ffconv.
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

import (
	"fmt"
	"slices"

	"github.com/rmera/ffconv"
)

//The functions in this file take a term in the units of
//the given dialect and return a new term in OpenMM units.
//They don't modify the term given.

// Bond converts a bond. AMBER and LAMMPS use k(r-r0)^2, while OpenMM
// uses 1/2k(r-r0)^2, so their constants are doubled. Tinker constants are not.
func Bond(d ffconv.Dialect, b ffconv.BondTerm) ffconv.BondTerm {
	ret := b
	if d == ffconv.Tinker {
		ret.K = b.K * Kcal2KJ / (A2nm * A2nm)
	} else {
		ret.K = 2 * b.K * Kcal2KJ / (A2nm * A2nm)
	}
	ret.Length = b.Length * A2nm
	return ret
}

// Angle converts an angle. For AMBER and LAMMPS the constant is doubled (see Bond) and
// the angles go to radians. The Tinker constant goes to kJ/mol/deg^2 and the angles
// are kept in degrees.
func Angle(d ffconv.Dialect, a ffconv.AngleTerm) ffconv.AngleTerm {
	ret := a
	ret.Theta = slices.Clone(a.Theta)
	ret.ThetaText = slices.Clone(a.ThetaText)
	if d == ffconv.Tinker {
		ret.K = a.K * Kcal2KJ / (Rad2Deg * Rad2Deg)
		return ret
	}
	ret.K = 2 * a.K * Kcal2KJ
	for i, v := range a.Theta {
		ret.Theta[i] = v * Deg2Rad
	}
	return ret
}

// Torsion converts a proper torsion. AMBER constants are divided by the IDIVF factor,
// Tinker ones are halved. Phases go to radians.
func Torsion(d ffconv.Dialect, t ffconv.TorsionTerm) ffconv.TorsionTerm {
	ret := t
	ret.Divider = 1
	ret.Terms = make([]ffconv.Fourier, len(t.Terms))
	for i, v := range t.Terms {
		var k float64
		switch d {
		case ffconv.FRCMOD:
			k = (v.K / t.Divider) * Kcal2KJ
		case ffconv.Tinker:
			k = v.K * (Kcal2KJ / 2)
		default:
			k = v.K * Kcal2KJ
		}
		ret.Terms[i] = ffconv.Fourier{K: k, Phase: v.Phase * Deg2Rad, Periodicity: periodicity(v.Periodicity)}
	}
	return ret
}

// Improper converts an improper torsion and puts its atoms in OpenMM order.
// The source gives the out-of-plane atom in the third position, OpenMM wants it first.
func Improper(i ffconv.ImproperTerm) ffconv.ImproperTerm {
	ret := i
	ret.IDs = [4]string{i.IDs[2], i.IDs[0], i.IDs[1], i.IDs[3]}
	ret.K = i.K * Kcal2KJ
	ret.Phase = i.Phase * Deg2Rad
	ret.Periodicity = periodicity(i.Periodicity)
	return ret
}

// Nonbonded converts Lennard-Jones parameters. FRCMOD terms give Rmin/2
// from which sigma is obtained.
func Nonbonded(d ffconv.Dialect, n ffconv.NonbondedTerm) ffconv.NonbondedTerm {
	ret := n
	if d == ffconv.FRCMOD {
		ret.Sigma = RminHalf2Sigma(n.RminHalf)
		ret.RminHalf = n.RminHalf * A2nm
	} else {
		ret.Sigma = n.Sigma * A2nm
	}
	ret.Epsilon = n.Epsilon * Kcal2KJ
	return ret
}

// stretch-bend and out-of-plane constants go from 1/rad to 1/deg.
var strbndFactor = Kcal2KJ * Nm2A / Rad2Deg
var opbendFactor = Kcal2KJ / (TinkerRad2Deg * TinkerRad2Deg)

// StretchBend converts both constants from kcal/(mol A rad) to kJ/(mol nm deg).
func StretchBend(s ffconv.StretchBendTerm) ffconv.StretchBendTerm {
	ret := s
	ret.K1 = s.K1 * strbndFactor
	ret.K2 = s.K2 * strbndFactor
	return ret
}

// OutOfPlane converts the constant from kcal/(mol rad^2) to kJ/(mol deg^2)
func OutOfPlane(o ffconv.OutOfPlaneTerm) ffconv.OutOfPlaneTerm {
	ret := o
	ret.K = o.K * opbendFactor
	return ret
}

// PiTorsionUnit is the energy unit multiplier for pi-torsions.
const PiTorsionUnit = 1.0

func PiTorsion(p ffconv.PiTorsionTerm) ffconv.PiTorsionTerm {
	ret := p
	ret.K = p.K * Kcal2KJ * PiTorsionUnit
	return ret
}

// Multipole converts dipoles from e*bohr to e*nm and quadrupoles from e*bohr^2 to
// e*nm^2/3 (OpenMM uses the traced form). The monopole is not changed.
func Multipole(m ffconv.MultipoleTerm) ffconv.MultipoleTerm {
	ret := m
	for i, v := range m.Dipole {
		ret.Dipole[i] = v * Bohr2A * A2nm
	}
	for i, v := range m.Quadrupole {
		ret.Quadrupole[i] = v * A2nm * A2nm * Bohr2A * Bohr2A / 3.0
	}
	return ret
}

// Polarize converts the polarizability from A^3 to nm^3.
func Polarize(p ffconv.PolarizeTerm) ffconv.PolarizeTerm {
	ret := p
	ret.Groups = slices.Clone(p.Groups)
	ret.Alpha = p.Alpha * A2nm * A2nm * A2nm
	return ret
}

// Convert applies the conversion that corresponds to the kind of t, as read from the
// dialect d. It returns an error for kinds the dialect doesn't have.
func Convert(d ffconv.Dialect, t ffconv.Term) (ffconv.Term, error) {
	switch T := t.(type) {
	case ffconv.BondTerm:
		return Bond(d, T), nil
	case ffconv.AngleTerm:
		return Angle(d, T), nil
	case ffconv.TorsionTerm:
		return Torsion(d, T), nil
	case ffconv.NonbondedTerm:
		return Nonbonded(d, T), nil
	case ffconv.ImproperTerm:
		if d == ffconv.FRCMOD {
			return Improper(T), nil
		}
	case ffconv.StretchBendTerm:
		if d == ffconv.Tinker {
			return StretchBend(T), nil
		}
	case ffconv.OutOfPlaneTerm:
		if d == ffconv.Tinker {
			return OutOfPlane(T), nil
		}
	case ffconv.PiTorsionTerm:
		if d == ffconv.Tinker {
			return PiTorsion(T), nil
		}
	case ffconv.MultipoleTerm:
		if d == ffconv.Tinker {
			return Multipole(T), nil
		}
	case ffconv.PolarizeTerm:
		if d == ffconv.Tinker {
			return Polarize(T), nil
		}
	}
	return nil, ffconv.NewError(ffconv.ErrUnsupported, fmt.Sprintf("no %s conversion for %s", t.Kind(), d), "", "units.Convert")
}
