/*
 * terms.go, part of ffconv.
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

package ffconv

import (
	"fmt"
	"slices"
)

// Dialect is the source format a parameter record was read from.
type Dialect int

const (
	FRCMOD Dialect = iota
	LAMMPS
	Tinker
)

func (D Dialect) String() string {
	switch D {
	case FRCMOD:
		return "frcmod"
	case LAMMPS:
		return "lammps"
	case Tinker:
		return "tinker"
	}
	return fmt.Sprintf("Dialect(%d)", int(D))
}

// Kind is the parameter kind of a record.
type Kind int

const (
	Bond Kind = iota
	Angle
	Torsion
	Improper
	Nonbonded
	StretchBend
	OutOfPlaneBend
	PiTorsion
	Multipole
	Polarizability
	Unknown Kind = -1
)

var kindNames = map[Kind]string{
	Bond:           "bond",
	Angle:          "angle",
	Torsion:        "torsion",
	Improper:       "improper",
	Nonbonded:      "nonbonded",
	StretchBend:    "stretch-bend",
	OutOfPlaneBend: "out-of-plane-bend",
	PiTorsion:      "pi-torsion",
	Multipole:      "multipole",
	Polarizability: "polarizability",
}

func (K Kind) String() string {
	if n, ok := kindNames[K]; ok {
		return n
	}
	return "unknown"
}

// Kinds returns all the parameter kinds, in declaration order.
func Kinds() []Kind {
	return []Kind{Bond, Angle, Torsion, Improper, Nonbonded, StretchBend, OutOfPlaneBend, PiTorsion, Multipole, Polarizability}
}

// Term is implemented by every parameter record. The same types are used for
// records in source units (as produced by the tokenizers) and for records
// in target units (as produced by the units package).
type Term interface {
	Kind() Kind
	//Constants returns the force constants of the term, the first one being the "main" one.
	//Terms without force constants return the value that better characterizes them.
	Constants() []float64
}

// BondTerm is a harmonic bond.
type BondTerm struct {
	IDs    [2]string
	K      float64
	Length float64
}

func (B BondTerm) Kind() Kind           { return Bond }
func (B BondTerm) Constants() []float64 { return []float64{B.K} }

// AngleTerm is a harmonic angle with 1 to 3 equilibrium values (Tinker allows more than one).
// ThetaText keeps the values as written in the source, for formats that pass them through verbatim.
type AngleTerm struct {
	IDs       [3]string
	K         float64
	Theta     []float64
	ThetaText []string
}

// NewAngle returns an angle term, or an error if the number of equilibrium
// values is not between 1 and 3, or if thetatext doesn't match theta.
func NewAngle(ids [3]string, k float64, theta []float64, thetatext []string) (AngleTerm, error) {
	if len(theta) < 1 || len(theta) > 3 {
		return AngleTerm{}, NewError(ErrMalformed, fmt.Sprintf("angle with %d values, expected 1 to 3", len(theta)), "", "NewAngle")
	}
	if thetatext != nil && len(thetatext) != len(theta) {
		return AngleTerm{}, NewError(ErrMalformed, fmt.Sprintf("angle with %d values but %d verbatim values", len(theta), len(thetatext)), "", "NewAngle")
	}
	return AngleTerm{IDs: ids, K: k, Theta: slices.Clone(theta), ThetaText: slices.Clone(thetatext)}, nil
}

func (A AngleTerm) Kind() Kind           { return Angle }
func (A AngleTerm) Constants() []float64 { return []float64{A.K} }

// Fourier is one periodic term of a torsion.
type Fourier struct {
	K           float64
	Phase       float64
	Periodicity float64
}

// TorsionTerm is a proper periodic torsion with 1 to 3 Fourier terms.
// Divider is the AMBER IDIVF factor, 1 for the other dialects.
type TorsionTerm struct {
	IDs     [4]string
	Divider float64
	Terms   []Fourier
}

// NewTorsion returns a torsion term, or an error if there are no terms, more than 3,
// or if the divider is zero.
func NewTorsion(ids [4]string, divider float64, terms []Fourier) (TorsionTerm, error) {
	if len(terms) < 1 || len(terms) > 3 {
		return TorsionTerm{}, NewError(ErrMalformed, fmt.Sprintf("torsion with %d terms, expected 1 to 3", len(terms)), "", "NewTorsion")
	}
	if divider == 0 {
		return TorsionTerm{}, NewError(ErrMalformed, "torsion with a zero divide-by factor", "", "NewTorsion")
	}
	return TorsionTerm{IDs: ids, Divider: divider, Terms: slices.Clone(terms)}, nil
}

func (T TorsionTerm) Kind() Kind { return Torsion }
func (T TorsionTerm) Constants() []float64 {
	r := make([]float64, 0, len(T.Terms))
	for _, v := range T.Terms {
		r = append(r, v.K)
	}
	return r
}

// ImproperTerm is an improper periodic torsion. The IDs are in the order of whoever
// produced the term: source order for tokenized terms, OpenMM order (the
// out-of-plane atom first) for converted ones.
type ImproperTerm struct {
	IDs [4]string
	Fourier
}

func (I ImproperTerm) Kind() Kind           { return Improper }
func (I ImproperTerm) Constants() []float64 { return []float64{I.K} }

// NonbondedTerm holds Lennard-Jones parameters for one atom type or class.
// RminHalf is only set for FRCMOD records, which give Rmin/2 instead of sigma.
// ReductionText is the Tinker vdW reduction factor, as written.
type NonbondedTerm struct {
	Type          string
	Sigma         float64
	RminHalf      float64
	Epsilon       float64
	ReductionText string
}

func (N NonbondedTerm) Kind() Kind           { return Nonbonded }
func (N NonbondedTerm) Constants() []float64 { return []float64{N.Epsilon} }

// StretchBendTerm is the AMOEBA stretch-bend coupling.
type StretchBendTerm struct {
	IDs [3]string
	K1  float64
	K2  float64
}

func (S StretchBendTerm) Kind() Kind           { return StretchBend }
func (S StretchBendTerm) Constants() []float64 { return []float64{S.K1, S.K2} }

// OutOfPlaneTerm is the AMOEBA out-of-plane bend.
type OutOfPlaneTerm struct {
	IDs [4]string
	K   float64
}

func (O OutOfPlaneTerm) Kind() Kind           { return OutOfPlaneBend }
func (O OutOfPlaneTerm) Constants() []float64 { return []float64{O.K} }

// PiTorsionTerm is the AMOEBA pi-torsion.
type PiTorsionTerm struct {
	IDs [2]string
	K   float64
}

func (P PiTorsionTerm) Kind() Kind           { return PiTorsion }
func (P PiTorsionTerm) Constants() []float64 { return []float64{P.K} }

// Frame is the local frame convention of a multipole.
type Frame int

const (
	ZThenX Frame = iota
	ZThenXThenY
)

func (F Frame) String() string {
	if F == ZThenXThenY {
		return "z-then-x-then-y"
	}
	return "z-then-x"
}

// MultipoleTerm holds the permanent multipoles of one atom type.
// Quadrupole is the lower triangle, in the order q11 q21 q22 q31 q32 q33.
// KY is empty for the z-then-x frame.
type MultipoleTerm struct {
	Type       string
	Frame      Frame
	KZ, KX, KY string
	Charge     float64
	Dipole     [3]float64
	Quadrupole [6]float64
}

// NewMultipole returns a multipole term. frame must hold the kz and kx axis atoms,
// plus ky for the z-then-x-then-y frame. Other frame sizes are not supported.
func NewMultipole(typ string, frame []string, charge float64, dipole [3]float64, quad [6]float64) (MultipoleTerm, error) {
	M := MultipoleTerm{Type: typ, Charge: charge, Dipole: dipole, Quadrupole: quad}
	switch len(frame) {
	case 2:
		M.Frame = ZThenX
		M.KZ, M.KX = frame[0], frame[1]
	case 3:
		M.Frame = ZThenXThenY
		M.KZ, M.KX, M.KY = frame[0], frame[1], frame[2]
	default:
		return MultipoleTerm{}, NewError(ErrUnsupported, fmt.Sprintf("local frame with %d axis atoms", len(frame)), "", "NewMultipole")
	}
	return M, nil
}

func (M MultipoleTerm) Kind() Kind           { return Multipole }
func (M MultipoleTerm) Constants() []float64 { return []float64{M.Charge} }

// PolarizeTerm is an atomic polarizability with its Thole damping factor
// (as written) and up to 3 polarization group atoms.
type PolarizeTerm struct {
	Type   string
	Alpha  float64
	Thole  string
	Groups []string
}

// NewPolarizability returns a polarizability term, or an error if more than 3 groups are given.
func NewPolarizability(typ string, alpha float64, thole string, groups []string) (PolarizeTerm, error) {
	if len(groups) > 3 {
		return PolarizeTerm{}, NewError(ErrMalformed, fmt.Sprintf("%d polarization groups, at most 3 are supported", len(groups)), "", "NewPolarizability")
	}
	return PolarizeTerm{Type: typ, Alpha: alpha, Thole: thole, Groups: slices.Clone(groups)}, nil
}

func (P PolarizeTerm) Kind() Kind           { return Polarizability }
func (P PolarizeTerm) Constants() []float64 { return []float64{P.Alpha} }
