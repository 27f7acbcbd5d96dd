/*
 * emitter.go, part of ffconv.
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

package omm

import (
	"strings"

	"github.com/rmera/ffconv"
)

// DefaultCharge is what is written in the charge attribute of Atom elements. Charges
// are not part of the converted parameters, so they have to be filled by hand.
const DefaultCharge = "XXXX"

// Emitter writes converted terms as OpenMM elements, using the conventions
// of the dialect the terms were read from.
type Emitter struct {
	Dialect           ffconv.Dialect
	ChargePlaceholder string
}

// NewEmitter returns an emitter for terms read from the dialect d.
func NewEmitter(d ffconv.Dialect) *Emitter {
	return &Emitter{Dialect: d, ChargePlaceholder: DefaultCharge}
}

// Emit returns the OpenMM element for the converted term t. It returns an
// error if the dialect of the receiver has no element for t.
func (E *Emitter) Emit(t ffconv.Term) (string, error) {
	var s string
	var ok bool
	if E.Dialect == ffconv.Tinker {
		s, ok = E.tinker(t)
	} else {
		s, ok = E.amber(t)
	}
	if !ok {
		return "", ffconv.NewError(ffconv.ErrUnsupported, "no OpenMM element for "+t.Kind().String()+" terms from "+E.Dialect.String(), "", "Emit")
	}
	return s, nil
}

func (E *Emitter) charge() string {
	if E.ChargePlaceholder == "" {
		return DefaultCharge
	}
	return E.ChargePlaceholder
}

// AMBER and LAMMPS (AMBER-like force fields, really) share elements.
func (E *Emitter) amber(t ffconv.Term) (string, bool) {
	switch T := t.(type) {
	case ffconv.BondTerm:
		return "<Bond" + numbered("type", T.IDs[:]) + attr("length", Shortest(T.Length)) + attr("k", Shortest(T.K)) + "/>", true
	case ffconv.AngleTerm:
		if len(T.Theta) != 1 {
			return "", false
		}
		return "<Angle" + numbered("type", T.IDs[:]) + attr("angle", Shortest(T.Theta[0])) + attr("k", Shortest(T.K)) + "/>", true
	case ffconv.TorsionTerm:
		return "<Proper" + numbered("type", T.IDs[:]) + periodic(T.Terms) + "/>", true
	case ffconv.ImproperTerm:
		return "<Improper" + numbered("type", T.IDs[:]) + periodic([]ffconv.Fourier{T.Fourier}) + "/>", true
	case ffconv.NonbondedTerm:
		return "<Atom" + attr("type", T.Type) + attr("charge", E.charge()) + attr("sigma", Shortest(T.Sigma)) + attr("epsilon", Shortest(T.Epsilon)) + "/>", true
	}
	return "", false
}

func periodic(terms []ffconv.Fourier) string {
	var b strings.Builder
	for i, v := range terms {
		n := sf("%d", i+1)
		b.WriteString(attr("periodicity"+n, integer(v.Periodicity)))
		b.WriteString(attr("phase"+n, Shortest(v.Phase)))
		b.WriteString(attr("k"+n, Shortest(v.K)))
	}
	return b.String()
}

func (E *Emitter) tinker(t ffconv.Term) (string, bool) {
	switch T := t.(type) {
	case ffconv.BondTerm:
		return "<Bond" + numbered("class", T.IDs[:]) + attr("length", sf("%.6f", T.Length)) + attr("k", sf("%.2f", T.K)) + " />", true
	case ffconv.AngleTerm:
		angles := T.ThetaText
		if len(angles) == 0 {
			for _, v := range T.Theta {
				angles = append(angles, Shortest(v))
			}
		}
		return "<Angle" + numbered("class", T.IDs[:]) + attr("k", sf("%.9e", T.K)) + numbered("angle", angles) + " />", true
	case ffconv.StretchBendTerm:
		return "<StretchBend" + numbered("class", T.IDs[:]) + attr("k1", sf("%.9e", T.K1)) + attr("k2", sf("%.9e", T.K2)) + " />", true
	case ffconv.TorsionTerm:
		var b strings.Builder
		b.WriteString("<Proper" + numbered("class", T.IDs[:]))
		for i, v := range T.Terms {
			n := sf("%d", i+1)
			b.WriteString("  " + attr("k"+n, sf("%.6f", v.K)) + attr("phase"+n, sf("%.12f", v.Phase)) + attr("periodicity"+n, integer(v.Periodicity)))
		}
		b.WriteString(" />")
		return b.String(), true
	case ffconv.NonbondedTerm:
		red := T.ReductionText
		if red == "" {
			red = "1.0"
		}
		return "<Vdw" + attr("class", T.Type) + attr("sigma", sf("%.4f", T.Sigma)) + attr("epsilon", sf("%.6f", T.Epsilon)) + attr("reduction", red) + " />", true
	case ffconv.OutOfPlaneTerm:
		//yes, OpenMM calls these "Angle" too.
		return "<Angle" + numbered("class", T.IDs[:]) + attr("k", sf("%.9e", T.K)) + "/>", true
	case ffconv.PiTorsionTerm:
		return "<PiTorsion" + numbered("class", T.IDs[:]) + attr("k", sf("%.4f", T.K)) + " />", true
	case ffconv.MultipoleTerm:
		var b strings.Builder
		b.WriteString("<Multipole" + attr("type", T.Type) + attr("kz", T.KZ) + attr("kx", T.KX))
		if T.Frame == ffconv.ZThenXThenY {
			b.WriteString(attr("ky", T.KY))
		}
		b.WriteString(attr("c0", sf("%.6f", T.Charge)))
		for i, v := range T.Dipole {
			b.WriteString(attr(sf("d%d", i+1), sf("%.12e", v)))
		}
		for i, v := range T.Quadrupole {
			b.WriteString(attr(quadNames[i], sf("%.12e", v)))
		}
		b.WriteString(" />")
		return b.String(), true
	case ffconv.PolarizeTerm:
		return "<Polarize" + attr("type", T.Type) + attr("polarizability", sf("%.6f", T.Alpha)) + attr("thole", T.Thole) + numbered("pgrp", T.Groups) + " />", true
	}
	return "", false
}

var quadNames = [6]string{"q11", "q21", "q22", "q31", "q32", "q33"}
