/*
 * lammps.go, part of ffconv.
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

// Package lammps converts the bonded and pair parameters in LAMMPS parameter
// files, as written, for instance, by the MYP tools. Each line has the form
//
//	bond_coeff  1  338.69999999999999        1.0910000000000000  # c3-hx
//
// with the atom names of the term in a comment at the end of the line.
package lammps

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/ffio"
	"github.com/rmera/ffconv/omm"
	"github.com/rmera/ffconv/units"
)

// Keywords relates the first field of a line with the kind of parameter in it.
var Keywords = map[string]ffconv.Kind{
	"bond_coeff":     ffconv.Bond,
	"angle_coeff":    ffconv.Angle,
	"dihedral_coeff": ffconv.Torsion,
	"pair_coeff":     ffconv.Nonbonded,
}

// columns gives, for each kind, the index of the field with the
// hyphen-joined atom names, how many names it has, and the
// indexes of the numeric parameters.
type columns struct {
	names  int
	ntypes int
	params []int
}

var layouts = map[ffconv.Kind]columns{
	ffconv.Bond:      {names: 5, ntypes: 2, params: []int{2, 3}},    //K r
	ffconv.Angle:     {names: 5, ntypes: 3, params: []int{2, 3}},    //K theta
	ffconv.Torsion:   {names: 7, ntypes: 4, params: []int{2, 3, 4}}, //K n d. The weighting factor (5) is not used.
	ffconv.Nonbonded: {names: 7, ntypes: 2, params: []int{4, 5}},    //epsilon sigma
}

// Buckingham pairs have 3 parameters, so the names come one field later.
const buckNames = 8

// Pair style tags.
const (
	LJ   = "lj"
	Buck = "buck"
)

func names(f []string, index, n int, s string) ([]string, error) {
	if len(f) <= index {
		return nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("no atom names in field %d", index), s, "names")
	}
	ret := strings.Split(f[index], "-")
	if len(ret) != n {
		return nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("%d atom names, expected %d", len(ret), n), s, "names")
	}
	return ret, nil
}

func params(f []string, cols columns, s string) ([]float64, error) {
	str := make([]string, 0, len(cols.params))
	for _, v := range cols.params {
		if v >= len(f) {
			return nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("no parameter in field %d", v), s, "params")
		}
		str = append(str, f[v])
	}
	p, err := ffconv.ParseFloats(str...)
	return p, ffconv.WithLine(err, s)
}

// Tokenize reads a bond_coeff, angle_coeff or dihedral_coeff line and
// returns the corresponding term, in LAMMPS (real) units.
// pair_coeff lines are read with TokenizePair.
func Tokenize(s string) (ffconv.Term, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return nil, ffconv.NewError(ffconv.ErrMalformed, "empty line", s, "Tokenize")
	}
	k, ok := Keywords[f[0]]
	if !ok || k == ffconv.Nonbonded {
		return nil, ffconv.NewError(ffconv.ErrUnsupported, "not a bonded term: "+f[0], s, "Tokenize")
	}
	cols := layouts[k]
	n, err := names(f, cols.names, cols.ntypes, s)
	if err != nil {
		return nil, ffconv.Decorate(err, "Tokenize")
	}
	p, err := params(f, cols, s)
	if err != nil {
		return nil, ffconv.Decorate(err, "Tokenize")
	}
	switch k {
	case ffconv.Bond:
		return ffconv.BondTerm{IDs: [2]string{n[0], n[1]}, K: p[0], Length: p[1]}, nil
	case ffconv.Angle:
		A, err := ffconv.NewAngle([3]string{n[0], n[1], n[2]}, p[0], p[1:2], nil)
		return A, ffconv.WithLine(err, s)
	default:
		T, err := ffconv.NewTorsion([4]string{n[0], n[1], n[2], n[3]}, 1, []ffconv.Fourier{{K: p[0], Periodicity: p[1], Phase: p[2]}})
		return T, ffconv.WithLine(err, s)
	}
}

// Pair is a pair_coeff line. Epsilon and Sigma are only read for LJ styles.
type Pair struct {
	I, J    string //LAMMPS atom type indexes
	Style   string
	Epsilon float64
	Sigma   float64
	Names   []string
}

// SameType returns true if both atoms in the pair have the same type.
func (P Pair) SameType() bool { return P.I == P.J }

// IsLJ returns true if the pair uses a Lennard-Jones style.
func (P Pair) IsLJ() bool { return strings.HasPrefix(P.Style, LJ) }

// IsBuck returns true if the pair uses a Buckingham style.
func (P Pair) IsBuck() bool { return strings.HasPrefix(P.Style, Buck) }

// TokenizePair reads a pair_coeff line.
func TokenizePair(s string) (Pair, error) {
	f := strings.Fields(s)
	if len(f) < 4 || f[0] != "pair_coeff" {
		return Pair{}, ffconv.NewError(ffconv.ErrMalformed, "not a pair_coeff line", s, "TokenizePair")
	}
	P := Pair{I: f[1], J: f[2], Style: f[3]}
	cols := layouts[ffconv.Nonbonded]
	var err error
	switch {
	case P.IsLJ():
		var p []float64
		if p, err = params(f, cols, s); err != nil {
			return P, ffconv.Decorate(err, "TokenizePair")
		}
		P.Epsilon, P.Sigma = p[0], p[1]
		P.Names, err = names(f, cols.names, cols.ntypes, s)
	case P.IsBuck():
		P.Names, err = names(f, buckNames, cols.ntypes, s)
	default:
		return P, ffconv.NewError(ffconv.ErrUnsupported, "pair style "+P.Style, s, "TokenizePair")
	}
	return P, ffconv.Decorate(err, "TokenizePair")
}

// ConvertPair decides what to do with a pair_coeff line. Only same-type LJ pairs can be
// expressed as OpenMM atom parameters. Mixed LJ pairs give a diagnostic with the converted
// values, for manual inspection. Same-type Buckingham pairs have no LJ equivalent and give
// an atom with zero sigma and epsilon, to be filled by hand. Everything else passes through.
func ConvertPair(s string, n int, E *omm.Emitter) ffconv.Result {
	P, err := TokenizePair(s)
	if err != nil {
		return ffconv.Pass(s, n, ffconv.Nonbonded, err)
	}
	switch {
	case P.IsLJ():
		t := units.Nonbonded(ffconv.LAMMPS, ffconv.NonbondedTerm{Type: P.Names[1], Sigma: P.Sigma, Epsilon: P.Epsilon})
		if !P.SameType() {
			R := ffconv.Pass(s, n, ffconv.Nonbonded, ffconv.NewError(ffconv.ErrUnsupported, "LJ pair of different atom types", s, "ConvertPair"))
			R.Status = ffconv.Diagnostic
			R.Note = fmt.Sprintf("    %s   omm_sigma=%s   omm_epsilon=%s", strings.Join(P.Names, "-"), omm.Shortest(t.Sigma), omm.Shortest(t.Epsilon))
			return R
		}
		rec, err := E.Emit(t)
		if err != nil {
			return ffconv.FromError(s, n, ffconv.Nonbonded, err)
		}
		return ffconv.Result{Status: ffconv.Converted, Kind: ffconv.Nonbonded, Line: n, Source: strings.TrimSpace(s), Record: rec, Term: t}
	case P.IsBuck() && P.SameType():
		rec, err := E.Emit(ffconv.NonbondedTerm{Type: P.Names[1]})
		if err != nil {
			return ffconv.FromError(s, n, ffconv.Nonbonded, err)
		}
		R := ffconv.Pass(s, n, ffconv.Nonbonded, ffconv.NewError(ffconv.ErrUnsupported, "Buckingham pair has no LJ equivalent", s, "ConvertPair"))
		R.Status = ffconv.Placeholder
		R.Record = rec
		return R
	}
	return ffconv.Pass(s, n, ffconv.Nonbonded, ffconv.NewError(ffconv.ErrUnsupported, "Buckingham pair of different atom types", s, "ConvertPair"))
}

// ConvertLine converts the line s, number n. Lines that are not
// bond, angle, dihedral or pair coefficients pass through.
func ConvertLine(s string, n int, E *omm.Emitter) ffconv.Result {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ffconv.Pass(s, n, ffconv.Unknown, nil)
	}
	k, ok := Keywords[f[0]]
	if !ok {
		return ffconv.Pass(s, n, ffconv.Unknown, nil)
	}
	if k == ffconv.Nonbonded {
		return ConvertPair(s, n, E)
	}
	t, err := Tokenize(s)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	c, err := units.Convert(ffconv.LAMMPS, t)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	rec, err := E.Emit(c)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	return ffconv.Result{Status: ffconv.Converted, Kind: k, Line: n, Source: strings.TrimSpace(s), Record: rec, Term: c}
}

// Convert converts all the lines in r, in order.
func Convert(r io.Reader, E *omm.Emitter) ([]ffconv.Result, error) {
	L := ffio.NewLineReader(r)
	ret := make([]ffconv.Result, 0, 100)
	for {
		s, err := L.Next()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return ret, err
		}
		ret = append(ret, ConvertLine(s, L.Number(), E))
	}
}
