/*
 * tinker.go, part of ffconv.
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

package tinker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/omm"
	"github.com/rmera/ffconv/units"
)

// Keywords relates the record keywords with the kind of parameter they give.
var Keywords = map[string]ffconv.Kind{
	"bond":      ffconv.Bond,
	"angle":     ffconv.Angle,
	"anglep":    ffconv.Angle,
	"strbnd":    ffconv.StretchBend,
	"torsion":   ffconv.Torsion,
	"vdw":       ffconv.Nonbonded,
	"opbend":    ffconv.OutOfPlaneBend,
	"pitors":    ffconv.PiTorsion,
	"multipole": ffconv.Multipole,
	"polarize":  ffconv.Polarizability,
}

// angleValues gives the number of equilibrium angles for each
// accepted length of an angle record.
var angleValues = map[int]int{6: 1, 8: 2, 9: 3}

// multipoleFrames gives the number of local frame atoms for each accepted
// length of an aggregated multipole record.
var multipoleFrames = map[int]int{14: 2, 15: 3}

// tokens of a torsion record before the Fourier terms, and per term.
const (
	torsionHead = 5
	torsionTerm = 3
)

func malformed(f []string, msg string) error {
	return ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("%s record: %s", f[0], msg), strings.Join(f, " "), "Tokenize")
}

func wantLen(f []string, n ...int) error {
	for _, v := range n {
		if len(f) == v {
			return nil
		}
	}
	return malformed(f, fmt.Sprintf("%d fields, expected %v", len(f), n))
}

func floats(f []string, s ...string) ([]float64, error) {
	p, err := ffconv.ParseFloats(s...)
	if err != nil {
		return nil, ffconv.WithLine(ffconv.Decorate(err, "Tokenize"), strings.Join(f, " "))
	}
	return p, nil
}

// Tokenize returns the term for the fields f of a record, in Tinker units.
// The first field must be one of Keywords.
func Tokenize(f []string) (ffconv.Term, error) {
	if len(f) == 0 {
		return nil, ffconv.NewError(ffconv.ErrMalformed, "empty record", "", "Tokenize")
	}
	k, ok := Keywords[f[0]]
	if !ok {
		return nil, ffconv.NewError(ffconv.ErrUnsupported, "unknown record "+f[0], strings.Join(f, " "), "Tokenize")
	}
	var err error
	var p []float64
	switch k {
	case ffconv.Bond:
		if err = wantLen(f, 5); err != nil {
			return nil, err
		}
		if p, err = floats(f, f[3:5]...); err != nil {
			return nil, err
		}
		return ffconv.BondTerm{IDs: [2]string{f[1], f[2]}, K: p[0], Length: p[1]}, nil
	case ffconv.Angle:
		n, ok := angleValues[len(f)]
		if !ok {
			return nil, malformed(f, fmt.Sprintf("%d fields, expected 6, 8 or 9", len(f)))
		}
		if p, err = floats(f, f[4:5+n]...); err != nil {
			return nil, err
		}
		A, err := ffconv.NewAngle([3]string{f[1], f[2], f[3]}, p[0], p[1:], f[5:5+n])
		return A, ffconv.WithLine(err, strings.Join(f, " "))
	case ffconv.StretchBend:
		if err = wantLen(f, 6); err != nil {
			return nil, err
		}
		if p, err = floats(f, f[4:6]...); err != nil {
			return nil, err
		}
		return ffconv.StretchBendTerm{IDs: [3]string{f[1], f[2], f[3]}, K1: p[0], K2: p[1]}, nil
	case ffconv.Torsion:
		nt := (len(f) - torsionHead) / torsionTerm
		if len(f) < torsionHead+torsionTerm || (len(f)-torsionHead)%torsionTerm != 0 || nt > 3 {
			return nil, malformed(f, fmt.Sprintf("%d fields, expected 8, 11 or 14", len(f)))
		}
		if p, err = floats(f, f[torsionHead:]...); err != nil {
			return nil, err
		}
		terms := make([]ffconv.Fourier, 0, nt)
		for i := 0; i < nt; i++ {
			terms = append(terms, ffconv.Fourier{K: p[3*i], Phase: p[3*i+1], Periodicity: p[3*i+2]})
		}
		T, err := ffconv.NewTorsion([4]string{f[1], f[2], f[3], f[4]}, 1, terms)
		return T, ffconv.WithLine(err, strings.Join(f, " "))
	case ffconv.Nonbonded:
		if err = wantLen(f, 4, 5); err != nil {
			return nil, err
		}
		if p, err = floats(f, f[2:4]...); err != nil {
			return nil, err
		}
		N := ffconv.NonbondedTerm{Type: f[1], Sigma: p[0], Epsilon: p[1]}
		if len(f) == 5 {
			N.ReductionText = f[4]
		}
		return N, nil
	case ffconv.OutOfPlaneBend:
		if err = wantLen(f, 6); err != nil {
			return nil, err
		}
		if p, err = floats(f, f[5]); err != nil {
			return nil, err
		}
		return ffconv.OutOfPlaneTerm{IDs: [4]string{f[1], f[2], f[3], f[4]}, K: p[0]}, nil
	case ffconv.PiTorsion:
		if err = wantLen(f, 4); err != nil {
			return nil, err
		}
		if p, err = floats(f, f[3]); err != nil {
			return nil, err
		}
		return ffconv.PiTorsionTerm{IDs: [2]string{f[1], f[2]}, K: p[0]}, nil
	case ffconv.Multipole:
		return multipole(f)
	default: //polarize
		if len(f) < 4 {
			return nil, malformed(f, fmt.Sprintf("%d fields, expected at least 4", len(f)))
		}
		if p, err = floats(f, f[2]); err != nil {
			return nil, err
		}
		P, err := ffconv.NewPolarizability(f[1], p[0], f[3], f[4:])
		return P, ffconv.WithLine(err, strings.Join(f, " "))
	}
}

// multipole reads an aggregated multipole record. The number of fields gives the
// local frame: 14 for z-then-x, 15 for z-then-x-then-y. Other frames are rejected.
func multipole(f []string) (ffconv.Term, error) {
	nframe, ok := multipoleFrames[len(f)]
	if !ok {
		return nil, ffconv.NewError(ffconv.ErrUnsupported, fmt.Sprintf("multipole record with %d fields, only z-then-x (14) and z-then-x-then-y (15) frames are supported", len(f)), strings.Join(f, " "), "Tokenize")
	}
	frame := f[2 : 2+nframe]
	p, err := floats(f, f[2+nframe:]...)
	if err != nil {
		return nil, err
	}
	var dip [3]float64
	var quad [6]float64
	copy(dip[:], p[1:4])
	copy(quad[:], p[4:10])
	M, err := ffconv.NewMultipole(f[1], frame, p[0], dip, quad)
	return M, ffconv.WithLine(err, strings.Join(f, " "))
}

// minFields is the number of fields under which a line is never a parameter record.
const minFields = 3

// ConvertRecord sends the record R through tokenization, unit conversion and emission.
// Comments, short lines and unknown records pass through.
func ConvertRecord(R Record, E *omm.Emitter) ffconv.Result {
	f := R.Tokens
	if len(f) < minFields || strings.HasPrefix(f[0], "#") {
		return ffconv.Pass(R.Source, R.Line, ffconv.Unknown, nil)
	}
	k, ok := Keywords[f[0]]
	if !ok {
		return ffconv.Pass(R.Source, R.Line, ffconv.Unknown, nil)
	}
	t, err := Tokenize(f)
	if err != nil {
		return ffconv.FromError(R.Source, R.Line, k, err)
	}
	c, err := units.Convert(ffconv.Tinker, t)
	if err != nil {
		return ffconv.FromError(R.Source, R.Line, k, err)
	}
	rec, err := E.Emit(c)
	if err != nil {
		return ffconv.FromError(R.Source, R.Line, k, err)
	}
	return ffconv.Result{Status: ffconv.Converted, Kind: k, Line: R.Line, Source: R.Source, Record: rec, Term: c}
}

// ConvertLine converts a single line. Multipoles can't be converted this way, as they
// span several lines, see ConvertRecord.
func ConvertLine(s string, n int, E *omm.Emitter) ffconv.Result {
	s = strings.TrimSpace(s)
	return ConvertRecord(Record{Line: n, Source: s, Tokens: strings.Fields(s)}, E)
}

// Convert converts all the records in r, in order. It stops with an
// error only if the input ends in the middle of a multipole, or can't be read.
// The results obtained until then are returned in any case.
func Convert(r io.Reader, E *omm.Emitter) ([]ffconv.Result, error) {
	A := NewAggregator(r)
	ret := make([]ffconv.Result, 0, 100)
	for {
		R, err := A.Next()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return ret, err
		}
		ret = append(ret, ConvertRecord(R, E))
	}
}
