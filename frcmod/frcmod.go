/*
 * frcmod.go, part of ffconv.
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

package frcmod

import (
	"fmt"
	"io"
	"strings"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/omm"
	"github.com/rmera/ffconv/units"
)

// layout is the shape of a line of a given kind: the width of the
// atom-type columns (0 if the types are just the first field) and how many
// types and parameters are expected.
type layout struct {
	width  int
	types  int
	params int
}

var layouts = map[ffconv.Kind]layout{
	ffconv.Bond:      {width: 5, types: 2, params: 2},  //k r
	ffconv.Angle:     {width: 8, types: 3, params: 2},  //k theta
	ffconv.Torsion:   {width: 11, types: 4, params: 4}, //idivf pk phase pn
	ffconv.Improper:  {width: 11, types: 4, params: 3}, //pk phase pn
	ffconv.Nonbonded: {width: 0, types: 1, params: 2},  //rmin/2 epsilon
}

// fields splits the line s in atom types and parameters according to the layout for k.
// Anything after the expected parameters (usually a comment) is ignored.
func fields(s string, k ffconv.Kind) ([]string, []float64, error) {
	lay, ok := layouts[k]
	if !ok {
		return nil, nil, ffconv.NewError(ffconv.ErrUnsupported, "no frcmod layout for "+k.String(), s, "fields")
	}
	var types, rest []string
	if lay.width > 0 {
		if len(s) < lay.width {
			return nil, nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("line shorter than the %d type columns", lay.width), s, "fields")
		}
		types = strings.Fields(strings.ReplaceAll(s[:lay.width], "-", " "))
		rest = strings.Fields(s[lay.width:])
	} else {
		f := strings.Fields(s)
		if len(f) < lay.types {
			return nil, nil, ffconv.NewError(ffconv.ErrMalformed, "no atom type", s, "fields")
		}
		types, rest = f[:lay.types], f[lay.types:]
	}
	if len(types) != lay.types {
		return nil, nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("%d atom types, expected %d", len(types), lay.types), s, "fields")
	}
	if len(rest) < lay.params {
		return nil, nil, ffconv.NewError(ffconv.ErrMalformed, fmt.Sprintf("%d parameters, expected %d", len(rest), lay.params), s, "fields")
	}
	params, err := ffconv.ParseFloats(rest[:lay.params]...)
	if err != nil {
		return nil, nil, ffconv.WithLine(ffconv.Decorate(err, "fields"), s)
	}
	return types, params, nil
}

// Tokenize reads the line s, which belongs to a block of kind k,
// and returns the corresponding term, in frcmod units.
func Tokenize(s string, k ffconv.Kind) (ffconv.Term, error) {
	s = strings.TrimSpace(s)
	t, p, err := fields(s, k)
	if err != nil {
		return nil, ffconv.Decorate(err, "Tokenize")
	}
	switch k {
	case ffconv.Bond:
		return ffconv.BondTerm{IDs: [2]string{t[0], t[1]}, K: p[0], Length: p[1]}, nil
	case ffconv.Angle:
		A, err := ffconv.NewAngle([3]string{t[0], t[1], t[2]}, p[0], p[1:2], nil)
		return A, ffconv.WithLine(err, s)
	case ffconv.Torsion:
		T, err := ffconv.NewTorsion([4]string{t[0], t[1], t[2], t[3]}, p[0], []ffconv.Fourier{{K: p[1], Phase: p[2], Periodicity: p[3]}})
		return T, ffconv.WithLine(err, s)
	case ffconv.Improper:
		return ffconv.ImproperTerm{IDs: [4]string{t[0], t[1], t[2], t[3]}, Fourier: ffconv.Fourier{K: p[0], Phase: p[1], Periodicity: p[2]}}, nil
	default: //only nonbonded is left, fields takes care of the rest
		return ffconv.NonbondedTerm{Type: t[0], RminHalf: p[0], Epsilon: p[1]}, nil
	}
}

// ConvertLine sends the line s, number n, from a block of kind k through
// tokenization, unit conversion and emission.
func ConvertLine(s string, n int, k ffconv.Kind, E *omm.Emitter) ffconv.Result {
	t, err := Tokenize(s, k)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	c, err := units.Convert(ffconv.FRCMOD, t)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	rec, err := E.Emit(c)
	if err != nil {
		return ffconv.FromError(s, n, k, err)
	}
	return ffconv.Result{Status: ffconv.Converted, Kind: k, Line: n, Source: strings.TrimSpace(s), Record: rec, Term: c}
}

// ConvertSection converts all the lines in S.
func ConvertSection(S *Section, E *omm.Emitter) []ffconv.Result {
	ret := make([]ffconv.Result, 0, len(S.Lines))
	for _, v := range S.Lines {
		ret = append(ret, ConvertLine(v.Text, v.Number, S.Kind, E))
	}
	return ret
}

// Converted holds the results for a frcmod file: the passthrough
// results for the lines outside the blocks, and one slice of results per
// block, in the order given by Headers.
type Converted struct {
	Rest     []ffconv.Result
	Sections [][]ffconv.Result
}

// All returns all the results in C, Rest first.
func (C *Converted) All() []ffconv.Result {
	ret := append(make([]ffconv.Result, 0, 100), C.Rest...)
	for _, v := range C.Sections {
		ret = append(ret, v...)
	}
	return ret
}

// ConvertBlocks converts all the blocks in B.
func ConvertBlocks(B *Blocks, E *omm.Emitter) *Converted {
	C := &Converted{Rest: make([]ffconv.Result, 0, len(B.Rest)), Sections: make([][]ffconv.Result, 0, len(Headers))}
	for _, v := range B.Rest {
		C.Rest = append(C.Rest, ffconv.Pass(v.Text, v.Number, ffconv.Unknown, nil))
	}
	for _, h := range Headers {
		C.Sections = append(C.Sections, ConvertSection(B.Section(h.Kind), E))
	}
	return C
}

// Convert reads the frcmod file in r and converts it. The lines outside the supported blocks
// come first, as passthrough results, followed by the blocks in the order given by Headers.
func Convert(r io.Reader, E *omm.Emitter) ([]ffconv.Result, error) {
	B, err := Extract(r)
	if err != nil {
		return nil, err
	}
	return ConvertBlocks(B, E).All(), nil
}
