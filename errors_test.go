/*
 * errors_test.go, part of ffconv.
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
	"errors"
	"strings"
	"testing"
)

func TestError(Te *testing.T) {
	err := NewError(ErrMalformed, "2 fields, expected 5", "", "Tokenize")
	Decorate(err, "ConvertLine")
	WithLine(err, "bond 1")
	if !errors.Is(err, ErrMalformed) || errors.Is(err, ErrUnsupported) {
		Te.Errorf("wrong category: %v", err)
	}
	want := `malformed record: 2 fields, expected 5 (line: "bond 1") [Tokenize <- ConvertLine]`
	if err.Error() != want {
		Te.Errorf("want %s, got %s", want, err.Error())
	}
	if err.Critical() || err.Line() != "bond 1" {
		Te.Errorf("%v critical=%v", err, err.Critical())
	}
	WithLine(err, "other")
	if err.Line() != "bond 1" {
		Te.Errorf("the line was replaced: %s", err.Line())
	}
	if !NewError(ErrExhausted, "", "", "").Critical() {
		Te.Error("exhausted input must be critical")
	}
	plain := errors.New("plain")
	if Decorate(plain, "x") != plain {
		Te.Error("Decorate changed a plain error")
	}
}

func TestFromError(Te *testing.T) {
	R := FromError("  multipole 1 2  ", 3, Multipole, NewError(ErrUnsupported, "frame", "", ""))
	if R.Status != Diagnostic || R.Source != "multipole 1 2" || !strings.Contains(R.Note, "frame") {
		Te.Errorf("unsupported: %+v", R)
	}
	R = FromError("bond 1", 4, Bond, NewError(ErrMalformed, "short", "", ""))
	if R.Status != Passthrough || R.Note != "" || R.Line != 4 {
		Te.Errorf("malformed: %+v", R)
	}
}

func TestConstructors(Te *testing.T) {
	if _, err := NewAngle([3]string{}, 1, nil, nil); !errors.Is(err, ErrMalformed) {
		Te.Errorf("angle without values: %v", err)
	}
	if _, err := NewAngle([3]string{}, 1, []float64{1, 2}, []string{"1"}); !errors.Is(err, ErrMalformed) {
		Te.Errorf("angle with mismatched verbatim values: %v", err)
	}
	if _, err := NewTorsion([4]string{}, 1, make([]Fourier, 4)); !errors.Is(err, ErrMalformed) {
		Te.Errorf("torsion with 4 terms: %v", err)
	}
	if _, err := NewMultipole("1", []string{"2"}, 0, [3]float64{}, [6]float64{}); !errors.Is(err, ErrUnsupported) {
		Te.Errorf("z-only multipole: %v", err)
	}
	M, err := NewMultipole("1", []string{"2", "3", "4"}, 0, [3]float64{}, [6]float64{})
	if err != nil || M.Frame != ZThenXThenY || M.KY != "4" {
		Te.Errorf("z-then-x-then-y multipole: %+v %v", M, err)
	}
	if _, err := NewPolarizability("1", 1, "0.39", []string{"1", "2", "3", "4"}); !errors.Is(err, ErrMalformed) {
		Te.Errorf("polarizability with 4 groups: %v", err)
	}
	if _, err := ParseFloats("1.0", "x"); !errors.Is(err, ErrMalformed) {
		Te.Errorf("ParseFloats: %v", err)
	}
	if Kind(42).String() != "unknown" || Polarizability.String() != "polarizability" || len(Kinds()) != 10 {
		Te.Error("kind names")
	}
}
