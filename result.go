/*
 * result.go, part of ffconv.
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
	"strconv"
	"strings"
)

// Status tells what the pipeline did with an input line.
type Status int

const (
	//The line was converted, Record holds the output.
	Converted Status = iota
	//The line was not recognized, or could not be parsed. Source is to be shown as-is.
	Passthrough
	//The line is valid but can't be converted. Note holds information for manual inspection.
	Diagnostic
	//The line was replaced by a record that has to be completed by hand.
	Placeholder
)

func (S Status) String() string {
	switch S {
	case Converted:
		return "converted"
	case Passthrough:
		return "passthrough"
	case Diagnostic:
		return "diagnostic"
	case Placeholder:
		return "placeholder"
	}
	return "unknown"
}

// Result is the outcome of sending one line (or one aggregated multi-line record)
// through the pipeline.
type Result struct {
	Status Status
	Kind   Kind
	Line   int    //1-based line number of the (first) source line, 0 if not known
	Source string //the source line(s), trimmed
	Record string //the converted record, empty for Passthrough and Diagnostic results
	Note   string //annotation for Diagnostic results
	Term   Term   //the converted term, if any
	Err    error  //the reason for a non-Converted status, if any
}

// Pass returns a Passthrough result for the line source.
func Pass(source string, line int, kind Kind, err error) Result {
	return Result{Status: Passthrough, Kind: kind, Line: line, Source: strings.TrimSpace(source), Err: err}
}

// FromError returns the Passthrough or Diagnostic result that corresponds to
// err, for the line source: unsupported variants are diagnostics, everything else
// passes through.
func FromError(source string, line int, kind Kind, err error) Result {
	R := Pass(source, line, kind, err)
	if errors.Is(err, ErrUnsupported) {
		R.Status = Diagnostic
		R.Note = err.Error()
	}
	return R
}

// ParseFloats parses all the given strings as float64 values.
func ParseFloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, NewError(ErrMalformed, "not a number: "+v, "", "ParseFloats")
		}
		r = append(r, f)
	}
	return r, nil
}
