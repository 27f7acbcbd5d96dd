/*
 * aggregate.go, part of ffconv.
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
	"github.com/rmera/ffconv/ffio"
)

// MultipoleLines is the number of lines that follow a multipole header:
// one for the dipole and three for the quadrupole.
const MultipoleLines = 4

// Record is one logical record of a prm file. For multipoles it contains
// the tokens of the header and of all its continuation lines.
type Record struct {
	Line   int    //number of the first line of the record
	Source string //the trimmed source line(s), joined by newlines
	Tokens []string
}

// Aggregator reads the records of a prm file, putting together multi-line multipoles.
type Aggregator struct {
	L *ffio.LineReader
}

func NewAggregator(r io.Reader) *Aggregator {
	return &Aggregator{L: ffio.NewLineReader(r)}
}

// Next returns the next record. It returns io.EOF at the end of the input, and an
// ffconv.ErrExhausted error if the input ends before a multipole is complete.
// The lines after a multipole header are taken as its continuation
// lines, without checking them.
func (A *Aggregator) Next() (Record, error) {
	s, err := A.L.Next()
	if err != nil {
		return Record{}, err
	}
	s = strings.TrimSpace(s)
	R := Record{Line: A.L.Number(), Source: s, Tokens: strings.Fields(s)}
	if len(R.Tokens) == 0 || R.Tokens[0] != "multipole" {
		return R, nil
	}
	src := make([]string, 1, MultipoleLines+1)
	src[0] = s
	for i := 0; i < MultipoleLines; i++ {
		c, err := A.L.Next()
		if errors.Is(err, io.EOF) {
			return R, ffconv.NewError(ffconv.ErrExhausted, fmt.Sprintf("multipole starting at line %d has %d of its %d continuation lines", R.Line, i, MultipoleLines), s, "Aggregator.Next")
		}
		if err != nil {
			return R, err
		}
		c = strings.TrimSpace(c)
		src = append(src, c)
		R.Tokens = append(R.Tokens, strings.Fields(c)...)
	}
	R.Source = strings.Join(src, "\n")
	return R, nil
}
