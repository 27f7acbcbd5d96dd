/*
 * blocks.go, part of ffconv.
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
	"errors"
	"io"
	"strings"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/ffio"
)

// Header relates a frcmod block header with the kind of parameters in the block.
type Header struct {
	Keyword string
	Kind    ffconv.Kind
}

// Headers are the supported blocks, in the order in which they are converted.
var Headers = []Header{
	{"BOND", ffconv.Bond},
	{"ANGLE", ffconv.Angle},
	{"DIHE", ffconv.Torsion},
	{"IMPROPER", ffconv.Improper},
	{"NONBON", ffconv.Nonbonded},
}

// which returns the kind of block that the line s opens, if any.
func which(s string) (ffconv.Kind, bool) {
	for _, v := range Headers {
		if strings.HasPrefix(s, v.Keyword) {
			return v.Kind, true
		}
	}
	return ffconv.Unknown, false
}

// Line is a trimmed input line with its (1-based) number.
type Line struct {
	Number int
	Text   string
}

// Section contains the lines of one block.
type Section struct {
	Kind  ffconv.Kind
	Lines []Line
}

// Blocks holds the sections of a frcmod file, plus the non-blank lines
// that are not part of any section.
type Blocks struct {
	sections map[ffconv.Kind]*Section
	Rest     []Line
}

// Section returns the section for the kind k. If the file
// had no such block, an empty section is returned.
func (B *Blocks) Section(k ffconv.Kind) *Section {
	if s, ok := B.sections[k]; ok {
		return s
	}
	return &Section{Kind: k}
}

// Extract reads the frcmod file in r and collects its blocks. A
// block header opens a section that is closed by the first blank line.
// A header for a block that has already been read is not special: its
// lines end up in the Rest field.
func Extract(r io.Reader) (*Blocks, error) {
	B := &Blocks{sections: make(map[ffconv.Kind]*Section)}
	L := ffio.NewLineReader(r)
	var current *Section
	for {
		s, err := L.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return B, err
		}
		s = strings.TrimSpace(s)
		if current != nil {
			if s == "" {
				current = nil
				continue
			}
			current.Lines = append(current.Lines, Line{L.Number(), s})
			continue
		}
		if s == "" {
			continue
		}
		if k, ok := which(s); ok {
			if _, done := B.sections[k]; !done {
				current = &Section{Kind: k}
				B.sections[k] = current
				continue
			}
		}
		B.Rest = append(B.Rest, Line{L.Number(), s})
	}
	return B, nil
}
