/*
 * render.go, part of ffconv.
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

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/internal/config"
)

// Renderer prints results. Converted records are printed as they are, the lines
// that were not converted are printed in grey, and diagnostics in yellow.
type Renderer struct {
	w           io.Writer
	grey        *color.Color
	yellow      *color.Color
	showSkipped bool
	skipPrefix  string
}

// NewRenderer returns a renderer that writes to w. The skip prefix of the
// configuration is only used for Tinker files.
func NewRenderer(w io.Writer, cfg *config.Config, d ffconv.Dialect) *Renderer {
	R := &Renderer{w: w, grey: color.New(color.FgHiBlack), yellow: color.New(color.FgYellow), showSkipped: cfg.ShowSkipped}
	if d == ffconv.Tinker {
		R.skipPrefix = cfg.SkipPrefix
	}
	switch cfg.Color {
	case config.ColorNever:
		R.grey.DisableColor()
		R.yellow.DisableColor()
	case config.ColorAlways:
		R.grey.EnableColor()
		R.yellow.EnableColor()
	}
	return R
}

// source prints the source of r in grey, if skipped lines are to be shown or always is true.
func (R *Renderer) source(r ffconv.Result, always bool) {
	if !R.showSkipped && !always {
		return
	}
	for _, v := range strings.Split(r.Source, "\n") {
		R.grey.Fprintln(R.w, R.skipPrefix+v)
	}
}

// Render prints the result r.
func (R *Renderer) Render(r ffconv.Result) {
	switch r.Status {
	case ffconv.Converted:
		fmt.Fprintln(R.w, r.Record)
	case ffconv.Diagnostic:
		R.source(r, true)
		R.yellow.Fprintln(R.w, r.Note)
	case ffconv.Placeholder:
		R.source(r, false)
		fmt.Fprintln(R.w, r.Record)
	default:
		R.source(r, false)
	}
}

// RenderAll prints all the results in rs.
func (R *Renderer) RenderAll(rs []ffconv.Result) {
	for _, v := range rs {
		R.Render(v)
	}
}

// Break prints an empty line.
func (R *Renderer) Break() {
	fmt.Fprintln(R.w)
}
