/*
 * plot.go, part of ffconv.
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

package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/ffconv"
)

// Bins is the number of bins in the histograms.
var Bins = 20

// PlotSize is the width and height of the histograms.
var PlotSize = 4 * vg.Inch

// Constants returns, for each kind, the main constant of each converted term.
func Constants(results []ffconv.Result) map[ffconv.Kind][]float64 {
	ret := make(map[ffconv.Kind][]float64)
	for _, r := range results {
		if r.Status != ffconv.Converted || r.Term == nil {
			continue
		}
		if c := r.Term.Constants(); len(c) > 0 {
			ret[r.Kind] = append(ret[r.Kind], c[0])
		}
	}
	return ret
}

// Histogram plots the histogram of values to the file name. The format is
// given by the extension of name (png, svg, pdf, eps...).
func Histogram(values []float64, title, name string) error {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Force constant (OpenMM units)"
	p.Y.Label.Text = "Terms"
	h, err := plotter.NewHist(plotter.Values(values), Bins)
	if err != nil {
		return fmt.Errorf("histogram for %s: %w", title, err)
	}
	p.Add(h)
	if err := p.Save(PlotSize, PlotSize, name); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

// PlotAll writes one histogram per converted kind in results. The file names
// are built from prefix: for prefix "out/lig.png" the bonds histogram
// goes to "out/lig_bond.png". It returns the names of the files written.
func PlotAll(results []ffconv.Result, prefix string) ([]string, error) {
	ext := filepath.Ext(prefix)
	if ext == "" {
		ext = ".png"
	}
	base := strings.TrimSuffix(prefix, filepath.Ext(prefix))
	consts := Constants(results)
	var written []string
	for _, k := range ffconv.Kinds() {
		v, ok := consts[k]
		if !ok {
			continue
		}
		name := base + "_" + k.String() + ext
		if err := Histogram(v, k.String(), name); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}
