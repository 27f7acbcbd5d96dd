/*
 * report.go, part of ffconv.
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

// Package report summarizes the results of a conversion: how many lines
// of each kind were converted or not, and some statistics on the converted
// force constants, which help to spot unit problems at a glance.
package report

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/ffconv"
)

// Stats are descriptive statistics for the main constant of the
// converted terms of one kind.
type Stats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 //0 if N<2
	Median float64
}

// KindSummary has the counts per status, and the statistics, for one kind.
type KindSummary struct {
	Kind   ffconv.Kind
	Counts map[ffconv.Status]int
	Stats  *Stats //nil if nothing was converted
}

// Summary is the summary of a whole conversion.
type Summary struct {
	Total  int
	Counts map[ffconv.Status]int
	Kinds  []KindSummary //only kinds that appear in the results, in the order of ffconv.Kinds
	Other  int           //results without a kind (unrecognized lines)
}

// Describe returns the statistics of the data in x. x is not modified.
// It returns nil if x is empty.
func Describe(x []float64) *Stats {
	if len(x) == 0 {
		return nil
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	S := &Stats{N: len(x), Min: floats.Min(x), Max: floats.Max(x)}
	S.Mean = stat.Mean(x, nil)
	if len(x) > 1 {
		S.StdDev = stat.StdDev(x, nil)
	}
	S.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return S
}

// Summarize collects the summary of results.
func Summarize(results []ffconv.Result) Summary {
	S := Summary{Total: len(results), Counts: make(map[ffconv.Status]int)}
	perkind := make(map[ffconv.Kind]map[ffconv.Status]int)
	values := make(map[ffconv.Kind][]float64)
	for _, r := range results {
		S.Counts[r.Status]++
		if r.Kind == ffconv.Unknown {
			S.Other++
			continue
		}
		if perkind[r.Kind] == nil {
			perkind[r.Kind] = make(map[ffconv.Status]int)
		}
		perkind[r.Kind][r.Status]++
		if r.Status == ffconv.Converted && r.Term != nil {
			if c := r.Term.Constants(); len(c) > 0 {
				values[r.Kind] = append(values[r.Kind], c[0])
			}
		}
	}
	for _, k := range ffconv.Kinds() {
		c, ok := perkind[k]
		if !ok {
			continue
		}
		S.Kinds = append(S.Kinds, KindSummary{Kind: k, Counts: c, Stats: Describe(values[k])})
	}
	return S
}

var statuses = []ffconv.Status{ffconv.Converted, ffconv.Passthrough, ffconv.Diagnostic, ffconv.Placeholder}

// Write writes the summary as a table to w.
func (S Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "kind\tconverted\tpassthrough\tdiagnostic\tplaceholder\tmin\tmax\tmean\tstddev\tmedian\n")
	for _, v := range S.Kinds {
		fmt.Fprintf(tw, "%s", v.Kind)
		for _, s := range statuses {
			fmt.Fprintf(tw, "\t%d", v.Counts[s])
		}
		if v.Stats != nil {
			st := v.Stats
			fmt.Fprintf(tw, "\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n", st.Min, st.Max, st.Mean, st.StdDev, st.Median)
		} else {
			fmt.Fprintf(tw, "\t-\t-\t-\t-\t-\n")
		}
	}
	fmt.Fprintf(tw, "other\t-\t%d\t-\t-\t-\t-\t-\t-\t-\n", S.Other)
	fmt.Fprintf(tw, "total\t%d\t%d\t%d\t%d\t\t\t\t\t\n", S.Counts[ffconv.Converted], S.Counts[ffconv.Passthrough], S.Counts[ffconv.Diagnostic], S.Counts[ffconv.Placeholder])
	return tw.Flush()
}
