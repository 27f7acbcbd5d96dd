package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/rmera/ffconv"
)

func TestDescribe(Te *testing.T) {
	if Describe(nil) != nil {
		Te.Error("statistics for no data")
	}
	x := []float64{4, 1, 3, 2}
	S := Describe(x)
	if S.N != 4 || S.Min != 1 || S.Max != 4 || !scalar.EqualWithinAbs(S.Mean, 2.5, 1e-12) || S.Median != 2 {
		Te.Errorf("statistics: %+v", S)
	}
	if !scalar.EqualWithinAbs(S.StdDev, 1.2909944487358056, 1e-12) {
		Te.Errorf("standard deviation: %v", S.StdDev)
	}
	if x[0] != 4 {
		Te.Errorf("the data was modified: %v", x)
	}
	if one := Describe([]float64{7}); one.StdDev != 0 || one.Median != 7 {
		Te.Errorf("statistics for one value: %+v", one)
	}
}

func TestSummarize(Te *testing.T) {
	results := []ffconv.Result{
		{Status: ffconv.Converted, Kind: ffconv.Bond, Term: ffconv.BondTerm{K: 100}},
		{Status: ffconv.Converted, Kind: ffconv.Bond, Term: ffconv.BondTerm{K: 300}},
		{Status: ffconv.Passthrough, Kind: ffconv.Bond},
		{Status: ffconv.Diagnostic, Kind: ffconv.Nonbonded},
		{Status: ffconv.Passthrough, Kind: ffconv.Unknown},
	}
	S := Summarize(results)
	if S.Total != 5 || S.Other != 1 || S.Counts[ffconv.Passthrough] != 2 || len(S.Kinds) != 2 {
		Te.Fatalf("summary: %+v", S)
	}
	b := S.Kinds[0]
	if b.Kind != ffconv.Bond || b.Counts[ffconv.Converted] != 2 || b.Stats == nil || b.Stats.Mean != 200 {
		Te.Errorf("bonds: %+v", b)
	}
	if nb := S.Kinds[1]; nb.Kind != ffconv.Nonbonded || nb.Stats != nil {
		Te.Errorf("nonbonded: %+v", nb)
	}
	var out bytes.Buffer
	if err := S.Write(&out); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[1], "bond") || !strings.HasPrefix(lines[4], "total") {
		Te.Errorf("summary table:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "200") {
		Te.Errorf("no mean in the bond line: %s", lines[1])
	}
}

func TestPlotAll(Te *testing.T) {
	results := []ffconv.Result{
		{Status: ffconv.Converted, Kind: ffconv.Bond, Term: ffconv.BondTerm{K: 100}},
		{Status: ffconv.Converted, Kind: ffconv.Bond, Term: ffconv.BondTerm{K: 300}},
		{Status: ffconv.Converted, Kind: ffconv.PiTorsion, Term: ffconv.PiTorsionTerm{K: 28.6}},
		{Status: ffconv.Converted, Kind: ffconv.PiTorsion, Term: ffconv.PiTorsionTerm{K: 30.1}},
		{Status: ffconv.Passthrough, Kind: ffconv.Angle},
	}
	prefix := filepath.Join(Te.TempDir(), "lig.png")
	names, err := PlotAll(results, prefix)
	if err != nil {
		Te.Fatal(err)
	}
	if len(names) != 2 || filepath.Base(names[0]) != "lig_bond.png" || filepath.Base(names[1]) != "lig_pi-torsion.png" {
		Te.Fatalf("unexpected files: %v", names)
	}
	for _, v := range names {
		if fi, err := os.Stat(v); err != nil || fi.Size() == 0 {
			Te.Errorf("%s: %v", v, err)
		}
	}
}
