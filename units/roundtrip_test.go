package units

import (
	"regexp"
	"strconv"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/rmera/ffconv"
	"github.com/rmera/ffconv/omm"
)

var attrRe = regexp.MustCompile(`(\w+)="([^"]*)"`)

// attributes returns the numeric attributes of an element.
func attributes(elem string) map[string]float64 {
	ret := make(map[string]float64)
	for _, m := range attrRe.FindAllStringSubmatch(elem, -1) {
		if f, err := strconv.ParseFloat(m[2], 64); err == nil {
			ret[m[1]] = f
		}
	}
	return ret
}

type roundTrip struct {
	name string
	d    ffconv.Dialect
	src  ffconv.Term
	want []float64                          //source values, in source units
	back func(a map[string]float64) []float64 //undoes the conversion on the emitted attributes
}

func angle(Te *testing.T, ids [3]string, k float64, theta []float64, text []string) ffconv.AngleTerm {
	A, err := ffconv.NewAngle(ids, k, theta, text)
	if err != nil {
		Te.Fatal(err)
	}
	return A
}

func torsion(Te *testing.T, d float64, terms ...ffconv.Fourier) ffconv.TorsionTerm {
	T, err := ffconv.NewTorsion([4]string{"a", "b", "c", "d"}, d, terms)
	if err != nil {
		Te.Fatal(err)
	}
	return T
}

func roundTrips(Te *testing.T) []roundTrip {
	amberBond := func(a map[string]float64) []float64 {
		return []float64{a["k"] * KJ2Kcal * A2nm * A2nm / 2, a["length"] * Nm2A}
	}
	amberAngle := func(a map[string]float64) []float64 {
		return []float64{a["k"] * KJ2Kcal / 2, a["angle"] * Rad2Deg}
	}
	var cases []roundTrip
	for _, d := range []ffconv.Dialect{ffconv.FRCMOD, ffconv.LAMMPS} {
		cases = append(cases,
			roundTrip{"bond", d, ffconv.BondTerm{IDs: [2]string{"c3", "h1"}, K: 330.6, Length: 1.097}, []float64{330.6, 1.097}, amberBond},
			roundTrip{"angle", d, angle(Te, [3]string{"c3", "n", "c3"}, 63.03, []float64{115.64}, nil), []float64{63.03, 115.64}, amberAngle},
		)
	}
	cases = append(cases,
		roundTrip{"torsion", ffconv.FRCMOD, torsion(Te, 4, ffconv.Fourier{K: 10, Phase: 180, Periodicity: -2}), []float64{10, 180, 2},
			func(a map[string]float64) []float64 {
				return []float64{a["k1"] * KJ2Kcal * 4, a["phase1"] * Rad2Deg, a["periodicity1"]}
			}},
		roundTrip{"improper", ffconv.FRCMOD, ffconv.ImproperTerm{IDs: [4]string{"c", "c3", "n", "c3"}, Fourier: ffconv.Fourier{K: 1.1, Phase: 180, Periodicity: 2}}, []float64{1.1, 180, 2},
			func(a map[string]float64) []float64 {
				return []float64{a["k1"] * KJ2Kcal, a["phase1"] * Rad2Deg, a["periodicity1"]}
			}},
		roundTrip{"nonbonded", ffconv.FRCMOD, ffconv.NonbondedTerm{Type: "c3", RminHalf: 1.908, Epsilon: 0.1094}, []float64{1.908, 0.1094},
			func(a map[string]float64) []float64 {
				return []float64{Sigma2RminHalf(a["sigma"]), a["epsilon"] * KJ2Kcal}
			}},
		roundTrip{"torsion", ffconv.LAMMPS, torsion(Te, 1, ffconv.Fourier{K: 0.1556, Phase: 0, Periodicity: 3}), []float64{0.1556, 0, 3},
			func(a map[string]float64) []float64 {
				return []float64{a["k1"] * KJ2Kcal, a["phase1"] * Rad2Deg, a["periodicity1"]}
			}},
		roundTrip{"nonbonded", ffconv.LAMMPS, ffconv.NonbondedTerm{Type: "hn", Sigma: 2.26454, Epsilon: 0.014}, []float64{2.26454, 0.014},
			func(a map[string]float64) []float64 {
				return []float64{a["sigma"] * Nm2A, a["epsilon"] * KJ2Kcal}
			}},
		roundTrip{"bond", ffconv.Tinker, ffconv.BondTerm{IDs: [2]string{"6", "16"}, K: 341, Length: 1.112}, []float64{341, 1.112},
			func(a map[string]float64) []float64 {
				return []float64{a["k"] * KJ2Kcal * A2nm * A2nm, a["length"] * Nm2A}
			}},
		roundTrip{"angle", ffconv.Tinker, angle(Te, [3]string{"53", "54", "54"}, 69.2, []float64{114, 120.5}, []string{"114.00", "120.50"}), []float64{69.2, 114, 120.5},
			func(a map[string]float64) []float64 {
				return []float64{a["k"] * KJ2Kcal * Rad2Deg * Rad2Deg, a["angle1"], a["angle2"]}
			}},
		roundTrip{"stretch-bend", ffconv.Tinker, ffconv.StretchBendTerm{IDs: [3]string{"6", "7", "30"}, K1: 11.5, K2: 7.25}, []float64{11.5, 7.25},
			func(a map[string]float64) []float64 {
				f := Rad2Deg / (Kcal2KJ * Nm2A)
				return []float64{a["k1"] * f, a["k2"] * f}
			}},
		roundTrip{"torsion", ffconv.Tinker, torsion(Te, 1, ffconv.Fourier{K: 0.982, Periodicity: 1}, ffconv.Fourier{K: 0.994, Phase: 180, Periodicity: 2}, ffconv.Fourier{K: 0.17, Periodicity: 3}),
			[]float64{0.982, 0, 1, 0.994, 180, 2, 0.17, 0, 3},
			func(a map[string]float64) []float64 {
				var r []float64
				for _, n := range []string{"1", "2", "3"} {
					r = append(r, a["k"+n]*2*KJ2Kcal, a["phase"+n]*Rad2Deg, a["periodicity"+n])
				}
				return r
			}},
		roundTrip{"vdw", ffconv.Tinker, ffconv.NonbondedTerm{Type: "26", Sigma: 3.8, Epsilon: 0.101}, []float64{3.8, 0.101},
			func(a map[string]float64) []float64 {
				return []float64{a["sigma"] * Nm2A, a["epsilon"] * KJ2Kcal}
			}},
		roundTrip{"out-of-plane", ffconv.Tinker, ffconv.OutOfPlaneTerm{IDs: [4]string{"2", "1", "0", "0"}, K: 41.7}, []float64{41.7},
			func(a map[string]float64) []float64 {
				return []float64{a["k"] * KJ2Kcal * TinkerRad2Deg * TinkerRad2Deg}
			}},
		roundTrip{"pi-torsion", ffconv.Tinker, ffconv.PiTorsionTerm{IDs: [2]string{"1", "3"}, K: 6.85}, []float64{6.85},
			func(a map[string]float64) []float64 {
				return []float64{a["k"] * KJ2Kcal / PiTorsionUnit}
			}},
		roundTrip{"multipole", ffconv.Tinker,
			ffconv.MultipoleTerm{Type: "7", Frame: ffconv.ZThenX, KZ: "44", KX: "10", Charge: -0.14168, Dipole: [3]float64{0.07684, 0, 0.42468}, Quadrupole: [6]float64{0.07677, 0, -1.10639, -0.13195, 0, 1.02962}},
			[]float64{-0.14168, 0.07684, 0, 0.42468, 0.07677, 0, -1.10639, -0.13195, 0, 1.02962},
			func(a map[string]float64) []float64 {
				d := 1 / (Bohr2A * A2nm)
				q := 3 / (A2nm * A2nm * Bohr2A * Bohr2A)
				return []float64{a["c0"], a["d1"] * d, a["d2"] * d, a["d3"] * d,
					a["q11"] * q, a["q21"] * q, a["q22"] * q, a["q31"] * q, a["q32"] * q, a["q33"] * q}
			}},
		roundTrip{"polarize", ffconv.Tinker, ffconv.PolarizeTerm{Type: "253", Alpha: 1.75, Thole: "0.3900", Groups: []string{"252"}}, []float64{1.75},
			func(a map[string]float64) []float64 {
				return []float64{a["polarizability"] * Nm2A * Nm2A * Nm2A}
			}},
	)
	return cases
}

// Reversing the unit factors on the emitted values gives back the source values.
// Tinker elements are written with fixed precision, so they get a looser tolerance.
func TestRoundTrip(Te *testing.T) {
	for _, c := range roundTrips(Te) {
		E := omm.NewEmitter(c.d)
		conv, err := Convert(c.d, c.src)
		if err != nil {
			Te.Errorf("%s %s: %v", c.d, c.name, err)
			continue
		}
		elem, err := E.Emit(conv)
		if err != nil {
			Te.Errorf("%s %s: %v", c.d, c.name, err)
			continue
		}
		got := c.back(attributes(elem))
		rel := 1e-12
		if c.d == ffconv.Tinker {
			rel = 1e-6
		}
		if len(got) != len(c.want) {
			Te.Fatalf("%s %s: %d values, expected %d", c.d, c.name, len(got), len(c.want))
		}
		for i, w := range c.want {
			if !scalar.EqualWithinAbsOrRel(got[i], w, 1e-12, rel) {
				Te.Errorf("%s %s: value %d is %v after the round trip, expected %v\n%s", c.d, c.name, i, got[i], w, elem)
			}
		}
	}
}
