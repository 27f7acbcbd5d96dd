package omm

import (
	"errors"
	"strconv"
	"testing"

	"github.com/rmera/ffconv"
)

func TestShortest(Te *testing.T) {
	cases := map[float64]string{
		0.1097:    "0.1097",
		2:         "2.0",
		0:         "0.0",
		-4:        "-4.0",
		276646.08: "276646.08",
		0.00001:   "1e-05",
		0.0001:    "0.0001",
		1e16:      "1e+16",
	}
	for in, want := range cases {
		if got := Shortest(in); got != want {
			Te.Errorf("Shortest(%v): want %s, got %s", in, want, got)
		}
	}
	for _, v := range []float64{0.33996695084235345, 2.018298747006243, 527.4350400000001, 1.0 / 3} {
		back, err := strconv.ParseFloat(Shortest(v), 64)
		if err != nil || back != v {
			Te.Errorf("%v doesn't survive a round trip: %s", v, Shortest(v))
		}
	}
}

func TestAmberElements(Te *testing.T) {
	E := NewEmitter(ffconv.FRCMOD)
	cases := []struct {
		t    ffconv.Term
		want string
	}{
		{ffconv.BondTerm{IDs: [2]string{"c3", "h1"}, K: 276646.08, Length: 0.1097}, `<Bond type1="c3" type2="h1" length="0.1097" k="276646.08"/>`},
		{ffconv.AngleTerm{IDs: [3]string{"c3", "n", "c3"}, K: 527.5, Theta: []float64{2.5}}, `<Angle type1="c3" type2="n" type3="c3" angle="2.5" k="527.5"/>`},
		{ffconv.TorsionTerm{IDs: [4]string{"X", "c", "n", "X"}, Divider: 1, Terms: []ffconv.Fourier{{K: 0.5, Phase: 0, Periodicity: 3}}}, `<Proper type1="X" type2="c" type3="n" type4="X" periodicity1="3" phase1="0.0" k1="0.5"/>`},
		{ffconv.ImproperTerm{IDs: [4]string{"n", "c", "c3", "c3"}, Fourier: ffconv.Fourier{K: 4.5, Phase: 3.25, Periodicity: 2}}, `<Improper type1="n" type2="c" type3="c3" type4="c3" periodicity1="2" phase1="3.25" k1="4.5"/>`},
		{ffconv.NonbondedTerm{Type: "c3", Sigma: 0.25, Epsilon: 0.5}, `<Atom type="c3" charge="XXXX" sigma="0.25" epsilon="0.5"/>`},
	}
	for _, c := range cases {
		got, err := E.Emit(c.t)
		if err != nil {
			Te.Errorf("%s: %v", c.t.Kind(), err)
			continue
		}
		if got != c.want {
			Te.Errorf("%s:\nwant %s\ngot  %s", c.t.Kind(), c.want, got)
		}
	}
	E.ChargePlaceholder = "0.0"
	got, _ := E.Emit(ffconv.NonbondedTerm{Type: "hn"})
	if want := `<Atom type="hn" charge="0.0" sigma="0.0" epsilon="0.0"/>`; got != want {
		Te.Errorf("want %s got %s", want, got)
	}
	if _, err := E.Emit(ffconv.PiTorsionTerm{}); !errors.Is(err, ffconv.ErrUnsupported) {
		Te.Errorf("frcmod has no pi-torsions, but got %v", err)
	}
	if _, err := E.Emit(ffconv.AngleTerm{Theta: []float64{1, 2}}); !errors.Is(err, ffconv.ErrUnsupported) {
		Te.Errorf("frcmod angles have only one value, but got %v", err)
	}
}

func TestTinkerElements(Te *testing.T) {
	E := NewEmitter(ffconv.Tinker)
	cases := []struct {
		t    ffconv.Term
		want string
	}{
		{ffconv.BondTerm{IDs: [2]string{"6", "16"}, K: 142674.4, Length: 0.1112}, `<Bond class1="6" class2="16" length="0.111200" k="142674.40" />`},
		{ffconv.AngleTerm{IDs: [3]string{"53", "54", "54"}, K: 0.08819673447962114, Theta: []float64{114}, ThetaText: []string{"114.00"}}, `<Angle class1="53" class2="54" class3="54" k="8.819673448e-02" angle1="114.00" />`},
		{ffconv.StretchBendTerm{IDs: [3]string{"6", "7", "30"}, K1: 8.397826228895916, K2: 8.397826228895916}, `<StretchBend class1="6" class2="7" class3="30" k1="8.397826229e+00" k2="8.397826229e+00" />`},
		{ffconv.NonbondedTerm{Type: "26", Sigma: 0.38, Epsilon: 0.422584}, `<Vdw class="26" sigma="0.3800" epsilon="0.422584" reduction="1.0" />`},
		{ffconv.OutOfPlaneTerm{IDs: [4]string{"2", "1", "0", "0"}, K: 0.05314745415911517}, `<Angle class1="2" class2="1" class3="0" class4="0" k="5.314745416e-02"/>`},
		{ffconv.PiTorsionTerm{IDs: [2]string{"1", "3"}, K: 28.6604}, `<PiTorsion class1="1" class2="3" k="28.6604" />`},
		{ffconv.PolarizeTerm{Type: "253", Alpha: 0.00175, Thole: "0.3900", Groups: []string{"252", "254", "257"}}, `<Polarize type="253" polarizability="0.001750" thole="0.3900" pgrp1="252" pgrp2="254" pgrp3="257" />`},
		{ffconv.TorsionTerm{IDs: [4]string{"39", "1", "8", "8"}, Divider: 1, Terms: []ffconv.Fourier{{K: 2.054344, Periodicity: 1}, {K: 2.079448, Phase: 3.141592653589793, Periodicity: 2}}},
			`<Proper class1="39" class2="1" class3="8" class4="8"   k1="2.054344" phase1="0.000000000000" periodicity1="1"   k2="2.079448" phase2="3.141592653590" periodicity2="2" />`},
	}
	for _, c := range cases {
		got, err := E.Emit(c.t)
		if err != nil {
			Te.Errorf("%s: %v", c.t.Kind(), err)
			continue
		}
		if got != c.want {
			Te.Errorf("%s:\nwant %s\ngot  %s", c.t.Kind(), c.want, got)
		}
	}
	if _, err := E.Emit(ffconv.ImproperTerm{}); !errors.Is(err, ffconv.ErrUnsupported) {
		Te.Errorf("tinker has no impropers, but got %v", err)
	}
}

func TestMultipoleElement(Te *testing.T) {
	E := NewEmitter(ffconv.Tinker)
	M, err := ffconv.NewMultipole("189", []string{"190", "-191", "-191"}, 0.28761, [3]float64{0.5, 0, -0.25}, [6]float64{})
	if err != nil {
		Te.Fatal(err)
	}
	got, err := E.Emit(M)
	if err != nil {
		Te.Fatal(err)
	}
	want := `<Multipole type="189" kz="190" kx="-191" ky="-191" c0="0.287610" d1="5.000000000000e-01" d2="0.000000000000e+00" d3="-2.500000000000e-01"` +
		` q11="0.000000000000e+00" q21="0.000000000000e+00" q22="0.000000000000e+00" q31="0.000000000000e+00" q32="0.000000000000e+00" q33="0.000000000000e+00" />`
	if got != want {
		Te.Errorf("\nwant %s\ngot  %s", want, got)
	}
	M.Frame, M.KY = ffconv.ZThenX, ""
	got, _ = E.Emit(M)
	if want2 := `<Multipole type="189" kz="190" kx="-191" c0="0.287610"`; got[:len(want2)] != want2 {
		Te.Errorf("z-then-x multipole: got %s", got)
	}
}
