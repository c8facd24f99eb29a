package main

import (
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{
			v:    1.0,
			from: Hartree,
			to:   KcalPerMol,
			want: KCALHT,
		},
		{
			v:    KCALHT,
			from: KcalPerMol,
			to:   Hartree,
			want: 1.0,
		},
		{
			v:    2.0,
			from: Hartree,
			to:   ElectronVolt,
			want: 2 * EVHT,
		},
		{
			v:    -76.5,
			from: Hartree,
			to:   Hartree,
			want: -76.5,
		},
	}
	for _, test := range tests {
		got := Convert(test.v, test.from, test.to)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		s    string
		want Unit
		ok   bool
	}{
		{s: "hartree", want: Hartree, ok: true},
		{s: "Eh", want: Hartree, ok: true},
		{s: "au", want: Hartree, ok: true},
		{s: "eV", want: ElectronVolt, ok: true},
		{s: "kcal/mol", want: KcalPerMol, ok: true},
		{s: " KCAL ", want: KcalPerMol, ok: true},
		{s: "joule", ok: false},
		{s: "", ok: false},
	}
	for _, test := range tests {
		got, err := ParseUnit(test.s)
		if test.ok && err != nil {
			t.Errorf("ParseUnit(%q) failed: %v\n", test.s, err)
			continue
		}
		if !test.ok {
			if err == nil {
				t.Errorf("ParseUnit(%q) did not fail\n", test.s)
			}
			continue
		}
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestUnitString(t *testing.T) {
	tests := []struct {
		u    Unit
		want string
	}{
		{u: Hartree, want: "hartree"},
		{u: ElectronVolt, want: "eV"},
		{u: KcalPerMol, want: "kcal/mol"},
	}
	for _, test := range tests {
		got := test.u.String()
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}
