package main

import (
	"fmt"
	"strings"
)

// Energies are carried in hartrees internally and converted only for
// display.
const (
	// kcal/mol per hartree, from
	// http://www.ilpi.com/msds/ref/energyunits.html
	KCALHT = 627.5091809
	// eV per hartree, CODATA 2018:
	// https://physics.nist.gov/cgi-bin/cuu/Value?hrev
	EVHT = 27.211386245988
)

// Unit is an energy unit for report output.
type Unit int

const (
	Hartree Unit = iota
	ElectronVolt
	KcalPerMol
)

// perHartree[u] is how many u make up one hartree.
var perHartree = map[Unit]float64{
	Hartree:      1,
	ElectronVolt: EVHT,
	KcalPerMol:   KCALHT,
}

func (u Unit) String() string {
	switch u {
	case Hartree:
		return "hartree"
	case ElectronVolt:
		return "eV"
	case KcalPerMol:
		return "kcal/mol"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps the unit spellings accepted on the command line and in
// run decks to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hartree", "hartrees", "eh", "au":
		return Hartree, nil
	case "ev":
		return ElectronVolt, nil
	case "kcal", "kcal/mol", "kcalmol":
		return KcalPerMol, nil
	}
	return 0, fmt.Errorf("unrecognized energy unit %q", s)
}

// Convert converts v between energy units by table lookup.
func Convert(v float64, from, to Unit) float64 {
	return v / perHartree[from] * perHartree[to]
}
