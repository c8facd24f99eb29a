package main

import (
	"fmt"
	"strings"
)

// elementSymbols[z] is the symbol for atomic number z. Index 0 is the
// dummy center Gaussian prints for ghost atoms.
var elementSymbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er",
	"Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = make(map[string]int)

func init() {
	for z, s := range elementSymbols {
		if z > 0 {
			atomicNumbers[s] = z
		}
	}
}

// Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, error) {
	if z < 1 || z >= len(elementSymbols) {
		return "", fmt.Errorf("no element with atomic number %d", z)
	}
	return elementSymbols[z], nil
}

// AtomicNumber is the inverse of Symbol. Case is normalized first, so the
// all-caps symbols some programs print still match.
func AtomicNumber(symbol string) (int, error) {
	if symbol == "" {
		return 0, fmt.Errorf("empty element symbol")
	}
	s := strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	z, ok := atomicNumbers[s]
	if !ok {
		return 0, fmt.Errorf("unrecognized element symbol %q", symbol)
	}
	return z, nil
}
