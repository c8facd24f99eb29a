package main

import (
	"errors"
	"fmt"
)

var ErrSizeMismatch = errors.New("coordinates and elements are not the same size")

// Molecule is one chemical species: element symbols, a flat slice of xyz
// coordinates in angstroms (three per atom), and the total charge and
// spin multiplicity used in the calculation. The element and coordinate
// slices always agree in length; every mutation re-checks that.
type Molecule struct {
	elements []string
	coords   []float64
	Charge   int
	Mult     int
}

// NewMolecule builds a Molecule after checking that coords holds exactly
// three values per element. Charge defaults to 0, multiplicity to 1.
func NewMolecule(elements []string, coords []float64) (*Molecule, error) {
	if 3*len(elements) != len(coords) {
		return nil, fmt.Errorf("%w: %d elements, %d coordinates",
			ErrSizeMismatch, len(elements), len(coords))
	}
	return &Molecule{
		elements: append([]string(nil), elements...),
		coords:   append([]float64(nil), coords...),
		Mult:     1,
	}, nil
}

// FromAtomicNumbers is NewMolecule with atomic numbers in place of
// symbols.
func FromAtomicNumbers(nums []int, coords []float64) (*Molecule, error) {
	elements := make([]string, len(nums))
	for i, z := range nums {
		s, err := Symbol(z)
		if err != nil {
			return nil, err
		}
		elements[i] = s
	}
	return NewMolecule(elements, coords)
}

// NAtoms returns the number of atoms.
func (m *Molecule) NAtoms() int { return len(m.elements) }

// Elements returns a copy of the element symbols.
func (m *Molecule) Elements() []string {
	return append([]string(nil), m.elements...)
}

// Coords returns a copy of the flat coordinate slice.
func (m *Molecule) Coords() []float64 {
	return append([]float64(nil), m.coords...)
}

// SetElements replaces the element symbols. The replacement must agree
// with the current coordinates; on mismatch the molecule is untouched.
func (m *Molecule) SetElements(elements []string) error {
	if 3*len(elements) != len(m.coords) {
		return fmt.Errorf("%w: %d elements, %d coordinates",
			ErrSizeMismatch, len(elements), len(m.coords))
	}
	m.elements = append([]string(nil), elements...)
	return nil
}

// SetCoords replaces the coordinates, three per existing atom.
func (m *Molecule) SetCoords(coords []float64) error {
	if 3*len(m.elements) != len(coords) {
		return fmt.Errorf("%w: %d elements, %d coordinates",
			ErrSizeMismatch, len(m.elements), len(coords))
	}
	m.coords = append([]float64(nil), coords...)
	return nil
}

// XYZLines renders the coordinate block one atom per line: the symbol
// left-justified in 5 columns, then x, y, z each right-justified in 25
// columns with 6 decimals, joined by single spaces.
func (m *Molecule) XYZLines() []string {
	lines := make([]string, len(m.elements))
	for i, el := range m.elements {
		lines[i] = fmt.Sprintf("%-5s %25.6f %25.6f %25.6f",
			el, m.coords[3*i], m.coords[3*i+1], m.coords[3*i+2])
	}
	return lines
}
