package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors shared by the log parsers.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrEnergyNotFound   = errors.New("energy not found in log file")
	ErrGeometryNotFound = errors.New("geometry not found in log file")
)

// Energies holds the energy values extracted from one calculation log,
// in hartrees. SCF is present in any parseable log; Enthalpy and
// FreeEnergy stay nil for calculations without thermochemistry.
type Energies struct {
	SCF        float64
	Enthalpy   *float64
	FreeEnergy *float64
}

// LogData is everything a finished calculation log yields: the last
// printed geometry, the charge and multiplicity, and the energies.
type LogData struct {
	AtomNums []int
	Coords   []float64 // flat, three per atom
	Charge   int
	Mult     int
	Energies Energies
}

// Molecule converts the parsed geometry into a Molecule.
func (d *LogData) Molecule() (*Molecule, error) {
	m, err := FromAtomicNumbers(d.AtomNums, d.Coords)
	if err != nil {
		return nil, err
	}
	m.Charge = d.Charge
	m.Mult = d.Mult
	return m, nil
}

// ParseGaussian extracts the final geometry and energies from a Gaussian
// log file. The geometry comes from the last "Standard orientation"
// block and the SCF energy from the last "SCF Done" line, so a combined
// opt+freq log yields the optimized structure. The thermal enthalpy and
// free energy sums are kept when present. Charge and multiplicity
// default to 0 and 1 if the log never states them.
func ParseGaussian(filename string) (*LogData, error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	defer r.Close()
	ret := &LogData{Mult: 1}
	var (
		haveSCF bool
		inGeom  bool
		skip    int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, "Standard orientation:"):
			ret.AtomNums = ret.AtomNums[:0]
			ret.Coords = ret.Coords[:0]
			inGeom = true
			skip = 4
		case inGeom && skip > 0:
			skip--
		case inGeom:
			if strings.Contains(line, "-----") {
				inGeom = false
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 6 {
				return nil, fmt.Errorf("%s: malformed orientation line %q", filename, line)
			}
			z, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s: bad atomic number in %q: %w", filename, line, err)
			}
			ret.AtomNums = append(ret.AtomNums, z)
			for _, f := range fields[3:6] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: bad coordinate in %q: %w", filename, line, err)
				}
				ret.Coords = append(ret.Coords, v)
			}
		case strings.Contains(line, "SCF Done"):
			fields := strings.Fields(line)
			if len(fields) < 5 {
				return nil, fmt.Errorf("%s: malformed SCF line %q", filename, line)
			}
			v, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad SCF energy in %q: %w", filename, line, err)
			}
			ret.Energies.SCF = v
			haveSCF = true
		case strings.Contains(line, "Sum of electronic and thermal Enthalpies="):
			v, err := lastFloat(line)
			if err != nil {
				return nil, fmt.Errorf("%s: bad enthalpy in %q: %w", filename, line, err)
			}
			ret.Energies.Enthalpy = &v
		case strings.Contains(line, "Sum of electronic and thermal Free Energies="):
			v, err := lastFloat(line)
			if err != nil {
				return nil, fmt.Errorf("%s: bad free energy in %q: %w", filename, line, err)
			}
			ret.Energies.FreeEnergy = &v
		case strings.Contains(line, "Charge =") &&
			strings.Contains(line, "Multiplicity ="):
			fields := strings.Fields(line)
			if len(fields) >= 6 {
				if c, err := strconv.Atoi(fields[2]); err == nil {
					ret.Charge = c
				}
				if m, err := strconv.Atoi(fields[5]); err == nil {
					ret.Mult = m
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(ret.AtomNums) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGeometryNotFound, filename)
	}
	if !haveSCF {
		return nil, fmt.Errorf("%w: %s", ErrEnergyNotFound, filename)
	}
	return ret, nil
}

// lastFloat parses the last whitespace-separated field of line.
func lastFloat(line string) (float64, error) {
	fields := strings.Fields(line)
	return strconv.ParseFloat(fields[len(fields)-1], 64)
}
