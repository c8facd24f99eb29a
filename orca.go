package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OrcaNormalTerm marks a successful run in an ORCA output file.
const OrcaNormalTerm = "****ORCA TERMINATED NORMALLY****"

// ORCA_CMD is the command used to launch ORCA, resolved from
// ORCA_BIN_DIR when that is set. Tests swap in a fake script.
var ORCA_CMD = orcaCmd()

func orcaCmd() string {
	if dir := os.Getenv("ORCA_BIN_DIR"); dir != "" {
		return filepath.Join(dir, "orca")
	}
	return "orca"
}

func scfType(mol *Molecule) string {
	if mol.Mult > 1 {
		return "UKS"
	}
	return "RKS"
}

// MakeOrcaHead assembles the keyword and resource lines of a
// single-point input: the level of theory with an RIJCOSX setup and the
// matching auxiliary bases, then the parallelism block.
func MakeOrcaHead(mol *Molecule, p *OrcaParams) []string {
	kws := []string{"!", scfType(mol), p.Functional}
	if p.Dispersion != "" {
		kws = append(kws, p.Dispersion)
	}
	kws = append(kws, p.BasisSet, p.BasisSet+"/c", "def2/j",
		"tightscf", "rijcosx")
	return []string{
		strings.Join(kws, " "),
		"",
		fmt.Sprintf("%%pal nprocs %d end", p.NProcs),
		"",
	}
}

// MakeSolvation emits the SMD implicit-solvent block.
func MakeSolvation(solvent string) []string {
	return []string{
		"! CPCM",
		"%cpcm",
		"smd True",
		fmt.Sprintf("SMDSolvent %q", solvent),
		"end",
	}
}

// MakeGeom emits the inline xyz block with the molecule's charge and
// multiplicity.
func MakeGeom(mol *Molecule) []string {
	lines := []string{fmt.Sprintf("* xyz %d %d", mol.Charge, mol.Mult)}
	lines = append(lines, mol.XYZLines()...)
	return append(lines, "*")
}

// MakeOrcaInput builds the complete input deck. The solvation block,
// when requested, sits between the header and the geometry. The same
// molecule and parameters always produce identical bytes.
func MakeOrcaInput(mol *Molecule, p *OrcaParams) string {
	lines := MakeOrcaHead(mol, p)
	if p.Solvent != "" {
		lines = append(lines, MakeSolvation(p.Solvent)...)
		lines = append(lines, "")
	}
	lines = append(lines, MakeGeom(mol)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Terminated reports whether the file at path exists and contains the
// normal-termination marker. It is the sole judge of job completion.
func Terminated(path string) bool {
	lines, err := ReadFile(path)
	if err != nil {
		return false
	}
	for _, line := range lines {
		if strings.Contains(line, OrcaNormalTerm) {
			return true
		}
	}
	return false
}

// ParseOrca extracts the converged electronic energy, the optional
// thermochemistry, and the printed geometry from an ORCA output file.
// The last occurrence wins for each, as in ParseGaussian.
func ParseOrca(filename string) (*LogData, error) {
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
		case strings.Contains(line, "CARTESIAN COORDINATES (ANGSTROEM)"):
			ret.AtomNums = ret.AtomNums[:0]
			ret.Coords = ret.Coords[:0]
			inGeom = true
			skip = 1
		case inGeom && skip > 0:
			skip--
		case inGeom:
			fields := strings.Fields(line)
			if len(fields) < 4 {
				inGeom = false
				continue
			}
			z, err := AtomicNumber(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			ret.AtomNums = append(ret.AtomNums, z)
			for _, f := range fields[1:4] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: bad coordinate in %q: %w",
						filename, line, err)
				}
				ret.Coords = append(ret.Coords, v)
			}
		case strings.Contains(line, "FINAL SINGLE POINT ENERGY"):
			v, err := lastFloat(line)
			if err != nil {
				return nil, fmt.Errorf("%s: bad energy in %q: %w",
					filename, line, err)
			}
			ret.Energies.SCF = v
			haveSCF = true
		case strings.Contains(line, "Total Enthalpy"):
			v, err := ehValue(line)
			if err != nil {
				return nil, fmt.Errorf("%s: bad enthalpy in %q: %w",
					filename, line, err)
			}
			ret.Energies.Enthalpy = &v
		case strings.Contains(line, "Final Gibbs free energy"):
			v, err := ehValue(line)
			if err != nil {
				return nil, fmt.Errorf("%s: bad free energy in %q: %w",
					filename, line, err)
			}
			ret.Energies.FreeEnergy = &v
		case strings.Contains(line, "Total Charge"):
			if v, err := strconv.Atoi(lastField(line)); err == nil {
				ret.Charge = v
			}
		case strings.HasPrefix(strings.TrimSpace(line), "Multiplicity"):
			if v, err := strconv.Atoi(lastField(line)); err == nil {
				ret.Mult = v
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

// ehValue parses the "<value> Eh" tail ORCA prints on thermochemistry
// lines.
func ehValue(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[len(fields)-1] != "Eh" {
		return 0, fmt.Errorf("no Eh value in %q", line)
	}
	return strconv.ParseFloat(fields[len(fields)-2], 64)
}

func lastField(line string) string {
	fields := strings.Fields(line)
	return fields[len(fields)-1]
}
