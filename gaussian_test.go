package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseGaussian(t *testing.T) {
	got, err := ParseGaussian("testfiles/h2o_opt.log")
	if err != nil {
		t.Fatalf("ParseGaussian failed: %v\n", err)
	}
	if want := []int{8, 1, 1}; !reflect.DeepEqual(got.AtomNums, want) {
		t.Errorf("got %v, wanted %v\n", got.AtomNums, want)
	}
	// the geometry must come from the last orientation block
	want := []float64{
		0.000000, 0.000000, 0.119262,
		0.000000, 0.763239, -0.477047,
		0.000000, -0.763239, -0.477047,
	}
	if !reflect.DeepEqual(got.Coords, want) {
		t.Errorf("got %v, wanted %v\n", got.Coords, want)
	}
	// and the energy from the last SCF Done line
	if want := -76.4089533974; got.Energies.SCF != want {
		t.Errorf("got %v, wanted %v\n", got.Energies.SCF, want)
	}
	if got.Energies.Enthalpy == nil {
		t.Fatalf("missing enthalpy\n")
	}
	if want := -76.383999; *got.Energies.Enthalpy != want {
		t.Errorf("got %v, wanted %v\n", *got.Energies.Enthalpy, want)
	}
	if got.Energies.FreeEnergy == nil {
		t.Fatalf("missing free energy\n")
	}
	if want := -76.405420; *got.Energies.FreeEnergy != want {
		t.Errorf("got %v, wanted %v\n", *got.Energies.FreeEnergy, want)
	}
	if got.Charge != 0 || got.Mult != 1 {
		t.Errorf("got %v %v, wanted 0 1\n", got.Charge, got.Mult)
	}
}

func TestParseGaussianGzip(t *testing.T) {
	got, err := ParseGaussian("testfiles/h2o_opt.log.gz")
	if err != nil {
		t.Fatalf("ParseGaussian failed: %v\n", err)
	}
	if want := -76.4089533974; got.Energies.SCF != want {
		t.Errorf("got %v, wanted %v\n", got.Energies.SCF, want)
	}
}

// A plain single-point log has no thermochemistry to carry over.
func TestParseGaussianNoThermo(t *testing.T) {
	got, err := ParseGaussian("testfiles/h2.log")
	if err != nil {
		t.Fatalf("ParseGaussian failed: %v\n", err)
	}
	if want := -1.17853935898; got.Energies.SCF != want {
		t.Errorf("got %v, wanted %v\n", got.Energies.SCF, want)
	}
	if got.Energies.Enthalpy != nil || got.Energies.FreeEnergy != nil {
		t.Errorf("got %v %v, wanted nil nil\n",
			got.Energies.Enthalpy, got.Energies.FreeEnergy)
	}
}

func TestParseGaussianNoSCF(t *testing.T) {
	_, err := ParseGaussian("testfiles/noscf.log")
	if !errors.Is(err, ErrEnergyNotFound) {
		t.Errorf("got %v, wanted %v\n", err, ErrEnergyNotFound)
	}
}

// A log cut off mid-write can leave an SCF Done line with no value.
func TestParseGaussianTruncatedSCF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.log")
	cont := `                         Standard orientation:
 ---------------------------------------------------------------------
 Center     Atomic      Atomic             Coordinates (Angstroms)
 Number     Number       Type             X           Y           Z
 ---------------------------------------------------------------------
      1          1           0        0.000000    0.000000    0.371572
      2          1           0        0.000000    0.000000   -0.371572
 ---------------------------------------------------------------------
 SCF Done:  E(RB3LYP)
`
	if err := os.WriteFile(path, []byte(cont), 0644); err != nil {
		t.Fatalf("writing fixture failed: %v\n", err)
	}
	_, err := ParseGaussian(path)
	if err == nil {
		t.Fatalf("got nil, wanted an error\n")
	}
	if !strings.Contains(err.Error(), "malformed SCF line") ||
		!strings.Contains(err.Error(), path) {
		t.Errorf("got %q, wanted a malformed SCF error naming %s\n", err, path)
	}
}

func TestParseGaussianNoGeom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nogeom.log")
	cont := ` SCF Done:  E(RB3LYP) =  -1.17853935898     A.U. after    6 cycles
`
	if err := os.WriteFile(path, []byte(cont), 0644); err != nil {
		t.Fatalf("writing fixture failed: %v\n", err)
	}
	_, err := ParseGaussian(path)
	if !errors.Is(err, ErrGeometryNotFound) {
		t.Errorf("got %v, wanted %v\n", err, ErrGeometryNotFound)
	}
}

func TestParseGaussianMissing(t *testing.T) {
	_, err := ParseGaussian("testfiles/nonexistent.log")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("got %v, wanted %v\n", err, ErrFileNotFound)
	}
}

func TestLogDataMolecule(t *testing.T) {
	data, err := ParseGaussian("testfiles/h2o_opt.log")
	if err != nil {
		t.Fatalf("ParseGaussian failed: %v\n", err)
	}
	mol, err := data.Molecule()
	if err != nil {
		t.Fatalf("Molecule failed: %v\n", err)
	}
	if got, want := mol.Elements(), []string{"O", "H", "H"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if mol.Charge != 0 || mol.Mult != 1 {
		t.Errorf("got %v %v, wanted 0 1\n", mol.Charge, mol.Mult)
	}
}
