package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Row pairs one molecule's original energies with its refined ones.
// Either side may be missing: Original is nil when the source log never
// parsed, Refined is nil when the job failed. Err carries whichever
// failure applies.
type Row struct {
	Name     string
	Original *Energies
	Refined  *Energies
	Err      error
}

// Combine transplants the thermochemical corrections of the original
// calculation onto a refined electronic energy. Each correction is the
// gap between an original sum and the original SCF energy; adding it to
// the refined SCF energy gives the refined sum. Corrections the
// original never computed stay absent.
func Combine(original Energies, refinedSCF float64) Energies {
	ret := Energies{SCF: refinedSCF}
	if original.Enthalpy != nil {
		v := refinedSCF + (*original.Enthalpy - original.SCF)
		ret.Enthalpy = &v
	}
	if original.FreeEnergy != nil {
		v := refinedSCF + (*original.FreeEnergy - original.SCF)
		ret.FreeEnergy = &v
	}
	return ret
}

var reportHeader = strings.Join([]string{
	"Name",
	"Original SCF", "Original H", "Original G",
	"Refined SCF", "Refined H", "Refined G",
}, "\t")

// WriteReport renders one tab-separated row per job, in the order
// given, with every energy converted to unit. Missing values print as
// "-" so failed jobs stay visible. The whole report is buffered and
// written in one shot.
func WriteReport(path string, rows []Row, unit Unit) error {
	var buf bytes.Buffer
	buf.WriteString(reportHeader + "\n")
	for _, row := range rows {
		buf.WriteString(row.Name)
		for _, e := range []*Energies{row.Original, row.Refined} {
			if e == nil {
				buf.WriteString("\t-\t-\t-")
				continue
			}
			buf.WriteString("\t" + cell(&e.SCF, unit))
			buf.WriteString("\t" + cell(e.Enthalpy, unit))
			buf.WriteString("\t" + cell(e.FreeEnergy, unit))
		}
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// cell formats one energy value in unit, or "-" when absent.
func cell(v *float64, unit Unit) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f", Convert(*v, Hartree, unit))
}
