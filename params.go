package main

// OrcaParams collects the level-of-theory settings shared read-only by
// every job in a batch.
type OrcaParams struct {
	Functional string
	BasisSet   string
	Solvent    string // empty: gas phase
	Dispersion string // empty: none; otherwise e.g. "D3BJ", "D4"
	NProcs     int    // cores per ORCA process
}

// Defaults used when neither flags nor the run deck say otherwise.
const (
	DefaultFunctional = "wB97M-V"
	DefaultBasisSet   = "Def2-TZVPP"
	DefaultNProcs     = 4
)

func DefaultParams() *OrcaParams {
	return &OrcaParams{
		Functional: DefaultFunctional,
		BasisSet:   DefaultBasisSet,
		NProcs:     DefaultNProcs,
	}
}
