package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "go-gibbs",
	Short: "Transplant Gaussian thermochemistry onto refined ORCA energies",
	Long: `go-gibbs reads finished Gaussian opt+freq logs, reruns each final
geometry as an ORCA single point at a better level of theory, and
transplants the Gaussian thermal corrections onto the refined SCF
energies. The result is one tab-separated report with the original and
refined SCF, H, and G values for every molecule.

Example:
  go-gibbs -i 'logs/*.log' -o corrections.tsv
  go-gibbs -i benzene.log -i toluene.log -s water
  go-gibbs --config run.toml`,
	Version:       VERSION,
	SilenceErrors: true,
	RunE:          runMain,
}

var (
	flagInputs     []string
	flagOutput     string
	flagFunctional string
	flagBasisSet   string
	flagSolvent    string
	flagDispersion string
	flagCharge     int
	flagMult       int
	flagNProcs     int
	flagWorkers    int
	flagTimeout    time.Duration
	flagUnit       string
	flagOrca       string
	flagDir        string
	flagConfig     string
	flagClean      bool
	flagVerbose    bool
)

func init() {
	f := rootCmd.Flags()
	f.StringSliceVarP(&flagInputs, "input", "i", nil,
		"Gaussian log files to refine; repeatable, globs allowed")
	f.StringVarP(&flagOutput, "output", "o", "", "report file to write")
	f.StringVarP(&flagFunctional, "functional", "f", "",
		"DFT functional for the single points")
	f.StringVarP(&flagBasisSet, "basisset", "b", "", "basis set for all atoms")
	f.StringVarP(&flagSolvent, "solvent", "s", "",
		"solvent for the SMD model; default gas phase")
	f.StringVarP(&flagDispersion, "dispersion", "d", "",
		"dispersion correction keyword, such as D3BJ")
	f.IntVar(&flagCharge, "charge", 0, "force this charge on every molecule")
	f.IntVar(&flagMult, "mult", 0, "force this multiplicity on every molecule")
	f.IntVar(&flagNProcs, "nprocs", 0, "cores per ORCA process")
	f.IntVar(&flagWorkers, "workers", 0, "concurrent jobs; 0 means one per CPU")
	f.DurationVar(&flagTimeout, "timeout", 0,
		"wall-clock limit per job; 0 means none")
	f.StringVar(&flagUnit, "unit", "", "report unit: hartree, ev, or kcal/mol")
	f.StringVar(&flagOrca, "orca", "", "ORCA executable; overrides ORCA_BIN_DIR")
	f.StringVar(&flagDir, "dir", "", "base directory for job directories")
	f.StringVarP(&flagConfig, "config", "c", "", "run deck (TOML or YAML)")
	f.BoolVar(&flagClean, "clean", false,
		"remove the working directory of each successful job")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// runMain layers the command line over the run deck and defaults, then
// hands the merged configuration to the pipeline.
func runMain(cmd *cobra.Command, args []string) error {
	// past flag parsing, errors are the run's, not the user's syntax
	cmd.SilenceUsage = true
	if err := initLogger(flagVerbose); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	conf, err := LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := mergeFlags(cmd, &conf); err != nil {
		return err
	}
	// bare arguments count as inputs too
	conf.Inputs = append(conf.Inputs, args...)
	return runBatch(conf)
}

// mergeFlags copies every flag the user actually set into conf, so
// unset flags never clobber deck values.
func mergeFlags(cmd *cobra.Command, conf *Config) error {
	f := cmd.Flags()
	conf.Inputs = append(conf.Inputs, flagInputs...)
	if f.Changed("output") {
		conf.Output = flagOutput
	}
	if f.Changed("functional") {
		conf.Params.Functional = flagFunctional
	}
	if f.Changed("basisset") {
		conf.Params.BasisSet = flagBasisSet
	}
	if f.Changed("solvent") {
		conf.Params.Solvent = flagSolvent
	}
	if f.Changed("dispersion") {
		conf.Params.Dispersion = flagDispersion
	}
	if f.Changed("charge") {
		conf.Charge = &flagCharge
	}
	if f.Changed("mult") {
		conf.Mult = &flagMult
	}
	if f.Changed("nprocs") {
		conf.Params.NProcs = flagNProcs
	}
	if f.Changed("workers") {
		conf.Workers = flagWorkers
	}
	if f.Changed("timeout") {
		conf.Timeout = flagTimeout
	}
	if f.Changed("unit") {
		u, err := ParseUnit(flagUnit)
		if err != nil {
			return err
		}
		conf.Unit = u
	}
	if f.Changed("orca") {
		conf.Orca = flagOrca
	}
	if f.Changed("dir") {
		conf.Dir = flagDir
	}
	if f.Changed("clean") {
		conf.Clean = flagClean
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "go-gibbs: %v\n", err)
		os.Exit(1)
	}
}
