package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// RawConf is the run deck as the user writes it. Zero values mean "not
// set" so defaults and flags can fill them in; Charge and Multiplicity
// are pointers because 0 and 1 are meaningful values.
type RawConf struct {
	Functional   string    `toml:"functional" yaml:"functional"`
	BasisSet     string    `toml:"basisset" yaml:"basisset"`
	Solvent      string    `toml:"solvent" yaml:"solvent"`
	Dispersion   string    `toml:"dispersion" yaml:"dispersion"`
	Charge       *int      `toml:"charge" yaml:"charge"`
	Multiplicity *int      `toml:"multiplicity" yaml:"multiplicity"`
	NProcs       int       `toml:"nprocs" yaml:"nprocs"`
	Workers      int       `toml:"workers" yaml:"workers"`
	Timeout      string    `toml:"timeout" yaml:"timeout"`
	Unit         string    `toml:"unit" yaml:"unit"`
	Orca         string    `toml:"orca" yaml:"orca"`
	Dir          string    `toml:"dir" yaml:"dir"`
	Output       string    `toml:"output" yaml:"output"`
	Inputs       []string  `toml:"inputs" yaml:"inputs"`
	Jobs         []JobSpec `toml:"jobs" yaml:"jobs"`
	Clean        bool      `toml:"clean" yaml:"clean"`
}

// JobSpec names one input log explicitly, with an optional report name
// overriding the file stem.
type JobSpec struct {
	File string `toml:"file" yaml:"file"`
	Name string `toml:"name" yaml:"name"`
}

// Config is the validated form of RawConf that the pipeline consumes.
type Config struct {
	Params  OrcaParams
	Charge  *int // forced charge for every molecule; nil: per-log
	Mult    *int // likewise for multiplicity
	Workers int
	Timeout time.Duration
	Unit    Unit
	Orca    string
	Dir     string
	Output  string
	Inputs  []string
	Jobs    []JobSpec
	Clean   bool
}

func (rc RawConf) ToConfig() (Config, error) {
	conf := Config{
		Params: OrcaParams{
			Functional: rc.Functional,
			BasisSet:   rc.BasisSet,
			Solvent:    rc.Solvent,
			Dispersion: rc.Dispersion,
			NProcs:     rc.NProcs,
		},
		Charge:  rc.Charge,
		Mult:    rc.Multiplicity,
		Workers: rc.Workers,
		Orca:    rc.Orca,
		Dir:     rc.Dir,
		Output:  rc.Output,
		Inputs:  rc.Inputs,
		Jobs:    rc.Jobs,
		Clean:   rc.Clean,
	}
	if rc.Timeout != "" {
		d, err := time.ParseDuration(rc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("bad timeout %q: %w", rc.Timeout, err)
		}
		conf.Timeout = d
	}
	unit, err := ParseUnit(rc.Unit)
	if err != nil {
		return Config{}, err
	}
	conf.Unit = unit
	return conf, nil
}

// defaultConf carries the built-in defaults. A run deck overrides it
// field by field, and command-line flags override both.
func defaultConf() RawConf {
	return RawConf{
		Functional: DefaultFunctional,
		BasisSet:   DefaultBasisSet,
		NProcs:     DefaultNProcs,
		Unit:       "kcal/mol",
		Dir:        ".",
		Output:     "gibbs.tsv",
	}
}

// LoadConfig reads a run deck in TOML or YAML, picked by extension,
// with the defaults filled in for anything the deck leaves out. An
// empty filename yields the defaults alone.
func LoadConfig(filename string) (Config, error) {
	rc := defaultConf()
	if filename == "" {
		return rc.ToConfig()
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading run deck: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(cont, &rc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(cont, &rc)
	default:
		return Config{}, fmt.Errorf("unrecognized run deck format %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return rc.ToConfig()
}
