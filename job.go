package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Errors raised while running jobs.
var (
	ErrNotTerminated = errors.New("no normal termination in output")
	ErrTimedOut      = errors.New("job timed out")
)

// OrcaJob is one single-point calculation in its own working directory
// under BaseDir. The name doubles as the directory name and the input
// and output file stems, so it is normalized on construction.
type OrcaJob struct {
	Name    string
	Mol     *Molecule
	Params  *OrcaParams
	BaseDir string
	Timeout time.Duration // 0 means no limit
}

// NewOrcaJob builds a job under basedir. The base directory is made
// absolute so the job stays valid no matter where the process later
// runs from.
func NewOrcaJob(basedir, name string, mol *Molecule, params *OrcaParams) (*OrcaJob, error) {
	abs, err := filepath.Abs(basedir)
	if err != nil {
		return nil, err
	}
	return &OrcaJob{
		Name:    NormalizeName(name),
		Mol:     mol,
		Params:  params,
		BaseDir: abs,
	}, nil
}

// Dir returns the job's working directory.
func (j *OrcaJob) Dir() string { return filepath.Join(j.BaseDir, j.Name) }

// InputFile returns the absolute path of the input deck.
func (j *OrcaJob) InputFile() string {
	return filepath.Join(j.Dir(), j.Name+".inp")
}

// OutputFile returns the absolute path of the captured engine output.
func (j *OrcaJob) OutputFile() string {
	return filepath.Join(j.Dir(), j.Name+".out")
}

// Setup creates the working directory if needed and writes the input
// deck. Repeat calls rewrite the same bytes, so a half-finished batch
// can be set up again safely.
func (j *OrcaJob) Setup() error {
	if err := os.MkdirAll(j.Dir(), 0755); err != nil {
		return fmt.Errorf("setting up %s: %w", j.Name, err)
	}
	input := MakeOrcaInput(j.Mol, j.Params)
	if err := os.WriteFile(j.InputFile(), []byte(input), 0644); err != nil {
		return fmt.Errorf("setting up %s: %w", j.Name, err)
	}
	return nil
}

// Complete reports whether the job already has a normally terminated
// output.
func (j *OrcaJob) Complete() bool { return Terminated(j.OutputFile()) }

// Run launches ORCA on the job's input with stdout and stderr captured
// in the output file. A job that is already Complete is skipped.
// Success is judged solely by the termination marker: a non-zero exit
// with the marker present still counts, a clean exit without it does
// not. A stale output without the marker is truncated and the job
// rerun.
func (j *OrcaJob) Run() error {
	if j.Complete() {
		logger.Info("already computed, skipping",
			zap.String("job", j.Name))
		return nil
	}
	out, err := os.Create(j.OutputFile())
	if err != nil {
		return fmt.Errorf("running %s: %w", j.Name, err)
	}
	ctx := context.Background()
	cancel := func() {}
	if j.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
	}
	defer cancel()
	cmd := exec.CommandContext(ctx, ORCA_CMD, j.InputFile())
	cmd.Dir = j.Dir()
	cmd.Stdout = out
	cmd.Stderr = out
	runErr := cmd.Run()
	if cerr := out.Close(); runErr == nil {
		runErr = cerr
	}
	if j.Complete() {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w after %s", j.Name, ErrTimedOut, j.Timeout)
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w: %v", j.Name, ErrNotTerminated, runErr)
	}
	return fmt.Errorf("%s: %w", j.Name, ErrNotTerminated)
}

// Energies parses the output of a Complete job.
func (j *OrcaJob) Energies() (Energies, error) {
	if !j.Complete() {
		return Energies{}, fmt.Errorf("%s: %w", j.Name, ErrNotTerminated)
	}
	data, err := ParseOrca(j.OutputFile())
	if err != nil {
		return Energies{}, err
	}
	return data.Energies, nil
}

// Cleanup removes the job's working directory and everything in it.
func (j *OrcaJob) Cleanup() error {
	return os.RemoveAll(j.Dir())
}
