package main

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one job: its refined energies on success or
// the error that stopped it. Every submitted job yields exactly one
// Result, in submission order.
type Result struct {
	Name     string
	Energies Energies
	Err      error
}

// UniqueNames rejects batches in which two jobs would share a name and
// therefore a working directory.
func UniqueNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return fmt.Errorf("duplicate job name %q", n)
		}
		seen[n] = true
	}
	return nil
}

// SetupAll prepares the working directory of every job before anything
// runs. The first failure aborts: a directory that cannot be written is
// an environment problem, not a result.
func SetupAll(jobs []*OrcaJob) error {
	for _, j := range jobs {
		if err := j.Setup(); err != nil {
			return err
		}
		logger.Debug("set up job",
			zap.String("job", j.Name), zap.String("dir", j.Dir()))
	}
	return nil
}

// RunAll runs the jobs with at most workers engine processes alive at
// once; workers < 1 means one per CPU. Each worker writes only its own
// slot of the result slice, and a failing job never disturbs its
// siblings.
func RunAll(jobs []*OrcaJob, workers int) []Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	results := make([]Result, len(jobs))
	for i, j := range jobs {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, j *OrcaJob) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = runOne(j)
		}(i, j)
	}
	wg.Wait()
	return results
}

func runOne(j *OrcaJob) Result {
	start := time.Now()
	logger.Debug("starting job",
		zap.String("job", j.Name), zap.String("dir", j.Dir()))
	if err := j.Run(); err != nil {
		logger.Warn("job failed",
			zap.String("job", j.Name), zap.Error(err))
		return Result{Name: j.Name, Err: err}
	}
	energies, err := j.Energies()
	if err != nil {
		logger.Warn("job output unreadable",
			zap.String("job", j.Name), zap.Error(err))
		return Result{Name: j.Name, Err: err}
	}
	logger.Info("job finished",
		zap.String("job", j.Name),
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("scf", energies.SCF))
	return Result{Name: j.Name, Energies: energies}
}
