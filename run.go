package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// task carries one input log through the pipeline.
type task struct {
	name string
	file string
	data *LogData
	job  *OrcaJob
	err  error
}

// expandInputs resolves the input patterns against the filesystem,
// preserving first-seen order and dropping duplicates. A pattern that
// matches nothing passes through literally, so a missing file fails
// later with a useful error instead of vanishing from the report.
func expandInputs(patterns []string) ([]string, error) {
	var (
		ret  []string
		seen = make(map[string]bool)
	)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			ret = append(ret, p)
		}
	}
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", pat, err)
		}
		if len(matches) == 0 {
			add(pat)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}
	return ret, nil
}

// gatherInputs resolves the run deck's explicit job list and the input
// patterns into one ordered task list with unique names.
func gatherInputs(conf Config) ([]task, error) {
	var tasks []task
	for _, js := range conf.Jobs {
		if js.File == "" {
			return nil, fmt.Errorf("job entry with no file")
		}
		name := js.Name
		if name == "" {
			name = JobName(js.File)
		} else {
			name = NormalizeName(name)
		}
		tasks = append(tasks, task{name: name, file: js.File})
	}
	files, err := expandInputs(conf.Inputs)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		tasks = append(tasks, task{name: JobName(f), file: f})
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.name
	}
	if err := UniqueNames(names); err != nil {
		return nil, err
	}
	return tasks, nil
}

// runBatch executes the whole workflow: parse the source logs, set up
// and run one ORCA job per molecule, transplant the thermochemical
// corrections onto the refined energies, and write the report. A log
// that cannot be parsed or a job that fails costs only its own row;
// runBatch returns an error when any row failed, but only after the
// report is on disk.
func runBatch(conf Config) error {
	if conf.Orca != "" {
		ORCA_CMD = conf.Orca
	}
	log := logger.With(zap.String("run_id", uuid.NewString()))

	tasks, err := gatherInputs(conf)
	if err != nil {
		return err
	}
	log.Info("starting batch",
		zap.Int("molecules", len(tasks)),
		zap.String("functional", conf.Params.Functional),
		zap.String("basis", conf.Params.BasisSet))

	var jobs []*OrcaJob
	for i := range tasks {
		t := &tasks[i]
		t.data, t.err = ParseGaussian(t.file)
		if t.err != nil {
			log.Warn("skipping unreadable log",
				zap.String("file", t.file), zap.Error(t.err))
			continue
		}
		mol, err := t.data.Molecule()
		if err != nil {
			t.err = err
			log.Warn("skipping log with bad geometry",
				zap.String("file", t.file), zap.Error(err))
			continue
		}
		if conf.Charge != nil {
			mol.Charge = *conf.Charge
		}
		if conf.Mult != nil {
			mol.Mult = *conf.Mult
		}
		job, err := NewOrcaJob(conf.Dir, t.name, mol, &conf.Params)
		if err != nil {
			return err
		}
		job.Timeout = conf.Timeout
		t.job = job
		jobs = append(jobs, job)
	}
	if err := SetupAll(jobs); err != nil {
		return err
	}
	results := RunAll(jobs, conf.Workers)

	rows := make([]Row, len(tasks))
	var next int
	for i := range tasks {
		t := &tasks[i]
		if t.job == nil {
			rows[i] = Row{Name: t.name, Err: t.err}
			continue
		}
		res := results[next]
		next++
		orig := t.data.Energies
		row := Row{Name: t.job.Name, Original: &orig}
		if res.Err != nil {
			row.Err = res.Err
		} else {
			refined := Combine(orig, res.Energies.SCF)
			row.Refined = &refined
		}
		rows[i] = row
	}
	if err := WriteReport(conf.Output, rows, conf.Unit); err != nil {
		return err
	}
	sum := Summarize(rows, conf.Unit)
	log.Info("batch finished",
		zap.Int("jobs", sum.Jobs),
		zap.Int("failed", sum.Failed),
		zap.Float64("rmsd", sum.RMSD),
		zap.Float64("max_shift", sum.Max),
		zap.String("unit", conf.Unit.String()),
		zap.String("report", conf.Output))
	if conf.Clean {
		for i := range tasks {
			t := &tasks[i]
			if t.job == nil || rows[i].Err != nil {
				continue
			}
			if err := t.job.Cleanup(); err != nil {
				log.Warn("cleanup failed",
					zap.String("job", t.job.Name), zap.Error(err))
			}
		}
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", sum.Failed, sum.Jobs)
	}
	return nil
}
