package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueNames(t *testing.T) {
	require.NoError(t, UniqueNames([]string{"h2", "h2o", "benzene"}))
	err := UniqueNames([]string{"h2", "h2o", "h2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"h2"`)
}

func TestSetupAll(t *testing.T) {
	dir := t.TempDir()
	var jobs []*OrcaJob
	for _, name := range []string{"aa", "bb"} {
		j, err := NewOrcaJob(dir, name, h2(), DefaultParams())
		require.NoError(t, err)
		jobs = append(jobs, j)
	}
	require.NoError(t, SetupAll(jobs))
	for _, j := range jobs {
		_, err := os.Stat(j.InputFile())
		assert.NoError(t, err)
	}
}

func TestSetupAllError(t *testing.T) {
	dir := t.TempDir()
	// a regular file where the base directory should go
	blocked := dir + "/blocked"
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))
	j, err := NewOrcaJob(blocked, "aa", h2(), DefaultParams())
	require.NoError(t, err)
	require.Error(t, SetupAll([]*OrcaJob{j}))
}

// Results come back in submission order even when a slow job finishes
// last, and one failure never disturbs its siblings.
func TestRunAll(t *testing.T) {
	fakeEngine(t)
	dir := t.TempDir()
	var jobs []*OrcaJob
	for _, name := range []string{"aa", "bb slow", "cc blowup"} {
		j, err := NewOrcaJob(dir, name, h2(), DefaultParams())
		require.NoError(t, err)
		jobs = append(jobs, j)
	}
	require.NoError(t, SetupAll(jobs))
	results := RunAll(jobs, 3)
	require.Len(t, results, 3)

	assert.Equal(t, "aa", results[0].Name)
	require.NoError(t, results[0].Err)
	assert.Equal(t, -1.179570470279, results[0].Energies.SCF)

	assert.Equal(t, "bb_slow", results[1].Name)
	require.NoError(t, results[1].Err)
	assert.Equal(t, -2.5, results[1].Energies.SCF)

	assert.Equal(t, "cc_blowup", results[2].Name)
	require.ErrorIs(t, results[2].Err, ErrNotTerminated)
}

func TestRunAllDefaultWorkers(t *testing.T) {
	fakeEngine(t)
	j, err := NewOrcaJob(t.TempDir(), "aa", h2(), DefaultParams())
	require.NoError(t, err)
	require.NoError(t, j.Setup())
	results := RunAll([]*OrcaJob{j}, 0)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
}
