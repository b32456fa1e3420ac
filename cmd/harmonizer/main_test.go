package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testMapJSON = `{
	"patient_id": {
		"description": "Unique identifier for a patient.",
		"mapped_columns": [
			{"dataset": "trial_a.csv", "column": "PatientID"},
			{"dataset": "trial_b.csv", "column": "subject_id"}
		]
	},
	"treatment": {
		"description": "Administered treatment.",
		"mapped_columns": [
			{"dataset": "trial_b.csv", "column": "drug"}
		]
	}
}`

// writeFixtures lays out a map file and a data folder the manipulation
// commands can run against without any LLM.
func writeFixtures(t *testing.T) (mapPath, folder string) {
	t.Helper()
	dir := t.TempDir()

	mapPath = filepath.Join(dir, "map.json")
	require.NoError(t, os.WriteFile(mapPath, []byte(testMapJSON), 0644))

	folder = filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(folder, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "trial_a.csv"),
		[]byte("PatientID,Age\np1,34\np2,51\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "trial_b.csv"),
		[]byte("subject_id,drug\np1,cisplatin\np3,erlotinib\n"), 0644))
	return mapPath, folder
}

func TestSetupLogger(t *testing.T) {
	t.Run("rejects unknown level", func(t *testing.T) {
		err := newApp().Run([]string{"harmonizer", "--log-level", "verbose", "providers", "test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.String("log-level", level, "")
			err := setupLogger(cli.NewContext(newApp(), set, nil))
			assert.NoError(t, err, level)
		}
	})
}

func TestAnalyzeCommandRequiresFolder(t *testing.T) {
	err := newApp().Run([]string{"harmonizer", "analyze"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "folder")
}

func TestAnalyzeCommandFlagDefaults(t *testing.T) {
	app := newApp()
	var analyze *cli.Command
	for _, cmd := range app.Commands {
		if cmd.Name == "analyze" {
			analyze = cmd
			break
		}
	}
	require.NotNil(t, analyze)

	var outputFlag *cli.StringFlag
	for _, flag := range analyze.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == "output" {
			outputFlag = f
			break
		}
	}
	require.NotNil(t, outputFlag)
	assert.Equal(t, defaultMapFile, outputFlag.Value)
}

func TestUniqueValuesCommand(t *testing.T) {
	mapPath, folder := writeFixtures(t)

	err := newApp().Run([]string{"harmonizer", "unique-values", "--feature", "patient_id", mapPath, folder})
	assert.NoError(t, err)

	t.Run("feature flag is required", func(t *testing.T) {
		err := newApp().Run([]string{"harmonizer", "unique-values", mapPath, folder})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feature")
	})

	t.Run("unknown feature", func(t *testing.T) {
		err := newApp().Run([]string{"harmonizer", "unique-values", "--feature", "nope", mapPath, folder})
		assert.Error(t, err)
	})

	t.Run("missing arguments", func(t *testing.T) {
		err := newApp().Run([]string{"harmonizer", "unique-values", "--feature", "patient_id", mapPath})
		assert.Error(t, err)
	})
}

func TestMergeCommandWritesCSV(t *testing.T) {
	mapPath, folder := writeFixtures(t)
	out := filepath.Join(t.TempDir(), "merged.csv")

	err := newApp().Run([]string{"harmonizer", "merge", "--key", "patient_id", "--output", out, mapPath, folder})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "patient_id,treatment")
	assert.Contains(t, string(data), "p1,cisplatin")
	assert.Contains(t, string(data), "p3,erlotinib")
}

func TestFilterCommand(t *testing.T) {
	mapPath, folder := writeFixtures(t)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	err := newApp().Run([]string{
		"harmonizer", "filter",
		"--feature", "treatment", "--value", "cisplatin",
		"--key", "patient_id", "--output", out,
		mapPath, folder,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "p1,cisplatin")
	assert.NotContains(t, string(data), "erlotinib")
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "screen.csv")
	out := filepath.Join(dir, "cells.csv")
	require.NoError(t, os.WriteFile(in, []byte("CELL_LINE\nA549\nHeLa\n"), 0644))

	err := newApp().Run([]string{"harmonizer", "extract", "--column", "CELL_LINE", "--output", out, in})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "CELL_LINE\nA549\nHeLa\n", string(data))

	t.Run("requires input files", func(t *testing.T) {
		err := newApp().Run([]string{"harmonizer", "extract", "--column", "CELL_LINE", "--output", out})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input file")
	})
}
