package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockCSV = `x,y
0,0
2,0
0,1
2,1
0,2
2,2
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func decode(t *testing.T, data []byte) report {
	t.Helper()
	var rep report
	require.NoError(t, json.Unmarshal(data, &rep))
	return rep
}

func TestRun_ReportToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "block.csv", blockCSV)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(t.Context(), []string{"-in", in}, &stdout, &stderr))

	rep := decode(t, stdout.Bytes())
	assert.Equal(t, 6, rep.Points)
	assert.Equal(t, 5, rep.Segments)
	assert.Equal(t, 9, rep.Cells)
	assert.Equal(t, 1, rep.Components4)
	assert.Equal(t, 1, rep.Components8)
	assert.Equal(t, 25, rep.Patterns)
	assert.Len(t, rep.NonZero, 25)
	assert.Len(t, rep.Histogram, 512)
	assert.Equal(t, 1, rep.Histogram[511])
	assert.Empty(t, rep.Matches)
}

func TestRun_Outputs(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "block.csv", blockCSV)
	cfg := writeFile(t, dir, "lbp.json", `{"workers": 3, "image_scale": 2, "log_level": "warn"}`)
	out := filepath.Join(dir, "report.json")
	png := filepath.Join(dir, "cells.png")
	chart := filepath.Join(dir, "hist.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-in", in, "-config", cfg, "-out", out, "-png", png, "-chart", chart}
	require.NoError(t, run(t.Context(), args, &stdout, &stderr))
	assert.Zero(t, stdout.Len())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 25, decode(t, data).Patterns)

	for _, p := range []string{png, chart} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
	}
}

func TestRun_StoreAndMatch(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "signatures.db")
	block := writeFile(t, dir, "block.csv", blockCSV)
	diag := writeFile(t, dir, "diag.csv", "0,0\n6,6\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(t.Context(), []string{"-in", block, "-db", db, "-label", "block"}, &stdout, &stderr))
	rep := decode(t, stdout.Bytes())
	assert.NotEmpty(t, rep.StoredID)

	stdout.Reset()
	require.NoError(t, run(t.Context(), []string{"-in", diag, "-db", db, "-label", "diag"}, &stdout, &stderr))

	stdout.Reset()
	require.NoError(t, run(t.Context(), []string{"-in", block, "-db", db, "-match"}, &stdout, &stderr))
	rep = decode(t, stdout.Bytes())
	require.Len(t, rep.Matches, 2)
	assert.Equal(t, "l1", rep.Metric)
	assert.Equal(t, "block", rep.Matches[0].Label)
	assert.Zero(t, rep.Matches[0].Distance)
	assert.Equal(t, "diag", rep.Matches[1].Label)
	assert.Empty(t, rep.StoredID)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "block.csv", blockCSV)
	bad := writeFile(t, dir, "bad.csv", "0,0\nNaN,2\n")
	huge := writeFile(t, dir, "huge.csv", "0,0\n1e15,0\n")

	cases := map[string][]string{
		"missing -in":      {},
		"unknown flag":     {"-in", in, "-nope"},
		"label without db": {"-in", in, "-label", "x"},
		"missing file":     {"-in", filepath.Join(dir, "none.csv")},
		"non-finite":       {"-in", bad},
		"huge segment":     {"-in", huge},
		"bad config":       {"-in", in, "-config", writeFile(t, dir, "c.json", `{"workers": 0}`)},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Error(t, run(t.Context(), args, &stdout, &stderr))
		})
	}
}

func TestWriteReport_File(t *testing.T) {
	rep := &report{Input: "walk.csv", Points: 3}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, writeReport(path, nil, rep))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, decode(t, data).Points)

	err = writeReport(filepath.Join(t.TempDir(), "missing", "report.json"), nil, rep)
	require.ErrorContains(t, err, "failed to create")

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	require.Error(t, writeReport("/dev/full", nil, rep))
}
