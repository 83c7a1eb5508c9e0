package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run dispatches args with stdout captured.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	saved := stdout
	stdout = &buf
	defer func() { stdout = saved }()
	err := root().Dispatch(args)
	return buf.String(), err
}

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestMaze(t *testing.T) {
	path := writeInput(t, "#####\n#S..#\n#.#.#\n#..E#\n#####\n")
	out, err := run(t, "maze", "-in", path, "-turn", "0")
	require.NoError(t, err)
	assert.Equal(t, "score: 4\ntiles: 8\n", out)
}

func TestMaze_Metrics(t *testing.T) {
	path := writeInput(t, "#####\n#S.E#\n#####\n")
	out, err := run(t, "maze", "-in", path, "-metrics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "score: 2\ntiles: 3\n"), out)
	assert.Contains(t, out, `bestfirst_searches_total{outcome="found",solver="maze"} 1`)
	assert.Contains(t, out, `bestfirst_last_cost{solver="maze"} 2`)
}

func TestBytes(t *testing.T) {
	path := writeInput(t, "1,0\n1,1\n0,2\n1,2\n")
	out, err := run(t, "bytes", "-in", path, "-size", "2", "-fallen", "1")
	require.NoError(t, err)
	assert.Equal(t, "steps: 4\nblocker: 0,2\n", out)
}

func TestBytes_MetricsKeepIndexOutOfCostGauge(t *testing.T) {
	path := writeInput(t, "1,0\n1,1\n0,2\n1,2\n")
	out, err := run(t, "bytes", "-in", path, "-size", "2", "-fallen", "1", "-metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `bestfirst_last_cost{solver="bytes"} 4`)
	assert.NotContains(t, out, `bestfirst_last_cost{solver="bytes-blocking"}`)
	assert.Contains(t, out, `bestfirst_searches_total{outcome="found",solver="bytes-blocking"} 1`)
}

func TestRace(t *testing.T) {
	path := writeInput(t, "#####\n#S#E#\n#.#.#\n#...#\n#####\n")
	out, err := run(t, "race", "-in", path, "-radius", "2", "-min", "1")
	require.NoError(t, err)
	assert.Equal(t, "lap: 6\ncheats: 2\n", out)
}

func TestMissingInput(t *testing.T) {
	_, err := run(t, "race", "-in", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
