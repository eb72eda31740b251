package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/experiment"
	"github.com/katalvlaran/hampath/graphio"
	"github.com/katalvlaran/hampath/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func writeGraph(t *testing.T, c builder.Constructor) string {
	t.Helper()
	g, err := builder.BuildGraph(nil, c)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, graphio.WriteFile(path, g))

	return path
}

func TestGenerate_Shape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.txt")
	_, err := execute(t, "generate", "5", "--shape", "cycle", "-o", path)
	require.NoError(t, err)

	g, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 5, g.Size())
}

func TestGenerate_RandomIsSeeded(t *testing.T) {
	a, err := execute(t, "generate", "8", "medium", "--seed", "4")
	require.NoError(t, err)
	b, err := execute(t, "generate", "8", "medium", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	g, err := graphio.Read(bytes.NewBufferString(a))
	require.NoError(t, err)
	assert.Equal(t, 8, g.Order())
}

func TestGenerate_Errors(t *testing.T) {
	_, err := execute(t, "generate", "8")
	assert.Error(t, err, "density required")
	_, err = execute(t, "generate", "8", "thick")
	assert.ErrorIs(t, err, experiment.ErrUnknownDensity)
	_, err = execute(t, "generate", "5", "--shape", "blob")
	assert.Error(t, err)
	_, err = execute(t, "generate", "five", "dense")
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	path := writeGraph(t, builder.Cycle(4))

	out, err := execute(t, "analyze", path, "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph(n=4, m=4), 1 component(s)")
	assert.Contains(t, out, "[backtracking]")
	assert.Contains(t, out, "[heuristic]")
	assert.Contains(t, out, "result:  found")
	assert.Contains(t, out, "trace:")
	assert.Contains(t, out, "solution")

	out, err = execute(t, "analyze", path, "-a", "bt")
	require.NoError(t, err)
	assert.NotContains(t, out, "[heuristic]")
	assert.NotContains(t, out, "trace:")
}

func TestAnalyze_NoPath(t *testing.T) {
	out, err := execute(t, "analyze", writeGraph(t, builder.Empty(3)), "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "graph is disconnected")
	assert.Contains(t, out, "no path found")
	assert.Contains(t, out, "alloc:")

	out, err = execute(t, "analyze", writeGraph(t, builder.Star(5)), "--trace", "--trace-limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "truncated after 3 events")
}

func TestPrintTrace_StopsWhenContextDone(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.CompleteBipartite(6, 8))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err = printTrace(ctx, &out, g, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "stopped after 0 events")

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	out.Reset()
	err = printTrace(ctx, &out, g, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, out.String(), "stopped after")
	assert.NotContains(t, out.String(), "fail", "the search never finished")
}

func TestAnalyze_Errors(t *testing.T) {
	path := writeGraph(t, builder.Path(3))
	_, err := execute(t, "analyze", path, "-a", "dfs")
	assert.Error(t, err)

	_, err = execute(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExperiment(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out.csv")
	out, err := execute(t, "experiment", "6", "dense", "-r", "3", "--seed", "7", "-o", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "n=6 density=dense (p=0.8) repetitions=3")
	assert.Contains(t, out, "Exact Rate")
	assert.Contains(t, out, "stored batches: 1\n")

	rows := readCSV(t, csvPath)
	require.Len(t, rows, 4)
	assert.Equal(t, experiment.Header, rows[0])
	assert.Equal(t, "6", rows[1][0])
	assert.Equal(t, "dense", rows[1][1])

	_, err = execute(t, "experiment", "6", "thick")
	assert.ErrorIs(t, err, experiment.ErrUnknownDensity)
	_, err = execute(t, "experiment", "6", "dense", "-r", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBatch_RedisAndMetrics(t *testing.T) {
	mr := miniredis.RunT(t)
	csvPath := filepath.Join(t.TempDir(), "sweep.csv")

	out, err := execute(t, "batch",
		"--sizes", "4,5",
		"--densities", "sparse",
		"-r", "1",
		"-o", csvPath,
		"--redis-addr", mr.Addr(),
		"--metrics-addr", "127.0.0.1:0",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "results written to")
	assert.Len(t, readCSV(t, csvPath), 3)

	index, err := mr.List("hampath:index")
	require.NoError(t, err)
	assert.Len(t, index, 2)
	assert.Contains(t, out, "stored batches: 2\n")
	for _, id := range index {
		assert.Contains(t, out, "  "+id+"\n")
	}
}

func TestBatch_UnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := execute(t, "batch", "--sizes", "4", "--densities", "dense", "-r", "1", "--redis-addr", addr)
	assert.Error(t, err)
}

func TestBatch_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cfg.csv")
	cfgPath := filepath.Join(dir, "hampath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"sizes: [4]\ndensities: [dense]\nrepetitions: 2\noutput: "+csvPath+"\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "batch")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, csvPath), 3)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "batch"})
	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
