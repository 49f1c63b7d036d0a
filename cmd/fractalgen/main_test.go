package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-antares/fractal-generator/render/rendertest"
)

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &stdout, &stderr))
	assert.Equal(t, "generators: identity, koch, peak, square\npolygons: line, square, triangle\n", stdout.String())
}

func TestRunWritesOutput(t *testing.T) {
	rendertest.RegisterSVG(t)
	out := filepath.Join(t.TempDir(), "snowflake.svg")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-shape", "triangle", "-generator", "koch", "-n", "2", "-o", out}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// 1 + 3·4² points
	assert.Equal(t, 48, strings.Count(string(data), " L"))
	assert.Contains(t, stderr.String(), "wrote fractal")
	assert.Contains(t, stderr.String(), "points=49")
}

func TestRunIdentityManyGenerations(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	out := filepath.Join(dir, "line.png")
	require.NoError(t, run([]string{"-generator", "identity", "-n", "100", "-size", "64", "-o", out}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "generation=100")
	assert.Contains(t, stderr.String(), "points=2")

	err := run([]string{"-generator", "identity", "-n", "2000000000", "-o", out}, &stdout, &stderr)
	assert.ErrorContains(t, err, "invalid number of generations")
}

func TestRunAllGenerations(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run([]string{"-n", "2", "-all", "-size", "64", "-o", filepath.Join(dir, "f.png")}, &stdout, &stderr)
	require.NoError(t, err)
	for _, name := range []string{"f-0.png", "f-1.png", "f-2.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestRunCatalogFile(t *testing.T) {
	rendertest.RegisterSVG(t)
	dir := t.TempDir()
	cat := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(cat, []byte("generators:\n  tent: [[0, 0], [0.5, 0.5], [1, 0]]\n"), 0o644))

	out := filepath.Join(dir, "tent.svg")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-catalog", cat, "-generator", "tent", "-n", "3", "-o", out}, &stdout, &stderr))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(data), " L"))
}

func TestRunWarnsDegenerateEdges(t *testing.T) {
	dir := t.TempDir()
	cat := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(cat, []byte("polygons:\n  stutter: [[0, 0], [0, 0], [1, 0]]\n"), 0o644))

	var stdout, stderr bytes.Buffer
	args := []string{"-catalog", cat, "-shape", "stutter", "-n", "1", "-size", "64", "-o", filepath.Join(dir, "f.png")}
	require.NoError(t, run(args, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "level=WARN")
	assert.Contains(t, stderr.String(), "edges=1")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	for name, args := range map[string][]string{
		"unknown shape":     {"-shape", "hexagon"},
		"unknown generator": {"-generator", "dragon"},
		"too many points":   {"-n", "20", "-max-points", "1000"},
		"negative n":        {"-n", "-1"},
		"too many n":        {"-n", "101"},
		"bad extension":     {"-o", filepath.Join(dir, "f.gif")},
		"missing catalog":   {"-catalog", filepath.Join(dir, "missing.yaml")},
		"bad flag":          {"-bogus"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Error(t, run(args, &stdout, &stderr), name)
	}
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, "out/f-3.png", numbered("out/f.png", 3))
	assert.Equal(t, "f-0", numbered("f", 0))
}
