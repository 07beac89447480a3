package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesOBJ(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dome.obj")
	require.NoError(t, run([]string{"-radius", "10", "-frequency", "2", "-out", out, "-verify"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# geodome\nv "))
	assert.Equal(t, 42, strings.Count(string(data), "\nv "))
	assert.Equal(t, 80, strings.Count(string(data), "\nf "))
}

func TestRunFormatFollowsExtension(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		args   []string
		file   string
		prefix string
	}{
		{args: []string{"-out", filepath.Join(dir, "a.stl")}, file: "a.stl", prefix: "solid geodome\n"},
		{args: []string{"-out", filepath.Join(dir, "b.DXF")}, file: "b.DXF", prefix: "0\nSECTION\n"},
		{args: []string{"-out", filepath.Join(dir, "c")}, file: "c", prefix: "ply\n"},
		{args: []string{"-out", filepath.Join(dir, "d.obj"), "-format", "ply"}, file: "d.obj", prefix: "ply\n"},
	}

	for _, tc := range testCases {
		require.NoError(t, run(tc.args), tc.file)
		data, err := os.ReadFile(filepath.Join(dir, tc.file))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), tc.prefix), tc.file)
	}
}

func TestRunConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dome.stl")
	cfg := filepath.Join(dir, "geodome.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
dome:
  radius: 2
  frequency: 1
output:
  file: `+filepath.Join(dir, "ignored.ply")+`
  format: stl
`), 0o644))

	require.NoError(t, run([]string{"-config", cfg, "-frequency", "3", "-precision", "-1", "-out", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 180, strings.Count(string(data), "facet normal"))
	_, err = os.Stat(filepath.Join(dir, "ignored.ply"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-format", "x3d", "-out", filepath.Join(dir, "a.x3d")}},
		{"bad radius", []string{"-radius", "-4", "-out", filepath.Join(dir, "b.ply")}},
		{"unknown flag", []string{"-colour", "red"}},
		{"collapsed mesh", []string{"-radius", "1", "-frequency", "8", "-precision", "0", "-verify", "-out", filepath.Join(dir, "c.ply")}},
	}
	for _, tc := range testCases {
		assert.Error(t, run(tc.args), tc.name)
	}
}
