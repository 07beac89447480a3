package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/smasonuk/geodome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geodome.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 10.0, s.Dome.Radius)
	assert.Equal(t, 2, s.Dome.Frequency)
	assert.Equal(t, 4, s.Dome.Precision)
}

func TestLoadWithoutFile(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	s, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
dome:
  frequency: 5
output:
  file: out/sphere.stl
placement:
  position: [1, 2, 3]
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, s.Dome.Radius)
	assert.Equal(t, 5, s.Dome.Frequency)
	assert.Equal(t, 4, s.Dome.Precision)
	assert.Equal(t, "out/sphere.stl", s.Output.File)
	assert.Equal(t, "", s.Output.Format)
	assert.Equal(t, "stl", s.FormatName())
	assert.Equal(t, [3]float64{1, 2, 3}, s.Placement.Position)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeSettings(t, "dome: [radius")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	s := Default()
	s.Dome.Radius = 2.5
	data, err := s.Marshal()
	require.NoError(t, err)

	loaded, err := Load(writeSettings(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"zero radius", func(s *Settings) { s.Dome.Radius = 0 }},
		{"NaN radius", func(s *Settings) { s.Dome.Radius = math.NaN() }},
		{"infinite radius", func(s *Settings) { s.Dome.Radius = math.Inf(1) }},
		{"zero frequency", func(s *Settings) { s.Dome.Frequency = 0 }},
		{"precision too fine", func(s *Settings) { s.Dome.Precision = geodome.MaxPrecision + 1 }},
		{"no output file", func(s *Settings) { s.Output.File = "" }},
	}
	for _, tc := range testCases {
		s := Default()
		tc.mutate(&s)
		assert.Error(t, s.Validate(), tc.name)
	}

	s := Default()
	s.Dome.Precision = -1
	assert.NoError(t, s.Validate())
}

func TestFormatName(t *testing.T) {
	testCases := []struct {
		file   string
		format string
		want   string
	}{
		{file: "dome.obj", want: "obj"},
		{file: "out/dome.STL", want: "STL"},
		{file: "dome", want: "ply"},
		{file: "dome.obj", format: "dxf", want: "dxf"},
	}
	for _, tc := range testCases {
		s := Default()
		s.Output.File = tc.file
		s.Output.Format = tc.format
		assert.Equal(t, tc.want, s.FormatName(), tc.file)
	}
	assert.Equal(t, "ply", Default().FormatName())
}
