package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/geodome"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Dome      DomeSettings      `yaml:"dome"`
	Output    OutputSettings    `yaml:"output"`
	Placement PlacementSettings `yaml:"placement"`
}

type DomeSettings struct {
	Radius    float64 `yaml:"radius"`
	Frequency int     `yaml:"frequency"`
	// Precision is the weld key precision in decimal digits. A negative
	// value picks the coarsest safe precision for the radius and frequency.
	Precision int `yaml:"precision"`
}

// OutputSettings names the exported file. An empty Format is taken from the
// file extension.
type OutputSettings struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Verify bool   `yaml:"verify"`
}

// PlacementSettings positions the dome in the exported file. Rotation is in
// degrees about X, Y and Z.
type PlacementSettings struct {
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"`
}

func Default() Settings {
	return Settings{
		Dome: DomeSettings{
			Radius:    10,
			Frequency: 2,
			Precision: 4,
		},
		Output: OutputSettings{
			File: "dome.ply",
		},
	}
}

// Load reads a YAML settings file over the defaults. Keys missing from the
// file keep their default values. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("could not read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("error parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the generator would refuse. It does not check
// whether the precision suits the radius and frequency.
func (s Settings) Validate() error {
	if math.IsNaN(s.Dome.Radius) || math.IsInf(s.Dome.Radius, 0) || s.Dome.Radius <= 0 {
		return fmt.Errorf("dome.radius must be positive, got %v", s.Dome.Radius)
	}
	if s.Dome.Frequency < 1 {
		return fmt.Errorf("dome.frequency must be at least 1, got %d", s.Dome.Frequency)
	}
	if s.Dome.Precision > geodome.MaxPrecision {
		return fmt.Errorf("dome.precision must be at most %d, got %d", geodome.MaxPrecision, s.Dome.Precision)
	}
	if s.Output.File == "" {
		return errors.New("output.file must be set")
	}
	return nil
}

// FormatName is the output format to write: Output.Format when set, else the
// extension of Output.File, else ply.
func (s Settings) FormatName() string {
	if s.Output.Format != "" {
		return s.Output.Format
	}
	if ext := strings.TrimPrefix(filepath.Ext(s.Output.File), "."); ext != "" {
		return ext
	}
	return "ply"
}

func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
