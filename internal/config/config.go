package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/nucviz/internal/physics"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlpha2Max = 0.5
	DefaultCurvePts  = 200
	DefaultYMin      = -10.0
	DefaultYMax      = 10.0
	DefaultWidth     = 80
	DefaultHeight    = 15
	DefaultTheme     = "coolwarm"
)

type Config struct {
	Deformation DeformationConfig `yaml:"deformation" ini:"deformation"`
	Fission     FissionConfig     `yaml:"fission" ini:"fission"`
	Separation  SeparationConfig  `yaml:"separation" ini:"separation"`
	Output      OutputConfig      `yaml:"output" ini:"output"`
}

type DeformationConfig struct {
	L      int     `yaml:"l" ini:"l"`
	M      int     `yaml:"m" ini:"m"`
	Beta   float64 `yaml:"beta" ini:"beta"`
	R0     float64 `yaml:"r0" ini:"r0"`
	Points int     `yaml:"points" ini:"points"`
}

type FissionConfig struct {
	Mass      float64   `yaml:"mass" ini:"mass"`
	Ratios    []float64 `yaml:"ratios" ini:"ratios" delim:","`
	Alpha2Max float64   `yaml:"alpha2_max" ini:"alpha2_max"`
	Points    int       `yaml:"points" ini:"points"`
	Surface   float64   `yaml:"surface" ini:"surface"`
	Coulomb   float64   `yaml:"coulomb" ini:"coulomb"`
	YMin      float64   `yaml:"y_min" ini:"y_min"`
	YMax      float64   `yaml:"y_max" ini:"y_max"`
}

type SeparationConfig struct {
	// Table is a YAML binding-energy table; empty selects the embedded Sn chain.
	Table      string `yaml:"table" ini:"table"`
	ShellN     int    `yaml:"shell_n" ini:"shell_n"`
	Staggering bool   `yaml:"staggering" ini:"staggering"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir" ini:"dir"`
	Width  int    `yaml:"width" ini:"width"`
	Height int    `yaml:"height" ini:"height"`
	Theme  string `yaml:"theme" ini:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Deformation: DeformationConfig{
			L:      physics.DefaultL,
			M:      physics.DefaultM,
			Beta:   physics.DefaultBeta,
			R0:     physics.DefaultR0,
			Points: physics.DefaultPoints,
		},
		Fission: FissionConfig{
			Mass:      physics.DefaultFixedMass,
			Ratios:    append([]float64(nil), physics.DefaultRatios...),
			Alpha2Max: DefaultAlpha2Max,
			Points:    DefaultCurvePts,
			Surface:   physics.DefaultSurfaceCoeff,
			Coulomb:   physics.DefaultCoulombCoeff,
			YMin:      DefaultYMin,
			YMax:      DefaultYMax,
		},
		Separation: SeparationConfig{
			ShellN: physics.MagicN82,
		},
		Output: OutputConfig{
			Dir:    ".",
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Theme:  DefaultTheme,
		},
	}
}

// Load reads a YAML or INI file over the defaults, chosen by extension.
func Load(path string) (*Config, error) {
	log.WithField("path", path).Debug("loading config")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg":
		return loadINI(path)
	default:
		return loadYAML(path)
	}
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := file.MapTo(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) ShapeParams() physics.ShapeParams {
	return physics.ShapeParams{
		L:      c.Deformation.L,
		M:      c.Deformation.M,
		Beta:   c.Deformation.Beta,
		R0:     c.Deformation.R0,
		Points: c.Deformation.Points,
	}
}

func (c *Config) Coefficients() physics.Coefficients {
	return physics.Coefficients{Surface: c.Fission.Surface, Coulomb: c.Fission.Coulomb}
}

// BindingTable returns the configured table, falling back to the embedded one.
func (c *Config) BindingTable() (*physics.Table, error) {
	if c.Separation.Table == "" {
		return physics.TinTable(), nil
	}
	t, err := physics.LoadTable(c.Separation.Table)
	if err != nil {
		return nil, fmt.Errorf("binding table %s: %w", c.Separation.Table, err)
	}
	return t, nil
}

// ApplyPreset overwrites the deformation section with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	points := c.Deformation.Points
	c.Deformation = *p
	if points > 0 {
		c.Deformation.Points = points
	}
	return nil
}

// Set assigns a numeric setting by its dotted key, e.g. "deformation.beta"
// or "fission.mass".
func (c *Config) Set(key string, value float64) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("setting %q: want section.name", key)
	}
	switch section {
	case "deformation":
		p := c.ShapeParams()
		if err := p.SetParam(name, value); err != nil {
			return err
		}
		c.Deformation = DeformationConfig{L: p.L, M: p.M, Beta: p.Beta, R0: p.R0, Points: p.Points}
		return nil
	case "fission":
		switch name {
		case "mass":
			c.Fission.Mass = value
		case "alpha2_max":
			c.Fission.Alpha2Max = value
		case "points":
			c.Fission.Points = int(math.Round(value))
		case "surface":
			c.Fission.Surface = value
		case "coulomb":
			c.Fission.Coulomb = value
		case "y_min":
			c.Fission.YMin = value
		case "y_max":
			c.Fission.YMax = value
		default:
			return fmt.Errorf("unknown fission setting: %s", name)
		}
		return nil
	case "separation":
		if name != "shell_n" {
			return fmt.Errorf("unknown separation setting: %s", name)
		}
		c.Separation.ShellN = int(math.Round(value))
		return nil
	}
	return fmt.Errorf("unknown config section: %s", section)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Fission.Ratios = append([]float64(nil), c.Fission.Ratios...)
	return &out
}
