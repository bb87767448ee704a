package emwave

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config drives one animation run. It is read from JSON or YAML and may be
// overridden from the command line.
type Config struct {
	Duration     Real         `json:"duration" yaml:"duration"`
	FPS          int          `json:"fps" yaml:"fps"`
	Extent       []Real       `json:"extent" yaml:"extent"` // [start, stop] along x
	Points       int          `json:"points" yaml:"points"`
	Wavelength   Real         `json:"wavelength" yaml:"wavelength"`
	Amplitude    Real         `json:"amplitude" yaml:"amplitude"`
	Phase        Real         `json:"phase,omitempty" yaml:"phase,omitempty"`
	Medium       Medium       `json:"medium" yaml:"medium"`
	Polarization Polarization `json:"polarization" yaml:"polarization"`
	Compare      bool         `json:"compare,omitempty" yaml:"compare,omitempty"`
	Save         string       `json:"save,omitempty" yaml:"save,omitempty"`
	NoShow       bool         `json:"noShow,omitempty" yaml:"noShow,omitempty"`
	Listen       string       `json:"listen,omitempty" yaml:"listen,omitempty"`
	Width        int          `json:"width,omitempty" yaml:"width,omitempty"`
	Height       int          `json:"height,omitempty" yaml:"height,omitempty"`
}

// DefaultConfig returns a config with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Start and Stop of the sampled x range.
func (c *Config) Start() Real { return c.Extent[0] }
func (c *Config) Stop() Real  { return c.Extent[1] }

func (c *Config) applyDefaults() {
	if c.Duration <= 0 {
		c.Duration = Duration
	}
	if c.FPS == 0 {
		c.FPS = FPS
	}
	if len(c.Extent) == 0 {
		c.Extent = []Real{ExtentStart, ExtentStop}
	}
	if c.Points <= 0 {
		c.Points = Points
	}
	if c.Wavelength == 0 {
		c.Wavelength = Wavelength
	}
	if c.Amplitude == 0 {
		c.Amplitude = Amplitude
	}
	if c.Medium == (Medium{}) {
		c.Medium, _ = MediumByName(MediumName)
	}
	if c.Listen == "" {
		c.Listen = ListenAddr
	}
	if c.Width <= 0 {
		c.Width = ImageWidth
	}
	if c.Height <= 0 {
		c.Height = ImageHeight
	}
}

// LoadConfig reads a .json, .yaml or .yml file and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Extent) != 0 && len(cfg.Extent) != 2 {
		return nil, fmt.Errorf("%w: extent needs exactly [start, stop], got %v", ErrInvalidAnimation, cfg.Extent)
	}
	cfg.applyDefaults()
	DebugLog("Loaded config from %s: duration=%g fps=%d extent=%v points=%d medium=%s polarization=%s",
		path, cfg.Duration, cfg.FPS, cfg.Extent, cfg.Points, cfg.Medium, cfg.Polarization)
	return &cfg, nil
}
