// Package config loads and saves visualizer settings from YAML and
// carries the compile-time defaults for simulation and window setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenzviz/internal/lorenz"
	"github.com/san-kum/lorenzviz/internal/session"
)

const (
	DefaultSigma         = 10.0
	DefaultRho           = 28.0
	DefaultBeta          = 8.0 / 3.0
	DefaultDt            = 0.01
	DefaultStepsPerFrame = 5
	DefaultMaxPoints     = 50000
	DefaultWindowWidth   = 1280
	DefaultWindowHeight  = 720
	DefaultFPS           = 60
)

type Config struct {
	Sigma         float64      `yaml:"sigma"`
	Rho           float64      `yaml:"rho"`
	Beta          float64      `yaml:"beta"`
	Dt            float64      `yaml:"dt"`
	StepsPerFrame int          `yaml:"steps_per_frame"`
	MaxPoints     int          `yaml:"max_points"`
	Seed          SeedConfig   `yaml:"seed"`
	Window        WindowConfig `yaml:"window"`
}

type SeedConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Sigma:         DefaultSigma,
		Rho:           DefaultRho,
		Beta:          DefaultBeta,
		Dt:            DefaultDt,
		StepsPerFrame: DefaultStepsPerFrame,
		MaxPoints:     DefaultMaxPoints,
		Seed:          SeedConfig{X: 0, Y: 1, Z: 0},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			FPS:    DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
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

// Session converts the file-level settings into a validated session
// config. Validation itself happens in session.New.
func (c *Config) Session() session.Config {
	return session.Config{
		Params:        lorenz.Params{Sigma: c.Sigma, Rho: c.Rho, Beta: c.Beta},
		Seed:          lorenz.State{X: c.Seed.X, Y: c.Seed.Y, Z: c.Seed.Z},
		Dt:            c.Dt,
		StepsPerFrame: c.StepsPerFrame,
		MaxPoints:     c.MaxPoints,
	}
}
