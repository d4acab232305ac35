package config

import "sort"

// Presets are well-known parameter regimes of the Lorenz system.
var Presets = map[string]*Config{
	// The canonical butterfly.
	"classic": {
		Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0,
		Dt: 0.01, StepsPerFrame: 5, MaxPoints: 50000,
		Seed: SeedConfig{X: 0, Y: 1, Z: 0},
	},
	// Below the first pitchfork bifurcation (ρ<1): everything decays
	// to the origin.
	"stable": {
		Sigma: 10.0, Rho: 0.5, Beta: 8.0 / 3.0,
		Dt: 0.01, StepsPerFrame: 5, MaxPoints: 10000,
		Seed: SeedConfig{X: 1, Y: 1, Z: 1},
	},
	// Fixed-point regime between ρ=1 and the Hopf bifurcation: spirals
	// into one of the two wings.
	"spiral": {
		Sigma: 10.0, Rho: 14.0, Beta: 8.0 / 3.0,
		Dt: 0.01, StepsPerFrame: 5, MaxPoints: 20000,
		Seed: SeedConfig{X: 0, Y: 1, Z: 0},
	},
	// A stable periodic window embedded in the chaotic range.
	"periodic": {
		Sigma: 10.0, Rho: 99.65, Beta: 8.0 / 3.0,
		Dt: 0.005, StepsPerFrame: 8, MaxPoints: 30000,
		Seed: SeedConfig{X: 0, Y: 1, Z: 0},
	},
	// Strongly chaotic, large excursions.
	"wild": {
		Sigma: 10.0, Rho: 60.0, Beta: 8.0 / 3.0,
		Dt: 0.005, StepsPerFrame: 10, MaxPoints: 80000,
		Seed: SeedConfig{X: 0, Y: 1, Z: 0},
	},
}

// GetPreset returns the named preset, or nil if unknown. Window
// settings fall back to the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Window == (WindowConfig{}) {
		cfg.Window = DefaultConfig().Window
	}
	return &cfg
}

// ListPresets returns the preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
