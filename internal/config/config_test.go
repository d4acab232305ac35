package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sigma != 10.0 || cfg.Rho != 28.0 {
		t.Errorf("expected classic parameters, got sigma=%v rho=%v", cfg.Sigma, cfg.Rho)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.MaxPoints < 1 {
		t.Error("max points should be at least 1")
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("window size should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Rho = 99.65
	cfg.MaxPoints = 123
	cfg.Seed.Y = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Rho != 99.65 {
		t.Errorf("expected rho 99.65, got %v", loaded.Rho)
	}
	if loaded.MaxPoints != 123 {
		t.Errorf("expected max points 123, got %v", loaded.MaxPoints)
	}
	if loaded.Seed.Y != 2.5 {
		t.Errorf("expected seed y 2.5, got %v", loaded.Seed.Y)
	}
}

// Fields missing from the file keep their defaults.
func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("rho: 14.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Rho != 14.0 {
		t.Errorf("expected rho 14, got %v", cfg.Rho)
	}
	if cfg.Sigma != DefaultSigma {
		t.Errorf("expected default sigma, got %v", cfg.Sigma)
	}
	if cfg.Window.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %v", cfg.Window.FPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSessionConversion(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.Session()

	if sc.Params.Sigma != cfg.Sigma || sc.Params.Rho != cfg.Rho || sc.Params.Beta != cfg.Beta {
		t.Error("parameters not carried over")
	}
	if sc.Seed.Y != cfg.Seed.Y {
		t.Error("seed not carried over")
	}
	if sc.Dt != cfg.Dt || sc.MaxPoints != cfg.MaxPoints {
		t.Error("stepping settings not carried over")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rho != 28.0 {
		t.Errorf("expected rho 28, got %v", cfg.Rho)
	}
	if cfg.Window.Width == 0 {
		t.Error("preset should fall back to default window settings")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

// Every preset must be a runnable configuration.
func TestPresetsAreValidSessions(t *testing.T) {
	for name := range Presets {
		cfg := GetPreset(name)
		sc := cfg.Session()
		if !sc.Params.Valid() {
			t.Errorf("preset %s has invalid parameters", name)
		}
		if sc.Dt <= 0 || sc.MaxPoints < 1 || sc.StepsPerFrame < 1 {
			t.Errorf("preset %s has invalid stepping settings", name)
		}
	}
}
