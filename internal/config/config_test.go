package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Units != "K" {
		t.Errorf("expected units K, got %s", cfg.Units)
	}
	if cfg.Format != "table" {
		t.Errorf("expected format table, got %s", cfg.Format)
	}
	if cfg.Curve.Points <= 0 {
		t.Error("curve points should be positive")
	}
	if cfg.Preferred.Tb != "" {
		t.Error("no method should be pinned by default")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chemprop.yaml")

	cfg := DefaultConfig()
	cfg.Units = "C"
	cfg.Preferred.Tb = "YAWS"
	cfg.Curve.Points = 120

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Units != "C" {
		t.Errorf("expected units C, got %s", loaded.Units)
	}
	if loaded.Preferred.Tb != "YAWS" {
		t.Errorf("expected pinned YAWS, got %q", loaded.Preferred.Tb)
	}
	if loaded.Curve.Points != 120 {
		t.Errorf("expected 120 points, got %d", loaded.Curve.Points)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("units: C\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Units != "C" {
		t.Errorf("expected units C, got %s", cfg.Units)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("unset format should keep default, got %s", cfg.Format)
	}
	if cfg.Curve.Points != DefaultCurvePoints {
		t.Errorf("unset points should keep default, got %d", cfg.Curve.Points)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("celsius")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Units != "C" {
		t.Errorf("expected units C, got %s", cfg.Units)
	}

	if GetPreset("nonexistent") != nil {
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
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestPreferredFor(t *testing.T) {
	p := PreferredConfig{Tb: "YAWS", Omega: "PSRK"}

	if got := p.For("tb"); got != "YAWS" {
		t.Errorf("For(tb) = %q", got)
	}
	if got := p.For("omega"); got != "PSRK" {
		t.Errorf("For(omega) = %q", got)
	}
	if got := p.For("tm"); got != "" {
		t.Errorf("For(tm) = %q, want empty", got)
	}
	if got := p.For("bogus"); got != "" {
		t.Errorf("For(bogus) = %q, want empty", got)
	}
}
