package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Study != "boltzmann" {
		t.Errorf("expected default study boltzmann, got %s", cfg.Study)
	}
	if cfg.Rule != DefaultRule {
		t.Errorf("expected default rule %s, got %s", DefaultRule, cfg.Rule)
	}
	if cfg.Points != DefaultPoints {
		t.Errorf("expected %d points, got %d", DefaultPoints, cfg.Points)
	}
	if cfg.Params.Temperature != DefaultTemperature {
		t.Errorf("expected temperature %f, got %f", DefaultTemperature, cfg.Params.Temperature)
	}
}

func TestStudyConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.StudyConfig()

	if sc.Points != cfg.Points {
		t.Errorf("points not carried over: %d", sc.Points)
	}
	if sc.Temperature != cfg.Params.Temperature {
		t.Errorf("temperature not carried over: %f", sc.Temperature)
	}
	if sc.Emissivity != cfg.Params.Emissivity {
		t.Errorf("emissivity not carried over: %f", sc.Emissivity)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Study = "radiation"
	cfg.Params.Emissivity = 0.35
	cfg.Params.TempHigh = 2000

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Study != "radiation" {
		t.Errorf("expected study radiation, got %s", loaded.Study)
	}
	if loaded.Params.Emissivity != 0.35 {
		t.Errorf("expected emissivity 0.35, got %f", loaded.Params.Emissivity)
	}
	if loaded.Params.TempHigh != 2000 {
		t.Errorf("expected temp_high 2000, got %f", loaded.Params.TempHigh)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	data := []byte("study: maxwell\nparams:\n  mass_u: 4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Study != "maxwell" {
		t.Errorf("expected study maxwell, got %s", cfg.Study)
	}
	if cfg.Params.MassU != 4 {
		t.Errorf("expected mass_u 4, got %f", cfg.Params.MassU)
	}
	if cfg.Points != DefaultPoints {
		t.Errorf("unset points should default to %d, got %d", DefaultPoints, cfg.Points)
	}
	if cfg.Rule != DefaultRule {
		t.Errorf("unset rule should default to %s, got %s", DefaultRule, cfg.Rule)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("maxwell", "helium")
	if p == nil {
		t.Fatal("expected helium preset")
	}
	if p.Params.MassU != 4 {
		t.Errorf("expected helium mass 4 u, got %f", p.Params.MassU)
	}

	if GetPreset("maxwell", "nope") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("nope", "helium") != nil {
		t.Error("expected nil for unknown study")
	}
}

func TestPresetApplied(t *testing.T) {
	p := GetPreset("boltzmann", "cryo")
	if p == nil {
		t.Fatal("expected cryo preset")
	}

	cfg := p.Applied()

	if cfg.Params.Temperature != 77 {
		t.Errorf("expected preset temperature 77, got %f", cfg.Params.Temperature)
	}
	// fields the preset does not name fall back to defaults
	if cfg.Params.Emissivity != DefaultEmissivity {
		t.Errorf("expected default emissivity, got %f", cfg.Params.Emissivity)
	}
	if cfg.Params.MassU != DefaultMassU {
		t.Errorf("expected default mass, got %f", cfg.Params.MassU)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("radiation")
	if len(names) == 0 {
		t.Fatal("expected radiation presets")
	}

	found := false
	for _, n := range names {
		if n == "tungsten" {
			found = true
		}
	}
	if !found {
		t.Error("expected tungsten among radiation presets")
	}

	if ListPresets("nope") != nil {
		t.Error("expected nil for unknown study")
	}
}

func TestPresetsTargetRegisteredStudies(t *testing.T) {
	known := map[string]bool{
		"boltzmann": true, "maxwell": true, "entropy": true,
		"fraction": true, "radiation": true, "candidates": true,
	}
	for study, presets := range Presets {
		if !known[study] {
			t.Errorf("preset group for unknown study %s", study)
		}
		for name, p := range presets {
			if p.Study != study {
				t.Errorf("preset %s/%s names study %s", study, name, p.Study)
			}
		}
	}
}
