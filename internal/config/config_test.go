package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "quadratic" {
		t.Errorf("expected system quadratic, got %s", cfg.System)
	}
	if cfg.Accuracy <= 0 {
		t.Error("accuracy should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsNonPositiveAccuracy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Accuracy = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for zero accuracy")
	}
}

func TestValidateRejectsMinStepSizeAboveInitial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinStepSize = cfg.InitialStepSize * 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error when min_step_size exceeds initial_step_size")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("double_root")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Embedding != "projective" {
		t.Errorf("expected projective embedding, got %s", cfg.Embedding)
	}

	// mutating the returned config must not mutate the map's copy.
	cfg.System = "mutated"
	if Presets["double_root"].System == "mutated" {
		t.Error("GetPreset should return an independent copy")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
}

func TestCoreOptionsAndPathOptionsProjectFields(t *testing.T) {
	cfg := DefaultConfig()
	core := cfg.CoreOptions()
	if core.Accuracy != cfg.Accuracy || core.MaxSteps != cfg.MaxSteps {
		t.Error("CoreOptions did not carry accuracy/max_steps through")
	}
	path := cfg.PathOptions()
	if path.MaxWindingNumber != cfg.Endgame.MaxWindingNumber {
		t.Error("PathOptions did not carry max_winding_number through")
	}
}
