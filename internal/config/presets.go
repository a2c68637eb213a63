package config

// Presets maps a scenario name to the TrackerConfig that reproduces
// it, the way the teacher's Presets map picked a model's initial
// conditions. Each entry's System field is one of the system names
// internal/htsystems.Resolve recognizes; the two katsura5_* presets
// both use the katsura5 system.
var Presets = map[string]*TrackerConfig{
	"quadratic": func() *TrackerConfig {
		c := DefaultConfig()
		c.System = "quadratic"
		return c
	}(),
	"double_root": func() *TrackerConfig {
		c := DefaultConfig()
		c.System = "double_root"
		c.Embedding = "projective"
		return c
	}(),
	"diverging": func() *TrackerConfig {
		c := DefaultConfig()
		c.System = "diverging"
		c.Endgame.AtInfinityCheck = true
		return c
	}(),
	"katsura5_untightened": func() *TrackerConfig {
		c := DefaultConfig()
		c.System = "katsura5"
		c.Jump.Enabled = false
		return c
	}(),
	"katsura5_tightened": func() *TrackerConfig {
		c := DefaultConfig()
		c.System = "katsura5"
		c.Jump.Enabled = true
		return c
	}(),
}

func GetPreset(name string) *TrackerConfig {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	dup := *cfg
	return &dup
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
