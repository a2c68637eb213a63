package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAccuracy          = 1e-7
	DefaultMaxCorrectorIters = 3
	DefaultMaxSteps          = 10_000
	DefaultInitialStepSize   = 0.1
	DefaultMinStepSize       = 1e-14
	DefaultMinValAccuracy    = 1e-3
	DefaultSamplesPerLoop    = 5
	DefaultMaxWindingNumber  = 12
)

// TrackerConfig is the YAML-serializable shape of everything a
// trackpath run needs to pick a system and tune the tracker: which
// scenario to run, which predictor/patch variant to use, and the
// core tracker's step-size and corrector tolerances.
type TrackerConfig struct {
	System    string `yaml:"system"`
	Predictor string `yaml:"predictor"`
	Embedding string `yaml:"embedding"`
	Seed      int64  `yaml:"seed"`

	Accuracy          float64 `yaml:"accuracy"`
	MaxCorrectorIters int     `yaml:"max_corrector_iters"`
	MaxSteps          int     `yaml:"max_steps"`
	InitialStepSize   float64 `yaml:"initial_step_size"`
	MinStepSize       float64 `yaml:"min_step_size"`
	UpdatePatch       bool    `yaml:"update_patch"`

	Endgame EndgameConfig `yaml:"endgame"`
	Jump    JumpConfig    `yaml:"jump"`
}

// EndgameConfig collects the Puiseux-valuation and Cauchy-loop
// parameters spec.md §4.6-§4.7 leaves as tracker options.
type EndgameConfig struct {
	AtInfinityCheck         bool    `yaml:"at_infinity_check"`
	MaxStepSizeEndgameStart float64 `yaml:"max_step_size_endgame_start"`
	MinValAccuracy          float64 `yaml:"min_val_accuracy"`
	SamplesPerLoop          int     `yaml:"samples_per_loop"`
	MaxWindingNumber        int     `yaml:"max_winding_number"`
	MaxAffineNorm           float64 `yaml:"max_affine_norm"`
}

// JumpConfig tunes the path-jumping detector's tighten-and-retrack
// mitigation loop (spec.md §4.9).
type JumpConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxAttempts   int     `yaml:"max_attempts"`
	AccuracyRatio float64 `yaml:"accuracy_ratio"`
}

func DefaultConfig() *TrackerConfig {
	return &TrackerConfig{
		System:    "quadratic",
		Predictor: "rk4",
		Embedding: "affine",

		Accuracy:          DefaultAccuracy,
		MaxCorrectorIters: DefaultMaxCorrectorIters,
		MaxSteps:          DefaultMaxSteps,
		InitialStepSize:   DefaultInitialStepSize,
		MinStepSize:       DefaultMinStepSize,
		UpdatePatch:       true,

		Endgame: EndgameConfig{
			AtInfinityCheck:         true,
			MaxStepSizeEndgameStart: 1e-8,
			MinValAccuracy:          DefaultMinValAccuracy,
			SamplesPerLoop:          DefaultSamplesPerLoop,
			MaxWindingNumber:        DefaultMaxWindingNumber,
			MaxAffineNorm:           1e6,
		},
		Jump: JumpConfig{
			Enabled:       true,
			Tolerance:     1e-6,
			MaxAttempts:   4,
			AccuracyRatio: 10,
		},
	}
}

func Load(path string) (*TrackerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *TrackerConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects a config whose numeric fields can't drive a
// tracker at all, mirroring the teacher's validateConfig gate on
// Dt/Duration before a run starts.
func (c *TrackerConfig) Validate() error {
	if c.Accuracy <= 0 {
		return fmt.Errorf("config: accuracy must be positive, got %g", c.Accuracy)
	}
	if c.MaxCorrectorIters <= 0 {
		return fmt.Errorf("config: max_corrector_iters must be positive, got %d", c.MaxCorrectorIters)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("config: max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.InitialStepSize <= 0 || c.InitialStepSize > 1 {
		return fmt.Errorf("config: initial_step_size must be in (0,1], got %g", c.InitialStepSize)
	}
	if c.MinStepSize <= 0 || c.MinStepSize >= c.InitialStepSize {
		return fmt.Errorf("config: min_step_size must be positive and below initial_step_size")
	}
	if c.Endgame.MaxWindingNumber <= 0 {
		return fmt.Errorf("config: endgame.max_winding_number must be positive, got %d", c.Endgame.MaxWindingNumber)
	}
	return nil
}
