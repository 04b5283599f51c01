package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the generator configuration.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Seed        uint64  `json:"seed"`  // 0 = draw a fresh seed at startup
	Noise       string  `json:"noise"` // "perlin" or "simplex"
	Scale       float64 `json:"scale"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
	Lacunarity  float64 `json:"lacunarity"`

	Falloff           bool    `json:"falloff"`
	FalloffA          float64 `json:"falloff_a"`
	FalloffB          float64 `json:"falloff_b"`
	FalloffMultiplier float64 `json:"falloff_multiplier"`

	SeaLevel float64 `json:"sea_level"`
	Workers  int     `json:"workers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:             500,
		Height:            500,
		Noise:             "perlin",
		Scale:             0.2,
		Octaves:           8,
		Persistence:       0.35,
		Lacunarity:        4.0,
		Falloff:           true,
		FalloffA:          2.0,
		FalloffB:          6.0,
		FalloffMultiplier: 0.7,
		SeaLevel:          0.0,
		Workers:           1,
	}
}

// Load reads a JSON config file. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["scale"] {
		cfg.Scale = fromFile.Scale
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["lacunarity"] {
		cfg.Lacunarity = fromFile.Lacunarity
	}
	if !explicitFlags["falloff"] {
		cfg.Falloff = fromFile.Falloff
	}
	if !explicitFlags["falloff-a"] {
		cfg.FalloffA = fromFile.FalloffA
	}
	if !explicitFlags["falloff-b"] {
		cfg.FalloffB = fromFile.FalloffB
	}
	if !explicitFlags["falloff-multiplier"] {
		cfg.FalloffMultiplier = fromFile.FalloffMultiplier
	}
	if !explicitFlags["sea-level"] {
		cfg.SeaLevel = fromFile.SeaLevel
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
}
