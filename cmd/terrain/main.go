package main

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"log/slog"
	"os"

	"github.com/OCharnyshevich/terrain-gen/internal/terrain/config"
	"github.com/OCharnyshevich/terrain-gen/internal/terrain/gen"
	"github.com/OCharnyshevich/terrain-gen/internal/terrain/world"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to JSON config file")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 = random)")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise algorithm: perlin or simplex")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "sampling scale relative to grid size")
	flag.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "number of noise octaves")
	flag.Float64Var(&cfg.Persistence, "persistence", cfg.Persistence, "amplitude decay per octave")
	flag.Float64Var(&cfg.Lacunarity, "lacunarity", cfg.Lacunarity, "frequency growth per octave")
	flag.BoolVar(&cfg.Falloff, "falloff", cfg.Falloff, "apply island edge falloff")
	flag.Float64Var(&cfg.FalloffA, "falloff-a", cfg.FalloffA, "falloff steepness exponent")
	flag.Float64Var(&cfg.FalloffB, "falloff-b", cfg.FalloffB, "falloff midpoint skew")
	flag.Float64Var(&cfg.FalloffMultiplier, "falloff-multiplier", cfg.FalloffMultiplier, "falloff strength in [0,1]")
	flag.Float64Var(&cfg.SeaLevel, "sea-level", cfg.SeaLevel, "elevation separating sea from land")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines for the grid sweep")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	seed := cfg.Seed
	if seed == 0 {
		s, err := freshSeed()
		if err != nil {
			log.Error("draw seed", "error", err)
			os.Exit(1)
		}
		seed = s
	}

	src, err := gen.NewSource(cfg.Noise)
	if err != nil {
		log.Error("select noise source", "error", err)
		os.Exit(1)
	}

	mgr, err := world.NewManager(seed, worldParameters(cfg), src, cfg.Workers, log)
	if err != nil {
		log.Error("generate world", "error", err)
		os.Exit(1)
	}

	w := mgr.Current()
	log.Info("world ready",
		"seed", w.Seed,
		"noise", cfg.Noise,
		"min", w.Elevation.Min,
		"max", w.Elevation.Max,
		"seaLevel", w.Params.SeaLevel,
		"landFraction", w.LandFraction(),
	)
}

// worldParameters maps the flat config onto the generation parameter set.
func worldParameters(cfg *config.Config) world.Parameters {
	p := world.Parameters{
		Width:  cfg.Width,
		Height: cfg.Height,
		Elevation: gen.NoiseParameters{
			Scale:       cfg.Scale,
			Octaves:     cfg.Octaves,
			Persistence: cfg.Persistence,
			Lacunarity:  cfg.Lacunarity,
		},
		SeaLevel: cfg.SeaLevel,
	}
	if cfg.Falloff {
		p.Falloff = &gen.FalloffParameters{
			A:          cfg.FalloffA,
			B:          cfg.FalloffB,
			Multiplier: cfg.FalloffMultiplier,
		}
	}
	return p
}

// freshSeed draws a 64-bit seed from the system RNG.
func freshSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
