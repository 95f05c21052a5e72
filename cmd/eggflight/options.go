package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-flight/internal/assets"
	"github.com/vovakirdan/egg-flight/internal/config"
)

// options are the resolved process settings: flags override EGGFLIGHT_*
// variables, which override the defaults.
type options struct {
	Config     string
	Seed       int64
	FPS        int
	Difficulty config.DifficultyPreset
	Assets     string
	LogFile    string
	Debug      bool
}

// opts is filled in before any command runs.
var opts options

func resolveOptions(cmd *cobra.Command) (options, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return options{}, err
	}

	o := options{
		Config:  e.Config,
		Seed:    e.Seed,
		FPS:     e.FPS,
		Assets:  e.Assets,
		LogFile: e.LogFile,
		Debug:   e.Debug,
	}
	difficulty := e.Difficulty

	flags := cmd.Flags()
	if flags.Changed("config") {
		o.Config = flagConfig
	}
	if flags.Changed("seed") {
		o.Seed = flagSeed
	}
	if flags.Changed("fps") || o.FPS == 0 {
		o.FPS = flagFPS
	}
	if flags.Changed("difficulty") {
		difficulty = flagDifficulty
	}
	if flags.Changed("assets") {
		o.Assets = flagAssets
	}
	if flags.Changed("log-file") {
		o.LogFile = flagLogFile
	}
	if flags.Changed("debug") {
		o.Debug = flagDebug
	}

	if o.FPS <= 0 {
		return options{}, fmt.Errorf("fps must be positive, got %d", o.FPS)
	}
	o.Difficulty, err = config.ParsePreset(difficulty)
	if err != nil {
		return options{}, err
	}
	return o, nil
}

// loadGameConfig loads the game configuration and applies the difficulty preset.
func loadGameConfig(o options) (config.GameConfig, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, o.Difficulty)
	return cfg, nil
}

// loadGame loads the configuration and the asset catalog, fitting the floor
// to the loaded artwork.
func loadGame(o options) (config.GameConfig, *assets.Catalog, error) {
	cfg, err := loadGameConfig(o)
	if err != nil {
		return cfg, nil, err
	}

	catalog, err := assets.Load(o.Assets)
	if err != nil {
		return cfg, nil, err
	}
	cfg, err = catalog.FitConfig(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}
