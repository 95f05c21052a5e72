package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-flight/internal/assets"
	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

// parsedCommand returns a command carrying the global flags, parsed from args.
// The flag variables are package globals, so they are restored afterwards.
func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd)
	t.Cleanup(func() {
		flagConfig, flagSeed, flagFPS = "", 0, 60
		flagDifficulty, flagAssets, flagLogFile, flagDebug = "", "", "", false
	})
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestResolveOptionsDefaults(t *testing.T) {
	o, err := resolveOptions(parsedCommand(t))
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if o.FPS != 60 || o.Seed != 0 || o.Difficulty != "" || o.Debug {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestResolveOptionsEnvAndFlags(t *testing.T) {
	t.Setenv("EGGFLIGHT_SEED", "11")
	t.Setenv("EGGFLIGHT_FPS", "30")
	t.Setenv("EGGFLIGHT_DIFFICULTY", "hard")
	t.Setenv("EGGFLIGHT_LOG_FILE", "/tmp/egg.log")

	o, err := resolveOptions(parsedCommand(t, "--seed", "5", "--debug"))
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}

	if o.Seed != 5 {
		t.Errorf("Seed = %d, flag should win over env", o.Seed)
	}
	if o.FPS != 30 {
		t.Errorf("FPS = %d, expected env value 30", o.FPS)
	}
	if o.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", o.Difficulty)
	}
	if o.LogFile != "/tmp/egg.log" {
		t.Errorf("LogFile = %q", o.LogFile)
	}
	if !o.Debug {
		t.Error("Debug should be set by the flag")
	}
}

func TestResolveOptionsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown difficulty", []string{"--difficulty", "insane"}},
		{"zero fps", []string{"--fps", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveOptions(parsedCommand(t, tt.args...)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadGameConfigAppliesPreset(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadGameConfig(options{Difficulty: config.DifficultyEasy})
	if err != nil {
		t.Fatalf("loadGameConfig() error: %v", err)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("easy preset should enable progression")
	}

	_, err = loadGameConfig(options{Config: "/does/not/exist.yaml"})
	if err == nil {
		t.Error("missing config file should fail")
	}
}

func TestLoadGameFitsFloorToAssets(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, catalog, err := loadGame(options{})
	if err != nil {
		t.Fatalf("loadGame() error: %v", err)
	}
	if catalog.Dir != "" || cfg.Field.FloorHeight != config.DefaultGameConfig().Field.FloorHeight {
		t.Errorf("without assets: dir=%q floor=%d", catalog.Dir, cfg.Field.FloorHeight)
	}

	_, _, err = loadGame(options{Assets: "/does/not/exist"})
	if !errors.Is(err, assets.ErrResourceLoad) {
		t.Errorf("missing asset dir: error = %v, expected ErrResourceLoad", err)
	}
}

func newSimGame(cfg config.GameConfig) *flight.Game {
	g := flight.New(cfg)
	rc := core.DefaultConfig()
	rc.Seed = 1
	g.Reset(rc)
	return g
}

func TestSimulateStopsAtFirstGameOver(t *testing.T) {
	res := simulate(newSimGame(config.DefaultGameConfig()), 1000, 0, false)

	// Without flapping the egg reaches the floor on tick 83
	if res.Ticks != 83 {
		t.Errorf("Ticks = %d, expected 83", res.Ticks)
	}
	if res.Phase != flight.PhaseGameOver || res.Runs != 1 || res.Grounded != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Flaps != 0 {
		t.Errorf("Flaps = %d, expected none", res.Flaps)
	}
}

func TestSimulateRestarts(t *testing.T) {
	res := simulate(newSimGame(config.DefaultGameConfig()), 500, 0, true)

	// Each run lasts 83 ticks plus one tick to restart
	if res.Ticks != 500 {
		t.Errorf("Ticks = %d, expected 500", res.Ticks)
	}
	if res.Runs != 5 {
		t.Errorf("Runs = %d, expected 5", res.Runs)
	}
}

func TestSimulateFlaps(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.MinGapSlot = 0
	cfg.Obstacles.MaxGapSlot = 0

	res := simulate(newSimGame(cfg), 300, 1, false)
	if res.Flaps != 300 {
		t.Errorf("Flaps = %d, expected 300", res.Flaps)
	}
	if res.Score != 3 || res.Phase != flight.PhasePlaying {
		t.Errorf("Score=%d Phase=%v, expected 3 points and still playing", res.Score, res.Phase)
	}
}

func TestPrintSimResult(t *testing.T) {
	var buf bytes.Buffer
	printSimResult(&buf, 42, simResult{Ticks: 10, Phase: flight.PhaseGameOver, Score: 2, Best: 3, Runs: 1, Collided: 1})

	out := buf.String()
	for _, want := range []string{"Seed:      42", "Phase:     game over", "Runs:      1 (pipe 1, floor 0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOpenSessionLog(t *testing.T) {
	l, closeFn, err := openSessionLog("", false)
	if err != nil || l == nil {
		t.Fatalf("openSessionLog(\"\") = %v, %v", l, err)
	}
	closeFn()

	_, _, err = openSessionLog(t.TempDir(), false)
	if err == nil {
		t.Error("opening a directory as log file should fail")
	}
	var target interface{ Unwrap() error }
	if !errors.As(err, &target) {
		t.Errorf("error should wrap the cause: %v", err)
	}
}
