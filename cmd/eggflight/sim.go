package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-flight/internal/core"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagRestart   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal UI",
	Long: `Run the game headless: start a run, flap on a fixed cadence and report
the outcome. Useful for checking a config or a seed.

Examples:
  eggflight sim
  eggflight sim --seed 7 --ticks 10000 --flap-every 14
  eggflight sim --config ./my-eggflight.yaml --restart`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 14, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run after each game over")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", flagTicks)
	}
	if flagFlapEvery < 0 {
		return fmt.Errorf("flap-every must not be negative, got %d", flagFlapEvery)
	}

	cfg, _, err := loadGame(opts)
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := flight.New(cfg, flight.WithLogger(logger))
	rc := core.DefaultConfig()
	rc.TickRate = opts.FPS
	rc.Seed = seed
	game.Reset(rc)

	res := simulate(game, flagTicks, flagFlapEvery, flagRestart)
	logger.Debug("simulation finished", "seed", seed, "ticks", res.Ticks)
	printSimResult(cmd.OutOrStdout(), seed, res)
	return nil
}

// simResult summarizes a headless session.
type simResult struct {
	Ticks    int // Ticks actually stepped
	Phase    flight.Phase
	Score    int // Score of the last run
	Best     int
	Runs     int // Finished runs
	Flaps    int
	Collided int // Runs ended by a pipe
	Grounded int // Runs ended by the floor
}

// simulate starts a run and steps the game up to ticks times, flapping every
// flapEvery ticks. Without restart it stops at the first game over.
func simulate(game *flight.Game, ticks, flapEvery int, restart bool) simResult {
	var res simResult

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	flap := core.NewInputFrame()
	flap.Set(core.ActionFlap)
	idle := core.NewInputFrame()

	step := game.Step(confirm)
	for res.Ticks < ticks {
		if step.Phase == flight.PhaseGameOver && !restart {
			break
		}

		in := idle
		switch {
		case step.Phase == flight.PhaseGameOver:
			in = confirm
		case flapEvery > 0 && game.RunTick()%flapEvery == 0:
			in = flap
		}

		step = game.Step(in)
		res.Ticks++
		for _, e := range step.Events {
			switch e.Type {
			case flight.EventFlap:
				res.Flaps++
			case flight.EventCollision:
				res.Collided++
			case flight.EventGroundHit:
				res.Grounded++
			}
		}
	}

	s := game.Snapshot()
	res.Phase = s.Phase
	res.Score = s.Score
	res.Best = s.Best
	res.Runs = s.Runs
	return res
}

func printSimResult(w io.Writer, seed int64, r simResult) {
	fmt.Fprintf(w, "Seed:      %d\n", seed)
	fmt.Fprintf(w, "Ticks:     %d\n", r.Ticks)
	fmt.Fprintf(w, "Phase:     %s\n", r.Phase)
	fmt.Fprintf(w, "Score:     %d\n", r.Score)
	fmt.Fprintf(w, "Best:      %d\n", r.Best)
	fmt.Fprintf(w, "Runs:      %d (pipe %d, floor %d)\n", r.Runs, r.Collided, r.Grounded)
	fmt.Fprintf(w, "Flaps:     %d\n", r.Flaps)
}
