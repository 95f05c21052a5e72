package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-flight/internal/core"
	"github.com/vovakirdan/egg-flight/internal/flight"
	"github.com/vovakirdan/egg-flight/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, catalog, err := loadGame(opts)
	if err != nil {
		return err
	}
	if catalog.Dir != "" {
		logger.Debug("assets checked", "dir", catalog.Dir, "floor", cfg.Field.FloorHeight)
	}

	width, height, err := tui.CheckTerminal(os.Stdout)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout and stderr until the program exits
	sessionLog, closeLog, err := openSessionLog(opts.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	game := flight.New(cfg, flight.WithLogger(sessionLog))
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: opts.FPS,
		Seed:     opts.Seed,
	}

	if err := tui.Run(game, catalog, rc, sessionLog); err != nil {
		return err
	}

	s := game.Snapshot()
	logger.Info("session ended", "runs", s.Runs, "best", s.Best)
	return nil
}

// openSessionLog returns the logger used while the game is on screen.
// Without a log file, messages are discarded.
func openSessionLog(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard, debug), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	closeFn := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return newLogger(f, debug), closeFn, nil
}
