// eggflight is a flappy-style arcade game for the terminal: keep the egg in the
// air and fly it through the gaps between the pipes.
//
// Usage:
//
//	eggflight                - Play
//	eggflight sim            - Run the simulation headless with a scripted flap cadence
//	eggflight config         - Print the effective game configuration
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: search ~/.eggflight, ./configs)
//	--seed <value>        - RNG seed for reproducible gameplay (0 = time based)
//	--fps <rate>          - Tick rate (default: 60)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Check the game's image and font files in dir
//	--log-file <path>     - Write logs here while the game is on screen
//	--debug               - Enable debug logging
//
// Every flag can also be set with an EGGFLIGHT_* environment variable.
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagFPS        int
	flagDifficulty string
	flagAssets     string
	flagLogFile    string
	flagDebug      bool
)

var logger = newLogger(os.Stderr, false)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggflight",
	Short: "Egg Flight - keep the egg in the air",
	Long: `Egg Flight is a flappy-style game for the terminal.

Controls:
  Up/Space/W  - Flap
  Enter       - Start or restart a run
  Esc/Ctrl+C  - Quit

Difficulty options:
  easy   - Start slow, speed up as the score grows
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression (the default)

Examples:
  eggflight
  eggflight --seed 42 --difficulty hard
  eggflight --log-file ./eggflight.log --debug
  eggflight sim --ticks 3600 --flap-every 14
  eggflight config > my-eggflight.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		o, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		opts = o
		if opts.Debug {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	},
	RunE: runPlay,
}

func init() {
	addGlobalFlags(rootCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagAssets, "assets", "", "Directory with the game's image and font files")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "eggflight",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
