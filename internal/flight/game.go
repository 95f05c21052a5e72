// Package flight implements the egg-flight simulation: a flappy-style game where
// an egg climbs on each flap, falls faster and faster otherwise, and has to pass
// through the gaps of scrolling pipes.
//
// The package is pure logic. A presenter reads Game.Frame after each Step and
// draws it; input arrives as core.InputFrame.
package flight

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
)

// GameState is the mutable state of a run. It is owned by Game and handed to
// the components by reference once per tick.
type GameState struct {
	Phase     Phase
	Score     int
	Tick      int // Ticks since the run started
	Character *Character
	Obstacles *ObstacleRing
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game drives the run state machine and the simulation.
type Game struct {
	cfg      config.GameConfig
	diff     *config.DifficultyManager
	rng      *rand.Rand
	interval int // Base spawn interval in ticks
	state    GameState
	logger   *log.Logger

	// Session record, kept in memory for the life of the process
	runs int
	best int
}

// New creates a game from a validated configuration.
// The game starts in the intro phase; call Reset before the first Step.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		diff:     config.NewDifficultyManager(cfg.Difficulty),
		rng:      rand.New(rand.NewSource(0)),
		interval: cfg.Obstacles.SpawnInterval(cfg.Field.Width),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = GameState{
		Phase:     PhaseIntro,
		Character: NewCharacter(cfg),
		Obstacles: NewObstacleRing(cfg.Obstacles, cfg.Field.Width),
	}
	g.state.Obstacles.Reset(g.rng, g.interval)
	return g
}

// Title returns the display name of the game.
func (g *Game) Title() string {
	return "Egg Flight"
}

// Reset returns the game to the intro phase and seeds the RNG.
// It is called once per process; runs restarted with Enter keep the RNG going.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.runs = 0
	g.best = 0

	s := &g.state
	s.Phase = PhaseIntro
	s.Score = 0
	s.Tick = 0
	s.Character.Reset()
	s.Obstacles.Reset(g.rng, g.interval)
}

// Step applies one tick of input and, while playing, advances the simulation.
// At most one phase transition happens per tick; the tick that starts a run
// does not also simulate.
func (g *Game) Step(in core.InputFrame) StepResult {
	s := &g.state
	var res StepResult

	switch s.Phase.next(in) {
	case quit:
		res.Quit = true
		res.Events = append(res.Events, g.event(EventQuit, s.Score))
		g.logger.Debug("quit requested", "phase", s.Phase, "score", s.Score)

	case restart:
		g.restart(s)
		res.Events = append(res.Events, g.event(EventRunStarted, 0))

	default:
		if s.Phase == PhasePlaying {
			if in.Has(core.ActionFlap) {
				s.Character.Flap()
				res.Events = append(res.Events, g.event(EventFlap, s.Character.Y))
			}
			g.advance(s, &res)
		}
	}

	res.Phase = s.Phase
	res.Score = s.Score
	return res
}

// restart starts a fresh run: score zero, character mid-screen, one pipe.
func (g *Game) restart(s *GameState) {
	s.Phase = PhasePlaying
	s.Score = 0
	s.Tick = 0
	s.Character.Reset()
	s.Obstacles.Reset(g.rng, g.diff.SpawnInterval(g.interval, 0, 0))
	g.logger.Debug("run started", "run", g.runs+1)
}

// advance runs one simulation tick: spawn timer, pipes, scoring, collisions,
// then the character.
func (g *Game) advance(s *GameState, res *StepResult) {
	s.Tick++

	interval := g.diff.SpawnInterval(g.interval, s.Score, s.Tick)
	if s.Obstacles.Tick(g.rng, interval) {
		slot := (s.Obstacles.NextIndex() + MaxObstacles - 1) % MaxObstacles
		res.Events = append(res.Events, g.event(EventSpawned, slot))
	}

	speed := g.diff.Speed(g.cfg.Obstacles.Speed, s.Score, s.Tick)
	box := s.Character.Box()
	scored, hit := s.Obstacles.Advance(speed, g.cfg.Character.X, func(seg core.Rect) bool {
		return Overlaps(seg, box)
	})
	if scored > 0 {
		s.Score += scored
		res.Events = append(res.Events, g.event(EventScored, s.Score))
	}

	grounded := s.Character.Tick()

	if hit {
		res.Events = append(res.Events, g.event(EventCollision, s.Score))
	}
	if grounded {
		res.Events = append(res.Events, g.event(EventGroundHit, s.Score))
	}
	if hit || grounded {
		g.endRun(s, res)
	}
}

// endRun moves to the game-over phase and updates the session record.
func (g *Game) endRun(s *GameState, res *StepResult) {
	s.Phase = PhaseGameOver
	g.runs++
	if s.Score > g.best {
		g.best = s.Score
	}
	res.Events = append(res.Events, g.event(EventRunEnded, s.Score))
	g.logger.Debug("run ended", "score", s.Score, "ticks", s.Tick, "best", g.best)
}

func (g *Game) event(t EventType, value int) Event {
	return Event{Type: t, Tick: g.state.Tick, Value: value}
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Phase          Phase
	Score          int
	Tick           int
	Best           int
	Runs           int
	CharacterY     int
	Rotation       float64
	FlightBudget   float64
	Regime         Regime
	AnimationFrame int
	Obstacles      []Obstacle
	NextSlot       int
	SpawnCountdown int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	return Snapshot{
		Phase:          s.Phase,
		Score:          s.Score,
		Tick:           s.Tick,
		Best:           g.best,
		Runs:           g.runs,
		CharacterY:     s.Character.Y,
		Rotation:       s.Character.Rotation,
		FlightBudget:   s.Character.FlightBudget,
		Regime:         s.Character.Regime(),
		AnimationFrame: s.Character.AnimationFrame(),
		Obstacles:      append([]Obstacle(nil), s.Obstacles.Active()...),
		NextSlot:       s.Obstacles.NextIndex(),
		SpawnCountdown: s.Obstacles.Countdown(),
	}
}

// RunTick returns the ticks since the current run started without copying
// the state.
func (g *Game) RunTick() int {
	return g.state.Tick
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
