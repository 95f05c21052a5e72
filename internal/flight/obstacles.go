package flight

import (
	"math/rand"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
)

// MaxObstacles is the number of pipe slots. Once all are in use, spawning
// overwrites the oldest slot.
const MaxObstacles = 7

// Obstacle is a pipe made of vertical segments, one of which is a gap.
type Obstacle struct {
	X       int  // Horizontal position (left edge), decreases every tick
	GapSlot int  // Index of the passable segment
	Scored  bool // Whether the pipe has already been counted
}

// ObstacleRing owns a fixed set of pipe slots and recycles them on a timer.
// Slots [0, ActiveCount()) are live; slot NextIndex() is the next one overwritten.
type ObstacleRing struct {
	slots     [MaxObstacles]Obstacle
	next      int
	active    int
	countdown int

	fieldW int
	cfg    config.ObstacleConfig
}

// NewObstacleRing creates an empty ring for a play field of the given width.
func NewObstacleRing(cfg config.ObstacleConfig, fieldW int) *ObstacleRing {
	return &ObstacleRing{cfg: cfg, fieldW: fieldW}
}

// Reset clears every slot and spawns a single fresh pipe in slot 0.
func (r *ObstacleRing) Reset(rng *rand.Rand, interval int) {
	r.slots = [MaxObstacles]Obstacle{}
	r.next = 0
	r.active = 0
	r.SpawnNext(rng, interval)
}

// SpawnNext recycles the next slot into a fresh pipe at the right edge of the
// field and restarts the spawn countdown.
func (r *ObstacleRing) SpawnNext(rng *rand.Rand, interval int) Obstacle {
	r.countdown = interval

	o := Obstacle{
		X:       r.fieldW,
		GapSlot: r.cfg.MinGapSlot + rng.Intn(r.cfg.MaxGapSlot-r.cfg.MinGapSlot+1),
	}
	r.slots[r.next] = o
	r.next = (r.next + 1) % MaxObstacles
	if r.active < MaxObstacles {
		r.active++
	}
	return o
}

// Tick runs the spawn timer for one tick. A pipe is spawned when the countdown
// has reached zero; the countdown is then decremented.
// Returns true if a pipe was spawned.
func (r *ObstacleRing) Tick(rng *rand.Rand, interval int) bool {
	spawned := false
	if r.countdown <= 0 {
		r.SpawnNext(rng, interval)
		spawned = true
	}
	r.countdown--
	return spawned
}

// Advance moves every live pipe left by speed pixels and scores the pipes that
// have just passed characterX. Every solid segment is reported to hit; the
// return values are the points gained and whether any segment was hit.
func (r *ObstacleRing) Advance(speed, characterX int, hit func(core.Rect) bool) (scored int, collided bool) {
	for i := 0; i < r.active; i++ {
		o := &r.slots[i]
		o.X -= speed

		if !o.Scored && o.X < characterX {
			o.Scored = true
			scored++
		}

		for _, box := range r.Segments(*o) {
			if hit != nil && hit(box) {
				collided = true
			}
		}
	}
	return scored, collided
}

// Segments returns the bounding boxes of the solid segments of a pipe, top to
// bottom. The gap segment is skipped but still takes up GapHeight pixels.
func (r *ObstacleRing) Segments(o Obstacle) []core.Rect {
	boxes := make([]core.Rect, 0, r.cfg.Segments-1)
	y := 0
	for j := 0; j < r.cfg.Segments; j++ {
		if j == o.GapSlot {
			y += r.cfg.GapHeight
			continue
		}
		boxes = append(boxes, core.NewRect(o.X, y, r.cfg.SegmentWidth, r.cfg.SegmentHeight))
		y += r.cfg.SegmentHeight
	}
	return boxes
}

// Active returns the live pipes. The slice aliases the ring's storage.
func (r *ObstacleRing) Active() []Obstacle {
	return r.slots[:r.active]
}

// ActiveCount returns the number of live pipes.
func (r *ObstacleRing) ActiveCount() int {
	return r.active
}

// NextIndex returns the slot the next spawn will overwrite.
func (r *ObstacleRing) NextIndex() int {
	return r.next
}

// Countdown returns the ticks left until the next spawn.
func (r *ObstacleRing) Countdown() int {
	return r.countdown
}
