// Package rush implements the Road Rush simulation: a three-lane endless
// road where traffic streams toward the player at an increasing rate and
// the session ends on first collision. All state lives in world units;
// the platform layer owns timing, input capture and terminal display.
package rush

import (
	"math"
	"math/rand"

	"github.com/road-rush/road-rush/internal/config"
	"github.com/road-rush/road-rush/internal/core"
	"github.com/road-rush/road-rush/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Road Rush simulation. It is constructed explicitly
// and owned by the host loop; there are no package-level singletons.
type Game struct {
	rng     *rand.Rand
	cfg     config.RushConfig
	runtime core.RuntimeConfig

	latch   InputLatch
	spawner spawner

	lanes     []float64 // Lane center x-coordinates, fixed per session
	laneIndex int
	playerX   float64

	speed    float64 // Current forward speed, world units per second
	distance float64
	scroll   float64 // Road scroll offset, presentation only

	obstacles []Obstacle

	tick    uint64
	running bool
	paused  bool

	// best survives resets; it is seeded from the score store at startup
	// and only ever grows.
	best int
}

// New creates a new Road Rush game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rush", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rush"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Road Rush"
}

// Reset starts a fresh session: empty traffic, center lane, zero
// speed/distance/timers, running. The best distance is deliberately kept;
// it belongs to the process, not the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadRush(configPath)
	if err != nil {
		cfg = config.DefaultRushConfig()
	}
	g.cfg = cfg

	laneW := cfg.Road.Width / float64(cfg.Road.Lanes)
	g.lanes = make([]float64, cfg.Road.Lanes)
	for i := range g.lanes {
		g.lanes[i] = laneW * (float64(i) + 0.5)
	}

	g.laneIndex = cfg.Road.Lanes / 2
	g.playerX = g.lanes[g.laneIndex]
	g.speed = 0
	g.distance = 0
	g.scroll = 0
	g.obstacles = g.obstacles[:0]
	g.tick = 0
	g.running = true
	g.paused = false

	g.latch.Reset()
	g.spawner = spawner{cfg: cfg}
}

// SetBest seeds the best distance, typically from the score store at
// process start. Lower values than the current best are ignored.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Best returns the best distance reached so far.
func (g *Game) Best() int {
	return g.best
}

// Step advances the simulation by one tick. deltaMS is the elapsed time
// since the previous tick; degenerate values (non-positive, NaN, or beyond
// the configured maximum) are replaced with the fallback tick duration.
func (g *Game) Step(in core.InputFrame, deltaMS float64) core.StepResult {
	g.tick++

	// A restart must be processable at any time, including mid-session
	// and while frozen after a crash.
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.running {
		g.paused = !g.paused
	}

	// A crashed or paused session stays frozen: no physics, no spawning,
	// no distance accrual. Rendering still shows the frozen frame.
	if !g.running || g.paused {
		return core.StepResult{State: g.State()}
	}

	// Drain host input into the latch.
	if in.Has(core.ActionLeft) {
		g.latch.PressLeft()
	}
	if in.Has(core.ActionRight) {
		g.latch.PressRight()
	}
	g.latch.SetBoost(in.Has(core.ActionBoost))

	g.advance(g.sanitizeDelta(deltaMS))

	return core.StepResult{State: g.State()}
}

// sanitizeDelta recovers from degenerate frame times locally; the caller
// never sees an error.
func (g *Game) sanitizeDelta(deltaMS float64) float64 {
	if math.IsNaN(deltaMS) || deltaMS <= 0 || deltaMS > g.cfg.Physics.MaxDeltaMS {
		return g.cfg.Physics.FallbackDeltaMS
	}
	return deltaMS
}

// advance runs one simulation tick: steering, speed interpolation,
// distance accrual, obstacle motion, spawning and collision detection.
func (g *Game) advance(deltaMS float64) {
	// Steering: at most one lane change per tick, clamped to the road.
	g.laneIndex = core.Clamp(g.laneIndex+g.latch.Consume(), 0, len(g.lanes)-1)
	g.playerX = g.lanes[g.laneIndex]

	// Speed eases toward the target with a fixed per-tick blend. The blend
	// is intentionally not normalized by delta: longer ticks converge in
	// fewer steps, matching the reference behavior. Normalizing it would
	// change the observed difficulty.
	target := g.cfg.Physics.BaseSpeed
	if g.latch.Boost() {
		target += g.cfg.Physics.BoostBonus
	}
	g.speed += (target - g.speed) * g.cfg.Physics.Smoothing

	dt := deltaMS / 1000
	g.distance += g.speed * dt
	g.scroll = math.Mod(g.scroll+g.speed*dt, g.cfg.Road.DashPeriod)

	// Traffic closes distance from its own speed plus the player's forward
	// speed; cars past the bottom of the road are dropped.
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Y += (g.speed + o.Speed) * dt
		if o.Y <= g.cfg.Road.Height+g.cfg.Obstacles.DespawnMargin {
			live = append(live, o)
		}
	}
	g.obstacles = live

	if o, ok := g.spawner.advance(deltaMS, g.distance, g.lanes, g.rng); ok {
		g.obstacles = append(g.obstacles, o)
	}

	if g.collides() {
		g.crash()
	}
}

// playerBox returns the player's collision box.
func (g *Game) playerBox() core.Box {
	return core.NewBox(g.playerX, g.cfg.Player.Y, g.cfg.Player.Width, g.cfg.Player.Height)
}

// collides tests the player against every live obstacle, returning on the
// first overlap. Boxes that merely touch at an edge do not collide.
func (g *Game) collides() bool {
	player := g.playerBox()
	for _, o := range g.obstacles {
		if player.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}

// crash freezes the session and folds the final distance into the best
// score. This runs exactly once per session ending.
func (g *Game) crash() {
	g.running = false
	if d := int(math.Round(g.distance)); d > g.best {
		g.best = d
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Distance: int(math.Round(g.distance)),
		Best:     g.best,
		GameOver: !g.running,
		Paused:   g.paused,
	}
}
