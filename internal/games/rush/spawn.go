package rush

import (
	"math/rand"

	"github.com/road-rush/road-rush/internal/config"
	"github.com/road-rush/road-rush/internal/core"
)

// Obstacle is one traffic car streaming toward the player. Obstacles are
// value-like: no identity beyond membership in the live list.
type Obstacle struct {
	X     float64 // Lane center x, fixed for the obstacle's lifetime
	Y     float64 // Center y, grows every tick
	W     float64
	H     float64
	Speed float64 // Own approach speed, world units per second
	Color core.Color
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// obstaclePalette holds the color tags a spawned car can pick from.
var obstaclePalette = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// spawner decides whether, where and how fast new traffic enters.
// The interval between spawns shrinks linearly as distance grows,
// saturating at the configured floor.
type spawner struct {
	cfg        config.RushConfig
	sinceSpawn float64 // ms accumulated since the last spawn
}

// interval returns the current spawn threshold in ms for the given distance.
func (s *spawner) interval(distance float64) float64 {
	iv := s.cfg.Spawn.BaseIntervalMS - distance*s.cfg.Spawn.SlopeMSPerUnit
	if iv < s.cfg.Spawn.FloorIntervalMS {
		iv = s.cfg.Spawn.FloorIntervalMS
	}
	return iv
}

// advance accrues elapsed time and spawns at most one obstacle when the
// threshold is crossed. Returns the new obstacle, or false.
func (s *spawner) advance(deltaMS, distance float64, lanes []float64, rng *rand.Rand) (Obstacle, bool) {
	s.sinceSpawn += deltaMS
	if s.sinceSpawn <= s.interval(distance) {
		return Obstacle{}, false
	}
	s.sinceSpawn = 0
	return s.spawn(lanes, rng), true
}

// spawn creates one obstacle: uniform random lane, uniform size and speed,
// entering fully above the visible area.
func (s *spawner) spawn(lanes []float64, rng *rand.Rand) Obstacle {
	oc := s.cfg.Obstacles
	size := oc.MinSize + rng.Float64()*(oc.MaxSize-oc.MinSize)
	return Obstacle{
		X:     lanes[rng.Intn(len(lanes))],
		Y:     -(size + oc.EntryMargin),
		W:     size * oc.WidthRatio,
		H:     size,
		Speed: oc.MinSpeed + rng.Float64()*(oc.MaxSpeed-oc.MinSpeed),
		Color: obstaclePalette[rng.Intn(len(obstaclePalette))],
	}
}

// reset clears the spawn timer for a fresh session.
func (s *spawner) reset() {
	s.sinceSpawn = 0
}
