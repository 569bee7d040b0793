package rush

import (
	"math"

	"github.com/road-rush/road-rush/internal/core"
)

// Snapshot is the read-only view of the simulation handed to the
// presentation layer each tick. Rendering consumes only snapshots, so it
// cannot mutate simulation state; in a concurrent host a snapshot is a
// safe immutable-at-that-instant copy.
type Snapshot struct {
	Tick    uint64
	Running bool
	Paused  bool
	Boost   bool

	Speed    float64
	Distance float64
	Scroll   float64

	// Display values rounded to the nearest whole unit.
	SpeedDisplay    int
	DistanceDisplay int
	Best            int

	Player    core.Box
	Lanes     []float64
	LaneIndex int

	RoadWidth  float64
	RoadHeight float64
	DashPeriod float64

	Obstacles []Obstacle
}

// Snapshot captures the current state for rendering and determinism tests.
func (g *Game) Snapshot() Snapshot {
	lanes := make([]float64, len(g.lanes))
	copy(lanes, g.lanes)
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Tick:            g.tick,
		Running:         g.running,
		Paused:          g.paused,
		Boost:           g.latch.Boost(),
		Speed:           g.speed,
		Distance:        g.distance,
		Scroll:          g.scroll,
		SpeedDisplay:    int(math.Round(g.speed)),
		DistanceDisplay: int(math.Round(g.distance)),
		Best:            g.best,
		Player:          g.playerBox(),
		Lanes:           lanes,
		LaneIndex:       g.laneIndex,
		RoadWidth:       g.cfg.Road.Width,
		RoadHeight:      g.cfg.Road.Height,
		DashPeriod:      g.cfg.Road.DashPeriod,
		Obstacles:       obstacles,
	}
}
