package rush

import (
	"math"
	"testing"

	"github.com/road-rush/road-rush/internal/core"
)

const testDelta = 16.0

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func stepN(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in, testDelta)
	}
}

// stepNCalm advances the game with the road swept clear of traffic each
// tick, for physics properties that must observe many ticks without a crash.
func stepNCalm(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		g.obstacles = g.obstacles[:0]
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in, testDelta)
	}
}

func TestLaneClamp(t *testing.T) {
	g := newTestGame(1)

	if g.laneIndex != 1 {
		t.Fatalf("initial lane = %d, expected center lane 1", g.laneIndex)
	}

	// Repeated left presses floor at lane 0, never wrap.
	stepN(g, 10, core.ActionLeft)
	if g.laneIndex != 0 {
		t.Errorf("lane after 10 left presses = %d, expected 0", g.laneIndex)
	}

	stepN(g, 10, core.ActionRight)
	if g.laneIndex != len(g.lanes)-1 {
		t.Errorf("lane after 10 right presses = %d, expected %d", g.laneIndex, len(g.lanes)-1)
	}

	// Player x always snaps to the lane center.
	if g.playerX != g.lanes[g.laneIndex] {
		t.Errorf("playerX = %v, expected lane center %v", g.playerX, g.lanes[g.laneIndex])
	}
}

func TestLeftWinsOverRightSameTick(t *testing.T) {
	g := newTestGame(1)

	stepN(g, 1, core.ActionLeft, core.ActionRight)
	if g.laneIndex != 0 {
		t.Errorf("lane = %d after simultaneous left+right, expected 0 (left priority)", g.laneIndex)
	}
}

func TestSpeedConvergence(t *testing.T) {
	g := newTestGame(2)
	base := g.cfg.Physics.BaseSpeed

	prev := g.speed
	for i := 0; i < 500; i++ {
		stepNCalm(g, 1)
		if g.speed < prev {
			t.Fatalf("speed decreased from %v to %v at tick %d", prev, g.speed, i)
		}
		if g.speed > base {
			t.Fatalf("speed %v overshot base speed %v at tick %d", g.speed, base, i)
		}
		prev = g.speed
	}

	if g.speed < base-1 {
		t.Errorf("speed %v did not converge near %v after 500 ticks", g.speed, base)
	}
}

func TestBoostRaisesTarget(t *testing.T) {
	g := newTestGame(3)
	base := g.cfg.Physics.BaseSpeed
	target := base + g.cfg.Physics.BoostBonus

	stepNCalm(g, 300, core.ActionBoost)
	if g.speed <= base {
		t.Errorf("speed %v with boost held should exceed base %v", g.speed, base)
	}
	if g.speed > target {
		t.Errorf("speed %v overshot boost target %v", g.speed, target)
	}

	// Releasing boost eases the speed back down toward base.
	stepNCalm(g, 300)
	if g.speed > base {
		t.Errorf("speed %v should ease back to base %v after boost release", g.speed, base)
	}
}

func TestDistanceMonotonicWhileRunning(t *testing.T) {
	g := newTestGame(4)

	prev := g.distance
	for i := 0; i < 200; i++ {
		stepNCalm(g, 1)
		if g.distance < prev {
			t.Fatalf("distance decreased from %v to %v", prev, g.distance)
		}
		prev = g.distance
	}
}

func TestDistanceFrozenAfterCrash(t *testing.T) {
	g := newTestGame(5)
	stepN(g, 100)

	// Drop a car directly onto the player.
	g.obstacles = append(g.obstacles, Obstacle{
		X: g.playerX, Y: g.cfg.Player.Y, W: 40, H: 60,
	})
	stepN(g, 1)

	if g.running {
		t.Fatal("game should freeze on collision")
	}
	frozen := g.distance

	stepN(g, 50, core.ActionBoost)
	if g.distance != frozen {
		t.Errorf("distance moved from %v to %v after crash", frozen, g.distance)
	}
	if len(g.obstacles) == 0 {
		t.Error("obstacle list should stay frozen, not be cleared, until reset")
	}
}

func TestCollisionTouchingEdgesDoesNotCrash(t *testing.T) {
	g := newTestGame(6)
	player := g.playerBox()

	// Obstacle sharing exactly the player's right edge: no collision.
	touching := Obstacle{
		X: player.Right() + 20, Y: player.Y, W: 40, H: player.H,
	}
	g.obstacles = []Obstacle{touching}
	if g.collides() {
		t.Error("boxes touching at an edge must not collide")
	}

	// Shift one unit inward on both axes: collision.
	overlapping := Obstacle{
		X: touching.X - 1, Y: player.Y + 1, W: 40, H: player.H,
	}
	g.obstacles = []Obstacle{overlapping}
	if !g.collides() {
		t.Error("boxes overlapping by one unit must collide")
	}
}

func TestBestNeverDecreases(t *testing.T) {
	g := newTestGame(7)

	// First session reaches 300 and crashes.
	g.distance = 300
	g.crash()
	if g.best != 300 {
		t.Fatalf("best = %d after crashing at 300, expected 300", g.best)
	}

	// Restart, second session crashes at a lower distance.
	stepN(g, 1, core.ActionRestart)
	if !g.running {
		t.Fatal("restart should revive the session")
	}
	g.distance = 150
	g.crash()
	if g.best != 300 {
		t.Errorf("best = %d after a worse run, expected 300", g.best)
	}
}

func TestSetBestSeedsButNeverLowers(t *testing.T) {
	g := newTestGame(8)

	g.SetBest(500)
	if g.Best() != 500 {
		t.Errorf("Best() = %d, expected 500", g.Best())
	}
	g.SetBest(100)
	if g.Best() != 500 {
		t.Errorf("Best() = %d after lower seed, expected 500", g.Best())
	}
}

func TestBestRounding(t *testing.T) {
	g := newTestGame(9)

	g.distance = 299.6
	g.crash()
	if g.best != 300 {
		t.Errorf("best = %d for distance 299.6, expected 300 (round to nearest)", g.best)
	}
}

func TestResetCompleteness(t *testing.T) {
	g := newTestGame(10)

	stepNCalm(g, 200, core.ActionBoost)
	stepN(g, 3, core.ActionRight)
	g.obstacles = append(g.obstacles, Obstacle{X: g.playerX, Y: g.cfg.Player.Y, W: 40, H: 60})
	stepN(g, 1)
	if g.running {
		t.Fatal("expected a crash before reset")
	}
	g.SetBest(123)

	stepN(g, 1, core.ActionRestart)

	if !g.running {
		t.Error("running should be true after reset")
	}
	if len(g.obstacles) != 0 {
		t.Errorf("obstacle list has %d entries after reset, expected 0", len(g.obstacles))
	}
	if g.laneIndex != len(g.lanes)/2 {
		t.Errorf("lane = %d after reset, expected center %d", g.laneIndex, len(g.lanes)/2)
	}
	if g.speed != 0 || g.distance != 0 {
		t.Errorf("speed/distance = %v/%v after reset, expected 0/0", g.speed, g.distance)
	}
	if g.spawner.sinceSpawn != 0 {
		t.Errorf("spawn timer = %v after reset, expected 0", g.spawner.sinceSpawn)
	}
	if g.best != 123 {
		t.Errorf("best = %d after reset, expected 123 (best survives resets)", g.best)
	}
}

func TestRestartWorksMidSession(t *testing.T) {
	g := newTestGame(11)

	stepN(g, 50, core.ActionBoost)
	if g.distance == 0 {
		t.Fatal("expected some distance before restart")
	}

	// Restart must be honored while the session is still running.
	stepN(g, 1, core.ActionRestart)
	if g.distance != 0 || !g.running {
		t.Errorf("restart mid-session left distance=%v running=%v", g.distance, g.running)
	}
}

func TestDegenerateDeltaFallsBack(t *testing.T) {
	ref := newTestGame(12)
	ref.Step(core.NewInputFrame(), 16)

	for _, bad := range []float64{0, -5, math.NaN(), 100000} {
		g := newTestGame(12)
		g.Step(core.NewInputFrame(), bad)
		if g.distance != ref.distance {
			t.Errorf("delta %v: distance %v, expected fallback result %v", bad, g.distance, ref.distance)
		}
	}
}

func TestSmoothingIsPerTickNotPerMillisecond(t *testing.T) {
	// The 0.05 blend applies once per tick however long the tick is:
	// one 100ms tick converges less than seven 16ms ticks. This mirrors
	// the reference behavior and must not be "fixed".
	slow := newTestGame(13)
	slow.Step(core.NewInputFrame(), 100)

	fast := newTestGame(13)
	stepN(fast, 7)

	if slow.speed >= fast.speed {
		t.Errorf("one long tick (speed %v) should converge less than seven short ticks (speed %v)",
			slow.speed, fast.speed)
	}
}

func TestObstacleDespawn(t *testing.T) {
	g := newTestGame(14)

	beyond := g.cfg.Road.Height + g.cfg.Obstacles.DespawnMargin + 1
	g.obstacles = append(g.obstacles,
		Obstacle{X: g.lanes[0], Y: beyond, W: 40, H: 60},
		Obstacle{X: g.lanes[0], Y: 10, W: 40, H: 60},
	)
	stepN(g, 1)

	for _, o := range g.obstacles {
		if o.Y > g.cfg.Road.Height+g.cfg.Obstacles.DespawnMargin {
			t.Errorf("obstacle at y=%v should have been removed", o.Y)
		}
	}
	if len(g.obstacles) == 0 {
		t.Error("on-road obstacle should survive the cleanup pass")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(15)
	stepNCalm(g, 50)
	d := g.distance

	stepN(g, 1, core.ActionPause)
	stepN(g, 50)
	if g.distance != d {
		t.Errorf("distance advanced from %v to %v while paused", d, g.distance)
	}

	stepN(g, 1, core.ActionPause)
	stepN(g, 1)
	if g.distance == d {
		t.Error("distance should advance again after unpause")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(g *Game) {
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%60 == 20 {
				in.Set(core.ActionLeft)
			}
			if i%60 == 50 {
				in.Set(core.ActionRight)
			}
			if i > 100 && i < 200 {
				in.Set(core.ActionBoost)
			}
			g.Step(in, testDelta)
		}
	}

	g1 := newTestGame(12345)
	g2 := newTestGame(12345)
	script(g1)
	script(g2)

	s1 := g1.Snapshot()
	s2 := g2.Snapshot()

	if s1.Tick != s2.Tick {
		t.Errorf("tick mismatch: %d vs %d", s1.Tick, s2.Tick)
	}
	if s1.Distance != s2.Distance {
		t.Errorf("distance mismatch: %v vs %v", s1.Distance, s2.Distance)
	}
	if s1.Speed != s2.Speed {
		t.Errorf("speed mismatch: %v vs %v", s1.Speed, s2.Speed)
	}
	if s1.Running != s2.Running {
		t.Errorf("running mismatch: %v vs %v", s1.Running, s2.Running)
	}
	if len(s1.Obstacles) != len(s2.Obstacles) {
		t.Fatalf("obstacle count mismatch: %d vs %d", len(s1.Obstacles), len(s2.Obstacles))
	}
	for i := range s1.Obstacles {
		if s1.Obstacles[i] != s2.Obstacles[i] {
			t.Errorf("obstacle %d mismatch: %+v vs %+v", i, s1.Obstacles[i], s2.Obstacles[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(16)
	stepN(g, 200)

	snap := g.Snapshot()
	if len(snap.Obstacles) == 0 {
		t.Skip("no obstacles spawned yet with this seed")
	}

	// Mutating the snapshot must not leak back into the simulation.
	snap.Obstacles[0].Y = -9999
	snap.Lanes[0] = -9999
	if g.obstacles[0].Y == -9999 || g.lanes[0] == -9999 {
		t.Error("snapshot shares storage with the live simulation")
	}
}
