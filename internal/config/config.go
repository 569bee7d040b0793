// Package config provides YAML-based game configuration loading.
package config

// RushConfig contains all configuration for the Road Rush game.
type RushConfig struct {
	Physics   RushPhysics   `yaml:"physics"`
	Road      RushRoad      `yaml:"road"`
	Player    RushPlayer    `yaml:"player"`
	Obstacles RushObstacles `yaml:"obstacles"`
	Spawn     RushSpawn     `yaml:"spawn"`
}

// RushPhysics defines longitudinal motion parameters.
// Speeds are world units per second.
type RushPhysics struct {
	BaseSpeed  float64 `yaml:"base_speed"`
	BoostBonus float64 `yaml:"boost_bonus"`
	// Smoothing is the per-tick blend factor for speed convergence.
	// It is applied once per tick regardless of tick length.
	Smoothing       float64 `yaml:"smoothing"`
	FallbackDeltaMS float64 `yaml:"fallback_delta_ms"`
	MaxDeltaMS      float64 `yaml:"max_delta_ms"`
}

// RushRoad defines the road geometry in world units.
type RushRoad struct {
	Lanes  int     `yaml:"lanes"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// DashPeriod is the world-unit length of one lane-marking dash cycle,
	// used to wrap the scroll offset for rendering.
	DashPeriod float64 `yaml:"dash_period"`
}

// RushPlayer defines the player car dimensions and fixed vertical position.
type RushPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
}

// RushObstacles defines traffic car parameters.
type RushObstacles struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	WidthRatio    float64 `yaml:"width_ratio"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	EntryMargin   float64 `yaml:"entry_margin"`
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// RushSpawn defines the built-in spawn-rate curve: the interval between
// spawns shrinks linearly with distance until it hits the floor.
type RushSpawn struct {
	BaseIntervalMS  float64 `yaml:"base_interval_ms"`
	FloorIntervalMS float64 `yaml:"floor_interval_ms"`
	SlopeMSPerUnit  float64 `yaml:"slope_ms_per_unit"`
}
