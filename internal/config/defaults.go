package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the built-in Road Rush configuration.
// These values define the reference behavior; the YAML files only
// exist so hosts can tune them without recompiling.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Physics: RushPhysics{
			BaseSpeed:       140,
			BoostBonus:      110,
			Smoothing:       0.05,
			FallbackDeltaMS: 16,
			MaxDeltaMS:      250,
		},
		Road: RushRoad{
			Lanes:      3,
			Width:      300,
			Height:     520,
			DashPeriod: 40,
		},
		Player: RushPlayer{
			Width:  34,
			Height: 60,
			Y:      430,
		},
		Obstacles: RushObstacles{
			MinSize:       60,
			MaxSize:       90,
			WidthRatio:    0.7,
			MinSpeed:      80,
			MaxSpeed:      160,
			EntryMargin:   20,
			DespawnMargin: 60,
		},
		Spawn: RushSpawn{
			BaseIntervalMS:  850,
			FloorIntervalMS: 350,
			SlopeMSPerUnit:  4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rush":
		return defaultRushYAML
	default:
		return nil
	}
}
