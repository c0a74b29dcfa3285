package config

import (
	_ "embed"
)

//go:embed defaults/swarm.yaml
var defaultSwarmYAML []byte

// DefaultSwarmConfig returns the default Swarm configuration.
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Arena: SwarmArena{
			Width:  800,
			Height: 600,
		},
		Player: SwarmPlayer{
			Radius: 20,
		},
		Enemy: SwarmEnemy{
			Radius:           10,
			Speed:            2,
			InitialCount:     5,
			SpawnChance:      0.02,
			ExclusionRadius:  100,
			MaxSpawnAttempts: 64,
		},
		Projectile: SwarmProjectile{
			Normal: ProjectileKind{
				Radius:     5,
				Speed:      5,
				MaxHits:    1,
				CooldownMs: 2500,
			},
			Special: ProjectileKind{
				Radius:      20,
				Speed:       8,
				MaxHits:     5,
				CooldownMs:  120000,
				TrailLength: 30,
			},
		},
		Scoring: SwarmScoring{
			PointsPerKill: 10,
		},
		Controls: SwarmControls{
			KeyboardStep: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "swarm":
		return defaultSwarmYAML
	default:
		return nil
	}
}
