// Package config provides YAML-based game configuration loading
// for the arcade platform.
package config

// SwarmConfig contains all configuration for the Swarm game.
// Distances are arena units; the terminal renderer scales the arena
// onto the character grid.
type SwarmConfig struct {
	Arena      SwarmArena      `yaml:"arena"`
	Player     SwarmPlayer     `yaml:"player"`
	Enemy      SwarmEnemy      `yaml:"enemy"`
	Projectile SwarmProjectile `yaml:"projectile"`
	Scoring    SwarmScoring    `yaml:"scoring"`
	Controls   SwarmControls   `yaml:"controls"`
}

// SwarmArena defines the play area.
type SwarmArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SwarmPlayer defines player parameters.
type SwarmPlayer struct {
	Radius float64 `yaml:"radius"`
}

// SwarmEnemy defines enemy and spawner parameters.
type SwarmEnemy struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`
	InitialCount    int     `yaml:"initial_count"`
	SpawnChance     float64 `yaml:"spawn_chance"`     // per-tick probability
	ExclusionRadius float64 `yaml:"exclusion_radius"` // no spawns this close to the player
	// MaxSpawnAttempts bounds rejection sampling before falling back to
	// the arena corner farthest from the player.
	MaxSpawnAttempts int `yaml:"max_spawn_attempts"`
}

// SwarmProjectile groups the two projectile kinds.
type SwarmProjectile struct {
	Normal  ProjectileKind `yaml:"normal"`
	Special ProjectileKind `yaml:"special"`
}

// ProjectileKind defines one kind of projectile and its fire cooldown.
type ProjectileKind struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	MaxHits     int     `yaml:"max_hits"`
	CooldownMs  int64   `yaml:"cooldown_ms"`
	TrailLength float64 `yaml:"trail_length"` // 0 disables the trail
}

// SwarmScoring defines score awards.
type SwarmScoring struct {
	PointsPerKill int `yaml:"points_per_kill"`
}

// SwarmControls defines keyboard fallbacks for pointer movement.
type SwarmControls struct {
	KeyboardStep float64 `yaml:"keyboard_step"`
}
