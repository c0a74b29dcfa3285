package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadSwarm loads Swarm configuration.
// Search order: customPath -> ~/.arcade/configs/swarm.yaml -> ./configs/swarm.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit customPath must exist and be valid; files found by search are
// skipped when they fail to parse or validate.
func LoadSwarm(customPath string) (SwarmConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SwarmConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseSwarm(data)
		if err != nil {
			return SwarmConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("swarm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSwarm(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "swarm.yaml")); err == nil {
		if cfg, err := ParseSwarm(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSwarm(defaultSwarmYAML)
	if err != nil {
		return DefaultSwarmConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSwarm decodes YAML over the default configuration and validates the result.
func ParseSwarm(data []byte) (SwarmConfig, error) {
	cfg := DefaultSwarmConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SwarmConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SwarmConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c SwarmConfig) Validate() error {
	if err := allFinite([]namedFloat{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.radius", c.Player.Radius},
		{"enemy.radius", c.Enemy.Radius},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.spawn_chance", c.Enemy.SpawnChance},
		{"enemy.exclusion_radius", c.Enemy.ExclusionRadius},
		{"controls.keyboard_step", c.Controls.KeyboardStep},
		{"projectile.normal.radius", c.Projectile.Normal.Radius},
		{"projectile.normal.speed", c.Projectile.Normal.Speed},
		{"projectile.normal.trail_length", c.Projectile.Normal.TrailLength},
		{"projectile.special.radius", c.Projectile.Special.Radius},
		{"projectile.special.speed", c.Projectile.Special.Speed},
		{"projectile.special.trail_length", c.Projectile.Special.TrailLength},
	}); err != nil {
		return err
	}

	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return invalid("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	case c.Player.Radius <= 0:
		return invalid("player.radius must be positive")
	case c.Enemy.Radius <= 0:
		return invalid("enemy.radius must be positive")
	case c.Enemy.Speed <= 0:
		return invalid("enemy.speed must be positive")
	case c.Enemy.InitialCount < 0:
		return invalid("enemy.initial_count must not be negative")
	case c.Enemy.SpawnChance < 0 || c.Enemy.SpawnChance > 1:
		return invalid("enemy.spawn_chance must be within [0,1], got %g", c.Enemy.SpawnChance)
	case c.Enemy.ExclusionRadius < 0:
		return invalid("enemy.exclusion_radius must not be negative")
	case c.Enemy.MaxSpawnAttempts < 1:
		return invalid("enemy.max_spawn_attempts must be at least 1")
	case c.Scoring.PointsPerKill < 0:
		return invalid("scoring.points_per_kill must not be negative")
	case c.Controls.KeyboardStep < 0:
		return invalid("controls.keyboard_step must not be negative")
	}

	// Every spawn must be able to clear the exclusion zone somewhere.
	diag := c.Arena.Width*c.Arena.Width + c.Arena.Height*c.Arena.Height
	if c.Enemy.ExclusionRadius*c.Enemy.ExclusionRadius*4 >= diag {
		return invalid("enemy.exclusion_radius %g does not fit in a %gx%g arena",
			c.Enemy.ExclusionRadius, c.Arena.Width, c.Arena.Height)
	}

	if err := c.Projectile.Normal.validate("projectile.normal"); err != nil {
		return err
	}
	return c.Projectile.Special.validate("projectile.special")
}

func (k ProjectileKind) validate(name string) error {
	switch {
	case k.Radius <= 0:
		return invalid("%s.radius must be positive", name)
	case k.Speed <= 0:
		return invalid("%s.speed must be positive", name)
	case k.MaxHits < 1:
		return invalid("%s.max_hits must be at least 1", name)
	case k.CooldownMs < 0:
		return invalid("%s.cooldown_ms must not be negative", name)
	case k.TrailLength < 0:
		return invalid("%s.trail_length must not be negative", name)
	}
	return nil
}

type namedFloat struct {
	name  string
	value float64
}

// allFinite rejects NaN and infinite settings, which slip past ordered comparisons.
func allFinite(fields []namedFloat) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid("%s must be a finite number, got %g", f.name, f.value)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
