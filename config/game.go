package config

import (
	"errors"
	"fmt"
)

// Key prefixes, one per tuning group
const (
	ExplosionPrefix  = "GR__CORE__GAME__EXPLOSION__"
	SpaceFieldPrefix = "GR__CORE__GAME__SPACE_FIELD__"
	EnginePrefix     = "GR__CORE__GAME__GAME_ENGINE__"
)

// ExplosionConfig tunes explosions spawned on collisions
type ExplosionConfig struct {
	Lifespan int // Ticks before removal
	Radius   float64
	Mass     float64
}

// SpaceFieldConfig tunes missile and asteroid generation
type SpaceFieldConfig struct {
	MissileRadius           float64
	MissileMass             float64
	MissileDistanceFromShip float64 // Gap between ship and missile surfaces at spawn

	AsteroidMaxYaw   float64 // Horizontal speed drawn from [-MaxYaw, MaxYaw]
	AsteroidMinSpeed float64
	AsteroidMaxSpeed float64

	AsteroidMinRadius        int
	AsteroidMaxRadius        int
	AsteroidRadiusMultiplier float64

	AsteroidMinMass        int
	AsteroidMaxMass        int
	AsteroidMassMultiplier float64
}

// EngineConfig tunes the tick loop composing the field operations
type EngineConfig struct {
	SpaceFieldWidth        int
	SpaceFieldHeight       int
	FrameRate              int     // Ticks per second
	AsteroidProbability    float64 // Chance of an asteroid spawn per tick, [0, 1]
	CoefficientRestitution float64 // Collision elasticity, [0, 1]
	ShipBoost              float64 // Velocity added per boost command
}

// Config aggregates all tuning groups
type Config struct {
	Explosion  ExplosionConfig
	SpaceField SpaceFieldConfig
	Engine     EngineConfig
}

// Load reads and validates every group, reporting all failures together
func Load(src Source) (*Config, error) {
	explosion, explosionErr := LoadExplosion(src)
	field, fieldErr := LoadSpaceField(src)
	engine, engineErr := LoadEngine(src)
	if err := errors.Join(explosionErr, fieldErr, engineErr); err != nil {
		return nil, err
	}
	return &Config{
		Explosion:  *explosion,
		SpaceField: *field,
		Engine:     *engine,
	}, nil
}

func LoadExplosion(src Source) (*ExplosionConfig, error) {
	r := NewReader(src, ExplosionPrefix)
	cfg := &ExplosionConfig{
		Lifespan: r.Int("LIFESPAN"),
		Radius:   r.Float("RADIUS"),
		Mass:     r.Float("MASS"),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("explosion config: %w", err)
	}

	r.Check(cfg.Lifespan > 0, "LIFESPAN", "must be positive, got %d", cfg.Lifespan)
	r.Check(cfg.Radius > 0, "RADIUS", "must be positive, got %g", cfg.Radius)
	r.Check(cfg.Mass > 0, "MASS", "must be positive, got %g", cfg.Mass)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("explosion config: %w", err)
	}
	return cfg, nil
}

func LoadSpaceField(src Source) (*SpaceFieldConfig, error) {
	r := NewReader(src, SpaceFieldPrefix)
	cfg := &SpaceFieldConfig{
		MissileRadius:           r.Float("MISSILE_RADIUS"),
		MissileMass:             r.Float("MISSILE_MASS"),
		MissileDistanceFromShip: r.Float("MISSILE_DISTANCE_FROM_SHIP"),

		AsteroidMaxYaw:   r.Float("ASTEROID_MAX_YAW"),
		AsteroidMinSpeed: r.Float("ASTEROID_MIN_SPEED"),
		AsteroidMaxSpeed: r.Float("ASTEROID_MAX_SPEED"),

		AsteroidMinRadius:        r.Int("ASTEROID_MIN_RADIUS"),
		AsteroidMaxRadius:        r.Int("ASTEROID_MAX_RADIUS"),
		AsteroidRadiusMultiplier: r.Float("ASTEROID_RADIUS_MULTIPLIER"),

		AsteroidMinMass:        r.Int("ASTEROID_MIN_MASS"),
		AsteroidMaxMass:        r.Int("ASTEROID_MAX_MASS"),
		AsteroidMassMultiplier: r.Float("ASTEROID_MASS_MULTIPLIER"),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("space field config: %w", err)
	}

	r.Check(cfg.MissileRadius > 0, "MISSILE_RADIUS", "must be positive, got %g", cfg.MissileRadius)
	r.Check(cfg.MissileMass > 0, "MISSILE_MASS", "must be positive, got %g", cfg.MissileMass)
	r.Check(cfg.MissileDistanceFromShip >= 0, "MISSILE_DISTANCE_FROM_SHIP", "must not be negative, got %g", cfg.MissileDistanceFromShip)
	r.Check(cfg.AsteroidMaxYaw >= 0, "ASTEROID_MAX_YAW", "must not be negative, got %g", cfg.AsteroidMaxYaw)
	r.Check(cfg.AsteroidMinSpeed > 0, "ASTEROID_MIN_SPEED", "must be positive, got %g", cfg.AsteroidMinSpeed)
	r.Check(cfg.AsteroidMinSpeed <= cfg.AsteroidMaxSpeed, "ASTEROID_MAX_SPEED", "must be >= ASTEROID_MIN_SPEED")
	r.Check(cfg.AsteroidMinRadius > 0, "ASTEROID_MIN_RADIUS", "must be positive, got %d", cfg.AsteroidMinRadius)
	r.Check(cfg.AsteroidMinRadius <= cfg.AsteroidMaxRadius, "ASTEROID_MAX_RADIUS", "must be >= ASTEROID_MIN_RADIUS")
	r.Check(cfg.AsteroidRadiusMultiplier > 0, "ASTEROID_RADIUS_MULTIPLIER", "must be positive, got %g", cfg.AsteroidRadiusMultiplier)
	r.Check(cfg.AsteroidMinMass > 0, "ASTEROID_MIN_MASS", "must be positive, got %d", cfg.AsteroidMinMass)
	r.Check(cfg.AsteroidMinMass <= cfg.AsteroidMaxMass, "ASTEROID_MAX_MASS", "must be >= ASTEROID_MIN_MASS")
	r.Check(cfg.AsteroidMassMultiplier > 0, "ASTEROID_MASS_MULTIPLIER", "must be positive, got %g", cfg.AsteroidMassMultiplier)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("space field config: %w", err)
	}
	return cfg, nil
}

func LoadEngine(src Source) (*EngineConfig, error) {
	r := NewReader(src, EnginePrefix)
	cfg := &EngineConfig{
		SpaceFieldWidth:        r.Int("SPACE_FIELD_WIDTH"),
		SpaceFieldHeight:       r.Int("SPACE_FIELD_HEIGHT"),
		FrameRate:              r.Int("FRAME_RATE"),
		AsteroidProbability:    r.Float("ASTEROID_PROBABILITY"),
		CoefficientRestitution: r.Float("COEFFICIENT_RESTITUTION"),
		ShipBoost:              r.Float("SHIP_BOOST"),
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("game engine config: %w", err)
	}

	r.Check(cfg.SpaceFieldWidth > 0, "SPACE_FIELD_WIDTH", "must be positive, got %d", cfg.SpaceFieldWidth)
	r.Check(cfg.SpaceFieldHeight > 0, "SPACE_FIELD_HEIGHT", "must be positive, got %d", cfg.SpaceFieldHeight)
	r.Check(cfg.FrameRate > 0, "FRAME_RATE", "must be positive, got %d", cfg.FrameRate)
	r.Check(cfg.AsteroidProbability >= 0 && cfg.AsteroidProbability <= 1, "ASTEROID_PROBABILITY", "must be in [0, 1], got %g", cfg.AsteroidProbability)
	r.Check(cfg.CoefficientRestitution >= 0 && cfg.CoefficientRestitution <= 1, "COEFFICIENT_RESTITUTION", "must be in [0, 1], got %g", cfg.CoefficientRestitution)
	r.Check(cfg.ShipBoost >= 0, "SHIP_BOOST", "must not be negative, got %g", cfg.ShipBoost)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("game engine config: %w", err)
	}
	return cfg, nil
}
