package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/galaxy-raiders/config"
	"github.com/lixenwraith/galaxy-raiders/core"
	"github.com/lixenwraith/galaxy-raiders/vmath"
)

// Standard ship parameters
const (
	shipRadius = 1.0
	shipMass   = 10.0
	shipStartY = 1.0
)

// SpaceField owns every live object on the playfield
// Not safe for concurrent use; one goroutine drives all operations
type SpaceField struct {
	width, height int

	boundaryX core.Interval
	boundaryY core.Interval

	generator    core.RandomGenerator
	cfg          *config.SpaceFieldConfig
	explosionCfg *config.ExplosionConfig

	ship       *core.SpaceShip
	missiles   []*core.Missile
	asteroids  []*core.Asteroid
	explosions []*core.Explosion
}

// NewSpaceField creates a field with the ship at (width/2, 1) at rest
// Panics on non-positive dimensions or nil dependencies
func NewSpaceField(width, height int, generator core.RandomGenerator, cfg *config.SpaceFieldConfig, explosionCfg *config.ExplosionConfig) *SpaceField {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: space field dimensions must be positive, got %dx%d", width, height))
	}
	if generator == nil || cfg == nil || explosionCfg == nil {
		panic("engine: space field requires a random generator and configuration")
	}

	f := &SpaceField{
		width:        width,
		height:       height,
		boundaryX:    core.Interval{Min: 0, Max: float64(width)},
		boundaryY:    core.Interval{Min: 0, Max: float64(height)},
		generator:    generator,
		cfg:          cfg,
		explosionCfg: explosionCfg,
	}
	f.ship = core.NewSpaceShip(
		vmath.NewPoint2D(float64(width)/2, shipStartY),
		vmath.NewVector2D(0, 0),
		shipRadius,
		shipMass,
	)
	return f
}

func (f *SpaceField) Width() int  { return f.width }
func (f *SpaceField) Height() int { return f.height }

// Boundaries returns the closed x and y ranges of the field
func (f *SpaceField) Boundaries() (core.Interval, core.Interval) {
	return f.boundaryX, f.boundaryY
}

func (f *SpaceField) Ship() *core.SpaceShip { return f.ship }

// Missiles returns a copy of the missile list in append order
func (f *SpaceField) Missiles() []*core.Missile { return slices.Clone(f.missiles) }

// Asteroids returns a copy of the asteroid list in append order
func (f *SpaceField) Asteroids() []*core.Asteroid { return slices.Clone(f.asteroids) }

// Explosions returns a copy of the explosion list in append order
func (f *SpaceField) Explosions() []*core.Explosion { return slices.Clone(f.explosions) }

// SpaceObjects returns [ship] + missiles + asteroids + explosions, rebuilt on every call
func (f *SpaceField) SpaceObjects() []core.Object {
	objs := make([]core.Object, 0, 1+len(f.missiles)+len(f.asteroids)+len(f.explosions))
	objs = append(objs, f.ship)
	for _, m := range f.missiles {
		objs = append(objs, m)
	}
	for _, a := range f.asteroids {
		objs = append(objs, a)
	}
	for _, e := range f.explosions {
		objs = append(objs, e)
	}
	return objs
}

// --- Movement ---

func (f *SpaceField) MoveShip() {
	f.ship.Move(f.boundaryX, f.boundaryY)
}

func (f *SpaceField) MoveMissiles() {
	for _, m := range f.missiles {
		m.Move()
	}
}

func (f *SpaceField) MoveAsteroids() {
	for _, a := range f.asteroids {
		a.Move()
	}
}

// --- Generation ---

// GenerateMissile appends one missile ahead of the ship moving up at unit speed
func (f *SpaceField) GenerateMissile() {
	f.missiles = append(f.missiles, f.createMissile())
}

// GenerateAsteroid appends one asteroid with randomized kinematics at the top edge
func (f *SpaceField) GenerateAsteroid() {
	f.asteroids = append(f.asteroids, f.createAsteroid())
}

// GenerateExplosion appends one explosion centered at point
func (f *SpaceField) GenerateExplosion(point vmath.Point2D) {
	f.explosions = append(f.explosions, core.NewExplosion(point, f.explosionCfg))
}

func (f *SpaceField) createMissile() *core.Missile {
	offset := f.ship.Radius + f.cfg.MissileRadius + f.cfg.MissileDistanceFromShip
	return core.NewMissile(
		f.ship.Center.Add(vmath.NewVector2D(0, offset)),
		vmath.NewVector2D(0, 1),
		f.cfg.MissileRadius,
		f.cfg.MissileMass,
	)
}

// createAsteroid draws x, yaw, speed, radius, mass in that order
func (f *SpaceField) createAsteroid() *core.Asteroid {
	x := f.generator.IntegerInRange(0, f.width)
	position := vmath.NewPoint2D(float64(x), float64(f.height))

	yaw := f.generator.DoubleInInterval(-f.cfg.AsteroidMaxYaw, f.cfg.AsteroidMaxYaw)
	speed := f.generator.DoubleInInterval(f.cfg.AsteroidMinSpeed, f.cfg.AsteroidMaxSpeed)
	velocity := vmath.NewVector2D(yaw, -speed)

	radius := float64(f.generator.IntegerInRange(f.cfg.AsteroidMinRadius, f.cfg.AsteroidMaxRadius)) * f.cfg.AsteroidRadiusMultiplier
	mass := float64(f.generator.IntegerInRange(f.cfg.AsteroidMinMass, f.cfg.AsteroidMaxMass)) * f.cfg.AsteroidMassMultiplier

	return core.NewAsteroid(position, velocity, radius, mass)
}

// --- Pruning ---

// TrimMissiles drops missiles outside the field, order preserved
func (f *SpaceField) TrimMissiles() {
	f.missiles = slices.DeleteFunc(f.missiles, func(m *core.Missile) bool {
		return !m.InBoundaries(f.boundaryX, f.boundaryY)
	})
}

// TrimAsteroids drops asteroids outside the field, order preserved
func (f *SpaceField) TrimAsteroids() {
	f.asteroids = slices.DeleteFunc(f.asteroids, func(a *core.Asteroid) bool {
		return !a.InBoundaries(f.boundaryX, f.boundaryY)
	})
}

// TrimExplosions ages every explosion by one tick then drops the expired ones
// An explosion created this tick loses one life tick before its liveness check
func (f *SpaceField) TrimExplosions() {
	f.explosions = slices.DeleteFunc(f.explosions, func(e *core.Explosion) bool {
		e.ShortensLifeSpan()
		return !e.IsStillAlive()
	})
}
