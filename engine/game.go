package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/galaxy-raiders/config"
	"github.com/lixenwraith/galaxy-raiders/core"
	"github.com/lixenwraith/galaxy-raiders/physics"
	"github.com/lixenwraith/galaxy-raiders/status"
)

// Counter names published to the status registry
const (
	MetricTicks            = "ticks"
	MetricMissilesFired    = "missiles_fired"
	MetricAsteroidsSpawned = "asteroids_spawned"
	MetricCollisions       = "collisions"
	MetricExplosions       = "explosions"
	MetricLiveObjects      = "live_objects"
)

// Direction selects a ship boost axis
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Game composes the field operations into ticks
// move, generate, resolve collisions, trim; in that order
type Game struct {
	field     *SpaceField
	cfg       *config.EngineConfig
	generator core.RandomGenerator
	logger    *slog.Logger

	firePending bool
	paused      bool

	// Cached counters
	ticks            *atomic.Int64
	missilesFired    *atomic.Int64
	asteroidsSpawned *atomic.Int64
	collisions       *atomic.Int64
	explosions       *atomic.Int64
	liveObjects      *atomic.Int64
}

// NewGame wires a field to the tick loop; generator also drives asteroid spawn rolls
func NewGame(field *SpaceField, cfg *config.EngineConfig, generator core.RandomGenerator, stats *status.Registry) *Game {
	return &Game{
		field:            field,
		cfg:              cfg,
		generator:        generator,
		logger:           slog.With("component", "engine"),
		ticks:            stats.Counter(MetricTicks),
		missilesFired:    stats.Counter(MetricMissilesFired),
		asteroidsSpawned: stats.Counter(MetricAsteroidsSpawned),
		collisions:       stats.Counter(MetricCollisions),
		explosions:       stats.Counter(MetricExplosions),
		liveObjects:      stats.Counter(MetricLiveObjects),
	}
}

// NewGameFromConfig builds the field and game from loaded tuning
func NewGameFromConfig(cfg *config.Config, generator core.RandomGenerator, stats *status.Registry) *Game {
	field := NewSpaceField(
		cfg.Engine.SpaceFieldWidth,
		cfg.Engine.SpaceFieldHeight,
		generator,
		&cfg.SpaceField,
		&cfg.Explosion,
	)
	return NewGame(field, &cfg.Engine, generator, stats)
}

func (g *Game) Field() *SpaceField { return g.field }

func (g *Game) Paused() bool { return g.paused }

// TogglePause flips the paused state, a paused game ignores Tick
func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.logger.Debug("Pause toggled", "paused", g.paused)
}

// Fire requests one missile at the next tick's generation phase
// Repeated requests within a tick collapse into one
func (g *Game) Fire() {
	if g.paused {
		return
	}
	g.firePending = true
}

// Boost adds the configured boost to the ship velocity along dir
func (g *Game) Boost(dir Direction) {
	if g.paused {
		return
	}
	ship := g.field.Ship()
	switch dir {
	case DirectionUp:
		ship.BoostUp(g.cfg.ShipBoost)
	case DirectionDown:
		ship.BoostDown(g.cfg.ShipBoost)
	case DirectionLeft:
		ship.BoostLeft(g.cfg.ShipBoost)
	case DirectionRight:
		ship.BoostRight(g.cfg.ShipBoost)
	}
}

// Ticks returns the number of completed ticks
func (g *Game) Ticks() int64 { return g.ticks.Load() }

// Tick runs one simulation step, no-op while paused
func (g *Game) Tick() {
	if g.paused {
		return
	}

	g.move()
	g.generate()
	g.resolveCollisions()
	g.trim()

	g.ticks.Add(1)
	g.liveObjects.Store(int64(len(g.field.SpaceObjects())))
}

func (g *Game) move() {
	g.field.MoveShip()
	g.field.MoveMissiles()
	g.field.MoveAsteroids()
}

func (g *Game) generate() {
	if g.firePending {
		g.firePending = false
		g.field.GenerateMissile()
		g.missilesFired.Add(1)
	}

	if g.generator.DoubleInInterval(0, 1) <= g.cfg.AsteroidProbability {
		g.field.GenerateAsteroid()
		g.asteroidsSpawned.Add(1)
	}
}

// resolveCollisions scans every pair once, lower index first
// Field order puts the ship and missiles before asteroids, so they are always first
func (g *Game) resolveCollisions() {
	objs := g.field.SpaceObjects()
	for i := 0; i < len(objs); i++ {
		if objs[i].Base().Kind() == core.KindExplosion {
			continue
		}
		for j := i + 1; j < len(objs); j++ {
			if objs[j].Base().Kind() == core.KindExplosion {
				continue
			}
			first, second := objs[i], objs[j]
			if !physics.Impacts(first, second) {
				continue
			}

			g.collisions.Add(1)
			if g.field.HasCollisionExplosion(first, second) {
				point := g.field.FindCollisionPoint(first, second)
				g.field.GenerateExplosion(point)
				g.explosions.Add(1)
				g.logger.Debug("Explosion",
					"first", first.Base().Label(),
					"second", second.Base().Label(),
					"point", point.String(),
				)
			}
			physics.CollideWith(first, second, g.cfg.CoefficientRestitution)
		}
	}
}

func (g *Game) trim() {
	g.field.TrimMissiles()
	g.field.TrimAsteroids()
	g.field.TrimExplosions()
}
