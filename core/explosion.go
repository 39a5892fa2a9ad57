package core

import (
	"github.com/lixenwraith/galaxy-raiders/config"
	"github.com/lixenwraith/galaxy-raiders/vmath"
)

// Explosion is stationary and counts down RemainingLifeTicks to removal
// Not collidable
type Explosion struct {
	SpaceObject
	RemainingLifeTicks int
}

// NewExplosion creates a live explosion at center from the explosion tuning
func NewExplosion(center vmath.Point2D, cfg *config.ExplosionConfig) *Explosion {
	return &Explosion{
		SpaceObject:        NewSpaceObject(KindExplosion, center, vmath.Vector2D{}, cfg.Radius, cfg.Mass),
		RemainingLifeTicks: cfg.Lifespan,
	}
}

// IsStillAlive reports RemainingLifeTicks > 0
func (e *Explosion) IsStillAlive() bool {
	return e.RemainingLifeTicks > 0
}

// ShortensLifeSpan consumes one tick of life
func (e *Explosion) ShortensLifeSpan() {
	e.RemainingLifeTicks--
}
