package core

import "github.com/lixenwraith/galaxy-raiders/vmath"

// SpaceShip is clamped to the field and never leaves it
type SpaceShip struct {
	SpaceObject
}

func NewSpaceShip(center vmath.Point2D, velocity vmath.Vector2D, radius, mass float64) *SpaceShip {
	return &SpaceShip{SpaceObject: NewSpaceObject(KindSpaceShip, center, velocity, radius, mass)}
}

// Move advances the ship then clamps its center to the boundaries
func (s *SpaceShip) Move(boundaryX, boundaryY Interval) {
	s.SpaceObject.Move()
	s.Center = vmath.NewPoint2D(boundaryX.Clamp(s.Center.X()), boundaryY.Clamp(s.Center.Y()))
}

func (s *SpaceShip) BoostUp(amount float64)    { s.boost(0, amount) }
func (s *SpaceShip) BoostDown(amount float64)  { s.boost(0, -amount) }
func (s *SpaceShip) BoostLeft(amount float64)  { s.boost(-amount, 0) }
func (s *SpaceShip) BoostRight(amount float64) { s.boost(amount, 0) }

func (s *SpaceShip) boost(dx, dy float64) {
	s.Velocity = s.Velocity.Add(vmath.NewVector2D(dx, dy))
}

// Missile drifts without clamping and is pruned once outside the field
type Missile struct {
	SpaceObject
}

func NewMissile(center vmath.Point2D, velocity vmath.Vector2D, radius, mass float64) *Missile {
	return &Missile{SpaceObject: NewSpaceObject(KindMissile, center, velocity, radius, mass)}
}

// Asteroid drifts without clamping and is pruned once outside the field
type Asteroid struct {
	SpaceObject
}

func NewAsteroid(center vmath.Point2D, velocity vmath.Vector2D, radius, mass float64) *Asteroid {
	return &Asteroid{SpaceObject: NewSpaceObject(KindAsteroid, center, velocity, radius, mass)}
}
