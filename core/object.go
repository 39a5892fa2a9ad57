package core

import (
	"fmt"

	"github.com/lixenwraith/galaxy-raiders/vmath"
)

// Object is the read view shared by every space object variant
type Object interface {
	Base() *SpaceObject
}

// SpaceObject holds the state common to everything on the field
// Radius and Mass stay strictly positive for the object's lifetime
type SpaceObject struct {
	kind     Kind
	Center   vmath.Point2D
	Velocity vmath.Vector2D
	Radius   float64
	Mass     float64
}

// NewSpaceObject panics on non-positive radius or mass
func NewSpaceObject(kind Kind, center vmath.Point2D, velocity vmath.Vector2D, radius, mass float64) SpaceObject {
	if radius <= 0 {
		panic(fmt.Sprintf("core: %s radius must be positive, got %g", kind, radius))
	}
	if mass <= 0 {
		panic(fmt.Sprintf("core: %s mass must be positive, got %g", kind, mass))
	}
	return SpaceObject{
		kind:     kind,
		Center:   center,
		Velocity: velocity,
		Radius:   radius,
		Mass:     mass,
	}
}

func (o *SpaceObject) Base() *SpaceObject { return o }

func (o *SpaceObject) Kind() Kind { return o.kind }

// Label returns the kind name, e.g. "Missile"
func (o *SpaceObject) Label() string { return o.kind.Label() }

func (o *SpaceObject) Symbol() rune { return o.kind.Symbol() }

// Move advances the center by one tick of velocity, no boundary policy
func (o *SpaceObject) Move() {
	o.Center = o.Center.Add(o.Velocity)
}

// InBoundaries reports whether the center lies within both closed intervals
func (o *SpaceObject) InBoundaries(boundaryX, boundaryY Interval) bool {
	return boundaryX.Contains(o.Center.X()) && boundaryY.Contains(o.Center.Y())
}

func (o *SpaceObject) String() string {
	return fmt.Sprintf("%s%c{center=%v velocity=%v radius=%g mass=%g}",
		o.Label(), o.Symbol(), o.Center, o.Velocity, o.Radius, o.Mass)
}
