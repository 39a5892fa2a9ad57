package vmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point2D is a position on the field plane, y grows upward
type Point2D struct {
	v mgl64.Vec2
}

// Vector2D is a displacement or velocity on the field plane
type Vector2D struct {
	v mgl64.Vec2
}

// NewPoint2D creates a point at (x, y)
func NewPoint2D(x, y float64) Point2D {
	return Point2D{v: mgl64.Vec2{x, y}}
}

// NewVector2D creates a vector (dx, dy)
func NewVector2D(dx, dy float64) Vector2D {
	return Vector2D{v: mgl64.Vec2{dx, dy}}
}

func (p Point2D) X() float64 { return p.v.X() }
func (p Point2D) Y() float64 { return p.v.Y() }

// Add translates the point by a vector
func (p Point2D) Add(d Vector2D) Point2D {
	return Point2D{v: p.v.Add(d.v)}
}

// Sub returns the vector pointing from other to p
func (p Point2D) Sub(other Point2D) Vector2D {
	return Vector2D{v: p.v.Sub(other.v)}
}

// ToVector returns the vector from the origin to p
func (p Point2D) ToVector() Vector2D {
	return Vector2D{v: p.v}
}

// Distance returns the Euclidean distance between two points
func (p Point2D) Distance(other Point2D) float64 {
	return p.v.Sub(other.v).Len()
}

// ApproxEqual compares within mgl64.Epsilon per component
func (p Point2D) ApproxEqual(other Point2D) bool {
	return p.v.ApproxEqual(other.v)
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.v.X(), p.v.Y())
}

func (d Vector2D) DX() float64 { return d.v.X() }
func (d Vector2D) DY() float64 { return d.v.Y() }

func (d Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v: d.v.Add(other.v)}
}

func (d Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v: d.v.Sub(other.v)}
}

// Scale multiplies both components by factor
func (d Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{v: d.v.Mul(factor)}
}

// Dot returns the scalar product
func (d Vector2D) Dot(other Vector2D) float64 {
	return d.v.Dot(other.v)
}

// Magnitude returns the Euclidean length
func (d Vector2D) Magnitude() float64 {
	return d.v.Len()
}

// Unit returns the normalized vector, zero-safe
func (d Vector2D) Unit() Vector2D {
	if d.v.Len() == 0 {
		return Vector2D{}
	}
	return Vector2D{v: d.v.Normalize()}
}

// IsZero reports whether both components are exactly zero
func (d Vector2D) IsZero() bool {
	return d.v[0] == 0 && d.v[1] == 0
}

// ApproxEqual compares within mgl64.Epsilon per component
func (d Vector2D) ApproxEqual(other Vector2D) bool {
	return d.v.ApproxEqual(other.v)
}

func (d Vector2D) String() string {
	return fmt.Sprintf("<%g, %g>", d.v.X(), d.v.Y())
}
