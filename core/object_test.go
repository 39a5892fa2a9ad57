package core

import (
	"testing"

	"github.com/lixenwraith/galaxy-raiders/config"
	"github.com/lixenwraith/galaxy-raiders/vmath"
)

var (
	testBoundaryX = Interval{Min: 0, Max: 100}
	testBoundaryY = Interval{Min: 0, Max: 50}
)

func TestKindLabelsAndSymbols(t *testing.T) {
	tests := []struct {
		kind   Kind
		label  string
		symbol rune
	}{
		{KindSpaceShip, "SpaceShip", '@'},
		{KindMissile, "Missile", '^'},
		{KindAsteroid, "Asteroid", '.'},
		{KindExplosion, "Explosion", 'X'},
	}
	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.label {
			t.Errorf("Expected label %q, got %q", tt.label, got)
		}
		if got := tt.kind.Symbol(); got != tt.symbol {
			t.Errorf("Expected symbol %q for %s, got %q", tt.symbol, tt.label, got)
		}
	}
	if got := Kind(KindCount).Label(); got != "Unknown" {
		t.Errorf("Expected Unknown for out-of-range kind, got %q", got)
	}
}

func TestMoveAddsVelocity(t *testing.T) {
	m := NewMissile(vmath.NewPoint2D(10, 10), vmath.NewVector2D(0, 1), 1, 1)
	m.Move()
	m.Move()
	if !m.Center.ApproxEqual(vmath.NewPoint2D(10, 12)) {
		t.Errorf("Expected (10, 12), got %v", m.Center)
	}
}

// Missiles and asteroids drift off-field, they are not clamped
func TestUnboundedMoveLeavesField(t *testing.T) {
	a := NewAsteroid(vmath.NewPoint2D(50, 0.5), vmath.NewVector2D(0, -1), 1, 1)
	a.Move()
	if a.InBoundaries(testBoundaryX, testBoundaryY) {
		t.Errorf("Expected asteroid at %v to be out of boundaries", a.Center)
	}
}

func TestShipMoveIsClamped(t *testing.T) {
	tests := []struct {
		name     string
		start    vmath.Point2D
		velocity vmath.Vector2D
		want     vmath.Point2D
	}{
		{"inside", vmath.NewPoint2D(50, 25), vmath.NewVector2D(1, -1), vmath.NewPoint2D(51, 24)},
		{"past right", vmath.NewPoint2D(99, 25), vmath.NewVector2D(5, 0), vmath.NewPoint2D(100, 25)},
		{"past bottom", vmath.NewPoint2D(50, 1), vmath.NewVector2D(0, -3), vmath.NewPoint2D(50, 0)},
		{"past corner", vmath.NewPoint2D(1, 49), vmath.NewVector2D(-4, 4), vmath.NewPoint2D(0, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpaceShip(tt.start, tt.velocity, 1, 10)
			s.Move(testBoundaryX, testBoundaryY)
			if !s.Center.ApproxEqual(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, s.Center)
			}
			if !s.InBoundaries(testBoundaryX, testBoundaryY) {
				t.Error("Expected ship to stay within boundaries")
			}
		})
	}
}

func TestShipBoost(t *testing.T) {
	s := NewSpaceShip(vmath.NewPoint2D(50, 1), vmath.Vector2D{}, 1, 10)
	s.BoostUp(1)
	s.BoostRight(0.5)
	s.BoostLeft(0.25)
	s.BoostDown(0.5)
	if !s.Velocity.ApproxEqual(vmath.NewVector2D(0.25, 0.5)) {
		t.Errorf("Expected <0.25, 0.5>, got %v", s.Velocity)
	}
}

// Boundaries are closed on both ends
func TestInBoundariesClosedIntervals(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{100, 50, true},
		{50, 25, true},
		{-0.001, 25, false},
		{50, 50.001, false},
		{100.5, 10, false},
	}
	for _, tt := range tests {
		o := NewSpaceObject(KindAsteroid, vmath.NewPoint2D(tt.x, tt.y), vmath.Vector2D{}, 1, 1)
		if got := o.InBoundaries(testBoundaryX, testBoundaryY); got != tt.want {
			t.Errorf("InBoundaries(%g, %g): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestNonPositiveRadiusOrMassPanics(t *testing.T) {
	tests := []struct {
		name         string
		radius, mass float64
	}{
		{"zero radius", 0, 1},
		{"negative radius", -1, 1},
		{"zero mass", 1, 0},
		{"negative mass", 1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			NewSpaceObject(KindMissile, vmath.NewPoint2D(0, 0), vmath.Vector2D{}, tt.radius, tt.mass)
		})
	}
}

func TestExplosionLifecycle(t *testing.T) {
	cfg := &config.ExplosionConfig{Lifespan: 3, Radius: 2, Mass: 1}
	e := NewExplosion(vmath.NewPoint2D(5, 5), cfg)

	if e.Kind() != KindExplosion {
		t.Errorf("Expected KindExplosion, got %s", e.Kind())
	}
	if !e.Velocity.IsZero() {
		t.Errorf("Expected zero velocity, got %v", e.Velocity)
	}
	if e.Radius != 2 || e.Mass != 1 {
		t.Errorf("Expected radius 2 mass 1, got %g %g", e.Radius, e.Mass)
	}

	for i := 0; i < cfg.Lifespan-1; i++ {
		e.ShortensLifeSpan()
		if !e.IsStillAlive() {
			t.Fatalf("Expected alive after %d decrements", i+1)
		}
	}
	e.ShortensLifeSpan()
	if e.IsStillAlive() {
		t.Error("Expected expired after lifespan decrements")
	}
	if e.RemainingLifeTicks != 0 {
		t.Errorf("Expected 0 remaining ticks, got %d", e.RemainingLifeTicks)
	}
}

func TestIntervalClamp(t *testing.T) {
	i := Interval{Min: -1, Max: 1}
	if got := i.Clamp(-3); got != -1 {
		t.Errorf("Expected -1, got %g", got)
	}
	if got := i.Clamp(0.5); got != 0.5 {
		t.Errorf("Expected 0.5, got %g", got)
	}
	if got := i.Clamp(2); got != 1 {
		t.Errorf("Expected 1, got %g", got)
	}
}
