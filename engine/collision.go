package engine

import (
	"github.com/lixenwraith/galaxy-raiders/core"
	"github.com/lixenwraith/galaxy-raiders/vmath"
)

// explosive marks kind pairs whose collision spawns an explosion, kept symmetric
var explosive = func() (t [core.KindCount][core.KindCount]bool) {
	pairs := [][2]core.Kind{
		{core.KindMissile, core.KindAsteroid},
		{core.KindSpaceShip, core.KindAsteroid},
	}
	for _, p := range pairs {
		t[p[0]][p[1]] = true
		t[p[1]][p[0]] = true
	}
	return t
}()

// FindCollisionPoint returns the point on first's boundary facing second
// The result depends on argument order; coincident centers yield first's center
func (f *SpaceField) FindCollisionPoint(first, second core.Object) vmath.Point2D {
	a, b := first.Base(), second.Base()
	toSecond := b.Center.ToVector().Sub(a.Center.ToVector())
	return a.Center.Add(toSecond.Unit().Scale(a.Radius))
}

// HasCollisionExplosion reports whether the unordered kind pair is
// {Missile, Asteroid} or {SpaceShip, Asteroid}
func (f *SpaceField) HasCollisionExplosion(first, second core.Object) bool {
	return explosive[first.Base().Kind()][second.Base().Kind()]
}
