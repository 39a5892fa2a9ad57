package physics

import "github.com/lixenwraith/galaxy-raiders/core"

// Impacts reports whether two circles overlap or touch
func Impacts(first, second core.Object) bool {
	a, b := first.Base(), second.Base()
	return a.Center.Distance(b.Center) <= a.Radius+b.Radius
}

// CollideWith resolves the normal velocity components of two approaching bodies
// restitution 1 is elastic, 0 is perfectly inelastic; tangential components are kept
// No-op when centers coincide or the bodies already separate
func CollideWith(first, second core.Object, restitution float64) {
	a, b := first.Base(), second.Base()

	normal := b.Center.Sub(a.Center).Unit()
	if normal.IsZero() {
		return
	}

	// Closing speed along the normal, positive when approaching
	va := a.Velocity.Dot(normal)
	vb := b.Velocity.Dot(normal)
	if va-vb <= 0 {
		return
	}

	total := a.Mass + b.Mass
	momentum := a.Mass*va + b.Mass*vb
	vaAfter := (momentum + b.Mass*restitution*(vb-va)) / total
	vbAfter := (momentum + a.Mass*restitution*(va-vb)) / total

	a.Velocity = a.Velocity.Add(normal.Scale(vaAfter - va))
	b.Velocity = b.Velocity.Add(normal.Scale(vbAfter - vb))
}
