package core

// RandomGenerator supplies closed-range draws for procedural generation
// Callers pass min <= max; implementations must stay within the bounds
type RandomGenerator interface {
	IntegerInRange(min, max int) int
	DoubleInInterval(min, max float64) float64
}
