package engine

import (
	"github.com/lixenwraith/galaxy-raiders/config"
)

// boundGenerator always answers with one end of the requested range
type boundGenerator struct {
	max bool
}

func (g boundGenerator) IntegerInRange(min, max int) int {
	if g.max {
		return max
	}
	return min
}

func (g boundGenerator) DoubleInInterval(min, max float64) float64 {
	if g.max {
		return max
	}
	return min
}

var (
	minGenerator = boundGenerator{max: false}
	maxGenerator = boundGenerator{max: true}
)

func testFieldConfig() *config.SpaceFieldConfig {
	return &config.SpaceFieldConfig{
		MissileRadius:            0.5,
		MissileMass:              1,
		MissileDistanceFromShip:  2,
		AsteroidMaxYaw:           0.4,
		AsteroidMinSpeed:         0.5,
		AsteroidMaxSpeed:         2,
		AsteroidMinRadius:        1,
		AsteroidMaxRadius:        4,
		AsteroidRadiusMultiplier: 1.5,
		AsteroidMinMass:          10,
		AsteroidMaxMass:          50,
		AsteroidMassMultiplier:   0.5,
	}
}

func testExplosionConfig() *config.ExplosionConfig {
	return &config.ExplosionConfig{Lifespan: 5, Radius: 2, Mass: 1}
}

func newTestField(gen boundGenerator) *SpaceField {
	return NewSpaceField(100, 100, gen, testFieldConfig(), testExplosionConfig())
}
