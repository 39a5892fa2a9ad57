package config

// Defaults returns a complete source with the stock tuning
func Defaults() MapSource {
	return MapSource{
		ExplosionPrefix + "LIFESPAN": "10",
		ExplosionPrefix + "RADIUS":   "2.0",
		ExplosionPrefix + "MASS":     "1.0",

		SpaceFieldPrefix + "MISSILE_RADIUS":             "1.0",
		SpaceFieldPrefix + "MISSILE_MASS":               "1.0",
		SpaceFieldPrefix + "MISSILE_DISTANCE_FROM_SHIP": "1.0",
		SpaceFieldPrefix + "ASTEROID_MAX_YAW":           "0.3",
		SpaceFieldPrefix + "ASTEROID_MIN_SPEED":         "0.3",
		SpaceFieldPrefix + "ASTEROID_MAX_SPEED":         "1.0",
		SpaceFieldPrefix + "ASTEROID_MIN_RADIUS":        "1",
		SpaceFieldPrefix + "ASTEROID_MAX_RADIUS":        "3",
		SpaceFieldPrefix + "ASTEROID_RADIUS_MULTIPLIER": "1.0",
		SpaceFieldPrefix + "ASTEROID_MIN_MASS":          "100",
		SpaceFieldPrefix + "ASTEROID_MAX_MASS":          "500",
		SpaceFieldPrefix + "ASTEROID_MASS_MULTIPLIER":   "0.1",

		EnginePrefix + "SPACE_FIELD_WIDTH":       "100",
		EnginePrefix + "SPACE_FIELD_HEIGHT":      "100",
		EnginePrefix + "FRAME_RATE":              "30",
		EnginePrefix + "ASTEROID_PROBABILITY":    "0.04",
		EnginePrefix + "COEFFICIENT_RESTITUTION": "0.8",
		EnginePrefix + "SHIP_BOOST":              "0.5",
	}
}
