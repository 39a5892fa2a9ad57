package core

// Kind identifies the closed set of space object variants
type Kind uint8

const (
	KindSpaceShip Kind = iota
	KindMissile
	KindAsteroid
	KindExplosion

	kindCount
)

var kindLabels = [kindCount]string{
	KindSpaceShip: "SpaceShip",
	KindMissile:   "Missile",
	KindAsteroid:  "Asteroid",
	KindExplosion: "Explosion",
}

var kindSymbols = [kindCount]rune{
	KindSpaceShip: '@',
	KindMissile:   '^',
	KindAsteroid:  '.',
	KindExplosion: 'X',
}

// KindCount is the number of variants, for tables indexed by Kind
const KindCount = int(kindCount)

// Label returns the human-readable kind name
func (k Kind) Label() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindLabels[k]
}

// Symbol returns the single-character render tag
func (k Kind) Symbol() rune {
	if k >= kindCount {
		return '?'
	}
	return kindSymbols[k]
}

func (k Kind) String() string { return k.Label() }
