package vmath

// FastRand is a xorshift64 generator, not safe for concurrent use
// Implements core.RandomGenerator with closed-range draws
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator, zero seed maps to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), zero for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// unitClosed returns a value in [0, 1] built from the top 53 bits
func (r *FastRand) unitClosed() float64 {
	const mantissa = 1<<53 - 1
	return float64(r.Next()>>11) / mantissa
}

// IntegerInRange returns a value in [min, max], both ends inclusive
func (r *FastRand) IntegerInRange(min, max int) int {
	return min + r.Intn(max-min+1)
}

// DoubleInInterval returns a value in [min, max], both ends inclusive
func (r *FastRand) DoubleInInterval(min, max float64) float64 {
	v := min + r.unitClosed()*(max-min)
	// Rounding on wide intervals can overshoot by one ulp
	if v > max {
		return max
	}
	return v
}
