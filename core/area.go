package core

// Interval is a closed range [Min, Max] on one axis
type Interval struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max]
func (i Interval) Contains(v float64) bool {
	return v >= i.Min && v <= i.Max
}

// Clamp returns v restricted to [Min, Max]
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}
