package thermo

import "math"

// Distribution is a probability density over a scalar quantity
// (energy or speed). Densities may depend on tunable parameters.
type Distribution interface {
	// Density evaluates the probability density at x. Returns 0
	// outside the support.
	Density(x float64) float64

	// Support returns the interval the density is sampled over.
	// The upper bound is finite and chosen so the tail beyond it
	// is negligible.
	Support() (lo, hi float64)

	// Mean is the closed-form expectation value.
	Mean() float64

	// Mode is the closed-form most probable value.
	Mode() float64
}

// Configurable exposes tunable parameters for live views.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// IsFinite reports whether v is a usable sample value.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
