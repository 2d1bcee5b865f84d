package quad

import "errors"

// Func is a scalar integrand.
type Func func(x float64) float64

// Rule is a fixed-grid quadrature rule over [a, b] with n subintervals.
type Rule interface {
	Name() string
	Integrate(f Func, a, b float64, n int) float64
}

// AdaptiveRule refines intervals until a local error tolerance is met.
type AdaptiveRule interface {
	Rule
	IntegrateAdaptive(f Func, a, b, tol float64) (float64, error)
}

// ErrIntervalTooSmall indicates adaptive refinement hit the minimum
// interval width without meeting the tolerance.
var ErrIntervalTooSmall = errors.New("quad: adaptive interval below minimum width")
