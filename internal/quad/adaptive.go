package quad

import (
	"fmt"
	"math"
)

// AdaptiveSimpson refines intervals recursively until the Richardson
// error estimate meets the tolerance, halving the interval otherwise.
// The tolerance and the minimum interval width are both relative — to
// the integral's own magnitude and to the initial interval — so the
// rule behaves the same on joule-scale energy grids as on order-one
// ones.
type AdaptiveSimpson struct {
	relMinWidth float64
}

func NewAdaptiveSimpson() *AdaptiveSimpson {
	return &AdaptiveSimpson{relMinWidth: 1e-12}
}

func (a *AdaptiveSimpson) Name() string { return "adaptive" }

const defaultRelTol = 1e-10

// Integrate satisfies Rule; n is ignored and the default tolerance used.
func (a *AdaptiveSimpson) Integrate(f Func, lo, hi float64, n int) float64 {
	v, _ := a.IntegrateAdaptive(f, lo, hi, defaultRelTol)
	return v
}

// IntegrateAdaptive integrates f over [lo, hi] until each interval's
// Richardson estimate meets tol, relative to the coarse estimate of
// the whole integral.
func (a *AdaptiveSimpson) IntegrateAdaptive(f Func, lo, hi, tol float64) (float64, error) {
	if tol <= 0 {
		return 0, fmt.Errorf("quad: tolerance must be positive, got %g", tol)
	}
	whole := simpsonSlice(f, lo, hi)
	scale := math.Abs(whole)
	if scale == 0 {
		scale = 1
	}
	minWidth := math.Abs(hi-lo) * a.relMinWidth
	return a.refine(f, lo, hi, tol*scale, whole, minWidth, 0)
}

const maxDepth = 48

func (a *AdaptiveSimpson) refine(f Func, lo, hi, tol, whole, minWidth float64, depth int) (float64, error) {
	mid := 0.5 * (lo + hi)
	left := simpsonSlice(f, lo, mid)
	right := simpsonSlice(f, mid, hi)
	diff := left + right - whole

	if math.Abs(diff) <= 15*tol {
		return left + right + diff/15, nil
	}
	if hi-lo < minWidth || depth >= maxDepth {
		return left + right, fmt.Errorf("%w: [%g, %g]", ErrIntervalTooSmall, lo, hi)
	}

	lv, lerr := a.refine(f, lo, mid, tol, left, minWidth, depth+1)
	rv, rerr := a.refine(f, mid, hi, tol, right, minWidth, depth+1)
	if lerr != nil {
		return lv + rv, lerr
	}
	return lv + rv, rerr
}

func simpsonSlice(f Func, lo, hi float64) float64 {
	mid := 0.5 * (lo + hi)
	return (hi - lo) / 6 * (f(lo) + 4*f(mid) + f(hi))
}
