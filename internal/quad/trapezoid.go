package quad

type Trapezoid struct{}

func NewTrapezoid() *Trapezoid { return &Trapezoid{} }

func (t *Trapezoid) Name() string { return "trapezoid" }

func (t *Trapezoid) Integrate(f Func, a, b float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h
}

// Trapz integrates sampled data over a (possibly non-uniform) grid.
func Trapz(xs, ys []float64) float64 {
	sum := 0.0
	for i := 1; i < len(xs) && i < len(ys); i++ {
		sum += 0.5 * (ys[i] + ys[i-1]) * (xs[i] - xs[i-1])
	}
	return sum
}

// CumTrapz returns the running trapezoid integral at each grid point.
// The first element is 0.
func CumTrapz(xs, ys []float64) []float64 {
	out := make([]float64, len(xs))
	for i := 1; i < len(xs) && i < len(ys); i++ {
		out[i] = out[i-1] + 0.5*(ys[i]+ys[i-1])*(xs[i]-xs[i-1])
	}
	return out
}

// Gradient is the central-difference derivative dy/dx over a grid,
// with one-sided differences at the ends.
func Gradient(ys, xs []float64) []float64 {
	n := len(ys)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	out[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
	out[n-1] = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	return out
}
