package quad

type Simpson struct{}

func NewSimpson() *Simpson { return &Simpson{} }

func (s *Simpson) Name() string { return "simpson" }

func (s *Simpson) Integrate(f Func, a, b float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}
	return sum * h / 3
}
