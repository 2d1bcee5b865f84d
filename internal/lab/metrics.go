package lab

// Metric accumulates a scalar over (x, y) samples of a curve.
type Metric interface {
	Name() string
	Observe(x, y float64)
	Value() float64
	Reset()
}

// Normalization accumulates the trapezoid integral of the observed curve.
type Normalization struct {
	name       string
	prevX      float64
	prevY      float64
	sum        float64
	hasSamples bool
}

func NewNormalization(name string) *Normalization {
	return &Normalization{name: name}
}

func (n *Normalization) Name() string { return n.name }

func (n *Normalization) Observe(x, y float64) {
	if n.hasSamples {
		n.sum += 0.5 * (y + n.prevY) * (x - n.prevX)
	}
	n.prevX, n.prevY = x, y
	n.hasSamples = true
}

func (n *Normalization) Value() float64 { return n.sum }

func (n *Normalization) Reset() {
	n.sum = 0
	n.hasSamples = false
}

// MeanValue accumulates the integrals of x*y and y; Value is their
// ratio, the expectation of x under density y.
type MeanValue struct {
	name       string
	prevX      float64
	prevY      float64
	moment     float64
	mass       float64
	hasSamples bool
}

func NewMeanValue(name string) *MeanValue {
	return &MeanValue{name: name}
}

func (m *MeanValue) Name() string { return m.name }

func (m *MeanValue) Observe(x, y float64) {
	if m.hasSamples {
		dx := x - m.prevX
		m.mass += 0.5 * (y + m.prevY) * dx
		m.moment += 0.5 * (x*y + m.prevX*m.prevY) * dx
	}
	m.prevX, m.prevY = x, y
	m.hasSamples = true
}

func (m *MeanValue) Value() float64 {
	if m.mass == 0 {
		return 0
	}
	return m.moment / m.mass
}

func (m *MeanValue) Reset() {
	m.moment = 0
	m.mass = 0
	m.hasSamples = false
}

// Peak tracks the x at which the largest y was observed.
type Peak struct {
	name string
	maxY float64
	atX  float64
	seen bool
}

func NewPeak(name string) *Peak { return &Peak{name: name} }

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x, y float64) {
	if !p.seen || y > p.maxY {
		p.maxY, p.atX = y, x
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.atX }

func (p *Peak) Reset() {
	p.maxY, p.atX = 0, 0
	p.seen = false
}

func observeAll(metrics []Metric, xs, ys []float64) {
	for _, m := range metrics {
		m.Reset()
	}
	for i := range xs {
		for _, m := range metrics {
			m.Observe(xs[i], ys[i])
		}
	}
}
