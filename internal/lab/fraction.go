package lab

import (
	"context"
	"fmt"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// FractionStudy computes the cumulative fraction of particles with
// energy at or below E0, F(E0) = integral of f(E) from 0 to E0. The
// sampled density is normalized on its own grid first so F reaches
// exactly 1 at the upper end, then the quantile energies are read off
// the cumulative curve.
type FractionStudy struct{}

func (s *FractionStudy) Name() string     { return "fraction" }
func (s *FractionStudy) Describe() string { return "cumulative energy fraction F(E0)" }

func (s *FractionStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "temperature", Min: 50, Max: 1500},
		{Name: "cutoff_kt", Min: 0.1, Max: 10},
	}
}

var fractionQuantiles = []float64{0.25, 0.50, 0.75, 0.90}

func (s *FractionStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if cfg.CutoffKT <= 0 {
		return nil, fmt.Errorf("%w: cutoff %g kT", thermo.ErrParameterBounds, cfg.CutoffKT)
	}

	dist := thermo.NewBoltzmannEnergy(cfg.Temperature)
	kt := thermo.KT(cfg.Temperature)
	lo, hi := dist.Support()

	xs := Grid(lo, hi, cfg.Points)
	ys, err := sampleDensity(ctx, dist, xs)
	if err != nil {
		return nil, err
	}

	total := quad.Trapz(xs, ys)
	if total <= 0 {
		return nil, fmt.Errorf("%w: normalization integral %g", thermo.ErrInvalidSample, total)
	}
	for i := range ys {
		ys[i] /= total
	}
	cumulative := quad.CumTrapz(xs, ys)

	xkt := make([]float64, len(xs))
	for i, x := range xs {
		xkt[i] = x / kt
	}

	metrics := map[string]float64{
		"fraction_at_e0": interpolate(xkt, cumulative, cfg.CutoffKT),
	}
	for _, q := range fractionQuantiles {
		metrics[fmt.Sprintf("quantile_%02.0f_kt", q*100)] = quantile(xkt, cumulative, q)
	}

	return &Result{
		Study:  s.Name(),
		XLabel: "E / kT",
		X:      xkt,
		Series: []Series{
			{Label: "f(E) normalized", Y: ys},
			{Label: "F(E)", Y: cumulative},
		},
		Metrics: metrics,
	}, nil
}

// interpolate reads y at x0 off a monotonically sampled curve.
func interpolate(xs, ys []float64, x0 float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	if x0 <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] >= x0 {
			t := (x0 - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}

// quantile returns the x at which the cumulative curve crosses frac.
func quantile(xs, cumulative []float64, frac float64) float64 {
	for i := 1; i < len(cumulative); i++ {
		if cumulative[i] >= frac {
			t := (frac - cumulative[i-1]) / (cumulative[i] - cumulative[i-1])
			return xs[i-1] + t*(xs[i]-xs[i-1])
		}
	}
	return xs[len(xs)-1]
}
