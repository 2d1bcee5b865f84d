package lab

import (
	"context"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// BoltzmannStudy samples the Boltzmann energy distribution and checks
// its normalization, mean, and peak against the closed forms.
type BoltzmannStudy struct{}

func (s *BoltzmannStudy) Name() string     { return "boltzmann" }
func (s *BoltzmannStudy) Describe() string { return "energy distribution f(E)" }

func (s *BoltzmannStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "temperature", Min: 50, Max: 1500},
	}
}

func (s *BoltzmannStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	dist := thermo.NewBoltzmannEnergy(cfg.Temperature)
	kt := thermo.KT(cfg.Temperature)
	lo, hi := dist.Support()

	xs := Grid(lo, hi, cfg.Points)
	ys, err := sampleDensity(ctx, dist, xs)
	if err != nil {
		return nil, err
	}

	mean := NewMeanValue("mean")
	peak := NewPeak("peak")
	observeAll([]Metric{mean, peak}, xs, ys)

	// X axis in units of kT for plotting
	xkt := make([]float64, len(xs))
	for i, x := range xs {
		xkt[i] = x / kt
	}

	norm, err := integrate(rule, dist.Density, lo, hi, cfg.Points)
	if err != nil {
		return nil, err
	}

	return &Result{
		Study:  s.Name(),
		XLabel: "E / kT",
		X:      xkt,
		Series: []Series{{Label: "f(E)", Y: ys}},
		Metrics: map[string]float64{
			"normalization": norm,
			"mean_kt":       mean.Value() / kt,
			"peak_kt":       peak.Value() / kt,
			"mean_kt_exact": dist.Mean() / kt,
			"peak_kt_exact": dist.Mode() / kt,
		},
	}, nil
}
