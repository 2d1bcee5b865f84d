package lab

import (
	"context"
	"math"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// EntropyStudy plots S(E) and the temperature that falls out of
// 1/T = dS/dE, comparing the numeric derivative against T = 2E/(3Nk).
type EntropyStudy struct{}

func (s *EntropyStudy) Name() string     { return "entropy" }
func (s *EntropyStudy) Describe() string { return "entropy S(E) and T(E) = 1/(dS/dE)" }

func (s *EntropyStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "particles", Min: 1, Max: 100},
	}
}

func (s *EntropyStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if cfg.Points < 8 {
		cfg.Points = 8
	}
	if cfg.Particles <= 0 {
		return nil, thermo.ErrParameterBounds
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	model := thermo.NewEntropyModel(cfg.Particles)
	lo, hi := model.EnergyRange()
	xs := Grid(lo, hi, cfg.Points)

	// S in units of k so the curve plots at order one
	sOverK := make([]float64, len(xs))
	entropy := make([]float64, len(xs))
	for i, e := range xs {
		sOverK[i] = model.LogOmega(e)
		entropy[i] = model.Entropy(e)
	}

	dSdE := quad.Gradient(entropy, xs)
	tNumeric := make([]float64, len(xs))
	tExact := make([]float64, len(xs))
	maxDev := 0.0
	for i := range xs {
		if dSdE[i] != 0 {
			tNumeric[i] = 1 / dSdE[i]
		}
		tExact[i] = model.Temperature(xs[i])
		// edge samples use one-sided differences; skip them
		if i > 0 && i < len(xs)-1 && tExact[i] != 0 {
			dev := math.Abs(tNumeric[i]-tExact[i]) / tExact[i]
			maxDev = math.Max(maxDev, dev)
		}
	}

	return &Result{
		Study:  s.Name(),
		XLabel: "E (J)",
		X:      xs,
		Series: []Series{
			{Label: "S/k", Y: sOverK},
			{Label: "T numeric (K)", Y: tNumeric},
			{Label: "T exact (K)", Y: tExact},
		},
		Metrics: map[string]float64{
			"max_temp_deviation": maxDev,
		},
	}, nil
}
