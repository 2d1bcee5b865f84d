package lab

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// RadiationStudy plots Stefan-Boltzmann radiated power over a
// temperature range and integrates the power curve over [TempLow,
// TempHigh], checking the quadrature against the closed form
// eps sigma A (T2^5 - T1^5)/5.
type RadiationStudy struct{}

func (s *RadiationStudy) Name() string     { return "radiation" }
func (s *RadiationStudy) Describe() string { return "radiated power P = eps sigma A T^4" }

func (s *RadiationStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "emissivity", Min: 0.01, Max: 1},
		{Name: "area", Min: 0.1, Max: 10},
		{Name: "temp_low", Min: 100, Max: 1900},
		{Name: "temp_high", Min: 200, Max: 2000},
	}
}

// plotLow/plotHigh frame the full curve regardless of the band.
const (
	plotLow  = 100.0
	plotHigh = 2000.0
)

func (s *RadiationStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if cfg.Points < 8 {
		cfg.Points = 8
	}
	if cfg.Emissivity <= 0 || cfg.Emissivity > 1 {
		return nil, fmt.Errorf("%w: emissivity %g", thermo.ErrParameterBounds, cfg.Emissivity)
	}
	if cfg.Area <= 0 {
		return nil, fmt.Errorf("%w: area %g m^2", thermo.ErrParameterBounds, cfg.Area)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r := thermo.NewRadiator(cfg.Emissivity, cfg.Area)
	t1, t2 := cfg.TempLow, cfg.TempHigh
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	xs := Grid(plotLow, plotHigh, cfg.Points)
	ys := make([]float64, len(xs))
	for i, t := range xs {
		ys[i] = r.Power(t)
	}

	energy, err := integrate(rule, r.Power, t1, t2, cfg.Points)
	if err != nil {
		return nil, err
	}
	exact := r.RadiatedEnergyExact(t1, t2)
	relErr := 0.0
	if exact != 0 {
		relErr = math.Abs(energy-exact) / exact
	}

	return &Result{
		Study:  s.Name(),
		XLabel: "T (K)",
		X:      xs,
		Series: []Series{{Label: "P(T) (W)", Y: ys}},
		Metrics: map[string]float64{
			"power_at_t2":      r.Power(t2),
			"radiated_energy":  energy,
			"energy_exact":     exact,
			"energy_rel_error": relErr,
			"band_low":         t1,
			"band_high":        t2,
		},
	}, nil
}
