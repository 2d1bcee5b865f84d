package lab

import (
	"context"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// MaxwellStudy samples the Maxwell-Boltzmann speed distribution for a
// gas of the configured particle mass.
type MaxwellStudy struct{}

func (s *MaxwellStudy) Name() string     { return "maxwell" }
func (s *MaxwellStudy) Describe() string { return "speed distribution f(v)" }

func (s *MaxwellStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "temperature", Min: 50, Max: 1500},
		{Name: "mass_u", Min: 1, Max: 200},
	}
}

func (s *MaxwellStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if cfg.MassU <= 0 {
		return nil, thermo.ErrParameterBounds
	}

	dist := thermo.NewMaxwellSpeed(cfg.Temperature, cfg.MassU*thermo.AtomicMass)
	lo, hi := dist.Support()

	xs := Grid(lo, hi, cfg.Points)
	ys, err := sampleDensity(ctx, dist, xs)
	if err != nil {
		return nil, err
	}

	mean := NewMeanValue("mean")
	peak := NewPeak("peak")
	observeAll([]Metric{mean, peak}, xs, ys)

	norm, err := integrate(rule, dist.Density, lo, hi, cfg.Points)
	if err != nil {
		return nil, err
	}

	return &Result{
		Study:  s.Name(),
		XLabel: "v (m/s)",
		X:      xs,
		Series: []Series{{Label: "f(v)", Y: ys}},
		Metrics: map[string]float64{
			"normalization":    norm,
			"mean_speed":       mean.Value(),
			"peak_speed":       peak.Value(),
			"mean_speed_exact": dist.Mean(),
			"peak_speed_exact": dist.Mode(),
		},
	}, nil
}
