package lab

import (
	"context"
	"fmt"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// Config carries every parameter a study can use. Studies read the
// fields they need and ignore the rest.
type Config struct {
	Points      int     // grid resolution
	Temperature float64 // kelvin
	MassU       float64 // particle mass in atomic mass units
	Particles   float64 // N for the entropy model
	Emissivity  float64
	Area        float64 // m^2
	TempLow     float64 // radiation band, kelvin
	TempHigh    float64
	CutoffKT    float64 // E0 for the fraction study, in units of kT
}

// ParamSpec describes one tunable parameter for live views.
type ParamSpec struct {
	Name string
	Min  float64
	Max  float64
}

// Param returns a config field by tunable-parameter name.
func (c *Config) Param(name string) float64 {
	switch name {
	case "temperature":
		return c.Temperature
	case "mass_u":
		return c.MassU
	case "particles":
		return c.Particles
	case "emissivity":
		return c.Emissivity
	case "area":
		return c.Area
	case "temp_low":
		return c.TempLow
	case "temp_high":
		return c.TempHigh
	case "cutoff_kt":
		return c.CutoffKT
	}
	return 0
}

// SetParam sets a config field by name, clamping to the given spec.
func (c *Config) SetParam(spec ParamSpec, value float64) {
	if value < spec.Min {
		value = spec.Min
	}
	if value > spec.Max {
		value = spec.Max
	}
	switch spec.Name {
	case "temperature":
		c.Temperature = value
	case "mass_u":
		c.MassU = value
	case "particles":
		c.Particles = value
	case "emissivity":
		c.Emissivity = value
	case "area":
		c.Area = value
	case "temp_low":
		c.TempLow = value
	case "temp_high":
		c.TempHigh = value
	case "cutoff_kt":
		c.CutoffKT = value
	}
}

// Params returns every tunable field keyed by parameter name.
func (c *Config) Params() map[string]float64 {
	return map[string]float64{
		"temperature": c.Temperature,
		"mass_u":      c.MassU,
		"particles":   c.Particles,
		"emissivity":  c.Emissivity,
		"area":        c.Area,
		"temp_low":    c.TempLow,
		"temp_high":   c.TempHigh,
		"cutoff_kt":   c.CutoffKT,
	}
}

// Series is one labeled curve over the shared X grid of a Result.
type Series struct {
	Label string
	Y     []float64
}

// Result of running a study: a shared grid, one or more curves over it,
// and scalar metrics with their theoretical references where known.
type Result struct {
	Study   string
	XLabel  string
	X       []float64
	Series  []Series
	Metrics map[string]float64
}

// Study computes one of the lab's visualizations.
type Study interface {
	Name() string
	Describe() string
	// Params lists the tunable parameters, with slider bounds.
	Params() []ParamSpec
	Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error)
}

// Grid returns n+1 evenly spaced points over [lo, hi].
func Grid(lo, hi float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	xs := make([]float64, n+1)
	h := (hi - lo) / float64(n)
	for i := range xs {
		xs[i] = lo + float64(i)*h
	}
	xs[n] = hi
	return xs
}

// sampleDensity evaluates d over xs, checking the context every chunk
// and rejecting non-finite values.
func sampleDensity(ctx context.Context, d thermo.Distribution, xs []float64) ([]float64, error) {
	const chunk = 1024
	ys := make([]float64, len(xs))
	for i, x := range xs {
		if i%chunk == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		y := d.Density(x)
		if !thermo.IsFinite(y) {
			return nil, fmt.Errorf("%w: x=%g", thermo.ErrInvalidSample, x)
		}
		ys[i] = y
	}
	return ys, nil
}

// integrate runs the rule over [lo, hi], surfacing refinement failures
// when the rule is adaptive instead of dropping them.
func integrate(rule quad.Rule, f quad.Func, lo, hi float64, n int) (float64, error) {
	if ar, ok := rule.(quad.AdaptiveRule); ok {
		return ar.IntegrateAdaptive(f, lo, hi, 1e-9)
	}
	return rule.Integrate(f, lo, hi, n), nil
}

func validate(cfg Config) error {
	if cfg.Points < 8 {
		return fmt.Errorf("lab: points must be at least 8, got %d", cfg.Points)
	}
	if cfg.Temperature <= 0 {
		return fmt.Errorf("%w: temperature %g K", thermo.ErrParameterBounds, cfg.Temperature)
	}
	return nil
}
