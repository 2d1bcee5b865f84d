package lab

import (
	"context"
	"fmt"

	"github.com/san-kum/thermolab/internal/quad"
	"github.com/san-kum/thermolab/internal/thermo"
)

// CandidateStudy is the numeric experiment from the derivation: take
// candidate functional forms for f(E), normalize each on the grid, and
// compute the mean energy each one predicts. Only the density-of-states
// weighted candidate reproduces the known 3/2 kT.
type CandidateStudy struct{}

func (s *CandidateStudy) Name() string     { return "candidates" }
func (s *CandidateStudy) Describe() string { return "compare candidate densities against <E> = 3/2 kT" }

func (s *CandidateStudy) Params() []ParamSpec {
	return []ParamSpec{
		{Name: "temperature", Min: 50, Max: 1500},
	}
}

func (s *CandidateStudy) Run(ctx context.Context, cfg Config, rule quad.Rule) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	kt := thermo.KT(cfg.Temperature)
	xs := Grid(0, 10*kt, cfg.Points)

	xkt := make([]float64, len(xs))
	for i, x := range xs {
		xkt[i] = x / kt
	}

	result := &Result{
		Study:   s.Name(),
		XLabel:  "E / kT",
		X:       xkt,
		Metrics: map[string]float64{},
	}

	for idx, c := range thermo.Candidates() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = c.Eval(x, kt)
		}
		norm := quad.Trapz(xs, ys)
		if norm <= 0 {
			return nil, fmt.Errorf("%w: candidate %q", thermo.ErrInvalidSample, c.Label)
		}
		for i := range ys {
			ys[i] /= norm
		}

		mean := NewMeanValue("mean")
		observeAll([]Metric{mean}, xs, ys)

		result.Series = append(result.Series, Series{Label: c.Label, Y: ys})
		result.Metrics[fmt.Sprintf("mean_kt_%d", idx)] = mean.Value() / kt
		result.Metrics[fmt.Sprintf("mean_kt_%d_expected", idx)] = c.MeanKT
	}

	return result, nil
}
