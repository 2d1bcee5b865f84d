package thermo

import "math"

// Candidate densities for the derivation experiment: which functional
// form reproduces the known mean energy 3kT/2? Both are unnormalized;
// callers normalize numerically on their sampling grid.
//
// The bare exponential exp(-E/kT) is the Boltzmann factor alone; its
// normalized mean comes out at 1 kT. Weighting by the density of states
// sqrt(E) recovers the full distribution and the 3/2 kT mean.
type Candidate struct {
	Label  string
	MeanKT float64 // expected mean energy in units of kT
	Eval   func(e, kt float64) float64
}

func Candidates() []Candidate {
	return []Candidate{
		{
			Label:  "exp(-E/kT)",
			MeanKT: 1.0,
			Eval: func(e, kt float64) float64 {
				if e < 0 {
					return 0
				}
				return math.Exp(-e / kt)
			},
		},
		{
			Label:  "sqrt(E) exp(-E/kT)",
			MeanKT: 1.5,
			Eval: func(e, kt float64) float64 {
				if e < 0 {
					return 0
				}
				return math.Sqrt(e) * math.Exp(-e/kt)
			},
		},
	}
}
