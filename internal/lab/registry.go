package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/thermolab/internal/quad"
)

type Registry struct {
	studies map[string]func() Study
	rules   map[string]func() quad.Rule
}

func NewRegistry() *Registry {
	r := &Registry{
		studies: make(map[string]func() Study),
		rules:   make(map[string]func() quad.Rule),
	}

	r.studies["boltzmann"] = func() Study { return &BoltzmannStudy{} }
	r.studies["maxwell"] = func() Study { return &MaxwellStudy{} }
	r.studies["entropy"] = func() Study { return &EntropyStudy{} }
	r.studies["fraction"] = func() Study { return &FractionStudy{} }
	r.studies["radiation"] = func() Study { return &RadiationStudy{} }
	r.studies["candidates"] = func() Study { return &CandidateStudy{} }

	r.rules["trapezoid"] = func() quad.Rule { return quad.NewTrapezoid() }
	r.rules["simpson"] = func() quad.Rule { return quad.NewSimpson() }
	r.rules["adaptive"] = func() quad.Rule { return quad.NewAdaptiveSimpson() }

	return r
}

func (r *Registry) GetStudy(name string) (Study, error) {
	fn, ok := r.studies[name]
	if !ok {
		return nil, fmt.Errorf("unknown study: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetRule(name string) (quad.Rule, error) {
	fn, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature rule: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListStudies() []string {
	names := make([]string, 0, len(r.studies))
	for name := range r.studies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListRules() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
