package lab

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/thermolab/internal/quad"
)

func testConfig() Config {
	return Config{
		Points:      500,
		Temperature: 300,
		MassU:       28,
		Particles:   1,
		Emissivity:  0.95,
		Area:        1.0,
		TempLow:     200,
		TempHigh:    1500,
		CutoffKT:    3.0,
	}
}

func TestBoltzmannStudyMetrics(t *testing.T) {
	s := &BoltzmannStudy{}
	result, err := s.Run(context.Background(), testConfig(), quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if math.Abs(result.Metrics["normalization"]-1.0) > 1e-3 {
		t.Errorf("expected normalization near 1, got %f", result.Metrics["normalization"])
	}

	if math.Abs(result.Metrics["mean_kt"]-1.5) > 0.015 {
		t.Errorf("expected mean near 1.5 kT, got %f", result.Metrics["mean_kt"])
	}

	if math.Abs(result.Metrics["peak_kt"]-0.5) > 0.05 {
		t.Errorf("expected peak near 0.5 kT, got %f", result.Metrics["peak_kt"])
	}

	if result.Metrics["mean_kt_exact"] != 1.5 {
		t.Errorf("expected exact mean 1.5 kT, got %f", result.Metrics["mean_kt_exact"])
	}
}

func TestBoltzmannStudyAdaptiveRule(t *testing.T) {
	s := &BoltzmannStudy{}

	// the support is ~4e-20 J wide; the adaptive rule must converge
	// there, not bail out on the interval width
	result, err := s.Run(context.Background(), testConfig(), quad.NewAdaptiveSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if math.Abs(result.Metrics["normalization"]-1.0) > 0.01 {
		t.Errorf("expected normalization near 1, got %f", result.Metrics["normalization"])
	}
}

func TestRadiationStudyAdaptiveRule(t *testing.T) {
	s := &RadiationStudy{}

	result, err := s.Run(context.Background(), testConfig(), quad.NewAdaptiveSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["energy_rel_error"] > 1e-6 {
		t.Errorf("adaptive energy error %g too large against closed form", result.Metrics["energy_rel_error"])
	}
}

func TestBoltzmannStudyRejectsBadConfig(t *testing.T) {
	s := &BoltzmannStudy{}

	cfg := testConfig()
	cfg.Temperature = -5
	if _, err := s.Run(context.Background(), cfg, quad.NewSimpson()); err == nil {
		t.Error("expected error for negative temperature")
	}

	cfg = testConfig()
	cfg.Points = 2
	if _, err := s.Run(context.Background(), cfg, quad.NewSimpson()); err == nil {
		t.Error("expected error for too few points")
	}
}

func TestBoltzmannStudyCancellation(t *testing.T) {
	s := &BoltzmannStudy{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.Points = 100000
	if _, err := s.Run(ctx, cfg, quad.NewSimpson()); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestMaxwellStudyMetrics(t *testing.T) {
	s := &MaxwellStudy{}
	result, err := s.Run(context.Background(), testConfig(), quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if math.Abs(result.Metrics["normalization"]-1.0) > 1e-3 {
		t.Errorf("expected normalization near 1, got %f", result.Metrics["normalization"])
	}

	// nitrogen at 300 K: most probable speed about 422 m/s
	peak := result.Metrics["peak_speed"]
	exact := result.Metrics["peak_speed_exact"]
	if math.Abs(peak-exact)/exact > 0.02 {
		t.Errorf("sampled peak %f too far from exact %f", peak, exact)
	}
	if math.Abs(exact-422) > 2 {
		t.Errorf("expected most probable speed near 422 m/s, got %f", exact)
	}

	mean := result.Metrics["mean_speed"]
	if mean <= peak {
		t.Errorf("mean speed %f should exceed most probable %f", mean, peak)
	}
}

func TestEntropyStudyDerivative(t *testing.T) {
	s := &EntropyStudy{}
	cfg := testConfig()
	cfg.Points = 200

	result, err := s.Run(context.Background(), cfg, quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(result.Series))
	}

	if dev := result.Metrics["max_temp_deviation"]; dev > 0.01 {
		t.Errorf("numeric temperature deviates %f from closed form", dev)
	}
}

func TestFractionStudyCumulative(t *testing.T) {
	s := &FractionStudy{}
	result, err := s.Run(context.Background(), testConfig(), quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var cumulative []float64
	for _, series := range result.Series {
		if series.Label == "F(E)" {
			cumulative = series.Y
		}
	}
	if cumulative == nil {
		t.Fatal("cumulative series missing")
	}

	if cumulative[0] != 0 {
		t.Errorf("expected F(0) = 0, got %f", cumulative[0])
	}

	last := cumulative[len(cumulative)-1]
	if math.Abs(last-1.0) > 1e-9 {
		t.Errorf("expected F to reach 1 on the normalized grid, got %f", last)
	}

	for i := 1; i < len(cumulative); i++ {
		if cumulative[i] < cumulative[i-1] {
			t.Fatalf("cumulative curve decreases at index %d", i)
		}
	}

	// About 89% of particles sit below 3 kT.
	frac := result.Metrics["fraction_at_e0"]
	if frac < 0.85 || frac > 0.92 {
		t.Errorf("expected fraction below 3 kT near 0.89, got %f", frac)
	}

	// Quantile energies must increase with the quantile.
	q25 := result.Metrics["quantile_25_kt"]
	q50 := result.Metrics["quantile_50_kt"]
	q75 := result.Metrics["quantile_75_kt"]
	q90 := result.Metrics["quantile_90_kt"]
	if !(q25 < q50 && q50 < q75 && q75 < q90) {
		t.Errorf("quantiles not monotonic: %f %f %f %f", q25, q50, q75, q90)
	}

	// Median of the energy distribution is near 1.18 kT.
	if math.Abs(q50-1.18) > 0.05 {
		t.Errorf("expected median near 1.18 kT, got %f", q50)
	}
}

func TestRadiationStudyEnergy(t *testing.T) {
	s := &RadiationStudy{}
	result, err := s.Run(context.Background(), testConfig(), quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["energy_rel_error"] > 1e-6 {
		t.Errorf("quadrature error %g too large against closed form", result.Metrics["energy_rel_error"])
	}

	if result.Metrics["band_low"] != 200 || result.Metrics["band_high"] != 1500 {
		t.Errorf("unexpected band: [%f, %f]", result.Metrics["band_low"], result.Metrics["band_high"])
	}

	// P(1500) for eps=0.95, A=1: about 2.7e5 W
	p := result.Metrics["power_at_t2"]
	if p < 2e5 || p > 3e5 {
		t.Errorf("power at 1500 K out of range: %f", p)
	}
}

func TestRadiationStudySwapsBand(t *testing.T) {
	s := &RadiationStudy{}
	cfg := testConfig()
	cfg.TempLow, cfg.TempHigh = cfg.TempHigh, cfg.TempLow

	result, err := s.Run(context.Background(), cfg, quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["band_low"] != 200 {
		t.Errorf("expected band bounds swapped, got low %f", result.Metrics["band_low"])
	}
}

func TestCandidateStudyMeans(t *testing.T) {
	s := &CandidateStudy{}
	result, err := s.Run(context.Background(), testConfig(), quad.NewSimpson())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Series) != 2 {
		t.Fatalf("expected 2 candidate series, got %d", len(result.Series))
	}

	// bare exponential: mean 1 kT
	if math.Abs(result.Metrics["mean_kt_0"]-1.0) > 0.02 {
		t.Errorf("expected bare exponential mean near 1 kT, got %f", result.Metrics["mean_kt_0"])
	}

	// sqrt(E)-weighted: mean 3/2 kT
	if math.Abs(result.Metrics["mean_kt_1"]-1.5) > 0.02 {
		t.Errorf("expected weighted mean near 1.5 kT, got %f", result.Metrics["mean_kt_1"])
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.ListStudies() {
		study, err := r.GetStudy(name)
		if err != nil {
			t.Errorf("registered study %s not constructible: %v", name, err)
		}
		if study.Name() != name {
			t.Errorf("study %s reports name %s", name, study.Name())
		}
		if len(study.Params()) == 0 {
			t.Errorf("study %s has no tunable parameters", name)
		}
	}

	for _, name := range r.ListRules() {
		rule, err := r.GetRule(name)
		if err != nil {
			t.Errorf("registered rule %s not constructible: %v", name, err)
		}
		if rule.Name() != name {
			t.Errorf("rule %s reports name %s", name, rule.Name())
		}
	}

	if _, err := r.GetStudy("nope"); err == nil {
		t.Error("expected error for unknown study")
	}
	if _, err := r.GetRule("nope"); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestGrid(t *testing.T) {
	xs := Grid(0, 1, 10)

	if len(xs) != 11 {
		t.Fatalf("expected 11 points, got %d", len(xs))
	}
	if xs[0] != 0 || xs[10] != 1 {
		t.Errorf("endpoints wrong: %f, %f", xs[0], xs[10])
	}
}

func TestConfigSetParamClamps(t *testing.T) {
	cfg := testConfig()
	spec := ParamSpec{Name: "temperature", Min: 50, Max: 1500}

	cfg.SetParam(spec, 5000)
	if cfg.Temperature != 1500 {
		t.Errorf("expected clamp to 1500, got %f", cfg.Temperature)
	}

	cfg.SetParam(spec, 1)
	if cfg.Temperature != 50 {
		t.Errorf("expected clamp to 50, got %f", cfg.Temperature)
	}
}
