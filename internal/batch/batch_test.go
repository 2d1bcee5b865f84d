package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/storage"
)

const scenarioYAML = `name: sanity
description: boltzmann at two temperatures
steps:
  - study: boltzmann
    rule: simpson
    points: 200
    params:
      temperature: 300
    save: true
  - study: boltzmann
    points: 200
    params:
      temperature: 1200
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if scenario.Name != "sanity" {
		t.Errorf("expected name sanity, got %s", scenario.Name)
	}
	if len(scenario.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(scenario.Steps))
	}
	if scenario.Steps[0].Params["temperature"] != 300 {
		t.Errorf("expected first step at 300 K, got %f", scenario.Steps[0].Params["temperature"])
	}
	if !scenario.Steps[0].Save {
		t.Error("expected first step marked for saving")
	}
}

func TestRunScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	st := storage.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, lab.NewRegistry(), st)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// hotter gas, same mean in kT units
	for i, r := range results {
		if d := r.Metrics["mean_kt"]; d < 1.4 || d > 1.6 {
			t.Errorf("step %d: mean %f outside 1.5 kT band", i, d)
		}
	}

	// only the first step asked to be persisted
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 saved run, got %d", len(runs))
	}
}

func TestRunScenarioUnknownStudy(t *testing.T) {
	scenario := &Scenario{
		Name:  "bad",
		Steps: []ScenarioStep{{Study: "nope"}},
	}

	if _, err := RunScenario(context.Background(), scenario, lab.NewRegistry(), nil); err == nil {
		t.Error("expected error for unknown study")
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &ParameterSweep{
		Study:     "radiation",
		Rule:      "simpson",
		ParamName: "emissivity",
		ParamMin:  0.2,
		ParamMax:  1.0,
		NumSteps:  5,
		Points:    100,
		Metric:    "radiated_energy",
	}

	results, err := RunSweep(context.Background(), sweep, lab.NewRegistry())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("expected 5 sweep points, got %d", len(results))
	}

	// radiated energy scales linearly with emissivity
	for i := 1; i < len(results); i++ {
		if results[i].MetricValue <= results[i-1].MetricValue {
			t.Errorf("energy should grow with emissivity, point %d", i)
		}
	}
}

func TestRunSweepUnknownParam(t *testing.T) {
	sweep := &ParameterSweep{
		Study:     "boltzmann",
		Rule:      "simpson",
		ParamName: "pressure",
		ParamMin:  1,
		ParamMax:  2,
		NumSteps:  3,
		Metric:    "mean_kt",
	}

	if _, err := RunSweep(context.Background(), sweep, lab.NewRegistry()); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
