package batch

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/storage"
)

// Scenario defines a scripted sequence of study runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario
type ScenarioStep struct {
	Study  string             `yaml:"study"`
	Rule   string             `yaml:"rule"`
	Points int                `yaml:"points"`
	Params map[string]float64 `yaml:"params"`
	Save   bool               `yaml:"save"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes all steps in a scenario, optionally persisting
// each result to the store.
func RunScenario(ctx context.Context, scenario *Scenario, registry *lab.Registry, store *storage.Store) ([]*lab.Result, error) {
	results := make([]*lab.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Printf("Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Study)

		study, err := registry.GetStudy(step.Study)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ruleName := step.Rule
		if ruleName == "" {
			ruleName = config.DefaultRule
		}
		rule, err := registry.GetRule(ruleName)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		cfg := config.DefaultConfig().StudyConfig()
		if step.Points > 0 {
			cfg.Points = step.Points
		}
		for _, spec := range study.Params() {
			if v, ok := step.Params[spec.Name]; ok {
				cfg.SetParam(spec, v)
			}
		}

		result, err := study.Run(ctx, cfg, rule)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		if step.Save && store != nil {
			runID, err := store.Save(ruleName, cfg, result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			fmt.Printf("  saved as %s\n", runID)
		}

		results = append(results, result)
	}

	return results, nil
}

// ParameterSweep runs a study across a range of one parameter
type ParameterSweep struct {
	Study     string
	Rule      string
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Points    int
	Metric    string
}

// SweepResult holds one sweep point
type SweepResult struct {
	ParamValue  float64
	MetricValue float64
}

// RunSweep executes a parameter sweep, tracking one metric per run.
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *lab.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}

	study, err := registry.GetStudy(sweep.Study)
	if err != nil {
		return nil, err
	}

	rule, err := registry.GetRule(sweep.Rule)
	if err != nil {
		return nil, err
	}

	var spec *lab.ParamSpec
	for _, s := range study.Params() {
		if s.Name == sweep.ParamName {
			s := s
			spec = &s
			break
		}
	}
	if spec == nil {
		return nil, fmt.Errorf("study %s has no parameter %s", sweep.Study, sweep.ParamName)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := config.DefaultConfig().StudyConfig()
		if sweep.Points > 0 {
			cfg.Points = sweep.Points
		}
		cfg.SetParam(*spec, paramVal)

		result, err := study.Run(ctx, cfg, rule)
		if err != nil {
			return results, fmt.Errorf("sweep %d: %w", i+1, err)
		}

		mv, ok := result.Metrics[sweep.Metric]
		if !ok {
			return results, fmt.Errorf("study %s has no metric %s", sweep.Study, sweep.Metric)
		}

		results = append(results, SweepResult{ParamValue: paramVal, MetricValue: mv})
		fmt.Printf("Sweep %d/%d: %s=%.4f %s=%.6g\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal, sweep.Metric, mv)
	}

	return results, nil
}
