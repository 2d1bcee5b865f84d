package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermolab/internal/lab"
)

const (
	DefaultPoints      = 500
	DefaultTemperature = 300.0
	DefaultMassU       = 28.0 // N2
	DefaultParticles   = 1.0
	DefaultEmissivity  = 0.95
	DefaultArea        = 1.0
	DefaultTempLow     = 200.0
	DefaultTempHigh    = 1500.0
	DefaultCutoffKT    = 3.0
	DefaultRule        = "simpson"
)

type Config struct {
	Study  string       `yaml:"study"`
	Rule   string       `yaml:"rule"`
	Points int          `yaml:"points"`
	Params ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	Temperature float64 `yaml:"temperature"`
	MassU       float64 `yaml:"mass_u"`
	Particles   float64 `yaml:"particles"`
	Emissivity  float64 `yaml:"emissivity"`
	Area        float64 `yaml:"area"`
	TempLow     float64 `yaml:"temp_low"`
	TempHigh    float64 `yaml:"temp_high"`
	CutoffKT    float64 `yaml:"cutoff_kt"`
}

func DefaultConfig() *Config {
	return &Config{
		Study:  "boltzmann",
		Rule:   DefaultRule,
		Points: DefaultPoints,
		Params: ParamsConfig{
			Temperature: DefaultTemperature,
			MassU:       DefaultMassU,
			Particles:   DefaultParticles,
			Emissivity:  DefaultEmissivity,
			Area:        DefaultArea,
			TempLow:     DefaultTempLow,
			TempHigh:    DefaultTempHigh,
			CutoffKT:    DefaultCutoffKT,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StudyConfig converts to the lab's runtime configuration.
func (c *Config) StudyConfig() lab.Config {
	return lab.Config{
		Points:      c.Points,
		Temperature: c.Params.Temperature,
		MassU:       c.Params.MassU,
		Particles:   c.Params.Particles,
		Emissivity:  c.Params.Emissivity,
		Area:        c.Params.Area,
		TempLow:     c.Params.TempLow,
		TempHigh:    c.Params.TempHigh,
		CutoffKT:    c.Params.CutoffKT,
	}
}
