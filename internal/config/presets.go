package config

var Presets = map[string]map[string]*Config{
	"boltzmann": {
		"room": {
			Study: "boltzmann", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300},
		},
		"flame": {
			Study: "boltzmann", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 1200},
		},
		"cryo": {
			Study: "boltzmann", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 77},
		},
	},
	"maxwell": {
		"helium": {
			Study: "maxwell", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300, MassU: 4},
		},
		"nitrogen": {
			Study: "maxwell", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300, MassU: 28},
		},
		"oxygen": {
			Study: "maxwell", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300, MassU: 32},
		},
		"argon_hot": {
			Study: "maxwell", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 1000, MassU: 40},
		},
	},
	"fraction": {
		"below_mean": {
			Study: "fraction", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300, CutoffKT: 1.5},
		},
		"tail": {
			Study: "fraction", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Temperature: 300, CutoffKT: 5.0},
		},
	},
	"radiation": {
		"blackbody": {
			Study: "radiation", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Emissivity: 1.0, Area: 1.0, TempLow: 200, TempHigh: 1500},
		},
		"tungsten": {
			Study: "radiation", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Emissivity: 0.35, Area: 0.01, TempLow: 300, TempHigh: 2000},
		},
		"skin": {
			Study: "radiation", Rule: "simpson", Points: 500,
			Params: ParamsConfig{Emissivity: 0.98, Area: 1.8, TempLow: 290, TempHigh: 310},
		},
	},
	"entropy": {
		"single": {
			Study: "entropy", Rule: "simpson", Points: 200,
			Params: ParamsConfig{Particles: 1},
		},
		"cluster": {
			Study: "entropy", Rule: "simpson", Points: 200,
			Params: ParamsConfig{Particles: 10},
		},
	},
}

// Applied overlays the non-zero fields of c on the defaults, so a
// preset only has to name what it changes.
func (c *Config) Applied() *Config {
	out := DefaultConfig()
	if c.Study != "" {
		out.Study = c.Study
	}
	if c.Rule != "" {
		out.Rule = c.Rule
	}
	if c.Points != 0 {
		out.Points = c.Points
	}
	p := c.Params
	if p.Temperature != 0 {
		out.Params.Temperature = p.Temperature
	}
	if p.MassU != 0 {
		out.Params.MassU = p.MassU
	}
	if p.Particles != 0 {
		out.Params.Particles = p.Particles
	}
	if p.Emissivity != 0 {
		out.Params.Emissivity = p.Emissivity
	}
	if p.Area != 0 {
		out.Params.Area = p.Area
	}
	if p.TempLow != 0 {
		out.Params.TempLow = p.TempLow
	}
	if p.TempHigh != 0 {
		out.Params.TempHigh = p.TempHigh
	}
	if p.CutoffKT != 0 {
		out.Params.CutoffKT = p.CutoffKT
	}
	return out
}

func GetPreset(study, preset string) *Config {
	studyPresets, ok := Presets[study]
	if !ok {
		return nil
	}
	cfg, ok := studyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(study string) []string {
	studyPresets, ok := Presets[study]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(studyPresets))
	for name := range studyPresets {
		names = append(names, name)
	}
	return names
}
