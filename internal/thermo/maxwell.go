package thermo

import (
	"fmt"
	"math"
)

// MaxwellSpeed is the Maxwell-Boltzmann speed distribution in 3D:
//
//	f(v) = 4pi (m/(2pi kT))^(3/2) v^2 exp(-m v^2 / (2kT))
//
// Units are s/m. Mass is per particle, in kg.
type MaxwellSpeed struct {
	Temperature float64 // kelvin
	Mass        float64 // kg
}

func NewMaxwellSpeed(temperature, mass float64) *MaxwellSpeed {
	return &MaxwellSpeed{Temperature: temperature, Mass: mass}
}

func (m *MaxwellSpeed) Density(v float64) float64 {
	if v < 0 || m.Temperature <= 0 || m.Mass <= 0 {
		return 0
	}
	kt := Boltzmann * m.Temperature
	pref := 4 * math.Pi * math.Pow(m.Mass/(2*math.Pi*kt), 1.5)
	return pref * v * v * math.Exp(-m.Mass*v*v/(2*kt))
}

// Support covers [0, 4 v_mp]; beyond four times the most probable speed
// the remaining mass is below 1e-6.
func (m *MaxwellSpeed) Support() (float64, float64) {
	return 0, 4 * m.Mode()
}

// Mean speed sqrt(8kT/(pi m)).
func (m *MaxwellSpeed) Mean() float64 {
	return math.Sqrt(8 * Boltzmann * m.Temperature / (math.Pi * m.Mass))
}

// Mode is the most probable speed sqrt(2kT/m).
func (m *MaxwellSpeed) Mode() float64 {
	return math.Sqrt(2 * Boltzmann * m.Temperature / m.Mass)
}

func (m *MaxwellSpeed) GetParams() map[string]float64 {
	return map[string]float64{
		"temperature": m.Temperature,
		"mass_u":      m.Mass / AtomicMass,
	}
}

func (m *MaxwellSpeed) SetParam(name string, value float64) error {
	switch name {
	case "temperature":
		if value <= 0 {
			return fmt.Errorf("%w: temperature %g K", ErrParameterBounds, value)
		}
		m.Temperature = value
	case "mass_u":
		if value <= 0 {
			return fmt.Errorf("%w: mass %g u", ErrParameterBounds, value)
		}
		m.Mass = value * AtomicMass
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}
