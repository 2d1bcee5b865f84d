package thermo

import (
	"fmt"
	"math"
)

// EntropyModel relates entropy, energy, and temperature for an ideal
// monatomic gas of N particles via microstate counting:
//
//	ln(Omega) = (3N/2) ln(E)
//	S         = k ln(Omega)
//	1/T       = dS/dE  =>  T(E) = 2E/(3Nk)
//
// Omega itself overflows for any realistic N, so all work happens on
// ln(Omega).
type EntropyModel struct {
	Particles float64
}

func NewEntropyModel(particles float64) *EntropyModel {
	return &EntropyModel{Particles: particles}
}

// LogOmega returns ln of the microstate count at energy e.
func (m *EntropyModel) LogOmega(e float64) float64 {
	if e <= 0 {
		return math.Inf(-1)
	}
	return 1.5 * m.Particles * math.Log(e)
}

// Entropy returns S(E) = k ln(Omega) in J/K.
func (m *EntropyModel) Entropy(e float64) float64 {
	return Boltzmann * m.LogOmega(e)
}

// Temperature is the closed-form T(E) = 2E/(3Nk).
func (m *EntropyModel) Temperature(e float64) float64 {
	return 2 * e / (3 * m.Particles * Boltzmann)
}

// EnergyRange is the interval the entropy curves are sampled over,
// sized for a few particles so S stays well within float range.
func (m *EntropyModel) EnergyRange() (float64, float64) {
	return 1e-21, 5e-21
}

func (m *EntropyModel) GetParams() map[string]float64 {
	return map[string]float64{"particles": m.Particles}
}

func (m *EntropyModel) SetParam(name string, value float64) error {
	switch name {
	case "particles":
		if value <= 0 {
			return fmt.Errorf("%w: particles %g", ErrParameterBounds, value)
		}
		m.Particles = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}
