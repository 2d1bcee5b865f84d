package thermo

import (
	"fmt"
	"math"
)

// BoltzmannEnergy is the energy distribution of an ideal gas with three
// translational degrees of freedom:
//
//	f(E) = (2/sqrt(pi)) (kT)^(-3/2) sqrt(E) exp(-E/kT)
//
// Units are 1/J. The most probable energy is kT/2 and the mean is 3kT/2.
type BoltzmannEnergy struct {
	Temperature float64 // kelvin
}

func NewBoltzmannEnergy(temperature float64) *BoltzmannEnergy {
	return &BoltzmannEnergy{Temperature: temperature}
}

// Density evaluates f(E) in log space. The coefficient (kT)^(-3/2) is
// around 1e31 at room temperature, so the direct product overflows
// intermediate scales; summing logarithms keeps it stable.
func (b *BoltzmannEnergy) Density(e float64) float64 {
	if e <= 0 || b.Temperature <= 0 {
		return 0
	}
	kt := Boltzmann * b.Temperature
	logCoeff := math.Log(2.0/math.Sqrt(math.Pi)) - 1.5*math.Log(kt)
	return math.Exp(logCoeff + 0.5*math.Log(e) - e/kt)
}

// Support covers [0, 10kT]; the tail above 10kT holds under 1e-3 of the
// probability mass.
func (b *BoltzmannEnergy) Support() (float64, float64) {
	return 0, 10 * Boltzmann * b.Temperature
}

func (b *BoltzmannEnergy) Mean() float64 {
	return 1.5 * Boltzmann * b.Temperature
}

func (b *BoltzmannEnergy) Mode() float64 {
	return 0.5 * Boltzmann * b.Temperature
}

func (b *BoltzmannEnergy) GetParams() map[string]float64 {
	return map[string]float64{"temperature": b.Temperature}
}

func (b *BoltzmannEnergy) SetParam(name string, value float64) error {
	switch name {
	case "temperature":
		if value <= 0 {
			return fmt.Errorf("%w: temperature %g K", ErrParameterBounds, value)
		}
		b.Temperature = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}
