package thermo

import "fmt"

// Radiator is a gray body obeying the Stefan-Boltzmann law,
// P = emissivity * sigma * A * T^4.
type Radiator struct {
	Emissivity float64
	Area       float64 // m^2
}

func NewRadiator(emissivity, area float64) *Radiator {
	return &Radiator{Emissivity: emissivity, Area: area}
}

// Power radiated at temperature t, in watts.
func (r *Radiator) Power(t float64) float64 {
	return r.Emissivity * StefanBoltzmann * r.Area * t * t * t * t
}

// RadiatedEnergyExact integrates P over [t1, t2] in closed form:
// eps sigma A (t2^5 - t1^5) / 5. Bounds given out of order are swapped.
func (r *Radiator) RadiatedEnergyExact(t1, t2 float64) float64 {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	p5 := func(t float64) float64 { return t * t * t * t * t }
	return r.Emissivity * StefanBoltzmann * r.Area * (p5(t2) - p5(t1)) / 5
}

func (r *Radiator) GetParams() map[string]float64 {
	return map[string]float64{
		"emissivity": r.Emissivity,
		"area":       r.Area,
	}
}

func (r *Radiator) SetParam(name string, value float64) error {
	switch name {
	case "emissivity":
		if value <= 0 || value > 1 {
			return fmt.Errorf("%w: emissivity %g", ErrParameterBounds, value)
		}
		r.Emissivity = value
	case "area":
		if value <= 0 {
			return fmt.Errorf("%w: area %g m^2", ErrParameterBounds, value)
		}
		r.Area = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}
