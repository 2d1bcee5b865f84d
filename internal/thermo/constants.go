package thermo

// Physical constants (SI units).
const (
	// Boltzmann constant (J/K)
	Boltzmann = 1.380649e-23

	// StefanBoltzmann constant (W/(m^2 K^4))
	StefanBoltzmann = 5.670374419e-8

	// AtomicMass is one unified atomic mass unit (kg)
	AtomicMass = 1.66053906660e-27
)

// KT returns the thermal energy scale k*T for a temperature in kelvin.
func KT(temperature float64) float64 {
	return Boltzmann * temperature
}
