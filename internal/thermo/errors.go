package thermo

import "errors"

// Domain errors for thermodynamic quantities.
var (
	// ErrParameterBounds indicates a parameter value outside its valid range.
	ErrParameterBounds = errors.New("thermo: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name the model does not have.
	ErrUnknownParameter = errors.New("thermo: unknown parameter")

	// ErrInvalidSample indicates a density evaluation produced NaN or Inf.
	ErrInvalidSample = errors.New("thermo: invalid sample (NaN or Inf)")
)
