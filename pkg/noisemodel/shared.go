package noisemodel

// SharedDiagonal is a handle to a diagonal noise model. Handles are cheap to
// copy and share the underlying model, which is never modified after
// construction.
//
// The zero value holds no model; check IsZero before use.
type SharedDiagonal struct {
	model Model
}

// Share wraps any diagonal model in a handle.
func Share(m Model) SharedDiagonal {
	return SharedDiagonal{model: m}
}

// Sigmas returns a handle to a diagonal model with the given standard
// deviations.
func Sigmas(sigmas []float64) SharedDiagonal {
	return Share(NewDiagonal(sigmas))
}

// Sigma returns a handle to an isotropic model.
func Sigma(dim int, sigma float64) SharedDiagonal {
	return Share(NewIsotropic(dim, sigma))
}

// Precisions returns a handle to a diagonal model with the given inverse
// variances.
func Precisions(precisions []float64) SharedDiagonal {
	return Share(NewDiagonalPrecisions(precisions))
}

// Precision returns a handle to an isotropic model with the given inverse
// variance.
func Precision(dim int, precision float64) SharedDiagonal {
	return Share(NewIsotropicPrecision(dim, precision))
}

// Model returns the wrapped model, or nil for the zero handle.
func (s SharedDiagonal) Model() Model { return s.model }

// IsZero reports whether the handle wraps no model.
func (s SharedDiagonal) IsZero() bool { return s.model == nil }

// Dim returns the model dimension, or 0 for the zero handle.
func (s SharedDiagonal) Dim() int {
	if s.model == nil {
		return 0
	}
	return s.model.Dim()
}

// Sigmas returns the model's standard deviations, or nil for the zero handle.
func (s SharedDiagonal) Sigmas() []float64 {
	if s.model == nil {
		return nil
	}
	return s.model.Sigmas()
}

// Precisions returns the model's inverse variances, or nil for the zero
// handle.
func (s SharedDiagonal) Precisions() []float64 {
	if s.model == nil {
		return nil
	}
	return s.model.Precisions()
}
