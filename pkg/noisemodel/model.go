package noisemodel

import (
	"math"
	"slices"
)

// Model describes a noise model with diagonal covariance.
type Model interface {
	// Dim returns the number of dimensions.
	Dim() int
	// Sigmas returns a copy of the per-dimension standard deviations.
	Sigmas() []float64
	// Precisions returns a copy of the per-dimension inverse variances.
	// Hard-constrained dimensions report +Inf.
	Precisions() []float64
	// IsConstrained reports whether any dimension is a hard constraint.
	IsConstrained() bool
	// IsUnit reports whether every sigma is exactly 1.
	IsUnit() bool
}

// Diagonal is a noise model with independent standard deviations per
// dimension.
type Diagonal struct {
	sigmas []float64
}

// NewDiagonal returns a diagonal model with a copy of sigmas.
func NewDiagonal(sigmas []float64) *Diagonal {
	return &Diagonal{sigmas: slices.Clone(sigmas)}
}

// NewDiagonalPrecisions returns a diagonal model whose sigma in each
// dimension is 1/sqrt(precision).
func NewDiagonalPrecisions(precisions []float64) *Diagonal {
	sigmas := make([]float64, len(precisions))
	for i, p := range precisions {
		sigmas[i] = 1 / math.Sqrt(p)
	}
	return &Diagonal{sigmas: sigmas}
}

func (d *Diagonal) Dim() int              { return len(d.sigmas) }
func (d *Diagonal) Sigmas() []float64     { return slices.Clone(d.sigmas) }
func (d *Diagonal) Precisions() []float64 { return precisions(d.sigmas) }
func (d *Diagonal) IsConstrained() bool   { return false }

func (d *Diagonal) IsUnit() bool {
	for _, s := range d.sigmas {
		if s != 1 {
			return false
		}
	}
	return true
}

// Isotropic is a diagonal model whose dimensions share one sigma.
type Isotropic struct {
	Diagonal
	sigma float64
}

// NewIsotropic returns an isotropic model of the given dimension.
func NewIsotropic(dim int, sigma float64) *Isotropic {
	sigmas := make([]float64, max(dim, 0))
	for i := range sigmas {
		sigmas[i] = sigma
	}
	return &Isotropic{Diagonal: Diagonal{sigmas: sigmas}, sigma: sigma}
}

// NewIsotropicPrecision returns an isotropic model with sigma
// 1/sqrt(precision).
func NewIsotropicPrecision(dim int, precision float64) *Isotropic {
	return NewIsotropic(dim, 1/math.Sqrt(precision))
}

// Sigma returns the shared standard deviation.
func (m *Isotropic) Sigma() float64 { return m.sigma }

// IsUnit reports whether the shared sigma is 1.
func (m *Isotropic) IsUnit() bool { return m.sigma == 1 }

// Unit is the isotropic model with sigma 1.
type Unit struct {
	Isotropic
}

// NewUnit returns a unit model of the given dimension.
func NewUnit(dim int) *Unit {
	return &Unit{Isotropic: *NewIsotropic(dim, 1)}
}

func (*Unit) IsUnit() bool { return true }

// Constrained is a diagonal model in which a zero sigma marks a dimension
// that must be satisfied exactly.
type Constrained struct {
	Diagonal
}

// NewConstrained returns a constrained model with a copy of sigmas. Entries
// equal to zero are hard constraints.
func NewConstrained(sigmas []float64) *Constrained {
	return &Constrained{Diagonal: Diagonal{sigmas: slices.Clone(sigmas)}}
}

// NewAllConstrained returns a model of the given dimension in which every
// dimension is a hard constraint.
func NewAllConstrained(dim int) *Constrained {
	return &Constrained{Diagonal: Diagonal{sigmas: make([]float64, max(dim, 0))}}
}

// IsConstrained reports whether any sigma is zero.
func (m *Constrained) IsConstrained() bool {
	return slices.Contains(m.sigmas, 0)
}

// IsConstrainedAt reports whether dimension i is a hard constraint.
func (m *Constrained) IsConstrainedAt(i int) bool { return m.sigmas[i] == 0 }

func precisions(sigmas []float64) []float64 {
	out := make([]float64, len(sigmas))
	for i, s := range sigmas {
		if s == 0 {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = 1 / (s * s)
	}
	return out
}
