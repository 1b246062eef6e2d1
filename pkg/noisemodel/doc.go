// Package noisemodel provides diagonal noise-model descriptors and the
// SharedDiagonal handle that conditionals carry alongside their keys.
//
// Four concrete models are available:
//
//   - [Diagonal]: independent per-dimension standard deviations
//   - [Isotropic]: one standard deviation shared by every dimension
//   - [Unit]: isotropic with sigma 1
//   - [Constrained]: diagonal where a zero sigma marks a hard constraint
//
// Any of them converts to a [SharedDiagonal] with [Share]. The factories
// [Sigmas], [Sigma], [Precisions] and [Precision] build a handle directly
// from a vector or from a dimension and scalar.
//
// The package only describes noise; it performs no whitening or
// probability computation.
package noisemodel
