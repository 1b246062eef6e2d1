// Package perm provides the variable relabelings applied to conditionals
// after an elimination ordering has been chosen.
//
// # Overview
//
// Elimination produces one conditional per eliminated variable group. When a
// new ordering is computed, every variable index in the resulting Bayes net
// or Bayes tree is relabeled so indices stay dense and consistent with the
// order of elimination. This package supplies the relabelings themselves; the
// structures they are applied to live in [inference] and [bayesnet].
//
//   - [Permutation]: a dense bijection over [0, n), stored as a lookup table
//     mapping old index to new index
//   - [Map]: a sparse relabeling for arbitrary comparable keys, where keys
//     that are not listed are fixed points
//   - [Generate], [Factorial] and [Seq]: enumeration utilities
//
// # Enumeration
//
// [Generate] lists every permutation of [0, n) with Heap's algorithm, and
// [Factorial] gives their count. No relabeling path uses them: they exist so
// callers and tests can check an ordering invariant exhaustively over a
// small domain, as the inference package's tests do:
//
//	for _, p := range perm.Generate(4, -1) {
//	    checkInvariant(perm.Permutation(p))
//	}
//
// Pass a limit to stop early; n beyond 10 or so is impractical.
//
// # Inverse Permutations
//
// Conditionals are permuted "with inverse": the table passed to them maps
// each old key directly to its new key. [Permutation.Inverse] converts
// between the two directions, and applying a permutation followed by its
// inverse restores every key:
//
//	p, _ := perm.FromSlice([]int{2, 0, 1})
//	inv := p.Inverse()
//	fmt.Println(inv.At(p.At(1))) // 1
//
// # Sparse Relabeling
//
// Symbol-keyed structures rarely carry a dense index space. [Map] covers
// that case:
//
//	m := perm.Map[int]{5: 1, 2: 0, 9: 2}
//	m.At(5) // 1
//	m.At(7) // 7, unlisted keys are unchanged
//
// [inference]: github.com/matzehuels/factorkeys/pkg/inference
// [bayesnet]: github.com/matzehuels/factorkeys/pkg/bayesnet
package perm
