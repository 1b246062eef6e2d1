// Package inference provides the key bookkeeping shared by every conditional
// produced by variable elimination.
//
// # Overview
//
// Eliminating one or more variables from a graphical model yields a
// conditional P(frontals | parents). Whatever the density (Gaussian,
// discrete, symbolic), the structure above it only needs to know which keys
// the conditional determines and which it is conditioned on. [Conditional]
// stores exactly that: an ordered key sequence whose first [Conditional.NrFrontals]
// entries are frontal and whose remaining entries are parents (the
// separator).
//
// Bayes nets and Bayes trees trust this partition without re-checking it,
// so the package keeps it purely positional and never reorders keys on its
// own.
//
// # Construction
//
// Single-frontal conditionals come from [New] or [FromParents]; clique
// conditionals with several frontal keys come from [FromRange]:
//
//	c := inference.New(5, 2, 9)             // P(5 | 2 9)
//	clique := inference.FromRange(slices.Values([]int{0, 1, 4}), 2) // P(0 1 | 4)
//
// [FromSlice] is the fallible variant for integration boundaries where the
// frontal count comes from untrusted input.
//
// # Relabeling
//
// After an elimination ordering is chosen elsewhere, every key of every
// conditional is relabeled in place. [Conditional.PermuteWithInverse]
// relabels all keys; [Conditional.PermuteSeparatorWithInverse] relabels only
// parents and reports whether any of them changed. The [Permutation] passed
// in maps each old key directly to its new key.
//
// Keys are only ever edited by these two methods. Parent keys are rewritten
// one at a time through a package-private writable window (so the number of
// keys cannot change); frontal keys have no such window and change only as
// part of a whole-sequence [KeySeq.PermuteWithInverse].
//
// Relabeling must preserve the elimination-ordering invariant: every frontal
// key must map strictly below every parent key. In builds tagged
// inferencedebug this is asserted (a violation panics). In regular builds
// the caller is trusted. Callers that want the check without the debug build
// use [Apply] and [ApplySeparator] with [Validated], or the Check methods on
// [Conditional] directly.
//
// # Sharing
//
// Conditionals are referenced by several downstream structures at once and
// must never be duplicated. They are always handled through *Conditional;
// the type embeds a noCopy marker so go vet reports accidental copies.
//
// # Concurrency
//
// A Conditional is logically immutable between permutations and may be read
// from many goroutines. Permutation mutates it in place and requires
// exclusive access for the duration of the call.
package inference
