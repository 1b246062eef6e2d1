// Package bayesnet provides a minimal Bayes net: an ordered collection of
// shared conditionals produced by variable elimination.
//
// # Overview
//
// Each entry of a [Net] is a *[inference.Conditional] handle. The same
// conditional may be referenced from several structures (a Bayes net and the
// cliques of a Bayes tree, for example); the net never copies it. The package
// exists to host the whole-structure operations that conditionals cannot
// perform on their own:
//
//   - [Net.PermuteWithInverse] and [Net.PermuteSeparatorsWithInverse]: the
//     single-threaded reindexing pass that relabels every conditional once
//   - [Net.CheckPermutation], [Net.CheckSeparatorPermutation] and
//     [Net.CheckBijection]: the all-or-nothing validation that precedes a
//     validated pass
//   - [Net.Validate]: per-conditional invariants plus the requirement that
//     every key is frontal in at most one conditional
//   - [Net.ToDOT] and [Net.RenderSVG]: Graphviz output for debugging
//
// # Basic Usage
//
//	net := bayesnet.New[int]()
//	_ = net.Push(inference.New(0, 1, 2))
//	_ = net.Push(inference.New(1, 2))
//	_ = net.Push(inference.New(2))
//
//	if err := net.CheckPermutation(inv); err != nil {
//	    return err
//	}
//	touched := net.PermuteWithInverse(inv)
//
// # Concurrency
//
// Net is not safe for concurrent use. Reads may proceed in parallel between
// reindexing passes; a pass requires exclusive access to the net and to every
// conditional it references.
package bayesnet
