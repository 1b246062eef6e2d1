// Package pkg provides the libraries behind factorkeys.
//
// # Overview
//
// factorkeys manages the keys of conditionals produced by variable
// elimination. A conditional P(frontals | parents) stores its keys as one
// ordered sequence whose prefix is frontal. After an ordering routine picks
// a new variable order, every conditional in a net is relabeled in place.
// The pkg directory is organized into these areas:
//
//  1. [inference] - Conditional key storage, views and in-place relabeling
//  2. [perm] - Dense and sparse permutations that drive relabeling
//  3. [bayesnet] - Nets of shared conditionals and their DOT/SVG export
//  4. [reindex] - Whole-net reindexing passes with policy, logging and hooks
//  5. [noisemodel] - Diagonal noise-model descriptors and shared handles
//  6. [netfile] - TOML documents describing a net and a relabeling
//
// # Architecture
//
// The typical data flow:
//
//	TOML net file
//	     ↓
//	[netfile] package (decode conditionals + permutation)
//	     ↓
//	[bayesnet] package (net of *inference.Conditional handles)
//	     ↓
//	[reindex] package (validated or trusted relabeling pass)
//	     ↓
//	reindexed net, TOML, DOT or SVG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/factorkeys/pkg/bayesnet"
//	    "github.com/matzehuels/factorkeys/pkg/inference"
//	    "github.com/matzehuels/factorkeys/pkg/perm"
//	)
//
//	net := bayesnet.New[int]()
//	_ = net.Push(inference.New(5, 2, 9))
//
//	// Relabel 5→0, 2→1, 9→2 and verify first
//	inv := perm.Map[int]{5: 0, 2: 1, 9: 2}
//	if err := net.CheckPermutation(inv); err == nil {
//	    net.PermuteWithInverse(inv)
//	}
//	fmt.Print(net.Render("net"))
//
// # Supporting Packages
//
//   - [errors]: coded errors shared by every package
//   - [observability]: hooks around reindexing passes
//   - [buildinfo]: version information for the CLI
//
// [inference]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/inference
// [perm]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/perm
// [bayesnet]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/bayesnet
// [reindex]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/reindex
// [noisemodel]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/noisemodel
// [netfile]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/netfile
// [errors]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/factorkeys/pkg/buildinfo
package pkg
