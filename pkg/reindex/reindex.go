// Package reindex runs whole-structure reindexing passes over a Bayes net.
//
// After an ordering routine computes a new variable ordering, every
// conditional in the structure is relabeled before any reader resumes. This
// package wraps that pass with the policy choice (trusted or validated),
// structured logging and observability hooks, so CLI and library callers
// share one code path.
//
// # Usage
//
//	runner := reindex.NewRunner[int](logger)
//	result, err := runner.Run(ctx, net, inv, reindex.Options{
//	    Policy: inference.Validated,
//	})
//	if err != nil {
//	    // net is untouched
//	}
//	fmt.Println(result.Touched)
//
// # Validated Passes
//
// With [inference.Validated], the relabeling is first checked to be a
// bijection over the net's keys and every conditional is checked before the
// first one is modified, so a rejected permutation leaves the whole net unchanged.
// With [inference.Trusted] the pass relabels directly; debug builds
// (-tags inferencedebug) still assert each conditional's preconditions.
//
// # Concurrency
//
// A Runner holds no per-run state and may be shared. The net passed to Run
// must not be read or written by anyone else until Run returns.
package reindex

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/factorkeys/pkg/bayesnet"
	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/inference"
	"github.com/matzehuels/factorkeys/pkg/observability"
)

// Pass modes reported to hooks and logs.
const (
	ModeFull      = "full"
	ModeSeparator = "separator"
)

// Options configures a reindexing pass.
type Options struct {
	// Policy selects trusted or validated application. Defaults to Trusted.
	Policy inference.Policy

	// SeparatorOnly relabels parent keys only. Every frontal key must then be
	// a fixed point of the permutation.
	SeparatorOnly bool
}

// Mode returns ModeSeparator or ModeFull.
func (o Options) Mode() string {
	if o.SeparatorOnly {
		return ModeSeparator
	}
	return ModeFull
}

// ValidateAndSetDefaults checks the options. There are currently no fields
// that need defaulting beyond their zero values.
func (o *Options) ValidateAndSetDefaults() error {
	switch o.Policy {
	case inference.Trusted, inference.Validated:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidPolicy, "unknown policy %v", o.Policy)
	}
}

// Result describes a completed pass.
type Result struct {
	Mode         string
	Policy       inference.Policy
	Conditionals int           // conditionals in the net
	Touched      []int         // positions whose keys changed
	Duration     time.Duration // wall time of the pass
}

// Runner executes reindexing passes.
type Runner[K cmp.Ordered] struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner[K cmp.Ordered](logger *log.Logger) *Runner[K] {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner[K]{Logger: logger}
}

// Run relabels every conditional in net with inv according to opts.
func (r *Runner[K]) Run(ctx context.Context, net *bayesnet.Net[K], inv inference.Permutation[K], opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	mode, policy := opts.Mode(), opts.Policy.String()
	hooks := observability.Reindex()
	hooks.OnReindexStart(ctx, mode, policy, net.Len())
	start := time.Now()

	if opts.Policy == inference.Validated {
		if err := r.check(net, inv, opts); err != nil {
			hooks.OnReindexComplete(ctx, mode, policy, 0, time.Since(start), err)
			r.Logger.Warn("rejected permutation",
				"mode", mode,
				"code", errors.GetCode(err),
				"err", err)
			return nil, err
		}
	}

	var touched []int
	if opts.SeparatorOnly {
		touched = net.PermuteSeparatorsWithInverse(inv)
	} else {
		touched = net.PermuteWithInverse(inv)
	}

	result := &Result{
		Mode:         mode,
		Policy:       opts.Policy,
		Conditionals: net.Len(),
		Touched:      touched,
		Duration:     time.Since(start),
	}
	hooks.OnReindexComplete(ctx, mode, policy, len(touched), result.Duration, nil)

	r.Logger.Debug("reindexed net",
		"mode", mode,
		"policy", policy,
		"conditionals", result.Conditionals,
		"touched", len(touched),
		"duration", result.Duration)

	return result, nil
}

func (r *Runner[K]) check(net *bayesnet.Net[K], inv inference.Permutation[K], opts Options) error {
	if err := net.CheckBijection(inv); err != nil {
		return err
	}
	if opts.SeparatorOnly {
		return net.CheckSeparatorPermutation(inv)
	}
	return net.CheckPermutation(inv)
}
