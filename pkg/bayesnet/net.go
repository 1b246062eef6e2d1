package bayesnet

import (
	"cmp"
	stderrors "errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/inference"
)

// ErrNilConditional is returned by [Net.Push] when given a nil handle.
var ErrNilConditional = stderrors.New("nil conditional")

// Net is an ordered collection of shared conditionals.
//
// The zero value is not usable - use New to create a Net.
type Net[K cmp.Ordered] struct {
	conditionals []*inference.Conditional[K]
}

// New creates an empty Net.
func New[K cmp.Ordered]() *Net[K] {
	return &Net[K]{}
}

// Push appends a conditional handle to the net. The conditional is shared,
// not copied. Returns ErrNilConditional for a nil handle.
func (n *Net[K]) Push(c *inference.Conditional[K]) error {
	if c == nil {
		return ErrNilConditional
	}
	n.conditionals = append(n.conditionals, c)
	return nil
}

// Len returns the number of conditionals in the net.
func (n *Net[K]) Len() int { return len(n.conditionals) }

// At returns the i-th conditional.
func (n *Net[K]) At(i int) *inference.Conditional[K] { return n.conditionals[i] }

// All yields each position and conditional in insertion order.
func (n *Net[K]) All() iter.Seq2[int, *inference.Conditional[K]] {
	return slices.All(n.conditionals)
}

// Keys returns every key mentioned by the net, sorted ascending and without
// duplicates.
func (n *Net[K]) Keys() []K {
	seen := make(map[K]struct{})
	for _, c := range n.conditionals {
		for k := range c.Keys().Values() {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Frontal returns the conditional in which k is frontal, if any.
func (n *Net[K]) Frontal(k K) (*inference.Conditional[K], bool) {
	for _, c := range n.conditionals {
		if c.Frontals().Contains(k) {
			return c, true
		}
	}
	return nil, false
}

// distinct yields each conditional once, in insertion order, even when the
// same handle was pushed more than once. Reindexing passes iterate this way
// so a shared conditional is never relabeled twice.
func (n *Net[K]) distinct() iter.Seq2[int, *inference.Conditional[K]] {
	return func(yield func(int, *inference.Conditional[K]) bool) {
		seen := make(map[*inference.Conditional[K]]bool, len(n.conditionals))
		for i, c := range n.conditionals {
			if seen[c] {
				continue
			}
			seen[c] = true
			if !yield(i, c) {
				return
			}
		}
	}
}

// Validate checks every conditional with [inference.Conditional.Validate]
// and verifies that no key is frontal in more than one conditional.
func (n *Net[K]) Validate() error {
	owner := make(map[K]int)
	for i, c := range n.distinct() {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("conditional %d: %w", i, err)
		}
		for f := range c.Frontals().Values() {
			if j, dup := owner[f]; dup {
				return errors.New(errors.ErrCodeDuplicateFrontal,
					"key %v is frontal in conditionals %d and %d", f, j, i)
			}
			owner[f] = i
		}
	}
	return nil
}

// CheckPermutation validates inv against every conditional without
// modifying any of them. The first failure is returned with the index of the
// offending conditional.
func (n *Net[K]) CheckPermutation(inv inference.Permutation[K]) error {
	for i, c := range n.distinct() {
		if err := c.CheckPermutation(inv); err != nil {
			return fmt.Errorf("conditional %d: %w", i, err)
		}
	}
	return nil
}

// CheckBijection reports an ErrCodeInvalidPermutation error if inv sends two
// distinct keys of the net to the same label, and an ErrCodeKeyOutOfDomain
// error if a key lies outside a bounded permutation.
func (n *Net[K]) CheckBijection(inv inference.Permutation[K]) error {
	d, bounded := inv.(interface{ Contains(K) bool })
	seen := make(map[K]K)
	for _, k := range n.Keys() {
		if bounded && !d.Contains(k) {
			return errors.New(errors.ErrCodeKeyOutOfDomain, "key %v is outside the permutation domain", k)
		}
		to := inv.At(k)
		if prev, dup := seen[to]; dup {
			return errors.New(errors.ErrCodeInvalidPermutation,
				"keys %v and %v both relabel to %v", prev, k, to)
		}
		seen[to] = k
	}
	return nil
}

// CheckSeparatorPermutation is the separator-only counterpart of
// CheckPermutation.
func (n *Net[K]) CheckSeparatorPermutation(inv inference.Permutation[K]) error {
	for i, c := range n.distinct() {
		if err := c.CheckSeparatorPermutation(inv); err != nil {
			return fmt.Errorf("conditional %d: %w", i, err)
		}
	}
	return nil
}

// PermuteWithInverse relabels every key of every conditional and returns the
// positions of the conditionals whose keys changed. Preconditions are
// trusted; call CheckPermutation first for a validated pass.
func (n *Net[K]) PermuteWithInverse(inv inference.Permutation[K]) []int {
	var touched []int
	for i, c := range n.distinct() {
		if moves(c.Keys().Values(), inv) {
			touched = append(touched, i)
		}
		c.PermuteWithInverse(inv)
	}
	return touched
}

// PermuteSeparatorsWithInverse relabels the parent keys of every conditional
// and returns the positions of the conditionals whose separator changed.
func (n *Net[K]) PermuteSeparatorsWithInverse(inv inference.Permutation[K]) []int {
	var touched []int
	for i, c := range n.distinct() {
		if c.PermuteSeparatorWithInverse(inv) {
			touched = append(touched, i)
		}
	}
	return touched
}

func moves[K comparable](keys iter.Seq[K], inv inference.Permutation[K]) bool {
	for k := range keys {
		if inv.At(k) != k {
			return true
		}
	}
	return false
}

// Equals reports whether both nets hold equal conditionals in the same order.
func (n *Net[K]) Equals(other *Net[K], tol float64) bool {
	if other == nil || n.Len() != other.Len() {
		return false
	}
	for i, c := range n.conditionals {
		if !c.Equals(other.conditionals[i], tol) {
			return false
		}
	}
	return true
}

// Render returns the label on its own line followed by one line per
// conditional, each labeled with its position.
func (n *Net[K]) Render(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteByte('\n')
	for i, c := range n.conditionals {
		b.WriteString(c.Render(fmt.Sprintf("  [%d]", i)))
		b.WriteByte('\n')
	}
	return b.String()
}
