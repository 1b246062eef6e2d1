package inference

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/factorkeys/pkg/errors"
)

// Permutation relabels keys: At returns the new label of an old key.
//
// Conditionals are always permuted "with inverse", meaning the lookup goes
// directly from the old key to its new key. perm.Permutation and perm.Map
// both satisfy this interface.
type Permutation[K any] interface {
	At(K) K
}

// domain is implemented by permutations with a finite index domain. The
// checked paths use it to report out-of-domain keys as errors rather than
// letting At panic.
type domain[K any] interface {
	Contains(K) bool
}

// PermuteSeparatorWithInverse replaces every parent key p with inv.At(p) and
// reports whether any parent changed. Frontal keys are left untouched and
// must be fixed points of inv; this is asserted in debug builds.
func (c *Conditional[K]) PermuteSeparatorWithInverse(inv Permutation[K]) bool {
	if debugAssertions {
		if err := c.CheckSeparatorPermutation(inv); err != nil {
			panic(err)
		}
	}
	parents := c.mutParents()
	changed := false
	for i := range parents.Len() {
		old := parents.At(i)
		if next := inv.At(old); next != old {
			parents.Set(i, next)
			changed = true
		}
	}
	return changed
}

// PermuteWithInverse replaces every key k, frontal and parent, with
// inv.At(k). After relabeling, every frontal key must still precede every
// parent key; this is asserted in debug builds and trusted otherwise.
func (c *Conditional[K]) PermuteWithInverse(inv Permutation[K]) {
	if debugAssertions {
		if err := c.CheckPermutation(inv); err != nil {
			panic(err)
		}
	}
	c.keys.PermuteWithInverse(inv)
}

// CheckSeparatorPermutation reports whether inv is acceptable for
// PermuteSeparatorWithInverse: every key lies in the domain of inv and every
// frontal key is a fixed point. It does not modify c.
func (c *Conditional[K]) CheckSeparatorPermutation(inv Permutation[K]) error {
	if err := c.checkDomain(inv); err != nil {
		return err
	}
	for f := range c.Frontals().Values() {
		if next := inv.At(f); next != f {
			return errors.New(errors.ErrCodeFrontalMoved,
				"separator permutation moves frontal %v to %v", f, next)
		}
	}
	return nil
}

// CheckPermutation reports whether inv is acceptable for PermuteWithInverse:
// every key lies in the domain of inv and every relabeled frontal key is
// strictly less than every relabeled parent key. It does not modify c.
func (c *Conditional[K]) CheckPermutation(inv Permutation[K]) error {
	if err := c.checkDomain(inv); err != nil {
		return err
	}
	return checkOrdered(c.Frontals().Values(), c.Parents().Values(), inv.At)
}

func (c *Conditional[K]) checkDomain(inv Permutation[K]) error {
	d, ok := inv.(domain[K])
	if !ok {
		return nil
	}
	for k := range c.Keys().Values() {
		if !d.Contains(k) {
			return errors.New(errors.ErrCodeKeyOutOfDomain, "key %v is outside the permutation domain", k)
		}
	}
	return nil
}

// Policy selects whether permutation preconditions are verified at run time.
type Policy int

const (
	// Trusted applies permutations without checking preconditions. Misuse
	// leaves the conditional in an unspecified state. This is the fast path
	// used by reindexing passes whose ordering is known to be valid.
	Trusted Policy = iota

	// Validated checks preconditions first and returns an error, leaving the
	// conditional unchanged, if they do not hold.
	Validated
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Trusted:
		return "trusted"
	case Validated:
		return "validated"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "trusted" or "validated".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "trusted":
		return Trusted, nil
	case "validated":
		return Validated, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidPolicy, "unknown policy %q (want trusted or validated)", s)
	}
}

// Apply relabels every key of c under the given policy.
func Apply[K cmp.Ordered](c *Conditional[K], inv Permutation[K], policy Policy) error {
	if policy == Validated {
		if err := c.CheckPermutation(inv); err != nil {
			return err
		}
	}
	c.PermuteWithInverse(inv)
	return nil
}

// ApplySeparator relabels the parent keys of c under the given policy and
// reports whether any of them changed.
func ApplySeparator[K cmp.Ordered](c *Conditional[K], inv Permutation[K], policy Policy) (bool, error) {
	if policy == Validated {
		if err := c.CheckSeparatorPermutation(inv); err != nil {
			return false, err
		}
	}
	return c.PermuteSeparatorWithInverse(inv), nil
}
