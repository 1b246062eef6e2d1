package inference

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/matzehuels/factorkeys/pkg/errors"
)

// noCopy makes go vet's copylocks check flag any Conditional passed or
// assigned by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Conditional holds the keys of a conditional P(frontals | parents).
//
// Keys [0, NrFrontals()) are frontal and keys [NrFrontals(), Len()) are
// parents. Membership is purely positional. NrFrontals() <= Len() always
// holds.
//
// The zero value is an empty conditional with no frontal keys. Conditionals
// must be passed by pointer; copying one is reported by go vet.
type Conditional[K cmp.Ordered] struct {
	noCopy noCopy

	keys       KeySeq[K]
	nrFrontals int
}

// New returns a conditional with the single frontal key and the given
// parents, in order.
func New[K cmp.Ordered](key K, parents ...K) *Conditional[K] {
	c := &Conditional[K]{nrFrontals: 1}
	c.keys.Resize(1 + len(parents))
	c.keys.keys[0] = key
	copy(c.keys.keys[1:], parents)
	return c
}

// FromParents returns a single-frontal conditional whose parents are
// produced by seq.
func FromParents[K cmp.Ordered](key K, parents iter.Seq[K]) *Conditional[K] {
	c := &Conditional[K]{nrFrontals: 1}
	c.keys.Append(key)
	c.keys.AppendSeq(parents)
	return c
}

// FromRange returns a conditional over the keys produced by seq whose first
// nrFrontals keys are frontal. This is the multi-frontal form used for
// clique conditionals.
//
// FromRange panics if nrFrontals is negative or exceeds the number of keys.
// Use [FromSlice] when the count comes from untrusted input.
func FromRange[K cmp.Ordered](seq iter.Seq[K], nrFrontals int) *Conditional[K] {
	c := &Conditional[K]{nrFrontals: nrFrontals}
	c.keys.AppendSeq(seq)
	if err := errors.ValidateFrontalCount(nrFrontals, c.keys.Len()); err != nil {
		panic(err)
	}
	return c
}

// FromSlice is like [FromRange] over a slice, but reports an invalid frontal
// count as an error with code ErrCodeInvalidFrontalCount instead of
// panicking. The keys are copied.
func FromSlice[K cmp.Ordered](keys []K, nrFrontals int) (*Conditional[K], error) {
	if err := errors.ValidateFrontalCount(nrFrontals, len(keys)); err != nil {
		return nil, err
	}
	return &Conditional[K]{keys: NewKeySeq(keys...), nrFrontals: nrFrontals}, nil
}

// NrFrontals returns the number of frontal keys.
func (c *Conditional[K]) NrFrontals() int { return c.nrFrontals }

// NrParents returns the number of parent keys.
func (c *Conditional[K]) NrParents() int { return c.keys.Len() - c.nrFrontals }

// Len returns the total number of keys.
func (c *Conditional[K]) Len() int { return c.keys.Len() }

// Key returns the sole frontal key. Calling Key on a conditional with other
// than one frontal key is a programming error; it is asserted in debug
// builds.
func (c *Conditional[K]) Key() K {
	assertf(c.nrFrontals == 1, "Key() called on conditional with %d frontal keys", c.nrFrontals)
	return c.keys.At(0)
}

// BeginFrontals returns the storage position of the first frontal key.
func (c *Conditional[K]) BeginFrontals() int { return 0 }

// EndFrontals returns the storage position just past the last frontal key.
func (c *Conditional[K]) EndFrontals() int { return c.nrFrontals }

// BeginParents returns the storage position of the first parent key.
func (c *Conditional[K]) BeginParents() int { return c.nrFrontals }

// EndParents returns the storage position just past the last parent key.
func (c *Conditional[K]) EndParents() int { return c.keys.Len() }

// Keys returns a view over all keys, frontals first.
func (c *Conditional[K]) Keys() View[K] {
	return View[K]{keys: c.keys.window(0, c.keys.Len())}
}

// Frontals returns a view over the frontal keys in storage order.
func (c *Conditional[K]) Frontals() View[K] {
	return View[K]{keys: c.keys.window(c.BeginFrontals(), c.EndFrontals())}
}

// Parents returns a view over the parent keys in storage order.
func (c *Conditional[K]) Parents() View[K] {
	return View[K]{keys: c.keys.window(c.BeginParents(), c.EndParents())}
}

func (c *Conditional[K]) mutParents() mutView[K] {
	return mutView[K]{keys: c.keys.window(c.BeginParents(), c.EndParents())}
}

// Equals reports whether c and other have the same number of frontal keys
// and identical key sequences. The tolerance is accepted for parity with
// conditionals that carry numeric data; keys are always compared exactly.
func (c *Conditional[K]) Equals(other *Conditional[K], tol float64) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.nrFrontals == other.nrFrontals && c.keys.Equal(&other.keys)
}

// Render returns "<label> P( f1 f2 | p1 p2)". The "|" separator only
// appears when the conditional has parents.
func (c *Conditional[K]) Render(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" P(")
	for k := range c.Frontals().Values() {
		fmt.Fprintf(&b, " %v", k)
	}
	if c.NrParents() > 0 {
		b.WriteString(" |")
	}
	for k := range c.Parents().Values() {
		fmt.Fprintf(&b, " %v", k)
	}
	b.WriteByte(')')
	return b.String()
}

// Print writes Render(label) followed by a newline to w.
func (c *Conditional[K]) Print(w io.Writer, label string) error {
	_, err := fmt.Fprintln(w, c.Render(label))
	return err
}

// String implements fmt.Stringer.
func (c *Conditional[K]) String() string { return c.Render("Conditional") }

// Validate checks the structural invariants of c as they should hold after
// a reindexing pass: the frontal count fits the key sequence, and every
// frontal key is strictly less than every parent key.
//
// Conditionals built from raw, not yet reindexed labels may legitimately fail
// the ordering check.
func (c *Conditional[K]) Validate() error {
	if err := errors.ValidateFrontalCount(c.nrFrontals, c.keys.Len()); err != nil {
		return err
	}
	return checkOrdered(c.Frontals().Values(), c.Parents().Values(), identity[K])
}

func identity[K any](k K) K { return k }

// checkOrdered reports an ErrCodeOrderingViolation unless every relabeled
// frontal is strictly below every relabeled parent. It runs in linear time by
// comparing the largest frontal against the smallest parent.
func checkOrdered[K cmp.Ordered](frontals, parents iter.Seq[K], relabel func(K) K) error {
	var maxF, minP, maxFOrig, minPOrig K
	haveF, haveP := false, false
	for f := range frontals {
		nf := relabel(f)
		if !haveF || nf > maxF {
			maxF, maxFOrig, haveF = nf, f, true
		}
	}
	for p := range parents {
		np := relabel(p)
		if !haveP || np < minP {
			minP, minPOrig, haveP = np, p, true
		}
	}
	if haveF && haveP && !(maxF < minP) {
		return errors.New(errors.ErrCodeOrderingViolation,
			"frontal %v (now %v) does not precede parent %v (now %v)", maxFOrig, maxF, minPOrig, minP)
	}
	return nil
}
