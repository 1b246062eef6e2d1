package perm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/factorkeys/pkg/errors"
)

// Permutation is a bijection over the index domain [0, n).
//
// Element i holds the new index of old index i. The zero value is the empty
// permutation. A Permutation is a plain slice, so callers that already hold
// a valid table (for instance one produced by [Generate]) may convert it
// directly; [FromSlice] performs the bijection check first.
type Permutation []int

// Identity returns the identity permutation over n indices.
func Identity(n int) Permutation {
	return Permutation(Seq(n))
}

// FromSlice copies s into a Permutation after checking that it is a
// bijection over [0, len(s)). It returns an error with code
// ErrCodeInvalidPermutation otherwise.
func FromSlice(s []int) (Permutation, error) {
	p := Permutation(slices.Clone(s))
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports whether p is a bijection over [0, len(p)).
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return errors.New(errors.ErrCodeInvalidPermutation,
				"index %d maps to %d, outside [0, %d)", i, v, len(p))
		}
		if seen[v] {
			return errors.New(errors.ErrCodeInvalidPermutation,
				"index %d maps to %d, which is already taken", i, v)
		}
		seen[v] = true
	}
	return nil
}

// At returns the image of index i. It panics if i is outside the domain.
func (p Permutation) At(i int) int { return p[i] }

// Contains reports whether i lies in the domain of p.
func (p Permutation) Contains(i int) bool { return i >= 0 && i < len(p) }

// Len returns the size of the domain.
func (p Permutation) Len() int { return len(p) }

// Inverse returns the permutation q with q.At(p.At(i)) == i for every i.
// p must be a valid bijection.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Compose returns the permutation that applies p first and then q, so
// p.Compose(q).At(i) == q.At(p.At(i)). Both must share the same domain.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p) != len(q) {
		return nil, errors.New(errors.ErrCodeInvalidPermutation,
			"cannot compose permutations of size %d and %d", len(p), len(q))
	}
	out := make(Permutation, len(p))
	for i, v := range p {
		out[i] = q[v]
	}
	return out, nil
}

// Equal reports whether p and q map every index identically.
func (p Permutation) Equal(q Permutation) bool { return slices.Equal(p, q) }

// IsIdentity reports whether p maps every index to itself.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if i != v {
			return false
		}
	}
	return true
}

// String renders p in the same form as the elimination literature:
// "Permutation{0->2 1->0 2->1}".
func (p Permutation) String() string {
	var b strings.Builder
	b.WriteString("Permutation{")
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d->%d", i, v)
	}
	b.WriteByte('}')
	return b.String()
}
