package inference

import (
	"cmp"
	"iter"
	"slices"
)

// KeySeq is the growable key storage underneath a conditional. It is an
// ordered sequence of keys with no partition of its own.
//
// The zero value is an empty sequence ready to use.
type KeySeq[K cmp.Ordered] struct {
	keys []K
}

// NewKeySeq returns a sequence holding a copy of keys.
func NewKeySeq[K cmp.Ordered](keys ...K) KeySeq[K] {
	return KeySeq[K]{keys: slices.Clone(keys)}
}

// Len returns the number of keys.
func (s *KeySeq[K]) Len() int { return len(s.keys) }

// At returns the key at position i.
func (s *KeySeq[K]) At(i int) K { return s.keys[i] }

// Append adds keys to the end of the sequence.
func (s *KeySeq[K]) Append(keys ...K) { s.keys = append(s.keys, keys...) }

// AppendSeq adds every key produced by seq to the end of the sequence.
func (s *KeySeq[K]) AppendSeq(seq iter.Seq[K]) {
	for k := range seq {
		s.keys = append(s.keys, k)
	}
}

// Resize truncates the sequence to n keys or extends it with zero keys.
func (s *KeySeq[K]) Resize(n int) {
	if n <= len(s.keys) {
		s.keys = s.keys[:n]
		return
	}
	s.keys = append(s.keys, make([]K, n-len(s.keys))...)
}

// All yields each position and key in order.
func (s *KeySeq[K]) All() iter.Seq2[int, K] { return slices.All(s.keys) }

// Values yields each key in order.
func (s *KeySeq[K]) Values() iter.Seq[K] { return slices.Values(s.keys) }

// Slice returns a copy of the keys.
func (s *KeySeq[K]) Slice() []K { return slices.Clone(s.keys) }

// Equal reports whether both sequences hold the same keys in the same order.
func (s *KeySeq[K]) Equal(o *KeySeq[K]) bool { return slices.Equal(s.keys, o.keys) }

// PermuteWithInverse replaces every key k with inv.At(k).
func (s *KeySeq[K]) PermuteWithInverse(inv Permutation[K]) {
	for i, k := range s.keys {
		s.keys[i] = inv.At(k)
	}
}

// window returns the sub-slice [from, to) with its capacity clipped so that
// appends through it can never write into the neighbouring partition.
func (s *KeySeq[K]) window(from, to int) []K { return s.keys[from:to:to] }
