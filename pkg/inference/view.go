package inference

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// View is a read-only window over part of a conditional's key sequence.
//
// Views are cheap to create and restartable: All and Values can be ranged
// over any number of times. A view reflects later permutations of the
// conditional it was taken from, since it shares its storage.
type View[K cmp.Ordered] struct {
	keys []K
}

// Len returns the number of keys in the view.
func (v View[K]) Len() int { return len(v.keys) }

// Empty reports whether the view holds no keys.
func (v View[K]) Empty() bool { return len(v.keys) == 0 }

// At returns the i-th key of the view.
func (v View[K]) At(i int) K { return v.keys[i] }

// All yields each position (relative to the view) and key in order.
func (v View[K]) All() iter.Seq2[int, K] { return slices.All(v.keys) }

// Values yields each key in order.
func (v View[K]) Values() iter.Seq[K] { return slices.Values(v.keys) }

// Slice returns a copy of the keys in the view.
func (v View[K]) Slice() []K { return slices.Clone(v.keys) }

// Contains reports whether k appears in the view.
func (v View[K]) Contains(k K) bool { return slices.Contains(v.keys, k) }

// String renders the view as "[k1 k2 ...]".
func (v View[K]) String() string {
	parts := make([]string, len(v.keys))
	for i, k := range v.keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// mutView is the writable counterpart of View. It can change key values but
// never the number of keys. Only the permutation routines use it.
type mutView[K cmp.Ordered] struct {
	keys []K
}

func (v mutView[K]) Len() int { return len(v.keys) }

func (v mutView[K]) At(i int) K { return v.keys[i] }

func (v mutView[K]) Set(i int, k K) { v.keys[i] = k }
