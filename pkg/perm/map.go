package perm

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/factorkeys/pkg/errors"
)

// Map is a sparse relabeling over an arbitrary key type. Keys absent from
// the map are fixed points, so a Map only needs to list the keys that move.
//
// A Map describes a bijection as long as its listed values are distinct and
// do not collide with unlisted keys that are in use; [Map.Inverse] checks the
// former.
type Map[K comparable] map[K]K

// At returns the new label of k.
func (m Map[K]) At(k K) K {
	if v, ok := m[k]; ok {
		return v
	}
	return k
}

// Contains always reports true: every key is in the domain of a Map.
func (m Map[K]) Contains(K) bool { return true }

// Inverse returns the relabeling that undoes m. It fails with
// ErrCodeInvalidPermutation if two keys map to the same label.
func (m Map[K]) Inverse() (Map[K], error) {
	inv := make(Map[K], len(m))
	for k, v := range m {
		if prev, dup := inv[v]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPermutation,
				"keys %v and %v both map to %v", prev, k, v)
		}
		inv[v] = k
	}
	return inv, nil
}

// Sorted returns the listed keys of an ordered Map in ascending order.
func Sorted[K cmp.Ordered](m Map[K]) []K {
	return slices.Sorted(maps.Keys(m))
}

// FormatMap renders an ordered Map deterministically as "{2->0 5->1 9->2}".
func FormatMap[K cmp.Ordered](m Map[K]) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range Sorted(m) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v->%v", k, m[k])
	}
	b.WriteByte('}')
	return b.String()
}
