//go:build !inferencedebug

package inference

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/factorkeys/pkg/perm"
)

// Without debug assertions the caller is trusted: a relabeling that breaks
// the elimination ordering is applied as given.
func TestPermuteWithInverseTrustsCaller(t *testing.T) {
	c := New(5, 2, 9)
	c.PermuteWithInverse(perm.Map[int]{5: 1, 2: 0, 9: 2})

	if diff := cmp.Diff([]int{1}, c.Frontals().Slice()); diff != "" {
		t.Errorf("Frontals() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2}, c.Parents().Slice()); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}

	c.PermuteWithInverse(perm.Identity(3))
	if diff := cmp.Diff([]int{1, 0, 2}, c.Keys().Slice()); diff != "" {
		t.Errorf("identity changed keys (-want +got):\n%s", diff)
	}
}

func TestKeyOnMultiFrontalReturnsFirst(t *testing.T) {
	c, err := FromSlice([]int{3, 4, 9}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Key(); got != 3 {
		t.Errorf("Key() = %d, want 3", got)
	}
}
