package inference

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/perm"
)

func TestPermuteSeparatorWithInverse(t *testing.T) {
	tests := []struct {
		name        string
		inv         perm.Map[int]
		wantParents []int
		wantChanged bool
	}{
		{"identity", perm.Map[int]{}, []int{2, 3}, false},
		{"unrelated keys", perm.Map[int]{4: 5, 5: 4}, []int{2, 3}, false},
		{"swap parents", perm.Map[int]{2: 3, 3: 2}, []int{3, 2}, true},
		{"one parent", perm.Map[int]{3: 7, 7: 3}, []int{2, 7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, 2, 3)
			changed := c.PermuteSeparatorWithInverse(tt.inv)
			if changed != tt.wantChanged {
				t.Errorf("PermuteSeparatorWithInverse() = %v, want %v", changed, tt.wantChanged)
			}
			if diff := cmp.Diff([]int{0}, c.Frontals().Slice()); diff != "" {
				t.Errorf("Frontals() changed (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantParents, c.Parents().Slice()); diff != "" {
				t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPermuteSeparatorKeepsFrontalsExhaustive(t *testing.T) {
	// Frontals {0, 1} stay fixed while every arrangement of {2..5} is tried.
	for _, tail := range perm.Generate(4, -1) {
		table := perm.Permutation{0, 1, tail[0] + 2, tail[1] + 2, tail[2] + 2, tail[3] + 2}
		c := FromRange(slices.Values([]int{0, 1, 2, 4}), 2)
		before := c.Parents().Slice()

		changed := c.PermuteSeparatorWithInverse(table)

		if diff := cmp.Diff([]int{0, 1}, c.Frontals().Slice()); diff != "" {
			t.Errorf("%v: Frontals() changed (-want +got):\n%s", table, diff)
		}
		wantChanged := table[2] != 2 || table[4] != 4
		if changed != wantChanged {
			t.Errorf("%v: PermuteSeparatorWithInverse() = %v, want %v (parents %v -> %v)",
				table, changed, wantChanged, before, c.Parents().Slice())
		}
	}
}

func TestPermuteWithInverse(t *testing.T) {
	c := FromRange(slices.Values([]int{1, 2, 4}), 2)
	c.PermuteWithInverse(perm.Permutation{0, 2, 1, 3, 4})
	if diff := cmp.Diff([]int{2, 1}, c.Frontals().Slice()); diff != "" {
		t.Errorf("Frontals() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4}, c.Parents().Slice()); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}

	c.PermuteWithInverse(perm.Identity(5))
	if diff := cmp.Diff([]int{2, 1, 4}, c.Keys().Slice()); diff != "" {
		t.Errorf("identity changed keys (-want +got):\n%s", diff)
	}
}

func TestPermuteRoundTrip(t *testing.T) {
	orig := []int{0, 1, 3, 5}
	for _, raw := range perm.Generate(6, -1) {
		p := perm.Permutation(raw)
		c := FromRange(slices.Values(orig), 2)
		if c.CheckPermutation(p) != nil {
			continue
		}
		c.PermuteWithInverse(p)
		c.PermuteWithInverse(p.Inverse())
		if diff := cmp.Diff(orig, c.Keys().Slice()); diff != "" {
			t.Fatalf("%v: round trip mismatch (-want +got):\n%s", p, diff)
		}
		if c.NrFrontals() != 2 {
			t.Fatalf("%v: NrFrontals() = %d after round trip", p, c.NrFrontals())
		}
	}
}

func TestCheckPermutation(t *testing.T) {
	tests := []struct {
		name     string
		c        *Conditional[int]
		inv      Permutation[int]
		wantCode errors.Code
	}{
		{"identity on ordered", New(0, 1, 2), perm.Identity(3), ""},
		{"keeps order", New(0, 1, 2), perm.Permutation{0, 2, 1}, ""},
		{"frontal after parent", New(0, 1, 2), perm.Permutation{2, 0, 1}, errors.ErrCodeOrderingViolation},
		{"frontal equals parent", New(0, 1), perm.Map[int]{0: 1}, errors.ErrCodeOrderingViolation},
		{"frontal lands above a parent", New(5, 2, 9), perm.Map[int]{5: 1, 2: 0, 9: 2}, errors.ErrCodeOrderingViolation},
		{"out of domain", New(0, 5), perm.Identity(3), errors.ErrCodeKeyOutOfDomain},
		{"no parents", New(2), perm.Permutation{2, 1, 0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.c.Keys().Slice()
			err := tt.c.CheckPermutation(tt.inv)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("CheckPermutation() error = %v, want code %q", err, tt.wantCode)
			}
			if diff := cmp.Diff(before, tt.c.Keys().Slice()); diff != "" {
				t.Errorf("CheckPermutation() modified keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckSeparatorPermutation(t *testing.T) {
	c := FromRange(slices.Values([]int{0, 1, 2, 3}), 2)
	tests := []struct {
		name     string
		inv      Permutation[int]
		wantCode errors.Code
	}{
		{"fixes frontals", perm.Permutation{0, 1, 3, 2}, ""},
		{"moves frontal", perm.Permutation{1, 0, 2, 3}, errors.ErrCodeFrontalMoved},
		{"domain too small", perm.Permutation{0, 1, 2}, errors.ErrCodeKeyOutOfDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.CheckSeparatorPermutation(tt.inv)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("CheckSeparatorPermutation() error = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("validated rejects and leaves keys alone", func(t *testing.T) {
		c := New(0, 1, 2)
		err := Apply(c, perm.Permutation{2, 0, 1}, Validated)
		if !errors.Is(err, errors.ErrCodeOrderingViolation) {
			t.Fatalf("Apply() error = %v, want ORDERING_VIOLATION", err)
		}
		if diff := cmp.Diff([]int{0, 1, 2}, c.Keys().Slice()); diff != "" {
			t.Errorf("keys changed after rejected Apply (-want +got):\n%s", diff)
		}
	})

	t.Run("validated applies good permutation", func(t *testing.T) {
		c := New(1, 2)
		if err := Apply(c, perm.Permutation{2, 0, 1}, Validated); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if diff := cmp.Diff([]int{0, 1}, c.Keys().Slice()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trusted applies good permutation", func(t *testing.T) {
		c := New(1, 2)
		if err := Apply(c, perm.Map[int]{1: 4, 2: 6}, Trusted); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if diff := cmp.Diff([]int{4, 6}, c.Keys().Slice()); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestApplySeparator(t *testing.T) {
	c := New(0, 2, 3)
	changed, err := ApplySeparator(c, perm.Map[int]{0: 1}, Validated)
	if !errors.Is(err, errors.ErrCodeFrontalMoved) || changed {
		t.Errorf("ApplySeparator() = (%v, %v), want (false, FRONTAL_MOVED)", changed, err)
	}

	changed, err = ApplySeparator(c, perm.Map[int]{3: 4}, Validated)
	if err != nil || !changed {
		t.Errorf("ApplySeparator() = (%v, %v), want (true, nil)", changed, err)
	}
	if diff := cmp.Diff([]int{2, 4}, c.Parents().Slice()); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"trusted", Trusted, false},
		{"validated", Validated, false},
		{"", 0, true},
		{"Validated", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if err == nil && got.String() != tt.input {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.input)
		}
	}
}
