package inference_test

import (
	"fmt"
	"slices"

	"github.com/matzehuels/factorkeys/pkg/inference"
	"github.com/matzehuels/factorkeys/pkg/perm"
)

func ExampleNew() {
	c := inference.New(5, 2, 9)
	fmt.Println("frontals:", c.NrFrontals(), c.Frontals())
	fmt.Println("parents:", c.NrParents(), c.Parents())
	fmt.Println("key:", c.Key())
	fmt.Println(c.Render("X"))
	// Output:
	// frontals: 1 [5]
	// parents: 2 [2 9]
	// key: 5
	// X P( 5 | 2 9)
}

func ExampleFromRange() {
	// The joint conditional of a clique over {0, 1} with separator {4, 6}
	clique := inference.FromRange(slices.Values([]int{0, 1, 4, 6}), 2)
	fmt.Println(clique.Render("clique"))
	// Output:
	// clique P( 0 1 | 4 6)
}

func ExampleConditional_PermuteSeparatorWithInverse() {
	c := inference.New(0, 3, 4)

	// Only the separator is touched by this reordering
	changed := c.PermuteSeparatorWithInverse(perm.Map[int]{3: 4, 4: 3})
	fmt.Println(changed, c)

	// Nothing in the separator moves
	changed = c.PermuteSeparatorWithInverse(perm.Map[int]{7: 8, 8: 7})
	fmt.Println(changed, c)
	// Output:
	// true Conditional P( 0 | 4 3)
	// false Conditional P( 0 | 4 3)
}

func ExampleApply() {
	c := inference.New(0, 1, 2)

	// Moves frontal 0 behind parent 1: rejected, c is unchanged
	err := inference.Apply(c, perm.Permutation{2, 0, 1}, inference.Validated)
	fmt.Println(err)
	fmt.Println(c)

	err = inference.Apply(c, perm.Permutation{0, 2, 1}, inference.Validated)
	fmt.Println(err)
	fmt.Println(c)
	// Output:
	// ORDERING_VIOLATION: frontal 0 (now 2) does not precede parent 1 (now 0)
	// Conditional P( 0 | 1 2)
	// <nil>
	// Conditional P( 0 | 2 1)
}
