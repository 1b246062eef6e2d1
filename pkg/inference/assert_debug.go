//go:build inferencedebug

package inference

// debugAssertions enables precondition checks on every permutation and
// accessor call. Build with -tags inferencedebug.
const debugAssertions = true
