//go:build !inferencedebug

package inference

const debugAssertions = false
