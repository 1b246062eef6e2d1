package inference

import "fmt"

// assertf panics with a formatted message when debug assertions are
// compiled in and cond is false. Callers guard expensive conditions with
// `if debugAssertions` so release builds pay nothing.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("inference: "+format, args...))
	}
}
