//go:build shessdebug

package shess

// assertInvariant panics with msg if cond is false. Only compiled with
// -tags shessdebug (§7).
func assertInvariant(cond bool, msg string) {
	if !cond {
		panic("shess: invariant violated: " + msg)
	}
}
