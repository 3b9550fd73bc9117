//go:build !shessdebug

package shess

// assertInvariant is a no-op in normal builds. Build with -tags
// shessdebug to turn the core's internal consistency checks on (§7):
// invariant violations are precondition bugs in the caller, not
// reportable errors, so they only cost anything in debug builds.
func assertInvariant(cond bool, msg string) {}
