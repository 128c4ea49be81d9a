// Package stub replaces package-level variables for the duration of a test.
package stub

import "testing"

// Value sets *dst to val and restores the old value when t finishes.
//
// Tests that use Value must not run in parallel with other tests that read
// the same variable.
func Value[V any](t testing.TB, dst *V, val V) {
	t.Helper()

	old := *dst
	*dst = val
	t.Cleanup(func() { *dst = old })
}
