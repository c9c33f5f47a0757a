// Package ksutil implements small invariant-enforcement and preallocation
// helpers shared by the normalizer's internal packages.
package ksutil

import "fmt"

// Reserve grows a slice to fit at least size extra elements. Like the
// builtin append, it may return an updated slice.
func Reserve[T any](xs []T, size int) []T {
	if cap(xs)-len(xs) < size {
		return append(make([]T, 0, len(xs)+size), xs...)
	}
	return xs
}

// Never panics with the given message. It marks a branch that the caller
// believes is unreachable given its invariants (e.g. an unknown descriptor
// marker in a baked table) so that a violation is loud rather than silently
// wrong.
func Never(format string, args ...any) {
	panic(fmt.Errorf("unorm: unreachable: "+format, args...))
}
