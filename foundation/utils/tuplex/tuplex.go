// File: tuplex.go
// Title: Heterogeneous Sequence Lookup
// Description: Locates values by dynamic type, or by type and value, in a
//              variadic list of arbitrary values such as key/value pairs.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package tuplex finds elements by type in heterogeneous value sequences.
//
// Interface types match every element implementing them, so
// FirstOfType[error] finds the first error regardless of its concrete type.
// Nil elements never match.
package tuplex

// NotFound is returned by the index functions when no element matches
const NotFound = -1

// FirstOfType returns the index of the first element at or after start whose
// dynamic type is T, or NotFound. A start outside the sequence yields NotFound.
func FirstOfType[T any](start int, values ...any) int {
	if start < 0 {
		return NotFound
	}
	for i := start; i < len(values); i++ {
		if _, ok := values[i].(T); ok {
			return i
		}
	}
	return NotFound
}

// Find returns the index of the first element at or after start that is a T
// equal to target, or NotFound.
func Find[T comparable](target T, start int, values ...any) int {
	if start < 0 {
		return NotFound
	}
	for i := start; i < len(values); i++ {
		if v, ok := values[i].(T); ok && v == target {
			return i
		}
	}
	return NotFound
}

// Get returns the first element of type T
func Get[T any](values ...any) (T, bool) {
	if i := FirstOfType[T](0, values...); i != NotFound {
		return values[i].(T), true
	}
	var zero T
	return zero, false
}

// Count returns how many elements have dynamic type T
func Count[T any](values ...any) int {
	n := 0
	for i := FirstOfType[T](0, values...); i != NotFound; i = FirstOfType[T](i+1, values...) {
		n++
	}
	return n
}
