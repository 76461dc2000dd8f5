// File: cmpx.go
// Title: Comparison Helpers
// Description: Generic relational helpers over types with a three-way
//              Compare method, plus member-wise lexicographic comparison.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmpx

import "slices"

// Ordered is implemented by types with a total order
type Ordered[T any] interface {
	// Compare returns a negative number if the receiver sorts before other,
	// zero if both are equal and a positive number otherwise.
	Compare(other T) int
}

// Equal reports whether a and b compare equal
func Equal[T Ordered[T]](a, b T) bool {
	return a.Compare(b) == 0
}

// NotEqual reports whether a and b differ
func NotEqual[T Ordered[T]](a, b T) bool {
	return a.Compare(b) != 0
}

// Less reports whether a sorts before b
func Less[T Ordered[T]](a, b T) bool {
	return a.Compare(b) < 0
}

// LessEqual reports whether a sorts before or equal to b
func LessEqual[T Ordered[T]](a, b T) bool {
	return a.Compare(b) <= 0
}

// Greater reports whether a sorts after b
func Greater[T Ordered[T]](a, b T) bool {
	return a.Compare(b) > 0
}

// GreaterEqual reports whether a sorts after or equal to b
func GreaterEqual[T Ordered[T]](a, b T) bool {
	return a.Compare(b) >= 0
}

// Min returns the smallest value. On ties the first one wins.
func Min[T Ordered[T]](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if v.Compare(result) < 0 {
			result = v
		}
	}
	return result
}

// Max returns the largest value. On ties the first one wins.
func Max[T Ordered[T]](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if v.Compare(result) > 0 {
			result = v
		}
	}
	return result
}

// Sort sorts values in ascending order. The sort is stable.
func Sort[T Ordered[T]](values []T) {
	slices.SortStableFunc(values, func(a, b T) int {
		return a.Compare(b)
	})
}

// IsSorted reports whether values are in ascending order
func IsSorted[T Ordered[T]](values []T) bool {
	return slices.IsSortedFunc(values, func(a, b T) int {
		return a.Compare(b)
	})
}

// Lexicographic combines member comparisons, most significant first.
// It returns the first non-zero result, or zero when all members are equal.
func Lexicographic(results ...int) int {
	for _, r := range results {
		if r != 0 {
			return r
		}
	}
	return 0
}
