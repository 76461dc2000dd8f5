// File: doc.go
// Title: Comparison Helpers Package Documentation
// Description: Package cmpx derives the full set of relational operations
//              from a single Compare method.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package cmpx derives equality and ordering from one three-way comparison.

A type implements Ordered[T] by providing Compare(T) int returning a negative
number, zero or a positive number. Equal, Less, Min, Sort and the other
helpers in this package are then available for it without further code.
Compound values compare member by member with Lexicographic:

	func (p Point) Compare(o Point) int {
		return cmpx.Lexicographic(cmp.Compare(p.X, o.X), cmp.Compare(p.Y, o.Y))
	}
*/
package cmpx
