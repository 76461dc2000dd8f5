// File: doc.go
// Title: Julian Time Values Package Documentation
// Description: Package temporal provides instants counted from Julian day 0
//              with nanosecond precision, and unit-bound views of them that
//              convert to and from platform time representations.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package temporal provides Julian-day based time values.

Package: temporal
Title: Julian Time Values
Description: A Moment is an instant stored as whole seconds since the
             civil start of Julian day 0 (midnight, 1 January 4713 BC,
             proleptic Julian calendar) plus a nanosecond remainder. A Ratio views a Moment in a fixed Unit
             (nanoseconds up to days) and converts it to Unix seconds,
             time.Time, time.Duration and the unix timespec/timeval structs.

Key Features:
  • Moment: value type, lexicographic ordering, carry/borrow arithmetic
  • Nanosecond remainder normalized into [0, 999999999] by every operation
    except New
  • Signed seconds: instants before 1970 have a negative SecEpoch
  • Wrapping Add/Sub plus AddChecked/SubChecked reporting int64 overflow
  • Ratio: unit alignment, counts, cross-unit arithmetic, platform conversions
  • Text form "<jsec>.<nsec>" used by JSON and YAML

Epoch Relation:

	JulianSecondsBeforeEpoch = 2440588 days * 86400 s = 210866803200

	m := temporal.FromEpoch(0, 0)  // 1970-01-01T00:00:00Z
	m.JSec()                       // 210866803200
	m.SecEpoch()                   // 0

Arithmetic:

	a := temporal.New(0, 700_000_000)
	b := temporal.New(0, 500_000_000)
	a.Add(b)                       // 1.200000000 (carry)
	temporal.New(5, 200_000_000).Sub(temporal.New(3, 500_000_000))
	                               // 1.700000000 (borrow)

Units:

	r := temporal.RatioFromMoment(temporal.Milliseconds, temporal.Now())
	r.CountSinceEpoch()            // Unix milliseconds
	r.In(temporal.Days).Count()    // day number counted from midnight

Errors returned by this package are *error.Error values from
foundation/core/error with CodeValueOutOfRange, CodeInvalidFormat or
CodeInvalidUnit.
*/
package temporal
