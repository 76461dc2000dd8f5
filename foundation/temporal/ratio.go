// File: ratio.go
// Title: Unit-Bound Time Ratio
// Description: Implements Ratio, a Moment aligned to a Unit, with counts,
//              cross-unit arithmetic and conversions to Unix seconds,
//              time.Time and time.Duration.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package temporal

import (
	"math"
	"strconv"
	"time"

	jerror "github.com/msto63/jtime/foundation/core/error"
)

// Since selects the reference point of a time.Duration
type Since int

const (
	// SinceEpoch measures durations from 1970-01-01T00:00:00Z
	SinceEpoch Since = iota

	// SinceJulian measures durations from Julian day 0
	SinceJulian
)

// String returns the name of the reference point
func (s Since) String() string {
	switch s {
	case SinceEpoch:
		return "epoch"
	case SinceJulian:
		return "julian"
	default:
		return "since(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Since) offset() int64 {
	if s == SinceEpoch {
		return JulianSecondsBeforeEpoch
	}
	return 0
}

// Ratio is a Moment viewed in a fixed Unit. The stored moment is always a
// whole number of ticks; constructors truncate toward negative infinity.
//
// The zero value counts zero nanoseconds. Constructors panic on an invalid
// Unit.
type Ratio struct {
	unit   Unit
	moment Moment
}

// NewRatio returns the ratio holding count ticks of u since Julian day 0.
// Seconds wrap on int64 overflow; see MaxRatio for the largest count.
func NewRatio(u Unit, count int64) Ratio {
	u.mustBeValid()
	m, _ := u.moment(count)
	return Ratio{unit: u, moment: m}
}

// RatioFromMoment returns m truncated to u
func RatioFromMoment(u Unit, m Moment) Ratio {
	u.mustBeValid()
	return Ratio{unit: u, moment: u.align(m.normalized())}
}

// RatioFromTime returns t truncated to u
func RatioFromTime(u Unit, t time.Time) Ratio {
	return RatioFromMoment(u, FromTime(t))
}

// RatioFromUnix returns the Unix time sec truncated to u
func RatioFromUnix(u Unit, sec int64) Ratio {
	return RatioFromMoment(u, FromEpoch(sec, 0))
}

// RatioFromDuration returns the moment d after the reference point since,
// truncated to u
func RatioFromDuration(u Unit, d time.Duration, since Since) Ratio {
	return RatioFromMoment(u, Normalize(since.offset(), int64(d)))
}

// RatioNow returns the current time truncated to u
func RatioNow(u Unit) Ratio {
	return RatioFromMoment(u, Now())
}

// MaxRatio returns the ratio holding the largest count of u whose moment
// fits the seconds field
func MaxRatio(u Unit) Ratio {
	u.mustBeValid()
	if u.subSecond() {
		return NewRatio(u, math.MaxInt64)
	}
	return NewRatio(u, math.MaxInt64/u.Period)
}

func (r Ratio) unitOrDefault() Unit {
	if r.unit == (Unit{}) {
		return Nanoseconds
	}
	return r.unit
}

// Unit returns the tick size
func (r Ratio) Unit() Unit {
	return r.unitOrDefault()
}

// Moment returns the aligned moment
func (r Ratio) Moment() Moment {
	return r.moment
}

// In returns the same moment viewed in u, truncated to u
func (r Ratio) In(u Unit) Ratio {
	return RatioFromMoment(u, r.moment)
}

// Count returns the number of ticks since Julian day 0, saturating at
// math.MinInt64 or math.MaxInt64. Nanosecond counts overflow for moments
// after about 292 years past Julian day 0; use CountChecked to detect it.
func (r Ratio) Count() int64 {
	n, ok := r.unitOrDefault().count(r.moment)
	if !ok {
		return saturate(r.moment.jsec)
	}
	return n
}

// CountChecked returns the number of ticks since Julian day 0 or an error
// if it does not fit int64
func (r Ratio) CountChecked() (int64, error) {
	u := r.unitOrDefault()
	n, ok := u.count(r.moment)
	if !ok {
		return 0, jerror.Newf("count of %s since julian day 0 overflows int64", u).
			WithCode(jerror.CodeValueOutOfRange).
			WithOperation("temporal.CountChecked").
			WithDetail("moment", r.moment.String())
	}
	return n, nil
}

// CountSinceEpoch returns the number of ticks since the Unix epoch,
// saturating like Count
func (r Ratio) CountSinceEpoch() int64 {
	sec, ok := subInt64(r.moment.jsec, JulianSecondsBeforeEpoch)
	if !ok {
		return saturate(r.moment.jsec)
	}
	n, ok := r.unitOrDefault().count(Moment{jsec: sec, nsec: r.moment.nsec})
	if !ok {
		return saturate(sec)
	}
	return n
}

// Time returns the moment as a UTC calendar time
func (r Ratio) Time() time.Time {
	return r.moment.Time()
}

// Unix returns the Unix time in seconds, rounded toward negative infinity
func (r Ratio) Unix() int64 {
	return r.moment.SecEpoch()
}

// Duration returns the time elapsed since the reference point, or an error
// if it does not fit time.Duration (about 292 years)
func (r Ratio) Duration(since Since) (time.Duration, error) {
	sec, okSec := subInt64(r.moment.jsec, since.offset())
	ns, okMul := mulInt64(sec, NsPerSecond)
	total, okAdd := addInt64(ns, r.moment.nsec)
	if !okSec || !okMul || !okAdd {
		return 0, jerror.Newf("moment %s is outside the time.Duration range since %s", r.moment, since).
			WithCode(jerror.CodeValueOutOfRange).
			WithOperation("temporal.Duration").
			WithDetail("since", since.String())
	}
	return time.Duration(total), nil
}

// Compare orders ratios by their moments, regardless of unit
func (r Ratio) Compare(other Ratio) int {
	return r.moment.Compare(other.moment)
}

// Equal reports whether both ratios denote the same moment
func (r Ratio) Equal(other Ratio) bool {
	return r.moment.Equal(other.moment)
}

// Add returns r + other in the unit of r. The sum is truncated to that unit.
func (r Ratio) Add(other Ratio) Ratio {
	return RatioFromMoment(r.unitOrDefault(), r.moment.Add(other.moment))
}

// Sub returns r - other in the unit of r, truncated to that unit
func (r Ratio) Sub(other Ratio) Ratio {
	return RatioFromMoment(r.unitOrDefault(), r.moment.Sub(other.moment))
}

// AddCount returns r moved n ticks forward
func (r Ratio) AddCount(n int64) Ratio {
	u := r.unitOrDefault()
	delta, _ := u.moment(n)
	return Ratio{unit: u, moment: r.moment.Add(delta)}
}

// SubCount returns r moved n ticks back
func (r Ratio) SubCount(n int64) Ratio {
	u := r.unitOrDefault()
	delta, _ := u.moment(n)
	return Ratio{unit: u, moment: r.moment.Sub(delta)}
}

// String returns "<count> <unit>"
func (r Ratio) String() string {
	return strconv.FormatInt(r.Count(), 10) + " " + r.unitOrDefault().String()
}

func saturate(sec int64) int64 {
	if sec < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}
