// File: unit.go
// Title: Time Units
// Description: Implements Unit, a tick size given as a number of ticks per
//              period of whole seconds, with parsing and the predefined
//              units from nanoseconds to days.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package temporal

import (
	"fmt"
	"strings"
	"time"

	jerror "github.com/msto63/jtime/foundation/core/error"
)

// Unit describes Ticks ticks spanning Period seconds.
//
// A valid unit is either at most a second long (Period 1, Ticks dividing
// NsPerSecond) or a whole number of seconds (Ticks 1).
type Unit struct {
	Ticks  int64
	Period int64
}

// Predefined units
var (
	Nanoseconds  = Unit{Ticks: NsPerSecond, Period: 1}
	Microseconds = Unit{Ticks: MicrosecondsPerSecond, Period: 1}
	Milliseconds = Unit{Ticks: MillisecondsPerSecond, Period: 1}
	Seconds      = Unit{Ticks: 1, Period: SecondsPerSecond}
	Minutes      = Unit{Ticks: 1, Period: SecondsPerMinute}
	Hours        = Unit{Ticks: 1, Period: SecondsPerHour}
	Days         = Unit{Ticks: 1, Period: SecondsPerDay}
)

// Units lists the predefined units from finest to coarsest
func Units() []Unit {
	return []Unit{Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours, Days}
}

var unitNames = map[string]Unit{
	"ns": Nanoseconds, "nsec": Nanoseconds, "nanosecond": Nanoseconds, "nanoseconds": Nanoseconds,
	"us": Microseconds, "µs": Microseconds, "usec": Microseconds, "microsecond": Microseconds, "microseconds": Microseconds,
	"ms": Milliseconds, "msec": Milliseconds, "millisecond": Milliseconds, "milliseconds": Milliseconds,
	"s": Seconds, "sec": Seconds, "second": Seconds, "seconds": Seconds,
	"min": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
}

// ParseUnit parses a unit name such as "ms", "min" or "days"
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return Unit{}, jerror.Newf("unknown time unit %q", name).
		WithCode(jerror.CodeInvalidUnit).
		WithOperation("temporal.ParseUnit").
		WithDetail("unit", name)
}

// Valid reports whether u is a supported unit
func (u Unit) Valid() bool {
	switch {
	case u.Period == 1:
		return u.Ticks > 0 && NsPerSecond%u.Ticks == 0
	case u.Ticks == 1:
		return u.Period > 1
	default:
		return false
	}
}

// String returns the short name of predefined units and "ticks/period s"
// for others
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "min"
	case Hours:
		return "h"
	case Days:
		return "d"
	}
	return fmt.Sprintf("%d/%ds", u.Ticks, u.Period)
}

// Duration returns the length of one tick
func (u Unit) Duration() time.Duration {
	if u.Period == 1 {
		return time.Duration(u.nsPerTick())
	}
	return time.Duration(u.Period) * time.Second
}

func (u Unit) subSecond() bool {
	return u.Period == 1
}

func (u Unit) nsPerTick() int64 {
	return NsPerSecond / u.Ticks
}

func (u Unit) mustBeValid() {
	if !u.Valid() {
		panic(fmt.Sprintf("temporal: invalid unit %d/%ds", u.Ticks, u.Period))
	}
}

// align truncates a normalized moment toward negative infinity to a whole
// number of ticks
func (u Unit) align(m Moment) Moment {
	if u.subSecond() {
		return Moment{jsec: m.jsec, nsec: m.nsec - m.nsec%u.nsPerTick()}
	}
	q, _ := floorDivMod(m.jsec, u.Period)
	return Moment{jsec: q * u.Period}
}

// count returns the number of whole ticks in a normalized moment,
// reporting false on int64 overflow
func (u Unit) count(m Moment) (int64, bool) {
	if u.subSecond() {
		whole, ok := mulInt64(m.jsec, u.Ticks)
		if !ok {
			return 0, false
		}
		return addInt64(whole, m.nsec/u.nsPerTick())
	}
	q, _ := floorDivMod(m.jsec, u.Period)
	return q, true
}

// moment returns the moment spanned by n ticks, reporting false when the
// seconds overflow int64
func (u Unit) moment(n int64) (Moment, bool) {
	if u.subSecond() {
		sec, rem := floorDivMod(n, u.Ticks)
		return Moment{jsec: sec, nsec: rem * u.nsPerTick()}, true
	}
	sec, ok := mulInt64(n, u.Period)
	return Moment{jsec: sec}, ok
}
