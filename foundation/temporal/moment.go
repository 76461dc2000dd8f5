// File: moment.go
// Title: Julian Moment
// Description: Implements Moment, an instant stored as seconds since
//              Julian day 0 plus a normalized nanosecond remainder, with
//              lexicographic ordering and carry/borrow arithmetic.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package temporal

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	jerror "github.com/msto63/jtime/foundation/core/error"
	"github.com/msto63/jtime/foundation/utils/cmpx"
)

// Moment is an instant counted from Julian day 0.
//
// The zero value is the zero instant. Moment is a plain value: copy it
// freely; concurrent mutation of one variable needs external locking.
type Moment struct {
	jsec int64
	nsec int64
}

// New returns the moment (jsec, nsec) verbatim. The caller is responsible for
// passing nsec in [0, MaxNanosecond]; use Normalize otherwise.
func New(jsec, nsec int64) Moment {
	return Moment{jsec: jsec, nsec: nsec}
}

// Zero returns the zero instant
func Zero() Moment {
	return Moment{}
}

// Normalize returns the moment jsec + nsec/1e9 with the nanosecond part
// carried or borrowed into the seconds. Seconds wrap on int64 overflow.
func Normalize(jsec, nsec int64) Moment {
	m, _ := normalize(jsec, nsec)
	return m
}

// FromEpoch returns the moment sec seconds and nsec nanoseconds after
// 1970-01-01T00:00:00Z
func FromEpoch(sec, nsec int64) Moment {
	return Normalize(sec+JulianSecondsBeforeEpoch, nsec)
}

// FromTime converts t to a Moment
func FromTime(t time.Time) Moment {
	return FromEpoch(t.Unix(), int64(t.Nanosecond()))
}

// Now returns the current moment
func Now() Moment {
	return FromTime(time.Now())
}

// JSec returns the seconds since Julian day 0
func (m Moment) JSec() int64 {
	return m.jsec
}

// SecEpoch returns the seconds since the Unix epoch. Instants before 1970
// return negative values.
func (m Moment) SecEpoch() int64 {
	return m.jsec - JulianSecondsBeforeEpoch
}

// Nsec returns the nanosecond remainder
func (m Moment) Nsec() int64 {
	return m.nsec
}

// SetJSec replaces the seconds since Julian day 0
func (m *Moment) SetJSec(sec int64) {
	m.jsec = sec
}

// SetSecEpoch replaces the seconds with sec seconds since the Unix epoch
func (m *Moment) SetSecEpoch(sec int64) {
	m.jsec = sec + JulianSecondsBeforeEpoch
}

// SetNsec replaces the nanosecond remainder. Values outside
// [0, MaxNanosecond] are rejected and leave m unchanged.
func (m *Moment) SetNsec(nsec int64) error {
	if nsec < 0 || nsec > MaxNanosecond {
		return jerror.Newf("nanoseconds %d out of range [0, %d]", nsec, MaxNanosecond).
			WithCode(jerror.CodeValueOutOfRange).
			WithOperation("temporal.SetNsec").
			WithDetail("nsec", nsec)
	}
	m.nsec = nsec
	return nil
}

// Compare orders moments by seconds, then by nanoseconds
func (m Moment) Compare(other Moment) int {
	return cmpx.Lexicographic(cmp.Compare(m.jsec, other.jsec), cmp.Compare(m.nsec, other.nsec))
}

func (m Moment) Equal(other Moment) bool        { return cmpx.Equal(m, other) }
func (m Moment) NotEqual(other Moment) bool     { return cmpx.NotEqual(m, other) }
func (m Moment) Less(other Moment) bool         { return cmpx.Less(m, other) }
func (m Moment) LessEqual(other Moment) bool    { return cmpx.LessEqual(m, other) }
func (m Moment) Greater(other Moment) bool      { return cmpx.Greater(m, other) }
func (m Moment) GreaterEqual(other Moment) bool { return cmpx.GreaterEqual(m, other) }

// Add returns m + other. Nanoseconds carry into seconds; seconds wrap on
// int64 overflow.
func (m Moment) Add(other Moment) Moment {
	r, _ := m.add(other)
	return r
}

// Sub returns m - other. Nanoseconds borrow from seconds; seconds wrap on
// int64 overflow.
func (m Moment) Sub(other Moment) Moment {
	r, _ := m.sub(other)
	return r
}

// AddAssign sets m to m + other
func (m *Moment) AddAssign(other Moment) {
	*m = m.Add(other)
}

// SubAssign sets m to m - other
func (m *Moment) SubAssign(other Moment) {
	*m = m.Sub(other)
}

// AddChecked returns m + other, or an error if the seconds overflow int64
func (m Moment) AddChecked(other Moment) (Moment, error) {
	r, ok := m.add(other)
	if !ok {
		return Moment{}, overflowError("temporal.AddChecked", m, other)
	}
	return r, nil
}

// SubChecked returns m - other, or an error if the seconds overflow int64
func (m Moment) SubChecked(other Moment) (Moment, error) {
	r, ok := m.sub(other)
	if !ok {
		return Moment{}, overflowError("temporal.SubChecked", m, other)
	}
	return r, nil
}

func (m Moment) add(other Moment) (Moment, bool) {
	a, okA := normalize(m.jsec, m.nsec)
	b, okB := normalize(other.jsec, other.nsec)
	sec, okSec := addInt64(a.jsec, b.jsec)
	// a.nsec + b.nsec is below 2e9, at most one carry
	r, okR := normalize(sec, a.nsec+b.nsec)
	return r, okA && okB && okSec && okR
}

func (m Moment) sub(other Moment) (Moment, bool) {
	a, okA := normalize(m.jsec, m.nsec)
	b, okB := normalize(other.jsec, other.nsec)
	sec, okSec := subInt64(a.jsec, b.jsec)
	r, okR := normalize(sec, a.nsec-b.nsec)
	return r, okA && okB && okSec && okR
}

// Time converts m to a UTC time.Time
func (m Moment) Time() time.Time {
	n := m.normalized()
	return time.Unix(n.SecEpoch(), n.nsec).UTC()
}

// IsZero reports whether m is the zero instant
func (m Moment) IsZero() bool {
	return m.jsec == 0 && m.nsec == 0
}

// Valid reports whether the nanosecond remainder is normalized
func (m Moment) Valid() bool {
	return m.nsec >= 0 && m.nsec <= MaxNanosecond
}

// String formats the normalized moment as "<jsec>.<nsec>" with nine
// nanosecond digits. The remainder is never negative, so the moment one
// and a half seconds before Julian day 0 is "-2.500000000".
func (m Moment) String() string {
	n := m.normalized()
	return strconv.FormatInt(n.jsec, 10) + "." + fmt.Sprintf("%09d", n.nsec)
}

// MarshalText implements encoding.TextMarshaler
func (m Moment) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Moment) UnmarshalText(text []byte) error {
	parsed, err := ParseMoment(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoment parses the String form "<jsec>[.<nsec>]". The fraction holds
// one to nine digits and is read as the leading digits of the nanosecond
// remainder, so "12.5" is 12 seconds and 500000000 nanoseconds. The sign
// belongs to the seconds alone; "-0.5" has no such reading and is rejected.
func ParseMoment(value string) (Moment, error) {
	value = strings.TrimSpace(value)
	secPart, fracPart, hasFrac := strings.Cut(value, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return Moment{}, parseError(value, err)
	}

	if !hasFrac {
		return Moment{jsec: sec}, nil
	}

	if len(fracPart) == 0 || len(fracPart) > 9 {
		return Moment{}, parseError(value, nil)
	}
	if sec == 0 && strings.HasPrefix(secPart, "-") {
		return Moment{}, parseError(value, nil)
	}
	var nsec int64
	for i := 0; i < 9; i++ {
		nsec *= 10
		if i < len(fracPart) {
			c := fracPart[i]
			if c < '0' || c > '9' {
				return Moment{}, parseError(value, nil)
			}
			nsec += int64(c - '0')
		}
	}

	return Moment{jsec: sec, nsec: nsec}, nil
}

func (m Moment) normalized() Moment {
	if m.Valid() {
		return m
	}
	return Normalize(m.jsec, m.nsec)
}

func parseError(value string, cause error) error {
	var err *jerror.Error
	if cause != nil {
		err = jerror.Wrap(cause, "invalid moment")
	} else {
		err = jerror.New("invalid moment")
	}
	return err.WithCode(jerror.CodeInvalidFormat).
		WithOperation("temporal.ParseMoment").
		WithDetail("value", value)
}

func overflowError(op string, a, b Moment) error {
	return jerror.New("seconds overflow int64").
		WithCode(jerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("left", a.String()).
		WithDetail("right", b.String())
}

// normalize carries nsec into jsec, reporting false on int64 overflow
func normalize(jsec, nsec int64) (Moment, bool) {
	carry, rem := floorDivMod(nsec, NsPerSecond)
	sec, ok := addInt64(jsec, carry)
	return Moment{jsec: sec, nsec: rem}, ok
}

// floorDivMod divides rounding toward negative infinity, so the remainder
// has the sign of d
func floorDivMod(n, d int64) (q, r int64) {
	q, r = n/d, n%d
	if r != 0 && (r < 0) != (d < 0) {
		q--
		r += d
	}
	return q, r
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	return s, (b >= 0) == (s >= a)
}

func subInt64(a, b int64) (int64, bool) {
	s := a - b
	return s, (b >= 0) == (s <= a)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == -1<<63) || (b == -1 && a == -1<<63) {
		return p, false
	}
	return p, true
}
