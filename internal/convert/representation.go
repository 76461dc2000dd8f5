package convert

import (
	"math"
	"strconv"
	"strings"
	"time"

	jerror "github.com/msto63/jtime/foundation/core/error"
	"github.com/msto63/jtime/foundation/temporal"
	"github.com/msto63/jtime/foundation/utils/timex"
)

// Representation names a textual form of a moment
type Representation string

const (
	// ReprMoment is the moment text form "<jsec>.<nsec>"
	ReprMoment Representation = "moment"
	// ReprUnix is decimal seconds since the Unix epoch, e.g. "-1.25"
	ReprUnix Representation = "unix"
	// ReprUnixMilli is integer milliseconds since the Unix epoch
	ReprUnixMilli Representation = "unix-ms"
	// ReprUnixNano is integer nanoseconds since the Unix epoch
	ReprUnixNano Representation = "unix-ns"
	// ReprJulianDay is a decimal astronomical Julian date, e.g. "2440587.5"
	ReprJulianDay Representation = "julian-day"
	// ReprRFC3339 is a calendar time in any layout timex.Parse accepts
	ReprRFC3339 Representation = "rfc3339"
	// ReprDuration is a duration after the Unix epoch
	ReprDuration Representation = "duration"
	// ReprOffset is a duration after Julian day 0. Used for the second
	// operand of add and sub.
	ReprOffset Representation = "offset"
)

// Representations lists every supported representation
func Representations() []Representation {
	return []Representation{
		ReprMoment, ReprUnix, ReprUnixMilli, ReprUnixNano,
		ReprJulianDay, ReprRFC3339, ReprDuration, ReprOffset,
	}
}

// ParseRepresentation parses a representation name
func ParseRepresentation(name string) (Representation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range Representations() {
		if string(r) == name {
			return r, nil
		}
	}

	switch name {
	case "", "jsec", "julian":
		return ReprMoment, nil
	case "epoch", "unix-s":
		return ReprUnix, nil
	case "jd":
		return ReprJulianDay, nil
	case "time", "iso8601":
		return ReprRFC3339, nil
	}

	return "", jerror.Newf("unknown representation %q", name).
		WithCode(jerror.CodeInvalidInput).
		WithOperation("convert.ParseRepresentation").
		WithDetail("representation", name)
}

// Parse reads value in representation repr
func Parse(value string, repr Representation) (temporal.Moment, error) {
	value = strings.TrimSpace(value)

	m, err := parse(value, repr)
	if err != nil {
		return temporal.Moment{}, jerror.Wrap(err, "cannot parse "+string(repr)+" value").
			WithCode(codeOf(err)).
			WithOperation("convert.Parse").
			WithDetail("value", value).
			WithDetail("representation", string(repr))
	}
	return m, nil
}

func codeOf(err error) jerror.Code {
	if code := jerror.GetCode(err); code != jerror.CodeUnknown {
		return code
	}
	return jerror.CodeInvalidFormat
}

func parse(value string, repr Representation) (temporal.Moment, error) {
	switch repr {
	case ReprMoment:
		return temporal.ParseMoment(value)

	case ReprUnix:
		neg, sec, nsec, err := parseDecimal(value)
		if err != nil {
			return temporal.Moment{}, err
		}
		return signed(neg, temporal.Normalize(sec, nsec)).Add(epoch()), nil

	case ReprUnixMilli:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return temporal.Moment{}, err
		}
		return temporal.FromEpoch(n/1e3, (n%1e3)*1e6), nil

	case ReprUnixNano:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return temporal.Moment{}, err
		}
		return temporal.FromEpoch(0, n), nil

	case ReprJulianDay:
		neg, days, fraction, err := parseDecimal(value)
		if err != nil {
			return temporal.Moment{}, err
		}
		if days > math.MaxInt64/temporal.SecondsPerDay-1 {
			return temporal.Moment{}, jerror.New("julian day out of range").
				WithCode(jerror.CodeValueOutOfRange)
		}
		// A fraction in 1e-9 days times 86400 is exact in nanoseconds.
		span := temporal.Normalize(days*temporal.SecondsPerDay, fraction*temporal.SecondsPerDay)
		return signed(neg, span).Add(temporal.New(temporal.SecondsPerDay/2, 0)), nil

	case ReprRFC3339:
		t, err := timex.Parse(value)
		if err != nil {
			return temporal.Moment{}, err
		}
		return temporal.FromTime(t), nil

	case ReprDuration, ReprOffset:
		d, err := timex.ParseDuration(value)
		if err != nil {
			return temporal.Moment{}, err
		}
		span := spanOf(d)
		if repr == ReprDuration {
			return span.Add(epoch()), nil
		}
		return span, nil

	default:
		return temporal.Moment{}, jerror.Newf("unknown representation %q", string(repr)).
			WithCode(jerror.CodeInvalidInput)
	}
}

// parseDecimal splits an optionally signed decimal number into its
// magnitude's whole part and its fraction in units of 1e-9. Fraction
// digits past the ninth are truncated.
func parseDecimal(value string) (neg bool, whole, frac int64, err error) {
	switch {
	case strings.HasPrefix(value, "-"):
		neg, value = true, value[1:]
	case strings.HasPrefix(value, "+"):
		value = value[1:]
	}

	wholePart, fracPart, _ := strings.Cut(value, ".")
	if wholePart == "" && fracPart == "" {
		return false, 0, 0, jerror.New("missing digits").WithCode(jerror.CodeInvalidFormat)
	}

	if wholePart != "" {
		if wholePart[0] < '0' || wholePart[0] > '9' {
			return false, 0, 0, jerror.Newf("invalid number %q", value).WithCode(jerror.CodeInvalidFormat)
		}
		whole, err = strconv.ParseInt(wholePart, 10, 64)
		if err != nil {
			return false, 0, 0, err
		}
	}

	for i := 0; i < 9; i++ {
		frac *= 10
		if i < len(fracPart) {
			c := fracPart[i]
			if c < '0' || c > '9' {
				return false, 0, 0, jerror.Newf("invalid fraction %q", fracPart).WithCode(jerror.CodeInvalidFormat)
			}
			frac += int64(c - '0')
		}
	}
	for _, c := range fracPart[min(len(fracPart), 9):] {
		if c < '0' || c > '9' {
			return false, 0, 0, jerror.Newf("invalid fraction %q", fracPart).WithCode(jerror.CodeInvalidFormat)
		}
	}

	return neg, whole, frac, nil
}

func signed(neg bool, m temporal.Moment) temporal.Moment {
	if neg {
		return temporal.Zero().Sub(m)
	}
	return m
}

func spanOf(d time.Duration) temporal.Moment {
	return temporal.Normalize(0, int64(d))
}

func epoch() temporal.Moment {
	return temporal.New(temporal.JulianSecondsBeforeEpoch, 0)
}
