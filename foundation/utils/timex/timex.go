// File: timex.go
// Title: Time Text Utilities
// Description: Implements parsing of instants and durations and formatting
//              of times, durations and Julian moments.
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function
// - 2026-10-19 v0.2.0: Dropped business day, range and timezone helpers;
//                      signed durations; FormatMoment
// - 2026-10-19 v0.2.1: Signed decimal epoch form; "m" is minutes in ParseDuration

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/jtime/foundation/temporal"
)

// Layouts accepted by Parse and named by Format
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Nano     = "2006-01-02T15:04:05.999999999Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Plain formats
	DateTime     = "2006-01-02 15:04:05"
	DateTimeNano = "2006-01-02 15:04:05.999999999"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

var parseLayouts = []string{
	time.RFC3339Nano,
	ISO8601DateTime,
	DateTimeNano,
	ISO8601Date,
	CompactDateTime,
	CompactDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
}

// ===============================
// Parsing Functions
// ===============================

// Parse attempts to parse a time string using common formats. Values
// without a zone are UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time string: %s", value)
}

// durationUnits maps unit words to their length. Plural words are looked
// up without the trailing "s" after an exact match fails, so "ms" stays
// milliseconds and "m" is minutes like in Go syntax.
var durationUnits = map[string]time.Duration{
	"ns": time.Nanosecond, "nsec": time.Nanosecond, "nanosecond": time.Nanosecond,
	"us": time.Microsecond, "µs": time.Microsecond, "usec": time.Microsecond, "microsecond": time.Microsecond,
	"ms": time.Millisecond, "msec": time.Millisecond, "millisecond": time.Millisecond,
	"s": time.Second, "sec": time.Second, "second": time.Second,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hour": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
}

// ParseDuration parses Go duration syntax ("1h30m", "-250ms") or a number
// followed by a unit name ("2 days", "1.5 hours", "-3 weeks"). Months are
// 30 days and years 365 days.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil {
			base, ok := durationUnits[parts[1]]
			if !ok {
				base, ok = durationUnits[strings.TrimSuffix(parts[1], "s")]
			}

			if ok {
				total := num * float64(base)
				if total >= float64(1<<63) || total < -float64(1<<63) {
					return 0, fmt.Errorf("duration out of range: %s", value)
				}
				return time.Duration(total), nil
			}
		}
	}

	return 0, fmt.Errorf("unable to parse duration string: %s", value)
}

// ===============================
// Formatting Functions
// ===============================

// Format formats a time using a layout name, or t.Format(name) for any
// other value
func Format(t time.Time, name string) string {
	switch name {
	case "iso8601", "rfc3339":
		return t.Format(ISO8601)
	case "iso8601-nano", "rfc3339nano":
		return t.Format(ISO8601Nano)
	case "iso8601-date", "date":
		return t.Format(ISO8601Date)
	case "datetime":
		return t.Format(DateTime)
	case "compact":
		return t.Format(CompactDateTime)
	case "compact-date":
		return t.Format(CompactDate)
	case "log":
		return t.Format(LogTimestamp)
	default:
		return t.Format(name)
	}
}

// FormatMoment formats a Julian moment. Besides the Format names it accepts
// "julian" (seconds since Julian day 0), "epoch" (seconds since 1970) and
// "jd" (astronomical Julian date, days since noon of Julian day 0). Other
// names format the moment's UTC time.
func FormatMoment(m temporal.Moment, name string) string {
	m = temporal.Normalize(m.JSec(), m.Nsec())

	switch name {
	case "julian":
		return m.String()
	case "epoch":
		return formatDecimal(m.SecEpoch(), m.Nsec())
	case "jd":
		return strconv.FormatFloat(JulianDate(m), 'f', 6, 64)
	default:
		return Format(m.Time(), name)
	}
}

// formatDecimal prints sec + nsec/1e9 as a signed decimal. sec is floored,
// so a negative value with a remainder borrows one second back.
func formatDecimal(sec, nsec int64) string {
	if sec < 0 && nsec != 0 {
		return fmt.Sprintf("-%d.%09d", -(sec + 1), temporal.NsPerSecond-nsec)
	}
	return fmt.Sprintf("%d.%09d", sec, nsec)
}

// JulianDate returns the astronomical Julian date of m. Julian dates start
// at noon, half a day after the moment's zero.
func JulianDate(m temporal.Moment) float64 {
	days, rem := m.JSec()/temporal.SecondsPerDay, m.JSec()%temporal.SecondsPerDay
	frac := (float64(rem) + float64(m.Nsec())/float64(temporal.NsPerSecond)) / float64(temporal.SecondsPerDay)
	return float64(days) + frac - 0.5
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}

	if d < 0 {
		return "-" + FormatDuration(-d)
	}

	var parts []string

	// Years (approximate)
	if years := int(d.Hours() / (24 * 365)); years > 0 {
		parts = append(parts, fmt.Sprintf("%d year%s", years, pluralSuffix(years)))
		d -= time.Duration(years) * 365 * 24 * time.Hour
	}

	if days := int(d.Hours() / 24); days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, pluralSuffix(days)))
		d -= time.Duration(days) * 24 * time.Hour
	}

	if hours := int(d.Hours()); hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, pluralSuffix(hours)))
		d -= time.Duration(hours) * time.Hour
	}

	if minutes := int(d.Minutes()); minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, pluralSuffix(minutes)))
		d -= time.Duration(minutes) * time.Minute
	}

	if seconds := int(d.Seconds()); seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d second%s", seconds, pluralSuffix(seconds)))
	}

	// Milliseconds (if no larger units)
	if len(parts) == 0 && d > 0 {
		ms := d.Nanoseconds() / 1000000
		if ms > 0 {
			parts = append(parts, fmt.Sprintf("%d millisecond%s", ms, pluralSuffix(int(ms))))
		}
	}

	switch len(parts) {
	case 0:
		return "0 seconds"
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}

	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

// FormatDurationCompact formats a duration in compact format (1d 2h 30m 45s)
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	if d < 0 {
		return "-" + FormatDurationCompact(-d)
	}

	var parts []string

	if days := int(d.Hours() / 24); days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		d -= time.Duration(days) * 24 * time.Hour
	}

	if hours := int(d.Hours()); hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		d -= time.Duration(hours) * time.Hour
	} else if len(parts) > 0 && d > 0 {
		parts = append(parts, "0h")
	}

	// Always show minutes and seconds below a larger unit
	if minutes := int(d.Minutes()); minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		d -= time.Duration(minutes) * time.Minute
	} else if len(parts) > 0 {
		parts = append(parts, "0m")
	}

	if seconds := int(d.Seconds()); seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
		d -= time.Duration(seconds) * time.Second
	} else if len(parts) > 0 {
		parts = append(parts, "0s")
	}

	if ms := d.Nanoseconds() / 1000000; ms > 0 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
		d -= time.Duration(ms) * time.Millisecond
	}

	if micros := d.Nanoseconds() / 1000; micros > 0 {
		parts = append(parts, fmt.Sprintf("%dμs", micros))
	}

	if len(parts) == 0 {
		return "0s"
	}

	return strings.Join(parts, " ")
}

// pluralSuffix returns "s" if n != 1, empty string otherwise
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
