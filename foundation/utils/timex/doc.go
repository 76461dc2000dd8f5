// Package timex implements text parsing and formatting of instants,
// durations and Julian moments for jtime.
//
// Package: timex
// Title: Time Text Utilities
// Description: Parses instants written in the common layouts (RFC 3339,
//              ISO 8601, plain date/time, compact) and durations written
//              in Go syntax or as "<n> <unit>". Formats times by layout
//              name and durations in long or compact form. FormatMoment
//              adds the Julian representations of temporal.Moment.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Reduced to parsing and formatting; signed durations;
//                      FormatMoment with julian, jd and epoch names
//
// Parsing:
//
//	t, err := timex.Parse("2024-02-29T12:00:00Z")
//	d, err := timex.ParseDuration("2 days")   // 48h0m0s
//	d, err = timex.ParseDuration("-90s")      // negative durations are allowed
//
// Formatting:
//
//	timex.Format(t, "iso8601")                 // 2024-02-29T12:00:00Z
//	timex.FormatDuration(90 * time.Second)     // 1 minute and 30 seconds
//	timex.FormatDurationCompact(90*time.Second) // 1m 30s
//	timex.FormatMoment(m, "julian")            // 210866803200.000000000
//	timex.FormatMoment(m, "jd")                // 2440587.500000
package timex
