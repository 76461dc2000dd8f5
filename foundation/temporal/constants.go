// File: constants.go
// Title: Ratio Constants
// Description: Fixed conversion factors between time units and the offset
//              between Julian day 0 and the Unix epoch.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package temporal

// Conversion factors
const (
	NsPerMicrosecond      int64 = 1_000
	NsPerSecond           int64 = 1_000_000_000
	MicrosecondsPerSecond int64 = 1_000_000
	MillisecondsPerSecond int64 = 1_000
	SecondsPerSecond      int64 = 1
	SecondsPerMinute      int64 = 60
	SecondsPerHour        int64 = 3_600
	SecondsPerDay         int64 = 86_400

	// MaxNanosecond is the largest normalized nanosecond remainder
	MaxNanosecond int64 = NsPerSecond - 1
)

// Epoch offsets
const (
	// JulianDayOfEpoch is the Julian day number of 1970-01-01
	JulianDayOfEpoch int64 = 2_440_588

	// JulianSecondsBeforeEpoch is the number of seconds between Julian day 0
	// and the Unix epoch
	JulianSecondsBeforeEpoch = JulianDayOfEpoch * SecondsPerDay
)
