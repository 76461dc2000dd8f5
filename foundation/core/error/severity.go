// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger picks the log
//              level of an error from its severity.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a rejected input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a code
	SeverityMedium

	// SeverityHigh is a failure of the environment (config, files)
	SeverityHigh

	// SeverityCritical is a broken invariant inside jtime
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidUnit, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
