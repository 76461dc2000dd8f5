// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used across jtime for classifying failures of
//              parsing, range checks, configuration and the CLI.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to the codes used by the time conversion domain

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Value and format codes
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidUnit     Code = "INVALID_UNIT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidUnit,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidUnit:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI.
// Input problems return 2 like flag parse errors do.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
