// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories, exit codes and the
//              severity mapping.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial tests for the reduced code set

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidUnit,
		CodeConfigError, CodeInvalidConfig,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("%s.IsValid() = false", c)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidInput, "input", 2},
		{CodeInvalidFormat, "input", 2},
		{CodeValueOutOfRange, "input", 2},
		{CodeInvalidUnit, "input", 2},
		{CodeConfigError, "configuration", 3},
		{CodeInvalidConfig, "configuration", 3},
		{CodeInternal, "generic", 1},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
		if tt.s.Level() != int(tt.s) {
			t.Errorf("Level() = %d", tt.s.Level())
		}
	}
}
