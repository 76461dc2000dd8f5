// Package error provides structured error handling for jtime.
//
// Package: error
// Title: jtime Error Handling
// Description: Structured errors with codes, severities, operation names and
//              key/value details. Errors wrap causes, keep a short stack trace
//              and marshal to JSON for structured logs.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced code set to the time conversion domain
//
// Usage:
//
//	import jerror "github.com/msto63/jtime/foundation/core/error"
//
//	err := jerror.New("nanoseconds out of range").
//		WithCode(jerror.CodeValueOutOfRange).
//		WithOperation("temporal.SetNsec").
//		WithDetail("nsec", n)
//
//	if jerror.HasCode(err, jerror.CodeValueOutOfRange) {
//		// reject input
//	}
package error
