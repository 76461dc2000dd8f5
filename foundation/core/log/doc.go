// Package log provides structured logging for jtime.
//
// Package: log
// Title: jtime Structured Logging
// Description: Leveled logger with persistent context fields, JSON, text and
//              logfmt output, integration with structured errors and a small
//              operation timer.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Removed async buffering and the audit level
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "jtime",
//	})
//
//	logger.Info("converted", log.Fields{"jsec": m.JSec(), "nsec": m.Nsec()})
//
//	timer := logger.StartTimer("convert")
//	defer timer.Stop()
package log
