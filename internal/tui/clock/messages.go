// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     clock
// Description: Message types and commands for the clock event loop
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent on every clock refresh
type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
