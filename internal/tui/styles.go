// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     tui
// Description: Shared lipgloss palette and styles for reports and the clock
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// Key/value rows
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	UnitStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderRows renders label/value pairs as aligned rows. Labels are padded
// to the widest label.
func RenderRows(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}

	label := LabelStyle.Width(width + 2)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), ValueStyle.Render(row[1])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
