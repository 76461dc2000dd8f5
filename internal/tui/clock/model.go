// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     clock
// Description: Live Julian clock as a Bubbletea model
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package clock shows the current moment as Julian seconds, Unix seconds,
// a unit count and UTC time, refreshed on a fixed interval.
package clock

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/jtime/foundation/temporal"
	"github.com/msto63/jtime/foundation/utils/timex"
	"github.com/msto63/jtime/internal/tui"
)

// DefaultInterval is the refresh interval used when none is configured
const DefaultInterval = 100 * time.Millisecond

// Config holds clock settings
type Config struct {
	Interval time.Duration
	Unit     temporal.Unit

	// Now overrides the clock source, for tests
	Now func() temporal.Moment
}

// Model is the Bubbletea model for the clock
type Model struct {
	interval time.Duration
	units    []temporal.Unit
	unitIdx  int
	now      func() temporal.Moment
	moment   temporal.Moment

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// New creates a clock model. The configured unit selects the starting
// position in the unit cycle.
func New(cfg Config) Model {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	now := cfg.Now
	if now == nil {
		now = temporal.Now
	}

	unit := cfg.Unit
	if unit == (temporal.Unit{}) {
		unit = temporal.Seconds
	}
	units := temporal.Units()
	idx := indexOf(units, unit)
	if idx < 0 {
		units = append(units, unit)
		idx = len(units) - 1
	}

	return Model{
		interval: interval,
		units:    units,
		unitIdx:  idx,
		now:      now,
		moment:   now(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func indexOf(units []temporal.Unit, u temporal.Unit) int {
	for i, v := range units {
		if v == u {
			return i
		}
	}
	return -1
}

// Init starts the refresh ticker
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles ticks, key presses and resizes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.moment = m.now()
		return m, tick(m.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextUnit):
			m.unitIdx = (m.unitIdx + 1) % len(m.units)
		case key.Matches(msg, m.keys.PrevUnit):
			m.unitIdx = (m.unitIdx + len(m.units) - 1) % len(m.units)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// Unit returns the unit currently displayed
func (m Model) Unit() temporal.Unit {
	return m.units[m.unitIdx]
}

// Moment returns the moment currently displayed
func (m Model) Moment() temporal.Moment {
	return m.moment
}

// View renders the clock
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	u := m.Unit()
	r := temporal.RatioFromMoment(u, m.moment)

	count := "overflow"
	if n, err := r.CountChecked(); err == nil {
		count = strconv.FormatInt(n, 10)
	}

	rows := tui.RenderRows([][2]string{
		{"julian", m.moment.String()},
		{"epoch", timex.FormatMoment(m.moment, "epoch")},
		{"count", count + " " + tui.UnitStyle.Render(u.String())},
		{"since epoch", fmt.Sprintf("%d %s", r.CountSinceEpoch(), tui.UnitStyle.Render(u.String()))},
		{"utc", timex.FormatMoment(m.moment, "rfc3339nano")},
		{"julian date", timex.FormatMoment(m.moment, "jd")},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		tui.RenderTitle("jtime clock"),
		tui.FocusedBoxStyle.Render(rows),
		tui.RenderHelp(m.help.View(m.keys)),
	)
}

// Run starts the clock and blocks until it quits or ctx is done
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
