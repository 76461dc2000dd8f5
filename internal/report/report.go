// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     report
// Description: Renders operation results as styled text, JSON or YAML
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package report turns the moments produced by a jtime operation into a
// printable document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	jerror "github.com/msto63/jtime/foundation/core/error"
	"github.com/msto63/jtime/foundation/temporal"
	"github.com/msto63/jtime/foundation/utils/timex"
	"github.com/msto63/jtime/internal/tui"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", jerror.Newf("unknown output format %q", name).
			WithCode(jerror.CodeInvalidInput).
			WithOperation("report.ParseFormat").
			WithDetail("format", name)
	}
}

// Entry describes one moment in every representation jtime knows
type Entry struct {
	Label      string          `json:"label,omitempty" yaml:"label,omitempty"`
	Moment     temporal.Moment `json:"moment" yaml:"moment"`
	JSec       int64           `json:"jsec" yaml:"jsec"`
	Nsec       int64           `json:"nsec" yaml:"nsec"`
	Epoch      string          `json:"epoch" yaml:"epoch"`
	Unit       string          `json:"unit" yaml:"unit"`
	Count      *int64          `json:"count,omitempty" yaml:"count,omitempty"`
	SinceEpoch int64           `json:"since_epoch" yaml:"since_epoch"`
	UTC        string          `json:"utc" yaml:"utc"`
	JulianDay  int64           `json:"julian_day" yaml:"julian_day"`
	JulianDate float64         `json:"julian_date" yaml:"julian_date"`
}

// NewEntry builds the entry for m counted in unit u. Count is left empty
// when the tick count does not fit in an int64.
func NewEntry(label string, m temporal.Moment, u temporal.Unit) Entry {
	m = temporal.Normalize(m.JSec(), m.Nsec())
	r := temporal.RatioFromMoment(u, m)

	e := Entry{
		Label:      label,
		Moment:     m,
		JSec:       m.JSec(),
		Nsec:       m.Nsec(),
		Epoch:      timex.FormatMoment(m, "epoch"),
		Unit:       u.String(),
		SinceEpoch: r.CountSinceEpoch(),
		UTC:        timex.FormatMoment(m, "rfc3339nano"),
		JulianDay:  temporal.RatioFromMoment(temporal.Days, m).Count(),
		JulianDate: timex.JulianDate(m),
	}
	if n, err := r.CountChecked(); err == nil {
		e.Count = &n
	}
	return e
}

// Report is the result of one jtime operation
type Report struct {
	Operation  string  `json:"operation" yaml:"operation"`
	Result     *Entry  `json:"result,omitempty" yaml:"result,omitempty"`
	Operands   []Entry `json:"operands,omitempty" yaml:"operands,omitempty"`
	Relation   string  `json:"relation,omitempty" yaml:"relation,omitempty"`
	Difference string  `json:"difference,omitempty" yaml:"difference,omitempty"`
}

// Write renders r to w in the given format
func Write(w io.Writer, r Report, format Format) error {
	if format == FormatText || format == "" {
		if _, err := io.WriteString(w, renderText(r)+"\n"); err != nil {
			return writeError(err, format)
		}
		return nil
	}
	return Encode(w, r, format)
}

// Encode writes any value as indented JSON or YAML
func Encode(w io.Writer, v interface{}, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	default:
		return jerror.Newf("format %q cannot encode values", string(format)).
			WithCode(jerror.CodeInvalidInput).
			WithOperation("report.Encode")
	}

	if err != nil {
		return writeError(err, format)
	}
	return nil
}

func writeError(err error, format Format) error {
	return jerror.Wrap(err, "failed to write report").
		WithCode(jerror.CodeInternal).
		WithOperation("report.Write").
		WithDetail("format", string(format))
}

func renderText(r Report) string {
	blocks := []string{tui.RenderTitle(r.Operation)}

	for _, op := range r.Operands {
		blocks = append(blocks, renderEntry(op))
	}
	if r.Result != nil {
		blocks = append(blocks, renderEntry(*r.Result))
	}

	var summary [][2]string
	if r.Relation != "" {
		summary = append(summary, [2]string{"relation", r.Relation})
	}
	if r.Difference != "" {
		summary = append(summary, [2]string{"difference", r.Difference})
	}
	if len(summary) > 0 {
		blocks = append(blocks, tui.BoxStyle.Render(tui.RenderRows(summary)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderEntry(e Entry) string {
	count := "overflow"
	if e.Count != nil {
		count = strconv.FormatInt(*e.Count, 10)
	}

	rows := [][2]string{
		{"moment", e.Moment.String()},
		{"epoch", e.Epoch},
		{"count", fmt.Sprintf("%s %s", count, e.Unit)},
		{"since epoch", fmt.Sprintf("%d %s", e.SinceEpoch, e.Unit)},
		{"utc", e.UTC},
		{"julian day", strconv.FormatInt(e.JulianDay, 10)},
		{"julian date", strconv.FormatFloat(e.JulianDate, 'f', 6, 64)},
	}

	body := tui.RenderRows(rows)
	if e.Label != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, tui.SubtitleStyle.Render(e.Label), body)
	}
	return tui.BoxStyle.Render(body)
}
