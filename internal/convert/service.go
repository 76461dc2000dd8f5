// Package convert parses moments from their textual representations and
// runs the jtime operations on them
package convert

import (
	"time"

	jerror "github.com/msto63/jtime/foundation/core/error"
	"github.com/msto63/jtime/foundation/temporal"
	"github.com/msto63/jtime/internal/report"
	"github.com/msto63/jtime/pkg/core/logging"
)

// Service runs conversions and arithmetic and describes the results
type Service struct {
	logger *logging.Logger
	unit   temporal.Unit
	now    func() temporal.Moment
}

// Config holds service configuration
type Config struct {
	// Unit is the unit counts are reported in. Zero means seconds.
	Unit temporal.Unit

	// Logger receives debug and timing output. Nil means logging.New("convert").
	Logger *logging.Logger

	// Now overrides the clock, for tests
	Now func() temporal.Moment
}

// NewService creates a new conversion service
func NewService(cfg Config) (*Service, error) {
	unit := cfg.Unit
	if unit == (temporal.Unit{}) {
		unit = temporal.Seconds
	}
	if !unit.Valid() {
		return nil, jerror.Newf("invalid unit %s", unit).
			WithCode(jerror.CodeInvalidUnit).
			WithOperation("convert.NewService")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("convert")
	}

	now := cfg.Now
	if now == nil {
		now = temporal.Now
	}

	return &Service{logger: logger, unit: unit, now: now}, nil
}

// Unit returns the unit counts are reported in
func (s *Service) Unit() temporal.Unit {
	return s.unit
}

// Now describes the current moment
func (s *Service) Now() report.Report {
	m := s.now()
	s.logger.Debug("read clock", "moment", m.String())

	result := report.NewEntry("now", m, s.unit)
	return report.Report{Operation: "now", Result: &result}
}

// Convert parses value in representation repr and describes it
func (s *Service) Convert(value string, repr Representation) (report.Report, error) {
	timer := s.logger.StartTimer("convert")
	s.logger.Trace("parsing input", "value", value, "from", string(repr))

	m, err := Parse(value, repr)
	if err != nil {
		timer.StopWithError(err)
		return report.Report{}, err
	}
	timer.Stop()

	s.logger.Debug("converted", "value", value, "from", string(repr), "moment", m.String())
	result := report.NewEntry(string(repr), m, s.unit)
	return report.Report{Operation: "convert", Result: &result}, nil
}

// Add parses a in aRepr and b in bRepr and adds them. With bRepr set to
// ReprOffset, b is a span such as "90m" or "2 days".
func (s *Service) Add(a string, aRepr Representation, b string, bRepr Representation) (report.Report, error) {
	return s.arith("add", a, aRepr, b, bRepr, temporal.Moment.AddChecked)
}

// Sub parses a in aRepr and b in bRepr and subtracts b from a. The result
// of subtracting two instants is a span; its Difference is set when it
// fits a time.Duration.
func (s *Service) Sub(a string, aRepr Representation, b string, bRepr Representation) (report.Report, error) {
	return s.arith("sub", a, aRepr, b, bRepr, temporal.Moment.SubChecked)
}

func (s *Service) arith(op, a string, aRepr Representation, b string, bRepr Representation,
	fn func(temporal.Moment, temporal.Moment) (temporal.Moment, error)) (report.Report, error) {
	timer := s.logger.StartTimer(op)

	left, right, err := parsePair(a, aRepr, b, bRepr)
	if err != nil {
		timer.StopWithError(err)
		return report.Report{}, err
	}

	res, err := fn(left, right)
	if err != nil {
		err = jerror.Wrap(err, op+" overflows").WithOperation("convert." + op)
		timer.StopWithError(err)
		return report.Report{}, err
	}
	timer.Stop()

	result := report.NewEntry("result", res, s.unit)
	r := report.Report{
		Operation: op,
		Operands: []report.Entry{
			report.NewEntry(string(aRepr), left, s.unit),
			report.NewEntry(string(bRepr), right, s.unit),
		},
		Result: &result,
	}
	if op == "sub" && bRepr != ReprOffset {
		if d, ok := spanDuration(res); ok {
			r.Difference = d.String()
		}
	}
	return r, nil
}

// Compare parses both values in repr and reports their order and the
// span from a to b
func (s *Service) Compare(a, b string, repr Representation) (report.Report, error) {
	timer := s.logger.StartTimer("compare")

	left, right, err := parsePair(a, repr, b, repr)
	if err != nil {
		timer.StopWithError(err)
		return report.Report{}, err
	}
	timer.Stop()

	r := report.Report{
		Operation: "compare",
		Operands: []report.Entry{
			report.NewEntry("a", left, s.unit),
			report.NewEntry("b", right, s.unit),
		},
		Relation: relation(left, right),
	}
	if diff, err := right.SubChecked(left); err == nil {
		if d, ok := spanDuration(diff); ok {
			r.Difference = d.String()
		}
	}
	return r, nil
}

func parsePair(a string, aRepr Representation, b string, bRepr Representation) (temporal.Moment, temporal.Moment, error) {
	left, err := Parse(a, aRepr)
	if err != nil {
		return temporal.Moment{}, temporal.Moment{}, jerror.Wrap(err, "operand a")
	}
	right, err := Parse(b, bRepr)
	if err != nil {
		return temporal.Moment{}, temporal.Moment{}, jerror.Wrap(err, "operand b")
	}
	return left, right, nil
}

func relation(a, b temporal.Moment) string {
	switch a.Compare(b) {
	case -1:
		return "a < b"
	case 1:
		return "a > b"
	default:
		return "a == b"
	}
}

// spanDuration reads a moment as a span after Julian day 0
func spanDuration(m temporal.Moment) (time.Duration, bool) {
	d, err := temporal.RatioFromMoment(temporal.Nanoseconds, m).Duration(temporal.SinceJulian)
	if err != nil {
		return 0, false
	}
	return d, true
}
