package daterange

import (
	"errors"
	"fmt"
	"time"

	"risecheckout/shared/constant"
	"risecheckout/shared/timezone"
)

type Preset string

const (
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	Preset7Days     Preset = "7days"
	Preset30Days    Preset = "30days"
	PresetMax       Preset = "max"
	PresetCustom    Preset = "custom"
)

const DefaultMaxMonthsBack = 16

var (
	ErrInvalidPreset = errors.New("invalid date range preset")
	ErrInvertedRange = errors.New("date range start is after its end")
)

var Presets = []Preset{PresetToday, PresetYesterday, Preset7Days, Preset30Days, PresetMax, PresetCustom}

// Range is an inclusive interval of whole local days, expressed in UTC.
type Range struct {
	Preset   Preset    `json:"preset"`
	Timezone string    `json:"timezone"`
	Start    time.Time `json:"-"`
	End      time.Time `json:"-"`
	StartISO string    `json:"startISO"`
	EndISO   string    `json:"endISO"`
}

// Days lists the local calendar dates (YYYY-MM-DD) covered by the range.
func (r Range) Days(tz *timezone.Service) []string {
	var days []string

	last := tz.GetDateInTimezone(r.End)

	for cursor := r.Start; !cursor.After(r.End); {
		day := tz.GetDateInTimezone(cursor)
		days = append(days, day)

		if day == last {
			break
		}

		_, end, err := tz.LocalDayBounds(cursor)
		if err != nil {
			break
		}

		cursor = end.Add(time.Millisecond)
	}

	return days
}

type Option func(*Service)

// WithReferenceDate pins "today" to the local day containing t.
func WithReferenceDate(t time.Time) Option {
	return func(s *Service) {
		s.reference = t
	}
}

func WithMaxMonthsBack(months int) Option {
	return func(s *Service) {
		if months > 0 {
			s.maxMonthsBack = months
		}
	}
}

// Service resolves presets such as "last 7 days" into UTC bounds. Immutable.
type Service struct {
	tz            *timezone.Service
	reference     time.Time
	maxMonthsBack int
}

func New(tz *timezone.Service, opts ...Option) *Service {
	svc := &Service{
		tz:            tz,
		maxMonthsBack: DefaultMaxMonthsBack,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

func (s *Service) Timezone() string {
	return s.tz.Timezone()
}

func (s *Service) MaxMonthsBack() int {
	return s.maxMonthsBack
}

// WithTimezone returns a copy resolving days in tz.
func (s *Service) WithTimezone(tz string) (*Service, error) {
	derived, err := s.tz.WithTimezone(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to derive date range service: %w", err)
	}

	clone := *s
	clone.tz = derived

	return &clone, nil
}

// WithReferenceDate returns a copy whose "today" is the local day containing t.
func (s *Service) WithReferenceDate(t time.Time) *Service {
	clone := *s
	clone.reference = t

	return &clone
}

func (s *Service) referenceDay() (year int, month time.Month, day int) {
	ref := s.reference
	if ref.IsZero() {
		ref = s.tz.Now()
	}

	return ref.In(s.tz.Location()).Date()
}

// GetRange resolves a named preset. PresetCustom needs explicit bounds and is
// rejected here; use GetCustomRange.
func (s *Service) GetRange(preset Preset) (Range, error) {
	year, month, day := s.referenceDay()

	switch preset {
	case PresetToday:
		return s.build(preset, year, month, day, year, month, day), nil
	case PresetYesterday:
		return s.build(preset, year, month, day-1, year, month, day-1), nil
	case Preset7Days:
		return s.build(preset, year, month, day-6, year, month, day), nil
	case Preset30Days:
		return s.build(preset, year, month, day-29, year, month, day), nil
	case PresetMax:
		from := time.Date(year, month-time.Month(s.maxMonthsBack), day, 0, 0, 0, 0, time.UTC)

		return s.build(preset, from.Year(), from.Month(), from.Day(), year, month, day), nil
	case PresetCustom:
		return Range{}, fmt.Errorf("%w: custom requires from and to", ErrInvalidPreset)
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidPreset, preset)
	}
}

// GetCustomRange spans from the start of from's local day to the end of to's.
func (s *Service) GetCustomRange(from, to time.Time) (Range, error) {
	if from.After(to) {
		return Range{}, ErrInvertedRange
	}

	fromYear, fromMonth, fromDay := from.In(s.tz.Location()).Date()
	toYear, toMonth, toDay := to.In(s.tz.Location()).Date()

	return s.build(PresetCustom, fromYear, fromMonth, fromDay, toYear, toMonth, toDay), nil
}

// ParseCustomRange accepts bare YYYY-MM-DD dates, read as local calendar days,
// or RFC 3339 instants, read as the local day containing them.
func (s *Service) ParseCustomRange(from, to string) (Range, error) {
	fromYear, fromMonth, fromDay, err := s.parseLocalDay(from)
	if err != nil {
		return Range{}, err
	}

	toYear, toMonth, toDay, err := s.parseLocalDay(to)
	if err != nil {
		return Range{}, err
	}

	first := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	last := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)

	if first.After(last) {
		return Range{}, ErrInvertedRange
	}

	return s.build(PresetCustom, fromYear, fromMonth, fromDay, toYear, toMonth, toDay), nil
}

func (s *Service) parseLocalDay(value string) (year int, month time.Month, day int, err error) {
	if date, parseErr := time.Parse(constant.LocalDateFormat, value); parseErr == nil {
		year, month, day = date.Date()

		return year, month, day, nil
	}

	instant, err := timezone.ParseInstant(value)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse range bound: %w", err)
	}

	year, month, day = instant.In(s.tz.Location()).Date()

	return year, month, day, nil
}

func (s *Service) build(preset Preset, fromYear int, fromMonth time.Month, fromDay, toYear int, toMonth time.Month, toDay int) Range {
	// Normalize underflowed days such as "January 0" before resolving bounds.
	from := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	to := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)

	start, _ := s.tz.DayBounds(from.Year(), from.Month(), from.Day())
	_, end := s.tz.DayBounds(to.Year(), to.Month(), to.Day())

	return Range{
		Preset:   preset,
		Timezone: s.tz.Timezone(),
		Start:    start,
		End:      end,
		StartISO: timezone.FormatISO(start),
		EndISO:   timezone.FormatISO(end),
	}
}

func ParsePreset(value string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == value {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPreset, value)
}
