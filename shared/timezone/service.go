package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata" // embedded IANA database

	"risecheckout/config"
	"risecheckout/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	ErrDatePartsUnavailable = errors.New("failed to parse date parts")
	ErrInvalidInstant       = errors.New("invalid instant")
)

const (
	endOfDayHour   = 23
	endOfDayMinute = 59
	endOfDaySecond = 59
	endOfDayNanos  = int(999 * time.Millisecond)
)

// Config identifies a zone and a display locale. Zero fields take the defaults.
type Config struct {
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
}

// DateBoundaries holds the UTC instants of local 00:00:00.000 and
// 23:59:59.999 for one calendar day, formatted for range queries.
type DateBoundaries struct {
	StartOfDay string `json:"startOfDay"`
	EndOfDay   string `json:"endOfDay"`
}

type FormattedDateTime struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Full     string `json:"full"`
	Relative string `json:"relative"`
}

type Option func(*Service)

// WithClock replaces time.Now as the reference for relative times and Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service is safe for concurrent use; derived instances never share state
// with their parent.
type Service struct {
	config   Config
	location *time.Location
	now      func() time.Time

	dateFormatter formatter
	timeFormatter formatter
	fullFormatter formatter
	hourFormatter formatter
}

func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.Timezone == "" {
		cfg.Timezone = constant.DefaultTimezone
	}

	if cfg.Locale == "" {
		cfg.Locale = constant.DefaultLocale
	}

	cfg.Locale = canonicalLocale(cfg.Locale)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	l := resolveLayouts(cfg.Locale)

	svc := &Service{
		config:        cfg,
		location:      location,
		now:           time.Now,
		dateFormatter: newFormatter(l.date, location),
		timeFormatter: newFormatter(l.time, location),
		fullFormatter: newFormatter(l.full, location),
		hourFormatter: newFormatter(l.hour, location),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config, opts ...Option) *Service {
	svc, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}

	return svc
}

// Default returns a fresh service for the business default zone and locale.
func Default() *Service {
	return MustNew(Config{})
}

// NewFromConfig builds the application-wide service. An unknown zone is a
// startup error.
func NewFromConfig(cfg *config.Config) *Service {
	svc, err := New(Config{Timezone: cfg.App.Timezone, Locale: cfg.App.Locale})
	if err != nil {
		log.Fatal().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone. Please use standard timezone names like 'America/Sao_Paulo', 'UTC', 'America/New_York'")
	}

	log.Info().
		Str("timezone", svc.Timezone()).
		Str("locale", svc.Locale()).
		Msg("Application timezone initialized")

	return svc
}

func (s *Service) Timezone() string {
	return s.config.Timezone
}

func (s *Service) Locale() string {
	return s.config.Locale
}

func (s *Service) Config() Config {
	return s.config
}

func (s *Service) Location() *time.Location {
	return s.location
}

// Now is the service clock's current instant in the configured zone.
func (s *Service) Now() time.Time {
	return s.now().In(s.location)
}

// DayBounds returns the first and last millisecond of the given local calendar
// date. Out-of-range days are normalized the way time.Date does.
//
// A date the zone skips entirely (Pacific/Apia on 2011-12-30) has no instants.
// It collapses to the transition instant, so end is never before start.
func (s *Service) DayBounds(year int, month time.Month, day int) (start, end time.Time) {
	startWall := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	endWall := time.Date(year, month, day, endOfDayHour, endOfDayMinute, endOfDaySecond, endOfDayNanos, time.UTC)

	start = s.resolveWallClock(startWall, false)
	end = s.resolveWallClock(endWall, true)

	if end.Before(start) {
		end = start
	}

	return start, end
}

// LocalDayBounds returns the bounds of the local calendar day containing t.
func (s *Service) LocalDayBounds(t time.Time) (start, end time.Time, err error) {
	year, month, day, ok := s.dateFormatter.dateParts(t)
	if !ok {
		return start, end, ErrDatePartsUnavailable
	}

	start, end = s.DayBounds(year, month, day)

	return start, end, nil
}

// GetDateBoundaries finds the local calendar day containing date and returns
// its start and end as UTC ISO strings. DST days span 23 or 25 hours.
func (s *Service) GetDateBoundaries(date time.Time) (DateBoundaries, error) {
	start, end, err := s.LocalDayBounds(date)
	if err != nil {
		return DateBoundaries{}, err
	}

	return DateBoundaries{
		StartOfDay: FormatISO(start),
		EndOfDay:   FormatISO(end),
	}, nil
}

func (s *Service) ToStartOfDay(date time.Time) (string, error) {
	b, err := s.GetDateBoundaries(date)

	return b.StartOfDay, err
}

func (s *Service) ToEndOfDay(date time.Time) (string, error) {
	b, err := s.GetDateBoundaries(date)

	return b.EndOfDay, err
}

// GetHourInTimezone returns the local hour (0-23) of date in the configured
// zone, not the UTC hour.
func (s *Service) GetHourInTimezone(date time.Time) int {
	hour, err := strconv.Atoi(s.hourFormatter.format(date))
	if err != nil {
		return 0
	}

	return hour
}

// GetDateInTimezone returns the local calendar date as YYYY-MM-DD.
func (s *Service) GetDateInTimezone(date time.Time) string {
	year, month, day, ok := s.dateFormatter.dateParts(date)
	if !ok {
		return "0000-01-01"
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func (s *Service) Format(date time.Time) FormattedDateTime {
	return FormattedDateTime{
		Date:     s.dateFormatter.format(date),
		Time:     s.timeFormatter.format(date),
		Full:     s.fullFormatter.format(date),
		Relative: s.RelativeTime(date),
	}
}

func (s *Service) FormatDate(date time.Time) string {
	return s.dateFormatter.format(date)
}

func (s *Service) FormatTime(date time.Time) string {
	return s.timeFormatter.format(date)
}

func (s *Service) FormatFull(date time.Time) string {
	return s.fullFormatter.format(date)
}

func (s *Service) GetHourInTimezoneString(date string) (int, error) {
	t, err := ParseInstant(date)
	if err != nil {
		return 0, err
	}

	return s.GetHourInTimezone(t), nil
}

func (s *Service) GetDateInTimezoneString(date string) (string, error) {
	t, err := ParseInstant(date)
	if err != nil {
		return constant.Empty, err
	}

	return s.GetDateInTimezone(t), nil
}

func (s *Service) FormatString(date string) (FormattedDateTime, error) {
	t, err := ParseInstant(date)
	if err != nil {
		return FormattedDateTime{}, err
	}

	return s.Format(t), nil
}

// WithTimezone returns a new service for tz; s is left untouched.
func (s *Service) WithTimezone(tz string) (*Service, error) {
	return New(Config{Timezone: tz, Locale: s.config.Locale}, WithClock(s.now))
}

// WithLocale returns a new service for locale; s is left untouched.
func (s *Service) WithLocale(locale string) (*Service, error) {
	return New(Config{Timezone: s.config.Timezone, Locale: locale}, WithClock(s.now))
}

// FormatISO renders t in UTC with millisecond precision and a Z suffix.
func FormatISO(t time.Time) string {
	return t.UTC().Format(constant.ISOMillisFormat)
}

// ParseInstant accepts RFC 3339 timestamps with or without fractional seconds,
// and bare YYYY-MM-DD dates, which are read as UTC midnight.
func ParseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(constant.LocalDateFormat, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, value)
}
