package daterange

import (
	"testing"
	"time"

	"risecheckout/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339Nano, value)
	require.NoError(t, err)

	return parsed
}

func newService(t *testing.T, tz string, reference string, opts ...Option) *Service {
	t.Helper()

	svc, err := timezone.New(timezone.Config{Timezone: tz})
	require.NoError(t, err)

	return New(svc, append([]Option{WithReferenceDate(mustTime(t, reference))}, opts...)...)
}

func TestGetRange_Presets(t *testing.T) {
	svc := newService(t, "America/Sao_Paulo", "2026-01-15T15:00:00Z")

	tests := []struct {
		preset    Preset
		wantStart string
		wantEnd   string
	}{
		{PresetToday, "2026-01-15T03:00:00.000Z", "2026-01-16T02:59:59.999Z"},
		{PresetYesterday, "2026-01-14T03:00:00.000Z", "2026-01-15T02:59:59.999Z"},
		{Preset7Days, "2026-01-09T03:00:00.000Z", "2026-01-16T02:59:59.999Z"},
		{Preset30Days, "2025-12-17T03:00:00.000Z", "2026-01-16T02:59:59.999Z"},
		{PresetMax, "2024-09-15T03:00:00.000Z", "2026-01-16T02:59:59.999Z"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r, err := svc.GetRange(tt.preset)
			require.NoError(t, err)

			assert.Equal(t, tt.preset, r.Preset)
			assert.Equal(t, "America/Sao_Paulo", r.Timezone)
			assert.Equal(t, tt.wantStart, r.StartISO)
			assert.Equal(t, tt.wantEnd, r.EndISO)
		})
	}
}

func TestGetRange_Spans(t *testing.T) {
	svc := newService(t, "America/Sao_Paulo", "2026-01-15T15:00:00Z")

	today, err := svc.GetRange(PresetToday)
	require.NoError(t, err)
	assert.Equal(t, day-time.Millisecond, today.End.Sub(today.Start))

	week, err := svc.GetRange(Preset7Days)
	require.NoError(t, err)
	assert.Equal(t, 6*day+day-time.Millisecond, week.End.Sub(week.Start))

	month, err := svc.GetRange(Preset30Days)
	require.NoError(t, err)
	assert.Equal(t, 29*day+day-time.Millisecond, month.End.Sub(month.Start))

	yesterday, err := svc.GetRange(PresetYesterday)
	require.NoError(t, err)
	assert.True(t, yesterday.End.Before(today.Start))
	assert.Equal(t, time.Millisecond, today.Start.Sub(yesterday.End))

	maxRange, err := svc.GetRange(PresetMax)
	require.NoError(t, err)
	assert.Equal(t, today.End, maxRange.End)

	start, _, err := svc.tz.LocalDayBounds(maxRange.Start)
	require.NoError(t, err)
	assert.Equal(t, start, maxRange.Start)
}

func TestGetRange_ReferenceNearMidnight(t *testing.T) {
	// 01:00Z on the 16th is still the 15th in Sao Paulo.
	svc := newService(t, "America/Sao_Paulo", "2026-01-16T01:00:00Z")

	r, err := svc.GetRange(PresetToday)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15T03:00:00.000Z", r.StartISO)
	assert.Equal(t, "2026-01-16T02:59:59.999Z", r.EndISO)
}

func TestGetRange_AcrossDST(t *testing.T) {
	svc := newService(t, "America/New_York", "2026-03-10T15:00:00Z")

	r, err := svc.GetRange(Preset7Days)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-04T05:00:00.000Z", r.StartISO)
	assert.Equal(t, "2026-03-11T03:59:59.999Z", r.EndISO)
	assert.Equal(t, 7*day-time.Hour-time.Millisecond, r.End.Sub(r.Start))
}

func TestGetRange_MaxMonthsBack(t *testing.T) {
	svc := newService(t, "UTC", "2026-01-15T15:00:00Z", WithMaxMonthsBack(3))
	assert.Equal(t, 3, svc.MaxMonthsBack())

	r, err := svc.GetRange(PresetMax)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15T00:00:00.000Z", r.StartISO)

	ignored := newService(t, "UTC", "2026-01-15T15:00:00Z", WithMaxMonthsBack(0))
	assert.Equal(t, DefaultMaxMonthsBack, ignored.MaxMonthsBack())
}

func TestGetRange_InvalidPreset(t *testing.T) {
	svc := newService(t, "UTC", "2026-01-15T15:00:00Z")

	_, err := svc.GetRange("fortnight")
	assert.ErrorIs(t, err, ErrInvalidPreset)

	_, err = svc.GetRange(PresetCustom)
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestGetCustomRange(t *testing.T) {
	svc := newService(t, "America/Sao_Paulo", "2026-01-15T15:00:00Z")

	r, err := svc.GetCustomRange(mustTime(t, "2026-01-01T12:00:00Z"), mustTime(t, "2026-01-03T12:00:00Z"))
	require.NoError(t, err)

	assert.Equal(t, PresetCustom, r.Preset)
	assert.Equal(t, "2026-01-01T03:00:00.000Z", r.StartISO)
	assert.Equal(t, "2026-01-04T02:59:59.999Z", r.EndISO)
	assert.Equal(t, []string{"2026-01-01", "2026-01-02", "2026-01-03"}, r.Days(svc.tz))

	_, err = svc.GetCustomRange(mustTime(t, "2026-01-03T12:00:00Z"), mustTime(t, "2026-01-01T12:00:00Z"))
	assert.ErrorIs(t, err, ErrInvertedRange)
}

func TestParseCustomRange(t *testing.T) {
	svc := newService(t, "America/Sao_Paulo", "2026-01-15T15:00:00Z")

	r, err := svc.ParseCustomRange("2026-01-01", "2026-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T03:00:00.000Z", r.StartISO)
	assert.Equal(t, "2026-01-04T02:59:59.999Z", r.EndISO)

	// 01:00Z on the 2nd is still the 1st locally.
	r, err = svc.ParseCustomRange("2026-01-02T01:00:00Z", "2026-01-02T01:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T03:00:00.000Z", r.StartISO)
	assert.Equal(t, "2026-01-02T02:59:59.999Z", r.EndISO)

	_, err = svc.ParseCustomRange("2026-01-03", "2026-01-01")
	assert.ErrorIs(t, err, ErrInvertedRange)

	_, err = svc.ParseCustomRange("yesterday", "2026-01-01")
	assert.ErrorIs(t, err, timezone.ErrInvalidInstant)
}

func TestRange_DaysAcrossDST(t *testing.T) {
	svc := newService(t, "America/New_York", "2026-03-10T15:00:00Z")

	r, err := svc.GetRange(Preset7Days)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07",
		"2026-03-08", "2026-03-09", "2026-03-10",
	}, r.Days(svc.tz))
}

func TestWithTimezoneAndReference(t *testing.T) {
	base := newService(t, "America/Sao_Paulo", "2026-01-15T15:00:00Z")

	utc, err := base.WithTimezone("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", utc.Timezone())
	assert.Equal(t, "America/Sao_Paulo", base.Timezone())

	r, err := utc.GetRange(PresetToday)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15T00:00:00.000Z", r.StartISO)

	_, err = base.WithTimezone("Mars/Olympus")
	assert.Error(t, err)

	moved := base.WithReferenceDate(mustTime(t, "2026-02-01T15:00:00Z"))
	r, err = moved.GetRange(PresetToday)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01T03:00:00.000Z", r.StartISO)

	r, err = base.GetRange(PresetToday)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15T03:00:00.000Z", r.StartISO)
}

func TestGetRange_UsesClockWithoutReference(t *testing.T) {
	clock := func() time.Time { return mustTime(t, "2026-05-20T12:00:00Z") }

	tz, err := timezone.New(timezone.Config{Timezone: "UTC"}, timezone.WithClock(clock))
	require.NoError(t, err)

	r, err := New(tz).GetRange(PresetToday)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-20T00:00:00.000Z", r.StartISO)
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePreset("week")
	assert.ErrorIs(t, err, ErrInvalidPreset)
}
