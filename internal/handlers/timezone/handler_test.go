package timezone_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risecheckout/infras/otel/mocks"
	"risecheckout/internal/handlers/timezone"
	tz "risecheckout/shared/timezone"
)

func setup(t *testing.T) http.Handler {
	t.Helper()

	now, err := time.Parse(time.RFC3339, "2026-01-16T01:00:00Z")
	require.NoError(t, err)

	svc, err := tz.New(tz.Config{}, tz.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	handler := timezone.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func get[T any](t *testing.T, router http.Handler, target string) (int, T) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var payload struct {
		Data T `json:"data"`
	}

	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}

	return rec.Code, payload.Data
}

func TestHandler_GetBoundaries(t *testing.T) {
	router := setup(t)

	tests := []struct {
		name      string
		query     string
		wantDate  string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "defaults to the local today",
			query:     "",
			wantDate:  "2026-01-15",
			wantStart: "2026-01-15T03:00:00.000Z",
			wantEnd:   "2026-01-16T02:59:59.999Z",
		},
		{
			name:      "bare date is a local calendar day",
			query:     "?date=2026-03-10",
			wantDate:  "2026-03-10",
			wantStart: "2026-03-10T03:00:00.000Z",
			wantEnd:   "2026-03-11T02:59:59.999Z",
		},
		{
			name:      "instant picks the local day containing it",
			query:     "?date=2026-03-10T01:30:00Z",
			wantDate:  "2026-03-09",
			wantStart: "2026-03-09T03:00:00.000Z",
			wantEnd:   "2026-03-10T02:59:59.999Z",
		},
		{
			name:      "spring forward day in New York",
			query:     "?date=2026-03-08&timezone=America/New_York",
			wantDate:  "2026-03-08",
			wantStart: "2026-03-08T05:00:00.000Z",
			wantEnd:   "2026-03-09T03:59:59.999Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, res := get[timezone.BoundariesResponse](t, router, "/v1/timezone/boundaries"+tt.query)

			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.wantDate, res.Date)
			assert.Equal(t, tt.wantStart, res.StartOfDay)
			assert.Equal(t, tt.wantEnd, res.EndOfDay)
		})
	}
}

func TestHandler_GetBoundaries_Invalid(t *testing.T) {
	router := setup(t)

	code, _ := get[timezone.BoundariesResponse](t, router, "/v1/timezone/boundaries?date=tomorrow")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get[timezone.BoundariesResponse](t, router, "/v1/timezone/boundaries?timezone=Mars/Olympus")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandler_GetFormat(t *testing.T) {
	router := setup(t)

	code, res := get[timezone.FormatResponse](t, router, "/v1/timezone/format?date=2026-01-15T02:30:00Z")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "America/Sao_Paulo", res.Timezone)
	assert.Equal(t, "pt-BR", res.Locale)
	assert.Equal(t, "2026-01-15T02:30:00.000Z", res.ISO)
	assert.Equal(t, "2026-01-14", res.LocalDate)
	assert.Equal(t, 23, res.Hour)
	assert.Equal(t, "14/01/2026", res.Formatted.Date)
	assert.Equal(t, "23:30", res.Formatted.Time)

	code, res = get[timezone.FormatResponse](t, router, "/v1/timezone/format?date=2026-07-04T16:05:00Z&timezone=America/New_York&locale=en-US")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, 12, res.Hour)
	assert.Equal(t, "07/04/2026", res.Formatted.Date)
	assert.Equal(t, "07/04/2026, 12:05 PM", res.Formatted.Full)

	code, _ = get[timezone.FormatResponse](t, router, "/v1/timezone/format")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get[timezone.FormatResponse](t, router, "/v1/timezone/format?date=2026-01-15&locale=fr-FR")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandler_GetZones(t *testing.T) {
	router := setup(t)

	code, res := get[timezone.ZonesResponse](t, router, "/v1/timezone/zones")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "America/Sao_Paulo", res.DefaultTimezone)
	assert.Equal(t, "pt-BR", res.DefaultLocale)
	assert.Equal(t, "America/Sao_Paulo", res.ServiceTimezone)
	assert.Contains(t, res.Timezones, "America/Manaus")
	assert.Contains(t, res.Locales, "en-US")
}
