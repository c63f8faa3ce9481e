package timezone

import (
	"net/http"
	"strings"
	"time"

	"risecheckout/infras/otel"
	"risecheckout/shared/constant"
	"risecheckout/shared/failure"
	tz "risecheckout/shared/timezone"
	"risecheckout/shared/validator"
	"risecheckout/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type BoundariesResponse struct {
	Timezone string `json:"timezone"`
	Date     string `json:"date"`
	tz.DateBoundaries
}

type FormatResponse struct {
	Timezone  string               `json:"timezone"`
	Locale    string               `json:"locale"`
	ISO       string               `json:"iso"`
	LocalDate string               `json:"localDate"`
	Hour      int                  `json:"hour"`
	Formatted tz.FormattedDateTime `json:"formatted"`
}

type ZonesResponse struct {
	DefaultTimezone string   `json:"defaultTimezone"`
	DefaultLocale   string   `json:"defaultLocale"`
	ServiceTimezone string   `json:"serviceTimezone"`
	Timezones       []string `json:"timezones"`
	Locales         []string `json:"locales"`
}

type Handler struct {
	timezone *tz.Service
	otel     otel.Otel
}

func New(timezone *tz.Service, otel otel.Otel) Handler {
	return Handler{
		timezone: timezone,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timezone", func(routerGroup chi.Router) {
		routerGroup.Get("/boundaries", handler.GetBoundaries)
		routerGroup.Get("/format", handler.GetFormat)
		routerGroup.Get("/zones", handler.GetZones)
	})
}

// service derives the zone and locale asked for in the query string.
func (handler *Handler) service(r *http.Request) (*tz.Service, error) {
	values := r.URL.Query()
	svc := handler.timezone

	if zone := strings.TrimSpace(values.Get(constant.RequestParamTimezone)); zone != "" {
		if err := validator.ValidateVar(zone, "supported_timezone"); err != nil {
			return nil, failure.InvalidTimezoneParam
		}

		derived, err := svc.WithTimezone(zone)
		if err != nil {
			return nil, failure.InvalidTimezoneParam
		}

		svc = derived
	}

	if locale := strings.TrimSpace(values.Get(constant.RequestParamLocale)); locale != "" {
		if err := validator.ValidateVar(locale, "supported_locale"); err != nil {
			return nil, err //nolint:wrapcheck
		}

		derived, err := svc.WithLocale(locale)
		if err != nil {
			return nil, failure.BadRequest(err) //nolint:wrapcheck
		}

		svc = derived
	}

	return svc, nil
}

// GetBoundaries returns the UTC bounds of a local calendar day.
// @Summary Day boundaries
// @Description A bare YYYY-MM-DD date is that calendar day in the zone; an RFC 3339 instant selects the local day containing it.
// @Tags Timezone
// @Produce json
// @Param date query string false "Date (defaults to now)"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} BoundariesResponse
// @Failure 400 {object} response.Error
// @Router /v1/timezone/boundaries [get]
func (handler *Handler) GetBoundaries(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoundaries")
	defer scope.End()

	svc, err := handler.service(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamDate))

	var start, end time.Time

	if day, parseErr := time.Parse(constant.LocalDateFormat, date); parseErr == nil {
		start, end = svc.DayBounds(day.Year(), day.Month(), day.Day())
	} else {
		instant := svc.Now()

		if date != "" {
			if instant, err = tz.ParseInstant(date); err != nil {
				scope.TraceError(err)
				response.WithError(w, failure.InvalidDateParam)

				return
			}
		}

		if start, end, err = svc.LocalDayBounds(instant); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to resolve day boundaries")

			response.WithError(w, err)

			return
		}
	}

	response.WithJSON(w, http.StatusOK, BoundariesResponse{
		Timezone: svc.Timezone(),
		Date:     svc.GetDateInTimezone(start),
		DateBoundaries: tz.DateBoundaries{
			StartOfDay: tz.FormatISO(start),
			EndOfDay:   tz.FormatISO(end),
		},
	})
}

// GetFormat renders an instant for display in a zone and locale.
// @Summary Format an instant
// @Tags Timezone
// @Produce json
// @Param date query string true "RFC 3339 instant or YYYY-MM-DD (UTC midnight)"
// @Param timezone query string false "IANA timezone"
// @Param locale query string false "Display locale"
// @Success 200 {object} FormatResponse
// @Failure 400 {object} response.Error
// @Router /v1/timezone/format [get]
func (handler *Handler) GetFormat(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFormat")
	defer scope.End()

	svc, err := handler.service(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	instant, err := tz.ParseInstant(strings.TrimSpace(r.URL.Query().Get(constant.RequestParamDate)))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.InvalidDateParam)

		return
	}

	response.WithJSON(w, http.StatusOK, FormatResponse{
		Timezone:  svc.Timezone(),
		Locale:    svc.Locale(),
		ISO:       tz.FormatISO(instant),
		LocalDate: svc.GetDateInTimezone(instant),
		Hour:      svc.GetHourInTimezone(instant),
		Formatted: svc.Format(instant),
	})
}

// GetZones lists the zones and locales vendors may pick.
// @Summary Supported zones
// @Tags Timezone
// @Produce json
// @Success 200 {object} ZonesResponse
// @Router /v1/timezone/zones [get]
func (handler *Handler) GetZones(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZones")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, ZonesResponse{
		DefaultTimezone: constant.DefaultTimezone,
		DefaultLocale:   constant.DefaultLocale,
		ServiceTimezone: handler.timezone.Timezone(),
		Timezones:       constant.SupportedTimezones,
		Locales:         constant.SupportedLocales,
	})
}
