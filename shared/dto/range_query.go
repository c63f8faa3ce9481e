package dto

import (
	"net/http"
	"strings"

	"risecheckout/shared/constant"
)

// RangeQuery carries the period selection shared by analytics endpoints.
// Preset defaults to "today" and Timezone to the service zone when empty.
type RangeQuery struct {
	VendorID string `json:"vendor_id" validate:"required,uuid"`
	Preset   string `json:"preset"    validate:"omitempty,preset"`
	From     string `json:"from"      validate:"required_if=Preset custom,omitempty,instant"`
	To       string `json:"to"        validate:"required_if=Preset custom,omitempty,instant"`
	Timezone string `json:"timezone"  validate:"omitempty,supported_timezone"`
	Locale   string `json:"locale"    validate:"omitempty,supported_locale"`
}

func (q *RangeQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.VendorID = strings.TrimSpace(values.Get(constant.RequestParamVendorID))
	q.Preset = strings.ToLower(strings.TrimSpace(values.Get(constant.RequestParamPreset)))
	q.From = strings.TrimSpace(values.Get(constant.RequestParamFrom))
	q.To = strings.TrimSpace(values.Get(constant.RequestParamTo))
	q.Timezone = strings.TrimSpace(values.Get(constant.RequestParamTimezone))
	q.Locale = strings.TrimSpace(values.Get(constant.RequestParamLocale))

	q.SetDefaults()
}

// SetDefaults picks "custom" when explicit dates are given and "today"
// otherwise.
func (q *RangeQuery) SetDefaults() {
	q.Preset = strings.ToLower(strings.TrimSpace(q.Preset))

	if q.Preset == "" {
		if q.From != "" || q.To != "" {
			q.Preset = "custom"
		} else {
			q.Preset = "today"
		}
	}
}

