package dto

import (
	"risecheckout/shared/model"
	"risecheckout/shared/timezone"
)

type Metadata struct {
	CreatedAt      string                     `json:"created_at"`
	UpdatedAt      string                     `json:"updated_at"`
	CreatedAtLocal timezone.FormattedDateTime `json:"created_at_local"`
}

// FromModel renders timestamps as UTC ISO strings plus the local view in tz.
func (m *Metadata) FromModel(tz *timezone.Service, model model.Metadata) {
	m.CreatedAt = timezone.FormatISO(model.CreatedAt)
	m.UpdatedAt = timezone.FormatISO(model.UpdatedAt)
	m.CreatedAtLocal = tz.Format(model.CreatedAt)
}
