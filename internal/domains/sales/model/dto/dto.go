package dto

import (
	"slices"
	"strings"
	"time"

	"risecheckout/internal/domains/sales/model"
	"risecheckout/shared"
	"risecheckout/shared/daterange"
	gDto "risecheckout/shared/dto"
	"risecheckout/shared/money"
	gModel "risecheckout/shared/model"
	"risecheckout/shared/orderstatus"
	"risecheckout/shared/timezone"

	"github.com/google/uuid"
)

// CreateOrderRequest records an order as reported by a gateway. Status is
// the raw gateway value and is normalized on write.
type CreateOrderRequest struct {
	ID            string `json:"id"             validate:"omitempty,uuid"`
	VendorID      string `json:"vendor_id"      validate:"required,uuid"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=255"`
	AmountCents   int64  `json:"amount_cents"   validate:"gte=0"`
	Currency      string `json:"currency"       validate:"omitempty,len=3"`
	Gateway       string `json:"gateway"        validate:"required,max=50"`
	Status        string `json:"status"         validate:"omitempty,max=50"`
	CreatedAt     string `json:"created_at"     validate:"omitempty,instant"`
}

func (c *CreateOrderRequest) ToModel(now time.Time, defaultCurrency string) model.Order {
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := now
	if c.CreatedAt != "" {
		if parsed, err := timezone.ParseInstant(c.CreatedAt); err == nil {
			createdAt = parsed
		}
	}

	currency := strings.ToUpper(c.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	return model.Order{
		ID:            id,
		VendorID:      c.VendorID,
		CustomerEmail: strings.ToLower(strings.TrimSpace(c.CustomerEmail)),
		AmountCents:   c.AmountCents,
		Currency:      currency,
		Status:        orderstatus.Normalize(c.Status).String(),
		GatewayStatus: c.Status,
		Gateway:       strings.ToLower(c.Gateway),
		Metadata: gModel.Metadata{
			CreatedAt: createdAt.UTC(),
			UpdatedAt: now.UTC(),
		},
	}
}

type OrderResponse struct {
	ID            string                  `json:"id"`
	VendorID      string                  `json:"vendor_id"`
	CustomerEmail string                  `json:"customer_email"`
	AmountCents   int64                   `json:"amount_cents"`
	Amount        string                  `json:"amount"`
	Status        string                  `json:"status"`
	StatusLabel   string                  `json:"status_label"`
	StatusColors  orderstatus.ColorScheme `json:"status_colors"`
	Terminal      bool                    `json:"terminal"`
	Gateway       string                  `json:"gateway"`
	GatewayStatus string                  `json:"gateway_status"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(tz *timezone.Service, mod model.Order) {
	status := orderstatus.Normalize(mod.Status)

	r.ID = mod.ID
	r.VendorID = mod.VendorID
	r.CustomerEmail = mod.CustomerEmail
	r.AmountCents = mod.AmountCents
	r.Amount = money.NewFormatter(tz.Locale(), mod.Currency).Format(mod.AmountCents)
	r.Status = status.String()
	r.StatusLabel = status.Label()
	r.StatusColors = status.Colors()
	r.Terminal = status.Terminal()
	r.Gateway = mod.Gateway
	r.GatewayStatus = mod.GatewayStatus
	r.Metadata.FromModel(tz, mod.Metadata)
}

type GetOrdersResponse struct {
	Range     daterange.Range `json:"range"`
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(tz *timezone.Service, models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(tz, mod)
	}
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type SummaryResponse struct {
	Range              daterange.Range `json:"range"`
	TotalOrders        int             `json:"total_orders"`
	PaidOrders         int             `json:"paid_orders"`
	Statuses           []StatusCount   `json:"statuses"`
	PaidRevenueCents   int64           `json:"paid_revenue_cents"`
	PaidRevenue        string          `json:"paid_revenue"`
	AverageTicketCents int64           `json:"average_ticket_cents"`
	AverageTicket      string          `json:"average_ticket"`
	ConversionRate     float64         `json:"conversion_rate"`
}

type HourBucket struct {
	Hour         int    `json:"hour"`
	Label        string `json:"label"`
	Orders       int    `json:"orders"`
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"`
}

type HourlyResponse struct {
	Range     daterange.Range `json:"range"`
	Hours     []HourBucket    `json:"hours"`
	PeakHour  int             `json:"peak_hour"`
	PeakLabel string          `json:"peak_label"`
}

type DayBucket struct {
	Date         string `json:"date"`
	Label        string `json:"label"`
	Orders       int    `json:"orders"`
	PaidOrders   int    `json:"paid_orders"`
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"`
}

type DailyResponse struct {
	Range daterange.Range `json:"range"`
	Days  []DayBucket     `json:"days"`
}

// ListOrdersRequest narrows the order listing to a period and, optionally, to
// canonical statuses.
type ListOrdersRequest struct {
	gDto.RangeQuery
	Statuses []string `json:"status" validate:"omitempty,dive,orderstatus"`
}

// SetStatuses reads a comma separated status list, dropping blanks and repeats.
func (r *ListOrdersRequest) SetStatuses(raw string) {
	r.Statuses = nil

	for _, part := range strings.Split(raw, ",") {
		status := strings.ToLower(strings.TrimSpace(part))
		if status == "" || slices.Contains(r.Statuses, status) {
			continue
		}

		r.Statuses = append(r.Statuses, status)
	}
}

// Filter scopes the request to the resolved range. Statuses must already be
// validated.
func (r *ListOrdersRequest) Filter(rng daterange.Range) model.OrderFilter {
	filter := model.OrderFilter{
		VendorID: r.VendorID,
		Start:    rng.Start,
		End:      rng.End,
	}

	for _, status := range r.Statuses {
		filter.Statuses = append(filter.Statuses, orderstatus.Status(status))
	}

	return filter
}

type ExportReportRequest struct {
	gDto.RangeQuery
}

type ExportReportResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Rows       int    `json:"rows"`
}
