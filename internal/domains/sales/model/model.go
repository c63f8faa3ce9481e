package model

import (
	"time"

	"risecheckout/shared/model"
	"risecheckout/shared/orderstatus"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID          = "id"
	FieldVendorID    = "vendor_id"
	FieldStatus      = "status"
	FieldAmountCents = "amount_cents"
	FieldCreatedAt   = "created_at"
)

// Order is one checkout attempt. Status is canonical; GatewayStatus keeps the
// value the payment gateway reported.
type Order struct {
	ID            string `db:"id"`
	VendorID      string `db:"vendor_id"`
	CustomerEmail string `db:"customer_email"`
	AmountCents   int64  `db:"amount_cents"`
	Currency      string `db:"currency"`
	Status        string `db:"status"`
	GatewayStatus string `db:"gateway_status"`
	Gateway       string `db:"gateway"`
	model.Metadata
}

// OrderFilter selects a vendor's orders created in [Start, End]. An empty
// Statuses matches every status.
type OrderFilter struct {
	VendorID string
	Start    time.Time
	End      time.Time
	Statuses []orderstatus.Status
}
