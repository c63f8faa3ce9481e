package repository

import (
	"testing"
	"time"

	"risecheckout/internal/domains/sales/model"
	"risecheckout/shared/orderstatus"

	"github.com/stretchr/testify/assert"
)

func TestOrderFilter(t *testing.T) {
	start := time.Date(2026, 1, 15, 3, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 16, 2, 59, 59, 999000000, time.UTC)

	t.Run("vendor and created range", func(t *testing.T) {
		group := orderFilter(model.OrderFilter{VendorID: "v1", Start: start, End: end})

		where, args := group.GetWhereClause()

		assert.Equal(t, "(orders.vendor_id = :vendor_id AND (orders.created_at BETWEEN :created_from AND :created_to))", where)
		assert.Equal(t, "v1", args["vendor_id"])
		assert.Equal(t, start, args["created_from"])
		assert.Equal(t, end, args["created_to"])
	})

	t.Run("with statuses", func(t *testing.T) {
		group := orderFilter(model.OrderFilter{
			VendorID: "v1",
			Start:    start,
			End:      end,
			Statuses: []orderstatus.Status{orderstatus.Paid, orderstatus.Refunded},
		})

		where, args := group.GetWhereClause()

		assert.Equal(t, "(orders.vendor_id = :vendor_id AND (orders.created_at BETWEEN :created_from AND :created_to) AND orders.status IN (:status_0, :status_1))", where)
		assert.Equal(t, "paid", args["status_0"])
		assert.Equal(t, "refunded", args["status_1"])
	})
}
