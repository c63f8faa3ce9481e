// Package report renders sales series into downloadable files.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"risecheckout/internal/domains/sales/model/dto"

	"github.com/klauspost/compress/gzip"
)

var dailyHeader = []string{"date", "label", "orders", "paid_orders", "revenue_cents", "revenue"}

// WriteDailyCSV writes one row per local day, in range order.
func WriteDailyCSV(w io.Writer, daily dto.DailyResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(dailyHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, day := range daily.Days {
		record := []string{
			day.Date,
			day.Label,
			strconv.Itoa(day.Orders),
			strconv.Itoa(day.PaidOrders),
			strconv.FormatInt(day.RevenueCents, 10),
			day.Revenue,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write report row %s: %w", day.Date, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	return nil
}

// BuildDaily returns the gzip-compressed CSV for daily.
func BuildDaily(daily dto.DailyResponse) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}

	if err := WriteDailyCSV(zw, daily); err != nil {
		_ = zw.Close()

		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName is the object name for a daily report covering first..last.
func FileName(first, last, id string) string {
	return fmt.Sprintf("daily_%s_%s_%s.csv.gz", first, last, id)
}
