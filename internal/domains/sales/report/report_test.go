package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"risecheckout/internal/domains/sales/model/dto"
	"risecheckout/shared/money"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDaily() dto.DailyResponse {
	return dto.DailyResponse{
		Days: []dto.DayBucket{
			{Date: "2026-01-14", Label: "14/01/2026", Orders: 3, PaidOrders: 2, RevenueCents: 25000, Revenue: money.NewFormatter("pt-BR", "BRL").Format(25000)},
			{Date: "2026-01-15", Label: "15/01/2026"},
		},
	}
}

func TestWriteDailyCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteDailyCSV(&buf, sampleDaily()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, dailyHeader, records[0])
	assert.Equal(t, []string{"2026-01-14", "14/01/2026", "3", "2", "25000", "R$ 250,00"}, records[1])
	assert.Equal(t, []string{"2026-01-15", "15/01/2026", "0", "0", "0", ""}, records[2])
}

func TestBuildDaily(t *testing.T) {
	payload, err := BuildDaily(sampleDaily())
	require.NoError(t, err)

	zr, err := gzip.NewReader(bytes.NewReader(payload))
	require.NoError(t, err)

	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, WriteDailyCSV(&plain, sampleDaily()))
	assert.Equal(t, plain.String(), string(raw))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "daily_2026-01-01_2026-01-07_abc.csv.gz", FileName("2026-01-01", "2026-01-07", "abc"))
}
