package service

import (
	"fmt"
	"math"
	"time"

	"risecheckout/internal/domains/sales/model"
	"risecheckout/internal/domains/sales/model/dto"
	"risecheckout/shared/constant"
	"risecheckout/shared/daterange"
	"risecheckout/shared/money"
	"risecheckout/shared/orderstatus"
	"risecheckout/shared/timezone"
)

const hoursPerDay = 24

func (s *serviceImpl) formatter(tz *timezone.Service) money.Formatter {
	return money.NewFormatter(tz.Locale(), s.cfg.Analytics.Currency)
}

func summarize(orders []model.Order, fmtMoney money.Formatter) dto.SummaryResponse {
	counts := make(map[orderstatus.Status]int)

	var res dto.SummaryResponse

	for _, order := range orders {
		status := orderstatus.Normalize(order.Status)
		counts[status]++

		if status == orderstatus.Paid {
			res.PaidRevenueCents += order.AmountCents
		}
	}

	res.TotalOrders = len(orders)
	res.PaidOrders = counts[orderstatus.Paid]

	for _, status := range orderstatus.All() {
		res.Statuses = append(res.Statuses, dto.StatusCount{
			Status: status.String(),
			Label:  status.Label(),
			Count:  counts[status],
		})
	}

	if res.PaidOrders > 0 {
		res.AverageTicketCents = res.PaidRevenueCents / int64(res.PaidOrders)
	}

	if res.TotalOrders > 0 {
		res.ConversionRate = math.Round(float64(res.PaidOrders)*10000/float64(res.TotalOrders)) / 100
	}

	res.PaidRevenue = fmtMoney.Format(res.PaidRevenueCents)
	res.AverageTicket = fmtMoney.Format(res.AverageTicketCents)

	return res
}

// hourly buckets paid orders by the local hour they were created in.
func hourly(orders []model.Order, tz *timezone.Service, fmtMoney money.Formatter) dto.HourlyResponse {
	res := dto.HourlyResponse{Hours: make([]dto.HourBucket, hoursPerDay)}

	for hour := range res.Hours {
		res.Hours[hour].Hour = hour
		res.Hours[hour].Label = fmt.Sprintf("%02d:00", hour)
	}

	for _, order := range orders {
		if !orderstatus.IsPaid(order.Status) {
			continue
		}

		hour := tz.GetHourInTimezone(order.CreatedAt)
		if hour < 0 || hour >= hoursPerDay {
			continue
		}

		res.Hours[hour].Orders++
		res.Hours[hour].RevenueCents += order.AmountCents
	}

	for hour := range res.Hours {
		res.Hours[hour].Revenue = fmtMoney.Format(res.Hours[hour].RevenueCents)

		if res.Hours[hour].Orders > res.Hours[res.PeakHour].Orders {
			res.PeakHour = hour
		}
	}

	res.PeakLabel = res.Hours[res.PeakHour].Label

	return res
}

// dailySeries emits one bucket per local day of rng, zero-filled.
func dailySeries(orders []model.Order, rng daterange.Range, tz *timezone.Service, fmtMoney money.Formatter) dto.DailyResponse {
	days := rng.Days(tz)
	index := make(map[string]int, len(days))

	res := dto.DailyResponse{Days: make([]dto.DayBucket, len(days))}

	for i, day := range days {
		index[day] = i
		res.Days[i].Date = day
		res.Days[i].Label = localDateLabel(tz, day)
	}

	for _, order := range orders {
		i, ok := index[tz.GetDateInTimezone(order.CreatedAt)]
		if !ok {
			continue
		}

		res.Days[i].Orders++

		if orderstatus.IsPaid(order.Status) {
			res.Days[i].PaidOrders++
			res.Days[i].RevenueCents += order.AmountCents
		}
	}

	for i := range res.Days {
		res.Days[i].Revenue = fmtMoney.Format(res.Days[i].RevenueCents)
	}

	return res
}

func localDateLabel(tz *timezone.Service, day string) string {
	date, err := time.Parse(constant.LocalDateFormat, day)
	if err != nil {
		return day
	}

	start, _ := tz.DayBounds(date.Year(), date.Month(), date.Day())

	return tz.FormatDate(start)
}
