package timezone

import (
	"strconv"
	"time"
)

const (
	relativeNowSeconds = 30
	daysPerWeek        = 7
	daysPerMonth       = 30
	hoursPerDay        = 24
)

// RelativeTime describes how long ago date was, measured against the service
// clock. Each bucket floors its unit, so exactly 60 seconds reads "1 min atrás".
// Beyond thirty days it falls back to the formatted date.
func (s *Service) RelativeTime(date time.Time) string {
	diff := s.now().Sub(date)

	seconds := int64(diff / time.Second)
	minutes := int64(diff / time.Minute)
	hours := int64(diff / time.Hour)
	days := hours / hoursPerDay

	switch {
	case seconds < relativeNowSeconds:
		return "Agora"
	case minutes < 1:
		return strconv.FormatInt(seconds, 10) + "s atrás"
	case minutes < 60:
		return strconv.FormatInt(minutes, 10) + " min atrás"
	case hours < hoursPerDay:
		return strconv.FormatInt(hours, 10) + "h atrás"
	case days == 1:
		return "Ontem"
	case days < daysPerWeek:
		return strconv.FormatInt(days, 10) + " dias atrás"
	case days < daysPerMonth:
		return strconv.FormatInt(days/daysPerWeek, 10) + " sem atrás"
	default:
		return s.dateFormatter.format(date)
	}
}
