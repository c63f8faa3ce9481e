package shared

import (
	"math"
	"strconv"
	"strings"
	"time"

	"risecheckout/shared/constant"
	"risecheckout/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins non-empty parts with ":". Spaces are replaced so user
// agents stay usable as key segments.
func BuildCacheKey(parts ...string) string {
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, strings.ReplaceAll(part, " ", "_"))
	}

	return strings.Join(segments, cacheKeySeparator)
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterCreatedBetween matches rows whose created_at lies in [start, end],
// both ends inclusive.
func FilterCreatedBetween(start, end time.Time, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				ArgName:  "created",
				Field:    constant.FieldCreatedAt,
				Value:    dto.Bounds{From: start.UTC(), To: end.UTC()},
				Operator: dto.FilterOperatorBetween,
				Table:    table,
			},
		},
	}
}
