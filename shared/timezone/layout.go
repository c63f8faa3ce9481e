package timezone

import (
	"strings"
	"time"

	"risecheckout/shared/constant"
)

type layouts struct {
	date string
	time string
	full string
	hour string
}

const hourLayout = "15"

var localeLayouts = map[string]layouts{
	"pt-BR": {date: "02/01/2006", time: "15:04", full: "02/01/2006, 15:04", hour: hourLayout},
	"pt-PT": {date: "02/01/2006", time: "15:04", full: "02/01/2006, 15:04", hour: hourLayout},
	"en-US": {date: "01/02/2006", time: "15:04", full: "01/02/2006, 03:04 PM", hour: hourLayout},
	"en-GB": {date: "02/01/2006", time: "15:04", full: "02/01/2006, 15:04", hour: hourLayout},
	"es-ES": {date: "02/01/2006", time: "15:04", full: "02/01/2006, 15:04", hour: hourLayout},
}

var languageFallback = map[string]string{
	"pt": "pt-BR",
	"en": "en-US",
	"es": "es-ES",
}

// canonicalLocale turns "pt_br", "PT-br" and friends into "pt-BR".
func canonicalLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")

	lang, region, found := strings.Cut(locale, "-")
	if !found {
		return strings.ToLower(lang)
	}

	return strings.ToLower(lang) + "-" + strings.ToUpper(region)
}

// resolveLayouts picks the layouts for a locale, falling back to the language
// and then to the default locale.
func resolveLayouts(locale string) layouts {
	locale = canonicalLocale(locale)

	if l, ok := localeLayouts[locale]; ok {
		return l
	}

	lang, _, _ := strings.Cut(locale, "-")
	if fallback, ok := languageFallback[lang]; ok {
		return localeLayouts[fallback]
	}

	return localeLayouts[constant.DefaultLocale]
}

// formatter is a layout bound to a location. Built once per Service.
type formatter struct {
	layout   string
	location *time.Location
}

func newFormatter(layout string, location *time.Location) formatter {
	return formatter{layout: layout, location: location}
}

func (f formatter) format(t time.Time) string {
	if f.location == nil {
		return constant.Empty
	}

	return t.In(f.location).Format(f.layout)
}

// dateParts extracts the calendar date of t as seen in the formatter's location.
func (f formatter) dateParts(t time.Time) (year int, month time.Month, day int, ok bool) {
	if f.location == nil {
		return 0, 0, 0, false
	}

	year, month, day = t.In(f.location).Date()

	return year, month, day, true
}
