package constant

import "slices"

// Business defaults for every store that has not picked its own zone.
const (
	DefaultTimezone = "America/Sao_Paulo"
	DefaultLocale   = "pt-BR"
)

// SupportedTimezones is the allow-list offered to vendors. The timezone service
// itself accepts any IANA zone; request validation checks against this list.
var SupportedTimezones = []string{
	"America/Sao_Paulo",
	"America/Manaus",
	"America/Fortaleza",
	"America/Recife",
	"America/Bahia",
	"America/Belem",
	"America/Cuiaba",
	"America/Campo_Grande",
	"America/Porto_Velho",
	"America/Boa_Vista",
	"America/Rio_Branco",
	"America/Noronha",
	"America/New_York",
	"America/Chicago",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/Bogota",
	"America/Lima",
	"America/Santiago",
	"America/Argentina/Buenos_Aires",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"UTC",
}

var SupportedLocales = []string{
	"pt-BR",
	"pt-PT",
	"en-US",
	"es-ES",
}

func IsSupportedTimezone(tz string) bool {
	return slices.Contains(SupportedTimezones, tz)
}

func IsSupportedLocale(locale string) bool {
	return slices.Contains(SupportedLocales, locale)
}
