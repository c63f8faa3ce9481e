// Package money renders integer cent amounts for display in the supported
// locales.
package money

import (
	"math"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"

	"risecheckout/shared/constant"
)

const (
	centsPerUnit    = 100
	fractionDigits  = 2
	defaultCurrency = "BRL"
)

// placement is where a locale puts the symbol and what separates it from
// the number.
type placement struct {
	suffix bool
	gap    string
}

type layout struct {
	translator locales.Translator
	placement  placement
	// local overrides symbols for currencies the locale writes short.
	local map[string]string
}

var layouts = map[string]layout{
	"pt-BR": {translator: pt_BR.New(), placement: placement{gap: " "}},
	"pt-PT": {translator: pt_PT.New(), placement: placement{suffix: true, gap: " "}},
	"en-US": {translator: en_US.New(), placement: placement{}, local: map[string]string{"USD": "$"}},
	"es-ES": {translator: es_ES.New(), placement: placement{suffix: true, gap: " "}},
}

type currencyInfo struct {
	symbol string
	digits uint64
}

var currencies = map[string]currencyInfo{
	"BRL": {symbol: "R$", digits: fractionDigits},
	"USD": {symbol: "US$", digits: fractionDigits},
	"EUR": {symbol: "€", digits: fractionDigits},
	"GBP": {symbol: "£", digits: fractionDigits},
	"MXN": {symbol: "MX$", digits: fractionDigits},
	"ARS": {symbol: "ARS", digits: fractionDigits},
	"CLP": {symbol: "CLP", digits: 0},
	"COP": {symbol: "COP", digits: fractionDigits},
	"PEN": {symbol: "PEN", digits: fractionDigits},
}

// Formatter is bound to one locale and currency. Safe for concurrent use.
type Formatter struct {
	layout layout
	symbol string
	digits uint64
}

// NewFormatter falls back to pt-BR and BRL for unknown inputs.
func NewFormatter(locale, code string) Formatter {
	lay, ok := layouts[normalizeLocale(locale)]
	if !ok {
		lay = layouts[constant.DefaultLocale]
	}

	code = strings.ToUpper(strings.TrimSpace(code))

	info, ok := currencies[code]
	if !ok {
		code, info = defaultCurrency, currencies[defaultCurrency]
	}

	symbol := info.symbol
	if short, ok := lay.local[code]; ok {
		symbol = short
	}

	return Formatter{layout: lay, symbol: symbol, digits: info.digits}
}

// Format renders cents, e.g. 123456 as "R$ 1.234,56" in pt-BR and
// "1.234,56 €" in es-ES. Negative amounts lead with a minus sign.
func (f Formatter) Format(cents int64) string {
	units := math.Abs(float64(cents)) / centsPerUnit
	if f.digits == 0 {
		units = math.Round(units)
	}

	number := f.layout.translator.FmtNumber(units, f.digits)

	var b strings.Builder
	if cents < 0 {
		b.WriteString("-")
	}

	if f.layout.placement.suffix {
		b.WriteString(number)
		b.WriteString(f.layout.placement.gap)
		b.WriteString(f.symbol)

		return b.String()
	}

	b.WriteString(f.symbol)
	b.WriteString(f.layout.placement.gap)
	b.WriteString(number)

	return b.String()
}

func (f Formatter) Locale() string {
	return f.layout.translator.Locale()
}

func normalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")

	lang, region, found := strings.Cut(locale, "-")
	if !found {
		switch strings.ToLower(lang) {
		case "pt":
			return "pt-BR"
		case "en":
			return "en-US"
		case "es":
			return "es-ES"
		}

		return locale
	}

	return strings.ToLower(lang) + "-" + strings.ToUpper(region)
}
