// Package money formats and parses listing prices using Brazilian Portuguese
// conventions ("R$ 110.000,00").
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "R$ "

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatNumber renders an integer with pt-BR thousand grouping: 110000 -> "110.000".
func FormatNumber(value int64) string {
	return printer.Sprintf("%d", value)
}

// FormatCurrency renders a full currency value: 110000 -> "R$ 110.000,00".
func FormatCurrency(value int64) string {
	return printer.Sprintf("%s%.2f", currencyPrefix, float64(value))
}

// FormatCurrencyShort renders a currency value without cents: 110000 -> "R$ 110.000".
func FormatCurrencyShort(value int64) string {
	return currencyPrefix + FormatNumber(value)
}

// FormatCurrencyDecimal renders an exact decimal price with two decimal places.
func FormatCurrencyDecimal(value decimal.Decimal) string {
	f, _ := value.Round(2).Float64()
	return printer.Sprintf("%s%.2f", currencyPrefix, f)
}

// FormatPriceInput normalizes free-form price input for display while typing:
// non-digits are stripped, grouping applied. "110a000" -> "110.000".
func FormatPriceInput(raw string) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return FormatNumber(value)
}

// ParseCurrency interprets a pt-BR formatted amount as an exact decimal value.
// Grouping dots and the currency prefix are dropped, a decimal comma separates
// the cents: "R$ 110.000,00" -> 110000, "110.000,50" -> 110000.50. Plain digit
// strings are taken as whole reais.
func ParseCurrency(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	return decimal.NewFromString(cleaned)
}

// ParsePriceInput recovers the integer value from formatted or free-form input.
// Round-trips with FormatPriceInput for any digit string.
func ParsePriceInput(raw string) int64 {
	digits := stripNonDigits(raw)
	if digits == "" {
		return 0
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func stripNonDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
