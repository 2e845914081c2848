package scan

import "strings"

const (
	confCurrencyMark    = 0.95
	confCurrencyDefault = 0.50
)

// detectCurrency picks the bill currency from explicit marks. Turkish bills
// default to TRY when no mark survives OCR; the default is still reported as
// a candidate (lower confidence) so the form gets a currency either way.
// Currency never contributes a warning.
func detectCurrency(t *Text) Field {
	type mark struct {
		needle string
		code   string
	}
	marks := []mark{
		{"₺", "TRY"},
		{"türk lirasi", "TRY"},
		{"tl", "TRY"},
		{"usd", "USD"},
		{"$", "USD"},
		{"eur", "EUR"},
		{"€", "EUR"},
	}
	for _, m := range marks {
		if strings.Contains(t.Low, m.needle) {
			return Field{
				Value:      m.code,
				Confidence: confCurrencyMark,
				Evidence:   t.Evidence(m.needle),
			}
		}
	}
	return Field{
		Value:      "TRY",
		Confidence: confCurrencyDefault,
		Evidence:   []string{"default currency: TRY"},
	}
}
