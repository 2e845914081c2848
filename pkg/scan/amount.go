package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Plausible bill amount window, exclusive on both ends. Values outside it are
// never returned even when syntactically well-formed (phone numbers,
// subscriber ids and meter readings routinely look like amounts).
const (
	minAmount = 0
	maxAmount = 50000
)

// Tier confidences for the amount extractor. An explicit label wins over a
// currency-marked bare number, which wins over a bare Turkish decimal.
const (
	confAmountLabeled  = 0.90
	confAmountCurrency = 0.60
	confAmountBare     = 0.45
)

// amountTiers is evaluated in order; the first tier that yields at least one
// plausible value wins. Label vocabulary follows Turkish bills: ödenecek
// tutar / tahsil edilecek tutar / genel toplam / toplam / borç / tahakkuk.
var amountTiers = []struct {
	re   *regexp.Regexp
	conf float64
}{
	{regexp.MustCompile(`(?:ödenecek tutar|tahsil edilecek tutar|genel toplam|toplam tutar|toplam borç|fatura tutari|toplam|tahakkuk|borç|amount due)\s*[:=]?\s*([0-9][0-9.,]*)\s*(?:tl|₺)?`), confAmountLabeled},
	{regexp.MustCompile(`\b([0-9]{1,3}(?:\.[0-9]{3})*,[0-9]{2})\s*(?:tl|₺)`), confAmountCurrency},
	{regexp.MustCompile(`\b([0-9]{1,3}(?:\.[0-9]{3})*,[0-9]{2})\b`), confAmountBare},
}

// extractAmount runs the ordered amount tiers over the folded text and
// returns the numeric value together with the scored field.
func extractAmount(t *Text) (float64, Field) {
	for _, tier := range amountTiers {
		for _, m := range tier.re.FindAllStringSubmatch(t.Low, -1) {
			if len(m) < 2 {
				continue
			}
			v, err := ParseTurkishAmount(m[1])
			if err != nil {
				continue
			}
			if v <= minAmount || v >= maxAmount {
				continue
			}
			return v, Field{
				Value:      FormatAmount(v),
				Confidence: tier.conf,
				Evidence:   t.Evidence(m[1]),
			}
		}
	}
	return 0, Field{}
}

// ParseTurkishAmount normalizes a matched number into a float. With both "."
// and "," present the dot is a thousands separator and the comma the decimal
// mark (1.234,56 -> 1234.56). A lone comma is the decimal mark. A lone dot is
// a decimal mark only when followed by exactly two digits, otherwise it
// groups thousands (10.000 -> 10000).
func ParseTurkishAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	case hasDot:
		if i := strings.LastIndex(s, "."); len(s)-i-1 != 2 || strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// FormatAmount renders an amount with two fractional digits, the form the
// result object and the form UI expect. FormatAmount and ParseTurkishAmount
// round-trip without precision drift for 2-decimal values.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
