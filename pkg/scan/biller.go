package scan

import (
	"strings"
	"unicode"
)

const (
	confBillerKnown     = 0.85
	confBillerHeuristic = 0.50
)

// Bill categories, in the fixed priority order the keyword scan follows.
const (
	CategoryElectricity   = "electricity"
	CategoryWater         = "water"
	CategoryGas           = "gas"
	CategoryInternet      = "internet"
	CategoryPhone         = "phone"
	CategorySubscriptions = "subscriptions"
	CategoryRent          = "rent"
	CategoryMarket        = "market"
)

type billerEntry struct {
	keyword  string // folded form, see turkishLower
	display  string
	category string
}

// knownBillers lists Turkish-market billers grouped by category; the slice
// order IS the category priority (electricity, water, gas, internet, phone,
// subscriptions, rent, market). First keyword hit wins.
var knownBillers = []billerEntry{
	{"enerjisa", "Enerjisa", CategoryElectricity},
	{"tedaş", "TEDAŞ", CategoryElectricity},
	{"bedaş", "BEDAŞ", CategoryElectricity},
	{"aydem", "Aydem", CategoryElectricity},
	{"ck enerji", "CK Enerji", CategoryElectricity},
	{"elektrik", "", CategoryElectricity},
	{"iski", "İSKİ", CategoryWater},
	{"aski", "ASKİ", CategoryWater},
	{"izsu", "İZSU", CategoryWater},
	{"buski", "BUSKİ", CategoryWater},
	{"su faturasi", "", CategoryWater},
	{"igdaş", "İGDAŞ", CategoryGas},
	{"egegaz", "EgeGaz", CategoryGas},
	{"başkentgaz", "BaşkentGaz", CategoryGas},
	{"doğalgaz", "", CategoryGas},
	{"türk telekom", "Türk Telekom", CategoryInternet},
	{"superonline", "Superonline", CategoryInternet},
	{"turknet", "TurkNet", CategoryInternet},
	{"internet", "", CategoryInternet},
	{"vodafone", "Vodafone", CategoryPhone},
	{"turkcell", "Turkcell", CategoryPhone},
	{"netflix", "Netflix", CategorySubscriptions},
	{"spotify", "Spotify", CategorySubscriptions},
	{"abonelik", "", CategorySubscriptions},
	{"kira", "", CategoryRent},
	{"migros", "Migros", CategoryMarket},
	{"carrefour", "CarrefourSA", CategoryMarket},
}

// extractBiller identifies the issuing company and the derived category.
// Category is a projection of the keyword hit, not an independently scored
// field. When the table has no canonical display name the matched substring
// from the original-case text stands in for it.
func extractBiller(t *Text) (Field, string) {
	for _, e := range knownBillers {
		idx := strings.Index(t.Low, e.keyword)
		if idx == -1 {
			continue
		}
		name := e.display
		if name == "" {
			name = originalSpan(t, e.keyword)
		}
		return Field{
			Value:      name,
			Confidence: confBillerKnown,
			Evidence:   t.Evidence(e.keyword),
		}, e.category
	}
	// fallback: an early line that looks like a company header
	for i, line := range t.Lines() {
		if i >= 3 {
			break
		}
		clean := strings.TrimSpace(line)
		if len([]rune(clean)) <= 5 || startsWithDigits(clean) {
			continue
		}
		r := []rune(clean)
		if len(r) > 50 {
			clean = string(r[:50])
		}
		return Field{
			Value:      clean,
			Confidence: confBillerHeuristic,
			Evidence:   []string{clipLine(line)},
		}, ""
	}
	return Field{}, ""
}

// originalSpan recovers the original-case substring behind a folded keyword
// match so the display name keeps its capitalization.
func originalSpan(t *Text, keyword string) string {
	for _, line := range t.Lines() {
		low := turkishLower(line)
		if i := strings.Index(low, keyword); i != -1 {
			// fold is rune-length preserving, so byte offsets can shift;
			// walk runes in parallel instead
			lr := []rune(line)
			fr := []rune(low)
			kr := []rune(keyword)
			for s := 0; s+len(kr) <= len(fr); s++ {
				if string(fr[s:s+len(kr)]) == keyword {
					return string(lr[s : s+len(kr)])
				}
			}
		}
	}
	return keyword
}

func startsWithDigits(s string) bool {
	r := []rune(s)
	n := 5
	if len(r) < n {
		n = len(r)
	}
	for _, c := range r[:n] {
		if unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
