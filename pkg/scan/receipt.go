package scan

import (
	"regexp"
	"strings"
	"time"
)

const (
	confStoreKnown     = 0.85
	confStoreHeuristic = 0.50
)

type storeEntry struct {
	keyword string // folded form
	display string
}

// knownStores lists Turkish-market chains commonly seen on receipts.
var knownStores = []storeEntry{
	{"migros", "Migros"},
	{"carrefour", "CarrefourSA"},
	{"bim", "BİM"},
	{"a101", "A101"},
	{"şok", "ŞOK"},
	{"file", "File"},
	{"macro", "Macro Center"},
	{"metro", "Metro"},
	{"happy center", "Happy Center"},
	{"gratis", "Gratis"},
	{"watsons", "Watsons"},
	{"rossmann", "Rossmann"},
	{"lc waikiki", "LC Waikiki"},
	{"lcw", "LC Waikiki"},
	{"koton", "Koton"},
	{"defacto", "DeFacto"},
	{"mavi", "Mavi"},
	{"teknosa", "Teknosa"},
	{"mediamarkt", "MediaMarkt"},
	{"vatan", "Vatan Bilgisayar"},
	{"starbucks", "Starbucks"},
	{"kahve dünyasi", "Kahve Dünyası"},
	{"burger king", "Burger King"},
	{"mcdonald", "McDonald's"},
	{"dominos", "Domino's"},
	{"pizza hut", "Pizza Hut"},
	{"popeyes", "Popeyes"},
	{"shell", "Shell"},
	{"opet", "Opet"},
	{"petrol ofisi", "Petrol Ofisi"},
	{"eczane", "Eczane"},
}

// extractStore identifies the merchant on a receipt, falling back to the
// first header-looking line like the biller extractor does.
func extractStore(t *Text) Field {
	for _, e := range knownStores {
		if strings.Contains(t.Low, e.keyword) {
			return Field{
				Value:      e.display,
				Confidence: confStoreKnown,
				Evidence:   t.Evidence(e.keyword),
			}
		}
	}
	for i, line := range t.Lines() {
		if i >= 3 {
			break
		}
		clean := strings.TrimSpace(line)
		if len([]rune(clean)) <= 3 || startsWithDigits(clean) {
			continue
		}
		r := []rune(clean)
		if len(r) > 50 {
			clean = string(r[:50])
		}
		return Field{
			Value:      clean,
			Confidence: confStoreHeuristic,
			Evidence:   []string{clipLine(line)},
		}
	}
	return Field{}
}

// Receipt totals do not follow the "first tier wins" rule: a receipt lists
// many line amounts below the total, so all plausible candidates are
// collected and the largest wins, keeping the confidence of the pattern
// that produced it.
var receiptTotalTiers = []struct {
	re   *regexp.Regexp
	conf float64
}{
	{regexp.MustCompile(`(?:genel toplam|toplam|total|ödenecek|tutar)\s*[:=]?\s*([0-9][0-9.,]*)\s*(?:tl|₺)?`), 0.90},
	{regexp.MustCompile(`(?:nakit|kredi karti|kredi|kart|visa|mastercard)\s*[:=]?\s*([0-9][0-9.,]*)\s*(?:tl|₺)?`), 0.80},
	{regexp.MustCompile(`\*+\s*([0-9][0-9.,]*)\s*(?:tl|₺)?`), 0.70},
	{regexp.MustCompile(`\b([0-9]{1,3}(?:\.[0-9]{3})*,[0-9]{2})\s*(?:tl|₺)`), 0.60},
}

func extractReceiptTotal(t *Text) (float64, Field) {
	var best float64
	var bestField Field
	for _, tier := range receiptTotalTiers {
		for _, m := range tier.re.FindAllStringSubmatch(t.Low, -1) {
			if len(m) < 2 {
				continue
			}
			v, err := ParseTurkishAmount(m[1])
			if err != nil || v <= minAmount || v >= maxAmount {
				continue
			}
			if v > best {
				best = v
				bestField = Field{
					Value:      FormatAmount(v),
					Confidence: tier.conf,
					Evidence:   t.Evidence(m[1]),
				}
			}
		}
	}
	return best, bestField
}

// extractReceiptDate reuses the date patterns without a label requirement:
// receipts carry a purchase date, usually unlabeled and in the recent past.
func extractReceiptDate(t *Text, now time.Time) Field {
	if iso, raw, ok := firstValidDate(t.Low, now, true); ok {
		return Field{Value: iso, Confidence: confDateBare, Evidence: t.Evidence(raw)}
	}
	return Field{}
}

// receiptCategoryKeywords maps folded keywords to receipt categories, in
// priority order.
var receiptCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{"market", []string{"migros", "carrefour", "bim", "a101", "şok", "file", "macro", "metro", "happy"}},
	{"fastfood", []string{"mcdonald", "burger king", "dominos", "pizza hut", "popeyes", "kfc"}},
	{"cafe", []string{"starbucks", "kahve dünyasi", "espresso", "kafe", "cafe"}},
	{"restaurant", []string{"restoran", "restaurant", "kebap", "döner", "pizza", "burger"}},
	{"clothing", []string{"lc waikiki", "lcw", "koton", "defacto", "mavi", "zara", "bershka"}},
	{"electronics", []string{"teknosa", "mediamarkt", "vatan", "apple", "samsung", "bilgisayar"}},
	{"pharmacy", []string{"eczane", "pharmacy", "ilaç"}},
	{"fuel", []string{"shell", "opet", "petrol", "akaryakit", "benzin", "motorin"}},
}

// detectReceiptCategory infers the receipt category from the store name and
// text. Like the bill category, it is a derived projection with no own
// confidence.
func detectReceiptCategory(storeName string, t *Text) string {
	store := turkishLower(storeName)
	for _, g := range receiptCategoryKeywords {
		for _, kw := range g.keywords {
			if strings.Contains(store, kw) || strings.Contains(t.Low, kw) {
				return g.category
			}
		}
	}
	return "other"
}
