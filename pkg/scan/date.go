package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	confDateLabeled = 0.90
	confDateBare    = 0.55
)

// maxDueDateAhead bounds how far in the future a due date may plausibly be.
const maxDueDateAhead = 5 // years

// dueDateLabels mark the line that carries the payment deadline on Turkish
// bills. Folded form (see turkishLower).
var dueDateLabels = []string{
	"son ödeme tarihi",
	"son odeme tarihi",
	"s.ö.t",
	"vade tarihi",
	"vade",
	"ödeme tarihi",
	"due date",
}

// trMonths maps folded Turkish month names to month numbers.
var trMonths = map[string]time.Month{
	"ocak": 1, "şubat": 2, "mart": 3, "nisan": 4,
	"mayis": 5, "haziran": 6, "temmuz": 7, "ağustos": 8,
	"eylül": 9, "ekim": 10, "kasim": 11, "aralik": 12,
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{4})\b`),
	regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2})\s+(ocak|şubat|mart|nisan|mayis|haziran|temmuz|ağustos|eylül|ekim|kasim|aralik)\s+(\d{4})\b`),
}

// extractDueDate finds the bill due date. Lines carrying an explicit due-date
// label are searched first and yield high confidence; a bare date anywhere in
// the text is a weaker fallback. Day comes first (Turkish convention), output
// is ISO YYYY-MM-DD.
func extractDueDate(t *Text, now time.Time) Field {
	var labeled []string
	for _, line := range t.Lines() {
		low := turkishLower(line)
		for _, kw := range dueDateLabels {
			if strings.Contains(low, kw) {
				labeled = append(labeled, low)
				break
			}
		}
	}
	for _, line := range labeled {
		if iso, raw, ok := firstValidDate(line, now, false); ok {
			return Field{Value: iso, Confidence: confDateLabeled, Evidence: t.Evidence(raw)}
		}
	}
	if iso, raw, ok := firstValidDate(t.Low, now, false); ok {
		return Field{Value: iso, Confidence: confDateBare, Evidence: t.Evidence(raw)}
	}
	return Field{}
}

// firstValidDate scans the folded text with all date patterns and returns the
// first candidate that survives validation. past selects the receipt-style
// window (recent past) instead of the due-date window (today onward).
func firstValidDate(low string, now time.Time, past bool) (iso, raw string, ok bool) {
	for _, re := range datePatterns {
		for _, m := range re.FindAllStringSubmatch(low, -1) {
			if len(m) < 4 {
				continue
			}
			d, err := buildDate(m[1], m[2], m[3])
			if err != nil {
				continue
			}
			if past {
				if !plausibleReceiptDate(d, now) {
					continue
				}
			} else if !plausibleDueDate(d, now) {
				continue
			}
			return d.Format("2006-01-02"), m[0], true
		}
	}
	return "", "", false
}

func buildDate(dayS, monthS, yearS string) (time.Time, error) {
	day, _ := strconv.Atoi(dayS)
	year, _ := strconv.Atoi(yearS)
	var month int
	if mo, ok := trMonths[monthS]; ok {
		month = int(mo)
	} else {
		month, _ = strconv.Atoi(monthS)
	}
	if year < 100 {
		year += 2000
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("date out of range: %s.%s.%s", dayS, monthS, yearS)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March; treat any drift as invalid
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid calendar date: %s.%s.%s", dayS, monthS, yearS)
	}
	return d, nil
}

// plausibleDueDate keeps due dates between today and a few years out. The
// window tracks the injected clock, never a hardcoded year range.
func plausibleDueDate(d, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today) && d.Before(today.AddDate(maxDueDateAhead, 0, 0))
}

// plausibleReceiptDate keeps receipt dates in the recent past (receipts are
// dated when the purchase happened, not ahead of it).
func plausibleReceiptDate(d, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.After(today.AddDate(0, 0, 1)) && d.After(today.AddDate(-maxDueDateAhead, 0, 0))
}
