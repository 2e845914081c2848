package scan

import (
	"strings"
	"testing"
)

var sampleReceipt = strings.Join([]string{
	"MİGROS TİCARET A.Ş.",
	"Tarih: 27.08.2026",
	"EKMEK          15,50",
	"SÜT            42,90",
	"TOPLAM         58,40 TL",
	"KREDİ KARTI    58,40",
}, "\n")

func TestExtractStoreKnown(t *testing.T) {
	f := extractStore(NewText(sampleReceipt))
	if f.Value != "Migros" {
		t.Fatalf("store = %q, want Migros", f.Value)
	}
	if f.Confidence != confStoreKnown {
		t.Errorf("confidence = %v, want %v", f.Confidence, confStoreKnown)
	}
}

func TestExtractStoreFallbackHeader(t *testing.T) {
	f := extractStore(NewText("Mahalle Bakkaliyesi\nTarih: 27.08.2026\n"))
	if f.Value != "Mahalle Bakkaliyesi" {
		t.Fatalf("store = %q, want header line", f.Value)
	}
	if f.Confidence != confStoreHeuristic {
		t.Errorf("confidence = %v, want %v", f.Confidence, confStoreHeuristic)
	}
}

// Line items sit below the total, so the extractor keeps every plausible
// candidate and the largest one wins.
func TestExtractReceiptTotalPicksLargest(t *testing.T) {
	v, f := extractReceiptTotal(NewText(sampleReceipt))
	if v != 58.40 {
		t.Fatalf("total = %v, want 58.40", v)
	}
	if f.Value != "58.40" {
		t.Errorf("value = %q", f.Value)
	}
	if f.Confidence != 0.90 {
		t.Errorf("confidence = %v, want labeled tier 0.90", f.Confidence)
	}
}

func TestExtractReceiptTotalPaymentLine(t *testing.T) {
	v, f := extractReceiptTotal(NewText("NAKİT 120,00\n"))
	if v != 120 {
		t.Fatalf("total = %v, want 120", v)
	}
	if f.Confidence != 0.80 {
		t.Errorf("confidence = %v, want payment tier 0.80", f.Confidence)
	}
}

// Some registers star the grand total instead of labeling it.
func TestExtractReceiptTotalAsterisk(t *testing.T) {
	v, f := extractReceiptTotal(NewText("FİŞ NO 0042\n*58,40\n"))
	if v != 58.40 {
		t.Fatalf("total = %v, want 58.40", v)
	}
	if f.Confidence != 0.70 {
		t.Errorf("confidence = %v, want asterisk tier 0.70", f.Confidence)
	}
}

func TestExtractReceiptDateRecentPast(t *testing.T) {
	f := extractReceiptDate(NewText(sampleReceipt), testNow)
	if f.Value != "2026-08-27" {
		t.Fatalf("receipt date = %q, want 2026-08-27", f.Value)
	}
}

// Receipts are dated at purchase time: a future date is OCR noise.
func TestExtractReceiptDateRejectsFuture(t *testing.T) {
	f := extractReceiptDate(NewText("Tarih: 15.09.2026\n"), testNow)
	if f.Found() {
		t.Fatalf("future receipt date accepted: %q", f.Value)
	}
}

func TestDetectReceiptCategory(t *testing.T) {
	cases := []struct {
		store string
		raw   string
		want  string
	}{
		{"Migros", "MİGROS fişi", "market"},
		{"Starbucks", "STARBUCKS COFFEE", "cafe"},
		{"LC Waikiki", "LC WAIKIKI", "clothing"},
		{"Shell", "SHELL AKARYAKIT", "fuel"},
	}
	for _, c := range cases {
		got := detectReceiptCategory(c.store, NewText(c.raw))
		if got != c.want {
			t.Errorf("category(%q) = %q, want %q", c.store, got, c.want)
		}
	}
	if got := detectReceiptCategory("Bilinmeyen", NewText("tek satır")); got != "other" {
		t.Errorf("unknown store category = %q, want other", got)
	}
}

func TestParseReceiptText(t *testing.T) {
	res := ParseReceiptText(sampleReceipt, testNow)
	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	if res.StoreName != "Migros" {
		t.Errorf("store = %q", res.StoreName)
	}
	if res.Amount != 58.40 {
		t.Errorf("amount = %v", res.Amount)
	}
	if res.ReceiptDate != "2026-08-27" {
		t.Errorf("receipt date = %q", res.ReceiptDate)
	}
	if res.Category != "market" {
		t.Errorf("category = %q", res.Category)
	}
	if res.Currency != "TRY" {
		t.Errorf("currency = %q", res.Currency)
	}
}

func TestParseReceiptTextShortfall(t *testing.T) {
	res := ParseReceiptText("123\nab\n", testNow)
	if !res.Success {
		t.Fatalf("Success = false, want soft shortfall")
	}
	if res.Error != msgPartialReceipt {
		t.Errorf("error = %q, want %q", res.Error, msgPartialReceipt)
	}
}
