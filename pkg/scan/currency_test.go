package scan

import "testing"

func TestDetectCurrencyMarks(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Toplam: 125,00 ₺", "TRY"},
		{"Ödenecek Tutar: 125,00 TL", "TRY"},
		{"Yalnız YüzYirmiBeş Türk Lirası", "TRY"},
		{"Amount due: 12.50 USD", "USD"},
		{"Total: $12.50", "USD"},
		{"Betrag: 12,50 EUR", "EUR"},
		{"Totale: 12,50 €", "EUR"},
	}
	for _, c := range cases {
		f := detectCurrency(NewText(c.raw))
		if f.Value != c.want {
			t.Errorf("%q -> %q, want %q", c.raw, f.Value, c.want)
		}
		if f.Confidence != confCurrencyMark {
			t.Errorf("%q: confidence = %v, want %v", c.raw, f.Confidence, confCurrencyMark)
		}
	}
}

func TestDetectCurrencyDefault(t *testing.T) {
	f := detectCurrency(NewText("hiç para birimi yok"))
	if f.Value != "TRY" {
		t.Fatalf("default currency = %q, want TRY", f.Value)
	}
	if f.Confidence != confCurrencyDefault {
		t.Errorf("confidence = %v, want %v", f.Confidence, confCurrencyDefault)
	}
}
