package scan

import "testing"

func TestExtractBillerKnown(t *testing.T) {
	f, cat := extractBiller(NewText("ENERJİSA AYEDAŞ\nFatura\n"))
	if f.Value != "Enerjisa" {
		t.Fatalf("biller = %q, want Enerjisa", f.Value)
	}
	if cat != CategoryElectricity {
		t.Errorf("category = %q, want %q", cat, CategoryElectricity)
	}
	if f.Confidence != confBillerKnown {
		t.Errorf("confidence = %v, want %v", f.Confidence, confBillerKnown)
	}
}

// İSKİ exercises the dotted-I fold: strings.ToLower alone would turn İ into
// "i" plus a combining dot and the keyword lookup would miss.
func TestExtractBillerDottedCapitalI(t *testing.T) {
	f, cat := extractBiller(NewText("İSKİ SU VE KANALİZASYON\n"))
	if f.Value != "İSKİ" {
		t.Fatalf("biller = %q, want İSKİ", f.Value)
	}
	if cat != CategoryWater {
		t.Errorf("category = %q, want %q", cat, CategoryWater)
	}
}

// Keyword order is the category priority: electricity beats water when both
// vocabularies appear.
func TestExtractBillerPriority(t *testing.T) {
	_, cat := extractBiller(NewText("İSKİ binası yanı ELEKTRİK dağıtım\n"))
	if cat != CategoryElectricity {
		t.Fatalf("category = %q, want %q", cat, CategoryElectricity)
	}
}

// Generic keywords have no canonical display name; the matched span keeps the
// original casing from the text.
func TestExtractBillerGenericKeywordSpan(t *testing.T) {
	f, cat := extractBiller(NewText("BAŞKENT ELEKTRİK PERAKENDE A.Ş.\n"))
	if f.Value != "ELEKTRİK" {
		t.Fatalf("biller = %q, want ELEKTRİK", f.Value)
	}
	if cat != CategoryElectricity {
		t.Errorf("category = %q, want %q", cat, CategoryElectricity)
	}
}

func TestExtractBillerFallbackHeader(t *testing.T) {
	f, cat := extractBiller(NewText("Mahalle Yönetim Ofisi\nAidat bildirimi\n"))
	if f.Value != "Mahalle Yönetim Ofisi" {
		t.Fatalf("biller = %q, want first header line", f.Value)
	}
	if f.Confidence != confBillerHeuristic {
		t.Errorf("confidence = %v, want %v", f.Confidence, confBillerHeuristic)
	}
	if cat != "" {
		t.Errorf("category = %q, want empty for fallback", cat)
	}
}

// Lines that open with digits look like subscriber ids, not company headers.
func TestExtractBillerFallbackSkipsDigitLines(t *testing.T) {
	f, _ := extractBiller(NewText("12345678\nÖrnek Havagazı Ofisi\n"))
	if f.Value != "Örnek Havagazı Ofisi" {
		t.Fatalf("biller = %q, want the second line", f.Value)
	}
}

func TestExtractBillerNoCandidate(t *testing.T) {
	f, _ := extractBiller(NewText("12345\nab\n??\n"))
	if f.Found() {
		t.Fatalf("no header should yield no candidate, got %q", f.Value)
	}
}
