package scan

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

func TestExtractDueDateLabeled(t *testing.T) {
	txt := NewText("ENERJİSA\nSon Ödeme Tarihi: 15.09.2026\nÖdenecek Tutar: 350,75 TL\n")
	f := extractDueDate(txt, testNow)
	if f.Value != "2026-09-15" {
		t.Fatalf("due date = %q, want 2026-09-15", f.Value)
	}
	if f.Confidence != confDateLabeled {
		t.Errorf("confidence = %v, want %v", f.Confidence, confDateLabeled)
	}
}

func TestExtractDueDateBare(t *testing.T) {
	txt := NewText("Fatura\n15.09.2026\n")
	f := extractDueDate(txt, testNow)
	if f.Value != "2026-09-15" {
		t.Fatalf("due date = %q, want 2026-09-15", f.Value)
	}
	if f.Confidence != confDateBare {
		t.Errorf("confidence = %v, want %v", f.Confidence, confDateBare)
	}
}

func TestExtractDueDateTwoDigitYear(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 15.09.26\n")
	f := extractDueDate(txt, testNow)
	if f.Value != "2026-09-15" {
		t.Fatalf("due date = %q, want 2026-09-15", f.Value)
	}
}

func TestExtractDueDateTurkishMonth(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 15 Kasım 2026\n")
	f := extractDueDate(txt, testNow)
	if f.Value != "2026-11-15" {
		t.Fatalf("due date = %q, want 2026-11-15", f.Value)
	}
	if f.Confidence != confDateLabeled {
		t.Errorf("confidence = %v, want %v", f.Confidence, confDateLabeled)
	}
}

func TestExtractDueDateSeparators(t *testing.T) {
	for _, raw := range []string{"15.09.2026", "15/09/2026", "15-09-2026"} {
		f := extractDueDate(NewText("Vade Tarihi: "+raw), testNow)
		if f.Value != "2026-09-15" {
			t.Errorf("%q -> %q, want 2026-09-15", raw, f.Value)
		}
	}
}

func TestExtractDueDateInvalidCalendar(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 31.02.2026\n")
	if f := extractDueDate(txt, testNow); f.Found() {
		t.Fatalf("Feb 31 produced candidate %q", f.Value)
	}
}

func TestExtractDueDatePastRejected(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 01.01.2020\n")
	if f := extractDueDate(txt, testNow); f.Found() {
		t.Fatalf("stale date produced candidate %q", f.Value)
	}
}

func TestExtractDueDateTooFarAhead(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 01.01.2040\n")
	if f := extractDueDate(txt, testNow); f.Found() {
		t.Fatalf("far-future date produced candidate %q", f.Value)
	}
}

// The window tracks the injected clock: the same text flips between valid and
// stale as "now" moves.
func TestDueDateWindowFollowsClock(t *testing.T) {
	txt := NewText("Son Ödeme Tarihi: 15.09.2026\n")
	if f := extractDueDate(txt, testNow); !f.Found() {
		t.Fatalf("date inside window not found")
	}
	later := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if f := extractDueDate(txt, later); f.Found() {
		t.Fatalf("date behind the clock still accepted: %q", f.Value)
	}
}

// A labeled line with an unparseable date must not silently fall back to an
// unrelated bare date elsewhere at labeled confidence.
func TestDueDateLabeledLineWins(t *testing.T) {
	txt := NewText("Fatura Tarihi: 20.08.2026\nSon Ödeme Tarihi: 15.09.2026\n")
	f := extractDueDate(txt, testNow)
	if f.Value != "2026-09-15" {
		t.Fatalf("due date = %q, want the labeled line's 2026-09-15", f.Value)
	}
}
