package scan

import "strings"

// Text holds one OCR blob in the two forms extraction needs: the original
// line-structured text for evidence/display and a folded lower-case copy for
// matching.
type Text struct {
	Raw   string
	Low   string
	lines []string
}

// NewText prepares a raw OCR blob for extraction.
func NewText(raw string) *Text {
	return &Text{
		Raw:   raw,
		Low:   turkishLower(raw),
		lines: strings.Split(raw, "\n"),
	}
}

// Evidence returns the first original line containing match (case folded),
// trimmed for display. Empty slice when the match spans lines or is absent.
func (t *Text) Evidence(match string) []string {
	m := turkishLower(strings.TrimSpace(match))
	if m == "" {
		return nil
	}
	for _, line := range t.lines {
		if strings.Contains(turkishLower(line), m) {
			return []string{clipLine(line)}
		}
	}
	return nil
}

// Lines exposes the original lines for extractors that scan positionally
// (e.g. the biller first-line fallback).
func (t *Text) Lines() []string {
	return t.lines
}

// turkishLower lower-cases text for matching. The Turkish dotted/dotless I
// variants are folded onto plain "i" first: strings.ToLower turns U+0130 into
// "i" plus a combining dot, which breaks substring keyword lookups. Keyword
// tables in this package are written in the same folded form ("iski",
// "mayis", "akaryakit").
func turkishLower(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'İ', 'I', 'ı':
			return 'i'
		}
		return r
	}, s)
	return strings.ToLower(s)
}

const maxEvidenceLen = 100

func clipLine(line string) string {
	line = strings.TrimSpace(line)
	if len(line) <= maxEvidenceLen {
		return line
	}
	// cut on a rune boundary
	b := []byte(line[:maxEvidenceLen])
	for len(b) > 0 && b[len(b)-1]&0xC0 == 0x80 {
		b = b[:len(b)-1]
	}
	return string(b)
}

// truncate shortens text for the rawText echo in results.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	b := []byte(s[:max])
	for len(b) > 0 && b[len(b)-1]&0xC0 == 0x80 {
		b = b[:len(b)-1]
	}
	return string(b)
}
