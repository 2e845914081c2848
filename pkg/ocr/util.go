package ocr

// Snippet shortens recognized text for log lines.
func Snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
