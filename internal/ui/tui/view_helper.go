package tui

// clampString shortens s to at most maxLen runes, ending in an ellipsis when cut.
func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
