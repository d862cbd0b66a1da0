package format

// Ellipsize returns s unchanged when it has at most maxLen runes, otherwise
// its first maxLen runes followed by "...". The suffix is not counted
// against maxLen.
func Ellipsize(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
