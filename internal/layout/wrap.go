package layout

import "strings"

// MeasureFunc returns the rendered width of a string in pixels. The font,
// size and rasterizer behind it are the caller's business.
type MeasureFunc func(s string) int

// WrapText greedily wraps text into lines no wider than maxWidth pixels.
// A single word wider than maxWidth gets its own line, never split or
// dropped. Joining the returned lines with single spaces reproduces the
// input word sequence exactly.
func WrapText(text string, measure MeasureFunc, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
