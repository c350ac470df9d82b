package services

import (
	"strings"
	"unicode/utf8"
)

// abridgeLimit is the character count past which no further lines are added.
const abridgeLimit = 1000

// Abridge builds a bounded preview of body by accumulating newline-prefixed
// lines in order. The length check runs before each append, so the result may
// overshoot the limit by up to one line; the boundary is "stop after the first
// line that pushes the total past the limit", not a hard truncation. Bodies at
// or under the limit come back whole, carrying the leading newline the
// accumulation injects. An empty body stays empty.
func Abridge(body string) string {
	if body == "" {
		return ""
	}

	var b strings.Builder
	count := 0
	for _, line := range strings.Split(body, "\n") {
		if count > abridgeLimit {
			break
		}
		b.WriteByte('\n')
		b.WriteString(line)
		count += 1 + utf8.RuneCountInString(line)
	}
	return b.String()
}
