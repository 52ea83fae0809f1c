// Package textclean implements the message content cleaning predicate
// used to normalize exported Telegram messages.
package textclean

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"
)

// disallowedChars matches runs of characters outside the allow-list:
// ASCII letters, digits, whitespace, and . , ! ? ; : ( ) [ ] @ &
var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?;:()\[\]@&]+`)

// Clean normalizes message content. It removes emoji, strips every
// character outside the allow-list, collapses whitespace runs
// (including tabs and newlines) into single spaces, and trims the
// result. Clean is pure and defined for any input, including the
// empty string.
func Clean(text string) string {
	text = gomoji.RemoveEmojis(text)
	text = disallowedChars.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))

	var space bool
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}

	return strings.TrimSpace(b.String())
}
