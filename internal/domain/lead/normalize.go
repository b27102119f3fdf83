package lead

import (
	"strings"
	"unicode"
)

// CanonicalLocation reduces a free-text location to the key used for the
// per-location counters: lowercased, punctuation treated as spaces, runs of
// whitespace collapsed.
func CanonicalLocation(loc string) string {
	lowered := strings.ToLower(strings.TrimSpace(loc))
	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
