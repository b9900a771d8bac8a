package utils

import "strings"

// Slugify normalizes a title into a URL slug: lowercase, runs of anything
// outside [a-z0-9-] collapse into a single hyphen, leading and trailing
// hyphens trimmed. Applying it twice yields the same result.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
