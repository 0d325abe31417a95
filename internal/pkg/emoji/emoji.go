// Package emoji canonicalizes emoji strings for use as reaction grouping
// keys, so visually distinct skin tones collapse into one bucket.
package emoji

import "strings"

// Fitzpatrick skin-tone modifiers, U+1F3FB through U+1F3FF.
const (
	skinToneFirst = 0x1F3FB
	skinToneLast  = 0x1F3FF
)

// Canonicalize strips skin-tone modifier code points from s. ZWJ sequences
// and variation selectors are kept intact, so composed emoji such as family
// or flag sequences keep their identity.
func Canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= skinToneFirst && r <= skinToneLast {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
