package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// bidiMarks are invisible directional formatting characters that word
// processors insert around mixed-direction text.
var bidiMarks = strings.NewReplacer(
	"\u200e", "", "\u200f", "",
	"\u202a", "", "\u202b", "", "\u202c", "", "\u202d", "", "\u202e", "",
	"\u2066", "", "\u2067", "", "\u2068", "", "\u2069", "",
)

// Normalize prepares extracted text for marker comparison: NFC composition,
// directional marks removed, runs of whitespace collapsed to one space, and
// the result trimmed.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = bidiMarks.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
