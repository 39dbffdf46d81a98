package text

import (
	"unicode"
)

// Direction is the writing direction of a run of text. Cell and header runs
// whose text is RTL get <w:rtl/> so Word lays them out right to left.
type Direction int

const (
	LTR     Direction = iota // Latin, Cyrillic, Greek, CJK ...
	RTL                      // Hebrew, Arabic and related scripts
	Neutral                  // digits, punctuation, blanks
)

// String returns "LTR", "RTL" or "Neutral".
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// rtlScripts are the scripts written right to left.
var rtlScripts = []*unicode.RangeTable{
	unicode.Hebrew,
	unicode.Arabic,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional characters
// and returns the direction with the higher count, or Neutral if no strong
// directional characters are present.
func DetectDirection(s string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range s {
		switch GetCharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// IsRTL reports whether s is predominantly right-to-left.
func IsRTL(s string) bool {
	return DetectDirection(s) == RTL
}

// GetCharDirection returns the inherent direction of a single Unicode character.
// Digits, punctuation, whitespace, symbols and format marks are Neutral;
// Hebrew, Arabic, Syriac, Thaana and N'Ko return RTL; letters of every
// other script return LTR.
func GetCharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) ||
		unicode.IsSymbol(r) || unicode.Is(unicode.Cf, r) {
		return Neutral
	}
	if unicode.In(r, rtlScripts...) {
		return RTL
	}
	if unicode.IsLetter(r) || unicode.IsMark(r) {
		return LTR
	}
	return Neutral
}
