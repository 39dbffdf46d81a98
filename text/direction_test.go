package text

import (
	"testing"
)

func TestGetCharDirection(t *testing.T) {
	tests := []struct {
		char rune
		want Direction
	}{
		{'א', RTL},      // U+05D0
		{'ש', RTL},      // U+05E9
		{'\uFB2A', RTL}, // Hebrew presentation form shin
		{'م', RTL},      // U+0645
		{'ܐ', RTL},      // Syriac alaph
		{'k', LTR},
		{'é', LTR},
		{'Ж', LTR},
		{'中', LTR},
		{'7', Neutral},
		{'٣', Neutral}, // Arabic-Indic digit three
		{'.', Neutral},
		{'%', Neutral},
		{' ', Neutral},
		{'\u200b', Neutral}, // zero-width space
		{'\u200f', Neutral}, // right-to-left mark
	}

	for _, tt := range tests {
		if got := GetCharDirection(tt.char); got != tt.want {
			t.Errorf("GetCharDirection(%q U+%04X) = %v, want %v", tt.char, tt.char, got, tt.want)
		}
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"hebrew headline", "ביטויים בקידום", RTL},
		{"hebrew label with numbers", "עלה למקום 3 מ-7", RTL},
		{"latin keyword", "running shoes", LTR},
		{"latin keyword in hebrew sentence", "קידום אתרים seo", RTL},
		{"mostly latin", "SEO report של", LTR},
		{"position only", "12", Neutral},
		{"decimal position", "7.5", Neutral},
		{"invisible label", "\u200b", Neutral},
		{"empty", "", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ביטויים בקידום") {
		t.Error("IsRTL(hebrew) = false, want true")
	}
	if IsRTL("keyword 12") {
		t.Error("IsRTL(latin) = true, want false")
	}
	if IsRTL("12") {
		t.Error("IsRTL(digits) = true, want false")
	}
}

func TestDirection_String(t *testing.T) {
	for d, want := range map[Direction]string{
		LTR:           "LTR",
		RTL:           "RTL",
		Neutral:       "Neutral",
		Direction(42): "Unknown",
	} {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, got, want)
		}
	}
}
