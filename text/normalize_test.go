package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim", "  total traffic  ", "total traffic"},
		{"collapse", "total \t\n traffic", "total traffic"},
		{"bidi marks", "\u200fתנועה כוללת\u200e", "תנועה כוללת"},
		{"nbsp", "a\u00a0b", "a b"},
		{"nfc", "e\u0301", "\u00e9"},
		{"empty", "   ", ""},
		{"zero width space kept", "\u200b", "\u200b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(" \t\n") {
		t.Error("IsBlank(whitespace) = false, want true")
	}
	if IsBlank("-") {
		t.Error("IsBlank(dash) = true, want false")
	}
}
