package expand

import (
	"math"
	"testing"
)

func TestExtractLabelNumber(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"C12", 12},
		{"P015", 15},
		{"ABC3", 3},
		{"X", NoNumber},
		{"", NoNumber},
		{"1A2B3", 123},
		{"P-7", 7},
		{"P1.5", 15},
		{"+42", 42},
		{"000", 0},
		{"ÄÖ9ü", 9},
	}
	for _, tt := range tests {
		if got := ExtractLabelNumber(tt.label); got != tt.want {
			t.Errorf("ExtractLabelNumber(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestExtractLabelNumber_Saturates(t *testing.T) {
	label := "P"
	for i := 0; i < 40; i++ {
		label += "9"
	}
	if got := ExtractLabelNumber(label); got != math.MaxInt {
		t.Errorf("ExtractLabelNumber(long) = %d, want math.MaxInt", got)
	}

	// Saturation is sticky: trailing digits after overflow do not wrap.
	if got := ExtractLabelNumber(label + "0000"); got != math.MaxInt {
		t.Errorf("ExtractLabelNumber(long+0000) = %d, want math.MaxInt", got)
	}
}
