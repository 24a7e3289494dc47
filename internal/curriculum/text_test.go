package curriculum

import "testing"

func TestNumberWord(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "21"},
		{-1, "-1"},
	}

	for _, tt := range tests {
		if got := NumberWord(tt.n); got != tt.want {
			t.Errorf("NumberWord(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		noun  string
		count int
		want  string
	}{
		{"apple", 1, "apple"},
		{"apple", 0, "apples"},
		{"apple", 3, "apples"},
		{"butterfly", 2, "butterflies"},
		{"day", 2, "days"},
		{"glass", 2, "glass"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.noun, tt.count); got != tt.want {
			t.Errorf("Pluralize(%q, %d) = %q, want %q", tt.noun, tt.count, got, tt.want)
		}
	}
}

func TestFormatCountSet(t *testing.T) {
	tests := []struct {
		name  string
		count int
		noun  string
		emoji string
		want  string
	}{
		{"small set drawn", 3, "star", "⭐", "⭐⭐⭐ (3 stars)"},
		{"single", 1, "car", "🚗", "🚗 (1 car)"},
		{"zero not drawn", 0, "car", "🚗", "0 cars"},
		{"negative not drawn", -1, "car", "🚗", "-1 cars"},
		{"too many to draw", 12, "bead", "🔹", "12 beads"},
		{"no emoji", 4, "block", "", "4 blocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCountSet(tt.count, tt.noun, tt.emoji); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
