package recipeschema

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"PT1H30M", 90, true},
		{"PT45M", 45, true},
		{"PT2H", 120, true},
		{"PT1H30M15S", 90, true},
		{"PT90S", 0, false},
		{"PT0H0M", 0, false},
		{"", 0, false},
		{"45 minutes", 0, false},
		{"P1DT1H", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			minutes, ok := ParseMinutes(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseMinutes(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if minutes != tt.minutes {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, minutes, tt.minutes)
			}
		})
	}
}
