package scrollspy

import "testing"

func TestParseOffset(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"64", 64},
		{" 72.5 ", 72.5},
		{"0", 0},
		{"", DefaultOffset},
		{"tall", DefaultOffset},
		{"-20", DefaultOffset},
		{"NaN", DefaultOffset},
		{"Inf", DefaultOffset},
		{"+Inf", DefaultOffset},
		{"-Inf", DefaultOffset},
		{"infinity", DefaultOffset},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseOffset(tt.raw); got != tt.want {
				t.Fatalf("ParseOffset(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
