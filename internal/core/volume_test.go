package core

import (
	"math"
	"testing"
)

func TestCalculateVolume(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		length   float64
		quantity float64
		want     float64
	}{
		{"acacia posts batch", 14, 18, 3, 166, 10.013},
		{"thinner batch", 12, 16, 2.5, 290, 11.161},
		{"single piece", 20, 20, 4, 1, 0.126},
		{"zero quantity", 14, 18, 3, 0, 0},
		{"negative length", 14, 18, -3, 166, 0},
		{"zero diameter", 0, 18, 3, 166, 0},
		{"inverted diameter range", 18, 14, 3, 166, 0},
		{"nan input", math.NaN(), 18, 3, 166, 0},
		{"infinite input", 14, math.Inf(1), 3, 166, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateVolume(tt.from, tt.to, tt.length, tt.quantity)
			if got != tt.want {
				t.Errorf("CalculateVolume(%g, %g, %g, %g) = %v, want %v",
					tt.from, tt.to, tt.length, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestCalculateVolumeRounding(t *testing.T) {
	got := CalculateVolume(10, 10, 1, 1)
	if got != 0.008 {
		t.Errorf("expected 3-decimal rounding, got %v", got)
	}
}
