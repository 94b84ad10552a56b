package chart

import (
	"fmt"
	"math"
)

// Round1 rounds to one decimal place, half away from zero
func Round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// FormatTemperature prints an absolute temperature, e.g. "8.2"
func FormatTemperature(v float64) string {
	return fmt.Sprintf("%.1f", Round1(v))
}

// FormatSigned prints a variance with an explicit "+" when positive, e.g. "+1.0" or "-0.5"
func FormatSigned(v float64) string {
	r := Round1(v)
	if r > 0 {
		return fmt.Sprintf("+%.1f", r)
	}
	return fmt.Sprintf("%.1f", r)
}
