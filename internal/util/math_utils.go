package util

import "math"

// RoundTo rounds value to the given number of decimal places, half away from zero.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}
