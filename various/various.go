package various

import (
	"log"
	"math"
)

// Verbose toggles the progress logging of the generators.
var Verbose = true

// Logf logs via the standard logger if Verbose is set.
func Logf(format string, v ...interface{}) {
	if Verbose {
		log.Printf(format, v...)
	}
}

// RoundToDecimals rounds the given float to the given number of decimals.
func RoundToDecimals(v, d float64) float64 {
	m := math.Pow(10, d)
	return math.Round(v*m) / m
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
