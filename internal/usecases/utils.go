package usecases

import (
	"math"
	"time"
)

// roundPrice rounds a monetary amount to 2 decimal places
func roundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// hoursBetween returns the fractional hours between two instants
func hoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
