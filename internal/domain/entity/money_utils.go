package entity

import "math"

// PriceToMinorUnits converts a price in major units to cents, rounding half away from zero
func PriceToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// MinorUnitsToPrice converts cents to major units
func MinorUnitsToPrice(amount int64) float64 {
	return float64(amount) / 100
}

// PricesEqual compares two prices at cent precision
func PricesEqual(a, b float64) bool {
	return PriceToMinorUnits(a) == PriceToMinorUnits(b)
}
