// Package units converts model-space measurements to real-world units.
// Reconstructed roof models are expressed in meters; customer-facing
// reports use feet and square feet.
package units

import "math"

const (
	feetPerMeter     = 3.28084
	sqFeetPerSqMeter = 10.7639
)

// MetersToFeet converts a linear model-space measurement to feet
func MetersToFeet(meters float64) float64 {
	return meters * feetPerMeter
}

// FeetToMeters converts feet back to model-space meters
func FeetToMeters(feet float64) float64 {
	return feet / feetPerMeter
}

// SquareMetersToSquareFeet converts a model-space area to square feet
func SquareMetersToSquareFeet(area float64) float64 {
	return area * sqFeetPerSqMeter
}

// SquareFeetToSquareMeters converts square feet back to model-space area
func SquareFeetToSquareMeters(area float64) float64 {
	return area / sqFeetPerSqMeter
}

// RoundArea rounds an area to the nearest whole square foot. Display
// only; percentage math must use the unrounded value.
func RoundArea(area float64) float64 {
	return math.Round(area)
}
