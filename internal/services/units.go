package services

// Conversion constants shared by the metrics calculations.
const (
	KilogramsPerPound = 0.453592
	MetersPerInch     = 0.0254
)

func PoundsToKilograms(pounds float64) float64 {
	return pounds * KilogramsPerPound
}

func KilogramsToPounds(kilograms float64) float64 {
	return kilograms / KilogramsPerPound
}

func InchesToMeters(inches float64) float64 {
	return inches * MetersPerInch
}

func MetersToInches(meters float64) float64 {
	return meters / MetersPerInch
}
