package core

import "math"

// CalculateVolume computes the cubic-meter volume of a batch of logs from the
// diameter range (cm), length (m) and piece count, using a right-cylinder
// approximation on the average diameter. Any invalid input combination
// (non-positive values, from > to, non-finite numbers) yields 0 rather than
// an error; form handlers rely on this safe default.
//
// The result is rounded to 3 decimal places.
func CalculateVolume(diameterFromCm, diameterToCm, lengthM, quantity float64) float64 {
	if !isFinite(diameterFromCm) || !isFinite(diameterToCm) || !isFinite(lengthM) || !isFinite(quantity) {
		return 0
	}
	if diameterFromCm <= 0 || diameterToCm <= 0 || lengthM <= 0 || quantity <= 0 || diameterFromCm > diameterToCm {
		return 0
	}
	avgDiameterM := (diameterFromCm + diameterToCm) / 2 / 100
	volumePerPiece := math.Pi * math.Pow(avgDiameterM/2, 2) * lengthM
	return round3(volumePerPiece * quantity)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
