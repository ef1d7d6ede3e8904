package postprocess

import (
	"math"
)

// Sigmoid squashes a logit into the range [0,1]
func Sigmoid(v float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(v))))
}

// unsigmoid is the inverse of Sigmoid and converts a probability back into
// logit space so thresholds can be compared against raw model output
func unsigmoid(p float32) float32 {

	if p <= 0 {
		return float32(math.Inf(-1))
	}

	if p >= 1 {
		return float32(math.Inf(1))
	}

	return float32(math.Log(float64(p) / (1.0 - float64(p))))
}

// round2 rounds the value to two decimal places
func round2(v float32) float32 {
	return float32(math.Round(float64(v)*100) / 100)
}

// clamp restricts the value to be within the range min and max
func clamp(val, min, max float32) float32 {

	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}

// probability restricts a decoded score to [0,1], a NaN from a corrupt buffer
// becomes 0
func probability(v float32) float32 {

	if math.IsNaN(float64(v)) {
		return 0
	}

	return clamp(v, 0, 1)
}

// toFloat64 copies a float32 buffer so it can be used with the gonum packages
func toFloat64(buf []float32) []float64 {

	out := make([]float64, len(buf))

	for i, v := range buf {
		out[i] = float64(v)
	}

	return out
}
