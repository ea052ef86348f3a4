package dnn

import "math"

// Sigmoid returns 1 / (1 + e^-x). The output is strictly inside (0,1) for
// finite x; extreme inputs saturate to 0 or 1 in float64, which is acceptable
// for this network.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
