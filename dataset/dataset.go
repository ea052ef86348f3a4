// Package dataset loads and prepares the digit samples the network trains
// and evaluates on. All file I/O lives here; the network core only ever sees
// fully materialized feature vectors and integer labels.
package dataset

import "fmt"

// Sample is one training or evaluation example: a normalized feature vector
// and its ground-truth class.
type Sample struct {
	Features []float64
	Label    int
}

// OneHot returns a target vector of length n with 1 at label and 0 elsewhere.
func OneHot(label, n int) ([]float64, error) {
	if label < 0 || label >= n {
		return nil, fmt.Errorf("one-hot: label %d out of range [0,%d)", label, n)
	}
	target := make([]float64, n)
	target[label] = 1
	return target, nil
}
