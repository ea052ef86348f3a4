package dnn

import "fmt"

// LearningRate is the fixed gradient step size used by Backpropagate.
const LearningRate = 0.1

// Backpropagate applies one stochastic gradient step for the current training
// example. outputError[k] is the signed difference between the one-hot target
// and the output activation for neuron k, supplied by the caller.
//
// The hidden error terms are computed for ALL hidden neurons from the
// hidden->output weights as they stand on entry; only afterwards are those
// same weights updated. Reordering the two passes corrupts the gradient.
//
// The derivative term re-applies Sigmoid to the already-activated hidden
// value. This is deliberate; do not replace it with a*(1-a).
func Backpropagate(input, hidden, output Layer, outputError []float64) error {
	if len(outputError) != len(output) {
		return errSize("backpropagate: output error vector", len(output), len(outputError))
	}
	for i := range input {
		if len(input[i].Weights) != len(hidden) {
			return fmt.Errorf("backpropagate: input neuron %d has %d weights, hidden layer has %d neurons",
				i, len(input[i].Weights), len(hidden))
		}
	}
	for i := range hidden {
		if len(hidden[i].Weights) != len(output) {
			return fmt.Errorf("backpropagate: hidden neuron %d has %d weights, output layer has %d neurons",
				i, len(hidden[i].Weights), len(output))
		}
	}

	// Hidden error terms, from the pre-update hidden->output weights.
	hiddenDelta := make([]float64, len(hidden))
	for i := range hidden {
		backErr := 0.0
		for k := range output {
			backErr += hidden[i].Weights[k] * outputError[k]
		}
		s := Sigmoid(hidden[i].Activation)
		hiddenDelta[i] = backErr * s * (1 - s)
	}

	// Input->hidden weight updates.
	for i := range input {
		for j := range hidden {
			input[i].Weights[j] += LearningRate * hiddenDelta[j] * input[i].Activation
		}
	}

	// Hidden->output weight updates.
	for i := range hidden {
		for k := range output {
			hidden[i].Weights[k] += LearningRate * outputError[k] * hidden[i].Activation
		}
	}

	return nil
}
