package dnn

import "fmt"

func errSize(op string, want, got int) error {
	return fmt.Errorf("%s: size mismatch: want %d, got %d", op, want, got)
}

// Propagate recomputes the activation of every neuron in dst as the sigmoid
// of the weighted sum of the src activations. src is read but never mutated.
// A source weight vector shorter or longer than dst is a precondition
// violation and fails before any destination activation is touched.
func Propagate(src, dst Layer) error {
	for i := range src {
		if len(src[i].Weights) != len(dst) {
			return fmt.Errorf("propagate: source neuron %d has %d weights, destination has %d neurons",
				i, len(src[i].Weights), len(dst))
		}
	}
	for j := range dst {
		raw := 0.0
		for i := range src {
			raw += src[i].Weights[j] * src[i].Activation
		}
		dst[j].Activation = Sigmoid(raw)
	}
	return nil
}
