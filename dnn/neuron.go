package dnn

// Neuron is the smallest unit of the network: a current activation value plus
// one outgoing weight per neuron of the next layer. Output-layer neurons carry
// an empty weight vector since nothing lies downstream of them.
type Neuron struct {
	Activation float64
	Weights    []float64
}

// Layer is an ordered, fixed-size collection of neurons. The length is bound
// at network construction time and never changes.
type Layer []Neuron

// Size returns the number of neurons in the layer.
func (l Layer) Size() int {
	return len(l)
}

// Activations copies the current activation of every neuron into a new slice.
func (l Layer) Activations() []float64 {
	out := make([]float64, len(l))
	for i := range l {
		out[i] = l[i].Activation
	}
	return out
}

// SetActivations overwrites every activation in the layer from values.
func (l Layer) SetActivations(values []float64) error {
	if len(values) != len(l) {
		return errSize("SetActivations", len(l), len(values))
	}
	for i := range l {
		l[i].Activation = values[i]
	}
	return nil
}
