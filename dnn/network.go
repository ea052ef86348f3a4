package dnn

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Topology fixes the three layer sizes of a network.
type Topology struct {
	InputNum  int
	HiddenNum int
	OutputNum int
}

// Network owns exactly three layers: input, hidden, output. Weights live on
// the source side of each connection, indexed by position in the next layer.
type Network struct {
	Input  Layer
	Hidden Layer
	Output Layer
}

// NewNetwork builds a network for the given topology. Every non-output neuron
// gets a weight vector of length equal to the next layer, drawn from a
// uniform distribution over [-1/sqrt(fanOut), 1/sqrt(fanOut)). The same seed
// reproduces the same weights.
func NewNetwork(t Topology, seed uint64) (*Network, error) {
	if t.InputNum <= 0 || t.HiddenNum <= 0 || t.OutputNum <= 0 {
		return nil, fmt.Errorf("new network: all layer sizes must be positive, got %d %d %d",
			t.InputNum, t.HiddenNum, t.OutputNum)
	}
	src := rand.NewSource(seed)
	net := &Network{
		Input:  newLayer(t.InputNum, t.HiddenNum, src),
		Hidden: newLayer(t.HiddenNum, t.OutputNum, src),
		Output: newLayer(t.OutputNum, 0, src),
	}
	return net, nil
}

func newLayer(size, nextSize int, src rand.Source) Layer {
	l := make(Layer, size)
	if nextSize == 0 {
		return l
	}
	bound := 1 / math.Sqrt(float64(nextSize))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: src}
	for i := range l {
		w := make([]float64, nextSize)
		for j := range w {
			w[j] = dist.Rand()
		}
		l[i].Weights = w
	}
	return l
}

// Forward sets the input activations from features and runs the two
// propagation steps, returning a copy of the output activations. It is a
// pure function of the current weights and features: repeated calls without
// intervening weight changes give identical results.
func (net *Network) Forward(features []float64) ([]float64, error) {
	if err := net.Input.SetActivations(features); err != nil {
		return nil, fmt.Errorf("forward: input features: %w", err)
	}
	if err := Propagate(net.Input, net.Hidden); err != nil {
		return nil, err
	}
	if err := Propagate(net.Hidden, net.Output); err != nil {
		return nil, err
	}
	return net.Output.Activations(), nil
}

// Backpropagate runs one weight update against the supplied output error.
func (net *Network) Backpropagate(outputError []float64) error {
	return Backpropagate(net.Input, net.Hidden, net.Output, outputError)
}

// Predict runs a forward pass and returns the index of the most activated
// output neuron. Ties go to the lowest index.
func (net *Network) Predict(features []float64) (int, error) {
	out, err := net.Forward(features)
	if err != nil {
		return 0, err
	}
	return Argmax(out), nil
}

// Argmax returns the first index holding the maximum value.
func Argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// Clone deep-copies the network, weights and activations included. Evaluation
// of a frozen network can then run on several clones in parallel, since a
// forward pass still mutates the activations of the network it runs on.
func (net *Network) Clone() *Network {
	return &Network{
		Input:  cloneLayer(net.Input),
		Hidden: cloneLayer(net.Hidden),
		Output: cloneLayer(net.Output),
	}
}

func cloneLayer(l Layer) Layer {
	out := make(Layer, len(l))
	for i := range l {
		out[i].Activation = l[i].Activation
		if l[i].Weights != nil {
			out[i].Weights = append([]float64(nil), l[i].Weights...)
		}
	}
	return out
}
