package dnn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackpropagateFixedScenario checks the hand-computable 2/2/2 case: all
// weights 0.5, input [1,0], one step with outputError [1,-1].
func TestBackpropagateFixedScenario(t *testing.T) {
	net := &Network{
		Input: Layer{
			{Weights: []float64{0.5, 0.5}},
			{Weights: []float64{0.5, 0.5}},
		},
		Hidden: Layer{
			{Weights: []float64{0.5, 0.5}},
			{Weights: []float64{0.5, 0.5}},
		},
		Output: make(Layer, 2),
	}

	_, err := net.Forward([]float64{1, 0})
	require.NoError(t, err)

	h := 1.0 / (1.0 + math.Exp(-0.5)) // both hidden activations
	require.InDelta(t, h, net.Hidden[0].Activation, 1e-12)

	require.NoError(t, net.Backpropagate([]float64{1, -1}))

	// The backpropagated error per hidden neuron is 0.5*1 + 0.5*(-1) = 0, so
	// every hidden delta is zero and the input->hidden weights stay put.
	for i := range net.Input {
		for j := range net.Input[i].Weights {
			assert.InDelta(t, 0.5, net.Input[i].Weights[j], 1e-6)
		}
	}
	// Hidden->output updates: w += 0.1 * outputError[k] * hiddenActivation.
	for i := range net.Hidden {
		assert.InDelta(t, 0.5+0.1*1*h, net.Hidden[i].Weights[0], 1e-6)
		assert.InDelta(t, 0.5+0.1*-1*h, net.Hidden[i].Weights[1], 1e-6)
	}
}

// TestBackpropagateMatchesFormula re-derives every new weight from snapshots
// taken before the call. The hidden deltas must come from the hidden->output
// weights as they were on entry, even though the same call updates them.
func TestBackpropagateMatchesFormula(t *testing.T) {
	net := &Network{
		Input: Layer{
			{Weights: []float64{0.2, -0.1}},
			{Weights: []float64{0.4, 0.3}},
		},
		Hidden: Layer{
			{Weights: []float64{0.6, -0.2}},
			{Weights: []float64{0.1, 0.5}},
		},
		Output: make(Layer, 2),
	}
	features := []float64{0.8, 0.3}
	outputError := []float64{0.4, -0.7}

	_, err := net.Forward(features)
	require.NoError(t, err)

	inputAct := net.Input.Activations()
	hiddenAct := net.Hidden.Activations()
	outputAct := net.Output.Activations()
	inputW := snapshotWeights(net.Input)
	hiddenW := snapshotWeights(net.Hidden)

	require.NoError(t, net.Backpropagate(outputError))

	hiddenDelta := make([]float64, len(hiddenAct))
	for i := range hiddenDelta {
		backErr := 0.0
		for k := range outputError {
			backErr += hiddenW[i][k] * outputError[k]
		}
		s := Sigmoid(hiddenAct[i])
		hiddenDelta[i] = backErr * s * (1 - s)
	}
	for i := range net.Input {
		for j := range net.Input[i].Weights {
			want := inputW[i][j] + 0.1*hiddenDelta[j]*inputAct[i]
			assert.InDelta(t, want, net.Input[i].Weights[j], 1e-12, "input weight [%d][%d]", i, j)
		}
	}
	for i := range net.Hidden {
		for k := range net.Hidden[i].Weights {
			want := hiddenW[i][k] + 0.1*outputError[k]*hiddenAct[i]
			assert.InDelta(t, want, net.Hidden[i].Weights[k], 1e-12, "hidden weight [%d][%d]", i, k)
		}
	}

	// Backpropagation mutates weights only, never activations.
	assert.Equal(t, inputAct, net.Input.Activations())
	assert.Equal(t, hiddenAct, net.Hidden.Activations())
	assert.Equal(t, outputAct, net.Output.Activations())
}

func TestBackpropagateRejectsWrongErrorLength(t *testing.T) {
	net, err := NewNetwork(Topology{InputNum: 2, HiddenNum: 2, OutputNum: 2}, 3)
	require.NoError(t, err)
	_, err = net.Forward([]float64{1, 0})
	require.NoError(t, err)

	before := snapshotWeights(net.Hidden)
	require.Error(t, net.Backpropagate([]float64{1, 0, 0}))
	assert.Equal(t, before, snapshotWeights(net.Hidden), "weights changed despite precondition failure")
}

// TestRepeatedTrainingConvergence feeds the same example 1000 times; the
// output error magnitude must shrink monotonically.
func TestRepeatedTrainingConvergence(t *testing.T) {
	net, err := NewNetwork(Topology{InputNum: 4, HiddenNum: 3, OutputNum: 2}, 11)
	require.NoError(t, err)

	features := []float64{0.9, 0.2, 0.4, 0.7}
	target := []float64{1, 0}

	first := -1.0
	prev := math.Inf(1)
	for i := 0; i < 1000; i++ {
		out, err := net.Forward(features)
		require.NoError(t, err)

		outputError := make([]float64, len(out))
		norm := 0.0
		for k := range out {
			outputError[k] = target[k] - out[k]
			norm += math.Abs(outputError[k])
		}
		require.LessOrEqual(t, norm, prev+1e-12, "error grew at iteration %d", i)
		prev = norm
		if first < 0 {
			first = norm
		}

		require.NoError(t, net.Backpropagate(outputError))
	}
	assert.Less(t, prev, first/2, "1000 steps should at least halve the error")
}

func snapshotWeights(l Layer) [][]float64 {
	out := make([][]float64, len(l))
	for i := range l {
		out[i] = append([]float64(nil), l[i].Weights...)
	}
	return out
}
