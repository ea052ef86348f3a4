// Package trainer drives a dnn.Network through training and evaluation over
// in-memory datasets. Training is strictly sequential; evaluation may fan out
// over clones of a frozen network.
package trainer

import (
	"fmt"
	"math"
	"time"

	"icr_lib/dataset"
	"icr_lib/dnn"
	"icr_lib/utils"
)

// TrainEpoch runs one stochastic gradient pass over samples, one example
// start-to-finish at a time. It returns the mean absolute output error
// observed across the epoch.
func TrainEpoch(net *dnn.Network, samples []dataset.Sample, stats *utils.TimingStats) (float64, error) {
	if stats == nil {
		stats = &utils.TimingStats{}
	}
	outputNum := net.Output.Size()
	var errSum float64
	for i, s := range samples {
		target, err := dataset.OneHot(s.Label, outputNum)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}

		start := time.Now()
		out, err := net.Forward(s.Features)
		stats.ForwardPassTime += time.Since(start)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}

		outputError := make([]float64, outputNum)
		for k := range outputError {
			outputError[k] = target[k] - out[k]
			errSum += math.Abs(outputError[k])
		}

		start = time.Now()
		err = net.Backpropagate(outputError)
		stats.BackwardPassTime += time.Since(start)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	if len(samples) == 0 {
		return 0, nil
	}
	return errSum / float64(len(samples)*outputNum), nil
}

// Train runs the given number of epochs over samples, printing a per-epoch
// error line to utils.Output when utils.Verbose is set.
func Train(net *dnn.Network, samples []dataset.Sample, epochs int, stats *utils.TimingStats) error {
	for epoch := 1; epoch <= epochs; epoch++ {
		meanErr, err := TrainEpoch(net, samples, stats)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if utils.Verbose {
			fmt.Fprintf(utils.Output, "Epoch %d/%d | Mean output error: %.6f\n", epoch, epochs, meanErr)
		}
	}
	return nil
}
