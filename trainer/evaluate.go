package trainer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"icr_lib/dataset"
	"icr_lib/dnn"
)

// Result tallies evaluation outcomes.
type Result struct {
	Correct int
	Wrong   int
}

// Total returns the number of evaluated samples.
func (r Result) Total() int {
	return r.Correct + r.Wrong
}

// Accuracy returns the percentage of correct predictions.
func (r Result) Accuracy() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total()) * 100
}

// Evaluate predicts every sample and compares against its ground truth.
func Evaluate(net *dnn.Network, samples []dataset.Sample) (Result, error) {
	var res Result
	for i, s := range samples {
		predicted, err := net.Predict(s.Features)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d: %w", i, err)
		}
		if predicted == s.Label {
			res.Correct++
		} else {
			res.Wrong++
		}
	}
	return res, nil
}

// EvaluateParallel splits samples across workers goroutines. Each worker runs
// on its own clone of the network, since forward passes mutate activations.
// The network itself is treated as frozen: weights are copied once up front
// and never written. Results are identical to Evaluate.
func EvaluateParallel(net *dnn.Network, samples []dataset.Sample, workers int) (Result, error) {
	if workers <= 1 || len(samples) <= 1 {
		return Evaluate(net, samples)
	}
	if workers > len(samples) {
		workers = len(samples)
	}

	partials := make([]Result, workers)
	chunk := (len(samples) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(samples) {
			hi = len(samples)
		}
		if lo >= hi {
			continue
		}
		replica := net.Clone()
		g.Go(func() error {
			res, err := Evaluate(replica, samples[lo:hi])
			if err != nil {
				return err
			}
			partials[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, p := range partials {
		total.Correct += p.Correct
		total.Wrong += p.Wrong
	}
	return total, nil
}
