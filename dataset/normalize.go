package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Normalize standardizes every feature column to zero mean and unit standard
// deviation across samples, returning a new slice. Columns with zero spread
// are centered but not scaled. All samples must share the feature length.
func Normalize(samples []Sample) ([]Sample, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	n := len(samples[0].Features)
	for i, s := range samples {
		if len(s.Features) != n {
			return nil, fmt.Errorf("normalize: sample %d has %d features, want %d", i, len(s.Features), n)
		}
	}

	column := make([]float64, len(samples))
	mean := make([]float64, n)
	std := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range samples {
			column[i] = samples[i].Features[j]
		}
		mean[j], std[j] = stat.MeanStdDev(column, nil)
	}

	out := make([]Sample, len(samples))
	for i, s := range samples {
		features := make([]float64, n)
		for j, x := range s.Features {
			features[j] = x - mean[j]
			if std[j] > 0 {
				features[j] /= std[j]
			}
		}
		out[i] = Sample{Features: features, Label: s.Label}
	}
	return out, nil
}
