package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads MNIST-style rows where the first field is the label and the
// remaining inputNum fields are pixel values in [0,255]. Pixels are scaled
// into [0.01, 1.0) so no input activation is ever exactly zero.
func LoadCSV(path string, inputNum int) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var samples []Sample
	r := csv.NewReader(bufio.NewReader(file))
	for row := 0; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s row %d: %w", path, row, err)
		}
		if len(record) != inputNum+1 {
			return nil, fmt.Errorf("%s row %d: want %d fields, got %d", path, row, inputNum+1, len(record))
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: label: %w", path, row, err)
		}
		inputs := make([]float64, inputNum)
		for i := range inputs {
			x, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: field %d: %w", path, row, i+1, err)
			}
			inputs[i] = x/255.0*0.99 + 0.01
		}
		samples = append(samples, Sample{Features: inputs, Label: label})
	}
	return samples, nil
}
