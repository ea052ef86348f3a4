package utils

import (
	"fmt"
	"strconv"
	"strings"

	"icr_lib/dnn"
)

// Config holds a full training run configuration.
type Config struct {
	Topology dnn.Topology

	TrainDir    string
	TrainPrefix string
	TrainLabels string
	TrainSize   int

	TestDir    string
	TestPrefix string
	TestLabels string
	TestSize   int

	Epochs  int
	Workers int
	Seed    uint64
}

// ParseTopology parses a "784 60 10" style architecture string.
func ParseTopology(archStr string) (dnn.Topology, error) {
	parts := strings.Fields(archStr)
	if len(parts) != 3 {
		return dnn.Topology{}, fmt.Errorf("architecture must name exactly 3 layer sizes, got %q", archStr)
	}
	sizes := make([]int, 3)
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return dnn.Topology{}, fmt.Errorf("architecture %q: %w", archStr, err)
		}
		sizes[i] = n
	}
	return dnn.Topology{InputNum: sizes[0], HiddenNum: sizes[1], OutputNum: sizes[2]}, nil
}

// ValidateConfig validates a training configuration.
func ValidateConfig(config *Config) error {
	t := config.Topology
	if t.InputNum <= 0 || t.HiddenNum <= 0 || t.OutputNum <= 0 {
		return fmt.Errorf("all layer sizes must be positive, got %d %d %d",
			t.InputNum, t.HiddenNum, t.OutputNum)
	}
	if config.TrainSize <= 0 {
		return fmt.Errorf("training set size must be positive")
	}
	if config.TestSize < 0 {
		return fmt.Errorf("test set size must not be negative")
	}
	if config.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}
	if config.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}
