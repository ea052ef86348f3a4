// icr-train: trains a three-layer digit classifier and reports its accuracy.
//
// Usage:
//
//	icr-train --train-dir=data/digits/train --train-gt=data/digits/train_gt.txt \
//	          --test-dir=data/digits/test --test-gt=data/digits/test_gt.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"icr_lib/dataset"
	"icr_lib/dnn"
	"icr_lib/trainer"
	"icr_lib/utils"
)

var (
	arch        = flag.String("arch", "784 60 10", "Layer sizes: input hidden output")
	trainDir    = flag.String("train-dir", "data/digits/train", "Directory of training digit images")
	trainPrefix = flag.String("train-prefix", "digit_", "Training image filename prefix")
	trainGT     = flag.String("train-gt", "data/digits/train_gt.txt", "Training ground-truth label file")
	trainSize   = flag.Int("train-size", 4000, "Number of training images")
	testDir     = flag.String("test-dir", "data/digits/test", "Directory of test digit images")
	testPrefix  = flag.String("test-prefix", "digit_", "Test image filename prefix")
	testGT      = flag.String("test-gt", "data/digits/test_gt.txt", "Test ground-truth label file")
	testSize    = flag.Int("test-size", 2000, "Number of test images")
	trainCSV    = flag.String("train-csv", "", "MNIST CSV training file (overrides image loading)")
	testCSV     = flag.String("test-csv", "", "MNIST CSV test file (overrides image loading)")
	epochs      = flag.Int("epochs", 1, "Number of training epochs")
	seed        = flag.Uint64("seed", 42, "Random seed for weight initialization")
	workers     = flag.Int("workers", 1, "Parallel evaluation workers")
	standardize = flag.Bool("standardize", false, "Standardize features to zero mean, unit stddev")
	verbose     = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	topology, err := utils.ParseTopology(*arch)
	if err != nil {
		fatalf("invalid architecture: %v", err)
	}
	config := &utils.Config{
		Topology:    topology,
		TrainDir:    *trainDir,
		TrainPrefix: *trainPrefix,
		TrainLabels: *trainGT,
		TrainSize:   *trainSize,
		TestDir:     *testDir,
		TestPrefix:  *testPrefix,
		TestLabels:  *testGT,
		TestSize:    *testSize,
		Epochs:      *epochs,
		Workers:     *workers,
		Seed:        *seed,
	}
	if err := utils.ValidateConfig(config); err != nil {
		fatalf("invalid configuration: %v", err)
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Architecture: %d %d %d\n", topology.InputNum, topology.HiddenNum, topology.OutputNum)
	fmt.Printf("  Epochs:       %d\n", config.Epochs)
	fmt.Printf("  Seed:         %d\n", config.Seed)
	fmt.Printf("  Workers:      %d\n", config.Workers)
	fmt.Println()

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	// Load data.
	start := time.Now()
	trainSet, testSet, err := loadData(config)
	stats.DataLoadingTime = time.Since(start)
	if err != nil {
		fatalf("loading data: %v", err)
	}
	fmt.Printf("Loaded %d training and %d test samples\n", len(trainSet), len(testSet))

	if *standardize {
		if trainSet, err = dataset.Normalize(trainSet); err != nil {
			fatalf("normalizing training set: %v", err)
		}
		if testSet, err = dataset.Normalize(testSet); err != nil {
			fatalf("normalizing test set: %v", err)
		}
	}

	// Build network.
	start = time.Now()
	net, err := dnn.NewNetwork(topology, config.Seed)
	stats.ModelInitTime = time.Since(start)
	if err != nil {
		fatalf("building network: %v", err)
	}

	// Train.
	fmt.Println("Training...")
	if err := trainer.Train(net, trainSet, config.Epochs, stats); err != nil {
		fatalf("training: %v", err)
	}

	// Evaluate.
	fmt.Println("Testing...")
	start = time.Now()
	result, err := trainer.EvaluateParallel(net, testSet, config.Workers)
	stats.EvaluationTime = time.Since(start)
	if err != nil {
		fatalf("evaluating: %v", err)
	}
	stats.TotalTime = time.Since(totalStart)

	fmt.Printf("poz: %d\n", result.Correct)
	fmt.Printf("neg: %d\n", result.Wrong)
	fmt.Printf("average: %.2f%%\n", result.Accuracy())

	utils.PrintTimingStats(stats, config.Epochs*len(trainSet))
}

func loadData(config *utils.Config) (trainSet, testSet []dataset.Sample, err error) {
	if *trainCSV != "" {
		if trainSet, err = dataset.LoadCSV(*trainCSV, config.Topology.InputNum); err != nil {
			return nil, nil, err
		}
	} else {
		trainSet, err = dataset.LoadDigitSamples(config.TrainDir, config.TrainPrefix, config.TrainLabels, config.TrainSize)
		if err != nil {
			return nil, nil, err
		}
	}
	if *testCSV != "" {
		if testSet, err = dataset.LoadCSV(*testCSV, config.Topology.InputNum); err != nil {
			return nil, nil, err
		}
	} else {
		testSet, err = dataset.LoadDigitSamples(config.TestDir, config.TestPrefix, config.TestLabels, config.TestSize)
		if err != nil {
			return nil, nil, err
		}
	}
	return trainSet, testSet, nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
