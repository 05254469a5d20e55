package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sachaservan/hamminglsh/accuracy"
	"github.com/sachaservan/hamminglsh/anns"
	"github.com/sachaservan/hamminglsh/dataset"
	"github.com/sachaservan/hamminglsh/logging"

	"github.com/alexflint/go-arg"
)

type args struct {
	Vectors    int    `arg:"required" help:"number of binary vectors"`
	Length     int    `arg:"required" help:"length of each binary vector"`
	Samples    int    `arg:"required" help:"number of case studies to check"`
	Iterations int    `arg:"required" help:"number of LSH iterations"`
	GroupBits  int    `help:"bucket key width (0 = round(log2(m/log2(m))))"`
	FilterBits int    `help:"in-bucket filter width (0 = round(log2(n)))"`
	Procs      int    `default:"1" help:"number of iterations to run concurrently"`
	Planted    int    `default:"-1" help:"plant a pair at this distance in every sample (-1 = none)"`
	Seed       int64  `help:"random seed (0 = time based)"`
	Save       string `help:"write the experiment as json to this file"`
	Verbose    bool   `help:"log every sample"`
}

func (args) Description() string {
	return "Check the LSH solution quality."
}

func main() {

	var a args
	p := arg.MustParse(&a)

	if a.Vectors < 2 {
		p.Fail("--vectors must be at least 2")
	}
	if a.Length < 1 {
		p.Fail("--length must be positive")
	}
	if a.Samples < 1 {
		p.Fail("--samples must be positive")
	}
	if a.Iterations < 1 {
		p.Fail("--iterations must be positive")
	}

	logger := logging.NewCommandLogger(a.Verbose)

	cfg := &accuracy.Config{
		NumVectors:   a.Vectors,
		VectorLength: a.Length,
		NumTrials:    a.Samples,
		Params: anns.LSHParams{
			NumRounds:  a.Iterations,
			GroupBits:  a.GroupBits,
			FilterBits: a.FilterBits,
			NumProcs:   a.Procs,
		},
		Seed: a.Seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var source accuracy.Source = dataset.Uniform{}
	if a.Planted >= 0 {
		source = dataset.Planted{Distance: a.Planted}
	}

	result, err := accuracy.Run(cfg, source, logger)
	if err != nil {
		logger.LogExperiment(a.Samples, 0, 0, err)
		os.Exit(1)
	}
	logger.LogExperiment(result.NumTrials, result.HitRate, result.AvgRelativeError, nil)

	fmt.Printf("Hit rate is %.2f%%\n", result.HitRate)
	fmt.Printf("Avg. relative error is %.2f%%\n", result.AvgRelativeError)

	logger.Debug("experiment details",
		"seed", cfg.Seed,
		"expected_hit_rate", result.ExpectedHitRate,
		"std_relative_error", result.StdRelativeError,
		"unresolved", result.Unresolved,
		"avg_comparisons", result.AvgComparisons,
		"exact_comparisons", result.ExactComparisons,
	)

	if a.Save == "" {
		return
	}

	file, err := json.MarshalIndent(&accuracy.Experiment{Config: cfg, Result: result}, "", " ")
	if err != nil {
		logger.Error("encoding experiment failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(a.Save, file, 0644); err != nil {
		logger.Error("saving experiment failed", "file", a.Save, "error", err)
		os.Exit(1)
	}
	logger.Info("experiment saved", "file", a.Save)
}
