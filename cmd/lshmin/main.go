package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sachaservan/hamminglsh/anns"
	"github.com/sachaservan/hamminglsh/dataset"
	"github.com/sachaservan/hamminglsh/logging"

	"github.com/alexflint/go-arg"
)

type args struct {
	Vectors    int   `arg:"required" help:"number of binary vectors"`
	Length     int   `arg:"required" help:"length of each binary vector"`
	Iterations int   `arg:"required" help:"number of LSH iterations"`
	GroupBits  int   `help:"bucket key width (0 = round(log2(m/log2(m))))"`
	FilterBits int   `help:"in-bucket filter width (0 = round(log2(n)))"`
	Procs      int   `default:"1" help:"number of iterations to run concurrently"`
	Seed       int64 `help:"random seed (0 = time based)"`
	Verbose    bool  `help:"log every iteration"`
}

func (args) Description() string {
	return "Find minimum Hamming distance using LSH."
}

func main() {

	var a args
	p := arg.MustParse(&a)

	if a.Vectors < 1 {
		p.Fail("--vectors must be positive")
	}
	if a.Length < 1 {
		p.Fail("--length must be positive")
	}
	if a.Iterations < 1 {
		p.Fail("--iterations must be positive")
	}

	logger := logging.NewCommandLogger(a.Verbose)

	seed := a.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating vectors", "vectors", a.Vectors, "length", a.Length, "seed", seed)

	rng := rand.New(rand.NewSource(seed))

	// generate the binary vectors
	data := dataset.GenerateRandomVectors(rng, a.Vectors, a.Length)

	params := &anns.LSHParams{
		NumRounds:  a.Iterations,
		GroupBits:  a.GroupBits,
		FilterBits: a.FilterBits,
		NumProcs:   a.Procs,
	}

	result, stats, err := anns.LSHMinPair(rng, data, params)
	if err != nil {
		logger.Error("lsh search failed", "error", err)
		os.Exit(1)
	}

	for _, round := range stats.Rounds {
		logger.LogRound(round.Round, round.NumBuckets, round.MaxBucketSize, round.Comparisons, round.Best.Distance, round.Best.Found())
	}
	logger.LogSearch(len(data), a.Length, a.Iterations, stats.GroupBits, stats.FilterBits, stats.Comparisons)

	v1, v2, ok := result.Vectors(data)
	if !ok {
		fmt.Println("No pair found, minimum Hamming distance is undefined")
		return
	}

	fmt.Println("Minimum Hamming distance is", result.Distance)
	fmt.Println("V1: ", v1)
	fmt.Println("V2: ", v2)
}
