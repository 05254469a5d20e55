// Package accuracy measures how well the LSH minimum distance search tracks
// brute force over repeated random collections.
package accuracy

import (
	"fmt"
	"math/rand"

	"github.com/sachaservan/hamminglsh/anns"
	"github.com/sachaservan/hamminglsh/logging"

	"github.com/gonum/stat"
)

// Source generates the vector collection of one trial
type Source interface {
	Generate(rng *rand.Rand, num, dim int) ([]anns.BinaryVector, error)
}

// Config contains all the parameters of an accuracy experiment
type Config struct {
	NumVectors   int            `json:"num_vectors"`
	VectorLength int            `json:"vector_length"`
	NumTrials    int            `json:"num_trials"`
	Params       anns.LSHParams `json:"lsh_params"`
	Seed         int64          `json:"seed"`
}

// Validate rejects configurations for which a hit rate is meaningless
func (cfg *Config) Validate() error {
	if cfg.NumVectors < 2 {
		return fmt.Errorf("%w: need at least 2 vectors, got %d", anns.ErrDegenerateParameters, cfg.NumVectors)
	}
	if cfg.VectorLength < 1 {
		return fmt.Errorf("%w: vector length %d", anns.ErrDegenerateParameters, cfg.VectorLength)
	}
	if cfg.NumTrials < 1 {
		return fmt.Errorf("%w: trial count %d", anns.ErrDegenerateParameters, cfg.NumTrials)
	}
	return cfg.Params.Validate()
}

// Trial is the outcome of comparing both searches on one collection
type Trial struct {
	Exact            int     `json:"exact"`
	Approx           int     `json:"approx"` // n+1 when the LSH search found no pair
	Found            bool    `json:"found"`
	Comparisons      int64   `json:"comparisons"`
	CatchProbability float64 `json:"catch_probability"`
}

// Hit reports whether the LSH search returned the exact minimum distance
func (t Trial) Hit() bool {
	return t.Found && t.Approx == t.Exact
}

// Result summarizes the trials of an experiment; rates and errors are percentages
type Result struct {
	NumTrials        int     `json:"num_trials"`
	Hits             int     `json:"hits"`
	HitRate          float64 `json:"hit_rate"`
	ValidTrials      int     `json:"valid_trials"` // trials with a nonzero exact distance
	AvgRelativeError float64 `json:"avg_relative_error"`
	StdRelativeError float64 `json:"std_relative_error"`
	Unresolved       int     `json:"unresolved"` // trials where LSH found no pair
	ExpectedHitRate  float64 `json:"expected_hit_rate"`
	AvgComparisons   float64 `json:"avg_comparisons"`
	ExactComparisons int64   `json:"exact_comparisons"`
	Trials           []Trial `json:"trials"`
}

// Experiment can be saved to a json file for further analysis
type Experiment struct {
	Config *Config `json:"config"`
	Result *Result `json:"result"`
}

// RunTrial generates one collection and runs both searches on it
func RunTrial(rng *rand.Rand, cfg *Config, source Source, logger *logging.Logger) (Trial, error) {

	data, err := source.Generate(rng, cfg.NumVectors, cfg.VectorLength)
	if err != nil {
		return Trial{}, err
	}

	exact, err := anns.BruteForceMinPair(data)
	if err != nil {
		return Trial{}, err
	}

	approx, stats, err := anns.LSHMinPair(rng, data, &cfg.Params)
	if err != nil {
		return Trial{}, err
	}

	logger.LogSearch(len(data), cfg.VectorLength, cfg.Params.NumRounds, stats.GroupBits, stats.FilterBits, stats.Comparisons)

	trial := Trial{
		Exact:       exact.Distance,
		Approx:      cfg.VectorLength + 1,
		Found:       approx.Found(),
		Comparisons: stats.Comparisons,
		CatchProbability: anns.CatchProbability(
			cfg.VectorLength, exact.Distance, stats.GroupBits, stats.FilterBits, cfg.Params.NumRounds),
	}
	if approx.Found() {
		trial.Approx = approx.Distance
	}

	return trial, nil
}

// Run executes cfg.NumTrials trials, each on a fresh collection from source,
// and summarizes them
func Run(cfg *Config, source Source, logger *logging.Logger) (*Result, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NoopLogger()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	trials := make([]Trial, cfg.NumTrials)
	for i := range trials {
		trial, err := RunTrial(rng, cfg, source, logger.WithTrial(i))
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		logger.LogTrial(i, trial.Exact, trial.Approx, trial.Found)

		trials[i] = trial
	}

	result := Summarize(trials)
	result.ExactComparisons = anns.ExactComparisons(cfg.NumVectors)

	return result, nil
}

// Summarize computes the hit rate and relative error statistics of trials.
//
// Relative error (approx - exact) / exact is averaged over the trials whose
// exact distance is nonzero only; every trial counts toward the hit rate.
func Summarize(trials []Trial) *Result {

	result := &Result{
		NumTrials: len(trials),
		Trials:    trials,
	}
	if len(trials) == 0 {
		return result
	}

	relErrors := make([]float64, 0, len(trials))
	catch := make([]float64, len(trials))
	comparisons := make([]float64, len(trials))

	for i, trial := range trials {
		if trial.Hit() {
			result.Hits++
		}
		if !trial.Found {
			result.Unresolved++
		}
		if trial.Exact != 0 {
			relErrors = append(relErrors, float64(trial.Approx-trial.Exact)/float64(trial.Exact))
		}
		catch[i] = trial.CatchProbability
		comparisons[i] = float64(trial.Comparisons)
	}

	result.HitRate = float64(result.Hits) / float64(len(trials)) * 100
	result.ExpectedHitRate = stat.Mean(catch, nil) * 100
	result.AvgComparisons = stat.Mean(comparisons, nil)

	result.ValidTrials = len(relErrors)
	switch len(relErrors) {
	case 0:
	case 1:
		result.AvgRelativeError = relErrors[0] * 100
	default:
		mean, std := stat.MeanStdDev(relErrors, nil)
		result.AvgRelativeError = mean * 100
		result.StdRelativeError = std * 100
	}

	return result
}
