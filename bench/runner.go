package bench

// runner.go contains the trial driver and the sweep over layouts and sizes.

import (
	"fmt"
	"runtime"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/kernel"
	"github.com/rs/zerolog"
)

// RunTrials executes the kernel trials times on the same cloud and returns
// every sample in execution order. onTrial, when set, is called after each
// trial; a non-nil error stops the run.
func RunTrials[C cloud.Cloud](c C, trials int, t kernel.Transform, onTrial func(i int, s kernel.Sample) error) ([]kernel.Sample, error) {
	samples := make([]kernel.Sample, 0, trials)
	for i := 0; i < trials; i++ {
		s := kernel.Run(c, t)
		samples = append(samples, s)
		if onTrial != nil {
			if err := onTrial(i, s); err != nil {
				return samples, err
			}
		}
	}
	return samples, nil
}

// Runner drives benchmarks one configuration at a time.
type Runner struct {
	logger   zerolog.Logger
	cfg      Config
	reporter *Reporter
}

// NewRunner validates cfg and returns a Runner reporting to reporter.
func NewRunner(logger zerolog.Logger, cfg Config, reporter *Reporter) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		logger:   logger,
		cfg:      cfg,
		reporter: reporter,
	}, nil
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Benchmark generates a cloud of n points in the given layout, runs all
// trials on it and prints the summary line. The cloud is dropped when the
// function returns.
func (r *Runner) Benchmark(layout cloud.Layout, n int) (Summary, error) {
	return r.benchmark(layout, n, func(i int, s kernel.Sample) error {
		r.logger.Debug().
			Str("layout", layout.String()).
			Int("size", n).
			Int("trial", i).
			Dur("elapsed", s.Elapsed).
			Msg("Trial complete")
		return r.reporter.TrialProgress(s)
	})
}

func (r *Runner) benchmark(layout cloud.Layout, n int, onTrial func(int, kernel.Sample) error) (Summary, error) {
	// Start every configuration from a clean heap.
	runtime.GC()

	var samples []kernel.Sample
	var err error
	switch layout {
	case cloud.ArrayOfStructures:
		samples, err = RunTrials(cloud.NewAoS(n, r.cfg.Seed), r.cfg.Trials, r.cfg.Transform, onTrial)
	case cloud.StructureOfArrays:
		samples, err = RunTrials(cloud.NewSoA(n, r.cfg.Seed), r.cfg.Trials, r.cfg.Transform, onTrial)
	default:
		return Summary{}, fmt.Errorf("%w: %s", cloud.ErrUnknownLayout, layout)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("failed to report trial: %w", err)
	}

	summary := Summarize(layout, n, samples)
	r.logger.Debug().
		Str("layout", layout.String()).
		Int("size", n).
		Dur("median", summary.Median).
		Dur("mean", summary.Mean).
		Dur("stddev", summary.StdDev).
		Dur("min", summary.Min).
		Dur("max", summary.Max).
		Float64("mitems_per_second", summary.MItemsPerSecond()).
		Msg("Benchmark complete")

	if err := r.reporter.Summary(summary); err != nil {
		return summary, fmt.Errorf("failed to report summary: %w", err)
	}
	return summary, nil
}

// Sweep benchmarks every layout against every configured size, layouts in
// the outer loop. Each configuration finishes before the next one starts.
func (r *Runner) Sweep() ([]Summary, error) {
	r.logger.Info().
		Ints("sizes", r.cfg.Sizes).
		Int("trials", r.cfg.Trials).
		Int("workers", runtime.GOMAXPROCS(0)).
		Msg("Starting layout sweep")

	summaries := make([]Summary, 0, len(cloud.Layouts())*len(r.cfg.Sizes))
	for _, layout := range cloud.Layouts() {
		for _, n := range r.cfg.Sizes {
			s, err := r.Benchmark(layout, n)
			if err != nil {
				return summaries, err
			}
			summaries = append(summaries, s)
		}
	}
	return summaries, nil
}

// DeepDive benchmarks both layouts at the single DeepDiveSize, printing a
// full line for every trial followed by the summary.
func (r *Runner) DeepDive() ([]Summary, error) {
	n := r.cfg.DeepDiveSize
	r.logger.Info().
		Int("size", n).
		Int("trials", r.cfg.Trials).
		Int("workers", runtime.GOMAXPROCS(0)).
		Msg("Starting deep dive")

	var summaries []Summary
	for _, layout := range cloud.Layouts() {
		s, err := r.benchmark(layout, n, func(_ int, s kernel.Sample) error {
			return r.reporter.TrialDetail(layout, n, s)
		})
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
