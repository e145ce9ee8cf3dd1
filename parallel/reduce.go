package parallel

// reduce.go contains the data-parallel transform-reduce primitive used by the
// benchmark kernel.

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls how a reduction is split across goroutines.
type Config struct {
	// MinItemsForParallel is the smallest range worth fanning out.
	MinItemsForParallel int

	// MorselSize is the number of indices one worker reduces sequentially.
	MorselSize int

	// MaxWorkers limits concurrent workers (0 = GOMAXPROCS).
	MaxWorkers int

	// Enabled switches parallel execution on or off.
	Enabled bool
}

// DefaultConfig returns the configuration used by the benchmarks.
func DefaultConfig() *Config {
	return &Config{
		MinItemsForParallel: 8192,
		MorselSize:          4096,
		MaxWorkers:          0,
		Enabled:             true,
	}
}

var globalConfig = DefaultConfig()

// SetConfig replaces the global configuration. nil is ignored.
func SetConfig(cfg *Config) {
	if cfg != nil {
		globalConfig = cfg
	}
}

// GetConfig returns the current global configuration.
func GetConfig() *Config {
	return globalConfig
}

func (cfg *Config) numWorkers() int {
	if cfg.MaxWorkers > 0 {
		return cfg.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

func (cfg *Config) morselSize() int {
	if cfg.MorselSize > 0 {
		return cfg.MorselSize
	}
	return DefaultConfig().MorselSize
}

func (cfg *Config) shouldParallelize(n int) bool {
	return cfg.Enabled && n >= cfg.MinItemsForParallel && cfg.numWorkers() > 1
}

// Morsel is a half-open index range [Start, End).
type Morsel struct {
	Start int
	End   int
}

// Morsels splits [0, n) into consecutive ranges of at most size indices.
func Morsels(n, size int) []Morsel {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = n
	}
	morsels := make([]Morsel, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		morsels = append(morsels, Morsel{Start: start, End: min(start+size, n)})
	}
	return morsels
}

// TransformReduce applies transform to every index in [0, n) and folds the
// results with combine, starting from identity. combine must be associative
// and commutative: partial results are merged in an unspecified pairing.
// n <= 0 returns identity.
func TransformReduce[T any](n int, identity T, combine func(T, T) T, transform func(i int) T) T {
	return TransformReduceWith(GetConfig(), n, identity, combine, transform)
}

// TransformReduceWith is TransformReduce with an explicit configuration.
func TransformReduceWith[T any](cfg *Config, n int, identity T, combine func(T, T) T, transform func(i int) T) T {
	if n <= 0 {
		return identity
	}
	if !cfg.shouldParallelize(n) {
		return reduceRange(0, n, identity, combine, transform)
	}

	morsels := Morsels(n, cfg.morselSize())
	partials := make([]T, len(morsels))

	var g errgroup.Group
	g.SetLimit(cfg.numWorkers())
	for i, m := range morsels {
		g.Go(func() error {
			partials[i] = reduceRange(m.Start, m.End, identity, combine, transform)
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}

func reduceRange[T any](start, end int, acc T, combine func(T, T) T, transform func(i int) T) T {
	for i := start; i < end; i++ {
		acc = combine(acc, transform(i))
	}
	return acc
}
