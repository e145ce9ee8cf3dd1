package bench

// config.go contains the compiled-in benchmark parameters.

import (
	"errors"
	"fmt"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/kernel"
)

const (
	// DefaultTrials is the number of kernel executions per configuration.
	DefaultTrials = 100
	// MinExponent and MaxExponent bound the sweep sizes 10^MinExponent..10^MaxExponent.
	MinExponent = 1
	MaxExponent = 7
	// DefaultDeepDiveSize is the problem size used by the single-size mode.
	DefaultDeepDiveSize = 10_000_000
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config holds everything that determines a benchmark run.
type Config struct {
	// Trials is the number of timed kernel executions per (layout, size).
	Trials int
	// Seed initializes the point cloud generator.
	Seed uint32
	// Sizes are the problem sizes visited by the sweep, in order.
	Sizes []int
	// DeepDiveSize is the problem size of the single-size mode.
	DeepDiveSize int
	// Transform is the angular perturbation applied by the kernel.
	Transform kernel.Transform
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Trials:       DefaultTrials,
		Seed:         cloud.DefaultSeed,
		Sizes:        PowersOfTen(MinExponent, MaxExponent),
		DeepDiveSize: DefaultDeepDiveSize,
		Transform:    kernel.DefaultTransform(),
	}
}

// PowersOfTen returns 10^from, 10^(from+1), ..., 10^to.
func PowersOfTen(from, to int) []int {
	var sizes []int
	n := 1
	for exp := 0; exp <= to; exp++ {
		if exp >= from {
			sizes = append(sizes, n)
		}
		n *= 10
	}
	return sizes
}

// Validate checks the config for values the benchmark cannot run with.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidConfig, c.Trials)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no problem sizes configured", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative problem size %d", ErrInvalidConfig, n)
		}
	}
	if c.DeepDiveSize < 0 {
		return fmt.Errorf("%w: negative deep dive size %d", ErrInvalidConfig, c.DeepDiveSize)
	}
	return nil
}
