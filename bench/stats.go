package bench

// stats.go contains median selection, throughput and the per-configuration
// summary statistics.

import (
	"math"
	"time"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/geometry"
	"github.com/perfgo/layoutbench/kernel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Median returns the element at index len/2 of the sorted durations (the
// upper median for even counts). It selects with quickselect on a copy, so
// durations is left untouched. An empty slice yields 0.
func Median(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}
	work := make([]time.Duration, len(durations))
	copy(work, durations)
	return nthElement(work, len(work)/2)
}

// nthElement partially orders s so that s[k] holds the value it would have in
// a sorted slice, and returns it.
func nthElement(s []time.Duration, k int) time.Duration {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case k == p:
			return s[k]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return s[k]
}

// partition uses the median of three as pivot (Lomuto scheme).
func partition(s []time.Duration, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[mid] < s[hi] {
		s[mid], s[hi] = s[hi], s[mid]
	}
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if s[j] < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}

// Throughput returns processed elements per second. A non-positive duration
// is clamped to one nanosecond so the result stays finite.
func Throughput(n int, d time.Duration) float64 {
	if n <= 0 {
		return 0
	}
	if d <= 0 {
		d = time.Nanosecond
	}
	return float64(n) / d.Seconds()
}

// Summary describes all trials of one (layout, size) configuration.
type Summary struct {
	Size   int
	Layout cloud.Layout
	Trials int

	Median time.Duration
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration

	// Throughput is in elements per second, based on the median.
	Throughput float64
	// Last is the reduced result of the final trial.
	Last geometry.Point
}

// MItemsPerSecond returns the throughput in millions of elements per second.
func (s Summary) MItemsPerSecond() float64 {
	return s.Throughput / 1e6
}

// Summarize computes the statistics for the samples of one configuration.
func Summarize(layout cloud.Layout, n int, samples []kernel.Sample) Summary {
	sum := Summary{
		Size:   n,
		Layout: layout,
		Trials: len(samples),
	}
	if len(samples) == 0 {
		return sum
	}

	durations := make([]time.Duration, len(samples))
	seconds := make([]float64, len(samples))
	for i, s := range samples {
		durations[i] = s.Elapsed
		seconds[i] = s.Elapsed.Seconds()
	}

	mean, stdDev := stat.MeanStdDev(seconds, nil)
	if len(samples) < 2 {
		stdDev = 0
	}

	sum.Median = Median(durations)
	sum.Mean = fromSeconds(mean)
	sum.StdDev = fromSeconds(stdDev)
	sum.Min = fromSeconds(floats.Min(seconds))
	sum.Max = fromSeconds(floats.Max(seconds))
	sum.Throughput = Throughput(n, sum.Median)
	sum.Last = samples[len(samples)-1].Result
	return sum
}

func fromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
