package bench

import (
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/geometry"
	"github.com/perfgo/layoutbench/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []time.Duration
		want time.Duration
	}{
		{name: "empty", in: nil, want: 0},
		{name: "single", in: []time.Duration{5}, want: 5},
		{name: "odd", in: []time.Duration{9, 1, 5}, want: 5},
		{name: "even takes upper", in: []time.Duration{4, 1, 3, 2}, want: 3},
		{name: "duplicates", in: []time.Duration{7, 7, 7, 7, 7}, want: 7},
		{name: "outlier", in: []time.Duration{10, 11, 12, 10000, 9}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.in))
		})
	}
}

func TestMedianMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := range 200 {
		in := make([]time.Duration, 1+rng.Intn(150))
		for i := range in {
			in[i] = time.Duration(rng.Intn(50))
		}
		orig := slices.Clone(in)

		sorted := slices.Clone(in)
		slices.Sort(sorted)

		require.Equal(t, sorted[len(sorted)/2], Median(in), "round %d", round)
		require.Equal(t, orig, in, "input must not be reordered")
	}
}

func TestThroughput(t *testing.T) {
	assert.InDelta(t, 1e6, Throughput(1000, time.Millisecond), 1e-6)
	assert.InDelta(t, 1e10, Throughput(10, time.Nanosecond), 1)
	assert.Equal(t, 0.0, Throughput(0, time.Second))

	clamped := Throughput(10, 0)
	assert.False(t, math.IsInf(clamped, 0))
	assert.Greater(t, clamped, 0.0)
}

func TestSummarize(t *testing.T) {
	samples := []kernel.Sample{
		{Elapsed: 3 * time.Millisecond, Result: geometry.Point{X: 1}},
		{Elapsed: 1 * time.Millisecond, Result: geometry.Point{X: 2}},
		{Elapsed: 2 * time.Millisecond, Result: geometry.Point{X: 3}},
	}

	s := Summarize(cloud.StructureOfArrays, 2000, samples)
	assert.Equal(t, 2000, s.Size)
	assert.Equal(t, cloud.StructureOfArrays, s.Layout)
	assert.Equal(t, 3, s.Trials)
	assert.Equal(t, 2*time.Millisecond, s.Median)
	assert.Equal(t, 2*time.Millisecond, s.Mean)
	assert.Equal(t, time.Millisecond, s.StdDev)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.InDelta(t, 1e6, s.Throughput, 1e-3)
	assert.InDelta(t, 1.0, s.MItemsPerSecond(), 1e-9)
	assert.Equal(t, geometry.Point{X: 3}, s.Last)
}

func TestSummarizeEdgeCases(t *testing.T) {
	empty := Summarize(cloud.ArrayOfStructures, 10, nil)
	assert.Equal(t, 0, empty.Trials)
	assert.Zero(t, empty.Median)

	single := Summarize(cloud.ArrayOfStructures, 10, []kernel.Sample{{Elapsed: time.Second}})
	assert.Equal(t, time.Second, single.Median)
	assert.Zero(t, single.StdDev)
}
