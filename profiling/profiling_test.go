package profiling

import (
	"testing"
	"time"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func location(id uint64, fns ...*profile.Function) *profile.Location {
	loc := &profile.Location{ID: id}
	for _, fn := range fns {
		loc.Line = append(loc.Line, profile.Line{Function: fn})
	}
	return loc
}

func TestTopFunctions(t *testing.T) {
	reduce := &profile.Function{ID: 1, Name: "kernel.Reduce"}
	apply := &profile.Function{ID: 2, Name: "kernel.Transform.Apply"}
	acos := &profile.Function{ID: 3, Name: "math.Acos"}

	reduceLoc := location(1, reduce)
	applyLoc := location(2, apply, reduce)
	acosLoc := location(3, acos)

	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		Sample: []*profile.Sample{
			{Location: []*profile.Location{acosLoc, applyLoc}, Value: []int64{3, 30_000_000}},
			{Location: []*profile.Location{applyLoc, reduceLoc}, Value: []int64{5, 50_000_000}},
			{Location: []*profile.Location{reduceLoc}, Value: []int64{1, 10_000_000}},
			{Location: []*profile.Location{acosLoc}, Value: []int64{1, 10_000_000}},
			{Value: []int64{1, 0}},
		},
	}

	got := TopFunctions(prof, 0)
	require.Len(t, got, 4)
	assert.Equal(t, "kernel.Transform.Apply", got[0].Name)
	assert.Equal(t, 50*time.Millisecond, got[0].Flat)
	assert.InDelta(t, 0.5, got[0].Fraction, 1e-9)
	assert.Equal(t, "math.Acos", got[1].Name)
	assert.Equal(t, 40*time.Millisecond, got[1].Flat)
	assert.Equal(t, "kernel.Reduce", got[2].Name)
	assert.Equal(t, "<unknown>", got[3].Name)

	top := TopFunctions(prof, 2)
	require.Len(t, top, 2)
	assert.Equal(t, got[:2], top)
}

func TestTopFunctionsWithoutCPUSamples(t *testing.T) {
	prof := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "alloc_space", Unit: "bytes"}},
		Sample:     []*profile.Sample{{Value: []int64{10}}},
	}
	assert.Nil(t, TopFunctions(prof, 5))
}

func TestCapture(t *testing.T) {
	prof, err := Capture(func() {
		deadline := time.Now().Add(50 * time.Millisecond)
		x := 0.0
		for time.Now().Before(deadline) {
			x += 1
		}
		_ = x
	})
	require.NoError(t, err)
	require.NotNil(t, prof)
	assert.GreaterOrEqual(t, cpuValueIndex(prof), 0)
}
