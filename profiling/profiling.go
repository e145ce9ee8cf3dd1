package profiling

// profiling.go captures an in-memory CPU profile of a function and reduces
// it to per-function flat CPU time.

import (
	"bytes"
	"fmt"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/google/pprof/profile"
)

// Capture runs fn under the Go CPU profiler and returns the parsed profile.
// The profile is kept in memory.
func Capture(fn func()) (*profile.Profile, error) {
	var buf bytes.Buffer
	if err := pprof.StartCPUProfile(&buf); err != nil {
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	fn()
	pprof.StopCPUProfile()

	prof, err := profile.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CPU profile: %w", err)
	}
	return prof, nil
}

// FunctionSample is the flat CPU time attributed to one function.
type FunctionSample struct {
	Name string
	Flat time.Duration
	// Fraction is Flat relative to the total of the profile.
	Fraction float64
}

// TopFunctions returns at most n functions ordered by flat CPU time,
// descending. The leaf frame of every sample (including inlined frames) is
// charged with the sample value.
func TopFunctions(prof *profile.Profile, n int) []FunctionSample {
	valueIdx := cpuValueIndex(prof)
	if valueIdx < 0 {
		return nil
	}

	flat := make(map[string]int64)
	var total int64
	for _, s := range prof.Sample {
		if valueIdx >= len(s.Value) {
			continue
		}
		v := s.Value[valueIdx]
		total += v
		if len(s.Location) == 0 || len(s.Location[0].Line) == 0 || s.Location[0].Line[0].Function == nil {
			flat["<unknown>"] += v
			continue
		}
		// Line[0] is the innermost inlined frame of the leaf location.
		flat[s.Location[0].Line[0].Function.Name] += v
	}

	result := make([]FunctionSample, 0, len(flat))
	for name, v := range flat {
		fs := FunctionSample{Name: name, Flat: time.Duration(v)}
		if total > 0 {
			fs.Fraction = float64(v) / float64(total)
		}
		result = append(result, fs)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Flat != result[j].Flat {
			return result[i].Flat > result[j].Flat
		}
		return result[i].Name < result[j].Name
	})

	if n > 0 && n < len(result) {
		result = result[:n]
	}
	return result
}

// cpuValueIndex returns the index of the "cpu/nanoseconds" sample type, or
// -1 when the profile carries none.
func cpuValueIndex(prof *profile.Profile) int {
	for i, st := range prof.SampleType {
		if st.Type == "cpu" && st.Unit == "nanoseconds" {
			return i
		}
	}
	return -1
}
