package kernel

// kernel.go contains the per-element transform and the parallel
// transform-reduce over a stored point cloud.

import (
	"math"
	"time"

	"github.com/perfgo/layoutbench/cloud"
	"github.com/perfgo/layoutbench/geometry"
	"github.com/perfgo/layoutbench/parallel"
)

// Transform perturbs the spherical angles of every point.
type Transform struct {
	InclinationOffset float32
	AzimuthOffset     float32
}

// DefaultTransform rotates the inclination by π/8 and the azimuth by π/4.
func DefaultTransform() Transform {
	return Transform{
		InclinationOffset: math.Pi / 8,
		AzimuthOffset:     math.Pi / 4,
	}
}

// Apply runs the full per-element pipeline on a cartesian point: normalize,
// convert to spherical, shift both angles, convert back and scale.
func (t Transform) Apply(p geometry.Point, scale float32) geometry.Point {
	s := geometry.ToSpherical(geometry.Normalize(p))
	s.Y += t.InclinationOffset
	s.Z += t.AzimuthOffset
	return geometry.ToCartesian(s).Scale(scale)
}

// Sample is the outcome of one kernel execution.
type Sample struct {
	Elapsed time.Duration
	Result  geometry.Point
}

// Reduce transforms every point of c, scales it by 1/N and sums the results.
// The sum is computed in parallel with an unspecified pairing order, so the
// least significant bits may vary between calls. An empty cloud yields
// geometry.Zero.
func Reduce[C cloud.Cloud](c C, t Transform) geometry.Point {
	n := c.Len()
	if n == 0 {
		return geometry.Zero
	}
	recip := 1 / float32(n)
	return parallel.TransformReduce(n, geometry.Zero, geometry.Add, func(i int) geometry.Point {
		return t.Apply(c.At(i), recip)
	})
}

// Run times a single Reduce using the monotonic clock.
func Run[C cloud.Cloud](c C, t Transform) Sample {
	start := time.Now()
	result := Reduce(c, t)
	return Sample{
		Elapsed: time.Since(start),
		Result:  result,
	}
}
