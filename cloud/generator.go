package cloud

// generator.go contains the deterministic point cloud generator.

import (
	"math"

	"github.com/perfgo/layoutbench/geometry"
	"gonum.org/v1/gonum/mathext/prng"
)

// DefaultSeed is the seed used by every benchmark run.
const DefaultSeed uint32 = 42

// largestBelowOne is the biggest float32 strictly smaller than 1.
var largestBelowOne = math.Nextafter32(1, 0)

// Source produces uniform float32 draws in [0, 1) from a 32-bit Mersenne
// Twister. It must be owned by a single goroutine.
type Source struct {
	mt *prng.MT19937
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint32) *Source {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return &Source{mt: mt}
}

// Uint32 returns the next raw 32-bit value of the stream.
func (s *Source) Uint32() uint32 {
	return s.mt.Uint32()
}

// Float32 consumes one 32-bit draw and maps it into [0, 1). Values that round
// up to 1 are clamped to the largest float32 below 1.
func (s *Source) Float32() float32 {
	v := float32(s.mt.Uint32()) / (1 << 32)
	if v >= 1 {
		v = largestBelowOne
	}
	return v
}

// Point draws the x, y and z coordinates in that order.
func (s *Source) Point() geometry.Point {
	x := s.Float32()
	y := s.Float32()
	z := s.Float32()
	return geometry.Point{X: x, Y: y, Z: z}
}

// Generate returns n points drawn from a stream seeded with seed. The same
// seed always yields bit-identical output.
func Generate(n int, seed uint32) []geometry.Point {
	if n < 0 {
		n = 0
	}
	src := NewSource(seed)
	points := make([]geometry.Point, n)
	for i := range points {
		points[i] = src.Point()
	}
	return points
}
