package geometry

// point.go contains the three-component point value and the pure transforms
// applied to it by the benchmark kernel.

import "math"

// Point holds three float32 coordinates. Depending on the function that
// produced it the fields are cartesian (x, y, z) or spherical
// (radius, inclination, azimuth).
type Point struct {
	X float32
	Y float32
	Z float32
}

// Zero is the additive identity used to seed reductions.
var Zero = Point{}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale multiplies every component by f.
func (p Point) Scale(f float32) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}

// Magnitude returns the euclidean norm of p.
func (p Point) Magnitude() float32 {
	return sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Add is the reduction operator. It is commutative and associative up to
// float rounding, so partial sums may be combined in any order.
func Add(a, b Point) Point {
	return a.Add(b)
}

// Normalize scales p to unit length. A zero vector yields NaN components.
func Normalize(p Point) Point {
	recip := 1 / p.Magnitude()
	return p.Scale(recip)
}

// ToSpherical converts cartesian coordinates into (r, inclination, azimuth).
// The inclination is measured from the z axis in [0, π]. The azimuth lies in
// (-π, π] and is measured from the x axis towards y, which makes ToCartesian
// an exact inverse.
func ToSpherical(p Point) Point {
	r := p.Magnitude()
	return Point{
		X: r,
		Y: acos(p.Z / r),
		Z: atan2(p.Y, p.X),
	}
}

// ToCartesian is the inverse of ToSpherical.
func ToCartesian(s Point) Point {
	r, inclination, azimuth := s.X, s.Y, s.Z
	sinInc := sin(inclination)
	return Point{
		X: r * sinInc * cos(azimuth),
		Y: r * sinInc * sin(azimuth),
		Z: r * cos(inclination),
	}
}

func sqrt(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func acos(v float32) float32 { return float32(math.Acos(float64(v))) }

func atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

func sin(v float32) float32 { return float32(math.Sin(float64(v))) }

func cos(v float32) float32 { return float32(math.Cos(float64(v))) }
