package cloud

// layout.go contains the two storage strategies for a generated point cloud.

import (
	"errors"
	"fmt"

	"github.com/perfgo/layoutbench/geometry"
)

// ErrUnknownLayout is returned by ParseLayout for unrecognized names.
var ErrUnknownLayout = errors.New("unknown layout")

// Layout identifies how a point cloud is stored in memory.
type Layout uint8

const (
	// ArrayOfStructures stores one interleaved record per point.
	ArrayOfStructures Layout = iota
	// StructureOfArrays stores one contiguous slice per coordinate.
	StructureOfArrays
)

// Layouts returns every layout in sweep order.
func Layouts() []Layout {
	return []Layout{ArrayOfStructures, StructureOfArrays}
}

func (l Layout) String() string {
	switch l {
	case ArrayOfStructures:
		return "array_of_structures"
	case StructureOfArrays:
		return "structure_of_arrays"
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}

// ParseLayout maps a layout name (as returned by String) back to a Layout.
// The short forms "aos" and "soa" are accepted as well.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "array_of_structures", "aos":
		return ArrayOfStructures, nil
	case "structure_of_arrays", "soa":
		return StructureOfArrays, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

// Cloud is the read-only view the kernel needs: a length and the logical
// point at index i. Both concrete layouts implement it so generic code can be
// instantiated once per layout.
type Cloud interface {
	Len() int
	At(i int) geometry.Point
}

// AoS is an array-of-structures point cloud.
type AoS []geometry.Point

// NewAoS stores the generator output as is.
func NewAoS(n int, seed uint32) AoS {
	return AoS(Generate(n, seed))
}

func (c AoS) Len() int { return len(c) }

func (c AoS) At(i int) geometry.Point { return c[i] }

// SoA is a structure-of-arrays point cloud. X, Y and Z always have the same
// length and index i across all three is one logical point.
type SoA struct {
	X []float32
	Y []float32
	Z []float32
}

// NewSoA generates n points and projects each coordinate into its own slice.
func NewSoA(n int, seed uint32) SoA {
	return SplitPoints(Generate(n, seed))
}

// SplitPoints copies points into a new SoA, preserving index alignment.
func SplitPoints(points []geometry.Point) SoA {
	c := SoA{
		X: make([]float32, len(points)),
		Y: make([]float32, len(points)),
		Z: make([]float32, len(points)),
	}
	for i, p := range points {
		c.X[i] = p.X
		c.Y[i] = p.Y
		c.Z[i] = p.Z
	}
	return c
}

func (c SoA) Len() int { return len(c.X) }

func (c SoA) At(i int) geometry.Point {
	return geometry.Point{X: c.X[i], Y: c.Y[i], Z: c.Z[i]}
}
