// Package kernel implements the integer-lattice voxel occupancy kernel:
// an occupancy set with an incrementally maintained boundary-face set,
// primitives, booleans, rigid transforms, morphology, and the
// connectivity/watertightness predicates built on top of them.
package kernel

import "fmt"

// Axis names one of the three lattice axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cell is an integer lattice coordinate. A cell occupies the
// axis-aligned unit cube [x, x+1) x [y, y+1) x [z, z+1).
type Cell struct {
	X, Y, Z int32
}

// Add returns the componentwise sum of c and d.
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// neighbor6 lists the six axis-aligned unit offsets, ordered
// -X, +X, -Y, +Y, -Z, +Z to match the low/high face pairing used
// throughout the package.
var neighbor6 = [6]Cell{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}
