package kernel

// Translate returns a new solid with every cell shifted by delta.
func Translate(s *VoxelSolid, delta Cell) *VoxelSolid {
	out := New()
	for c := range s.cells {
		out.Add(c.Add(delta))
	}
	return out
}

// rotateOnce90 applies a single canonical 90-degree lattice rotation
// about axis to c.
func rotateOnce90(c Cell, axis Axis) Cell {
	switch axis {
	case AxisX:
		return Cell{c.X, -c.Z, c.Y}
	case AxisY:
		return Cell{c.Z, c.Y, -c.X}
	default:
		return Cell{-c.Y, c.X, c.Z}
	}
}

// Rotate90 returns a new solid rotated by k (mod 4) canonical 90-degree
// turns about axis.
func Rotate90(s *VoxelSolid, axis Axis, k int) *VoxelSolid {
	n := ((k % 4) + 4) % 4
	out := New()
	for c := range s.cells {
		rc := c
		for i := 0; i < n; i++ {
			rc = rotateOnce90(rc, axis)
		}
		out.Add(rc)
	}
	return out
}

// Mirror returns a new solid reflected across axis, preserving the
// half-open occupancy convention: for axis X, x -> -x-1 (Y, Z analogous).
func Mirror(s *VoxelSolid, axis Axis) *VoxelSolid {
	out := New()
	for c := range s.cells {
		switch axis {
		case AxisX:
			out.Add(Cell{-c.X - 1, c.Y, c.Z})
		case AxisY:
			out.Add(Cell{c.X, -c.Y - 1, c.Z})
		default:
			out.Add(Cell{c.X, c.Y, -c.Z - 1})
		}
	}
	return out
}
