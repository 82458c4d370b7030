package kernel

// Bounds returns the axis-aligned range [min, maxExcl) enclosing every
// occupied cell, with maxExcl = maxCell + 1 componentwise. An empty
// solid returns ((0,0,0),(0,0,0)).
func Bounds(s *VoxelSolid) (min, maxExcl Cell) {
	if len(s.cells) == 0 {
		return Cell{}, Cell{}
	}
	first := true
	for c := range s.cells {
		if first {
			min, maxExcl = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > maxExcl.X {
			maxExcl.X = c.X
		}
		if c.Y > maxExcl.Y {
			maxExcl.Y = c.Y
		}
		if c.Z > maxExcl.Z {
			maxExcl.Z = c.Z
		}
	}
	maxExcl.X++
	maxExcl.Y++
	maxExcl.Z++
	return min, maxExcl
}
