package kernel

// Union returns a new solid containing every cell of a or b.
func Union(a, b *VoxelSolid) *VoxelSolid {
	out := New()
	for c := range a.cells {
		out.Add(c)
	}
	for c := range b.cells {
		out.Add(c)
	}
	return out
}

// Intersect returns a new solid containing the cells present in both
// a and b.
func Intersect(a, b *VoxelSolid) *VoxelSolid {
	out := New()
	small, large := a, b
	if len(b.cells) < len(a.cells) {
		small, large = b, a
	}
	for c := range small.cells {
		if large.Contains(c) {
			out.Add(c)
		}
	}
	return out
}

// Subtract returns a new solid containing the cells of a not present
// in b.
func Subtract(a, b *VoxelSolid) *VoxelSolid {
	out := New()
	for c := range a.cells {
		if !b.Contains(c) {
			out.Add(c)
		}
	}
	return out
}
