// Package mesh extracts a watertight triangular boundary mesh from a
// kernel.VoxelSolid's boundary-face set, via per-plane grouping,
// greedy quad merging, optional quantize-and-weld, and outward-normal
// reorientation.
package mesh

import "github.com/chazu/strata/pkg/kernel"

// Vertex is a mesh corner position in voxel-lattice units, both before
// and after Quantize; conversion to model units happens in the file
// writer (see stl.Write's scale).
type Vertex struct {
	X, Y, Z float64
}

// Triangle indexes three vertices in MeshD.Vertices, wound
// counter-clockwise when viewed from outside the solid.
type Triangle struct {
	A, B, C int
}

// MeshD is the mesher's output: a vertex buffer and an index buffer.
type MeshD struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// plane groups faces sharing an oriented cutting plane.
type plane struct {
	axis kernel.Axis
	k    int32
	sign int32 // +1 or -1
}

func lessPlane(a, b plane) bool {
	if a.axis != b.axis {
		return a.axis < b.axis
	}
	if a.k != b.k {
		return a.k < b.k
	}
	return a.sign < b.sign
}
