package kernel

// FaceKey identifies a voxel-cube face in a canonical global frame:
// the plane coordinate k along Axis, and the lower corner (A, B) of
// the unit square on that plane. The (A, B) ordering is axis-specific
// and fixed once, here, so the kernel and mesher never disagree about
// face identity: X -> (Y, Z), Y -> (X, Z), Z -> (X, Y).
type FaceKey struct {
	Axis Axis
	K    int32
	A, B int32
}

// lowFace and highFace return the two faces of cell c perpendicular to
// axis: the face at the cell's minimum and maximum coordinate along
// that axis, respectively.
func lowFace(c Cell, axis Axis) FaceKey {
	switch axis {
	case AxisX:
		return FaceKey{Axis: AxisX, K: c.X, A: c.Y, B: c.Z}
	case AxisY:
		return FaceKey{Axis: AxisY, K: c.Y, A: c.X, B: c.Z}
	default:
		return FaceKey{Axis: AxisZ, K: c.Z, A: c.X, B: c.Y}
	}
}

func highFace(c Cell, axis Axis) FaceKey {
	f := lowFace(c, axis)
	f.K++
	return f
}

// facesOf returns the six boundary faces of a single cell, in the same
// -X,+X,-Y,+Y,-Z,+Z order as neighbor6.
func facesOf(c Cell) [6]FaceKey {
	return [6]FaceKey{
		lowFace(c, AxisX), highFace(c, AxisX),
		lowFace(c, AxisY), highFace(c, AxisY),
		lowFace(c, AxisZ), highFace(c, AxisZ),
	}
}

// Point3 is an integer lattice point, used for face/edge corner math.
type Point3 struct {
	X, Y, Z int32
}

// FaceCorners returns the four corners of f's unit square in the
// p0,p1,p2,p3 order the mesher triangulates from: p0 at (a0,b0), p1 at
// (a0,b1) or (a1,b0) depending on axis, following the same convention
// for every caller (kernel edge extraction, mesher quad emission).
func FaceCorners(f FaceKey) [4]Point3 {
	a0, b0 := f.A, f.B
	a1, b1 := f.A+1, f.B+1
	switch f.Axis {
	case AxisX:
		return [4]Point3{
			{f.K, a0, b0}, {f.K, a1, b0}, {f.K, a1, b1}, {f.K, a0, b1},
		}
	case AxisY:
		return [4]Point3{
			{a0, f.K, b0}, {a0, f.K, b1}, {a1, f.K, b1}, {a1, f.K, b0},
		}
	default: // AxisZ
		return [4]Point3{
			{a0, b0, f.K}, {a1, b0, f.K}, {a1, b1, f.K}, {a0, b1, f.K},
		}
	}
}

// Edge is a canonical axis-aligned unit segment: it runs along Dir from
// S to S+1, at the fixed coordinates (P, Q) of the two other axes in
// the same (a,b) ordering as FaceKey. Two faces (of any axis) that
// share a physical edge in space produce the same Edge value.
type Edge struct {
	Dir  Axis
	P, Q int32
	S    int32
}

// canonicalEdge builds the Edge for the segment between two lattice
// points that differ in exactly one coordinate.
func canonicalEdge(p, q Point3) Edge {
	switch {
	case p.X != q.X:
		s := p.X
		if q.X < s {
			s = q.X
		}
		return Edge{Dir: AxisX, P: p.Y, Q: p.Z, S: s}
	case p.Y != q.Y:
		s := p.Y
		if q.Y < s {
			s = q.Y
		}
		return Edge{Dir: AxisY, P: p.X, Q: p.Z, S: s}
	default:
		s := p.Z
		if q.Z < s {
			s = q.Z
		}
		return Edge{Dir: AxisZ, P: p.X, Q: p.Y, S: s}
	}
}

// EdgesOf returns the four boundary edges of face f.
func EdgesOf(f FaceKey) [4]Edge {
	c := FaceCorners(f)
	return [4]Edge{
		canonicalEdge(c[0], c[1]),
		canonicalEdge(c[1], c[2]),
		canonicalEdge(c[2], c[3]),
		canonicalEdge(c[3], c[0]),
	}
}
