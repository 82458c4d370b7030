package mesh

// reorientOutward computes the mesh's signed volume and, if negative,
// swaps the second and third index of every triangle so the overall
// winding faces outward.
func reorientOutward(m *MeshD) {
	if signedVolume(*m) >= 0 {
		return
	}
	for i, t := range m.Triangles {
		m.Triangles[i] = Triangle{t.A, t.C, t.B}
	}
}

func signedVolume(m MeshD) float64 {
	var vol float64
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
		cr := cross3(a, b)
		vol += dot3(cr, c)
	}
	return vol / 6
}

func cross3(a, b Vertex) Vertex {
	return Vertex{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func dot3(a, b Vertex) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// TriangleNormal returns the non-normalized cross-product normal of a
// triangle's two edges, and whether the triangle has nonzero area.
func TriangleNormal(m MeshD, t Triangle) (Vertex, bool) {
	a, b, c := m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
	e1 := Vertex{b.X - a.X, b.Y - a.Y, b.Z - a.Z}
	e2 := Vertex{c.X - a.X, c.Y - a.Y, c.Z - a.Z}
	n := cross3(e1, e2)
	lenSq := dot3(n, n)
	return n, lenSq > 0
}
