package mesh_test

import (
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/mesh"
	"github.com/stretchr/testify/require"
)

func TestExtractSingleCubeSixQuads(t *testing.T) {
	s := kernel.New()
	s.Add(kernel.Cell{0, 0, 0})
	m := mesh.Extract(s)
	require.Len(t, m.Triangles, 12)
	require.Len(t, m.Vertices, 24)
}

func TestGreedyMergeReducesTriangleCountOnSlab(t *testing.T) {
	slab := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 1})
	m := mesh.Extract(slab)
	require.LessOrEqual(t, len(m.Triangles), slab.FaceCount())
	require.Less(t, len(m.Triangles), slab.FaceCount()/2)
}

func TestExtractTriangleCountNeverExceedsFaceCount(t *testing.T) {
	s := kernel.Subtract(
		kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{6, 6, 6}),
		kernel.Box(kernel.Cell{2, 2, 2}, kernel.Cell{4, 4, 4}),
	)
	m := mesh.Extract(s)
	require.LessOrEqual(t, len(m.Triangles), s.FaceCount())
}

func TestOutwardNormalsPositiveVolume(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{3, 3, 3})
	m := mesh.Extract(s)
	var vol float64
	for _, tr := range m.Triangles {
		n, ok := mesh.TriangleNormal(m, tr)
		require.True(t, ok)
		_ = n
		a, b, c := m.Vertices[tr.A], m.Vertices[tr.B], m.Vertices[tr.C]
		vol += a.X*(b.Y*c.Z-b.Z*c.Y) + a.Y*(b.Z*c.X-b.X*c.Z) + a.Z*(b.X*c.Y-b.Y*c.X)
	}
	require.Greater(t, vol/6, 0.0)
}

func TestQuantizeDropsDegenerateAndDuplicateTriangles(t *testing.T) {
	m := mesh.MeshD{
		Vertices: []mesh.Vertex{{0, 0, 0}, {0, 0, 0.0000001}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []mesh.Triangle{
			{0, 1, 2},
			{0, 2, 3},
			{3, 2, 0}, // duplicate of the previous triangle, reordered
		},
	}
	out := mesh.Quantize(m, 1, 1)
	require.Len(t, out.Triangles, 1)
}

func TestQuantizeDisabledAtZeroStep(t *testing.T) {
	m := mesh.MeshD{
		Vertices:  []mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []mesh.Triangle{{0, 1, 2}},
	}
	out := mesh.Quantize(m, 0, 1)
	require.Equal(t, m, out)
}
