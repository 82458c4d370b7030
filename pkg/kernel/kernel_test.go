package kernel_test

import (
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/stretchr/testify/require"
)

func TestBoxVolumeAndSurfaceArea(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 1})
	require.Equal(t, 4, s.Len())
	require.Equal(t, 16, s.FaceCount())
	require.True(t, kernel.IsWatertight(s))
}

func TestAddRemoveTogglesFaces(t *testing.T) {
	s := kernel.New()
	c := kernel.Cell{5, 5, 5}
	s.Add(c)
	require.Equal(t, 6, s.FaceCount())
	s.Add(c) // no-op
	require.Equal(t, 6, s.FaceCount())
	s.Remove(c)
	require.Equal(t, 0, s.FaceCount())
	require.Equal(t, 0, s.Len())
}

func TestBVInvariantAcrossSequence(t *testing.T) {
	s := kernel.New()
	cells := []kernel.Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 0}}
	for _, c := range cells {
		if s.Contains(c) {
			s.Remove(c)
		} else {
			s.Add(c)
		}
	}
	checkBVInvariant(t, s)
}

// checkBVInvariant verifies f in B iff exactly one adjacent cell is in V.
func checkBVInvariant(t *testing.T, s *kernel.VoxelSolid) {
	t.Helper()
	for _, f := range s.Faces() {
		a, b := adjacentCells(f)
		require.True(t, s.Contains(a) != s.Contains(b), "face %+v inconsistent", f)
	}
}

func adjacentCells(f kernel.FaceKey) (low, high kernel.Cell) {
	switch f.Axis {
	case kernel.AxisX:
		return kernel.Cell{f.K - 1, f.A, f.B}, kernel.Cell{f.K, f.A, f.B}
	case kernel.AxisY:
		return kernel.Cell{f.A, f.K - 1, f.B}, kernel.Cell{f.A, f.K, f.B}
	default:
		return kernel.Cell{f.A, f.B, f.K - 1}, kernel.Cell{f.A, f.B, f.K}
	}
}

func TestHoleRole(t *testing.T) {
	solid := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 10})
	hole := kernel.Box(kernel.Cell{2, 2, 2}, kernel.Cell{8, 8, 8})
	out := kernel.Subtract(solid, hole)
	require.Equal(t, 1000-216, out.Len())
	require.True(t, kernel.IsWatertight(out))
}

func TestBooleanLaws(t *testing.T) {
	a := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{3, 3, 3})
	b := kernel.Box(kernel.Cell{1, 1, 1}, kernel.Cell{4, 4, 4})
	c := kernel.Box(kernel.Cell{2, 2, 2}, kernel.Cell{5, 5, 5})

	require.ElementsMatch(t, kernel.Union(a, b).Cells(), kernel.Union(b, a).Cells())
	require.ElementsMatch(t, kernel.Intersect(a, b).Cells(), kernel.Intersect(b, a).Cells())
	require.Equal(t, 0, kernel.Subtract(a, a).Len())
	require.ElementsMatch(t, kernel.Subtract(a, kernel.New()).Cells(), a.Cells())

	lhs := kernel.Intersect(a, kernel.Union(b, c))
	rhs := kernel.Union(kernel.Intersect(a, b), kernel.Intersect(a, c))
	require.ElementsMatch(t, lhs.Cells(), rhs.Cells())

	require.ElementsMatch(t, kernel.Intersect(a, a).Cells(), a.Cells())
}

func TestResolutionScaling(t *testing.T) {
	box1 := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 2})
	require.Equal(t, 200, box1.Len())

	box2 := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{20, 20, 4})
	require.Equal(t, 1600, box2.Len())
}

func TestRotate90AndMirrorPreserveVolume(t *testing.T) {
	s := kernel.Box(kernel.Cell{-2, -1, 0}, kernel.Cell{3, 4, 5})
	for axis := kernel.AxisX; axis <= kernel.AxisZ; axis++ {
		r := kernel.Rotate90(s, axis, 1)
		require.Equal(t, s.Len(), r.Len())
		require.True(t, kernel.IsWatertight(r))
	}
	m := kernel.Mirror(s, kernel.AxisX)
	require.Equal(t, s.Len(), m.Len())
	require.True(t, kernel.IsWatertight(m))

	// Four quarter turns return to the original cell set.
	r := s
	for i := 0; i < 4; i++ {
		r = kernel.Rotate90(r, kernel.AxisZ, 1)
	}
	require.ElementsMatch(t, s.Cells(), r.Cells())
}

func TestBoundsEmptyAndBox(t *testing.T) {
	min, maxExcl := kernel.Bounds(kernel.New())
	require.Equal(t, kernel.Cell{}, min)
	require.Equal(t, kernel.Cell{}, maxExcl)

	s := kernel.Box(kernel.Cell{1, 2, 3}, kernel.Cell{4, 6, 8})
	min, maxExcl = kernel.Bounds(s)
	require.Equal(t, kernel.Cell{1, 2, 3}, min)
	require.Equal(t, kernel.Cell{4, 6, 8}, maxExcl)
}

func TestIs6Connected(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{3, 3, 3})
	require.True(t, kernel.Is6Connected(s))

	disjoint := kernel.Union(
		kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1}),
		kernel.Box(kernel.Cell{5, 5, 5}, kernel.Cell{6, 6, 6}),
	)
	require.False(t, kernel.Is6Connected(disjoint))
}

func TestMorphologyIdentityAtZeroRadius(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 4})
	require.ElementsMatch(t, s.Cells(), kernel.Dilate(s, 0, kernel.MetricLInf).Cells())
	require.ElementsMatch(t, s.Cells(), kernel.Erode(s, -1, kernel.MetricL1).Cells())
}

func TestMorphologyOpenCloseOnBox(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{8, 8, 8})
	closed := kernel.Close(s, 1, kernel.MetricLInf)
	require.True(t, kernel.IsWatertight(closed))
	opened := kernel.Open(s, 1, kernel.MetricLInf)
	require.True(t, kernel.IsWatertight(opened))
	// A solid box is unaffected by a small open (no thin features to erase).
	require.Equal(t, s.Len(), opened.Len())
}

func TestMorphologyErodesThinFeature(t *testing.T) {
	// A single-cell-thick plate is entirely removed by erosion at r=1.
	plate := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 1})
	eroded := kernel.Erode(plate, 1, kernel.MetricLInf)
	require.Equal(t, 0, eroded.Len())
}

func TestDilateL1VsLInfDiffer(t *testing.T) {
	s := kernel.New()
	s.Add(kernel.Cell{0, 0, 0})
	l1 := kernel.Dilate(s, 1, kernel.MetricL1)
	linf := kernel.Dilate(s, 1, kernel.MetricLInf)
	require.Equal(t, 7, l1.Len())  // center + 6 face neighbors
	require.Equal(t, 27, linf.Len()) // full 3x3x3 cube
}
