package revoxel

import "math"

// satEpsilon is added to every absolute projected-axis entry to mask the
// degenerate near-parallel-axis case where a cross product of two near
// parallel edges has near-zero length (Ericson, Real-Time Collision
// Detection, ch.4).
const satEpsilon = 1e-9

func dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// obbWorldExtent returns, for each world axis, the half-width of the
// smallest AABB enclosing an oriented box with the given local axes and
// half-extents: e_i = sum_j |axes[j] . e_i| * half[j].
func obbWorldExtent(axes [3]Vec3, half [3]float64) Vec3 {
	var e [3]float64
	comp := func(v Vec3, i int) float64 {
		switch i {
		case 0:
			return v.X
		case 1:
			return v.Y
		default:
			return v.Z
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e[i] += math.Abs(comp(axes[j], i)) * half[j]
		}
	}
	return Vec3{e[0], e[1], e[2]}
}

// obbOverlap reports whether two oriented boxes intersect, via the
// 15-axis separating axis test over each box's three face normals and
// their nine pairwise cross products. axesA/axesB are each box's three
// orthonormal local axes; halfA/halfB are the half-extents along those
// axes; centerA/centerB are box centers in the shared world frame.
func obbOverlap(centerA Vec3, axesA [3]Vec3, halfA [3]float64, centerB Vec3, axesB [3]Vec3, halfB [3]float64) bool {
	t := centerB.Sub(centerA)

	// R[i][j] = dot(axesA[i], axesB[j]); absR adds satEpsilon per entry.
	var r, absR [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = dot(axesA[i], axesB[j])
			absR[i][j] = math.Abs(r[i][j]) + satEpsilon
		}
	}

	// t expressed in A's frame.
	tA := [3]float64{dot(t, axesA[0]), dot(t, axesA[1]), dot(t, axesA[2])}

	// Axes L = axesA[i].
	for i := 0; i < 3; i++ {
		ra := halfA[i]
		rb := halfB[0]*absR[i][0] + halfB[1]*absR[i][1] + halfB[2]*absR[i][2]
		if math.Abs(tA[i]) > ra+rb {
			return false
		}
	}

	// Axes L = axesB[j].
	for j := 0; j < 3; j++ {
		ra := halfA[0]*absR[0][j] + halfA[1]*absR[1][j] + halfA[2]*absR[2][j]
		rb := halfB[j]
		tB := tA[0]*r[0][j] + tA[1]*r[1][j] + tA[2]*r[2][j]
		if math.Abs(tB) > ra+rb {
			return false
		}
	}

	// Axes L = axesA[i] x axesB[j], nine combinations.
	idx := [3][3]int{{1, 2, 0}, {2, 0, 1}, {0, 1, 2}}
	for i := 0; i < 3; i++ {
		i1, i2 := idx[i][0], idx[i][1]
		for j := 0; j < 3; j++ {
			j1, j2 := idx[j][0], idx[j][1]
			ra := halfA[i1]*absR[i2][j] + halfA[i2]*absR[i1][j]
			rb := halfB[j1]*absR[i][j2] + halfB[j2]*absR[i][j1]
			tl := tA[i2]*r[i1][j] - tA[i1]*r[i2][j]
			if math.Abs(tl) > ra+rb {
				return false
			}
		}
	}

	return true
}
