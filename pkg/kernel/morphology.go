package kernel

// Metric selects the distance function a structuring element is built
// from: Chebyshev (L-infinity), Manhattan (L1), or Euclidean (L2).
type Metric int

const (
	MetricLInf Metric = iota
	MetricL1
	MetricL2
)

// structuringElement returns the offsets delta with norm(delta) <= r
// under metric, i.e. E(r, metric).
func structuringElement(r int, metric Metric) []Cell {
	var elem []Cell
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				if withinMetric(dx, dy, dz, r, metric) {
					elem = append(elem, Cell{int32(dx), int32(dy), int32(dz)})
				}
			}
		}
	}
	return elem
}

func withinMetric(dx, dy, dz, r int, metric Metric) bool {
	switch metric {
	case MetricL1:
		return abs(dx)+abs(dy)+abs(dz) <= r
	case MetricL2:
		return dx*dx+dy*dy+dz*dz <= r*r
	default: // MetricLInf
		return abs(dx) <= r && abs(dy) <= r && abs(dz) <= r
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Dilate returns the Minkowski sum of s with the structuring element
// E(r, metric): every cell within the element's reach of an occupied
// cell becomes occupied. r <= 0 is identity (a clone of s).
func Dilate(s *VoxelSolid, r int, metric Metric) *VoxelSolid {
	if r <= 0 {
		return s.Clone()
	}
	elem := structuringElement(r, metric)
	out := New()
	seen := make(map[Cell]struct{})
	for c := range s.cells {
		for _, d := range elem {
			n := c.Add(d)
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out.Add(n)
		}
	}
	return out
}

// Erode returns the cells c in V such that every c+delta for delta in
// E(r, metric) is also in V. r <= 0 is identity (a clone of s).
func Erode(s *VoxelSolid, r int, metric Metric) *VoxelSolid {
	if r <= 0 {
		return s.Clone()
	}
	elem := structuringElement(r, metric)
	out := New()
	for c := range s.cells {
		keep := true
		for _, d := range elem {
			if !s.Contains(c.Add(d)) {
				keep = false
				break
			}
		}
		if keep {
			out.Add(c)
		}
	}
	return out
}

// Open returns erode(s, r, metric) then dilate of the result.
func Open(s *VoxelSolid, r int, metric Metric) *VoxelSolid {
	return Dilate(Erode(s, r, metric), r, metric)
}

// Close returns dilate(s, r, metric) then erode of the result.
func Close(s *VoxelSolid, r int, metric Metric) *VoxelSolid {
	return Erode(Dilate(s, r, metric), r, metric)
}
