package scene

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/dhconnelly/rtreego"
)

var struttNeighbor6 = [6]kernel.Cell{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

func exposedSurfaceCells(s *kernel.VoxelSolid) []kernel.Cell {
	var out []kernel.Cell
	for _, c := range s.Cells() {
		for _, d := range struttNeighbor6 {
			if !s.Contains(c.Add(d)) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

type cellPoint struct {
	cell kernel.Cell
}

func (p cellPoint) Bounds() *rtreego.Rect {
	pt := rtreego.Point{float64(p.cell.X), float64(p.cell.Y), float64(p.cell.Z)}
	r, _ := rtreego.NewRect(pt, []float64{1e-6, 1e-6, 1e-6})
	return r
}

// nearestSurfacePair finds the closest pair (one from each set) by
// squared Euclidean distance, using an R-tree over b's cells so each
// a-cell query is a nearest-neighbor lookup rather than a full scan.
func nearestSurfacePair(a, b []kernel.Cell) (kernel.Cell, kernel.Cell) {
	tree := rtreego.NewTree(3, 25, 50)
	for _, c := range b {
		tree.Insert(cellPoint{c})
	}

	var bestA, bestB kernel.Cell
	bestDist := int64(-1)
	for _, ca := range a {
		p := rtreego.Point{float64(ca.X), float64(ca.Y), float64(ca.Z)}
		hits := tree.NearestNeighbors(1, p)
		for _, h := range hits {
			cb := h.(cellPoint).cell
			d := sqDist(ca, cb)
			if bestDist < 0 || d < bestDist {
				bestDist, bestA, bestB = d, ca, cb
			}
		}
	}
	return bestA, bestB
}

func sqDist(a, b kernel.Cell) int64 {
	dx := int64(a.X - b.X)
	dy := int64(a.Y - b.Y)
	dz := int64(a.Z - b.Z)
	return dx*dx + dy*dy + dz*dz
}

// bresenham3D rasterizes a 3D line between two lattice points using the
// driving-axis Bresenham algorithm generalized to three dimensions.
func bresenham3D(from, to kernel.Cell) []kernel.Cell {
	dx := abs32(to.X - from.X)
	dy := abs32(to.Y - from.Y)
	dz := abs32(to.Z - from.Z)
	sx := sign32(to.X - from.X)
	sy := sign32(to.Y - from.Y)
	sz := sign32(to.Z - from.Z)

	var out []kernel.Cell
	c := from
	if dx >= dy && dx >= dz {
		p1, p2 := 2*dy-dx, 2*dz-dx
		for i := int32(0); i < dx; i++ {
			out = append(out, c)
			if p1 >= 0 {
				c.Y += sy
				p1 -= 2 * dx
			}
			if p2 >= 0 {
				c.Z += sz
				p2 -= 2 * dx
			}
			p1 += 2 * dy
			p2 += 2 * dz
			c.X += sx
		}
	} else if dy >= dx && dy >= dz {
		p1, p2 := 2*dx-dy, 2*dz-dy
		for i := int32(0); i < dy; i++ {
			out = append(out, c)
			if p1 >= 0 {
				c.X += sx
				p1 -= 2 * dy
			}
			if p2 >= 0 {
				c.Z += sz
				p2 -= 2 * dy
			}
			p1 += 2 * dx
			p2 += 2 * dz
			c.Y += sy
		}
	} else {
		p1, p2 := 2*dy-dz, 2*dx-dz
		for i := int32(0); i < dz; i++ {
			out = append(out, c)
			if p1 >= 0 {
				c.Y += sy
				p1 -= 2 * dz
			}
			if p2 >= 0 {
				c.X += sx
				p2 -= 2 * dz
			}
			p1 += 2 * dy
			p2 += 2 * dx
			c.Z += sz
		}
	}
	out = append(out, to)
	return out
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign32(x int32) int32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Strut finds the closest pair of surface cells between a and b,
// rasterizes a 3D line between them, thickens it by the L-infinity
// structuring element of the given radius, and unions the result with
// both inputs.
func Strut(a, b *kernel.VoxelSolid, radius int) *kernel.VoxelSolid {
	sa := exposedSurfaceCells(a)
	sb := exposedSurfaceCells(b)
	if len(sa) == 0 || len(sb) == 0 {
		return kernel.Union(a, b)
	}

	from, to := nearestSurfacePair(sa, sb)
	line := kernel.New()
	for _, c := range bresenham3D(from, to) {
		line.Add(c)
	}
	thick := kernel.Dilate(line, radius, kernel.MetricLInf)
	return kernel.Union(kernel.Union(a, b), thick)
}
