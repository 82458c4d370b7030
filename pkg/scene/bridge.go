package scene

import "github.com/chazu/strata/pkg/kernel"

// AABB is an axis-aligned integer box [Min, MaxExcl), used as an
// optional mask for BridgeAxis.
type AABB struct {
	Min, MaxExcl kernel.Cell
}

// Contains reports whether c lies within the box.
func (box AABB) Contains(c kernel.Cell) bool {
	return c.X >= box.Min.X && c.X < box.MaxExcl.X &&
		c.Y >= box.Min.Y && c.Y < box.MaxExcl.Y &&
		c.Z >= box.Min.Z && c.Z < box.MaxExcl.Z
}

type ab2 struct{ p, q int32 }

func projectCell(axis kernel.Axis, c kernel.Cell) ab2 {
	switch axis {
	case kernel.AxisX:
		return ab2{c.Y, c.Z}
	case kernel.AxisY:
		return ab2{c.X, c.Z}
	default:
		return ab2{c.X, c.Y}
	}
}

func unprojectCell(axis kernel.Axis, v int32, p ab2) kernel.Cell {
	switch axis {
	case kernel.AxisX:
		return kernel.Cell{X: v, Y: p.p, Z: p.q}
	case kernel.AxisY:
		return kernel.Cell{X: p.p, Y: v, Z: p.q}
	default:
		return kernel.Cell{X: p.p, Y: p.q, Z: v}
	}
}

func footprint(s *kernel.VoxelSolid, axis kernel.Axis) map[ab2]struct{} {
	out := make(map[ab2]struct{})
	for _, c := range s.Cells() {
		out[projectCell(axis, c)] = struct{}{}
	}
	return out
}

func footprintBounds(f map[ab2]struct{}) (pMin, pMax, qMin, qMax int32) {
	first := true
	for k := range f {
		if first {
			pMin, pMax, qMin, qMax = k.p, k.p, k.q, k.q
			first = false
			continue
		}
		if k.p < pMin {
			pMin = k.p
		}
		if k.p > pMax {
			pMax = k.p
		}
		if k.q < qMin {
			qMin = k.q
		}
		if k.q > qMax {
			qMax = k.q
		}
	}
	return
}

// BridgeAxis fills the gap between A and B along axis: the footprint is
// the intersection of their projections onto the plane perpendicular to
// axis (falling back to the AABB overlap rectangle if that
// intersection is empty), and for each footprint cell material runs
// from the nearer face of the axially-earlier solid to the nearer face
// of the later one, extended by thickness-1 on the start side and
// thickness on the end side. The result is unioned with both inputs.
func BridgeAxis(a, b *kernel.VoxelSolid, axis kernel.Axis, thickness int32, mask *AABB) *kernel.VoxelSolid {
	aMin, aMax := kernel.Bounds(a)
	bMin, bMax := kernel.Bounds(b)

	aLo, aHi := axisCoord(aMin, axis), axisCoord(aMax, axis)
	bLo, bHi := axisCoord(bMin, axis), axisCoord(bMax, axis)

	earlierCenter := float64(aLo+aHi) / 2
	laterCenter := float64(bLo+bHi) / 2

	var start, endExcl int32
	if earlierCenter <= laterCenter {
		start = aHi - (thickness - 1)
		endExcl = bLo + thickness
	} else {
		start = bHi - (thickness - 1)
		endExcl = aLo + thickness
	}
	if start >= endExcl {
		return kernel.Union(a, b)
	}

	fa := footprint(a, axis)
	fb := footprint(b, axis)
	cells := intersectFootprints(fa, fb)
	if len(cells) == 0 {
		cells = overlapRectangle(fa, fb)
	}

	bridge := kernel.New()
	for p := range cells {
		for v := start; v < endExcl; v++ {
			c := unprojectCell(axis, v, p)
			if mask != nil && !mask.Contains(c) {
				continue
			}
			bridge.Add(c)
		}
	}
	return kernel.Union(kernel.Union(a, b), bridge)
}

func axisCoord(c kernel.Cell, axis kernel.Axis) int32 {
	switch axis {
	case kernel.AxisX:
		return c.X
	case kernel.AxisY:
		return c.Y
	default:
		return c.Z
	}
}

func intersectFootprints(fa, fb map[ab2]struct{}) map[ab2]struct{} {
	small, large := fa, fb
	if len(fb) < len(fa) {
		small, large = fb, fa
	}
	out := make(map[ab2]struct{})
	for k := range small {
		if _, ok := large[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func overlapRectangle(fa, fb map[ab2]struct{}) map[ab2]struct{} {
	aP0, aP1, aQ0, aQ1 := footprintBounds(fa)
	bP0, bP1, bQ0, bQ1 := footprintBounds(fb)
	p0, p1 := maxI32(aP0, bP0), minI32(aP1, bP1)
	q0, q1 := maxI32(aQ0, bQ0), minI32(aQ1, bQ1)
	out := make(map[ab2]struct{})
	if p0 > p1 || q0 > q1 {
		return out
	}
	for p := p0; p <= p1; p++ {
		for q := q0; q <= q1; q++ {
			out[ab2{p, q}] = struct{}{}
		}
	}
	return out
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
