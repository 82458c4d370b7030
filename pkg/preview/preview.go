// Package preview renders a debug slice of a kernel.VoxelSolid as SVG:
// one axis-aligned lattice plane drawn as a grid of filled/empty cells.
package preview

import (
	"io"

	"github.com/ajstarks/svgo"
	"github.com/chazu/strata/pkg/kernel"
)

const cellPixels = 16

// SliceSVG renders the plane perpendicular to axis at coordinate k as an
// SVG grid: occupied cells are filled, empty cells are outlined only.
func SliceSVG(w io.Writer, s *kernel.VoxelSolid, axis kernel.Axis, k int32) {
	min, maxExcl := kernel.Bounds(s)
	aMin, aMax, bMin, bMax := sliceExtent(min, maxExcl, axis)

	width := int(aMax-aMin) * cellPixels
	height := int(bMax-bMin) * cellPixels
	if width <= 0 || height <= 0 {
		width, height = cellPixels, cellPixels
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	for a := aMin; a < aMax; a++ {
		for b := bMin; b < bMax; b++ {
			c := sliceCell(axis, k, a, b)
			fill := "white"
			if s.Contains(c) {
				fill = "black"
			}
			x := int(a-aMin) * cellPixels
			y := int(b-bMin) * cellPixels
			canvas.Rect(x, y, cellPixels, cellPixels, "fill:"+fill+";stroke:gray")
		}
	}
	canvas.End()
}

func sliceExtent(min, maxExcl kernel.Cell, axis kernel.Axis) (aMin, aMax, bMin, bMax int32) {
	switch axis {
	case kernel.AxisX:
		return min.Y, maxExcl.Y, min.Z, maxExcl.Z
	case kernel.AxisY:
		return min.X, maxExcl.X, min.Z, maxExcl.Z
	default:
		return min.X, maxExcl.X, min.Y, maxExcl.Y
	}
}

func sliceCell(axis kernel.Axis, k, a, b int32) kernel.Cell {
	switch axis {
	case kernel.AxisX:
		return kernel.Cell{X: k, Y: a, Z: b}
	case kernel.AxisY:
		return kernel.Cell{X: a, Y: k, Z: b}
	default:
		return kernel.Cell{X: a, Y: b, Z: k}
	}
}
