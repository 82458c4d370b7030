package revoxel

import (
	"math"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/dhconnelly/rtreego"
)

const cellRectSide = 1.0

// cellSpatial makes a kernel.Cell usable as an rtreego.Spatial, so the
// source solid's occupied cells can be indexed and queried by AABB.
type cellSpatial struct {
	cell kernel.Cell
}

func (s cellSpatial) Bounds() *rtreego.Rect {
	p := rtreego.Point{float64(s.cell.X), float64(s.cell.Y), float64(s.cell.Z)}
	r, _ := rtreego.NewRect(p, []float64{cellRectSide, cellRectSide, cellRectSide})
	return r
}

// sourceIndex wraps an rtreego R-tree over a source solid's occupied
// cells, used to prefilter OBB-mode candidates instead of scanning a
// raw integer range against every source cell.
type sourceIndex struct {
	tree *rtreego.Rtree
}

func buildSourceIndex(src *kernel.VoxelSolid) *sourceIndex {
	tree := rtreego.NewTree(3, 25, 50)
	for _, c := range src.Cells() {
		tree.Insert(cellSpatial{c})
	}
	return &sourceIndex{tree: tree}
}

// candidates returns every indexed source cell whose unit AABB
// intersects the world AABB [center-extent, center+extent].
func (idx *sourceIndex) candidates(center Vec3, extent Vec3) []kernel.Cell {
	lo := Vec3{center.X - extent.X, center.Y - extent.Y, center.Z - extent.Z}
	hi := Vec3{center.X + extent.X, center.Y + extent.Y, center.Z + extent.Z}
	lengths := []float64{hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-6
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{lo.X, lo.Y, lo.Z}, lengths)
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	out := make([]kernel.Cell, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(cellSpatial).cell)
	}
	return out
}

// Revoxelize resamples src onto a target lattice rotated by opts.Degrees
// about opts.Axis and opts.Pivot. With ConservativeOBB, a target cell is
// filled if its rotated cube touches any occupied source cell; otherwise
// it is filled only if at least one of its supersample points lands in
// an occupied source cell.
func Revoxelize(src *kernel.VoxelSolid, opts Options) (*kernel.VoxelSolid, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if src.Len() == 0 {
		return kernel.New(), nil
	}

	fwd := RotationAboutAxis(opts.Axis, opts.Degrees)
	inv := fwd.Transpose()

	targetMin, targetMaxExcl := targetBounds(src, fwd, opts.Pivot, opts.Epsilon)

	out := kernel.New()
	if opts.ConservativeOBB {
		fillByOBB(out, src, inv, opts, targetMin, targetMaxExcl)
	} else {
		fillBySupersampling(out, src, inv, opts, targetMin, targetMaxExcl)
	}
	return out, nil
}

// worldToSource maps a point p in target/world space back to source
// space: pivot + inv*(p - pivot), where inv is the forward rotation's
// transpose (its inverse, since rotations are orthonormal).
func worldToSource(p, pivot Vec3, inv Mat3) Vec3 {
	return pivot.Add(inv.MulVec(p.Sub(pivot)))
}

// targetBounds rotates the source's bounding box (padded by one cell on
// every side so corner-clipped rotations are not truncated) about pivot
// and returns the floor/ceil envelope, widened by epsilon, as the
// target lattice range [min, maxExcl).
func targetBounds(src *kernel.VoxelSolid, fwd Mat3, pivot Vec3, epsilon float64) (kernel.Cell, kernel.Cell) {
	min, maxExcl := kernel.Bounds(src)
	lo := Vec3{float64(min.X - 1), float64(min.Y - 1), float64(min.Z - 1)}
	hi := Vec3{float64(maxExcl.X + 1), float64(maxExcl.Y + 1), float64(maxExcl.Z + 1)}

	var rlo, rhi Vec3
	first := true
	for _, corner := range cornersOf(lo, hi) {
		rc := pivot.Add(fwd.MulVec(corner.Sub(pivot)))
		if first {
			rlo, rhi = rc, rc
			first = false
			continue
		}
		rlo = Vec3{math.Min(rlo.X, rc.X), math.Min(rlo.Y, rc.Y), math.Min(rlo.Z, rc.Z)}
		rhi = Vec3{math.Max(rhi.X, rc.X), math.Max(rhi.Y, rc.Y), math.Max(rhi.Z, rc.Z)}
	}

	tmin := kernel.Cell{
		X: int32(math.Floor(rlo.X - epsilon)),
		Y: int32(math.Floor(rlo.Y - epsilon)),
		Z: int32(math.Floor(rlo.Z - epsilon)),
	}
	tmax := kernel.Cell{
		X: int32(math.Ceil(rhi.X + epsilon)),
		Y: int32(math.Ceil(rhi.Y + epsilon)),
		Z: int32(math.Ceil(rhi.Z + epsilon)),
	}
	return tmin, tmax
}

func cornersOf(lo, hi Vec3) [8]Vec3 {
	return [8]Vec3{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {lo.X, hi.Y, lo.Z}, {lo.X, lo.Y, hi.Z},
		{hi.X, hi.Y, lo.Z}, {hi.X, lo.Y, hi.Z}, {lo.X, hi.Y, hi.Z}, {hi.X, hi.Y, hi.Z},
	}
}

// floorTol floors x, snapping up to the next integer when x sits within
// epsilon below it, so samples landing almost exactly on a cell
// boundary don't fall into the wrong cell under rounding noise.
func floorTol(x, epsilon float64) int32 {
	f := math.Floor(x)
	if x-f > 1-epsilon {
		f++
	}
	return int32(f)
}

func fillBySupersampling(out *kernel.VoxelSolid, src *kernel.VoxelSolid, inv Mat3, opts Options, min, maxExcl kernel.Cell) {
	n := opts.SamplesPerAxis
	step := 1.0 / float64(n)
	for tx := min.X; tx < maxExcl.X; tx++ {
		for ty := min.Y; ty < maxExcl.Y; ty++ {
			for tz := min.Z; tz < maxExcl.Z; tz++ {
				if sampleCellFilled(src, inv, opts, tx, ty, tz, n, step) {
					out.Add(kernel.Cell{X: tx, Y: ty, Z: tz})
				}
			}
		}
	}
}

func sampleCellFilled(src *kernel.VoxelSolid, inv Mat3, opts Options, tx, ty, tz int32, n int, step float64) bool {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := Vec3{
					float64(tx) + (float64(i)+0.5)*step,
					float64(ty) + (float64(j)+0.5)*step,
					float64(tz) + (float64(k)+0.5)*step,
				}
				sp := worldToSource(p, opts.Pivot, inv)
				cand := kernel.Cell{
					X: floorTol(sp.X, opts.Epsilon),
					Y: floorTol(sp.Y, opts.Epsilon),
					Z: floorTol(sp.Z, opts.Epsilon),
				}
				if !src.Contains(cand) {
					continue
				}
				if sp.X >= float64(cand.X)-opts.Epsilon && sp.X < float64(cand.X)+1+opts.Epsilon &&
					sp.Y >= float64(cand.Y)-opts.Epsilon && sp.Y < float64(cand.Y)+1+opts.Epsilon &&
					sp.Z >= float64(cand.Z)-opts.Epsilon && sp.Z < float64(cand.Z)+1+opts.Epsilon {
					return true
				}
			}
		}
	}
	return false
}

var worldAxes = [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
var cubeHalf = [3]float64{0.5, 0.5, 0.5}

func fillByOBB(out *kernel.VoxelSolid, src *kernel.VoxelSolid, inv Mat3, opts Options, min, maxExcl kernel.Cell) {
	idx := buildSourceIndex(src)
	localAxes := [3]Vec3{inv.Col(0), inv.Col(1), inv.Col(2)}
	extent := obbWorldExtent(localAxes, cubeHalf)
	extent = Vec3{extent.X + opts.Epsilon, extent.Y + opts.Epsilon, extent.Z + opts.Epsilon}

	for tx := min.X; tx < maxExcl.X; tx++ {
		for ty := min.Y; ty < maxExcl.Y; ty++ {
			for tz := min.Z; tz < maxExcl.Z; tz++ {
				center := Vec3{float64(tx) + 0.5, float64(ty) + 0.5, float64(tz) + 0.5}
				obbCenter := worldToSource(center, opts.Pivot, inv)
				for _, sc := range idx.candidates(obbCenter, extent) {
					scCenter := Vec3{float64(sc.X) + 0.5, float64(sc.Y) + 0.5, float64(sc.Z) + 0.5}
					if obbOverlap(obbCenter, localAxes, cubeHalf, scCenter, worldAxes, cubeHalf) {
						out.Add(kernel.Cell{X: tx, Y: ty, Z: tz})
						break
					}
				}
			}
		}
	}
}
