package scene

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

// WeldResult is the outcome of Weld: the closed, 6-connected union and
// the structuring-element radius that closure required.
type WeldResult struct {
	Solid  *kernel.VoxelSolid
	Radius int
}

// Weld unions the named parts partA and partB, closes the seam until
// the result is 6-connected, registers the closed solid as a new part
// named name, and returns the outcome. If the union is already
// 6-connected it is registered as-is at radius 0.
func (s *Scene) Weld(partA, partB, name string, metric kernel.Metric) (WeldResult, error) {
	a, ok := s.Parts[partA]
	if !ok {
		return WeldResult{}, strerr.New(strerr.InvalidArgument, "scene: weld: no part named %q", partA)
	}
	b, ok := s.Parts[partB]
	if !ok {
		return WeldResult{}, strerr.New(strerr.InvalidArgument, "scene: weld: no part named %q", partB)
	}
	result := weld(a.Solid, b.Solid, metric)
	s.AddPart(&Part{Name: name, Solid: result.Solid})
	return result, nil
}

// weld unions a and b; if the union is already 6-connected it is
// returned as-is at radius 0. Otherwise an initial radius guess is
// doubled (up to 16 times) until close(U, r, metric) is 6-connected,
// then the minimum radius in [1, rHigh] is found by binary search.
func weld(a, b *kernel.VoxelSolid, metric kernel.Metric) WeldResult {
	u := kernel.Union(a, b)
	if kernel.Is6Connected(u) {
		return WeldResult{Solid: u, Radius: 0}
	}

	r := chebyshevGap(a, b)
	if r < 1 {
		r = 1
	}
	rHigh := r
	closed := kernel.Close(u, rHigh, metric)
	for i := 0; i < 16 && !kernel.Is6Connected(closed); i++ {
		rHigh *= 2
		closed = kernel.Close(u, rHigh, metric)
	}
	if !kernel.Is6Connected(closed) {
		return WeldResult{Solid: closed, Radius: rHigh}
	}

	lo, hi := 1, rHigh
	for lo < hi {
		mid := (lo + hi) / 2
		if kernel.Is6Connected(kernel.Close(u, mid, metric)) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return WeldResult{Solid: kernel.Close(u, lo, metric), Radius: lo}
}

// chebyshevGap returns the Chebyshev distance between the bounding
// boxes of a and b: the minimum per-axis gap between the boxes, or 0 on
// any axis where they overlap, maxed over the three axes.
func chebyshevGap(a, b *kernel.VoxelSolid) int {
	aMin, aMax := kernel.Bounds(a)
	bMin, bMax := kernel.Bounds(b)
	gap := func(aMin, aMax, bMin, bMax int32) int32 {
		if aMax <= bMin {
			return bMin - aMax
		}
		if bMax <= aMin {
			return aMin - bMax
		}
		return 0
	}
	gx := gap(aMin.X, aMax.X, bMin.X, bMax.X)
	gy := gap(aMin.Y, aMax.Y, bMin.Y, bMax.Y)
	gz := gap(aMin.Z, aMax.Z, bMin.Z, bMax.Z)
	best := gx
	if gy > best {
		best = gy
	}
	if gz > best {
		best = gz
	}
	return int(best)
}
