package revoxel

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

// Options configures a single Revoxelize call: the rotation to apply
// and the resampling strategy used to decide which target cells end up
// occupied.
type Options struct {
	// Axis and Degrees define the rotation applied to the source solid,
	// about Pivot, before resampling onto the target lattice.
	Axis    kernel.Axis
	Degrees float64
	Pivot   Vec3

	// ConservativeOBB selects the oriented-bounding-box overlap test
	// (every source cell touched, even at a glancing corner, fills the
	// target cell) instead of point supersampling.
	ConservativeOBB bool

	// SamplesPerAxis is the supersampling grid resolution per target
	// cell when ConservativeOBB is false. Defaults to 3 if <= 0.
	SamplesPerAxis int

	// Epsilon widens cell-membership tests to absorb floating-point
	// rounding at lattice boundaries. Defaults to 1e-9 if <= 0.
	Epsilon float64
}

func (o Options) normalized() (Options, error) {
	out := o
	if out.SamplesPerAxis <= 0 {
		out.SamplesPerAxis = 3
	}
	if out.Epsilon <= 0 {
		out.Epsilon = 1e-9
	}
	if out.Axis < kernel.AxisX || out.Axis > kernel.AxisZ {
		return out, strerr.New(strerr.InvalidArgument, "revoxel: unknown axis %v", out.Axis)
	}
	return out, nil
}
