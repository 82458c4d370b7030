package scene

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/revoxel"
	"github.com/chazu/strata/pkg/strerr"
)

// Bake composes every instance in insertion order into a single solid:
// clone the part, apply any resolution override, apply the exact
// frame, apply any arbitrary rotation, then combine by role. Validation
// failures surface as strerr.InvalidArgument before any voxel work
// happens.
func (s *Scene) Bake() (*kernel.VoxelSolid, error) {
	if err := firstBlockingError(ValidateBeforeBake(s)); err != nil {
		return nil, err
	}

	accum := kernel.New()
	for _, inst := range s.Instances {
		part := s.Parts[inst.PartName]
		solid := part.Solid.Clone()

		if inst.VPUOverride != 0 && inst.VPUOverride != s.VoxelsPerUnit {
			factor := inst.VPUOverride / s.VoxelsPerUnit
			solid = replicate(solid, factor)
		}

		solid = applyFrame(solid, inst.Matrix, inst.Translation)

		if inst.Rotation != nil {
			rot := *inst.Rotation
			if rot.SamplesPerAxis <= 0 {
				rot.SamplesPerAxis = s.Revoxel.SamplesPerAxis
			}
			if rot.Epsilon <= 0 {
				rot.Epsilon = s.Revoxel.Epsilon
			}
			rotated, err := revoxel.Revoxelize(solid, toOptions(rot))
			if err != nil {
				return nil, err
			}
			solid = rotated
		}

		role := inst.Role
		accum = combine(accum, solid, role)
	}
	return accum, nil
}

func toOptions(r ArbitraryRotation) revoxel.Options {
	return revoxel.Options{
		Axis:            r.Axis,
		Degrees:         r.Degrees,
		Pivot:           r.Pivot,
		ConservativeOBB: r.ConservativeOBB,
		SamplesPerAxis:  r.SamplesPerAxis,
		Epsilon:         r.Epsilon,
	}
}

func combine(accum, solid *kernel.VoxelSolid, role Role) *kernel.VoxelSolid {
	switch role {
	case RoleHole:
		return kernel.Subtract(accum, solid)
	case RoleIntersect:
		return kernel.Intersect(accum, solid)
	default:
		return kernel.Union(accum, solid)
	}
}

func applyFrame(s *kernel.VoxelSolid, m Matrix3, t kernel.Cell) *kernel.VoxelSolid {
	out := kernel.New()
	for _, c := range s.Cells() {
		out.Add(m.apply(c).Add(t))
	}
	return out
}

// replicate expands every cell of s into a factor x factor x factor
// block, implementing a resolution upscale by an integer ratio.
func replicate(s *kernel.VoxelSolid, factor int) *kernel.VoxelSolid {
	if factor <= 1 {
		return s
	}
	out := kernel.New()
	f := int32(factor)
	for _, c := range s.Cells() {
		base := kernel.Cell{X: c.X * f, Y: c.Y * f, Z: c.Z * f}
		for dx := int32(0); dx < f; dx++ {
			for dy := int32(0); dy < f; dy++ {
				for dz := int32(0); dz < f; dz++ {
					out.Add(base.Add(kernel.Cell{X: dx, Y: dy, Z: dz}))
				}
			}
		}
	}
	return out
}

// BakeForQuality bakes the scene, then applies the scene's quality
// profile: Draft is a no-op, Medium upscales by 2 and closes at r=1
// (Chebyshev), High upscales by 3, closes, then opens.
func (s *Scene) BakeForQuality() (*kernel.VoxelSolid, error) {
	baked, err := s.Bake()
	if err != nil {
		return nil, err
	}
	switch s.Quality {
	case QualityMedium:
		up := replicate(baked, 2)
		return kernel.Close(up, 1, kernel.MetricLInf), nil
	case QualityHigh:
		up := replicate(baked, 3)
		closed := kernel.Close(up, 1, kernel.MetricLInf)
		return kernel.Open(closed, 1, kernel.MetricLInf), nil
	default:
		return baked, nil
	}
}

// RequireResolutionFactor validates that child vpu is a positive
// multiple of parent vpu and returns the integer ratio, or an
// InvalidArgument error.
func RequireResolutionFactor(parentVPU, childVPU int) (int, error) {
	if childVPU <= 0 {
		return 0, strerr.New(strerr.InvalidArgument, "vpu override must be positive, got %d", childVPU)
	}
	if childVPU%parentVPU != 0 {
		return 0, strerr.New(strerr.InvalidArgument, "vpu override %d is not a multiple of %d", childVPU, parentVPU)
	}
	return childVPU / parentVPU, nil
}
