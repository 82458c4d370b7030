package builder

import "github.com/chazu/strata/pkg/kernel"

type transformKind int

const (
	kindTranslate transformKind = iota
	kindRotate90
	kindMirror
)

// transform is one entry of a Builder's pending transform list, applied
// to primitives in push order before they are combined into the
// accumulated solid.
type transform struct {
	kind  transformKind
	axis  kernel.Axis
	turns int
	delta kernel.Cell
}

func (t transform) apply(s *kernel.VoxelSolid) *kernel.VoxelSolid {
	switch t.kind {
	case kindTranslate:
		return kernel.Translate(s, t.delta)
	case kindRotate90:
		return kernel.Rotate90(s, t.axis, t.turns)
	default:
		return kernel.Mirror(s, t.axis)
	}
}
