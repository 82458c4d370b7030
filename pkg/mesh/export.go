package mesh

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

// Engine selects the surface-extraction algorithm.
type Engine int

const (
	// VoxelFaces is the greedy quad-merge face extractor (Extract).
	VoxelFaces Engine = iota
	// SurfaceNets would produce a smoothed isosurface; reserved, unbuilt.
	SurfaceNets
)

// ExtractWithEngine dispatches to the requested extraction algorithm.
// SurfaceNets is a declared but unimplemented code path.
func ExtractWithEngine(s *kernel.VoxelSolid, engine Engine) (MeshD, error) {
	switch engine {
	case VoxelFaces:
		return Extract(s), nil
	case SurfaceNets:
		return MeshD{}, strerr.New(strerr.NotImplemented, "mesh: SurfaceNets export engine is not implemented")
	default:
		return MeshD{}, strerr.New(strerr.InvalidArgument, "mesh: unknown export engine %d", int(engine))
	}
}
