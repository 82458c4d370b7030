package scene_test

import (
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/scene"
	"github.com/stretchr/testify/require"
)

func TestBakeUnionHoleIntersect(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "block", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 10})})
	s.AddPart(&scene.Part{Name: "hole", Solid: kernel.Box(kernel.Cell{2, 2, 2}, kernel.Cell{8, 8, 8})})

	s.AddInstance(scene.NewInstance("block", scene.RoleSolid))
	s.AddInstance(scene.NewInstance("hole", scene.RoleHole))

	out, err := s.Bake()
	require.NoError(t, err)
	require.Equal(t, 1000-216, out.Len())
}

func TestBakeAppliesExactFrameTranslation(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "unit", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1})})
	inst := scene.NewInstance("unit", scene.RoleSolid)
	inst.Translation = kernel.Cell{X: 5, Y: 5, Z: 5}
	s.AddInstance(inst)

	out, err := s.Bake()
	require.NoError(t, err)
	require.True(t, out.Contains(kernel.Cell{5, 5, 5}))
}

func TestBakeRejectsDanglingPartReference(t *testing.T) {
	s := scene.NewScene(1)
	s.AddInstance(scene.NewInstance("missing", scene.RoleSolid))
	_, err := s.Bake()
	require.Error(t, err)
}

func TestBakeRejectsNonMultipleVPUOverride(t *testing.T) {
	s := scene.NewScene(2)
	s.AddPart(&scene.Part{Name: "unit", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1})})
	inst := scene.NewInstance("unit", scene.RoleSolid)
	inst.VPUOverride = 3
	s.AddInstance(inst)
	_, err := s.Bake()
	require.Error(t, err)
}

func TestBakeReplicatesOnResolutionUpscale(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "unit", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1})})
	inst := scene.NewInstance("unit", scene.RoleSolid)
	inst.VPUOverride = 2
	s.AddInstance(inst)

	out, err := s.Bake()
	require.NoError(t, err)
	require.Equal(t, 8, out.Len())
}

func TestBakeForQualityMediumUpscalesAndCloses(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "block", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 4})})
	s.AddInstance(scene.NewInstance("block", scene.RoleSolid))
	s.Quality = scene.QualityMedium

	out, err := s.BakeForQuality()
	require.NoError(t, err)
	require.Equal(t, 8*8*8, out.Len())
}

func TestWeldConnectsDisjointPlates(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "a", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 3})})
	s.AddPart(&scene.Part{Name: "b", Solid: kernel.Box(kernel.Cell{12, 0, 0}, kernel.Cell{22, 10, 3})})

	result, err := s.Weld("a", "b", "welded", kernel.MetricLInf)
	require.NoError(t, err)
	require.True(t, kernel.Is6Connected(result.Solid))
	require.Greater(t, result.Radius, 0)
	require.Same(t, result.Solid, s.Parts["welded"].Solid)
}

func TestWeldAlreadyConnectedReturnsRadiusZero(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "a", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{5, 5, 5})})
	s.AddPart(&scene.Part{Name: "b", Solid: kernel.Box(kernel.Cell{5, 0, 0}, kernel.Cell{10, 5, 5})})

	result, err := s.Weld("a", "b", "welded", kernel.MetricLInf)
	require.NoError(t, err)
	require.Equal(t, 0, result.Radius)
	require.True(t, kernel.Is6Connected(result.Solid))
}

func TestWeldRejectsUnknownPartName(t *testing.T) {
	s := scene.NewScene(1)
	s.AddPart(&scene.Part{Name: "a", Solid: kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{5, 5, 5})})
	_, err := s.Weld("a", "missing", "welded", kernel.MetricLInf)
	require.Error(t, err)
}

func TestBridgeAxisFillsGap(t *testing.T) {
	a := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{5, 5, 1})
	b := kernel.Box(kernel.Cell{8, 0, 0}, kernel.Cell{13, 5, 1})
	out := scene.BridgeAxis(a, b, kernel.AxisX, 1, nil)
	require.True(t, kernel.Is6Connected(out))
	require.True(t, out.Contains(kernel.Cell{6, 2, 0}))
	require.True(t, out.Contains(kernel.Cell{7, 2, 0}))
}

func TestStrutConnectsDisjointBlocks(t *testing.T) {
	a := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{3, 3, 3})
	b := kernel.Box(kernel.Cell{10, 10, 10}, kernel.Cell{13, 13, 13})
	out := scene.Strut(a, b, 1)
	require.Greater(t, out.Len(), a.Len()+b.Len())
}
