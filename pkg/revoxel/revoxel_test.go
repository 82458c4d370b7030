package revoxel_test

import (
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/revoxel"
	"github.com/stretchr/testify/require"
)

func TestRevoxelizeIdentityVolume(t *testing.T) {
	src := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 4})
	for _, conservative := range []bool{false, true} {
		out, err := revoxel.Revoxelize(src, revoxel.Options{
			Axis:            kernel.AxisZ,
			Degrees:         0,
			Pivot:           revoxel.Vec3{X: 2, Y: 2, Z: 2},
			ConservativeOBB: conservative,
			SamplesPerAxis:  3,
		})
		require.NoError(t, err)
		require.True(t, kernel.IsWatertight(out))
		want := src.Len()
		if conservative {
			// Touching counts as overlap, so the OBB test also fills the
			// one-cell shell around the box: 6x6x6.
			want = 6 * 6 * 6
		}
		require.InDelta(t, want, out.Len(), float64(src.Len())/4)
	}
}

func TestRevoxelizeRotatedPanelStaysWatertight(t *testing.T) {
	panel := kernel.Subtract(
		kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{20, 20, 4}),
		kernel.CylinderZ(10, 10, 0, 4, 3),
	)
	require.True(t, kernel.IsWatertight(panel))

	for _, conservative := range []bool{false, true} {
		out, err := revoxel.Revoxelize(panel, revoxel.Options{
			Axis:            kernel.AxisZ,
			Degrees:         30,
			Pivot:           revoxel.Vec3{X: 10, Y: 10, Z: 2},
			ConservativeOBB: conservative,
			SamplesPerAxis:  4,
		})
		require.NoError(t, err)
		require.Greater(t, out.Len(), 0)
		require.True(t, kernel.IsWatertight(out), "conservative=%v", conservative)
	}
}

func TestRevoxelizeRejectsUnknownAxis(t *testing.T) {
	src := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	_, err := revoxel.Revoxelize(src, revoxel.Options{Axis: kernel.Axis(7), Degrees: 10})
	require.Error(t, err)
}

func TestRevoxelizeEmptySourceYieldsEmptyTarget(t *testing.T) {
	out, err := revoxel.Revoxelize(kernel.New(), revoxel.Options{Axis: kernel.AxisX, Degrees: 45})
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())
}
