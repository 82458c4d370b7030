package builder_test

import (
	"testing"

	"github.com/chazu/strata/pkg/builder"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/stretchr/testify/require"
)

func TestBoxAndCutBox(t *testing.T) {
	b := builder.New()
	b.Box(kernel.Cell{0, 0, 0}, kernel.Cell{10, 10, 10})
	b.CutBox(kernel.Cell{2, 2, 2}, kernel.Cell{8, 8, 8})
	require.Equal(t, 1000-216, b.Solid().Len())
	require.True(t, kernel.IsWatertight(b.Solid()))
}

func TestTranslatePushAffectsSubsequentPrimitives(t *testing.T) {
	b := builder.New()
	b.Translate(kernel.Cell{X: 5}).Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	min, maxExcl := kernel.Bounds(b.Solid())
	require.Equal(t, kernel.Cell{5, 0, 0}, min)
	require.Equal(t, kernel.Cell{7, 2, 2}, maxExcl)
}

func TestResetTransformClearsStack(t *testing.T) {
	b := builder.New()
	b.Translate(kernel.Cell{X: 100})
	b.ResetTransform()
	b.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1})
	min, _ := kernel.Bounds(b.Solid())
	require.Equal(t, kernel.Cell{0, 0, 0}, min)
}

func TestPlaceAndArrayX(t *testing.T) {
	b := builder.New()
	b.ArrayX(3, 4, func(c *builder.Builder) {
		c.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	})
	require.Equal(t, 3*8, b.Solid().Len())
}

func TestUnionSubtractIntersectScopes(t *testing.T) {
	b := builder.New()
	b.Union(func(c *builder.Builder) {
		c.Box(kernel.Cell{0, 0, 0}, kernel.Cell{5, 5, 5})
	})
	require.Equal(t, 125, b.Solid().Len())

	b.Subtract(func(c *builder.Builder) {
		c.Box(kernel.Cell{1, 1, 1}, kernel.Cell{4, 4, 4})
	})
	require.Equal(t, 125-27, b.Solid().Len())

	b2 := builder.New()
	b2.Box(kernel.Cell{0, 0, 0}, kernel.Cell{5, 5, 5})
	b2.Intersect(func(c *builder.Builder) {
		c.Box(kernel.Cell{3, 3, 3}, kernel.Cell{10, 10, 10})
	})
	require.Equal(t, 8, b2.Solid().Len())
}

func TestRotateAnyWithUnionsRevoxelizedResult(t *testing.T) {
	b := builder.New()
	_, err := b.RotateAny(kernel.AxisZ, 45, func(c *builder.Builder) {
		c.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 4})
	})
	require.NoError(t, err)
	require.Greater(t, b.Solid().Len(), 0)
}

func TestMergeDropsNils(t *testing.T) {
	a := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{1, 1, 1})
	out := builder.Merge(a, nil, kernel.Box(kernel.Cell{2, 2, 2}, kernel.Cell{3, 3, 3}))
	require.Equal(t, 2, out.Len())
}
