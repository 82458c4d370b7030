// Package builder implements a fluent, imperative builder over a
// kernel.VoxelSolid: a transform stack for positioning primitives, and
// nested scopes for booleans, arrays, and arbitrary-rotation
// sub-assemblies.
package builder

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/revoxel"
	"github.com/samber/lo"
)

// Builder owns one accumulating solid and the transform list applied to
// every primitive emitted from here on.
type Builder struct {
	solid *kernel.VoxelSolid
	stack []transform
}

// New returns an empty Builder with no pending transform.
func New() *Builder {
	return &Builder{solid: kernel.New()}
}

// Solid returns the builder's accumulated solid.
func (b *Builder) Solid() *kernel.VoxelSolid { return b.solid }

func (b *Builder) clone() []transform {
	return append([]transform(nil), b.stack...)
}

// Translate pushes a translation onto the transform list.
func (b *Builder) Translate(delta kernel.Cell) *Builder {
	b.stack = append(b.stack, transform{kind: kindTranslate, delta: delta})
	return b
}

// Rotate90 pushes a canonical quarter-turn rotation onto the transform list.
func (b *Builder) Rotate90(axis kernel.Axis, quarterTurns int) *Builder {
	b.stack = append(b.stack, transform{kind: kindRotate90, axis: axis, turns: quarterTurns})
	return b
}

// Mirror pushes a mirror reflection onto the transform list.
func (b *Builder) Mirror(axis kernel.Axis) *Builder {
	b.stack = append(b.stack, transform{kind: kindMirror, axis: axis})
	return b
}

// ResetTransform clears the transform list.
func (b *Builder) ResetTransform() *Builder {
	b.stack = nil
	return b
}

func (b *Builder) applyStack(s *kernel.VoxelSolid) *kernel.VoxelSolid {
	for _, t := range b.stack {
		s = t.apply(s)
	}
	return s
}

func (b *Builder) emit(primitive *kernel.VoxelSolid) {
	b.solid = kernel.Union(b.solid, b.applyStack(primitive))
}

func (b *Builder) cut(primitive *kernel.VoxelSolid) {
	b.solid = kernel.Subtract(b.solid, b.applyStack(primitive))
}

// Box materializes a box primitive, applies the current transform
// stack, and adds it to the solid.
func (b *Builder) Box(min, maxExcl kernel.Cell) *Builder {
	b.emit(kernel.Box(min, maxExcl))
	return b
}

// CutBox materializes a box primitive and removes it from the solid.
func (b *Builder) CutBox(min, maxExcl kernel.Cell) *Builder {
	b.cut(kernel.Box(min, maxExcl))
	return b
}

// Sphere materializes a sphere primitive and adds it to the solid.
func (b *Builder) Sphere(center kernel.Cell, r float64) *Builder {
	b.emit(kernel.Sphere(center, r))
	return b
}

// CutSphere materializes a sphere primitive and removes it from the solid.
func (b *Builder) CutSphere(center kernel.Cell, r float64) *Builder {
	b.cut(kernel.Sphere(center, r))
	return b
}

// CylinderX materializes an X-axis cylinder and adds it to the solid.
func (b *Builder) CylinderX(cy, cz, xMin, xMaxExcl int32, r float64) *Builder {
	b.emit(kernel.CylinderX(cy, cz, xMin, xMaxExcl, r))
	return b
}

// CutCylinderX materializes an X-axis cylinder and removes it from the solid.
func (b *Builder) CutCylinderX(cy, cz, xMin, xMaxExcl int32, r float64) *Builder {
	b.cut(kernel.CylinderX(cy, cz, xMin, xMaxExcl, r))
	return b
}

// CylinderY materializes a Y-axis cylinder and adds it to the solid.
func (b *Builder) CylinderY(cx, cz, yMin, yMaxExcl int32, r float64) *Builder {
	b.emit(kernel.CylinderY(cx, cz, yMin, yMaxExcl, r))
	return b
}

// CutCylinderY materializes a Y-axis cylinder and removes it from the solid.
func (b *Builder) CutCylinderY(cx, cz, yMin, yMaxExcl int32, r float64) *Builder {
	b.cut(kernel.CylinderY(cx, cz, yMin, yMaxExcl, r))
	return b
}

// CylinderZ materializes a Z-axis cylinder and adds it to the solid.
func (b *Builder) CylinderZ(cx, cy, zMin, zMaxExcl int32, r float64) *Builder {
	b.emit(kernel.CylinderZ(cx, cy, zMin, zMaxExcl, r))
	return b
}

// CutCylinderZ materializes a Z-axis cylinder and removes it from the solid.
func (b *Builder) CutCylinderZ(cx, cy, zMin, zMaxExcl int32, r float64) *Builder {
	b.cut(kernel.CylinderZ(cx, cy, zMin, zMaxExcl, r))
	return b
}

// Place runs scope on a child builder seeded with the current transform
// stack extended by delta, then unions the child's solid in.
func (b *Builder) Place(delta kernel.Cell, scope func(*Builder)) *Builder {
	child := &Builder{solid: kernel.New(), stack: append(b.clone(), transform{kind: kindTranslate, delta: delta})}
	scope(child)
	b.solid = kernel.Union(b.solid, child.solid)
	return b
}

// ArrayX repeats scope count times, each instance offset by i*pitch
// along X from the current transform stack.
func (b *Builder) ArrayX(count int, pitch int32, scope func(*Builder)) *Builder {
	for i := 0; i < count; i++ {
		b.Place(kernel.Cell{X: int32(i) * pitch}, scope)
	}
	return b
}

// ArrayY repeats scope count times, each instance offset by i*pitch
// along Y from the current transform stack.
func (b *Builder) ArrayY(count int, pitch int32, scope func(*Builder)) *Builder {
	for i := 0; i < count; i++ {
		b.Place(kernel.Cell{Y: int32(i) * pitch}, scope)
	}
	return b
}

// Grid repeats scope across an X-by-Y grid of instances.
func (b *Builder) Grid(countX, countY int, pitchX, pitchY int32, scope func(*Builder)) *Builder {
	for i := 0; i < countX; i++ {
		for j := 0; j < countY; j++ {
			b.Place(kernel.Cell{X: int32(i) * pitchX, Y: int32(j) * pitchY}, scope)
		}
	}
	return b
}

// Union runs scope on a fresh child solid (inheriting the current
// transform stack) and unions its result in.
func (b *Builder) Union(scope func(*Builder)) *Builder {
	child := &Builder{solid: kernel.New(), stack: b.clone()}
	scope(child)
	b.solid = kernel.Union(b.solid, child.solid)
	return b
}

// Subtract runs scope on a fresh child solid and removes its result
// from the accumulated solid.
func (b *Builder) Subtract(scope func(*Builder)) *Builder {
	child := &Builder{solid: kernel.New(), stack: b.clone()}
	scope(child)
	b.solid = kernel.Subtract(b.solid, child.solid)
	return b
}

// Intersect runs scope on a fresh child solid and intersects its result
// with the accumulated solid.
func (b *Builder) Intersect(scope func(*Builder)) *Builder {
	child := &Builder{solid: kernel.New(), stack: b.clone()}
	scope(child)
	b.solid = kernel.Intersect(b.solid, child.solid)
	return b
}

// RotateAnyWith runs scope on a fresh, transform-free child solid,
// revoxelizes it by axis/degrees/pivot under opts, and unions the
// result in. Composed under Subtract or Intersect, the net effect is a
// rotated cut or a rotated mask, without any special-casing here.
func (b *Builder) RotateAnyWith(axis kernel.Axis, degrees float64, pivot revoxel.Vec3, opts revoxel.Options, scope func(*Builder)) (*Builder, error) {
	child := &Builder{solid: kernel.New()}
	scope(child)
	opts.Axis, opts.Degrees, opts.Pivot = axis, degrees, pivot
	rotated, err := revoxel.Revoxelize(child.solid, opts)
	if err != nil {
		return b, err
	}
	b.solid = kernel.Union(b.solid, rotated)
	return b, nil
}

// RotateAnyAround is RotateAnyWith with default resampling options
// (supersampling, 3 samples per axis).
func (b *Builder) RotateAnyAround(axis kernel.Axis, degrees float64, pivot revoxel.Vec3, scope func(*Builder)) (*Builder, error) {
	return b.RotateAnyWith(axis, degrees, pivot, revoxel.Options{}, scope)
}

// RotateAny is RotateAnyAround pivoted at the origin.
func (b *Builder) RotateAny(axis kernel.Axis, degrees float64, scope func(*Builder)) (*Builder, error) {
	return b.RotateAnyAround(axis, degrees, revoxel.Vec3{}, scope)
}

// Merge unions every non-nil solid into one, dropping nils.
func Merge(solids ...*kernel.VoxelSolid) *kernel.VoxelSolid {
	out := kernel.New()
	for _, s := range lo.Filter(solids, func(s *kernel.VoxelSolid, _ int) bool { return s != nil }) {
		out = kernel.Union(out, s)
	}
	return out
}
