// Package scene composes named parts into positioned instances, bakes
// them into a single occupancy set via per-instance booleans, applies
// quality-profile morphological refinement, and derives connective
// geometry between parts (Weld, BridgeAxis, Strut).
package scene

import (
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/revoxel"
	"github.com/google/uuid"
)

// Role selects how an instance combines into the bake accumulator.
type Role int

const (
	RoleSolid Role = iota
	RoleHole
	RoleIntersect
)

// Quality selects the post-bake morphological refinement profile.
type Quality int

const (
	QualityDraft Quality = iota
	QualityMedium
	QualityHigh
)

// Part is a named, immutable solid with a default combination role.
type Part struct {
	Name  string
	Solid *kernel.VoxelSolid
	Role  Role
}

// Matrix3 is a 3x3 integer matrix, used for an instance's exact frame.
// The identity matrix leaves cells unrotated.
type Matrix3 struct {
	Rows [3][3]int32
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{Rows: [3][3]int32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

func (m Matrix3) apply(c kernel.Cell) kernel.Cell {
	r := m.Rows
	return kernel.Cell{
		X: r[0][0]*c.X + r[0][1]*c.Y + r[0][2]*c.Z,
		Y: r[1][0]*c.X + r[1][1]*c.Y + r[1][2]*c.Z,
		Z: r[2][0]*c.X + r[2][1]*c.Y + r[2][2]*c.Z,
	}
}

// ArbitraryRotation is an instance's optional post-frame rotation,
// applied via the revoxelizer after the exact integer frame.
type ArbitraryRotation struct {
	Axis            kernel.Axis
	Degrees         float64
	Pivot           revoxel.Vec3
	ConservativeOBB bool
	SamplesPerAxis  int
	Epsilon         float64
}

// Instance references a Part with a mutable exact frame and an
// optional arbitrary rotation, plus a stable identity independent of
// insertion order.
type Instance struct {
	ID          string
	PartName    string
	Role        Role
	Matrix      Matrix3
	Translation kernel.Cell
	VPUOverride int // 0 means "use the scene's voxelsPerUnit"
	Rotation    *ArbitraryRotation
}

// NewInstance builds an Instance for partName with the identity frame
// and a freshly generated ID.
func NewInstance(partName string, role Role) Instance {
	return Instance{
		ID:       uuid.NewString(),
		PartName: partName,
		Role:     role,
		Matrix:   Identity3(),
	}
}

// Scene holds an ordered list of instances and project-wide settings.
type Scene struct {
	Parts         map[string]*Part
	Instances     []Instance
	VoxelsPerUnit int
	Quality       Quality
	Revoxel       ArbitraryRotation // SamplesPerAxis/Epsilon used by Bake when an instance rotation leaves them zero; other fields unused
}

// NewScene returns an empty scene at the given lattice resolution.
func NewScene(voxelsPerUnit int) *Scene {
	return &Scene{
		Parts:         make(map[string]*Part),
		VoxelsPerUnit: voxelsPerUnit,
	}
}

// AddPart registers a part by name, overwriting any existing part of
// the same name.
func (s *Scene) AddPart(p *Part) {
	s.Parts[p.Name] = p
}

// AddInstance appends inst to the scene's ordered instance list.
func (s *Scene) AddInstance(inst Instance) {
	s.Instances = append(s.Instances, inst)
}
