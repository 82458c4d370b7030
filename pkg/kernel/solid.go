package kernel

// VoxelSolid exclusively owns a set of occupied cells V and a set of
// boundary faces B, maintained incrementally so that B always equals
// the set of faces with exactly one occupied adjacent cell.
type VoxelSolid struct {
	cells map[Cell]struct{}
	faces map[FaceKey]struct{}
}

// New returns an empty solid.
func New() *VoxelSolid {
	return &VoxelSolid{
		cells: make(map[Cell]struct{}),
		faces: make(map[FaceKey]struct{}),
	}
}

// Clone returns an independent copy: both the cell set and the
// boundary set are copied directly, which preserves the B<=>V
// invariant since the source is already consistent.
func (s *VoxelSolid) Clone() *VoxelSolid {
	out := New()
	for c := range s.cells {
		out.cells[c] = struct{}{}
	}
	for f := range s.faces {
		out.faces[f] = struct{}{}
	}
	return out
}

// Contains reports whether c is occupied.
func (s *VoxelSolid) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of occupied cells (the solid's volume).
func (s *VoxelSolid) Len() int { return len(s.cells) }

// FaceCount returns the number of boundary faces (the solid's surface area).
func (s *VoxelSolid) FaceCount() int { return len(s.faces) }

// Cells returns the occupied cells in unspecified order.
func (s *VoxelSolid) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// Faces returns the boundary faces in unspecified order.
func (s *VoxelSolid) Faces() []FaceKey {
	out := make([]FaceKey, 0, len(s.faces))
	for f := range s.faces {
		out = append(out, f)
	}
	return out
}

// toggleFace flips f's membership in B: present becomes absent, absent
// becomes present.
func (s *VoxelSolid) toggleFace(f FaceKey) {
	if _, ok := s.faces[f]; ok {
		delete(s.faces, f)
	} else {
		s.faces[f] = struct{}{}
	}
}

// Add inserts c if absent, toggling each of its six faces against its
// neighbors so B<=>V is preserved. No-op if c is already present.
func (s *VoxelSolid) Add(c Cell) {
	if s.Contains(c) {
		return
	}
	s.cells[c] = struct{}{}
	for _, f := range facesOf(c) {
		s.toggleFace(f)
	}
}

// Remove deletes c if present, toggling each of its six faces
// symmetrically to Add. No-op if c is absent.
func (s *VoxelSolid) Remove(c Cell) {
	if !s.Contains(c) {
		return
	}
	delete(s.cells, c)
	for _, f := range facesOf(c) {
		s.toggleFace(f)
	}
}
