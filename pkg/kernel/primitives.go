package kernel

// Box fills the half-open range [min, maxExcl) via repeated Add. An
// empty or inverted range is a no-op.
func Box(min, maxExcl Cell) *VoxelSolid {
	s := New()
	for x := min.X; x < maxExcl.X; x++ {
		for y := min.Y; y < maxExcl.Y; y++ {
			for z := min.Z; z < maxExcl.Z; z++ {
				s.Add(Cell{x, y, z})
			}
		}
	}
	return s
}

// Sphere fills every cell whose center lies within radius r of center,
// i.e. |delta|^2 <= r^2. A negative radius is a no-op.
func Sphere(center Cell, r float64) *VoxelSolid {
	s := New()
	if r < 0 {
		return s
	}
	ir := int32(r) + 1
	r2 := r * r
	for dx := -ir; dx <= ir; dx++ {
		for dy := -ir; dy <= ir; dy++ {
			for dz := -ir; dz <= ir; dz++ {
				fx, fy, fz := float64(dx), float64(dy), float64(dz)
				if fx*fx+fy*fy+fz*fz <= r2 {
					s.Add(Cell{center.X + dx, center.Y + dy, center.Z + dz})
				}
			}
		}
	}
	return s
}

// CylinderZ fills cells with dx^2+dy^2 <= r^2 for z in [zMin, zMaxExcl),
// centered at (cx, cy). A negative radius or empty z range is a no-op.
func CylinderZ(cx, cy, zMin, zMaxExcl int32, r float64) *VoxelSolid {
	s := New()
	if r < 0 || zMin >= zMaxExcl {
		return s
	}
	ir := int32(r) + 1
	r2 := r * r
	for z := zMin; z < zMaxExcl; z++ {
		for dx := -ir; dx <= ir; dx++ {
			for dy := -ir; dy <= ir; dy++ {
				fx, fy := float64(dx), float64(dy)
				if fx*fx+fy*fy <= r2 {
					s.Add(Cell{cx + dx, cy + dy, z})
				}
			}
		}
	}
	return s
}

// CylinderX fills cells with dy^2+dz^2 <= r^2 for x in [xMin, xMaxExcl),
// centered at (cy, cz).
func CylinderX(cy, cz, xMin, xMaxExcl int32, r float64) *VoxelSolid {
	s := New()
	if r < 0 || xMin >= xMaxExcl {
		return s
	}
	ir := int32(r) + 1
	r2 := r * r
	for x := xMin; x < xMaxExcl; x++ {
		for dy := -ir; dy <= ir; dy++ {
			for dz := -ir; dz <= ir; dz++ {
				fy, fz := float64(dy), float64(dz)
				if fy*fy+fz*fz <= r2 {
					s.Add(Cell{x, cy + dy, cz + dz})
				}
			}
		}
	}
	return s
}

// CylinderY fills cells with dx^2+dz^2 <= r^2 for y in [yMin, yMaxExcl),
// centered at (cx, cz).
func CylinderY(cx, cz, yMin, yMaxExcl int32, r float64) *VoxelSolid {
	s := New()
	if r < 0 || yMin >= yMaxExcl {
		return s
	}
	ir := int32(r) + 1
	r2 := r * r
	for y := yMin; y < yMaxExcl; y++ {
		for dx := -ir; dx <= ir; dx++ {
			for dz := -ir; dz <= ir; dz++ {
				fx, fz := float64(dx), float64(dz)
				if fx*fx+fz*fz <= r2 {
					s.Add(Cell{cx + dx, y, cz + dz})
				}
			}
		}
	}
	return s
}
