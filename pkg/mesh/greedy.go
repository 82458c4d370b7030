package mesh

import (
	"sort"

	"github.com/chazu/strata/pkg/kernel"
)

type ab struct{ a, b int32 }

// cellAt builds the cell adjacent to face f on the side whose
// coordinate along f.Axis is k, using the same (A,B) axis convention as
// kernel.FaceKey.
func cellAt(f kernel.FaceKey, k int32) kernel.Cell {
	switch f.Axis {
	case kernel.AxisX:
		return kernel.Cell{X: k, Y: f.A, Z: f.B}
	case kernel.AxisY:
		return kernel.Cell{X: f.A, Y: k, Z: f.B}
	default:
		return kernel.Cell{X: f.A, Y: f.B, Z: k}
	}
}

func faceSign(s *kernel.VoxelSolid, f kernel.FaceKey) int32 {
	if s.Contains(cellAt(f, f.K-1)) {
		return 1
	}
	return -1
}

// quadCorners generalizes kernel.FaceCorners to a w x h rectangle
// starting at (a0, b0), following the identical per-axis corner
// ordering so the mesher and kernel never disagree about winding.
func quadCorners(axis kernel.Axis, k, a0, b0, w, h int32) [4]Vertex {
	a1, b1 := a0+w, b0+h
	mk := func(x, y, z int32) Vertex { return Vertex{float64(x), float64(y), float64(z)} }
	switch axis {
	case kernel.AxisX:
		return [4]Vertex{mk(k, a0, b0), mk(k, a1, b0), mk(k, a1, b1), mk(k, a0, b1)}
	case kernel.AxisY:
		return [4]Vertex{mk(a0, k, b0), mk(a0, k, b1), mk(a1, k, b1), mk(a1, k, b0)}
	default:
		return [4]Vertex{mk(a0, b0, k), mk(a1, b0, k), mk(a1, b1, k), mk(a0, b1, k)}
	}
}

// Extract runs the full mesher pipeline: per-plane collection, greedy
// quad merge, and outward-normal reorientation. Quantize/weld is left
// to Quantize, applied by callers that want a merged vertex buffer.
func Extract(s *kernel.VoxelSolid) MeshD {
	groups := groupByPlane(s)

	keys := make([]plane, 0, len(groups))
	for p := range groups {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return lessPlane(keys[i], keys[j]) })

	var out MeshD
	for _, p := range keys {
		emitPlane(&out, p, groups[p])
	}
	reorientOutward(&out)
	return out
}

func groupByPlane(s *kernel.VoxelSolid) map[plane]map[ab]struct{} {
	groups := make(map[plane]map[ab]struct{})
	for _, f := range s.Faces() {
		p := plane{axis: f.Axis, k: f.K, sign: faceSign(s, f)}
		m, ok := groups[p]
		if !ok {
			m = make(map[ab]struct{})
			groups[p] = m
		}
		m[ab{f.A, f.B}] = struct{}{}
	}
	return groups
}

func emitPlane(out *MeshD, p plane, cells map[ab]struct{}) {
	if len(cells) == 0 {
		return
	}
	amin, amax, bmin, bmax := boundsOf(cells)
	width := int(amax-amin) + 1
	height := int(bmax-bmin) + 1
	filled := make([][]bool, width)
	visited := make([][]bool, width)
	for i := range filled {
		filled[i] = make([]bool, height)
		visited[i] = make([]bool, height)
	}
	for c := range cells {
		filled[c.a-amin][c.b-bmin] = true
	}

	for bi := 0; bi < height; bi++ {
		for ai := 0; ai < width; ai++ {
			if visited[ai][bi] || !filled[ai][bi] {
				continue
			}
			w := 1
			for ai+w < width && filled[ai+w][bi] && !visited[ai+w][bi] {
				w++
			}
			h := 1
		rowsLoop:
			for bi+h < height {
				for da := 0; da < w; da++ {
					if !filled[ai+da][bi+h] || visited[ai+da][bi+h] {
						break rowsLoop
					}
				}
				h++
			}
			for db := 0; db < h; db++ {
				for da := 0; da < w; da++ {
					visited[ai+da][bi+db] = true
				}
			}
			emitQuad(out, p, amin+int32(ai), bmin+int32(bi), int32(w), int32(h))
		}
	}
}

func boundsOf(cells map[ab]struct{}) (amin, amax, bmin, bmax int32) {
	first := true
	for c := range cells {
		if first {
			amin, amax, bmin, bmax = c.a, c.a, c.b, c.b
			first = false
			continue
		}
		if c.a < amin {
			amin = c.a
		}
		if c.a > amax {
			amax = c.a
		}
		if c.b < bmin {
			bmin = c.b
		}
		if c.b > bmax {
			bmax = c.b
		}
	}
	return
}

func emitQuad(out *MeshD, p plane, a0, b0, w, h int32) {
	corners := quadCorners(p.axis, p.k, a0, b0, w, h)
	base := len(out.Vertices)
	out.Vertices = append(out.Vertices, corners[0], corners[1], corners[2], corners[3])
	if p.sign > 0 {
		out.Triangles = append(out.Triangles,
			Triangle{base, base + 1, base + 2},
			Triangle{base, base + 2, base + 3},
		)
	} else {
		out.Triangles = append(out.Triangles,
			Triangle{base, base + 2, base + 1},
			Triangle{base, base + 3, base + 2},
		)
	}
}
