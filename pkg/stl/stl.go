// Package stl writes a mesh.MeshD as binary STL.
package stl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/chazu/strata/pkg/mesh"
	"github.com/chazu/strata/pkg/strerr"
)

const headerSize = 80

// Write emits m as binary STL: an 80-byte header (name, zero-padded),
// a 32-bit triangle count, then per triangle a normal, three vertices,
// and a zero attribute word. Scale multiplies every vertex coordinate
// before writing (e.g. 1/voxelsPerUnit to convert lattice units to
// model units); pass 1 for no scaling.
func Write(w io.Writer, name string, m mesh.MeshD, scale float64) error {
	var hdr [headerSize]byte
	copy(hdr[:], name)
	if _, err := w.Write(hdr[:]); err != nil {
		return strerr.Wrap(strerr.IoError, err, "stl: write header")
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(m.Triangles)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return strerr.Wrap(strerr.IoError, err, "stl: write triangle count")
	}

	var rec [50]byte
	for _, t := range m.Triangles {
		n, ok := mesh.TriangleNormal(m, t)
		if ok {
			l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
			n = mesh.Vertex{X: n.X / l, Y: n.Y / l, Z: n.Z / l}
		} else {
			n = mesh.Vertex{}
		}
		putFloat32(rec[0:4], n.X)
		putFloat32(rec[4:8], n.Y)
		putFloat32(rec[8:12], n.Z)
		writeVertex(rec[12:24], m.Vertices[t.A], scale)
		writeVertex(rec[24:36], m.Vertices[t.B], scale)
		writeVertex(rec[36:48], m.Vertices[t.C], scale)
		binary.LittleEndian.PutUint16(rec[48:50], 0)
		if _, err := w.Write(rec[:]); err != nil {
			return strerr.Wrap(strerr.IoError, err, "stl: write triangle")
		}
	}
	return nil
}

func writeVertex(dst []byte, v mesh.Vertex, scale float64) {
	putFloat32(dst[0:4], v.X*scale)
	putFloat32(dst[4:8], v.Y*scale)
	putFloat32(dst[8:12], v.Z*scale)
}

func putFloat32(dst []byte, f float64) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(f)))
}
