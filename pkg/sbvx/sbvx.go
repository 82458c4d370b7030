// Package sbvx implements the SBVX binary container: a common header
// followed by either a dense bit-packed payload or a sparse
// Morton-ordered payload, with occupancy-driven auto-selection between
// the two.
package sbvx

import (
	"encoding/binary"
	"io"
	"math"
	"sort"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

// maxDenseCells caps the cell count a dense payload may address, well
// beyond any voxel grid produced by this package's own encoder but far
// short of the range where (total+7)/8 or a bitmap allocation could
// misbehave.
const maxDenseCells = 1 << 40

// safeDenseTotal multiplies sx*sy*sz without wrapping, returning
// strerr.InvalidFormat if the product would overflow uint64 or exceed
// maxDenseCells.
func safeDenseTotal(sx, sy, sz uint32) (uint64, error) {
	xy := uint64(sx) * uint64(sy)
	if xy != 0 && uint64(sz) > math.MaxUint64/xy {
		return 0, strerr.New(strerr.InvalidFormat, "sbvx: dense cell count overflows uint64 (%d x %d x %d)", sx, sy, sz)
	}
	total := xy * uint64(sz)
	if total > maxDenseCells {
		return 0, strerr.New(strerr.InvalidFormat, "sbvx: dense cell count %d exceeds maximum %d", total, uint64(maxDenseCells))
	}
	return total, nil
}

var magic = [5]byte{'S', 'B', 'V', 'X', 0}

const currentVersion = 1

// Encoding selects the payload layout.
type Encoding byte

const (
	Dense  Encoding = 0
	Sparse Encoding = 1
)

// Mode picks which Encoding Write uses.
type Mode int

const (
	// Auto selects Dense iff 4*|V| >= totalCells, Sparse otherwise, and
	// Sparse for an empty solid.
	Auto Mode = iota
	ModeDense
	ModeSparse
)

func selectEncoding(n int, origin, maxExcl kernel.Cell) Encoding {
	if n == 0 {
		return Sparse
	}
	total := totalCells(origin, maxExcl)
	if total > 0 && uint64(4*n) >= total {
		return Dense
	}
	return Sparse
}

func totalCells(origin, maxExcl kernel.Cell) uint64 {
	sx, sy, sz := dims(origin, maxExcl)
	return uint64(sx) * uint64(sy) * uint64(sz)
}

func dims(origin, maxExcl kernel.Cell) (uint32, uint32, uint32) {
	sx := maxExcl.X - origin.X
	sy := maxExcl.Y - origin.Y
	sz := maxExcl.Z - origin.Z
	if sx < 0 || sy < 0 || sz < 0 {
		return 0, 0, 0
	}
	return uint32(sx), uint32(sy), uint32(sz)
}

// Write serializes s as an SBVX stream under mode.
func Write(w io.Writer, s *kernel.VoxelSolid, mode Mode) error {
	origin, maxExcl := kernel.Bounds(s)
	cells := s.Cells()

	var enc Encoding
	switch mode {
	case ModeDense:
		enc = Dense
	case ModeSparse:
		enc = Sparse
	default:
		enc = selectEncoding(len(cells), origin, maxExcl)
	}

	var payload []byte
	switch enc {
	case Dense:
		var err error
		payload, err = encodeDense(cells, origin, maxExcl)
		if err != nil {
			return err
		}
	default:
		payload = encodeSparse(cells, origin)
	}

	sx, sy, sz := dims(origin, maxExcl)
	if len(cells) == 0 {
		sx, sy, sz = 0, 0, 0
	}

	var hdr [39]byte
	copy(hdr[0:5], magic[:])
	hdr[5] = currentVersion
	hdr[6] = byte(enc)
	binary.LittleEndian.PutUint32(hdr[7:11], uint32(origin.X))
	binary.LittleEndian.PutUint32(hdr[11:15], uint32(origin.Y))
	binary.LittleEndian.PutUint32(hdr[15:19], uint32(origin.Z))
	binary.LittleEndian.PutUint32(hdr[19:23], sx)
	binary.LittleEndian.PutUint32(hdr[23:27], sy)
	binary.LittleEndian.PutUint32(hdr[27:31], sz)
	binary.LittleEndian.PutUint64(hdr[31:39], uint64(len(payload)))

	if _, err := w.Write(hdr[:]); err != nil {
		return strerr.Wrap(strerr.IoError, err, "sbvx: write header")
	}
	if _, err := w.Write(payload); err != nil {
		return strerr.Wrap(strerr.IoError, err, "sbvx: write payload")
	}
	return nil
}

func encodeDense(cells []kernel.Cell, origin, maxExcl kernel.Cell) ([]byte, error) {
	sx, sy, sz := dims(origin, maxExcl)
	total, err := safeDenseTotal(sx, sy, sz)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, (total+7)/8)
	for _, c := range cells {
		lx := uint64(c.X - origin.X)
		ly := uint64(c.Y - origin.Y)
		lz := uint64(c.Z - origin.Z)
		idx := lx + uint64(sx)*(ly+uint64(sy)*lz)
		buf[idx/8] |= 1 << (idx % 8)
	}
	return buf, nil
}

func encodeSparse(cells []kernel.Cell, origin kernel.Cell) []byte {
	type keyed struct {
		cell kernel.Cell
		key  uint64
	}
	ordered := make([]keyed, len(cells))
	for i, c := range cells {
		lx := uint32(c.X - origin.X)
		ly := uint32(c.Y - origin.Y)
		lz := uint32(c.Z - origin.Z)
		ordered[i] = keyed{cell: c, key: mortonKey(lx, ly, lz)}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].key != ordered[j].key {
			return ordered[i].key < ordered[j].key
		}
		a, b := ordered[i].cell, ordered[j].cell
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	buf := make([]byte, 4+12*len(ordered))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(ordered)))
	off := 4
	for _, k := range ordered {
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(k.cell.X))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], uint32(k.cell.Y))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], uint32(k.cell.Z))
		off += 12
	}
	return buf
}

// mortonKey bit-interleaves the low 21 bits of x, y, z.
func mortonKey(x, y, z uint32) uint64 {
	return spread21(x) | spread21(y)<<1 | spread21(z)<<2
}

func spread21(v uint32) uint64 {
	x := uint64(v) & 0x1FFFFF
	x = (x | x<<32) & 0x1F00000000FFFF
	x = (x | x<<16) & 0x1F0000FF0000FF
	x = (x | x<<8) & 0x100F00F00F00F00F
	x = (x | x<<4) & 0x10C30C30C30C30C3
	x = (x | x<<2) & 0x1249249249249249
	return x
}
