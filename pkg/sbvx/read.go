package sbvx

import (
	"encoding/binary"
	"io"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/strerr"
)

const headerSize = 39

// Read parses an SBVX stream and reconstructs the occupancy set it
// describes. Any header/payload inconsistency returns a
// strerr.InvalidFormat error.
func Read(r io.Reader) (*kernel.VoxelSolid, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, strerr.Wrap(strerr.InvalidFormat, err, "sbvx: read header")
	}
	if [5]byte(hdr[0:5]) != magic {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: magic mismatch")
	}
	if hdr[5] != currentVersion {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: unsupported version %d", hdr[5])
	}
	enc := Encoding(hdr[6])
	if enc != Dense && enc != Sparse {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: unsupported encoding %d", hdr[6])
	}

	origin := kernel.Cell{
		X: int32(binary.LittleEndian.Uint32(hdr[7:11])),
		Y: int32(binary.LittleEndian.Uint32(hdr[11:15])),
		Z: int32(binary.LittleEndian.Uint32(hdr[15:19])),
	}
	sx := binary.LittleEndian.Uint32(hdr[19:23])
	sy := binary.LittleEndian.Uint32(hdr[23:27])
	sz := binary.LittleEndian.Uint32(hdr[27:31])
	payloadLen := binary.LittleEndian.Uint64(hdr[31:39])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, strerr.Wrap(strerr.InvalidFormat, err, "sbvx: read payload")
	}

	switch enc {
	case Dense:
		return decodeDense(payload, origin, sx, sy, sz)
	default:
		return decodeSparse(payload, origin, sx, sy, sz)
	}
}

func decodeDense(payload []byte, origin kernel.Cell, sx, sy, sz uint32) (*kernel.VoxelSolid, error) {
	total, err := safeDenseTotal(sx, sy, sz)
	if err != nil {
		return nil, err
	}
	want := (total + 7) / 8
	if uint64(len(payload)) != want {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: dense payload size mismatch: got %d want %d", len(payload), want)
	}
	out := kernel.New()
	for lz := uint32(0); lz < sz; lz++ {
		for ly := uint32(0); ly < sy; ly++ {
			for lx := uint32(0); lx < sx; lx++ {
				idx := uint64(lx) + uint64(sx)*(uint64(ly)+uint64(sy)*uint64(lz))
				if payload[idx/8]&(1<<(idx%8)) != 0 {
					out.Add(kernel.Cell{
						X: origin.X + int32(lx),
						Y: origin.Y + int32(ly),
						Z: origin.Z + int32(lz),
					})
				}
			}
		}
	}
	return out, nil
}

func decodeSparse(payload []byte, origin kernel.Cell, sx, sy, sz uint32) (*kernel.VoxelSolid, error) {
	if len(payload) < 4 {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: truncated sparse count")
	}
	n := binary.LittleEndian.Uint32(payload[0:4])
	want := 4 + 12*uint64(n)
	if uint64(len(payload)) != want {
		return nil, strerr.New(strerr.InvalidFormat, "sbvx: sparse payload size mismatch: got %d want %d", len(payload), want)
	}
	out := kernel.New()
	off := 4
	for i := uint32(0); i < n; i++ {
		x := int32(binary.LittleEndian.Uint32(payload[off : off+4]))
		y := int32(binary.LittleEndian.Uint32(payload[off+4 : off+8]))
		z := int32(binary.LittleEndian.Uint32(payload[off+8 : off+12]))
		off += 12
		if x < origin.X || y < origin.Y || z < origin.Z ||
			uint32(x-origin.X) >= sx || uint32(y-origin.Y) >= sy || uint32(z-origin.Z) >= sz {
			return nil, strerr.New(strerr.InvalidFormat, "sbvx: sparse voxel (%d,%d,%d) outside declared bounds", x, y, z)
		}
		out.Add(kernel.Cell{X: x, Y: y, Z: z})
	}
	return out, nil
}
