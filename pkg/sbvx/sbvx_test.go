package sbvx_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/sbvx"
	"github.com/chazu/strata/pkg/strerr"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s *kernel.VoxelSolid, mode sbvx.Mode) *kernel.VoxelSolid {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, sbvx.Write(&buf, s, mode))
	out, err := sbvx.Read(&buf)
	require.NoError(t, err)
	return out
}

func TestRoundTripDenseSparseAuto(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 4})
	for _, mode := range []sbvx.Mode{sbvx.Auto, sbvx.ModeDense, sbvx.ModeSparse} {
		out := roundTrip(t, s, mode)
		require.ElementsMatch(t, s.Cells(), out.Cells())
	}
}

func TestRoundTripEmptySolid(t *testing.T) {
	out := roundTrip(t, kernel.New(), sbvx.Auto)
	require.Equal(t, 0, out.Len())
}

func TestAutoSelectsDenseForDenseBox(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	var buf bytes.Buffer
	require.NoError(t, sbvx.Write(&buf, s, sbvx.Auto))
	require.Equal(t, byte(sbvx.Dense), buf.Bytes()[6])
}

func TestAutoSelectsSparseForScatteredCells(t *testing.T) {
	s := kernel.New()
	s.Add(kernel.Cell{0, 0, 0})
	s.Add(kernel.Cell{3, 3, 3})
	var buf bytes.Buffer
	require.NoError(t, sbvx.Write(&buf, s, sbvx.Auto))
	require.Equal(t, byte(sbvx.Sparse), buf.Bytes()[6])
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sbvx.Write(&buf, kernel.Box(kernel.Cell{}, kernel.Cell{1, 1, 1}), sbvx.Auto))
	corrupt := buf.Bytes()
	corrupt[0] = 'X'
	_, err := sbvx.Read(bytes.NewReader(corrupt))
	require.Error(t, err)
}

func TestReadRejectsTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sbvx.Write(&buf, kernel.Box(kernel.Cell{}, kernel.Cell{2, 2, 2}), sbvx.ModeDense))
	truncated := buf.Bytes()[:buf.Len()-1]
	_, err := sbvx.Read(bytes.NewReader(truncated))
	require.Error(t, err)
}

// TestReadRejectsOverflowingDenseDimensions crafts a header with
// dense dimensions whose product overflows uint64, as an attacker
// controlling the 39-byte header might. decodeDense must reject this
// rather than silently wrap the index arithmetic or iterate a huge
// nested loop driven by an empty payload.
func TestReadRejectsOverflowingDenseDimensions(t *testing.T) {
	var hdr [39]byte
	copy(hdr[0:5], []byte{'S', 'B', 'V', 'X', 0})
	hdr[5] = 1 // version
	hdr[6] = byte(sbvx.Dense)
	// origin left zero
	binary.LittleEndian.PutUint32(hdr[19:23], 0xFFFFFFFF) // sx
	binary.LittleEndian.PutUint32(hdr[23:27], 0xFFFFFFFF) // sy
	binary.LittleEndian.PutUint32(hdr[27:31], 0xFFFFFFFF) // sz
	binary.LittleEndian.PutUint64(hdr[31:39], 0)          // payloadLen

	_, err := sbvx.Read(bytes.NewReader(hdr[:]))
	require.Error(t, err)
	kind, ok := strerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, strerr.InvalidFormat, kind)
}
