package stl_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/mesh"
	"github.com/chazu/strata/pkg/stl"
	"github.com/stretchr/testify/require"
)

func TestWriteBinaryLayout(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	m := mesh.Extract(s)

	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, "test-part", m, 1.0))

	data := buf.Bytes()
	require.Equal(t, byte('t'), data[0])
	count := binary.LittleEndian.Uint32(data[80:84])
	require.Equal(t, uint32(len(m.Triangles)), count)
	require.Equal(t, 84+50*len(m.Triangles), len(data))
}

func TestWriteScalesVertices(t *testing.T) {
	s := kernel.New()
	s.Add(kernel.Cell{0, 0, 0})
	m := mesh.Extract(s)

	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, "", m, 0.5))
	data := buf.Bytes()
	firstVertexX := binary.LittleEndian.Uint32(data[84+12 : 84+16])
	f := math.Float32frombits(firstVertexX)
	require.GreaterOrEqual(t, f, float32(-0.5))
	require.LessOrEqual(t, f, float32(0.5))
}
