package threemf_test

import (
	"bytes"
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/mesh"
	"github.com/chazu/strata/pkg/threemf"
	"github.com/stretchr/testify/require"
)

func TestWriteProducesNonEmptyDocument(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{2, 2, 2})
	m := mesh.Extract(s)

	var buf bytes.Buffer
	err := threemf.Write(&buf, "cube", m)
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 0)
}

func TestWriteEmptyMeshStillEncodes(t *testing.T) {
	var buf bytes.Buffer
	err := threemf.Write(&buf, "empty", mesh.MeshD{})
	require.NoError(t, err)
}
