package preview_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/preview"
	"github.com/stretchr/testify/require"
)

func TestSliceSVGRendersOccupiedCells(t *testing.T) {
	s := kernel.Box(kernel.Cell{0, 0, 0}, kernel.Cell{4, 4, 1})

	var buf bytes.Buffer
	preview.SliceSVG(&buf, s, kernel.AxisZ, 0)

	out := buf.String()
	require.True(t, strings.Contains(out, "<svg"))
	require.True(t, strings.Contains(out, "fill:black"))
}

func TestSliceSVGEmptySolidYieldsPlaceholderCanvas(t *testing.T) {
	s := kernel.New()

	var buf bytes.Buffer
	preview.SliceSVG(&buf, s, kernel.AxisZ, 0)

	require.True(t, strings.Contains(buf.String(), "<svg"))
}
