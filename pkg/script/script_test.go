package script_test

import (
	"testing"

	"github.com/chazu/strata/pkg/script"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBoxEmitsSolid(t *testing.T) {
	eng := script.NewEngine()
	solid, errs, err := eng.Evaluate(`(emit (box 0 0 0 10 10 10))`)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 1000, solid.Len())
}

func TestEvaluateSubtractAndTranslate(t *testing.T) {
	eng := script.NewEngine()
	src := `
(emit
  (subtract
    (box 0 0 0 10 10 10)
    (translate 2 2 -1 (box 0 0 0 6 6 12))))
`
	solid, errs, err := eng.Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 1000-6*6*10, solid.Len())
}

func TestEvaluateKeywordAxis(t *testing.T) {
	eng := script.NewEngine()
	src := `(emit (rotate90 :z 1 (box 0 0 0 4 2 1)))`
	solid, errs, err := eng.Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 8, solid.Len())
}

func TestEvaluateKebabCaseBuiltinName(t *testing.T) {
	eng := script.NewEngine()
	src := `(emit (cylinder-z 0 0 0 5 2))`
	solid, errs, err := eng.Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Greater(t, solid.Len(), 0)
}

func TestEvaluateDigitGroupSeparatorInCellLiteral(t *testing.T) {
	eng := script.NewEngine()
	src := `(emit (box 0 0 0 1_000 2 3))`
	solid, errs, err := eng.Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 1000*2*3, solid.Len())
}

func TestEvaluateMissingEmitReportsError(t *testing.T) {
	eng := script.NewEngine()
	solid, errs, err := eng.Evaluate(`(box 0 0 0 1 1 1)`)
	require.NoError(t, err)
	require.Nil(t, solid)
	require.Len(t, errs, 1)
}

func TestEvaluateEmptySourceYieldsEmptySolid(t *testing.T) {
	eng := script.NewEngine()
	solid, errs, err := eng.Evaluate("")
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 0, solid.Len())
}

func TestEvaluateSemicolonCommentIsIgnored(t *testing.T) {
	eng := script.NewEngine()
	src := `
; a solid panel
(emit (box 0 0 0 2 2 2)) ; trailing comment
`
	solid, errs, err := eng.Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, 8, solid.Len())
}
