package stdtypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/parser"
	"github.com/rsk700/leap-lang/stdtypes"
)

func TestSourceParsesToOptionEnumWithBareTypeArgVariant(t *testing.T) {
	trees, err := parser.ParseAll(stdtypes.Source)
	require.NoError(t, err)
	require.Len(t, trees, 1)

	d, err := ast.Lower(trees[0])
	require.NoError(t, err)
	require.Equal(t, ast.DeclEnum, d.Kind)
	assert.Equal(t, "option", d.Enum.Name.Get())
	require.Len(t, d.Enum.Variants, 2)
	assert.Equal(t, "t", d.Enum.Variants[0].Name.Get())
	assert.Equal(t, ast.KindTypeArg, d.Enum.Variants[0].ValueType.Kind)
	assert.Equal(t, "none", d.Enum.Variants[1].Name.Get())
}
