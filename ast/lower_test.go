package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/naming"
	"github.com/rsk700/leap-lang/parser"
)

func lowerOne(t *testing.T, src string) ast.DeclaredType {
	t.Helper()
	trees, err := parser.ParseAll(src)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	d, err := ast.Lower(trees[0])
	require.NoError(t, err)
	return d
}

func TestLowerSimpleTypes(t *testing.T) {
	d := lowerOne(t, ".struct s1\n    a: str\n    b: int\n    c: float\n    d: bool")
	require.Equal(t, ast.DeclStruct, d.Kind)
	props := d.Struct.Props
	require.Len(t, props, 4)
	assert.Equal(t, ast.KindSimple, props[0].ValueType.Kind)
	assert.Equal(t, ast.Str, props[0].ValueType.Simple)
	assert.Equal(t, ast.Int, props[1].ValueType.Simple)
}

func TestLowerListOfNamedType(t *testing.T) {
	d := lowerOne(t, ".struct s1\n    a: list[s2]")
	prop := d.Struct.Props[0]
	require.Equal(t, ast.KindList, prop.ValueType.Kind)
	elem := prop.ValueType.Element()
	assert.Equal(t, ast.KindNamed, elem.Kind)
	assert.Equal(t, "s2", elem.Name.Get())
}

func TestLowerTypeArgReference(t *testing.T) {
	d := lowerOne(t, ".struct box[t]\n    value: t")
	prop := d.Struct.Props[0]
	assert.Equal(t, ast.KindTypeArg, prop.ValueType.Kind)
	assert.Equal(t, "t", prop.ValueType.Name.Get())
}

func TestLowerRejectsArgsOnSimpleTypes(t *testing.T) {
	trees, err := parser.ParseAll(".struct s1\n    a: int[s2]")
	require.NoError(t, err)
	_, err = ast.Lower(trees[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int type should not have arguments")
}

func TestLowerRejectsListWithoutExactlyOneArg(t *testing.T) {
	trees, err := parser.ParseAll(".struct s1\n    a: list[str str]")
	require.NoError(t, err)
	_, err = ast.Lower(trees[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "List should have exactly one argument")
}

func TestLowerRejectsArgsOnTypeArg(t *testing.T) {
	trees, err := parser.ParseAll(".struct box[t]\n    value: t[str]")
	require.NoError(t, err)
	_, err = ast.Lower(trees[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type argument can't have arguments")
}

func TestLowerEnumVariantNameFromHeadIdentifier(t *testing.T) {
	d := lowerOne(t, ".enum e1[t]\n    option[t]\n    none")
	require.Equal(t, ast.DeclEnum, d.Kind)
	variants := d.Enum.Variants
	require.Len(t, variants, 2)
	assert.Equal(t, "option", variants[0].Name.Get())
	assert.Equal(t, ast.KindNamed, variants[0].ValueType.Kind)
	assert.Equal(t, "none", variants[1].Name.Get())
}

func TestNameEqualityIgnoresSpanAndAlias(t *testing.T) {
	d1 := lowerOne(t, ".struct s1\n    a: str")
	d2 := lowerOne(t, "\n\n.struct s1\n    a: str")
	assert.True(t, d1.Struct.Name.Equal(d2.Struct.Name))
}

func TestApplyStyleSplitsOnDash(t *testing.T) {
	trees, err := parser.ParseAll(".struct my-box-type")
	require.NoError(t, err)
	d, err := ast.Lower(trees[0])
	require.NoError(t, err)
	assert.Equal(t, "MyBoxType", d.Struct.Name.ApplyStyle(naming.TitleFirst, ""))
}
