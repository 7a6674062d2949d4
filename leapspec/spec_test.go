package leapspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/leapspec"
	"github.com/rsk700/leap-lang/parser"
	"github.com/rsk700/leap-lang/stdtypes"
)

func buildSpec(t *testing.T, srcs ...string) *leapspec.Spec {
	t.Helper()
	var decls []ast.DeclaredType
	for _, src := range srcs {
		trees, err := parser.ParseAll(src)
		require.NoError(t, err)
		for _, tree := range trees {
			d, err := ast.Lower(tree)
			require.NoError(t, err)
			decls = append(decls, d)
		}
	}
	spec, _, err := leapspec.New(decls)
	require.NoError(t, err)
	return spec
}

func TestHandleStability(t *testing.T) {
	spec := buildSpec(t, ".struct s1\n    a: str\n\n.struct s2\n    a: s1")
	for _, h := range spec.IterHandles() {
		name := spec.Get(h).GetName().Get()
		found, ok := spec.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, h, found)
	}
}

func TestApplyArgsIsHomomorphism(t *testing.T) {
	spec := buildSpec(t, ".struct box[t]\n    value: t")
	h, ok := spec.Lookup("box")
	require.True(t, ok)
	applied := spec.ApplyArgs(h, []ast.ValueType{ast.NewSimple(ast.Str)})
	assert.Equal(t, "box", applied.GetName().Get())
	assert.Equal(t, ast.KindSimple, applied.Struct.Props[0].ValueType.Kind)
	assert.Empty(t, applied.GetArgs())
}

func TestApplyArgsPanicsOnArgCountMismatch(t *testing.T) {
	spec := buildSpec(t, ".struct box[t]\n    value: t")
	h, _ := spec.Lookup("box")
	assert.Panics(t, func() {
		spec.ApplyArgs(h, nil)
	})
}

// S4 self-recursive struct.
func TestMarkRecursivePropsSelfReference(t *testing.T) {
	spec := buildSpec(t, `
.struct s1
    a: s2
    b: s3
.struct s2
    a: s1
.struct s3
    a: str
`)
	spec.MarkRecursiveProps()
	h, _ := spec.Lookup("s1")
	props := spec.Get(h).Props()
	assert.True(t, props[0].IsRecursive)
	assert.False(t, props[1].IsRecursive)
}

// S5 recursion through a generic wrapper.
func TestMarkRecursivePropsThroughGenericWrapper(t *testing.T) {
	var decls []ast.DeclaredType
	for _, src := range []string{`
.struct s4
    a: option[s5]
.struct s5
    a: s4
`, stdtypes.Source} {
		trees, err := parser.ParseAll(src)
		require.NoError(t, err)
		for _, tree := range trees {
			d, err := ast.Lower(tree)
			require.NoError(t, err)
			decls = append(decls, d)
		}
	}
	spec, _, err := leapspec.New(decls)
	require.NoError(t, err)
	spec.MarkRecursiveProps()

	h4, _ := spec.Lookup("s4")
	assert.True(t, spec.Get(h4).Props()[0].IsRecursive)

	h5, _ := spec.Lookup("s5")
	assert.True(t, spec.Get(h5).Props()[0].IsRecursive)
}

func TestSimpleTypeArgAndListOfSimpleAreNeverRecursive(t *testing.T) {
	spec := buildSpec(t, ".struct s1[t]\n    a: str\n    b: t\n    c: list[int]")
	spec.MarkRecursiveProps()
	h, _ := spec.Lookup("s1")
	for _, p := range spec.Get(h).Props() {
		assert.False(t, p.IsRecursive)
	}
}

func TestDuplicateNamesOverwriteButReturnShadowed(t *testing.T) {
	decls := []ast.DeclaredType{}
	for _, src := range []string{".struct s1\n    a: str", ".struct s1\n    a: int"} {
		trees, err := parser.ParseAll(src)
		require.NoError(t, err)
		d, err := ast.Lower(trees[0])
		require.NoError(t, err)
		decls = append(decls, d)
	}
	spec, shadowed, err := leapspec.New(decls)
	require.NoError(t, err)
	require.Len(t, shadowed, 1)
	h, _ := spec.Lookup("s1")
	assert.Equal(t, ast.Int, spec.Get(h).Struct.Props[0].ValueType.Simple)
}
