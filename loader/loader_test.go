package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsk700/leap-lang/loader"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadPathsAssignsPathAndJoins(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.leap", ".struct s1\n    a: str")
	p2 := writeFile(t, dir, "b.leap", ".struct s2\n    a: s1")

	drv := loader.Driver{}
	spec, shadowed, err := drv.LoadPaths([]string{p1, p2})
	require.NoError(t, err)
	assert.Empty(t, shadowed)

	h1, ok := spec.Lookup("s1")
	require.True(t, ok)
	assert.Equal(t, p1, spec.Get(h1).Struct.Path)

	h2, ok := spec.Lookup("s2")
	require.True(t, ok)
	assert.Equal(t, p2, spec.Get(h2).Struct.Path)
}

func TestLoadPathsReportsParseErrorWithPath(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.leap", ".struct aaa[]")

	drv := loader.Driver{}
	_, _, err := drv.LoadPaths([]string{bad})
	require.Error(t, err)
	pe, ok := err.(*loader.PathError)
	require.True(t, ok)
	assert.Equal(t, bad, pe.Path)
	assert.Equal(t, 12, pe.Position)
}

func TestLoadPathsReportsMissingFile(t *testing.T) {
	drv := loader.Driver{}
	_, _, err := drv.LoadPaths([]string{"/does/not/exist.leap"})
	require.Error(t, err)
	pe, ok := err.(*loader.PathError)
	require.True(t, ok)
	assert.Equal(t, 0, pe.Position)
}
