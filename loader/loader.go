package loader

import (
	"os"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/leapspec"
	"github.com/rsk700/leap-lang/parser"
)

// Driver reads and parses an ordered list of source files into one Spec.
type Driver struct{}

// LoadPaths reads each path in order, parses it, assigns the path onto
// every declared type it yields, and joins the results (plus extra, a
// caller-supplied extra fragment such as the standard-library text) into a
// single leapspec.Spec. The first failure — read or parse — aborts with a
// *PathError (spec.md §6, §7: no partial results, no error recovery).
func (Driver) LoadPaths(paths []string, extra ...ast.DeclaredType) (*leapspec.Spec, []leapspec.Handle, error) {
	all := append([]ast.DeclaredType{}, extra...)
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, &PathError{Path: path, Position: 0, Err: err.Error()}
		}
		trees, err := parser.ParseAll(string(contents))
		if err != nil {
			pe := err.(*parser.Error)
			return nil, nil, &PathError{Path: path, Position: pe.Span.Start, Err: pe.Message}
		}
		for _, tree := range trees {
			d, err := ast.Lower(tree)
			if err != nil {
				le := err.(*ast.LowerError)
				return nil, nil, &PathError{Path: path, Position: le.Span.Start, Err: le.Message}
			}
			all = append(all, d.WithPath(path))
		}
	}
	return leapspec.New(all)
}
