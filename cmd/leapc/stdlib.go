package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/parser"
)

// parseAllFragment parses an in-memory source fragment (the stdtypes
// constant) into declared types, without going through loader.Driver
// (it has no path on disk to assign).
func parseAllFragment(src string) ([]ast.DeclaredType, error) {
	trees, err := parser.ParseAll(src)
	if err != nil {
		return nil, err
	}
	decls := make([]ast.DeclaredType, 0, len(trees))
	for _, tree := range trees {
		d, err := ast.Lower(tree)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d.WithPath("<stdlib>"))
	}
	return decls, nil
}

// loadAliases decodes a YAML document mapping original identifier to alias
// (SPEC_FULL.md §1 Configuration).
func loadAliases(path string) (map[string]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var aliases map[string]string
	if err := yaml.Unmarshal(contents, &aliases); err != nil {
		return nil, err
	}
	return aliases, nil
}
