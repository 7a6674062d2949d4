// Package parser implements the LL(1) recursive-descent parser over
// github.com/rsk700/leap-lang/token, producing a span-tagged concrete syntax
// tree (grounded on the original `ParseTree`/`TreeVariant` pair).
package parser

import "github.com/rsk700/leap-lang/span"

// Variant tags a Tree node with the grammar production that built it.
type Variant int

const (
	Start Variant = iota
	Name
	StructDef
	TArgsDef
	TArgs
	PropsDef
	Prop
	EnumDef
	VariantsDef
	PType
	PTArgsBlock
	PTArgs
)

// Tree is one node of the concrete syntax tree. Text is only meaningful on a
// Name node. Span starts out as the node's first token's span and is
// extended over its descendants by CalcLength.
type Tree struct {
	Variant  Variant
	Text     string
	Span     span.Span
	Children []*Tree
}

func newTree(variant Variant, sp span.Span) *Tree {
	return &Tree{Variant: variant, Span: sp}
}

// CalcLength extends every node's span, post-order, to cover its last
// child's span — the pass spec.md §4.3 calls `calc_length`. It must run
// after the whole tree is built, since a node's span starts out equal to
// only its first token.
func (t *Tree) CalcLength() {
	for _, c := range t.Children {
		c.CalcLength()
	}
	if len(t.Children) > 0 {
		last := t.Children[len(t.Children)-1]
		t.Span = t.Span.Extend(last.Span)
	}
}
