package ast

import (
	"fmt"

	"github.com/rsk700/leap-lang/parser"
	"github.com/rsk700/leap-lang/span"
)

// LowerError is a failure while lowering a CST to the typed AST (spec.md
// §4.4's messages).
type LowerError struct {
	Span    span.Span
	Message string
}

func (e *LowerError) Error() string {
	return fmt.Sprintf("%s (at byte %d)", e.Message, e.Span.Start)
}

// Lower converts one parsed Start tree into a DeclaredType.
func Lower(tree *parser.Tree) (DeclaredType, error) {
	// tree -> Start, single child: StructDef or EnumDef.
	child := tree.Children[0]
	switch child.Variant {
	case parser.StructDef:
		s, err := lowerStruct(child)
		if err != nil {
			return DeclaredType{}, err
		}
		return DeclaredType{Kind: DeclStruct, Struct: s}, nil
	case parser.EnumDef:
		e, err := lowerEnum(child)
		if err != nil {
			return DeclaredType{}, err
		}
		return DeclaredType{Kind: DeclEnum, Enum: e}, nil
	default:
		panic("ast: incorrect parse tree")
	}
}

// propTypeSimple is the intermediate triple spec.md §4.4 describes: a
// CST PType node reified before it is lowered to a ValueType in the
// context of the enclosing declaration's formal type arguments.
type propTypeSimple struct {
	name     string
	nameSpan span.Span
	args     []propTypeSimple
	span     span.Span
}

func lowerStruct(tree *parser.Tree) (Struct, error) {
	// tree -> StructDef: [Name, TArgsDef, PropsDef]
	name := treeToName(tree.Children[0])
	args := treeToArgs(tree.Children[1])
	propTrees := flattenPropsDef(tree.Children[2])

	props := make([]Prop, 0, len(propTrees))
	for _, pt := range propTrees {
		// pt -> Prop: [Name, PType]
		propName := treeToName(pt.Children[0])
		pts := treeToPropTypeSimple(pt.Children[1])
		vt, err := pts.intoValueType(args)
		if err != nil {
			return Struct{}, &LowerError{Span: pt.Span, Message: err.Error()}
		}
		props = append(props, Prop{Name: propName, ValueType: vt, Span: pt.Span})
	}

	return Struct{Name: name, Args: args, Props: props, Span: tree.Span}, nil
}

func lowerEnum(tree *parser.Tree) (Enum, error) {
	// tree -> EnumDef: [Name, TArgsDef, VariantsDef]
	name := treeToName(tree.Children[0])
	args := treeToArgs(tree.Children[1])
	variantTrees := flattenVariantsDef(tree.Children[2])

	variants := make([]Prop, 0, len(variantTrees))
	for _, vt := range variantTrees {
		pts := treeToPropTypeSimple(vt)
		valueType, err := pts.intoValueType(args)
		if err != nil {
			return Enum{}, &LowerError{Span: vt.Span, Message: err.Error()}
		}
		// A variant's name is reconstructed from the head identifier of its
		// type expression (spec.md §4.4): `option[s]` becomes a variant
		// named `option`.
		variantName := NewName(pts.name, pts.nameSpan)
		variants = append(variants, Prop{Name: variantName, ValueType: valueType, Span: vt.Span})
	}

	return Enum{Name: name, Args: args, Variants: variants, Span: tree.Span}, nil
}

func treeToName(tree *parser.Tree) Name {
	// tree -> Name
	return NewName(tree.Text, tree.Span)
}

// treeToArgs walks a TArgsDef node: either empty, or wraps a right-leaning
// TArgs chain (Name, [TArgs]).
func treeToArgs(tree *parser.Tree) []Name {
	if len(tree.Children) == 0 {
		return nil
	}
	var args []Name
	node := tree.Children[0]
	for {
		args = append(args, treeToName(node.Children[0]))
		if len(node.Children) == 2 {
			node = node.Children[1]
			continue
		}
		break
	}
	return args
}

// flattenPropsDef walks a right-leaning PropsDef chain (Prop, [PropsDef])
// into an ordered slice of Prop CST nodes.
func flattenPropsDef(tree *parser.Tree) []*parser.Tree {
	var props []*parser.Tree
	for len(tree.Children) == 2 {
		props = append(props, tree.Children[0])
		tree = tree.Children[1]
	}
	return props
}

// flattenVariantsDef walks a right-leaning VariantsDef chain
// (PType, [VariantsDef]) into an ordered slice of PType CST nodes.
func flattenVariantsDef(tree *parser.Tree) []*parser.Tree {
	var variants []*parser.Tree
	for len(tree.Children) == 2 {
		variants = append(variants, tree.Children[0])
		tree = tree.Children[1]
	}
	return variants
}

// treeToPropTypeSimple reifies a PType CST node: [Name, [PTArgsBlock]].
func treeToPropTypeSimple(tree *parser.Tree) propTypeSimple {
	nameNode := tree.Children[0]
	pts := propTypeSimple{name: nameNode.Text, nameSpan: nameNode.Span, span: tree.Span}
	if len(tree.Children) == 2 {
		// PTArgsBlock -> [PTArgs], PTArgs is a right-leaning PType chain.
		block := tree.Children[1]
		node := block.Children[0]
		for {
			pts.args = append(pts.args, treeToPropTypeSimple(node.Children[0]))
			if len(node.Children) == 2 {
				node = node.Children[1]
				continue
			}
			break
		}
	}
	return pts
}

// intoValueType lowers a reified PType into a ValueType in the context of
// the enclosing declaration's formal type arguments, per spec.md §4.4.
func (p propTypeSimple) intoValueType(typeArgs []Name) (ValueType, error) {
	switch p.name {
	case "str":
		if len(p.args) != 0 {
			return ValueType{}, fmt.Errorf("str type should not have arguments")
		}
		return NewSimple(Str), nil
	case "int":
		if len(p.args) != 0 {
			return ValueType{}, fmt.Errorf("int type should not have arguments")
		}
		return NewSimple(Int), nil
	case "float":
		if len(p.args) != 0 {
			return ValueType{}, fmt.Errorf("float type should not have arguments")
		}
		return NewSimple(Float), nil
	case "bool":
		if len(p.args) != 0 {
			return ValueType{}, fmt.Errorf("bool type should not have arguments")
		}
		return NewSimple(Bool), nil
	case "list":
		if len(p.args) != 1 {
			return ValueType{}, fmt.Errorf("List should have exactly one argument")
		}
		elem, err := p.args[0].intoValueType(typeArgs)
		if err != nil {
			return ValueType{}, err
		}
		return NewList(elem), nil
	default:
		name := NewName(p.name, p.nameSpan)
		for _, formal := range typeArgs {
			if formal.Equal(name) {
				if len(p.args) != 0 {
					return ValueType{}, fmt.Errorf("Type argument can't have arguments")
				}
				return NewTypeArg(name), nil
			}
		}
		args := make([]ValueType, 0, len(p.args))
		for _, a := range p.args {
			vt, err := a.intoValueType(typeArgs)
			if err != nil {
				return ValueType{}, err
			}
			args = append(args, vt)
		}
		return NewNamed(name, args), nil
	}
}
