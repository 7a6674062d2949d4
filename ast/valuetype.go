package ast

// SimpleType is one of the language's four scalar primitives.
type SimpleType int

const (
	Str SimpleType = iota
	Int
	Float
	Bool
)

// String renders a SimpleType the way it appears in source and in the
// formatter's canonical output.
func (s SimpleType) String() string {
	switch s {
	case Str:
		return "str"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// ValueTypeKind discriminates the ValueType sum (spec.md §3).
type ValueTypeKind int

const (
	KindSimple ValueTypeKind = iota
	KindList
	KindTypeArg
	KindNamed
)

// ValueType is the recursive sum from spec.md §3:
//
//	Simple(SimpleType)
//	List(ValueType)
//	TypeArg(Name)
//	Named{name, args}
//
// Exactly one of the fields relevant to Kind is populated; List stores its
// single element in Args[0] (kept in a slice for ast/leapspec to use a
// uniform Args accessor alongside Named).
type ValueType struct {
	Kind   ValueTypeKind
	Simple SimpleType
	Name   Name // TypeArg identifier, or Named's applied-type name
	Args   []ValueType
}

// NewSimple builds a Simple ValueType.
func NewSimple(s SimpleType) ValueType {
	return ValueType{Kind: KindSimple, Simple: s}
}

// NewList builds a List ValueType wrapping element.
func NewList(element ValueType) ValueType {
	return ValueType{Kind: KindList, Args: []ValueType{element}}
}

// NewTypeArg builds a TypeArg ValueType referencing name.
func NewTypeArg(name Name) ValueType {
	return ValueType{Kind: KindTypeArg, Name: name}
}

// NewNamed builds a Named ValueType applying name to args.
func NewNamed(name Name, args []ValueType) ValueType {
	return ValueType{Kind: KindNamed, Name: name, Args: args}
}

// Element returns the List's single element. Panics if Kind != KindList.
func (v ValueType) Element() ValueType {
	if v.Kind != KindList {
		panic("ast: Element called on non-List ValueType")
	}
	return v.Args[0]
}

// ArgsOf returns the argument vector spec.md §4.6 calls args(): for List, a
// singleton of the element type; for Named, its applied arguments; for
// Simple/TypeArg, empty.
func (v ValueType) ArgsOf() []ValueType {
	return v.Args
}

// HeadName returns the identifier spec.md §4.6 calls head_name(): the
// simple type's rendering, "list" for a List, or the identifier for a
// TypeArg/Named.
func (v ValueType) HeadName() string {
	switch v.Kind {
	case KindSimple:
		return v.Simple.String()
	case KindList:
		return "list"
	case KindTypeArg, KindNamed:
		return v.Name.Get()
	default:
		return ""
	}
}

// Equal is the structural equality used by the recursion analyzer's
// memoization (spec.md §9: "Equality and hashing are structural over the
// whole tree ... including names but excluding spans").
func (v ValueType) Equal(other ValueType) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindSimple:
		return v.Simple == other.Simple
	case KindList:
		return v.Args[0].Equal(other.Args[0])
	case KindTypeArg:
		return v.Name.Equal(other.Name)
	case KindNamed:
		if !v.Name.Equal(other.Name) || len(v.Args) != len(other.Args) {
			return false
		}
		for i := range v.Args {
			if !v.Args[i].Equal(other.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Key renders a ValueType into a string that is equal iff Equal would
// report true — used as a map key by the recursion analyzer's visited set,
// since ValueType itself is not comparable (it holds a slice).
func (v ValueType) Key() string {
	switch v.Kind {
	case KindSimple:
		return "s:" + v.Simple.String()
	case KindList:
		return "l:[" + v.Args[0].Key() + "]"
	case KindTypeArg:
		return "t:" + v.Name.Get()
	case KindNamed:
		key := "n:" + v.Name.Get() + "("
		for i, a := range v.Args {
			if i > 0 {
				key += ","
			}
			key += a.Key()
		}
		return key + ")"
	default:
		return "?"
	}
}

// render formats a ValueType in canonical source form (spec.md §4.7):
// simples print bare, lists as list[<inner>], named types with no args as
// the bare identifier, named types with args as NAME[a b c]. Formals (and
// TypeArg references) render as their identifier, with no trailing `?`
// marker — that diagnostic-only form is not used by the formatter.
func (v ValueType) render() string {
	switch v.Kind {
	case KindSimple:
		return v.Simple.String()
	case KindList:
		return "list[" + v.Element().render() + "]"
	case KindTypeArg:
		return v.Name.Get()
	case KindNamed:
		if len(v.Args) == 0 {
			return v.Name.Get()
		}
		out := v.Name.Get() + "["
		for i, a := range v.Args {
			if i > 0 {
				out += " "
			}
			out += a.render()
		}
		return out + "]"
	default:
		return ""
	}
}

// Render exposes the canonical source-form rendering used by format.
func (v ValueType) Render() string {
	return v.render()
}
