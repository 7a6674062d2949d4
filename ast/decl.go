package ast

import "github.com/rsk700/leap-lang/span"

// Prop is a struct property or an enum variant (spec.md §3: "Used for both
// struct properties and enum variants; for variants, name equals the
// variant's type name").
type Prop struct {
	Name        Name
	ValueType   ValueType
	Span        span.Span
	IsRecursive bool
}

// Struct is a `.struct` declaration.
type Struct struct {
	Name  Name
	Args  []Name
	Props []Prop
	Path  string
	Span  span.Span
}

// Enum is a `.enum` declaration.
type Enum struct {
	Name     Name
	Args     []Name
	Variants []Prop
	Path     string
	Span     span.Span
}

// DeclKind discriminates DeclaredType.
type DeclKind int

const (
	DeclStruct DeclKind = iota
	DeclEnum
)

// DeclaredType is the tagged union `{ Struct | Enum }` from spec.md §3.
// Exactly one of Struct/Enum is populated, per Kind.
type DeclaredType struct {
	Kind   DeclKind
	Struct Struct
	Enum   Enum
}

// GetName returns the declared type's name regardless of Kind.
func (d DeclaredType) GetName() Name {
	if d.Kind == DeclStruct {
		return d.Struct.Name
	}
	return d.Enum.Name
}

// GetArgs returns the declared type's formal type arguments regardless of
// Kind.
func (d DeclaredType) GetArgs() []Name {
	if d.Kind == DeclStruct {
		return d.Struct.Args
	}
	return d.Enum.Args
}

// Props returns the declared type's properties (struct) or variants (enum)
// — the uniform view the recursion analyzer and formatter iterate over.
func (d DeclaredType) Props() []Prop {
	if d.Kind == DeclStruct {
		return d.Struct.Props
	}
	return d.Enum.Variants
}

// WithProps returns a copy of d with its properties/variants replaced and
// its formals cleared (the type is now fully applied) — used by
// leapspec.ApplyArgs to install a substituted property list.
func (d DeclaredType) WithProps(props []Prop) DeclaredType {
	if d.Kind == DeclStruct {
		d.Struct.Props = props
		d.Struct.Args = nil
		return d
	}
	d.Enum.Variants = props
	d.Enum.Args = nil
	return d
}

// SetProps returns a copy of d with its properties/variants replaced
// in place, preserving formals — used by the recursion analyzer, which
// mutates IsRecursive flags without applying any substitution.
func (d DeclaredType) SetProps(props []Prop) DeclaredType {
	if d.Kind == DeclStruct {
		d.Struct.Props = props
		return d
	}
	d.Enum.Variants = props
	return d
}

// WithPath returns a copy of d with Path set on its Struct/Enum — used by
// loader.Driver, which assigns the path onto every declared type exactly
// once, immediately after parsing (spec.md §3 Lifecycle).
func (d DeclaredType) WithPath(path string) DeclaredType {
	if d.Kind == DeclStruct {
		d.Struct.Path = path
		return d
	}
	d.Enum.Path = path
	return d
}

// GetSpan returns the declared type's whole-declaration span.
func (d DeclaredType) GetSpan() span.Span {
	if d.Kind == DeclStruct {
		return d.Struct.Span
	}
	return d.Enum.Span
}
