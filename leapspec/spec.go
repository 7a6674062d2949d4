// Package leapspec implements the arena + name-index type graph (spec.md
// §3 Spec, §4.5), grounded on the original LeapSpec/apply_args/join design
// (original_source/src/leaptypes.rs) and on the teacher's handle-indexed
// type graph in kdlc/passes/typecheck/graph.go.
package leapspec

import (
	"fmt"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/span"
)

// Handle is an opaque, cheap-to-copy index into a Spec's arena (spec.md
// §3: "Handles are Copy and cheap").
type Handle int

// Error is a spec-construction failure: spec.md §9 resolves the identifier
// character-set contract to be enforced here, at spec construction, rather
// than at ast.NewName.
type Error struct {
	Span    span.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at byte %d)", e.Message, e.Span.Start)
}

// Spec is the arena of declared types plus the name index (spec.md §3).
type Spec struct {
	types       []ast.DeclaredType
	nameToHandle map[string]Handle
}

// New builds a Spec from an ordered list of declarations, pushing each onto
// the arena and registering name.Get() -> handle (last write wins, per the
// Open Question in spec.md §9). It also validates the identifier character
// set of each declaration's name, formal arguments, and property/variant
// names once, here, per SPEC_FULL.md §4's resolution of that Open
// Question. Returns the shadowed handles (those overwritten in the name
// index by a later duplicate) alongside the Spec, so callers that want
// strictness can report them.
func New(decls []ast.DeclaredType) (*Spec, []Handle, error) {
	s := &Spec{nameToHandle: make(map[string]Handle, len(decls))}
	var shadowed []Handle
	for _, d := range decls {
		names := append([]ast.Name{d.GetName()}, d.GetArgs()...)
		for _, p := range d.Props() {
			names = append(names, p.Name)
		}
		for _, n := range names {
			if err := validateIdent(n); err != nil {
				return nil, nil, err
			}
		}
		h := Handle(len(s.types))
		s.types = append(s.types, d)
		if prev, ok := s.nameToHandle[d.GetName().Get()]; ok {
			shadowed = append(shadowed, prev)
		}
		s.nameToHandle[d.GetName().Get()] = h
	}
	return s, shadowed, nil
}

func validateIdent(name ast.Name) error {
	ident := name.Get()
	if ident == "" {
		return &Error{Span: name.Span(), Message: "identifier must not be empty"}
	}
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum && c != '-' {
			return &Error{Span: name.Span(), Message: "identifier must use ASCII letters, digits, and `-`"}
		}
		if c == '-' && (i == 0 || i == len(ident)-1 || ident[i-1] == '-') {
			return &Error{Span: name.Span(), Message: "`-` may not start, end, or repeat in an identifier"}
		}
	}
	return nil
}

// Get returns the declared type at handle.
func (s *Spec) Get(h Handle) ast.DeclaredType {
	return s.types[h]
}

// GetMut replaces the declared type at handle.
func (s *Spec) GetMut(h Handle, d ast.DeclaredType) {
	s.types[h] = d
}

// Lookup returns the handle registered for name, if any.
func (s *Spec) Lookup(name string) (Handle, bool) {
	h, ok := s.nameToHandle[name]
	return h, ok
}

// IterHandles returns every handle in arena order.
func (s *Spec) IterHandles() []Handle {
	handles := make([]Handle, len(s.types))
	for i := range s.types {
		handles[i] = Handle(i)
	}
	return handles
}

// IterRefs returns every declared type in arena order.
func (s *Spec) IterRefs() []ast.DeclaredType {
	return s.types
}

// IsStructName reports whether name resolves to a .struct.
func (s *Spec) IsStructName(name string) bool {
	h, ok := s.nameToHandle[name]
	return ok && s.types[h].Kind == ast.DeclStruct
}

// IsEnumName reports whether name resolves to a .enum.
func (s *Spec) IsEnumName(name string) bool {
	h, ok := s.nameToHandle[name]
	return ok && s.types[h].Kind == ast.DeclEnum
}

// Join appends other's declarations onto s, re-indexing names; last write
// wins on a duplicate name, exactly as New does (spec.md §4.5).
func (s *Spec) Join(other *Spec) {
	for _, d := range other.types {
		h := Handle(len(s.types))
		s.types = append(s.types, d)
		s.nameToHandle[d.GetName().Get()] = h
	}
}

// ApplyArgs clones the declared type at handle, substituting every
// TypeArg(fi) occurrence in its properties with the corresponding actual in
// args (spec.md §4.5). len(args) must equal the number of formals;
// otherwise ApplyArgs panics, matching the original's documented
// panic-on-mismatch contract (callers must check).
func (s *Spec) ApplyArgs(h Handle, args []ast.ValueType) ast.DeclaredType {
	d := s.types[h]
	formals := d.GetArgs()
	if len(formals) != len(args) {
		panic(fmt.Sprintf("leapspec: apply_args argument count mismatch: %d formals, %d actuals", len(formals), len(args)))
	}
	substitution := make(map[string]ast.ValueType, len(formals))
	for i, f := range formals {
		substitution[f.Get()] = args[i]
	}
	props := d.Props()
	substituted := make([]ast.Prop, len(props))
	for i, p := range props {
		substituted[i] = ast.Prop{
			Name:        p.Name,
			ValueType:   substituteValueType(p.ValueType, substitution),
			Span:        p.Span,
			IsRecursive: p.IsRecursive,
		}
	}
	return d.WithProps(substituted)
}

// substituteValueType recurses through List and through the args of Named,
// replacing any TypeArg whose identifier is a key in substitution.
// Named.Name is never rewritten — only TypeArg nodes are resolved, per
// spec.md §4.5.
func substituteValueType(v ast.ValueType, substitution map[string]ast.ValueType) ast.ValueType {
	switch v.Kind {
	case ast.KindSimple:
		return v
	case ast.KindList:
		return ast.NewList(substituteValueType(v.Element(), substitution))
	case ast.KindTypeArg:
		if actual, ok := substitution[v.Name.Get()]; ok {
			return actual
		}
		return v
	case ast.KindNamed:
		args := make([]ast.ValueType, len(v.Args))
		for i, a := range v.Args {
			args[i] = substituteValueType(a, substitution)
		}
		return ast.NewNamed(v.Name, args)
	default:
		return v
	}
}

// WithAliases returns a new Spec in which every Name whose identifier is a
// key in aliases acquires the mapped alias. The identifier itself, and
// therefore equality and lookup, are unchanged (spec.md §4.5 Aliasing).
func (s *Spec) WithAliases(aliases map[string]string) *Spec {
	out := &Spec{
		types:        make([]ast.DeclaredType, len(s.types)),
		nameToHandle: make(map[string]Handle, len(s.nameToHandle)),
	}
	for k, v := range s.nameToHandle {
		out.nameToHandle[k] = v
	}
	for i, d := range s.types {
		out.types[i] = aliasDecl(d, aliases)
	}
	return out
}

func aliasDecl(d ast.DeclaredType, aliases map[string]string) ast.DeclaredType {
	d.Struct.Name = aliasName(d.Struct.Name, aliases)
	d.Enum.Name = aliasName(d.Enum.Name, aliases)
	if d.Kind == ast.DeclStruct {
		d.Struct.Args = aliasNames(d.Struct.Args, aliases)
		d.Struct.Props = aliasProps(d.Struct.Props, aliases)
	} else {
		d.Enum.Args = aliasNames(d.Enum.Args, aliases)
		d.Enum.Variants = aliasProps(d.Enum.Variants, aliases)
	}
	return d
}

func aliasNames(names []ast.Name, aliases map[string]string) []ast.Name {
	out := make([]ast.Name, len(names))
	for i, n := range names {
		out[i] = aliasName(n, aliases)
	}
	return out
}

func aliasProps(props []ast.Prop, aliases map[string]string) []ast.Prop {
	out := make([]ast.Prop, len(props))
	for i, p := range props {
		out[i] = ast.Prop{
			Name:        aliasName(p.Name, aliases),
			ValueType:   aliasValueType(p.ValueType, aliases),
			Span:        p.Span,
			IsRecursive: p.IsRecursive,
		}
	}
	return out
}

func aliasValueType(v ast.ValueType, aliases map[string]string) ast.ValueType {
	switch v.Kind {
	case ast.KindList:
		return ast.NewList(aliasValueType(v.Element(), aliases))
	case ast.KindTypeArg:
		return ast.NewTypeArg(aliasName(v.Name, aliases))
	case ast.KindNamed:
		args := make([]ast.ValueType, len(v.Args))
		for i, a := range v.Args {
			args[i] = aliasValueType(a, aliases)
		}
		return ast.NewNamed(aliasName(v.Name, aliases), args)
	default:
		return v
	}
}

func aliasName(n ast.Name, aliases map[string]string) ast.Name {
	if alias, ok := aliases[n.Get()]; ok {
		return n.WithAlias(alias)
	}
	return n
}
