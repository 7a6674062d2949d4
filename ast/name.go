// Package ast holds the typed schema-language AST: Name, SimpleType,
// ValueType, Prop, Struct, Enum, and the CST-to-AST lowering pass (spec.md
// §3, §4.4).
package ast

import (
	"strings"

	"github.com/rsk700/leap-lang/naming"
	"github.com/rsk700/leap-lang/span"
)

// Name is an identifier plus its source span, optionally carrying an alias
// applied by an external aliasing pass (leapspec.WithAliases). Equality and
// hashing consider only the identifier, never the span or the alias
// (spec.md §3, §9 "Name semantics").
type Name struct {
	ident string
	alias string
	span  span.Span
}

// NewName builds a Name from its identifier and span. The identifier
// character-set contract (ASCII letters, digits, `-` not leading/trailing/
// repeated) is not enforced here — spec.md §9 defers that to spec
// construction (leapspec.New), matching the original's `todo`.
func NewName(ident string, sp span.Span) Name {
	return Name{ident: ident, span: sp}
}

// Get returns the identifier string.
func (n Name) Get() string {
	return n.ident
}

// Span returns the name's source position.
func (n Name) Span() span.Span {
	return n.span
}

// WithAlias returns a copy of n carrying alias. The identifier, span, and
// equality/hash are unaffected.
func (n Name) WithAlias(alias string) Name {
	n.alias = alias
	return n
}

// Aliased returns the alias if one was set, otherwise the identifier
// itself — this is the string apply_style renders from.
func (n Name) Aliased() string {
	if n.alias != "" {
		return n.alias
	}
	return n.ident
}

// Equal compares two names by identifier only, per spec.md §3/§9.
func (n Name) Equal(other Name) bool {
	return n.ident == other.ident
}

// ApplyStyle splits the aliased identifier on `-` and re-joins the
// per-word-cased parts with separator (spec.md §3 `apply_style`).
func (n Name) ApplyStyle(style naming.Style, separator string) string {
	parts := strings.Split(n.Aliased(), "-")
	return naming.Join(parts, style, separator)
}
