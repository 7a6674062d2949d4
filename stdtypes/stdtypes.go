// Package stdtypes holds the standard-library fragment: a small text
// constant in the schema language itself, joined into user specs alongside
// their own declarations (spec.md §6 "Standard-library fragment"; this
// content is external and not itself part of the core specification).
//
// Grounded on original_source/src/prop_recursion_check.rs's STD_TYPES test
// fixture, which exercises recursion-through-a-generic-wrapper via an
// option[t] type: declaring the `t` variant bare (rather than wrapped as
// `some[t]`) is what makes substitution land a Named reference directly on
// a variant's value type, so the recursion analyzer's DFS can walk through
// it into whatever t was applied to, exactly as spec.md §8 S5 requires.
package stdtypes

// Source is the standard-library fragment. It is parsed in memory and its
// declarations are passed to leapspec.New alongside the user's own (cmd/leapc
// hands them to loader.Driver.LoadPaths as extra declarations).
const Source = `
.enum option[t]
    t
    none
`
