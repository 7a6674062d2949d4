package leapspec

import "github.com/rsk700/leap-lang/ast"

// MarkRecursiveProps runs the recursion analyzer (spec.md §4.6) over every
// declared type in s, mutating each Prop's IsRecursive flag in place. Never
// clears a flag once set.
// Grounded directly on original_source/src/prop_recursion_check.rs.
func (s *Spec) MarkRecursiveProps() {
	for _, h := range s.IterHandles() {
		d := s.Get(h)
		startName := d.GetName().Get()
		props := d.Props()
		changed := false
		for i, p := range props {
			if !p.IsRecursive && isRecursive(s, startName, p.ValueType) {
				props[i].IsRecursive = true
				changed = true
			}
		}
		if changed {
			s.GetMut(h, d.SetProps(props))
		}
	}
}

// isRecursive runs the per-property DFS described in spec.md §4.6: a fresh
// local visited set, short-circuit OR over every transitively reachable
// property, terminating via memoization on the full structural ValueType.
func isRecursive(s *Spec, startName string, next ast.ValueType) bool {
	visited := make(map[string]bool)
	return isRecursiveCheck(s, startName, next, visited)
}

func isRecursiveCheck(s *Spec, startName string, next ast.ValueType, visited map[string]bool) bool {
	if next.HeadName() == startName {
		return true
	}
	key := next.Key()
	if visited[key] {
		return false
	}
	visited[key] = true

	handle, ok := s.Lookup(next.HeadName())
	if !ok {
		// Primitives, type-args, and lists whose head is "list" all take
		// this branch: none of them resolve to a declared-type handle.
		return false
	}
	applied := s.ApplyArgs(handle, next.ArgsOf())
	for _, p := range applied.Props() {
		if isRecursiveCheck(s, startName, p.ValueType, visited) {
			return true
		}
	}
	return false
}
