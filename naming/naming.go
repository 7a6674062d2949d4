// Package naming provides the per-word case-conversion helper that
// ast.Name.ApplyStyle delegates to. spec.md §1 excludes "the small
// naming/case-conversion helper" from the core; this package is that
// external collaborator (grounded on the original's naming.rs, whose fixed
// snake_case/camelCase/upper_camel_case/joined/uppercase_joined functions
// are generalized here into one per-word Style applied uniformly).
package naming

import "strings"

// Style controls how a single word is rendered.
type Style int

const (
	// Lower renders the word unchanged in case: "foo".
	Lower Style = iota
	// Upper upper-cases the whole word: "FOO".
	Upper
	// TitleFirst upper-cases only the first rune: "Foo".
	TitleFirst
)

// Word applies style to a single already-lowercase word.
func Word(word string, style Style) string {
	switch style {
	case Upper:
		return strings.ToUpper(word)
	case TitleFirst:
		if word == "" {
			return word
		}
		r := []rune(word)
		return strings.ToUpper(string(r[0])) + string(r[1:])
	default:
		return word
	}
}

// Join applies style to every word and concatenates them with separator.
func Join(words []string, style Style, separator string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = Word(w, style)
	}
	return strings.Join(parts, separator)
}
