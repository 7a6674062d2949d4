// Package format implements the canonical, comment-preserving pretty
// printer (spec.md §4.7). It interleaves two independently produced
// streams — the parsed declarations and the scanned comments — into one
// set of output lines, then normalizes blank lines.
//
// The original_source/src/formatter.rs blob retrieved for this spec only
// covers bare declaration rendering (no comment interleaving is
// implemented there); the block/trail-indent/blank-line-normalization
// behavior below is authored directly from spec.md §4.7's prose and
// verified against its literal S1-S3 scenarios.
package format

import (
	"strings"

	"github.com/rsk700/leap-lang/ast"
	"github.com/rsk700/leap-lang/comment"
	"github.com/rsk700/leap-lang/parser"
)

// block is one line of formatter output (header, property, or variant)
// plus its alignment metadata (spec.md §4.7, §9 "Formatter state").
type block struct {
	start       int
	nextStart   int
	text        string
	newSection  bool
	trailIndent int
}

// Format re-emits src in canonical form. It is idempotent:
// Format(Format(x)) == Format(x) for any x that parses.
func Format(src string) (string, error) {
	trees, err := parser.ParseAll(src)
	if err != nil {
		return "", err
	}
	if len(trees) == 0 {
		return "", nil
	}

	decls := make([]ast.DeclaredType, len(trees))
	for i, t := range trees {
		d, err := ast.Lower(t)
		if err != nil {
			return "", err
		}
		decls[i] = d
	}

	groups := make([][]block, len(trees))
	for i, tree := range trees {
		nextDeclStart := len(src)
		if i+1 < len(trees) {
			nextDeclStart = trees[i+1].Span.Start
		}
		groups[i] = buildGroup(tree, decls[i], nextDeclStart)
	}

	leading, trailing := splitComments(comment.Scan(src))

	var lines []string
	li := 0
	for gi, group := range groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		maxLen := 0
		for _, b := range group {
			if len(b.text) > maxLen {
				maxLen = len(b.text)
			}
		}
		trailIndent := ((maxLen / 4) * 4) + 4
		for _, b := range group {
			for li < len(leading) && leading[li].Span.Start < b.start {
				lines = append(lines, renderLeading(leading[li], b.newSection))
				li++
			}
			text := b.text
			if tc, ok := findTrailing(trailing, b.start, b.nextStart); ok {
				text = padTo(text, trailIndent) + "/ " + tc.Text
			}
			lines = append(lines, text)
		}
	}
	for li < len(leading) {
		lines = append(lines, renderLeading(leading[li], false))
		li++
	}

	lines = normalizeBlank(lines)
	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// buildGroup produces the header block and one block per property/variant
// for a single declaration. nextDeclStart bounds the last block's range —
// the byte offset of the next declaration's first token, or end of file.
func buildGroup(tree *parser.Tree, d ast.DeclaredType, nextDeclStart int) []block {
	props := d.Props()
	headerNext := nextDeclStart
	if len(props) > 0 {
		headerNext = props[0].Span.Start
	}
	group := []block{{
		start:      tree.Span.Start,
		nextStart:  headerNext,
		text:       headerLine(d),
		newSection: true,
	}}
	for i, p := range props {
		next := nextDeclStart
		if i+1 < len(props) {
			next = props[i+1].Span.Start
		}
		group = append(group, block{
			start:     p.Span.Start,
			nextStart: next,
			text:      memberLine(d, p),
		})
	}
	return group
}

func headerLine(d ast.DeclaredType) string {
	keyword := ".struct"
	if d.Kind == ast.DeclEnum {
		keyword = ".enum"
	}
	return keyword + " " + d.GetName().Get() + argsBlock(d.GetArgs())
}

func argsBlock(args []ast.Name) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Get()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func memberLine(d ast.DeclaredType, p ast.Prop) string {
	if d.Kind == ast.DeclStruct {
		return "    " + p.Name.Get() + ": " + p.ValueType.Render()
	}
	return "    " + p.ValueType.Render()
}

func splitComments(all []comment.Comment) (leading, trailing []comment.Comment) {
	for _, c := range all {
		if c.Kind == comment.Trail {
			trailing = append(trailing, c)
		} else {
			leading = append(leading, c)
		}
	}
	return leading, trailing
}

func renderLeading(c comment.Comment, newSection bool) string {
	if c.Kind == comment.Separator {
		return ""
	}
	indent := "    "
	if newSection {
		indent = ""
	}
	return indent + "/ " + c.Text
}

// findTrailing locates the (at most one, by construction) Trail comment
// whose span starts strictly between start and nextStart.
func findTrailing(trailing []comment.Comment, start, nextStart int) (comment.Comment, bool) {
	for _, c := range trailing {
		if c.Span.Start > start && c.Span.Start < nextStart {
			return c, true
		}
	}
	return comment.Comment{}, false
}

func padTo(s string, n int) string {
	if n <= len(s) {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// normalizeBlank collapses runs of adjacent blank lines into one and strips
// leading/trailing blank lines.
func normalizeBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}
		out = append(out, l)
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
