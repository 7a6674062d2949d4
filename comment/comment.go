// Package comment scans source text for comments, entirely independently of
// the lexer and parser (spec.md §4.7: "the formatter interleaves two
// streams: the parsed declarations ... and the independently scanned
// comments"). The lexer discards everything from a `/` to end of line; this
// package is the only place that looks at what was discarded.
package comment

import "github.com/rsk700/leap-lang/span"

// Kind classifies a scanned Comment.
type Kind int

const (
	// Line is a comment on a line of its own (only whitespace precedes the
	// marker).
	Line Kind = iota
	// Trail is a comment following real content on the same line.
	Trail
	// Separator is a blank line. It carries no text, only a position.
	Separator
)

// Comment is one scanned unit: a line comment, a trailing comment, or a
// blank-line separator.
type Comment struct {
	Text string
	Kind Kind
	Span span.Span
}

// Scan walks src line by line and returns every Comment found, in source
// order. A line is blank (Separator) if it has no non-whitespace bytes at
// all. Otherwise, if it contains a `/` marker, everything from the marker
// (inclusive of a `-` or `--` run immediately following it, per spec.md §6's
// mark-length note) to the end of the line is a comment: Line if only
// whitespace precedes the marker, Trail otherwise.
func Scan(src string) []Comment {
	var comments []Comment
	lineStart := 0
	for i := 0; i <= len(src); i++ {
		if i == len(src) || src[i] == '\n' {
			comments = append(comments, scanLine(src, lineStart, i)...)
			lineStart = i + 1
		}
	}
	return comments
}

func scanLine(src string, start, end int) []Comment {
	line := src[start:end]
	markerOffset := -1
	for i := 0; i < len(line); i++ {
		if line[i] == '/' {
			markerOffset = i
			break
		}
	}
	if markerOffset == -1 {
		if isBlank(line) {
			return []Comment{{Kind: Separator, Span: span.New(start, len(line))}}
		}
		return nil
	}

	before := line[:markerOffset]
	markLen := 1
	for markLen < len(line)-markerOffset && line[markerOffset+markLen] == '-' {
		markLen++
	}
	textStart := markerOffset + markLen
	text := trimLeadingSpace(line[textStart:])

	kind := Line
	if !isBlank(before) {
		kind = Trail
	}
	return []Comment{{
		Text: text,
		Kind: kind,
		Span: span.New(start+markerOffset, len(line)-markerOffset),
	}}
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}
