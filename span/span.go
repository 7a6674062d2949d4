// Package span holds byte-offset source positions shared by every stage of
// the compiler, from the lexer through the formatter.
package span

// Span is a half-open byte range [Start, Start+Length) over a source file.
type Span struct {
	Start  int
	Length int
}

// New returns a span starting at start with the given length.
func New(start, length int) Span {
	return Span{Start: start, Length: length}
}

// End returns the byte offset immediately past the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// Extend returns the smallest span covering both s and other, anchored at
// s.Start. It does not require other to start after s.
func (s Span) Extend(other Span) Span {
	length := s.Length
	if otherEnd := other.End() - s.Start; otherEnd > length {
		length = otherEnd
	}
	return Span{Start: s.Start, Length: length}
}
