// Package loader is the multi-file driver (spec.md §6 "File driver
// interface"): it reads an ordered list of source paths, parses each,
// assigns the path onto every resulting declared type, and joins them into
// one leapspec.Spec. Grounded on the teacher's kdlc/loader/source.go for
// the root-search read pattern, and on
// original_source/src/parser/patherror.rs for PathError's line/column
// error_report rendering.
package loader

import (
	"fmt"
	"os"
	"strings"
)

// PathError attaches a file path and byte position to a core error. Parse
// failure surfaces as (path, byte_offset, message); file-I/O failure as
// (path, 0, os_message) (spec.md §6).
type PathError struct {
	Path     string
	Position int
	Err      string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Report renders a line/column pointer into the offending file, matching
// original_source/src/parser/patherror.rs's error_report. If the file can
// no longer be read (or the position lies past its content), it falls back
// to a bare "path\nerror" rendering.
func (e *PathError) Report() string {
	contents, err := os.ReadFile(e.Path)
	if err != nil {
		return fmt.Sprintf("%s\n%s", e.Path, e.Err)
	}
	line, col, text, ok := locate(string(contents), e.Position)
	if !ok {
		return fmt.Sprintf("%s\n%s", e.Path, e.Err)
	}
	arrow := strings.Repeat(" ", col)
	return fmt.Sprintf("%s:%d:%d\n     |\n%4d |%s\n     |%s^---\n\n%s",
		e.Path, line, col, line, text, arrow, e.Err)
}

// locate finds the line (0-indexed, matching the original's split('\n')
// enumeration), the column within it, and the line's text, for a byte
// position in s.
func locate(s string, position int) (line, col int, text string, ok bool) {
	offset := 0
	for n, l := range strings.Split(s, "\n") {
		if position <= offset+len(l) {
			return n, position - offset, l, true
		}
		offset += len(l) + 1
	}
	return 0, 0, "", false
}
