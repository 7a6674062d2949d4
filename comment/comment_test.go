package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsk700/leap-lang/comment"
)

func TestScanLineComment(t *testing.T) {
	comments := comment.Scan("/ a note\nv: int")
	assert.Len(t, comments, 1)
	assert.Equal(t, comment.Line, comments[0].Kind)
	assert.Equal(t, "a note", comments[0].Text)
}

func TestScanTrailingComment(t *testing.T) {
	comments := comment.Scan("v: int / text")
	assert.Len(t, comments, 1)
	assert.Equal(t, comment.Trail, comments[0].Kind)
	assert.Equal(t, "text", comments[0].Text)
}

func TestScanSeparatorForBlankLine(t *testing.T) {
	comments := comment.Scan("a: int\n\nb: str")
	assert.Len(t, comments, 1)
	assert.Equal(t, comment.Separator, comments[0].Kind)
	assert.Equal(t, "", comments[0].Text)
}

func TestScanMarkLengthPrefix(t *testing.T) {
	comments := comment.Scan("/-- section header")
	assert.Len(t, comments, 1)
	assert.Equal(t, comment.Line, comments[0].Kind)
	assert.Equal(t, "section header", comments[0].Text)
	assert.Equal(t, 3, comments[0].Span.Length-len(" section header"))
}
