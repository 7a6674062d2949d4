package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsk700/leap-lang/span"
	"github.com/rsk700/leap-lang/token"
)

func TestStreamPeekAndConsume(t *testing.T) {
	end := token.Token{Kind: token.End, Span: span.New(3, 0)}
	toks := []token.Token{
		{Kind: token.Struct, Span: span.New(0, 7)},
		{Kind: token.Word, Text: "s1", Span: span.New(8, 2)},
	}
	stream := token.NewStream(toks, end)

	assert.Equal(t, token.Struct, stream.Get().Kind)
	assert.Equal(t, token.Struct, stream.Consume().Kind)
	assert.Equal(t, "s1", stream.Get().Text)
	stream.Next()
	assert.Equal(t, token.End, stream.Get().Kind)
	assert.Equal(t, token.End, stream.Get().Kind, "reads past the end stay at End")
}

func TestKindStringNamesTokenClasses(t *testing.T) {
	assert.Equal(t, "`.struct`", token.Struct.String())
	assert.Equal(t, "name", token.Word.String())
	assert.Equal(t, "end of input", token.End.String())
}
