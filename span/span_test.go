package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsk700/leap-lang/span"
)

func TestEnd(t *testing.T) {
	s := span.New(4, 6)
	assert.Equal(t, 10, s.End())
}

func TestExtendCoversBoth(t *testing.T) {
	s := span.New(4, 6)
	other := span.New(8, 2)
	extended := s.Extend(other)
	assert.Equal(t, span.New(4, 6), extended)

	other2 := span.New(8, 10)
	extended2 := s.Extend(other2)
	assert.Equal(t, span.New(4, 14), extended2)
}

func TestExtendNeverShrinks(t *testing.T) {
	s := span.New(0, 10)
	extended := s.Extend(span.New(2, 1))
	assert.Equal(t, 10, extended.Length)
}
