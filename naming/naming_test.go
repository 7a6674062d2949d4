package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsk700/leap-lang/naming"
)

func TestWordStyles(t *testing.T) {
	assert.Equal(t, "foo", naming.Word("foo", naming.Lower))
	assert.Equal(t, "FOO", naming.Word("foo", naming.Upper))
	assert.Equal(t, "Foo", naming.Word("foo", naming.TitleFirst))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "my_box_type", naming.Join([]string{"my", "box", "type"}, naming.Lower, "_"))
	assert.Equal(t, "MyBoxType", naming.Join([]string{"my", "box", "type"}, naming.TitleFirst, ""))
	assert.Equal(t, "MY-BOX-TYPE", naming.Join([]string{"my", "box", "type"}, naming.Upper, "-"))
}
