package indent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"kr.dev/indent"
)

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("  a\n  b\n", indent.String("  ", "a\nb\n"))
	assert.Equal("  a\n\n  b", indent.String("  ", "a\n\nb"))
	assert.Equal("\n\n", indent.String("  ", "\n\n"))
	assert.Equal("", indent.String("  ", ""))
	assert.Equal("a\nb", indent.String("", "a\nb"))
}

type shouter string

func (s shouter) String() string {
	return strings.ToUpper(string(s))
}

func TestStringer(t *testing.T) {
	assert := assert.New(t)
	v := indent.Stringer("\t", shouter("one\ntwo\n"))
	assert.Equal("\tONE\n\tTWO\n", v.String())
}
