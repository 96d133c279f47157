package rtttl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemovesWhitespace(t *testing.T) {
	assert.Equal(t, "16d4,f#,d.", RemoveWhitespace(" 16d4, f#  , d . "))
}

func TestRemovesEveryKindOfWhitespace(t *testing.T) {
	cases := []string{"a b", "a\tb", "a\nb", "a\r\n b", "a\u00a0b", "a\u3000b", "a\x1cb", "a\x1db", "a\x1eb", "a\x1fb", "a\u0085b", "\v\fa  b\t"}
	for _, c := range cases {
		t.Run(fmt.Sprintf("strips whitespace from %q", c), func(t *testing.T) {
			assert.Equal(t, "ab", RemoveWhitespace(c))
		})
	}
}

func TestRemoveWhitespaceIsIdempotent(t *testing.T) {
	cases := []string{"", "   ", "Barbie Girl : d=8, o=5 ,b=125", "8f#.6,\n4p"}
	for _, c := range cases {
		once := RemoveWhitespace(c)
		assert.Equal(t, once, RemoveWhitespace(once))
	}
}

func TestParseSkipsSeparatorCharacters(t *testing.T) {
	doc, err := Parse("t:d=4,o=5,b=63:c,\x1cd\x1f", false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(2, doc.Len())
	assert.Equal(293.7*2, doc.Notes[1].Frequency)
}
