package stats

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestUTF8Length(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"cyrillic", "привіт", 6},
		{"cjk", "你好", 2},
		{"emoji", "🙂", 1},
		{"mixed", "hi 👋🏽!", 6},
		{"replacement char", "�", 1},
		{"nul", "a\x00b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF8Length(tt.text))
			assert.Equal(t, utf8.RuneCountInString(tt.text), UTF8Length(tt.text))
		})
	}
}

func TestUTF8LengthStopsAtMalformedSequence(t *testing.T) {
	assert.Equal(t, 2, UTF8Length("ab\xffcd"))
	assert.Equal(t, 1, UTF8Length("a\xe2\x82"))
	assert.Equal(t, 0, UTF8Length("\x80abc"))
}
