package stats

import "unicode/utf8"

// UTF8Length counts the code points of text. Counting stops at the first
// malformed sequence.
func UTF8Length(text string) int {
	length := 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		pos += size
		length++
	}
	return length
}
