package lineno

import (
	"strings"
	"unicode/utf8"
)

// eof symbolizes the end of the filter text. It is never a valid rune
// in the input.
const eof rune = -1

// input is a rune cursor over a single filter specification.
type input struct {
	buf string
	pos int
}

func (i *input) match(s string) bool { return i.token() != eof && strings.ContainsRune(s, i.token()) }

func (i *input) atEnd() bool { return i.pos >= len(i.buf) }

func (i *input) consume() {
	if i.atEnd() {
		return
	}
	_, n := utf8.DecodeRuneInString(i.buf[i.pos:])
	i.pos += n
}

func (i *input) token() rune {
	if i.atEnd() {
		return eof
	}
	tok, _ := utf8.DecodeRuneInString(i.buf[i.pos:])
	return tok
}

// skipWhitespace advances the cursor past spaces and tabs and reports
// whether anything was skipped.
func (i *input) skipWhitespace() bool {
	start := i.pos
	for i.match(" \t") {
		i.consume()
	}
	return i.pos != start
}
