package source

import "unicode/utf8"

// Position is a point in a source text. Line and Column are 1-based,
// Column counts runes, Index is the byte offset.
type Position struct {
	Line   int
	Column int
	Index  int
}

// Advance moves the position past text, starting a new line on '\n'.
func (p *Position) Advance(text string) *Position {
	for len(text) > 0 {
		char, size := utf8.DecodeRuneInString(text)
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += size
		text = text[size:]
	}
	return p
}
