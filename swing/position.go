package swing

import "unicode/utf8"

// Position identifies a rune in the source line. Line and Column are
// zero-based; Index is a byte offset into Text.
type Position struct {
	Index  int
	Line   int
	Column int
	Source string
	Text   string
}

func newPosition(source, text string) Position {
	return Position{Source: source, Text: text}
}

// Advance moves the position past the rune it currently points at.
func (p *Position) Advance() {
	if p.Index >= len(p.Text) {
		p.Index++
		p.Column++
		return
	}
	r, w := utf8.DecodeRuneInString(p.Text[p.Index:])
	p.Index += w
	if r == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
}

// Advanced returns a copy of p moved one rune forward.
func (p Position) Advanced() Position {
	p.Advance()
	return p
}
