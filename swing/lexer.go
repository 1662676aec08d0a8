package swing

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ScanOptions tweaks lexical behaviour.
type ScanOptions struct {
	// SkipTabs treats the tab character as whitespace. Without it only the
	// space and the two-character sequence "/t" are skipped.
	SkipTabs bool
}

type lexer struct {
	input string
	opts  ScanOptions

	pos Position
	ch  rune
}

func newLexer(input, source string, opts ScanOptions) *lexer {
	l := &lexer{input: input, opts: opts, pos: newPosition(source, input)}
	l.ch = l.runeAt(0)
	return l
}

// Scan converts one line of source into tokens terminated by TokenEOF. On
// failure the tokens scanned before the offending rune are returned along
// with a *Error.
func Scan(text, source string) ([]Token, error) {
	return ScanWithOptions(text, source, ScanOptions{})
}

// ScanWithOptions is Scan with explicit lexer options.
func ScanWithOptions(text, source string, opts ScanOptions) ([]Token, error) {
	return newLexer(text, source, opts).tokens()
}

func (l *lexer) runeAt(offset int) rune {
	if offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[offset:])
	return r
}

func (l *lexer) atEnd() bool {
	return l.pos.Index >= len(l.input)
}

func (l *lexer) readRune() {
	l.pos.Advance()
	l.ch = l.runeAt(l.pos.Index)
}

func (l *lexer) peekRune() rune {
	if l.atEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[l.pos.Index:])
	return l.runeAt(l.pos.Index + w)
}

func (l *lexer) tokens() ([]Token, error) {
	var tokens []Token
	for !l.atEnd() {
		switch {
		case l.ch == ' ', l.ch == '\t' && l.opts.SkipTabs:
			l.readRune()
		case l.ch == '/' && l.peekRune() == 't':
			l.readRune()
			l.readRune()
		case isDigit(l.ch):
			tok, err := l.readNumber()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case isLetter(l.ch):
			tokens = append(tokens, l.readIdentifier())
		case l.ch == '+':
			tokens = append(tokens, l.single(TokenPlus))
		case l.ch == '-':
			tokens = append(tokens, l.single(TokenMinus))
		case l.ch == '*':
			tokens = append(tokens, l.single(TokenMul))
		case l.ch == '/':
			tokens = append(tokens, l.single(TokenDiv))
		case l.ch == '(':
			tokens = append(tokens, l.single(TokenLParen))
		case l.ch == ')':
			tokens = append(tokens, l.single(TokenRParen))
		case l.ch == '=':
			tokens = append(tokens, l.withEquals(TokenEq, TokenEqEq))
		case l.ch == '>':
			tokens = append(tokens, l.withEquals(TokenGt, TokenGte))
		case l.ch == '<':
			tokens = append(tokens, l.withEquals(TokenLt, TokenLte))
		case l.ch == '!':
			tok, err := l.readNotEquals()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		default:
			start := l.pos
			ch := l.ch
			l.readRune()
			return tokens, newError(IllegalCharacter, start, l.pos, "'%c'", ch)
		}
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Start: l.pos, End: l.pos.Advanced()})
	return tokens, nil
}

func (l *lexer) single(kind TokenKind) Token {
	start := l.pos
	l.readRune()
	return Token{Kind: kind, Start: start, End: l.pos}
}

// withEquals scans a one-rune operator that becomes long when followed by '='.
func (l *lexer) withEquals(short, long TokenKind) Token {
	start := l.pos
	kind := short
	l.readRune()
	if !l.atEnd() && l.ch == '=' {
		kind = long
		l.readRune()
	}
	return Token{Kind: kind, Start: start, End: l.pos}
}

func (l *lexer) readNotEquals() (Token, error) {
	start := l.pos
	l.readRune()
	if !l.atEnd() && l.ch == '=' {
		l.readRune()
		return Token{Kind: TokenNotEq, Start: start, End: l.pos}, nil
	}
	return Token{}, newError(ExpectedCharacter, start, start.Advanced(), "expected '=' after '!'")
}

func (l *lexer) readNumber() (Token, error) {
	var sb strings.Builder
	start := l.pos
	hasDot := false

	for !l.atEnd() && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if hasDot {
				break
			}
			hasDot = true
		}
		sb.WriteRune(l.ch)
		l.readRune()
	}

	literal := sb.String()
	if hasDot {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Token{}, newError(InvalidSyntax, start, l.pos, "invalid float literal %q", literal)
		}
		return Token{Kind: TokenFloat, Value: value, Start: start, End: l.pos}, nil
	}
	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return Token{}, newError(InvalidSyntax, start, l.pos, "integer literal out of range: %s", literal)
	}
	return Token{Kind: TokenInt, Value: value, Start: start, End: l.pos}, nil
}

func (l *lexer) readIdentifier() Token {
	start := l.pos
	for !l.atEnd() && isIdentifierRune(l.ch) {
		l.readRune()
	}
	literal := l.input[start.Index:l.pos.Index]
	kind := TokenIdentifier
	if isKeyword(literal) {
		kind = TokenKeyword
	}
	return Token{Kind: kind, Value: literal, Start: start, End: l.pos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentifierRune(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}
