package swing

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	TokenInt        TokenKind = "INT"
	TokenFloat      TokenKind = "FLOAT"
	TokenIdentifier TokenKind = "IDENTIFIER"
	TokenKeyword    TokenKind = "KEYWORD"

	TokenPlus   TokenKind = "+"
	TokenMinus  TokenKind = "-"
	TokenMul    TokenKind = "*"
	TokenDiv    TokenKind = "/"
	TokenEq     TokenKind = "="
	TokenEqEq   TokenKind = "=="
	TokenNotEq  TokenKind = "!="
	TokenGt     TokenKind = ">"
	TokenLt     TokenKind = "<"
	TokenGte    TokenKind = ">="
	TokenLte    TokenKind = "<="
	TokenLParen TokenKind = "("
	TokenRParen TokenKind = ")"

	TokenEOF TokenKind = "EOF"
)

// Keywords of the dialect.
const (
	KeywordVar = "yehai"
	KeywordAnd = "aur"
	KeywordOr  = "ya"
	KeywordNot = "na"

	// Reserved for conditionals and loops; no grammar rule accepts them yet.
	KeywordIf     = "agar"
	KeywordThen   = "phir"
	KeywordElse   = "nahito"
	KeywordElseIf = "nahito_agar"
	KeywordWhile  = "jabtak"
)

var keywords = map[string]struct{}{
	KeywordVar:    {},
	KeywordAnd:    {},
	KeywordOr:     {},
	KeywordNot:    {},
	KeywordIf:     {},
	KeywordThen:   {},
	KeywordElse:   {},
	KeywordElseIf: {},
	KeywordWhile:  {},
}

// Keywords returns every keyword of the dialect, reserved ones included.
func Keywords() []string {
	return []string{
		KeywordVar, KeywordAnd, KeywordOr, KeywordNot,
		KeywordIf, KeywordThen, KeywordElse, KeywordElseIf, KeywordWhile,
	}
}

func isKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Token captures one lexeme together with its span. Value holds an int64
// for TokenInt, a float64 for TokenFloat and the literal text for
// identifiers and keywords.
type Token struct {
	Kind  TokenKind
	Value any
	Start Position
	End   Position
}

// Is reports whether the token has the given kind and literal text.
func (t Token) Is(kind TokenKind, value string) bool {
	if t.Kind != kind {
		return false
	}
	s, ok := t.Value.(string)
	return ok && s == value
}

func (t Token) String() string {
	if t.Value == nil {
		return string(t.Kind)
	}
	return fmt.Sprintf("%s:%v", t.Kind, t.Value)
}
