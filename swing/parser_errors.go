package swing

import "fmt"

func (p *parser) errorExpected(expected string) *Error {
	return newError(InvalidSyntax, p.cur.Start, p.cur.End, "expected %s, got %s", expected, tokenLabel(p.cur))
}

func tokenLabel(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", tok.Value)
	case TokenInt:
		return "int"
	case TokenFloat:
		return "float"
	case TokenKeyword:
		return fmt.Sprintf("'%v'", tok.Value)
	default:
		return fmt.Sprintf("'%s'", tok.Kind)
	}
}
