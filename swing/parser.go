package swing

// operator matches a binary operator token. keyword is set for the word
// operators `aur` and `ya`.
type operator struct {
	kind    TokenKind
	keyword string
}

func (op operator) matches(tok Token) bool {
	if op.keyword != "" {
		return tok.Is(op.kind, op.keyword)
	}
	return tok.Kind == op.kind
}

var (
	logicalOps = []operator{{kind: TokenKeyword, keyword: KeywordAnd}, {kind: TokenKeyword, keyword: KeywordOr}}
	compareOps = []operator{{kind: TokenEqEq}, {kind: TokenNotEq}, {kind: TokenLt}, {kind: TokenGt}, {kind: TokenLte}, {kind: TokenGte}}
	sumOps     = []operator{{kind: TokenPlus}, {kind: TokenMinus}}
	productOps = []operator{{kind: TokenMul}, {kind: TokenDiv}}
)

const (
	expectExpr    = "'yehai', int, float, identifier, '+', '-', '(' or 'na'"
	expectComp    = "int, float, identifier, '+', '-', '(' or 'na'"
	expectFactor  = "int, float, identifier, '+', '-' or '('"
	expectTrailer = "'+', '-', '*', '/', comparison operator, 'aur', 'ya' or end of input"
)

type parser struct {
	tokens []Token
	idx    int
	cur    Token
}

// Parse reduces a token sequence produced by Scan to a single expression.
// The sequence must end with TokenEOF and contain nothing after the
// expression.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		var at Position
		if len(tokens) > 0 {
			at = tokens[len(tokens)-1].End
		}
		return nil, newError(InvalidSyntax, at, at, "token stream is missing its end of input marker")
	}

	p := &parser{tokens: tokens, cur: tokens[0]}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, p.errorExpected(expectTrailer)
	}
	return node, nil
}

func (p *parser) advance() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	p.cur = p.tokens[p.idx]
}

func (p *parser) parseExpr() (Node, error) {
	if p.cur.Is(TokenKeyword, KeywordVar) {
		start := p.cur.Start
		p.advance()
		if p.cur.Kind != TokenIdentifier {
			return nil, p.errorExpected("identifier")
		}
		name, _ := p.cur.Value.(string)
		p.advance()
		if p.cur.Kind != TokenEq {
			return nil, p.errorExpected("'='")
		}
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		_, end := value.Span()
		return &VarAssign{Name: name, Value: value, span: span{start: start, end: end}}, nil
	}

	mark := p.idx
	node, err := p.binaryOp(p.parseCompExpr, logicalOps)
	if err != nil {
		if p.idx == mark {
			return nil, p.errorExpected(expectExpr)
		}
		return nil, err
	}
	return node, nil
}

func (p *parser) parseCompExpr() (Node, error) {
	if p.cur.Is(TokenKeyword, KeywordNot) {
		opTok := p.cur
		p.advance()
		operand, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		_, end := operand.Span()
		return &UnaryOp{Operator: TokenKeyword, Keyword: KeywordNot, Operand: operand, span: span{start: opTok.Start, end: end}}, nil
	}

	mark := p.idx
	node, err := p.binaryOp(p.parseArithExpr, compareOps)
	if err != nil {
		if p.idx == mark {
			return nil, p.errorExpected(expectComp)
		}
		return nil, err
	}
	return node, nil
}

func (p *parser) parseArithExpr() (Node, error) {
	return p.binaryOp(p.parseTerm, sumOps)
}

func (p *parser) parseTerm() (Node, error) {
	return p.binaryOp(p.parseFactor, productOps)
}

func (p *parser) parseFactor() (Node, error) {
	tok := p.cur

	switch tok.Kind {
	case TokenPlus, TokenMinus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		_, end := operand.Span()
		return &UnaryOp{Operator: tok.Kind, Operand: operand, span: span{start: tok.Start, end: end}}, nil
	case TokenIdentifier:
		p.advance()
		name, _ := tok.Value.(string)
		return &VarAccess{Name: name, span: span{start: tok.Start, end: tok.End}}, nil
	case TokenInt, TokenFloat:
		p.advance()
		return &NumberLiteral{Token: tok, span: span{start: tok.Start, end: tok.End}}, nil
	case TokenLParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokenRParen {
			return nil, p.errorExpected("')'")
		}
		p.advance()
		return expr, nil
	}

	return nil, p.errorExpected(expectFactor)
}

// binaryOp folds `operand (op operand)*` into left-associative BinaryOp nodes.
func (p *parser) binaryOp(operand func() (Node, error), ops []operator) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.matchesAny(ops) {
		opTok := p.cur
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		keyword := ""
		if opTok.Kind == TokenKeyword {
			keyword, _ = opTok.Value.(string)
		}
		left = &BinaryOp{Left: left, Operator: opTok.Kind, Keyword: keyword, Right: right, span: spanOf(left, right)}
	}
	return left, nil
}

func (p *parser) matchesAny(ops []operator) bool {
	for _, op := range ops {
		if op.matches(p.cur) {
			return true
		}
	}
	return false
}
