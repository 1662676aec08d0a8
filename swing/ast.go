package swing

import "fmt"

// Node is any element of the syntax tree. Span returns the start of the
// leftmost token and the end of the rightmost token the node came from.
type Node interface {
	Span() (Position, Position)
	String() string
	node()
}

type span struct {
	start Position
	end   Position
}

func (s span) Span() (Position, Position) { return s.start, s.end }

// NumberLiteral is an Int or Float literal.
type NumberLiteral struct {
	Token Token
	span
}

func (*NumberLiteral) node() {}

func (n *NumberLiteral) String() string {
	return fmt.Sprintf("%v", n.Token.Value)
}

// VarAccess reads a variable.
type VarAccess struct {
	Name string
	span
}

func (*VarAccess) node() {}

func (n *VarAccess) String() string {
	return n.Name
}

// VarAssign binds Name to the result of Value in the current environment.
type VarAssign struct {
	Name  string
	Value Node
	span
}

func (*VarAssign) node() {}

func (n *VarAssign) String() string {
	return fmt.Sprintf("(%s %s = %s)", KeywordVar, n.Name, n.Value)
}

// BinaryOp applies Operator to Left and Right. Operator is TokenKeyword for
// `aur` and `ya`, in which case Keyword names it.
type BinaryOp struct {
	Left     Node
	Operator TokenKind
	Keyword  string
	Right    Node
	span
}

func (*BinaryOp) node() {}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, operatorLabel(n.Operator, n.Keyword), n.Right)
}

// UnaryOp applies Operator (+, - or the `na` keyword) to Operand.
type UnaryOp struct {
	Operator TokenKind
	Keyword  string
	Operand  Node
	span
}

func (*UnaryOp) node() {}

func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", operatorLabel(n.Operator, n.Keyword), n.Operand)
}

func operatorLabel(kind TokenKind, keyword string) string {
	if kind == TokenKeyword {
		return keyword
	}
	return string(kind)
}

func spanOf(start, end Node) span {
	s, _ := start.Span()
	_, e := end.Span()
	return span{start: s, end: e}
}
