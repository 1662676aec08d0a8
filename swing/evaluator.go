package swing

import "errors"

// Evaluate walks node against env. The returned value is attributed to ctx;
// failures are *Error values of kind RuntimeError.
func Evaluate(node Node, env *Env, ctx *Context) (Value, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return evalNumber(n, ctx)
	case *VarAccess:
		return evalVarAccess(n, env, ctx)
	case *VarAssign:
		return evalVarAssign(n, env, ctx)
	case *BinaryOp:
		return evalBinaryOp(n, env, ctx)
	case *UnaryOp:
		return evalUnaryOp(n, env, ctx)
	case nil:
		return Value{}, newRuntimeError(Position{}, Position{}, ctx, "nothing to evaluate")
	default:
		start, end := node.Span()
		return Value{}, newRuntimeError(start, end, ctx, "unsupported node %T", node)
	}
}

func evalNumber(n *NumberLiteral, ctx *Context) (Value, error) {
	switch v := n.Token.Value.(type) {
	case int64:
		return NewInt(v).WithContext(ctx), nil
	case float64:
		return NewFloat(v).WithContext(ctx), nil
	default:
		return Value{}, newRuntimeError(n.start, n.end, ctx, "malformed number literal %v", n.Token.Value)
	}
}

func evalVarAccess(n *VarAccess, env *Env, ctx *Context) (Value, error) {
	val, ok := env.Get(n.Name)
	if !ok {
		return Value{}, newRuntimeError(n.start, n.end, ctx, "%s is not defined", n.Name)
	}
	return val.WithContext(ctx), nil
}

func evalVarAssign(n *VarAssign, env *Env, ctx *Context) (Value, error) {
	val, err := Evaluate(n.Value, env, ctx)
	if err != nil {
		return Value{}, err
	}
	env.Define(n.Name, val)
	return val, nil
}

func evalBinaryOp(n *BinaryOp, env *Env, ctx *Context) (Value, error) {
	left, err := Evaluate(n.Left, env, ctx)
	if err != nil {
		return Value{}, err
	}
	right, err := Evaluate(n.Right, env, ctx)
	if err != nil {
		return Value{}, err
	}
	return applyBinary(n.Operator, n.Keyword, left, right, n.span, n.Right, ctx)
}

func evalUnaryOp(n *UnaryOp, env *Env, ctx *Context) (Value, error) {
	operand, err := Evaluate(n.Operand, env, ctx)
	if err != nil {
		return Value{}, err
	}

	switch {
	case n.Operator == TokenKeyword && n.Keyword == KeywordNot:
		return NewBool(operand.IsZero()).WithContext(ctx), nil
	case n.Operator == TokenMinus, n.Operator == TokenPlus:
		// Signs go through the operator table as 0 - x and 0 + x.
		zero := NewInt(0).WithContext(ctx)
		return applyBinary(n.Operator, "", zero, operand, n.span, n.Operand, ctx)
	default:
		return Value{}, newRuntimeError(n.start, n.end, ctx, "unsupported unary operator %s", operatorLabel(n.Operator, n.Keyword))
	}
}

func applyBinary(kind TokenKind, keyword string, left, right Value, at span, rightNode Node, ctx *Context) (Value, error) {
	fn, ok := lookupBinary(kind, keyword)
	if !ok {
		return Value{}, newRuntimeError(at.start, at.end, ctx, "unsupported operator %s", operatorLabel(kind, keyword))
	}
	result, err := fn(left, right)
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			start, end := rightNode.Span()
			return Value{}, newRuntimeError(start, end, ctx, "%s", err.Error())
		}
		return Value{}, newRuntimeError(at.start, at.end, ctx, "%s", err.Error())
	}
	return result.WithContext(ctx), nil
}
