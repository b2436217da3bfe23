package dixlang

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

func Eval(ctx context.Context, node Node, env *Env) (Value, error) {
	switch node := node.(type) {

	case *Block:
		for _, stmt := range node.Statements {
			if _, err := Eval(ctx, stmt, env); err != nil {
				return Value{}, err
			}
		}
		return Value{}, nil

	case *WhileNode:
		for {
			if err := env.step(ctx); err != nil {
				return Value{}, WithPos(err, node.Keyword.Pos)
			}
			cond, err := Eval(ctx, node.Cond, env)
			if err != nil {
				return Value{}, WithPos(err, node.Keyword.Pos)
			}
			if !cond.Truth() {
				return Value{}, nil
			}
			if _, err := Eval(ctx, node.Body, env); err != nil {
				return Value{}, err
			}
		}

	case *IfNode:
		cond, err := Eval(ctx, node.Cond, env)
		if err != nil {
			return Value{}, WithPos(err, node.Keyword.Pos)
		}
		if cond.Truth() {
			if _, err := Eval(ctx, node.Body, env); err != nil {
				return Value{}, err
			}
		}
		return Value{}, nil

	case *Statement:
		if err := env.step(ctx); err != nil {
			return Value{}, WithPos(err, node.Pos())
		}
		env.Logger.DebugContext(ctx, "statement",
			"pos", node.Pos().String(),
		)
		value, err := Eval(ctx, node.Expr, env)
		if err != nil {
			return Value{}, WithPos(err, node.Pos())
		}
		return value, nil

	case *Expression:
		return evalExpression(ctx, node, env)

	case *Declaration:
		name := node.Name.Text
		if !env.Store.Has(name) {
			env.Store.Set(name, declarationDefaults[node.Type.Text])
		}
		return Text(name), nil

	case *Call:
		return evalCall(ctx, node, env)

	case *Atom:
		return evalAtom(node, env)

	case *LValue:
		return Text(node.Name.Text), nil

	}
	panic(fmt.Errorf("unknown node type %T", node))
}

func evalAtom(node *Atom, env *Env) (Value, error) {
	token := node.Token
	switch token.Category {
	case Number:
		f, err := strconv.ParseFloat(token.Text, 64)
		// out of range literals become +Inf
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, WithPos(err, token.Pos)
		}
		return Num(f), nil
	case String:
		return Text(token.Text[1 : len(token.Text)-1]), nil
	}
	value, ok := env.Store.Get(token.Text)
	if !ok {
		return Value{}, &UndeclaredVariableError{
			Name: token.Text,
		}
	}
	return value, nil
}

func evalCall(ctx context.Context, node *Call, env *Env) (Value, error) {
	name := node.Name.Text
	fn, ok := env.Intrinsics[name]
	if !ok {
		return Value{}, &UnknownIntrinsicError{
			Name: name,
		}
	}
	var args []Value
	if node.Arg != nil {
		arg, err := Eval(ctx, node.Arg, env)
		if err != nil {
			return Value{}, err
		}
		args = append(args, arg)
	}
	env.Logger.DebugContext(ctx, "intrinsic",
		"name", name,
		"args", len(args),
	)
	ret, err := fn(ctx, args)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", name, err)
	}
	return ret, nil
}

func evalExpression(ctx context.Context, node *Expression, env *Env) (Value, error) {
	left, err := Eval(ctx, node.Left, env)
	if err != nil {
		return Value{}, err
	}

	if node.Op == OpAssign {
		name, _ := left.Str()
		value, err := Eval(ctx, node.Right, env)
		if err != nil {
			return Value{}, err
		}
		env.Store.Set(name, value)
		return value, nil
	}

	right, err := Eval(ctx, node.Right, env)
	if err != nil {
		return Value{}, err
	}

	if node.Op == OpCompare {
		return compare(node.Operator.Text, left, right)
	}
	return arithmetic(node.Op, node.Operator.Text, left, right)
}

func compare(operator string, left, right Value) (Value, error) {
	mismatch := &TypeMismatchError{
		Operator: operator,
		Left:     left.Kind(),
		Right:    right.Kind(),
	}
	if left.Kind() != right.Kind() {
		return Value{}, mismatch
	}

	if operator == "==" {
		return Bool(left.Equal(right)), nil
	}

	var c int
	switch left.Kind() {
	case KindNumber:
		l, _ := left.Float()
		r, _ := right.Float()
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	case KindText:
		l, _ := left.Str()
		r, _ := right.Str()
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	default:
		return Value{}, mismatch
	}

	switch operator {
	case "<":
		return Bool(c < 0), nil
	case ">":
		return Bool(c > 0), nil
	case "<=":
		return Bool(c <= 0), nil
	case ">=":
		return Bool(c >= 0), nil
	}
	return Value{}, fmt.Errorf("unknown comparison %q", operator)
}

func arithmetic(op OperatorKind, operator string, left, right Value) (Value, error) {
	if op == OpAdd {
		if l, ok := left.Str(); ok {
			if r, ok := right.Str(); ok {
				return Text(l + r), nil
			}
		}
	}

	l, lok := left.Float()
	r, rok := right.Float()
	if !lok || !rok {
		return Value{}, &TypeMismatchError{
			Operator: operator,
			Left:     left.Kind(),
			Right:    right.Kind(),
		}
	}

	switch op {
	case OpAdd:
		return Num(l + r), nil
	case OpSub:
		return Num(l - r), nil
	case OpMul:
		return Num(l * r), nil
	case OpDiv:
		if r == 0 {
			return Value{}, &DivisionByZeroError{}
		}
		return Num(l / r), nil
	}
	return Value{}, fmt.Errorf("unknown operator %q", operator)
}
