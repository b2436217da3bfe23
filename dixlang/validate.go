package dixlang

import "fmt"

// Validate checks node and all of its descendants.
func Validate(node Node) error {
	if err := check(node); err != nil {
		return err
	}
	for _, child := range children(node) {
		if err := Validate(child); err != nil {
			return err
		}
	}
	return nil
}

// check validates node without descending into its children.
func check(node Node) error {
	switch node := node.(type) {

	case *Block:
		for _, stmt := range node.Statements {
			if stmt == nil {
				return WithPos(malformed("nil statement in block"), node.Start)
			}
		}
		return nil

	case *WhileNode:
		return checkControl(node.Keyword, node.Cond, node.Body)

	case *IfNode:
		return checkControl(node.Keyword, node.Cond, node.Body)

	case *Statement:
		if len(node.Tokens) == 0 {
			return malformed("empty statement")
		}
		last := node.Tokens[len(node.Tokens)-1]
		if last.Category != Semicolon {
			return WithPos(malformed("statement must end with ';', got %q", last.Text), last.Pos)
		}
		if node.Expr == nil {
			return WithPos(malformed("empty statement"), last.Pos)
		}
		return nil

	case *Expression:
		if node.Left == nil || node.Right == nil {
			return WithPos(malformed("missing operand of %q", node.Operator.Text), node.Operator.Pos)
		}
		if node.Op == OpAssign {
			switch node.Left.(type) {
			case *LValue, *Declaration:
			default:
				return WithPos(malformed("cannot assign to expression"), node.Operator.Pos)
			}
		}
		return nil

	case *Declaration:
		if _, ok := declarationDefaults[node.Type.Text]; !ok {
			return WithPos(malformed("unknown type %q", node.Type.Text), node.Type.Pos)
		}
		if node.Name.Category != Identifier {
			return WithPos(malformed("bad variable name %q", node.Name.Text), node.Name.Pos)
		}
		return nil

	case *Call:
		if node.Name.Category != Identifier {
			return WithPos(malformed("bad intrinsic name %q", node.Name.Text), node.Name.Pos)
		}
		return nil

	case *Atom:
		switch node.Token.Category {
		case Number, String, Identifier:
			return nil
		}
		return WithPos(malformed("unexpected %q", node.Token.Text), node.Token.Pos)

	case *LValue:
		if node.Name.Category != Identifier {
			return WithPos(malformed("cannot assign to %q", node.Name.Text), node.Name.Pos)
		}
		return nil

	}
	panic(fmt.Errorf("unknown node type %T", node))
}

func checkControl(keyword Token, cond Node, body *Block) error {
	if cond == nil {
		return WithPos(malformed("%s without condition", keyword.Text), keyword.Pos)
	}
	if body == nil {
		return WithPos(malformed("%s without body", keyword.Text), keyword.Pos)
	}
	return nil
}

func children(node Node) []Node {
	switch node := node.(type) {
	case *Block:
		return node.Statements
	case *WhileNode:
		return []Node{node.Cond, node.Body}
	case *IfNode:
		return []Node{node.Cond, node.Body}
	case *Statement:
		return []Node{node.Expr}
	case *Expression:
		return []Node{node.Left, node.Right}
	case *Call:
		if node.Arg != nil {
			return []Node{node.Arg}
		}
	}
	return nil
}
