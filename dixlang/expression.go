package dixlang

var declarationDefaults = map[string]Value{
	"num": Num(0),
	"str": Text(""),
}

type operatorLevel struct {
	category Category
	op       OperatorKind
	// rightmost selects the last occurrence as the split point, making the tier left-associative
	rightmost bool
}

// lowest binding first
var operatorLevels = []operatorLevel{
	{Assignment, OpAssign, false},
	{Comparison, OpCompare, false},
	{Plus, OpAdd, true},
	{Minus, OpSub, true},
	{Star, OpMul, true},
	{Slash, OpDiv, true},
}

// ParseExpression builds an expression tree from tokens without the terminating semicolon.
func ParseExpression(tokens []Token) (Node, error) {
	return parseExpression(tokens, false)
}

func parseExpression(tokens []Token, assignTarget bool) (Node, error) {
	if len(tokens) == 0 {
		return nil, malformed("empty expression")
	}

	for _, token := range tokens {
		switch token.Category {
		case While, If, Semicolon, OpenBlock, CloseBlock, Comma:
			return nil, WithPos(malformed("unexpected %q in expression", token.Text), token.Pos)
		}
	}

	tokens, err := stripParens(tokens)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 1 {
		return leaf(tokens[0], assignTarget)
	}

	if len(tokens) == 2 &&
		tokens[0].Category == Identifier &&
		tokens[1].Category == Identifier {
		decl := &Declaration{
			Type: tokens[0],
			Name: tokens[1],
		}
		if err := check(decl); err != nil {
			return nil, err
		}
		return decl, nil
	}

	// leftmost and rightmost occurrence of each operator category at nesting depth zero
	first := make(map[Category]int)
	last := make(map[Category]int)
	var opens []int
	for i, token := range tokens {
		switch token.Category {
		case OpenParen:
			opens = append(opens, i)
			continue
		case CloseParen:
			if len(opens) == 0 {
				return nil, WithPos(&UnbalancedBracketError{
					Bracket: token.Text,
				}, token.Pos)
			}
			opens = opens[:len(opens)-1]
			continue
		}
		if len(opens) > 0 {
			continue
		}
		if _, ok := first[token.Category]; !ok {
			first[token.Category] = i
		}
		last[token.Category] = i
	}
	if len(opens) > 0 {
		open := tokens[opens[len(opens)-1]]
		return nil, WithPos(&UnbalancedBracketError{
			Bracket: open.Text,
			Want:    ")",
		}, open.Pos)
	}

	for _, level := range operatorLevels {
		pos, ok := first[level.category]
		if !ok {
			continue
		}
		if level.rightmost {
			pos = last[level.category]
		}
		return parseBinary(tokens, pos, level.op)
	}

	if call, ok, err := parseCall(tokens); ok || err != nil {
		return call, err
	}

	return nil, WithPos(malformed("expected operator after %q", tokens[0].Text), tokens[1].Pos)
}

func parseBinary(tokens []Token, pos int, op OperatorKind) (Node, error) {
	operator := tokens[pos]
	leftTokens := tokens[:pos]
	rightTokens := tokens[pos+1:]
	if len(leftTokens) == 0 {
		return nil, WithPos(malformed("missing left operand of %q", operator.Text), operator.Pos)
	}
	if len(rightTokens) == 0 {
		return nil, WithPos(malformed("missing right operand of %q", operator.Text), operator.Pos)
	}

	left, err := parseExpression(leftTokens, op == OpAssign)
	if err != nil {
		return nil, err
	}
	right, err := parseExpression(rightTokens, false)
	if err != nil {
		return nil, err
	}

	expr := &Expression{
		Op:       op,
		Operator: operator,
		Left:     left,
		Right:    right,
	}
	if err := check(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

func leaf(token Token, assignTarget bool) (Node, error) {
	var node Node
	if assignTarget {
		node = &LValue{
			Name: token,
		}
	} else {
		node = &Atom{
			Token: token,
		}
	}
	if err := check(node); err != nil {
		return nil, err
	}
	return node, nil
}

// parseCall parses `name(arg)` and `name()`.
func parseCall(tokens []Token) (Node, bool, error) {
	if len(tokens) < 3 ||
		tokens[0].Category != Identifier ||
		tokens[1].Category != OpenParen {
		return nil, false, nil
	}
	end, err := matchCloser(tokens, 1, OpenParen, CloseParen)
	if err != nil {
		return nil, true, err
	}
	if end != len(tokens)-1 {
		return nil, false, nil
	}

	call := &Call{
		Name: tokens[0],
	}
	if argTokens := tokens[2:end]; len(argTokens) > 0 {
		call.Arg, err = parseExpression(argTokens, false)
		if err != nil {
			return nil, true, err
		}
	}
	if err := check(call); err != nil {
		return nil, true, err
	}
	return call, true, nil
}

// stripParens removes parenthesis pairs that enclose the whole slice.
func stripParens(tokens []Token) ([]Token, error) {
	for len(tokens) >= 2 &&
		tokens[0].Category == OpenParen &&
		tokens[len(tokens)-1].Category == CloseParen {
		end, err := matchCloser(tokens, 0, OpenParen, CloseParen)
		if err != nil {
			return nil, err
		}
		if end != len(tokens)-1 {
			break
		}
		tokens = tokens[1:end]
		if len(tokens) == 0 {
			return nil, malformed("empty parentheses")
		}
	}
	return tokens, nil
}
