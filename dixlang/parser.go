package dixlang

import (
	"slices"
)

func Parse(src *Source) (*Block, error) {
	block, err := ParseBlock(slices.Collect(src.Tokens()))
	if err != nil {
		return nil, err
	}
	block.Start = Pos{
		Source: src,
		Line:   1,
		Column: 1,
	}
	return block, nil
}

// ParseBlock builds a block from the tokens between (not including) its braces.
func ParseBlock(tokens []Token) (*Block, error) {
	block := new(Block)
	if len(tokens) > 0 {
		block.Start = tokens[0].Pos
	}

	start := 0
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		var node Node
		switch token.Category {

		case Semicolon:
			stmt, err := parseStatement(tokens[start : i+1])
			if err != nil {
				return nil, err
			}
			node = stmt

		case OpenBlock:
			if err := expectStatementEnd(tokens, start, i); err != nil {
				return nil, err
			}
			end, err := matchCloser(tokens, i, OpenBlock, CloseBlock)
			if err != nil {
				return nil, err
			}
			inner, err := ParseBlock(tokens[i+1 : end])
			if err != nil {
				return nil, err
			}
			inner.Start = token.Pos
			node = inner
			i = end

		case While, If:
			if err := expectStatementEnd(tokens, start, i); err != nil {
				return nil, err
			}
			control, end, err := parseControl(tokens, i)
			if err != nil {
				return nil, err
			}
			node = control
			i = end

		case CloseBlock:
			return nil, WithPos(&UnbalancedBracketError{
				Bracket: token.Text,
			}, token.Pos)

		default:
			// part of the current statement
			continue
		}

		if err := check(node); err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, node)
		start = i + 1
	}

	if start < len(tokens) {
		last := tokens[len(tokens)-1]
		err := malformed("missing ';' after %q", last.Text)
		err.Incomplete = true
		return nil, WithPos(err, tokens[start].Pos)
	}

	return block, nil
}

func expectStatementEnd(tokens []Token, start, i int) error {
	if start < i {
		return WithPos(malformed("missing ';' before %q", tokens[i].Text), tokens[start].Pos)
	}
	return nil
}

func parseStatement(tokens []Token) (*Statement, error) {
	stmt := &Statement{
		Tokens: tokens,
	}
	if len(tokens) < 2 {
		return nil, WithPos(malformed("empty statement"), tokens[0].Pos)
	}
	expr, err := ParseExpression(tokens[:len(tokens)-1])
	if err != nil {
		return nil, WithPos(err, tokens[0].Pos)
	}
	stmt.Expr = expr
	return stmt, nil
}

// parseControl parses `while (cond) { body }` or `if (cond) { body }` starting at the keyword.
// It returns the index of the closing brace.
func parseControl(tokens []Token, i int) (Node, int, error) {
	keyword := tokens[i]

	parenIndex := i + 1
	if parenIndex >= len(tokens) || tokens[parenIndex].Category != OpenParen {
		return nil, 0, WithPos(malformed("expected '(' after %s", keyword.Text), keyword.Pos)
	}
	parenEnd, err := matchCloser(tokens, parenIndex, OpenParen, CloseParen)
	if err != nil {
		return nil, 0, err
	}
	condTokens := tokens[parenIndex+1 : parenEnd]
	if len(condTokens) == 0 {
		return nil, 0, WithPos(malformed("empty %s condition", keyword.Text), tokens[parenIndex].Pos)
	}
	cond, err := ParseExpression(condTokens)
	if err != nil {
		return nil, 0, WithPos(err, keyword.Pos)
	}

	braceIndex := parenEnd + 1
	if braceIndex >= len(tokens) || tokens[braceIndex].Category != OpenBlock {
		return nil, 0, WithPos(malformed("expected '{' after %s condition", keyword.Text), tokens[parenEnd].Pos)
	}
	braceEnd, err := matchCloser(tokens, braceIndex, OpenBlock, CloseBlock)
	if err != nil {
		return nil, 0, err
	}
	body, err := ParseBlock(tokens[braceIndex+1 : braceEnd])
	if err != nil {
		return nil, 0, err
	}
	body.Start = tokens[braceIndex].Pos

	if keyword.Category == While {
		return &WhileNode{
			Keyword: keyword,
			Cond:    cond,
			Body:    body,
		}, braceEnd, nil
	}
	return &IfNode{
		Keyword: keyword,
		Cond:    cond,
		Body:    body,
	}, braceEnd, nil
}

// matchCloser returns the index of the token closing the one at open.
func matchCloser(tokens []Token, open int, opener, closer Category) (int, error) {
	balance := 0
	for i := open; i < len(tokens); i++ {
		switch tokens[i].Category {
		case opener:
			balance++
		case closer:
			balance--
			if balance == 0 {
				return i, nil
			}
		}
	}
	return 0, WithPos(&UnbalancedBracketError{
		Bracket: tokens[open].Text,
		Want:    closerText[closer],
	}, tokens[open].Pos)
}

var closerText = map[Category]string{
	CloseBlock: "}",
	CloseParen: ")",
}
