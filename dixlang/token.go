package dixlang

import "fmt"

type Category uint8

const (
	Identifier Category = iota
	While
	If
	Semicolon
	Number
	String
	Comma
	OpenBlock
	CloseBlock
	OpenParen
	CloseParen
	Comparison
	Assignment
	Plus
	Minus
	Star
	Slash
)

var categoryNames = [...]string{
	Identifier: "identifier",
	While:      "while",
	If:         "if",
	Semicolon:  "semicolon",
	Number:     "number",
	String:     "string",
	Comma:      "comma",
	OpenBlock:  "open block",
	CloseBlock: "close block",
	OpenParen:  "open paren",
	CloseParen: "close paren",
	Comparison: "comparison",
	Assignment: "assignment",
	Plus:       "plus",
	Minus:      "minus",
	Star:       "star",
	Slash:      "slash",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Source == nil {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source.displayName(), p.Line, p.Column)
}

type Token struct {
	Text     string
	Category Category
	Pos      Pos
}

func (t Token) String() string {
	return t.Text
}
