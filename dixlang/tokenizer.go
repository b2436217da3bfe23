package dixlang

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits content into tokens. The returned sequence can be ranged over more than once.
func Tokenize(content string) iter.Seq[Token] {
	return NewSource("", content).Tokens()
}

func (s *Source) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		content := s.Content
		pos := Pos{
			Source: s,
			Line:   1,
			Column: 1,
		}
		for len(content) > 0 {
			r, size := utf8.DecodeRuneInString(content)
			if unicode.IsSpace(r) {
				pos = advance(pos, content[:size])
				content = content[size:]
				continue
			}

			n := lexemeLen(content)
			text := content[:n]
			if !yield(Token{
				Text:     text,
				Category: Classify(text),
				Pos:      pos,
			}) {
				return
			}
			pos = advance(pos, text)
			content = content[n:]
		}
	}
}

func advance(pos Pos, text string) Pos {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lexemeLen returns the byte length of the lexeme at the start of s.
// s must not be empty and must not start with whitespace.
func lexemeLen(s string) int {
	// word run
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	if n > 0 {
		return n
	}

	// string literal, closed on the same line.
	// A lone '"' followed by a line break may pair with a later lone '"' once
	// token texts are rejoined on a single line, so such input does not round-trip.
	if s[0] == '"' {
		end := strings.IndexAny(s[1:], "\"\n")
		if end >= 0 && s[1+end] == '"' {
			return end + 2
		}
	}

	if len(s) >= 2 {
		switch s[:2] {
		case "==", "<=", ">=":
			return 2
		}
	}

	_, size := utf8.DecodeRuneInString(s)
	return size
}

type classifier struct {
	category Category
	match    func(string) bool
}

func is(texts ...string) func(string) bool {
	return func(s string) bool {
		for _, text := range texts {
			if s == text {
				return true
			}
		}
		return false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' &&
		!strings.ContainsAny(s[1:len(s)-1], "\"\n")
}

// comparison must come before assignment
var classifiers = []classifier{
	{While, is("while")},
	{If, is("if")},
	{Semicolon, is(";")},
	{Number, isDigits},
	{String, isQuoted},
	{Comma, is(",")},
	{OpenBlock, is("{")},
	{CloseBlock, is("}")},
	{OpenParen, is("(")},
	{CloseParen, is(")")},
	{Comparison, is("==", "<=", ">=", "<", ">")},
	{Assignment, is("=")},
	{Plus, is("+")},
	{Minus, is("-")},
	{Star, is("*")},
	{Slash, is("/")},
}

// Classify returns the category of a lexeme. Patterns are anchored to the whole lexeme and tested in order; anything unmatched is an Identifier.
func Classify(lexeme string) Category {
	for _, c := range classifiers {
		if c.match(lexeme) {
			return c.category
		}
	}
	return Identifier
}

// CheckStrict reports identifier tokens that are not word runs.
func CheckStrict(tokens []Token) error {
	for _, token := range tokens {
		if token.Category != Identifier {
			continue
		}
		r, _ := utf8.DecodeRuneInString(token.Text)
		if !isWordRune(r) {
			return WithPos(&LexError{
				Text: token.Text,
			}, token.Pos)
		}
	}
	return nil
}
