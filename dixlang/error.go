package dixlang

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// PosError attaches a source position to Err and renders the offending line with a caret.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s\n", p.Err, p.Pos)
	if line, ok := p.Pos.Source.line(p.Pos.Line); ok {
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(caretPadding(line, p.Pos.Column))
		sb.WriteString("^\n")
	}
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithPos attaches pos to err. An error that already carries a position keeps it.
func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

// caretPadding returns the indentation placing a caret under column of line.
// Tabs are kept and wide runes take two cells.
func caretPadding(line string, column int) string {
	var sb strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		col++
		switch {
		case r == '\t':
			sb.WriteByte('\t')
		case isWide(r):
			sb.WriteString("  ")
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// LexError is only raised in strict lexing mode.
type LexError struct {
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized lexeme %q", e.Text)
}

type UnbalancedBracketError struct {
	Bracket string
	// Want is the missing closer. Empty when Bracket is a closer without an opener.
	Want string
}

func (e *UnbalancedBracketError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("unbalanced bracket: unexpected %q", e.Bracket)
	}
	return fmt.Sprintf("unbalanced bracket: %q has no matching %q", e.Bracket, e.Want)
}

type MalformedStatementError struct {
	Reason string
	// Incomplete is set when more input could complete the statement.
	Incomplete bool
}

func (e *MalformedStatementError) Error() string {
	return "malformed statement: " + e.Reason
}

func malformed(format string, args ...any) *MalformedStatementError {
	return &MalformedStatementError{
		Reason: fmt.Sprintf(format, args...),
	}
}

type UndeclaredVariableError struct {
	Name string
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("undeclared variable: %s", e.Name)
}

type TypeMismatchError struct {
	Operator string
	Left     Kind
	Right    Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s %s %s", e.Left, e.Operator, e.Right)
}

type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

type UnknownIntrinsicError struct {
	Name string
}

func (e *UnknownIntrinsicError) Error() string {
	return fmt.Sprintf("unknown intrinsic: %s", e.Name)
}

type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded: %d", e.Limit)
}
