package dixlang

// Node is one of *Block, *WhileNode, *IfNode, *Statement, *Expression, *Declaration, *Call, *Atom and *LValue.
type Node interface {
	Pos() Pos
	node()
}

type Block struct {
	Statements []Node
	Start      Pos
}

type WhileNode struct {
	Keyword Token
	Cond    Node
	Body    *Block
}

type IfNode struct {
	Keyword Token
	Cond    Node
	Body    *Block
}

// Statement wraps one expression. Tokens includes the terminating semicolon.
type Statement struct {
	Expr   Node
	Tokens []Token
}

type OperatorKind uint8

const (
	OpAssign OperatorKind = iota
	OpCompare
	OpAdd
	OpSub
	OpMul
	OpDiv
)

type Expression struct {
	Op       OperatorKind
	Operator Token
	Left     Node
	Right    Node
}

// Declaration is `num x` or `str x`.
type Declaration struct {
	Type Token
	Name Token
}

type Call struct {
	Name Token
	// Arg is nil for a call without argument.
	Arg Node
}

// Atom is a number literal, a string literal or a variable read.
type Atom struct {
	Token Token
}

// LValue names an assignment target.
type LValue struct {
	Name Token
}

func (b *Block) Pos() Pos {
	if len(b.Statements) > 0 {
		return b.Statements[0].Pos()
	}
	return b.Start
}

func (w *WhileNode) Pos() Pos {
	return w.Keyword.Pos
}

func (i *IfNode) Pos() Pos {
	return i.Keyword.Pos
}

func (s *Statement) Pos() Pos {
	if len(s.Tokens) > 0 {
		return s.Tokens[0].Pos
	}
	return s.Expr.Pos()
}

func (e *Expression) Pos() Pos {
	return e.Left.Pos()
}

func (d *Declaration) Pos() Pos {
	return d.Type.Pos
}

func (c *Call) Pos() Pos {
	return c.Name.Pos
}

func (a *Atom) Pos() Pos {
	return a.Token.Pos
}

func (l *LValue) Pos() Pos {
	return l.Name.Pos
}

func (*Block) node()       {}
func (*WhileNode) node()   {}
func (*IfNode) node()      {}
func (*Statement) node()   {}
func (*Expression) node()  {}
func (*Declaration) node() {}
func (*Call) node()        {}
func (*Atom) node()        {}
func (*LValue) node()      {}
