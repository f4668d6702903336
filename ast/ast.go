package ast

import (
	"strconv"

	"github.com/corelang/go-core/token"
)

type Node interface {
	AppendString(dst []byte) []byte
	Pos() int // position of first character belonging to the node in file.
	End() int // position of first character immediately after the node in file.
}

type Expression interface {
	Node
	expressionNode()
}

// Condition is a boolean-valued node. Conditions are a separate sub-grammar
// in Core: they appear only in if and while headers and never inside
// arithmetic expressions.
type Condition interface {
	Node
	conditionNode()
}

type Statement interface {
	Node
	statementNode()
	// Line returns the source line the statement starts on.
	Line() int
}

// Program represents the root node of a Core program:
// an ordered declaration sequence followed by an ordered statement sequence.
type Program struct {
	Decls    []*Declaration
	Body     []Statement
	StartPos int
	EndPos   int
}

func (p *Program) AppendString(dst []byte) []byte {
	dst = append(dst, "program"...)
	for _, d := range p.Decls {
		dst = append(dst, ' ')
		dst = d.AppendString(dst)
	}
	dst = append(dst, " begin"...)
	for _, s := range p.Body {
		dst = append(dst, ' ')
		dst = s.AppendString(dst)
	}
	dst = append(dst, " end"...)
	return dst
}

func (p *Program) Pos() int { return p.StartPos }
func (p *Program) End() int { return p.EndPos }

// Declaration represents `int <id list>;`. Declarations are not executable;
// they seed the variable store before the first statement runs.
type Declaration struct {
	Names    []*Identifier
	StartPos int
	EndPos   int
	DeclLine int
}

func (d *Declaration) AppendString(dst []byte) []byte {
	dst = append(dst, "int "...)
	for i, id := range d.Names {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = id.AppendString(dst)
	}
	dst = append(dst, ';')
	return dst
}

func (d *Declaration) Pos() int { return d.StartPos }
func (d *Declaration) End() int { return d.EndPos }

// AssignStmt represents `<id> = <exp>;`.
type AssignStmt struct {
	Target   *Identifier
	Value    Expression
	StmtLine int
	EndPos   int
}

func (s *AssignStmt) statementNode() {}
func (s *AssignStmt) Line() int      { return s.StmtLine }
func (s *AssignStmt) AppendString(dst []byte) []byte {
	dst = s.Target.AppendString(dst)
	dst = append(dst, " = "...)
	dst = s.Value.AppendString(dst)
	dst = append(dst, ';')
	return dst
}
func (s *AssignStmt) Pos() int { return s.Target.Pos() }
func (s *AssignStmt) End() int { return s.EndPos }

// IfStmt represents `if <cond> then <stmt seq> end;` with an optional
// `else <stmt seq>` arm. Else is nil when the else arm is absent.
type IfStmt struct {
	Cond     Condition
	Then     []Statement
	Else     []Statement
	StmtLine int
	StartPos int
	EndPos   int
}

func (s *IfStmt) statementNode() {}
func (s *IfStmt) Line() int      { return s.StmtLine }
func (s *IfStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "if "...)
	dst = s.Cond.AppendString(dst)
	dst = append(dst, " then"...)
	for _, st := range s.Then {
		dst = append(dst, ' ')
		dst = st.AppendString(dst)
	}
	if s.Else != nil {
		dst = append(dst, " else"...)
		for _, st := range s.Else {
			dst = append(dst, ' ')
			dst = st.AppendString(dst)
		}
	}
	dst = append(dst, " end;"...)
	return dst
}
func (s *IfStmt) Pos() int { return s.StartPos }
func (s *IfStmt) End() int { return s.EndPos }

// WhileStmt represents `while <cond> loop <stmt seq> end;`, a pre-test loop.
type WhileStmt struct {
	Cond     Condition
	Body     []Statement
	StmtLine int
	StartPos int
	EndPos   int
}

func (s *WhileStmt) statementNode() {}
func (s *WhileStmt) Line() int      { return s.StmtLine }
func (s *WhileStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "while "...)
	dst = s.Cond.AppendString(dst)
	dst = append(dst, " loop"...)
	for _, st := range s.Body {
		dst = append(dst, ' ')
		dst = st.AppendString(dst)
	}
	dst = append(dst, " end;"...)
	return dst
}
func (s *WhileStmt) Pos() int { return s.StartPos }
func (s *WhileStmt) End() int { return s.EndPos }

// ReadStmt represents `read <id list>;`. Targets are consumed left to right
// from the input cursor.
type ReadStmt struct {
	Names    []*Identifier
	StmtLine int
	StartPos int
	EndPos   int
}

func (s *ReadStmt) statementNode() {}
func (s *ReadStmt) Line() int      { return s.StmtLine }
func (s *ReadStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "read "...)
	dst = appendIdentList(dst, s.Names)
	dst = append(dst, ';')
	return dst
}
func (s *ReadStmt) Pos() int { return s.StartPos }
func (s *ReadStmt) End() int { return s.EndPos }

// WriteStmt represents `write <id list>;`. Values are emitted left to right
// to the output sink.
type WriteStmt struct {
	Names    []*Identifier
	StmtLine int
	StartPos int
	EndPos   int
}

func (s *WriteStmt) statementNode() {}
func (s *WriteStmt) Line() int      { return s.StmtLine }
func (s *WriteStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "write "...)
	dst = appendIdentList(dst, s.Names)
	dst = append(dst, ';')
	return dst
}
func (s *WriteStmt) Pos() int { return s.StartPos }
func (s *WriteStmt) End() int { return s.EndPos }

func appendIdentList(dst []byte, ids []*Identifier) []byte {
	for i, id := range ids {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = id.AppendString(dst)
	}
	return dst
}

// Identifier represents a variable reference by name. Identifiers in
// statements refer into the variable store; they do not own anything.
type Identifier struct {
	Name     string
	RefLine  int // source line of this reference, for diagnostics
	StartPos int
	EndPos   int
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) AppendString(dst []byte) []byte {
	return append(dst, i.Name...)
}
func (i *Identifier) Pos() int { return i.StartPos }
func (i *Identifier) End() int { return i.EndPos }

// IntLit represents an unsigned decimal integer literal.
type IntLit struct {
	Value    int64
	Raw      string // original text, preserves leading zeros
	StartPos int
	EndPos   int
}

func (il *IntLit) expressionNode() {}
func (il *IntLit) AppendString(dst []byte) []byte {
	if il.Raw != "" {
		return append(dst, il.Raw...)
	}
	return strconv.AppendInt(dst, il.Value, 10)
}
func (il *IntLit) Pos() int { return il.StartPos }
func (il *IntLit) End() int { return il.EndPos }

// BinaryExpr represents a `+`, `-` or `*` operation. Chains of the same
// precedence level associate to the left.
type BinaryExpr struct {
	Op       token.Token
	Left     Expression
	Right    Expression
	StartPos int
	EndPos   int
}

func (be *BinaryExpr) expressionNode() {}
func (be *BinaryExpr) AppendString(dst []byte) []byte {
	dst = be.Left.AppendString(dst)
	dst = append(dst, ' ')
	dst = append(dst, be.Op.String()...)
	dst = append(dst, ' ')
	dst = be.Right.AppendString(dst)
	return dst
}
func (be *BinaryExpr) Pos() int { return be.StartPos }
func (be *BinaryExpr) End() int { return be.EndPos }

// ParenExpr represents a parenthesized sub-expression `(<exp>)`.
type ParenExpr struct {
	X        Expression
	StartPos int
	EndPos   int
}

func (pe *ParenExpr) expressionNode() {}
func (pe *ParenExpr) AppendString(dst []byte) []byte {
	dst = append(dst, '(')
	dst = pe.X.AppendString(dst)
	dst = append(dst, ')')
	return dst
}
func (pe *ParenExpr) Pos() int { return pe.StartPos }
func (pe *ParenExpr) End() int { return pe.EndPos }

// Comparison represents `(<op> <comp op> <op>)`. The surrounding parentheses
// are part of the production and always reprinted.
type Comparison struct {
	Op       token.Token // one of != == < > <= >=
	Left     Expression
	Right    Expression
	StartPos int
	EndPos   int
}

func (c *Comparison) conditionNode() {}
func (c *Comparison) AppendString(dst []byte) []byte {
	dst = append(dst, '(')
	dst = c.Left.AppendString(dst)
	dst = append(dst, ' ')
	dst = append(dst, c.Op.String()...)
	dst = append(dst, ' ')
	dst = c.Right.AppendString(dst)
	dst = append(dst, ')')
	return dst
}
func (c *Comparison) Pos() int { return c.StartPos }
func (c *Comparison) End() int { return c.EndPos }

// NotCond represents `!<cond>`.
type NotCond struct {
	X        Condition
	StartPos int
	EndPos   int
}

func (n *NotCond) conditionNode() {}
func (n *NotCond) AppendString(dst []byte) []byte {
	dst = append(dst, '!')
	return n.X.AppendString(dst)
}
func (n *NotCond) Pos() int { return n.StartPos }
func (n *NotCond) End() int { return n.EndPos }

// BracketCond represents `[<cond> && <cond>]` or `[<cond> || <cond>]`.
// The brackets are part of the production: they are the sole disambiguator
// between && and ||, so they are always reprinted.
type BracketCond struct {
	Op       token.Token // AndAnd or OrOr
	Left     Condition
	Right    Condition
	StartPos int
	EndPos   int
}

func (b *BracketCond) conditionNode() {}
func (b *BracketCond) AppendString(dst []byte) []byte {
	dst = append(dst, '[')
	dst = b.Left.AppendString(dst)
	dst = append(dst, ' ')
	dst = append(dst, b.Op.String()...)
	dst = append(dst, ' ')
	dst = b.Right.AppendString(dst)
	dst = append(dst, ']')
	return dst
}
func (b *BracketCond) Pos() int { return b.StartPos }
func (b *BracketCond) End() int { return b.EndPos }
