package core

import (
	"io"
	"strconv"

	"github.com/corelang/go-core/ast"
	"github.com/corelang/go-core/token"
)

// SyntaxError reports the first point where the token stream stopped
// matching the Core grammar. Parsing is fail-fast: the parser records a
// single error and unwinds, it does not attempt recovery.
type SyntaxError struct {
	sp  sourcePos
	msg string
}

func (se *SyntaxError) Error() string {
	var dst []byte
	dst = se.sp.AppendString(dst)
	dst = append(dst, ": syntax error: "...)
	dst = append(dst, se.msg...)
	return string(dst)
}

type sourcePos struct {
	Source string
	Line   int
	Col    int
	Pos    int
}

func (l *sourcePos) String() string {
	return string(l.AppendString(nil))
}

func (l *sourcePos) AppendString(b []byte) []byte {
	if b == nil {
		b = make([]byte, 0, len(l.Source)+3+3)
	}
	b = append(b, l.Source...)
	b = append(b, ':')

	b = strconv.AppendInt(b, int64(l.Line), 10)
	if l.Col > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(l.Col), 10)
	}
	return b
}

type toktuple struct {
	tok   token.Token
	start int
	lit   []byte
	line  int // Line number where this token starts
	col   int // Column number where this token starts
}

// Parser is a recursive descent parser over the Core token stream with a
// single token of lookahead. The zero value is ready to be Reset.
type Parser struct {
	l       Lexer
	current toktuple
	peek    toktuple
	err     error
}

// Reset discards all state and begins a new parse over the input r.
func (p *Parser) Reset(source string, r io.Reader) error {
	err := p.l.Reset(source, r)
	if err != nil {
		return err
	}
	*p = Parser{
		l: p.l,
		// Reuse literal buffers.
		current: toktuple{lit: p.current.lit[:0]},
		peek:    toktuple{lit: p.peek.lit[:0]},
	}
	// Initialize token stream.
	p.nextToken()
	p.nextToken()
	return nil
}

// Err returns the first error encountered during the last parse, if any.
func (p *Parser) Err() error { return p.err }

func (p *Parser) nextToken() {
	if p.current.tok == token.EOF {
		return
	}
	tok, start, lit := p.l.NextToken()
	line, col := p.l.TokenLineCol()
	// Cycle buffers towards current. The new peek reuses current's buffer.
	currBuf := p.current.lit
	p.current = p.peek

	p.peek.lit = append(currBuf[:0], lit...)
	p.peek.start = start
	p.peek.tok = tok
	p.peek.line = line
	p.peek.col = col
	if tok == token.Illegal && p.err == nil {
		if lerr := p.l.Err(); lerr != nil {
			p.err = lerr
		} else {
			p.err = &SyntaxError{
				sp:  sourcePos{Source: p.l.Source(), Line: line, Col: col, Pos: start},
				msg: "illegal token",
			}
		}
	}
}

func (p *Parser) sourcePos() sourcePos {
	return sourcePos{
		Source: p.l.Source(),
		Line:   p.current.line,
		Col:    p.current.col,
		Pos:    p.current.start,
	}
}

// fail records the first parse error. Later errors are discarded since they
// are cascades of the first.
func (p *Parser) fail(msg string) {
	if p.err == nil {
		p.err = &SyntaxError{sp: p.sourcePos(), msg: msg}
	}
}

func (p *Parser) failed() bool { return p.err != nil }

func (p *Parser) currentIs(tok token.Token) bool { return p.current.tok == tok }

// expect consumes the current token if it matches tok and otherwise records
// an error naming the construct being parsed.
func (p *Parser) expect(tok token.Token, context string) {
	if p.failed() {
		return
	}
	if p.current.tok != tok {
		p.fail("expected " + strconv.Quote(tok.String()) + " in " + context + ", got " + strconv.Quote(p.current.tok.String()))
		return
	}
	p.nextToken()
}

// ParseProgram parses a complete Core program from the input the parser
// was Reset with. The whole input must be consumed: trailing tokens after
// the closing `end` are a syntax error.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{StartPos: p.current.start}
	p.expect(token.PROGRAM, "program")

	// At least one declaration is required.
	if !p.currentIs(token.INT) {
		p.fail("expected declaration sequence after \"program\", got " + strconv.Quote(p.current.tok.String()))
	}
	for p.currentIs(token.INT) && !p.failed() {
		prog.Decls = append(prog.Decls, p.parseDeclaration())
	}

	p.expect(token.BEGIN, "program")
	prog.Body = p.parseStatementSeq("program body")
	prog.EndPos = p.current.start + len("end")
	p.expect(token.END, "program")
	if !p.failed() && !p.currentIs(token.EOF) {
		p.fail("unexpected input after closing \"end\"")
	}
	if p.failed() {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) parseDeclaration() *ast.Declaration {
	decl := &ast.Declaration{
		StartPos: p.current.start,
		DeclLine: p.current.line,
	}
	p.expect(token.INT, "declaration")
	decl.Names = p.parseIdentList("declaration")
	decl.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "declaration")
	return decl
}

// parseIdentList parses `<id> {, <id>}`.
func (p *Parser) parseIdentList(context string) []*ast.Identifier {
	var ids []*ast.Identifier
	ids = append(ids, p.parseIdentifier(context))
	for p.currentIs(token.Comma) && !p.failed() {
		p.nextToken()
		ids = append(ids, p.parseIdentifier(context))
	}
	return ids
}

func (p *Parser) parseIdentifier(context string) *ast.Identifier {
	if !p.currentIs(token.Identifier) {
		p.fail("expected identifier in " + context + ", got " + strconv.Quote(p.current.tok.String()))
		return &ast.Identifier{}
	}
	id := &ast.Identifier{
		Name:     string(p.current.lit),
		RefLine:  p.current.line,
		StartPos: p.current.start,
		EndPos:   p.current.start + len(p.current.lit),
	}
	p.nextToken()
	return id
}

// parseStatementSeq parses a non-empty statement sequence. The sequence
// extends as far as tokens that can start a statement reach.
func (p *Parser) parseStatementSeq(context string) []ast.Statement {
	if !p.current.tok.StartsStatement() {
		p.fail("expected at least one statement in " + context + ", got " + strconv.Quote(p.current.tok.String()))
		return nil
	}
	var stmts []ast.Statement
	for p.current.tok.StartsStatement() && !p.failed() {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current.tok {
	case token.Identifier:
		return p.parseAssign()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.READ:
		return p.parseRead()
	case token.WRITE:
		return p.parseWrite()
	default:
		p.fail("expected statement, got " + strconv.Quote(p.current.tok.String()))
		return &ast.AssignStmt{Target: &ast.Identifier{}}
	}
}

func (p *Parser) parseAssign() *ast.AssignStmt {
	stmt := &ast.AssignStmt{StmtLine: p.current.line}
	stmt.Target = p.parseIdentifier("assignment")
	p.expect(token.Assign, "assignment")
	stmt.Value = p.parseExpression()
	stmt.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "assignment")
	return stmt
}

func (p *Parser) parseIf() *ast.IfStmt {
	stmt := &ast.IfStmt{
		StmtLine: p.current.line,
		StartPos: p.current.start,
	}
	p.expect(token.IF, "if statement")
	stmt.Cond = p.parseCondition()
	p.expect(token.THEN, "if statement")
	stmt.Then = p.parseStatementSeq("if branch")
	if p.currentIs(token.ELSE) && !p.failed() {
		p.nextToken()
		stmt.Else = p.parseStatementSeq("else branch")
	}
	p.expect(token.END, "if statement")
	stmt.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "if statement")
	return stmt
}

func (p *Parser) parseWhile() *ast.WhileStmt {
	stmt := &ast.WhileStmt{
		StmtLine: p.current.line,
		StartPos: p.current.start,
	}
	p.expect(token.WHILE, "while statement")
	stmt.Cond = p.parseCondition()
	p.expect(token.LOOP, "while statement")
	stmt.Body = p.parseStatementSeq("loop body")
	p.expect(token.END, "while statement")
	stmt.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "while statement")
	return stmt
}

func (p *Parser) parseRead() *ast.ReadStmt {
	stmt := &ast.ReadStmt{
		StmtLine: p.current.line,
		StartPos: p.current.start,
	}
	p.expect(token.READ, "read statement")
	stmt.Names = p.parseIdentList("read statement")
	stmt.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "read statement")
	return stmt
}

func (p *Parser) parseWrite() *ast.WriteStmt {
	stmt := &ast.WriteStmt{
		StmtLine: p.current.line,
		StartPos: p.current.start,
	}
	p.expect(token.WRITE, "write statement")
	stmt.Names = p.parseIdentList("write statement")
	stmt.EndPos = p.current.start + len(";")
	p.expect(token.Semicolon, "write statement")
	return stmt
}

// parseExpression parses `<term> {+|- <term>}`. Chains of additive
// operators associate to the left.
func (p *Parser) parseExpression() ast.Expression {
	left := p.parseTerm()
	for (p.currentIs(token.Plus) || p.currentIs(token.Minus)) && !p.failed() {
		op := p.current.tok
		p.nextToken()
		right := p.parseTerm()
		left = &ast.BinaryExpr{
			Op:       op,
			Left:     left,
			Right:    right,
			StartPos: left.Pos(),
			EndPos:   right.End(),
		}
	}
	return left
}

// parseTerm parses `<operand> {* <operand>}`, left associative.
func (p *Parser) parseTerm() ast.Expression {
	left := p.parseOperand()
	for p.currentIs(token.Asterisk) && !p.failed() {
		p.nextToken()
		right := p.parseOperand()
		left = &ast.BinaryExpr{
			Op:       token.Asterisk,
			Left:     left,
			Right:    right,
			StartPos: left.Pos(),
			EndPos:   right.End(),
		}
	}
	return left
}

// parseOperand parses an integer literal, an identifier or a parenthesized
// expression.
func (p *Parser) parseOperand() ast.Expression {
	switch p.current.tok {
	case token.IntLit:
		raw := string(p.current.lit)
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			p.fail("integer literal " + raw + " out of range")
		}
		lit := &ast.IntLit{
			Value:    v,
			Raw:      raw,
			StartPos: p.current.start,
			EndPos:   p.current.start + len(raw),
		}
		p.nextToken()
		return lit
	case token.Identifier:
		return p.parseIdentifier("expression")
	case token.LParen:
		pe := &ast.ParenExpr{StartPos: p.current.start}
		p.nextToken()
		pe.X = p.parseExpression()
		pe.EndPos = p.current.start + len(")")
		p.expect(token.RParen, "parenthesized expression")
		return pe
	default:
		p.fail("expected operand, got " + strconv.Quote(p.current.tok.String()))
		return &ast.IntLit{}
	}
}

// parseCondition parses the condition sub-grammar. The leading token fully
// determines the production: `(` starts a comparison, `!` a negation and
// `[` a bracketed conjunction or disjunction.
func (p *Parser) parseCondition() ast.Condition {
	switch p.current.tok {
	case token.LParen:
		return p.parseComparison()
	case token.Not:
		nc := &ast.NotCond{StartPos: p.current.start}
		p.nextToken()
		nc.X = p.parseCondition()
		nc.EndPos = nc.X.End()
		return nc
	case token.LBracket:
		bc := &ast.BracketCond{StartPos: p.current.start}
		p.nextToken()
		bc.Left = p.parseCondition()
		if p.currentIs(token.AndAnd) || p.currentIs(token.OrOr) {
			bc.Op = p.current.tok
			p.nextToken()
		} else {
			p.fail("expected \"&&\" or \"||\" in bracketed condition, got " + strconv.Quote(p.current.tok.String()))
		}
		bc.Right = p.parseCondition()
		bc.EndPos = p.current.start + len("]")
		p.expect(token.RBracket, "bracketed condition")
		return bc
	default:
		p.fail("expected condition, got " + strconv.Quote(p.current.tok.String()))
		return &ast.Comparison{Left: &ast.IntLit{}, Right: &ast.IntLit{}}
	}
}

// parseComparison parses `(<operand> <comp op> <operand>)`. The grammar
// admits single operands on either side, not full expressions; parenthesized
// expressions are operands and remain available as `((A + 1) < B)`.
func (p *Parser) parseComparison() *ast.Comparison {
	c := &ast.Comparison{StartPos: p.current.start}
	p.expect(token.LParen, "comparison")
	c.Left = p.parseOperand()
	if p.current.tok.IsComparison() {
		c.Op = p.current.tok
		p.nextToken()
	} else {
		p.fail("expected comparison operator, got " + strconv.Quote(p.current.tok.String()))
	}
	c.Right = p.parseOperand()
	c.EndPos = p.current.start + len(")")
	p.expect(token.RParen, "comparison")
	return c
}
