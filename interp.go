package core

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/corelang/go-core/ast"
	"github.com/corelang/go-core/symbol"
	"github.com/corelang/go-core/token"
)

// RuntimeError reports a fault during program execution: arithmetic
// overflow or a failure consuming the data input. Execution stops at the
// first runtime error; effects of earlier statements remain.
type RuntimeError struct {
	Source string
	Line   int // source line of the statement being executed
	msg    string
}

func (re *RuntimeError) Error() string {
	var dst []byte
	dst = append(dst, re.Source...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(re.Line), 10)
	dst = append(dst, ": runtime error: "...)
	dst = append(dst, re.msg...)
	return string(dst)
}

// Interpreter executes an analyzed Core program by walking its AST.
// All state of a run (variable store, data cursor, output sink) lives in
// the interpreter, so independent runs never share state. The zero value
// is ready to be Reset.
type Interpreter struct {
	source   string
	store    map[string]int64
	data     *bufio.Scanner
	dataName string
	dataLine int
	out      io.Writer
}

// Reset prepares the interpreter for one run. The variable store is seeded
// with zero for every name in tbl before any statement executes. data is
// the program's input stream (one decimal integer per line) and out
// receives the output of write statements, one value per line.
func (in *Interpreter) Reset(source string, tbl *symbol.Table, dataName string, data io.Reader, out io.Writer) error {
	if out == nil {
		return errors.New("nil output writer")
	} else if source == "" {
		return errors.New("no source name")
	}
	if in.store == nil {
		in.store = make(map[string]int64, tbl.Len())
	}
	clear(in.store)
	*in = Interpreter{
		source:   source,
		store:    in.store,
		dataName: dataName,
		out:      out,
	}
	for _, name := range tbl.Names() {
		in.store[name] = 0
	}
	if data != nil {
		in.data = bufio.NewScanner(data)
	}
	return nil
}

// Value returns the current value of a declared variable. Useful after a
// run to inspect final state.
func (in *Interpreter) Value(name string) (v int64, declared bool) {
	v, declared = in.store[name]
	return v, declared
}

// Run executes the program body to completion or to the first runtime error.
func (in *Interpreter) Run(prog *ast.Program) error {
	return in.execSeq(prog.Body)
}

func (in *Interpreter) execSeq(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		v, err := in.evalExpr(s.Line(), s.Value)
		if err != nil {
			return err
		}
		in.store[s.Target.Name] = v
		return nil

	case *ast.IfStmt:
		cond, err := in.evalCond(s.Line(), s.Cond)
		if err != nil {
			return err
		}
		if cond {
			return in.execSeq(s.Then)
		}
		return in.execSeq(s.Else)

	case *ast.WhileStmt:
		for {
			cond, err := in.evalCond(s.Line(), s.Cond)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := in.execSeq(s.Body); err != nil {
				return err
			}
		}

	case *ast.ReadStmt:
		// Targets consume input left to right. On failure the targets
		// already read keep their new values.
		for _, id := range s.Names {
			v, err := in.nextDatum(s.Line())
			if err != nil {
				return err
			}
			in.store[id.Name] = v
		}
		return nil

	case *ast.WriteStmt:
		var buf []byte
		for _, id := range s.Names {
			buf = strconv.AppendInt(buf[:0], in.store[id.Name], 10)
			buf = append(buf, '\n')
			if _, err := in.out.Write(buf); err != nil {
				return in.runtimeError(s.Line(), "write: "+err.Error())
			}
		}
		return nil

	default:
		return in.runtimeError(stmt.Line(), "unknown statement")
	}
}

// nextDatum consumes the next line of the data input and parses it as a
// single decimal integer. Exhausted input, a blank line and a line that is
// not a valid integer are all runtime errors.
func (in *Interpreter) nextDatum(line int) (int64, error) {
	if in.data == nil || !in.data.Scan() {
		if in.data != nil && in.data.Err() != nil {
			return 0, in.runtimeError(line, "read "+in.dataName+": "+in.data.Err().Error())
		}
		return 0, in.runtimeError(line, "read: input "+in.dataName+" exhausted")
	}
	in.dataLine++
	text := strings.TrimSpace(in.data.Text())
	if text == "" {
		return 0, in.runtimeError(line, "read: blank line at "+in.dataName+":"+strconv.Itoa(in.dataLine))
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, in.runtimeError(line, "read: not an integer at "+in.dataName+":"+strconv.Itoa(in.dataLine)+": "+strconv.Quote(text))
	}
	return v, nil
}

func (in *Interpreter) evalExpr(line int, e ast.Expression) (int64, error) {
	switch x := e.(type) {
	case *ast.IntLit:
		return x.Value, nil
	case *ast.Identifier:
		v, ok := in.store[x.Name]
		if !ok {
			return 0, in.runtimeError(line, "variable "+x.Name+" not in store")
		}
		return v, nil
	case *ast.ParenExpr:
		return in.evalExpr(line, x.X)
	case *ast.BinaryExpr:
		left, err := in.evalExpr(line, x.Left)
		if err != nil {
			return 0, err
		}
		right, err := in.evalExpr(line, x.Right)
		if err != nil {
			return 0, err
		}
		var v int64
		var ok bool
		switch x.Op {
		case token.Plus:
			v, ok = addInt(left, right)
		case token.Minus:
			v, ok = subInt(left, right)
		case token.Asterisk:
			v, ok = mulInt(left, right)
		default:
			return 0, in.runtimeError(line, "unknown operator "+x.Op.String())
		}
		if !ok {
			return 0, in.runtimeError(line, "integer overflow in "+
				strconv.FormatInt(left, 10)+" "+x.Op.String()+" "+strconv.FormatInt(right, 10))
		}
		return v, nil
	default:
		return 0, in.runtimeError(line, "unknown expression")
	}
}

// evalCond evaluates a condition. Both sides of && and || are always
// evaluated, so an overflow on the right side surfaces even when the left
// side already decides the result.
func (in *Interpreter) evalCond(line int, c ast.Condition) (bool, error) {
	switch x := c.(type) {
	case *ast.Comparison:
		left, err := in.evalExpr(line, x.Left)
		if err != nil {
			return false, err
		}
		right, err := in.evalExpr(line, x.Right)
		if err != nil {
			return false, err
		}
		switch x.Op {
		case token.NotEquals:
			return left != right, nil
		case token.EqEq:
			return left == right, nil
		case token.Less:
			return left < right, nil
		case token.Greater:
			return left > right, nil
		case token.LessEq:
			return left <= right, nil
		case token.GreaterEq:
			return left >= right, nil
		default:
			return false, in.runtimeError(line, "unknown comparison "+x.Op.String())
		}
	case *ast.NotCond:
		v, err := in.evalCond(line, x.X)
		return !v, err
	case *ast.BracketCond:
		left, err := in.evalCond(line, x.Left)
		if err != nil {
			return false, err
		}
		right, err := in.evalCond(line, x.Right)
		if err != nil {
			return false, err
		}
		if x.Op == token.AndAnd {
			return left && right, nil
		}
		return left || right, nil
	default:
		return false, in.runtimeError(line, "unknown condition")
	}
}

func (in *Interpreter) runtimeError(line int, msg string) *RuntimeError {
	return &RuntimeError{Source: in.source, Line: line, msg: msg}
}

func addInt(a, b int64) (v int64, ok bool) {
	v = a + b
	if (b > 0 && v < a) || (b < 0 && v > a) {
		return 0, false
	}
	return v, true
}

func subInt(a, b int64) (v int64, ok bool) {
	v = a - b
	if (b > 0 && v > a) || (b < 0 && v < a) {
		return 0, false
	}
	return v, true
}

func mulInt(a, b int64) (v int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// -1 factors are handled apart so v/b below can never trap.
	if a == -1 {
		if b == math.MinInt64 {
			return 0, false
		}
		return -b, true
	}
	if b == -1 {
		if a == math.MinInt64 {
			return 0, false
		}
		return -a, true
	}
	v = a * b
	if v/b != a {
		return 0, false
	}
	return v, true
}
