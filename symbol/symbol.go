// Package symbol implements static name analysis for Core programs:
// collecting declared variables and checking that every identifier used
// in the statement body was declared exactly once.
package symbol

import (
	"strconv"

	"github.com/corelang/go-core/ast"
)

// Error reports a static semantic fault such as a duplicate declaration
// or a reference to an undeclared variable.
type Error struct {
	Source string
	Line   int
	msg    string
}

func (e *Error) Error() string {
	var dst []byte
	dst = append(dst, e.Source...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(e.Line), 10)
	dst = append(dst, ": "...)
	dst = append(dst, e.msg...)
	return string(dst)
}

// Info holds what the analysis records per declared variable.
type Info struct {
	Name     string
	DeclLine int
}

// Table maps declared variable names to their declaration info while
// preserving declaration order.
type Table struct {
	names map[string]*Info
	order []string
}

// Lookup returns the info for name, or nil if name was never declared.
func (t *Table) Lookup(name string) *Info {
	return t.names[name]
}

// Names returns all declared names in declaration order.
// The returned slice is owned by the table.
func (t *Table) Names() []string { return t.order }

// Len returns the number of declared variables.
func (t *Table) Len() int { return len(t.order) }

func (t *Table) declare(name string, line int) bool {
	if _, exists := t.names[name]; exists {
		return false
	}
	t.names[name] = &Info{Name: name, DeclLine: line}
	t.order = append(t.order, name)
	return true
}

// Collect builds the declared-variable table from the program's declaration
// sequence. A name declared twice is an error, whether the second
// declaration appears in the same `int` line or a later one.
func Collect(source string, prog *ast.Program) (*Table, error) {
	tbl := &Table{names: make(map[string]*Info)}
	for _, decl := range prog.Decls {
		for _, id := range decl.Names {
			if !tbl.declare(id.Name, decl.DeclLine) {
				prev := tbl.names[id.Name]
				return nil, &Error{
					Source: source,
					Line:   decl.DeclLine,
					msg: "variable " + id.Name + " redeclared (first declared on line " +
						strconv.Itoa(prev.DeclLine) + ")",
				}
			}
		}
	}
	return tbl, nil
}

// Check verifies that every identifier referenced in the program body is
// present in tbl. It walks the whole body so that references inside nested
// if and while statements are covered.
func Check(source string, prog *ast.Program, tbl *Table) error {
	var err error
	for _, stmt := range prog.Body {
		ast.Inspect(stmt, func(n ast.Node) bool {
			if err != nil {
				return false
			}
			id, ok := n.(*ast.Identifier)
			if !ok {
				return true
			}
			if tbl.Lookup(id.Name) == nil {
				err = &Error{
					Source: source,
					Line:   id.RefLine,
					msg:    "variable " + id.Name + " used but not declared",
				}
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Analyze runs Collect then Check and returns the resulting table.
// Both analyses complete before any statement of prog is executed.
func Analyze(source string, prog *ast.Program) (*Table, error) {
	tbl, err := Collect(source, prog)
	if err != nil {
		return nil, err
	}
	if err := Check(source, prog, tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}
