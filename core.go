// Package core implements the tokenizer, parser, pretty-printer and
// interpreter for the Core programming language, a small imperative
// language over integer variables.
//
// The pipeline runs in fixed phases: lex and parse the source to an AST,
// analyze declarations and references, then either pretty-print the tree
// or execute it against a data input stream.
package core

import (
	"io"

	"github.com/corelang/go-core/ast"
	"github.com/corelang/go-core/symbol"
)

// ParseProgram parses a complete Core program from r.
// source names the input in diagnostics, usually a filename.
func ParseProgram(source string, r io.Reader) (*ast.Program, error) {
	var p Parser
	if err := p.Reset(source, r); err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// Analyze parses a Core program from r and runs static name analysis on it.
func Analyze(source string, r io.Reader) (*ast.Program, *symbol.Table, error) {
	prog, err := ParseProgram(source, r)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := symbol.Analyze(source, prog)
	if err != nil {
		return nil, nil, err
	}
	return prog, tbl, nil
}

// Interpret parses, analyzes and executes the Core program read from src.
// data supplies the input of read statements, one decimal integer per line,
// and may be nil for programs that never read. Output of write statements
// goes to out, one value per line.
func Interpret(source string, src io.Reader, dataName string, data io.Reader, out io.Writer) error {
	prog, tbl, err := Analyze(source, src)
	if err != nil {
		return err
	}
	var in Interpreter
	if err := in.Reset(source, tbl, dataName, data, out); err != nil {
		return err
	}
	return in.Run(prog)
}
