package ast

import (
	"bytes"
	"fmt"
)

// PrettyPrint generates canonical Core source text from an AST node.
// The output is deterministic: the same tree always prints identically,
// and reparsing the output of a well-formed *Program yields a
// structurally equal tree.
//
// Layout: `program`, `begin` and the final `end` start in column one;
// declarations and statements are indented two spaces per nesting level;
// expressions and conditions are space-separated on one line with the
// parenthesization and bracketing the grammar implies.
func PrettyPrint(node Node) string {
	var buf bytes.Buffer
	pp(&buf, node, 0)
	return buf.String()
}

func pp(buf *bytes.Buffer, node Node, indent int) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		buf.WriteString("program\n")
		for _, d := range n.Decls {
			pp(buf, d, indent+1)
		}
		buf.WriteString("begin\n")
		for _, s := range n.Body {
			pp(buf, s, indent+1)
		}
		buf.WriteString("end\n")

	case *Declaration:
		writeIndent(buf, indent)
		buf.Write(n.AppendString(nil))
		buf.WriteByte('\n')

	case *AssignStmt:
		writeIndent(buf, indent)
		buf.Write(n.AppendString(nil))
		buf.WriteByte('\n')

	case *IfStmt:
		writeIndent(buf, indent)
		buf.WriteString("if ")
		buf.Write(n.Cond.AppendString(nil))
		buf.WriteString(" then\n")
		for _, s := range n.Then {
			pp(buf, s, indent+1)
		}
		if n.Else != nil {
			writeIndent(buf, indent)
			buf.WriteString("else\n")
			for _, s := range n.Else {
				pp(buf, s, indent+1)
			}
		}
		writeIndent(buf, indent)
		buf.WriteString("end;\n")

	case *WhileStmt:
		writeIndent(buf, indent)
		buf.WriteString("while ")
		buf.Write(n.Cond.AppendString(nil))
		buf.WriteString(" loop\n")
		for _, s := range n.Body {
			pp(buf, s, indent+1)
		}
		writeIndent(buf, indent)
		buf.WriteString("end;\n")

	case *ReadStmt:
		writeIndent(buf, indent)
		buf.Write(n.AppendString(nil))
		buf.WriteByte('\n')

	case *WriteStmt:
		writeIndent(buf, indent)
		buf.Write(n.AppendString(nil))
		buf.WriteByte('\n')

	case Expression, Condition:
		// Expressions and conditions are single-line constructs.
		buf.Write(n.AppendString(nil))

	default:
		fmt.Fprintf(buf, "[UNHANDLED: %T]\n", node)
	}
}

func writeIndent(buf *bytes.Buffer, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteString("  ")
	}
}
