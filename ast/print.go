package ast

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

// A FieldFilter is used to filter fields when printing AST nodes.
// If it returns false, the field is excluded from the output.
type FieldFilter func(name string, value reflect.Value) bool

// NotNilFilter returns true for all fields that are not nil.
// Position fields (StartPos, EndPos and the line fields) are excluded so
// dumps of trees built by hand compare equal to dumps of parsed trees.
func NotNilFilter(name string, v reflect.Value) bool {
	switch name {
	case "StartPos", "EndPos", "StmtLine", "RefLine", "DeclLine":
		return false
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return !v.IsNil()
	}
	return true
}

// Fprint prints the AST node x to w in an indented tree format.
// If a non-nil FieldFilter f is provided, only fields for which f returns
// true are printed. Fprint is useful for debugging and testing.
func Fprint(w io.Writer, x any, f FieldFilter) error {
	p := printer{output: w, filter: f}
	return p.print(reflect.ValueOf(x), 0)
}

// Print calls Fprint(os.Stdout, x, NotNilFilter) for debugging convenience.
func Print(x any) error {
	return Fprint(os.Stdout, x, NotNilFilter)
}

type printer struct {
	output io.Writer
	filter FieldFilter
	err    error
}

func (p *printer) printf(indent int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.output, strings.Repeat("  ", indent)+format, args...)
}

func (p *printer) print(v reflect.Value, indent int) error {
	if !v.IsValid() {
		p.printf(indent, "nil\n")
		return p.err
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			p.printf(indent, "nil\n")
			return p.err
		}
		return p.print(v.Elem(), indent)

	case reflect.Slice:
		p.printf(indent, "[\n")
		for i := 0; i < v.Len(); i++ {
			p.print(v.Index(i), indent+1)
		}
		p.printf(indent, "]\n")

	case reflect.Struct:
		t := v.Type()
		p.printf(indent, "*%s {\n", t.Name())
		for i := 0; i < t.NumField(); i++ {
			name := t.Field(i).Name
			fv := v.Field(i)
			if p.filter != nil && !p.filter(name, fv) {
				continue
			}
			switch fv.Kind() {
			case reflect.Slice, reflect.Struct, reflect.Interface, reflect.Pointer:
				p.printf(indent+1, "%s:\n", name)
				p.print(fv, indent+2)
			default:
				p.printf(indent+1, "%s: %v\n", name, fv.Interface())
			}
		}
		p.printf(indent, "}\n")

	default:
		p.printf(indent, "%v\n", v.Interface())
	}
	return p.err
}
