package ast

import (
	"testing"

	"github.com/corelang/go-core/token"
)

func sampleProgram() *Program {
	// program int X, Y; begin read X; while (X > 0) loop Y = Y + X * 2; X = X - 1; end; write Y; end
	x := func() *Identifier { return &Identifier{Name: "X"} }
	y := func() *Identifier { return &Identifier{Name: "Y"} }
	return &Program{
		Decls: []*Declaration{
			{Names: []*Identifier{x(), y()}},
		},
		Body: []Statement{
			&ReadStmt{Names: []*Identifier{x()}},
			&WhileStmt{
				Cond: &Comparison{Op: token.Greater, Left: x(), Right: &IntLit{Value: 0, Raw: "0"}},
				Body: []Statement{
					&AssignStmt{Target: y(), Value: &BinaryExpr{
						Op:   token.Plus,
						Left: y(),
						Right: &BinaryExpr{
							Op:    token.Asterisk,
							Left:  x(),
							Right: &IntLit{Value: 2, Raw: "2"},
						},
					}},
					&AssignStmt{Target: x(), Value: &BinaryExpr{
						Op:    token.Minus,
						Left:  x(),
						Right: &IntLit{Value: 1, Raw: "1"},
					}},
				},
			},
			&WriteStmt{Names: []*Identifier{y()}},
		},
	}
}

func TestPrettyPrint(t *testing.T) {
	const want = `program
  int X, Y;
begin
  read X;
  while (X > 0) loop
    Y = Y + X * 2;
    X = X - 1;
  end;
  write Y;
end
`
	got := PrettyPrint(sampleProgram())
	if got != want {
		t.Errorf("pretty print mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAppendString_conditions(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{&Comparison{Op: token.LessEq, Left: &Identifier{Name: "A"}, Right: &IntLit{Value: 5, Raw: "5"}}, "(A <= 5)"},
		{&NotCond{X: &Comparison{Op: token.EqEq, Left: &Identifier{Name: "A"}, Right: &Identifier{Name: "B"}}}, "!(A == B)"},
		{
			&BracketCond{
				Op:    token.OrOr,
				Left:  &Comparison{Op: token.Less, Left: &Identifier{Name: "A"}, Right: &IntLit{Value: 1, Raw: "1"}},
				Right: &NotCond{X: &Comparison{Op: token.NotEquals, Left: &Identifier{Name: "B"}, Right: &IntLit{Value: 0, Raw: "0"}}},
			},
			"[(A < 1) || !(B != 0)]",
		},
		{&ParenExpr{X: &BinaryExpr{Op: token.Plus, Left: &Identifier{Name: "A"}, Right: &IntLit{Value: 1, Raw: "1"}}}, "(A + 1)"},
		{&IntLit{Value: 7, Raw: "007"}, "007"},
		{&IntLit{Value: 7}, "7"},
	}
	for i, test := range cases {
		got := string(test.node.AppendString(nil))
		if got != test.want {
			t.Errorf("case %d: got %q, want %q", i, got, test.want)
		}
	}
}

func TestAppendString_statement(t *testing.T) {
	stmt := &IfStmt{
		Cond: &Comparison{Op: token.Greater, Left: &Identifier{Name: "A"}, Right: &IntLit{Value: 0, Raw: "0"}},
		Then: []Statement{&WriteStmt{Names: []*Identifier{{Name: "A"}}}},
		Else: []Statement{&ReadStmt{Names: []*Identifier{{Name: "A"}, {Name: "B"}}}},
	}
	const want = "if (A > 0) then write A; else read A, B; end;"
	if got := string(stmt.AppendString(nil)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
