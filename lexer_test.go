package core

import (
	"strings"
	"testing"

	"github.com/corelang/go-core/token"
)

type testtoktuple struct {
	tok     token.Token
	literal string
}

func TestLexer_tokens(t *testing.T) {
	cases := []struct {
		src    string
		expect []testtoktuple
	}{
		0: {
			src: "program int X, Y2; begin end",
			expect: []testtoktuple{
				{tok: token.PROGRAM, literal: "program"},
				{tok: token.INT, literal: "int"},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Comma, literal: ""},
				{tok: token.Identifier, literal: "Y2"},
				{tok: token.Semicolon, literal: ""},
				{tok: token.BEGIN, literal: "begin"},
				{tok: token.END, literal: "end"},
			},
		},
		1: {
			src: "Y = X * 2 + (Z - 15);",
			expect: []testtoktuple{
				{tok: token.Identifier, literal: "Y"},
				{tok: token.Assign, literal: ""},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Asterisk, literal: ""},
				{tok: token.IntLit, literal: "2"},
				{tok: token.Plus, literal: ""},
				{tok: token.LParen, literal: ""},
				{tok: token.Identifier, literal: "Z"},
				{tok: token.Minus, literal: ""},
				{tok: token.IntLit, literal: "15"},
				{tok: token.RParen, literal: ""},
				{tok: token.Semicolon, literal: ""},
			},
		},
		2: {
			src: "while ![(A <= B) && (C >= 0)] loop",
			expect: []testtoktuple{
				{tok: token.WHILE, literal: "while"},
				{tok: token.Not, literal: ""},
				{tok: token.LBracket, literal: ""},
				{tok: token.LParen, literal: ""},
				{tok: token.Identifier, literal: "A"},
				{tok: token.LessEq, literal: ""},
				{tok: token.Identifier, literal: "B"},
				{tok: token.RParen, literal: ""},
				{tok: token.AndAnd, literal: ""},
				{tok: token.LParen, literal: ""},
				{tok: token.Identifier, literal: "C"},
				{tok: token.GreaterEq, literal: ""},
				{tok: token.IntLit, literal: "0"},
				{tok: token.RParen, literal: ""},
				{tok: token.RBracket, literal: ""},
				{tok: token.LOOP, literal: "loop"},
			},
		},
		3: {
			// Two-character operators are single tokens.
			src: "[(A != B) || (A == B)]",
			expect: []testtoktuple{
				{tok: token.LBracket, literal: ""},
				{tok: token.LParen, literal: ""},
				{tok: token.Identifier, literal: "A"},
				{tok: token.NotEquals, literal: ""},
				{tok: token.Identifier, literal: "B"},
				{tok: token.RParen, literal: ""},
				{tok: token.OrOr, literal: ""},
				{tok: token.LParen, literal: ""},
				{tok: token.Identifier, literal: "A"},
				{tok: token.EqEq, literal: ""},
				{tok: token.Identifier, literal: "B"},
				{tok: token.RParen, literal: ""},
				{tok: token.RBracket, literal: ""},
			},
		},
		4: {
			// Maximal munch: IF2 is one identifier, not keyword plus digit.
			src: "IF2 = IF2 < X2Y3",
			expect: []testtoktuple{
				{tok: token.Identifier, literal: "IF2"},
				{tok: token.Assign, literal: ""},
				{tok: token.Identifier, literal: "IF2"},
				{tok: token.Less, literal: ""},
				{tok: token.Identifier, literal: "X2Y3"},
			},
		},
		5: {
			// Whitespace between tokens is optional where unambiguous.
			src: "read X;write X;X=X+1;",
			expect: []testtoktuple{
				{tok: token.READ, literal: "read"},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Semicolon, literal: ""},
				{tok: token.WRITE, literal: "write"},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Semicolon, literal: ""},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Assign, literal: ""},
				{tok: token.Identifier, literal: "X"},
				{tok: token.Plus, literal: ""},
				{tok: token.IntLit, literal: "1"},
				{tok: token.Semicolon, literal: ""},
			},
		},
	}
	var lex Lexer
	for i, test := range cases {
		err := lex.Reset("test.core", strings.NewReader(test.src))
		if err != nil {
			t.Fatalf("case %d: reset: %v", i, err)
		}
		for j, want := range test.expect {
			tok, _, lit := lex.NextToken()
			if tok != want.tok {
				t.Errorf("case %d token %d: got %s, want %s (src=%q)", i, j, tok.String(), want.tok.String(), test.src)
			}
			if want.literal != "" && string(lit) != want.literal {
				t.Errorf("case %d token %d: got literal %q, want %q", i, j, lit, want.literal)
			}
		}
		tok, _, _ := lex.NextToken()
		if tok != token.EOF {
			t.Errorf("case %d: expected EOF after last token, got %s", i, tok.String())
		}
		if lex.Err() != nil {
			t.Errorf("case %d: unexpected lexer error: %v", i, lex.Err())
		}
	}
}

func TestLexer_illegal(t *testing.T) {
	// A maximal alphanumeric run that is not an unsigned integer, not an
	// exact reserved word and not a capitalized identifier is illegal, as
	// is any character outside the alphabet.
	cases := []string{
		"readA",  // reserved word glued to identifier
		"if2",    // lowercase run with digit
		"Ab",     // lowercase in identifier tail
		"12X",    // digits glued to letters
		"Begin",  // reserved words are all-lowercase only
		"A & B",  // lone ampersand
		"A | B",  // lone pipe
		"X = ?;", // unknown character
	}
	var lex Lexer
	for i, src := range cases {
		err := lex.Reset("test.core", strings.NewReader(src))
		if err != nil {
			t.Fatalf("case %d: reset: %v", i, err)
		}
		sawIllegal := false
		for !lex.Done() {
			tok, _, _ := lex.NextToken()
			if tok == token.Illegal {
				sawIllegal = true
				break
			} else if tok == token.EOF {
				break
			}
		}
		if !sawIllegal {
			t.Errorf("case %d: lexing %q produced no illegal token", i, src)
			continue
		}
		if lex.Err() == nil {
			t.Errorf("case %d: illegal token but Err() == nil for %q", i, src)
		}
	}
}

func TestLexer_tokenLineCol(t *testing.T) {
	var lex Lexer
	err := lex.Reset("test.core", strings.NewReader("program\n  int X;\n"))
	if err != nil {
		t.Fatal(err)
	}
	tok, _, _ := lex.NextToken()
	if tok != token.PROGRAM {
		t.Fatalf("got %s, want program", tok.String())
	}
	if line, col := lex.TokenLineCol(); line != 1 || col != 1 {
		t.Errorf("program at %d:%d, want 1:1", line, col)
	}
	tok, _, _ = lex.NextToken()
	if tok != token.INT {
		t.Fatalf("got %s, want int", tok.String())
	}
	if line, col := lex.TokenLineCol(); line != 2 || col != 3 {
		t.Errorf("int at %d:%d, want 2:3", line, col)
	}
	tok, _, _ = lex.NextToken()
	if line, col := lex.TokenLineCol(); tok != token.Identifier || line != 2 || col != 7 {
		t.Errorf("X at %d:%d, want 2:7", line, col)
	}
}

func TestLexer_reuse(t *testing.T) {
	var lex Lexer
	if err := lex.Reset("a.core", strings.NewReader("readA")); err != nil {
		t.Fatal(err)
	}
	tok, _, _ := lex.NextToken()
	if tok != token.Illegal || lex.Err() == nil {
		t.Fatal("expected lexical error on first input")
	}
	// Reset clears the error state entirely.
	if err := lex.Reset("b.core", strings.NewReader("read A;")); err != nil {
		t.Fatal(err)
	}
	for tok != token.EOF {
		tok, _, _ = lex.NextToken()
		if tok == token.Illegal {
			t.Fatal("unexpected illegal token after reset")
		}
	}
	if lex.Err() != nil {
		t.Fatalf("unexpected error after reset: %v", lex.Err())
	}
}
