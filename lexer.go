package core

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/corelang/go-core/token"
)

// This lexer follows the current/peek character pipeline of the Lexer
// described in "Writing An Interpreter In Go" by Thorsten Ball https://monkeylang.org/

// LexicalError reports a character or malformed lexeme that cannot be
// extended into any valid Core token.
type LexicalError struct {
	sp  sourcePos
	msg string
}

func (le *LexicalError) Error() string {
	var dst []byte
	dst = le.sp.AppendString(dst)
	dst = append(dst, ": lexical error: "...)
	dst = append(dst, le.msg...)
	return string(dst)
}

// Lexer is a deterministic finite-state scanner over Core source text.
// It produces the token sequence lazily; Reset restarts it from the top of
// a new input. The zero value is ready to be Reset.
type Lexer struct {
	input  bufio.Reader
	ch     rune // current character (utf8)
	peek   rune // next character (utf8)
	err    error
	tokErr *LexicalError
	idbuf  []byte // accumulation buffer.

	source    string // filename or source name.
	line      int    // file line number (position of current char)
	col       int    // column number in line (position of current char)
	pos       int    // byte position.
	tokenLine int    // line number where the last token started
	tokenCol  int    // column number where the last token started
}

// Reset discards all state and buffered data and begins a new lexing
// procedure on the input r. It performs a single utf8 read to initialize.
func (l *Lexer) Reset(source string, r io.Reader) error {
	if r == nil {
		return errors.New("nil reader")
	} else if source == "" {
		return errors.New("no source name")
	}
	*l = Lexer{
		input:  l.input,
		line:   1,
		idbuf:  l.idbuf,
		source: source,
	}
	l.input.Reset(r)
	if l.idbuf == nil {
		l.idbuf = make([]byte, 0, 256)
	}
	// Fill up peek and current character.
	const peeklen = 2
	l.col = -peeklen + 1 // col is 1 based.
	l.pos = -peeklen
	l.readChar()
	l.readChar()
	if l.err == io.EOF {
		return nil
	}
	return l.err
}

// Source returns the name the lexer was reset/initialized with. Usually a filename.
func (l *Lexer) Source() string { return l.source }

// Err returns the lexical error encountered, if any. io.EOF is not an error.
func (l *Lexer) Err() error {
	if l.tokErr != nil {
		return l.tokErr
	}
	if l.err == io.EOF {
		return nil
	}
	return l.err
}

// Done returns true once the input is exhausted or a lexical error occurred.
func (l *Lexer) Done() bool {
	return l.tokErr != nil || (l.err != nil && l.ch == 0)
}

// LineCol returns the current line number and column number (utf8 relative).
func (l *Lexer) LineCol() (line, col int) {
	return l.line, l.col
}

// TokenLineCol returns the line/col where the last returned token started.
func (l *Lexer) TokenLineCol() (line, col int) {
	return l.tokenLine, l.tokenCol
}

// Pos returns the absolute position of the lexer in bytes from the start of the file.
func (l *Lexer) Pos() int { return l.pos }

// NextToken scans the upcoming token and returns the literal representation
// of the token for identifiers and integers.
// The returned byte slice is reused between calls to NextToken.
func (l *Lexer) NextToken() (tok token.Token, startPos int, literal []byte) {
	if l.isUninitialized() {
		l.err = errors.New("lexer uninitialized")
		return token.Illegal, 0, nil
	}
	l.skipWhitespace()
	startPos = l.pos
	l.tokenLine, l.tokenCol = l.line, l.col
	// With the lookahead buffer, l.err may be EOF while l.ch still holds a
	// valid character. Only return EOF when the current character is exhausted.
	if l.ch == 0 {
		return token.EOF, startPos, nil
	} else if l.err != nil && l.err != io.EOF {
		return token.Illegal, startPos, nil
	}
	ch := l.ch
	switch ch {
	case ';':
		tok = token.Semicolon
		l.readChar()
	case ',':
		tok = token.Comma
		l.readChar()
	case '(':
		tok = token.LParen
		l.readChar()
	case ')':
		tok = token.RParen
		l.readChar()
	case '[':
		tok = token.LBracket
		l.readChar()
	case ']':
		tok = token.RBracket
		l.readChar()
	case '+':
		tok = token.Plus
		l.readChar()
	case '-':
		tok = token.Minus
		l.readChar()
	case '*':
		tok = token.Asterisk
		l.readChar()
	case '=':
		if l.peekChar() == '=' {
			tok = token.EqEq
			l.readChar()
			l.readChar()
		} else {
			tok = token.Assign
			l.readChar()
		}
	case '!':
		if l.peekChar() == '=' {
			tok = token.NotEquals
			l.readChar()
			l.readChar()
		} else {
			tok = token.Not
			l.readChar()
		}
	case '<':
		if l.peekChar() == '=' {
			tok = token.LessEq
			l.readChar()
			l.readChar()
		} else {
			tok = token.Less
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			tok = token.GreaterEq
			l.readChar()
			l.readChar()
		} else {
			tok = token.Greater
			l.readChar()
		}
	case '&':
		if l.peekChar() == '&' {
			tok = token.AndAnd
			l.readChar()
			l.readChar()
		} else {
			tok = l.illegal(`lone '&', expected "&&"`)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = token.OrOr
			l.readChar()
			l.readChar()
		} else {
			tok = l.illegal(`lone '|', expected "||"`)
		}
	default:
		if isLetter(ch) || isDigit(ch) {
			literal = l.readWord()
			tok = l.classifyWord(literal)
		} else {
			tok = l.illegal("unrecognized character " + string(ch))
			l.readChar()
		}
	}
	return tok, startPos, literal
}

// readWord consumes the maximal run of letters and digits starting at the
// current character. Maximal munch over the whole run is what keeps a
// reserved word from being recognized as a prefix of a longer word.
func (l *Lexer) readWord() []byte {
	l.idbuf = l.idbuf[:0]
	for isLetter(l.ch) || isDigit(l.ch) {
		l.idbuf = utf8.AppendRune(l.idbuf, l.ch)
		l.readChar()
	}
	return l.idbuf
}

// classifyWord decides what a maximal alphanumeric run is: an unsigned
// integer, a reserved word spelled exactly, or an identifier (capital
// letter followed by capitals and digits). Anything else is illegal, which
// covers runs like "readA", "if2" and "12X".
func (l *Lexer) classifyWord(lit []byte) token.Token {
	if isAllDigits(lit) {
		return token.IntLit
	}
	if tok := token.LookupKeyword(lit); tok != token.Identifier {
		return tok
	}
	if isIdentifierWord(lit) {
		return token.Identifier
	}
	return l.illegal("malformed token " + string(lit))
}

// illegal records the first lexical error and returns token.Illegal.
func (l *Lexer) illegal(msg string) token.Token {
	if l.tokErr == nil {
		l.tokErr = &LexicalError{
			sp: sourcePos{
				Source: l.source,
				Line:   l.tokenLine,
				Col:    l.tokenCol,
				Pos:    l.pos,
			},
			msg: msg,
		}
	}
	return token.Illegal
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readChar reads the next character into the current/peek pipeline.
func (l *Lexer) readChar() {
	if l.err != nil {
		l.ch = 0 // Input exhausted, annihilate char.
		return
	}
	currentIsNewline := l.ch == '\n'
	l.ch = l.peek
	ch, sz, err := l.input.ReadRune()
	if err != nil {
		l.peek = 0
		l.err = err
		return
	}
	l.col++
	l.pos += sz
	l.peek = ch
	if currentIsNewline {
		l.line++
		l.col = 1
	}
}

func (l *Lexer) peekChar() rune { return l.peek }

func (l *Lexer) isUninitialized() bool { return l.source == "" }

func (l *Lexer) sourcePos() sourcePos {
	return sourcePos{
		Source: l.source,
		Line:   l.line,
		Col:    l.col,
		Pos:    l.pos,
	}
}

// PositionString returns the "source:line:column" representation of the lexer's current position.
func (l *Lexer) PositionString() string {
	sp := l.sourcePos()
	return sp.String()
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isCapital(ch rune) bool {
	return 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isAllDigits(lit []byte) bool {
	for _, b := range lit {
		if !isDigit(rune(b)) {
			return false
		}
	}
	return len(lit) > 0
}

// isIdentifierWord reports whether lit matches [A-Z]([A-Z]|[0-9])*.
func isIdentifierWord(lit []byte) bool {
	if len(lit) == 0 || !isCapital(rune(lit[0])) {
		return false
	}
	for _, b := range lit[1:] {
		if !isCapital(rune(b)) && !isDigit(rune(b)) {
			return false
		}
	}
	return true
}
