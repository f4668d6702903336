package token

type Token int

// List of all tokens of the Core programming language.
// When adding a new token add it in between blocks since we use comparison
// functions to check properties of tokens.
const (
	// Not to be used in code. Is to catch uninitialized tokens.
	Undefined Token = iota

	// ==================== RESERVED WORDS ====================

	PROGRAM // program
	BEGIN   // begin
	END     // end
	INT     // int
	IF      // if
	THEN    // then
	ELSE    // else
	WHILE   // while
	LOOP    // loop
	READ    // read
	WRITE   // write

	// ==================== SPECIAL SYMBOLS ====================

	Semicolon // ;
	Comma     // ,
	Assign    // =
	Not       // !
	LBracket  // [
	RBracket  // ]
	AndAnd    // &&
	OrOr      // ||
	LParen    // (
	RParen    // )
	Plus      // +
	Minus     // -
	Asterisk  // *

	// Comparison operators
	NotEquals // !=
	EqEq      // ==
	Less      // <
	Greater   // >
	LessEq    // <=
	GreaterEq // >=

	// ==================== LITERALS ====================

	Identifier // <identifier>
	IntLit     // <integer>

	// ==================== SPECIAL TOKENS ====================

	EOF     // <EOF>
	Illegal // <illegal>
	numToks
)

var tokenStrings = [numToks]string{
	Undefined:  "<undefined>",
	PROGRAM:    "program",
	BEGIN:      "begin",
	END:        "end",
	INT:        "int",
	IF:         "if",
	THEN:       "then",
	ELSE:       "else",
	WHILE:      "while",
	LOOP:       "loop",
	READ:       "read",
	WRITE:      "write",
	Semicolon:  ";",
	Comma:      ",",
	Assign:     "=",
	Not:        "!",
	LBracket:   "[",
	RBracket:   "]",
	AndAnd:     "&&",
	OrOr:       "||",
	LParen:     "(",
	RParen:     ")",
	Plus:       "+",
	Minus:      "-",
	Asterisk:   "*",
	NotEquals:  "!=",
	EqEq:       "==",
	Less:       "<",
	Greater:    ">",
	LessEq:     "<=",
	GreaterEq:  ">=",
	Identifier: "<identifier>",
	IntLit:     "<integer>",
	EOF:        "<EOF>",
	Illegal:    "<illegal>",
}

// String returns the spelling of symbol and reserved word tokens and a
// descriptive placeholder for the remaining token classes.
func (tok Token) String() string {
	if tok < 0 || tok >= numToks {
		return "<invalid>"
	}
	return tokenStrings[tok]
}

// IsKeyword returns true if the token is a Core reserved word.
func (tok Token) IsKeyword() bool {
	return tok >= PROGRAM && tok <= WRITE
}

// IsSymbol returns true if the token is a Core special symbol.
func (tok Token) IsSymbol() bool {
	return tok >= Semicolon && tok <= GreaterEq
}

// IsComparison returns true if the token is one of the six comparison
// operators that may appear inside a comparison condition.
func (tok Token) IsComparison() bool {
	return tok >= NotEquals && tok <= GreaterEq
}

// IsLiteral returns true if the token carries a user-defined literal
// (an identifier or an unsigned integer).
func (tok Token) IsLiteral() bool {
	return tok == Identifier || tok == IntLit
}

// StartsStatement returns true if the token can begin a statement.
// The [Identifier] token begins an assignment.
func (tok Token) StartsStatement() bool {
	switch tok {
	case Identifier, IF, WHILE, READ, WRITE:
		return true
	}
	return false
}

func (tok Token) IsIllegalOrEOF() bool {
	return tok == EOF || tok == Illegal
}

// LookupKeyword returns [Identifier] or the token for the reserved word
// maybeKeyword represents if found. Reserved words are recognized only by
// their exact all-lowercase spelling.
func LookupKeyword(maybeKeyword []byte) Token {
	switch string(maybeKeyword) {
	default:
		return Identifier
	case "program":
		return PROGRAM
	case "begin":
		return BEGIN
	case "end":
		return END
	case "int":
		return INT
	case "if":
		return IF
	case "then":
		return THEN
	case "else":
		return ELSE
	case "while":
		return WHILE
	case "loop":
		return LOOP
	case "read":
		return READ
	case "write":
		return WRITE
	}
}
