package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT      // x, y, myVariable
	INT_LIT    // 123
	CHAR_LIT   // 'a'
	STRING_LIT // "hello"

	// Keywords
	CLASS
	EXTENDS
	PUBLIC
	STATIC
	MAIN
	IF
	ELSE
	WHILE
	FOR
	ASSERT
	BREAK
	RETURN
	NEW
	THIS
	TRUE
	FALSE
	LENGTH
	PRINT

	// Type keywords
	VOID
	BOOLEAN
	CHAR
	INT
	STRING

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	EQ      // ==
	NEQ     // !=
	LT      // <
	GT      // >
	LEQ     // <=
	GEQ     // >=
	AND     // &&
	OR      // ||
	NOT     // !
	ASSIGN  // =

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENT:      "IDENT",
	INT_LIT:    "INT_LIT",
	CHAR_LIT:   "CHAR_LIT",
	STRING_LIT: "STRING_LIT",
	CLASS:      "CLASS",
	EXTENDS:    "EXTENDS",
	PUBLIC:     "PUBLIC",
	STATIC:     "STATIC",
	MAIN:       "MAIN",
	IF:         "IF",
	ELSE:       "ELSE",
	WHILE:      "WHILE",
	FOR:        "FOR",
	ASSERT:     "ASSERT",
	BREAK:      "BREAK",
	RETURN:     "RETURN",
	NEW:        "NEW",
	THIS:       "THIS",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	LENGTH:     "LENGTH",
	PRINT:      "PRINT",
	VOID:       "VOID",
	BOOLEAN:    "BOOLEAN",
	CHAR:       "CHAR",
	INT:        "INT",
	STRING:     "STRING",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	PERCENT:    "PERCENT",
	EQ:         "EQ",
	NEQ:        "NEQ",
	LT:         "LT",
	GT:         "GT",
	LEQ:        "LEQ",
	GEQ:        "GEQ",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	ASSIGN:     "ASSIGN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	DOT:        "DOT",
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

var operatorSymbols = map[TokenType]string{
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	EQ:      "==",
	NEQ:     "!=",
	LT:      "<",
	GT:      ">",
	LEQ:     "<=",
	GEQ:     ">=",
	AND:     "&&",
	OR:      "||",
	NOT:     "!",
	ASSIGN:  "=",
}

// Symbol returns the source spelling of an operator token, or the token
// name for anything else. Used in diagnostics.
func (t TokenType) Symbol() string {
	if s, ok := operatorSymbols[t]; ok {
		return s
	}
	return t.String()
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"class":   CLASS,
	"extends": EXTENDS,
	"public":  PUBLIC,
	"static":  STATIC,
	"main":    MAIN,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"for":     FOR,
	"assert":  ASSERT,
	"break":   BREAK,
	"return":  RETURN,
	"new":     NEW,
	"this":    THIS,
	"true":    TRUE,
	"false":   FALSE,
	"length":  LENGTH,
	"print":   PRINT,
	"void":    VOID,
	"boolean": BOOLEAN,
	"char":    CHAR,
	"int":     INT,
	"String":  STRING,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
