package lexer

// Lexer scans MiniJava source code and produces tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII code for NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// skipSingleLineComment skips a single-line comment (//)
func (l *Lexer) skipSingleLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipMultiLineComment skips a multi-line comment (/* */).
// Returns false if the input ended before the closing delimiter.
func (l *Lexer) skipMultiLineComment() bool {
	for {
		if l.ch == 0 {
			return false
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // consume '*'
			l.readChar() // consume '/'
			return true
		}
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a decimal integer literal
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readQuoted reads a quoted literal delimited by quote, honouring backslash
// escapes. The returned literal keeps its quotes; escapes are decoded later
// by the checker. The lexer is left on the closing quote.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	position := l.position
	for {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			return "", false
		}
		if l.ch == quote {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 || l.ch == '\n' {
				return "", false
			}
		}
	}
	return l.input[position : l.position+1], true
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save position before processing token
	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '=':
		tok = l.twoCharToken('=', EQ, ASSIGN, tok)
	case '!':
		tok = l.twoCharToken('=', NEQ, NOT, tok)
	case '<':
		tok = l.twoCharToken('=', LEQ, LT, tok)
	case '>':
		tok = l.twoCharToken('=', GEQ, GT, tok)
	case '&':
		tok = l.twoCharToken('&', AND, ILLEGAL, tok)
	case '|':
		tok = l.twoCharToken('|', OR, ILLEGAL, tok)
	case '+':
		tok = Token{Type: PLUS, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '-':
		tok = Token{Type: MINUS, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '*':
		tok = Token{Type: STAR, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '/':
		if l.peekChar() == '/' {
			l.skipSingleLineComment()
			return l.NextToken()
		} else if l.peekChar() == '*' {
			l.readChar() // consume '/'
			l.readChar() // consume '*'
			if !l.skipMultiLineComment() {
				return Token{Type: ILLEGAL, Literal: "unterminated comment", Line: tok.Line, Column: tok.Column}
			}
			return l.NextToken()
		} else {
			tok = Token{Type: SLASH, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
		}
	case '%':
		tok = Token{Type: PERCENT, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '(':
		tok = Token{Type: LPAREN, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case ')':
		tok = Token{Type: RPAREN, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '{':
		tok = Token{Type: LBRACE, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '}':
		tok = Token{Type: RBRACE, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '[':
		tok = Token{Type: LBRACKET, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case ']':
		tok = Token{Type: RBRACKET, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case ',':
		tok = Token{Type: COMMA, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case ';':
		tok = Token{Type: SEMICOLON, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '.':
		tok = Token{Type: DOT, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	case '"':
		str, ok := l.readQuoted('"')
		if !ok {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Line: tok.Line, Column: tok.Column}
		}
		tok = Token{Type: STRING_LIT, Literal: str, Line: tok.Line, Column: tok.Column}
	case '\'':
		chr, ok := l.readQuoted('\'')
		if !ok {
			return Token{Type: ILLEGAL, Literal: "unterminated char literal", Line: tok.Line, Column: tok.Column}
		}
		tok = Token{Type: CHAR_LIT, Literal: chr, Line: tok.Line, Column: tok.Column}
	case 0:
		tok = Token{Type: EOF, Literal: "", Line: tok.Line, Column: tok.Column}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			tokenType := LookupIdent(ident)
			return Token{Type: tokenType, Literal: ident, Line: tok.Line, Column: tok.Column}
		} else if isDigit(l.ch) {
			literal := l.readNumber()
			return Token{Type: INT_LIT, Literal: literal, Line: tok.Line, Column: tok.Column}
		}
		tok = Token{Type: ILLEGAL, Literal: string(l.ch), Line: tok.Line, Column: tok.Column}
	}

	l.readChar()
	return tok
}

// twoCharToken emits double when the next char is second, otherwise single.
func (l *Lexer) twoCharToken(second byte, double, single TokenType, pos Token) Token {
	if l.peekChar() == second {
		ch := l.ch
		l.readChar()
		return Token{Type: double, Literal: string(ch) + string(l.ch), Line: pos.Line, Column: pos.Column}
	}
	return Token{Type: single, Literal: string(l.ch), Line: pos.Line, Column: pos.Column}
}

// Tokenize returns all tokens from the input
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

// Helper functions

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
