package lexer

import (
	"testing"
)

func TestNextToken_Operators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "arithmetic operators",
			input:    "+ - * / %",
			expected: []TokenType{PLUS, MINUS, STAR, SLASH, PERCENT, EOF},
		},
		{
			name:     "comparison operators",
			input:    "== != < > <= >=",
			expected: []TokenType{EQ, NEQ, LT, GT, LEQ, GEQ, EOF},
		},
		{
			name:     "logical operators",
			input:    "&& || !",
			expected: []TokenType{AND, OR, NOT, EOF},
		},
		{
			name:     "assignment operator",
			input:    "=",
			expected: []TokenType{ASSIGN, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i, expectedType := range tt.expected {
				tok := l.NextToken()
				if tok.Type != expectedType {
					t.Errorf("token[%d] - wrong type. expected=%q, got=%q",
						i, expectedType, tok.Type)
				}
			}
		})
	}
}

func TestNextToken_Delimiters(t *testing.T) {
	input := "( ) { } [ ] , ; ."
	expected := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
		COMMA, SEMICOLON, DOT, EOF,
	}

	l := New(input)
	for i, expectedType := range expected {
		tok := l.NextToken()
		if tok.Type != expectedType {
			t.Errorf("token[%d] - wrong type. expected=%q, got=%q",
				i, expectedType, tok.Type)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	tests := []struct {
		keyword  string
		expected TokenType
	}{
		{"class", CLASS},
		{"extends", EXTENDS},
		{"public", PUBLIC},
		{"static", STATIC},
		{"main", MAIN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"assert", ASSERT},
		{"break", BREAK},
		{"return", RETURN},
		{"new", NEW},
		{"this", THIS},
		{"true", TRUE},
		{"false", FALSE},
		{"length", LENGTH},
		{"print", PRINT},
		{"void", VOID},
		{"boolean", BOOLEAN},
		{"char", CHAR},
		{"int", INT},
		{"String", STRING},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			l := New(tt.keyword)
			tok := l.NextToken()
			if tok.Type != tt.expected {
				t.Errorf("wrong type for %q. expected=%q, got=%q", tt.keyword, tt.expected, tok.Type)
			}
			if tok.Literal != tt.keyword {
				t.Errorf("wrong literal. expected=%q, got=%q", tt.keyword, tok.Literal)
			}
		})
	}
}

func TestNextToken_IdentifiersVsKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"classy", IDENT},
		{"Main", IDENT},
		{"string", IDENT},
		{"_len", IDENT},
		{"x1", IDENT},
		{"lengths", IDENT},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expected {
			t.Errorf("input %q: expected=%q, got=%q", tt.input, tt.expected, tok.Type)
		}
	}
}

func TestNextToken_Literals(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedTyp TokenType
		expectedLit string
	}{
		{"integer", "12345", INT_LIT, "12345"},
		{"zero", "0", INT_LIT, "0"},
		{"char", "'a'", CHAR_LIT, "'a'"},
		{"escaped char", `'\n'`, CHAR_LIT, `'\n'`},
		{"escaped quote char", `'\''`, CHAR_LIT, `'\''`},
		{"string", `"hello"`, STRING_LIT, `"hello"`},
		{"string with escape", `"a\"b"`, STRING_LIT, `"a\"b"`},
		{"empty string", `""`, STRING_LIT, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != tt.expectedTyp {
				t.Fatalf("wrong type. expected=%q, got=%q", tt.expectedTyp, tok.Type)
			}
			if tok.Literal != tt.expectedLit {
				t.Errorf("wrong literal. expected=%q, got=%q", tt.expectedLit, tok.Literal)
			}
			if next := l.NextToken(); next.Type != EOF {
				t.Errorf("expected EOF after literal, got %q", next.Type)
			}
		})
	}
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	input := "class A {\n  int x;\n}"
	expected := []struct {
		typ  TokenType
		line int
		col  int
	}{
		{CLASS, 1, 1},
		{IDENT, 1, 7},
		{LBRACE, 1, 9},
		{INT, 2, 3},
		{IDENT, 2, 7},
		{SEMICOLON, 2, 8},
		{RBRACE, 3, 1},
		{EOF, 3, 2},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Fatalf("token[%d] - wrong type. expected=%q, got=%q", i, exp.typ, tok.Type)
		}
		if tok.Line != exp.line || tok.Column != exp.col {
			t.Errorf("token[%d] %s - wrong position. expected=%d:%d, got=%d:%d",
				i, tok.Type, exp.line, exp.col, tok.Line, tok.Column)
		}
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := `// leading comment
int /* inline
spanning */ x; // trailing`
	expected := []TokenType{INT, IDENT, SEMICOLON, EOF}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp {
			t.Errorf("token[%d] - wrong type. expected=%q, got=%q", i, exp, tok.Type)
		}
	}

	l = New("/* a\nb */ x")
	tok := l.NextToken()
	if tok.Line != 2 {
		t.Errorf("expected line 2 after multi-line comment, got %d", tok.Line)
	}
}

func TestNextToken_Unterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string", `"abc`},
		{"string across newline", "\"abc\ndef\""},
		{"char", `'a`},
		{"comment", "/* never closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != ILLEGAL {
				t.Errorf("expected ILLEGAL, got %q", tok.Type)
			}
		})
	}
}

func TestNextToken_IllegalCharacters(t *testing.T) {
	for _, input := range []string{"@", "#", "&", "|", "$"} {
		l := New(input)
		tok := l.NextToken()
		if tok.Type != ILLEGAL {
			t.Errorf("input %q: expected ILLEGAL, got %q", input, tok.Type)
		}
	}
}

func TestNextToken_CompleteMiniProgram(t *testing.T) {
	input := `class Program {
    public static void main(String[] args) {
        int[] v = new int[3];
        print(v.length);
    }
}`
	expected := []TokenType{
		CLASS, IDENT, LBRACE,
		PUBLIC, STATIC, VOID, MAIN, LPAREN, STRING, LBRACKET, RBRACKET, IDENT, RPAREN, LBRACE,
		INT, LBRACKET, RBRACKET, IDENT, ASSIGN, NEW, INT, LBRACKET, INT_LIT, RBRACKET, SEMICOLON,
		PRINT, LPAREN, IDENT, DOT, LENGTH, RPAREN, SEMICOLON,
		RBRACE,
		RBRACE,
		EOF,
	}

	tokens := New(input).Tokenize()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token[%d] - wrong type. expected=%q, got=%q", i, exp, tokens[i].Type)
		}
	}
}

func TestTokenType_String(t *testing.T) {
	if CLASS.String() != "CLASS" {
		t.Errorf("expected CLASS, got %s", CLASS.String())
	}
	if got := TokenType(999).String(); got != "TokenType(999)" {
		t.Errorf("expected TokenType(999), got %s", got)
	}
	if AND.Symbol() != "&&" {
		t.Errorf("expected &&, got %s", AND.Symbol())
	}
	if IDENT.Symbol() != "IDENT" {
		t.Errorf("expected IDENT, got %s", IDENT.Symbol())
	}
}
