package parser

import (
	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/diagnostic"
	"github.com/lhaig/mjc/internal/lexer"
)

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	tokens := l.Tokenize()
	return &Parser{
		tokens: tokens,
		pos:    0,
		diags:  diagnostic.New(),
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Parse parses the token stream into a Program AST
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.check(lexer.EOF) {
		if p.check(lexer.CLASS) {
			prog.Classes = append(prog.Classes, p.parseClassDecl())
			continue
		}
		tok := p.current()
		if tok.Type == lexer.ILLEGAL {
			p.diags.Errorf(tok.Line, tok.Column, "%s", tok.Literal)
		} else {
			p.diags.Errorf(tok.Line, tok.Column, "expected class declaration, got %s", tok.Type)
		}
		start := p.pos
		for !p.check(lexer.EOF) && !p.check(lexer.CLASS) {
			p.advance()
		}
		if p.pos == start {
			p.advance()
		}
	}

	if len(prog.Classes) == 0 && !p.diags.HasErrors() {
		tok := p.current()
		p.diags.Errorf(tok.Line, tok.Column, "program must declare at least one class")
	}
	return prog
}

// parseClassDecl parses: class <name> [extends <name>] { field* method* }
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	tok := p.expect(lexer.CLASS)
	name := p.expect(lexer.IDENT)
	cls := &ast.ClassDecl{
		Name:   name.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}

	if p.match(lexer.EXTENDS) {
		super := p.expect(lexer.IDENT)
		cls.Super = super.Literal
		cls.SuperLine = super.Line
		cls.SuperColumn = super.Column
	}

	p.expect(lexer.LBRACE)
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		start := p.pos
		switch {
		case p.check(lexer.PUBLIC):
			cls.Methods = append(cls.Methods, p.parseMethodDecl())
		case p.isTypeStart():
			if len(cls.Methods) > 0 {
				cur := p.current()
				p.diags.Errorf(cur.Line, cur.Column, "field declarations must precede methods")
			}
			cls.Fields = append(cls.Fields, p.parseVarDecl())
		default:
			cur := p.current()
			p.diags.Errorf(cur.Line, cur.Column, "unexpected token %s in class body", cur.Type)
			p.recover(start)
		}
	}
	p.expect(lexer.RBRACE)
	return cls
}

// parseMethodDecl parses either
//
//	public static void main(String[] <name>) { ... }
//	public <type> <name>(<params>) { ... }
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	tok := p.expect(lexer.PUBLIC)

	if p.check(lexer.STATIC) {
		p.advance()
		void := p.expect(lexer.VOID)
		p.expect(lexer.MAIN)
		p.expect(lexer.LPAREN)
		strTok := p.expect(lexer.STRING)
		p.expect(lexer.LBRACKET)
		p.expect(lexer.RBRACKET)
		argName := p.expect(lexer.IDENT)
		p.expect(lexer.RPAREN)
		body := p.parseBlock()
		return &ast.MethodDecl{
			Name:       "main",
			IsMain:     true,
			ReturnType: &ast.TypeRef{Name: "void", Line: void.Line, Column: void.Column},
			Params: []*ast.Param{{
				Name:   argName.Literal,
				Type:   &ast.TypeRef{Name: "String", IsArray: true, Line: strTok.Line, Column: strTok.Column},
				Line:   argName.Line,
				Column: argName.Column,
			}},
			Body:   body,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}

	returnType := p.parseTypeRef()
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LPAREN)
	params := p.parseParamList()
	p.expect(lexer.RPAREN)
	body := p.parseBlock()

	return &ast.MethodDecl{
		Name:       name.Literal,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
		Line:       name.Line,
		Column:     name.Column,
	}
}

// parseParamList parses: <type> <name> {, <type> <name>}
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.check(lexer.RPAREN) {
		return params
	}
	params = append(params, p.parseParam())
	for p.match(lexer.COMMA) {
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	typ := p.parseTypeRef()
	name := p.expect(lexer.IDENT)
	return &ast.Param{
		Name:   name.Literal,
		Type:   typ,
		Line:   name.Line,
		Column: name.Column,
	}
}

// isTypeStart reports whether the current tokens begin a variable
// declaration. A class name is distinguished from an expression by the
// identifier (or []) that follows it.
func (p *Parser) isTypeStart() bool {
	switch p.current().Type {
	case lexer.BOOLEAN, lexer.CHAR, lexer.INT, lexer.STRING, lexer.VOID:
		return true
	case lexer.IDENT:
		next := p.peek()
		if next.Type == lexer.IDENT {
			return true
		}
		return next.Type == lexer.LBRACKET && p.peekN(2).Type == lexer.RBRACKET
	}
	return false
}

// parseTypeRef parses a type name optionally followed by []. Element type
// restrictions are enforced by the checker.
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.current()
	ref := &ast.TypeRef{Line: tok.Line, Column: tok.Column}

	switch tok.Type {
	case lexer.VOID, lexer.BOOLEAN, lexer.CHAR, lexer.INT, lexer.STRING, lexer.IDENT:
		p.advance()
		ref.Name = tok.Literal
	default:
		p.diags.Errorf(tok.Line, tok.Column, "expected type, got %s", tok.Type)
		ref.Name = "<error>"
		return ref
	}

	if p.check(lexer.LBRACKET) && p.peek().Type == lexer.RBRACKET {
		p.advance()
		p.advance()
		ref.IsArray = true
	}
	return ref
}

// parseVarDecl parses: <type> <declarator> {, <declarator>} ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	typ := p.parseTypeRef()
	decl := &ast.VarDecl{
		Type:   typ,
		Line:   typ.Line,
		Column: typ.Column,
	}
	decl.Declarators = append(decl.Declarators, p.parseDeclarator())
	for p.match(lexer.COMMA) {
		decl.Declarators = append(decl.Declarators, p.parseDeclarator())
	}
	p.expect(lexer.SEMICOLON)
	return decl
}

// parseDeclarator parses: <name> [= <initializer>]
func (p *Parser) parseDeclarator() *ast.Declarator {
	name := p.expect(lexer.IDENT)
	d := &ast.Declarator{
		Name:   name.Literal,
		Line:   name.Line,
		Column: name.Column,
	}
	if p.match(lexer.ASSIGN) {
		if p.check(lexer.LBRACE) {
			d.Init = p.parseArrayLit()
		} else {
			d.Init = p.parseExpression()
		}
	}
	return d
}

// parseArrayLit parses: { [e {, e} [,]] }
func (p *Parser) parseArrayLit() *ast.ArrayLit {
	tok := p.expect(lexer.LBRACE)
	lit := &ast.ArrayLit{Line: tok.Line, Column: tok.Column}

	if !p.check(lexer.RBRACE) {
		lit.Elements = append(lit.Elements, p.parseExpression())
		for p.match(lexer.COMMA) {
			// Allow trailing comma
			if p.check(lexer.RBRACE) {
				break
			}
			lit.Elements = append(lit.Elements, p.parseExpression())
		}
	}
	p.expect(lexer.RBRACE)
	return lit
}

// parseBlock parses: { declaration* statement* }
func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(lexer.LBRACE)
	block := &ast.Block{
		Line:   tok.Line,
		Column: tok.Column,
	}
	seenStatement := false
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		start := p.pos
		var stmt ast.Statement
		if p.isTypeStart() {
			if seenStatement {
				cur := p.current()
				p.diags.Errorf(cur.Line, cur.Column, "declarations must precede statements in a block")
			}
			stmt = p.parseVarDecl()
		} else {
			seenStatement = true
			stmt = p.parseStatement()
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.pos == start {
			p.recover(start)
		}
	}
	p.expect(lexer.RBRACE)
	return block
}

// parseStatement parses a statement
func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Type {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.ASSERT:
		return p.parseAssertStmt()
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseIfStmt parses: if (<expr>) <stmt> [else <stmt>]
func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	then := p.parseStatement()

	var elseStmt ast.Statement
	if p.match(lexer.ELSE) {
		elseStmt = p.parseStatement()
	}

	return &ast.IfStmt{
		Condition: cond,
		Then:      then,
		Else:      elseStmt,
		Line:      tok.Line,
		Column:    tok.Column,
	}
}

// parseWhileStmt parses: while (<expr>) <stmt>
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseStatement()

	return &ast.WhileStmt{
		Condition: cond,
		Body:      body,
		Line:      tok.Line,
		Column:    tok.Column,
	}
}

// parseForStmt parses both loop forms:
//
//	for (<expr>?; <expr>?; <expr>?) <stmt>
//	for (<declaration> <expr>?; <expr>?) <stmt>
func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)
	stmt := &ast.ForStmt{Line: tok.Line, Column: tok.Column}

	if p.isTypeStart() {
		stmt.Init = p.parseVarDecl()
	} else {
		if !p.check(lexer.SEMICOLON) {
			init := p.current()
			stmt.Init = &ast.ExprStmt{Expr: p.parseExpression(), Line: init.Line, Column: init.Column}
		}
		p.expect(lexer.SEMICOLON)
	}

	if !p.check(lexer.SEMICOLON) {
		stmt.Condition = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	if !p.check(lexer.RPAREN) {
		stmt.Post = p.parseExpression()
	}
	p.expect(lexer.RPAREN)
	stmt.Body = p.parseStatement()
	return stmt
}

// parseAssertStmt parses: assert <expr>;
func (p *Parser) parseAssertStmt() *ast.AssertStmt {
	tok := p.expect(lexer.ASSERT)
	cond := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &ast.AssertStmt{Condition: cond, Line: tok.Line, Column: tok.Column}
}

// parsePrintStmt parses: print([<expr> {, <expr>}]);
func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	tok := p.expect(lexer.PRINT)
	p.expect(lexer.LPAREN)
	args := p.parseArgList()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)
	return &ast.PrintStmt{Args: args, Line: tok.Line, Column: tok.Column}
}

// parseBreakStmt parses: break;
func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	tok := p.expect(lexer.BREAK)
	p.expect(lexer.SEMICOLON)
	return &ast.BreakStmt{Line: tok.Line, Column: tok.Column}
}

// parseReturnStmt parses: return [<expr>];
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.expect(lexer.RETURN)
	stmt := &ast.ReturnStmt{Line: tok.Line, Column: tok.Column}
	if !p.check(lexer.SEMICOLON) {
		stmt.Value = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)
	return stmt
}

// parseExprStmt parses: <expr>;
func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.current()
	expr := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &ast.ExprStmt{
		Expr:   expr,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// Expression parsing - precedence climbing

// Precedence levels (lowest to highest):
// 1. =            (right-associative)
// 2. ||           (left-associative)
// 3. &&           (left-associative)
// 4. == !=        (left-associative)
// 5. < > <= >=    (left-associative)
// 6. + -          (left-associative)
// 7. * / %        (left-associative)
// 8. unary (+ - !)
// 9. postfix (. [] .length)

const (
	precNone       = 0
	precAssign     = 1
	precOr         = 2
	precAnd        = 3
	precEquality   = 4
	precComparison = 5
	precAdditive   = 6
	precMulti      = 7
)

func tokenPrecedence(tt lexer.TokenType) int {
	switch tt {
	case lexer.ASSIGN:
		return precAssign
	case lexer.OR:
		return precOr
	case lexer.AND:
		return precAnd
	case lexer.EQ, lexer.NEQ:
		return precEquality
	case lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		return precComparison
	case lexer.PLUS, lexer.MINUS:
		return precAdditive
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return precMulti
	default:
		return precNone
	}
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parsePrecedence(precAssign)
}

func (p *Parser) parsePrecedence(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		prec := tokenPrecedence(p.current().Type)
		if prec == precNone || prec < minPrec {
			break
		}

		op := p.advance()

		if op.Type == lexer.ASSIGN {
			// Right-associative; validity of the target is a semantic check
			value := p.parsePrecedence(precAssign)
			left = &ast.AssignExpr{
				Target: left,
				Value:  value,
				Line:   op.Line,
				Column: op.Column,
			}
			continue
		}

		right := p.parsePrecedence(prec + 1)
		left = &ast.BinaryExpr{
			Left:   left,
			Op:     op.Type,
			Right:  right,
			Line:   op.Line,
			Column: op.Column,
		}
	}

	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.current().Type {
	case lexer.MINUS, lexer.PLUS, lexer.NOT:
		op := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			Op:      op.Type,
			Operand: operand,
			Line:    op.Line,
			Column:  op.Column,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()

	for {
		if p.check(lexer.LBRACKET) {
			// Index access: expr[index]
			lb := p.advance()
			index := p.parseExpression()
			p.expect(lexer.RBRACKET)
			expr = &ast.IndexExpr{
				Array:  expr,
				Index:  index,
				Line:   lb.Line,
				Column: lb.Column,
			}
		} else if p.check(lexer.DOT) {
			p.advance()
			if p.check(lexer.LENGTH) {
				tok := p.advance()
				expr = &ast.LengthExpr{Object: expr, Line: tok.Line, Column: tok.Column}
				continue
			}
			name := p.expect(lexer.IDENT)
			if p.check(lexer.LPAREN) {
				// method call
				p.advance()
				args := p.parseArgList()
				p.expect(lexer.RPAREN)
				expr = &ast.MethodCallExpr{
					Object: expr,
					Method: name.Literal,
					Args:   args,
					Line:   name.Line,
					Column: name.Column,
				}
			} else {
				// field access
				expr = &ast.FieldAccessExpr{
					Object: expr,
					Field:  name.Literal,
					Line:   name.Line,
					Column: name.Column,
				}
			}
		} else if p.check(lexer.LPAREN) {
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				break
			}
			p.diags.ReportWithHint(diagnostic.Syntax, ident.Line, ident.Column,
				"unqualified call to '"+ident.Name+"'", "use this."+ident.Name+"(...)")
			p.advance()
			p.parseArgList()
			p.expect(lexer.RPAREN)
		} else {
			break
		}
	}

	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current()

	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		return &ast.IntLit{Raw: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.CHAR_LIT:
		p.advance()
		return &ast.CharLit{Raw: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.STRING_LIT:
		p.advance()
		return &ast.StringLit{Raw: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Line: tok.Line, Column: tok.Column}
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Line: tok.Line, Column: tok.Column}
	case lexer.THIS:
		p.advance()
		return &ast.ThisExpr{Line: tok.Line, Column: tok.Column}
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.NEW:
		return p.parseNewExpr()
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.ILLEGAL:
		p.diags.Errorf(tok.Line, tok.Column, "%s", tok.Literal)
		p.advance()
		return &ast.Identifier{Name: "<error>", Line: tok.Line, Column: tok.Column}
	default:
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s in expression", tok.Type)
		switch {
		case syncTokens[tok.Type]:
		case tok.Type == lexer.RPAREN, tok.Type == lexer.RBRACKET, tok.Type == lexer.COMMA:
		default:
			p.advance()
		}
		return &ast.Identifier{Name: "<error>", Line: tok.Line, Column: tok.Column}
	}
}

// parseNewExpr parses: new int[<expr>] | new char[<expr>] | new <class>()
func (p *Parser) parseNewExpr() ast.Expression {
	tok := p.expect(lexer.NEW)

	switch p.current().Type {
	case lexer.INT, lexer.CHAR:
		elem := p.advance()
		p.expect(lexer.LBRACKET)
		size := p.parseExpression()
		p.expect(lexer.RBRACKET)
		return &ast.NewArrayExpr{Elem: elem.Literal, Size: size, Line: tok.Line, Column: tok.Column}
	default:
		name := p.expect(lexer.IDENT)
		p.expect(lexer.LPAREN)
		p.expect(lexer.RPAREN)
		return &ast.NewObjectExpr{Class: name.Literal, Line: tok.Line, Column: tok.Column}
	}
}

func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	if p.check(lexer.RPAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(lexer.COMMA) {
		args = append(args, p.parseExpression())
	}
	return args
}
