package parser

import (
	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
	"github.com/qikcik/qlang/scanner"
)

// expr ::= logic
func (p *Parser) expr() (ast.Node, error) {
	return p.logic()
}

// logic ::= comparison (('&&'|'||') comparison)*
func (p *Parser) logic() (ast.Node, error) {
	return p.binaryLevel(p.comparison, "&&", "||")
}

// comparison ::= addition (('=='|'!='|'<'|'>'|'<='|'>=') addition)*
func (p *Parser) comparison() (ast.Node, error) {
	return p.binaryLevel(p.addition, "==", "!=", "<", ">", "<=", ">=")
}

// addition ::= multiplication (('+'|'-') multiplication)*
func (p *Parser) addition() (ast.Node, error) {
	return p.binaryLevel(p.multiplication, "+", "-")
}

// multiplication ::= exponent (('*'|'/'|'%') exponent)*
func (p *Parser) multiplication() (ast.Node, error) {
	return p.binaryLevel(p.exponent, "*", "/", "%")
}

// binaryLevel parses a left-associative precedence level. Operands are
// parsed by the next-tighter level.
func (p *Parser) binaryLevel(operand func() (ast.Node, error), ops ...string) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchOperator(ops)
		if !ok {
			return left, nil
		}
		p.cur.Advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Pos: ast.Pos{Loc: op.Loc}, Op: op.Lexeme, Left: left, Right: right}
	}
}

func (p *Parser) matchOperator(ops []string) (scanner.Token, bool) {
	for _, op := range ops {
		if p.cur.Matches(scanner.Separator, op) {
			return p.cur.Current(), true
		}
	}
	return scanner.Token{}, false
}

// exponent ::= unary ('^' exponent)*
//
// The right operand recurses into exponent, which makes '^'
// right-associative.
func (p *Parser) exponent() (ast.Node, error) {
	base, err := p.unary()
	if err != nil {
		return nil, err
	}
	if !p.cur.Matches(scanner.Separator, "^") {
		return base, nil
	}
	op := p.cur.Current()
	p.cur.Advance()
	exp, err := p.exponent()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Pos: ast.Pos{Loc: op.Loc}, Op: "^", Left: base, Right: exp}, nil
}

// unary ::= ('+' | '-' | '!') unary | primary
func (p *Parser) unary() (ast.Node, error) {
	op, ok := p.matchOperator([]string{"+", "-", "!"})
	if !ok {
		return p.primary()
	}
	p.cur.Advance()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Pos: ast.Pos{Loc: op.Loc}, Op: op.Lexeme, Operand: operand}, nil
}

// primary ::= identifier | identifier '(' args? ')' | integer | float | string
//           | 'true' | 'false' | 'fn' params stmt | '(' expr ')'
func (p *Parser) primary() (ast.Node, error) {
	tok := p.cur.Current()
	pos := ast.Pos{Loc: tok.Loc}
	switch tok.Kind {
	case scanner.Integer:
		p.cur.Advance()
		return &ast.Integer{Pos: pos, Value: tok.Int}, nil
	case scanner.Float:
		p.cur.Advance()
		return &ast.Float{Pos: pos, Value: tok.Float}, nil
	case scanner.String:
		p.cur.Advance()
		return &ast.String{Pos: pos, Value: tok.Lexeme}, nil
	case scanner.Label:
		switch tok.Lexeme {
		case "true", "false":
			p.cur.Advance()
			return &ast.Bool{Pos: pos, Value: tok.Lexeme == "true"}, nil
		case "fn":
			return p.function()
		}
		if Keywords[tok.Lexeme] {
			return nil, qlang.Errorf(qlang.SyntaxError, tok.Loc, "unexpected keyword %q", tok.Lexeme)
		}
		p.cur.Advance()
		id := &ast.Identifier{Pos: pos, Name: tok.Lexeme}
		if p.cur.Matches(scanner.Separator, "(") {
			return p.call(id)
		}
		return id, nil
	case scanner.Separator:
		if tok.Lexeme == "(" {
			p.cur.Advance()
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err = p.expect(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, p.unexpected("expression")
}

// call ::= identifier '(' (expr (',' expr)*)? ')'
func (p *Parser) call(callee *ast.Identifier) (ast.Node, error) {
	p.cur.Advance() // '('
	n := &ast.FunctionCall{Pos: callee.Pos, Callee: callee}
	if p.cur.Matches(scanner.Separator, ")") {
		p.cur.Advance()
		return n, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		n.Args = append(n.Args, arg)
		if p.cur.Matches(scanner.Separator, ",") {
			p.cur.Advance()
			continue
		}
		if _, err = p.expect(")"); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// function ::= 'fn' '(' (identifier (',' identifier)*)? ')' stmt
func (p *Parser) function() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	fn := &ast.FunctionDecl{Pos: ast.Pos{Loc: kw.Loc}}
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	if !p.cur.Matches(scanner.Separator, ")") {
		for {
			tok := p.cur.Current()
			if tok.Kind != scanner.Label || Keywords[tok.Lexeme] {
				return nil, p.unexpected("parameter name")
			}
			p.cur.Advance()
			fn.Params = append(fn.Params, &ast.Identifier{Pos: ast.Pos{Loc: tok.Loc}, Name: tok.Lexeme})
			if !p.cur.Matches(scanner.Separator, ",") {
				break
			}
			p.cur.Advance()
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	tracer().Debugf("function with %d parameters at %s", len(fn.Params), kw.Loc)
	return fn, nil
}
