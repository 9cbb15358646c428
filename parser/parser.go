package parser

import (
	"strconv"

	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
	"github.com/qikcik/qlang/scanner"
)

// TokenCursor is the view of the token stream the parser needs.
// scanner.Cursor implements it.
type TokenCursor interface {
	Current() scanner.Token
	Advance() scanner.Token
	Matches(k scanner.Kind, lexeme string) bool
	Err() error // first scanner error, if any
}

var _ TokenCursor = (*scanner.Cursor)(nil)

// Keywords are labels which may not be used as identifiers.
var Keywords = map[string]bool{
	"print": true,
	"if":    true,
	"else":  true,
	"while": true,
	"for":   true,
	"ret":   true,
	"fn":    true,
	"true":  true,
	"false": true,
}

// Parser is a recursive-descent parser. It is not safe for concurrent use.
type Parser struct {
	cur TokenCursor
}

// New creates a parser reading from a token cursor.
func New(cur TokenCursor) *Parser {
	return &Parser{cur: cur}
}

// Parse is a convenience function: it tokenizes and parses a source text
// with the default separators.
func Parse(src *qlang.Source) (*ast.Block, error) {
	lexer, err := scanner.NewLexer(scanner.DefaultSeparators)
	if err != nil {
		return nil, err
	}
	cur, err := lexer.Cursor(src)
	if err != nil {
		return nil, err
	}
	return New(cur).ParseProgram()
}

// ParseProgram parses statements up to the end of input and returns them as
// a block.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	prog := &ast.Block{Pos: ast.Pos{Loc: p.cur.Current().Loc}}
	for {
		p.skipTerminators()
		if p.cur.Matches(scanner.EOF, "") {
			break
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	if err := p.cur.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed program with %d statements", len(prog.Statements))
	return prog, nil
}

// ParseStatement parses a single statement and leaves the cursor after it.
func (p *Parser) ParseStatement() (ast.Node, error) {
	tok := p.cur.Current()
	tracer().Debugf("statement at %v", tok)
	if tok.Kind == scanner.Label {
		switch tok.Lexeme {
		case "print":
			return p.printStmt()
		case "if":
			return p.ifStmt()
		case "while":
			return p.whileStmt()
		case "for":
			return p.forStmt()
		case "ret":
			return p.returnStmt()
		case "else":
			return nil, p.unexpected("statement")
		}
	}
	if p.cur.Matches(scanner.Separator, "{") {
		return p.block()
	}
	return p.assignOrExpr()
}

func (p *Parser) skipTerminators() {
	for p.cur.Matches(scanner.Separator, ";") {
		p.cur.Advance()
	}
}

// block ::= '{' stmt* '}'
func (p *Parser) block() (*ast.Block, error) {
	open, err := p.expect("{")
	if err != nil {
		return nil, err
	}
	b := &ast.Block{Pos: ast.Pos{Loc: open.Loc}}
	for {
		p.skipTerminators()
		if p.cur.Matches(scanner.Separator, "}") {
			p.cur.Advance()
			return b, nil
		}
		if p.cur.Matches(scanner.EOF, "") {
			return nil, qlang.Errorf(qlang.SyntaxError, p.cur.Current().Loc,
				"missing '}' for block opened at %s", open.Loc)
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		b.Statements = append(b.Statements, stmt)
	}
}

// print expr
func (p *Parser) printStmt() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Pos: ast.Pos{Loc: kw.Loc}, Operand: e}, nil
}

// if expr stmt ('else' stmt)?
func (p *Parser) ifStmt() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	then, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	n := &ast.IfStmt{Pos: ast.Pos{Loc: kw.Loc}, Cond: cond, Then: then}
	if p.cur.Matches(scanner.Label, "else") {
		p.cur.Advance()
		if n.Else, err = p.ParseStatement(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// while expr stmt
func (p *Parser) whileStmt() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Pos: ast.Pos{Loc: kw.Loc}, Cond: cond, Body: body}, nil
}

// for '(' assign ',' expr ',' assign ')' stmt
func (p *Parser) forStmt() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	n := &ast.ForStmt{Pos: ast.Pos{Loc: kw.Loc}}
	var err error
	if _, err = p.expect("("); err != nil {
		return nil, err
	}
	if n.Init, err = p.assignment(); err != nil {
		return nil, err
	}
	if _, err = p.expect(","); err != nil {
		return nil, err
	}
	if n.Cond, err = p.expr(); err != nil {
		return nil, err
	}
	if _, err = p.expect(","); err != nil {
		return nil, err
	}
	if n.Step, err = p.assignment(); err != nil {
		return nil, err
	}
	if _, err = p.expect(")"); err != nil {
		return nil, err
	}
	if n.Body, err = p.ParseStatement(); err != nil {
		return nil, err
	}
	return n, nil
}

// ret expr
func (p *Parser) returnStmt() (ast.Node, error) {
	kw := p.cur.Current()
	p.cur.Advance()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Pos: ast.Pos{Loc: kw.Loc}, Operand: e}, nil
}

// identifier ':=' expr | expr
func (p *Parser) assignOrExpr() (ast.Node, error) {
	lhs, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.cur.Matches(scanner.Separator, ":=") {
		return lhs, nil
	}
	return p.assignTo(lhs)
}

// assign ::= identifier ':=' expr
func (p *Parser) assignment() (*ast.AssignStmt, error) {
	lhs, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.cur.Matches(scanner.Separator, ":=") {
		return nil, p.unexpected("':='")
	}
	return p.assignTo(lhs)
}

// assignTo expects the cursor at ':='.
func (p *Parser) assignTo(lhs ast.Node) (*ast.AssignStmt, error) {
	id, ok := lhs.(*ast.Identifier)
	if !ok {
		return nil, qlang.Errorf(qlang.NameError, lhs.Locator(),
			"cannot assign to %s", ast.Lines(lhs, ast.WithLocations(false))[0].Text)
	}
	p.cur.Advance()
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Pos: id.Pos, Target: id, Value: value}, nil
}

// --- Helpers ---------------------------------------------------------------

// expect consumes a separator or fails.
func (p *Parser) expect(sep string) (scanner.Token, error) {
	tok := p.cur.Current()
	if !p.cur.Matches(scanner.Separator, sep) {
		return tok, p.unexpected(strconv.Quote(sep))
	}
	p.cur.Advance()
	return tok, nil
}

// unexpected creates an error for the current token. If the scanner has
// stopped at illegal input, its error is returned instead.
func (p *Parser) unexpected(expected string) error {
	tok := p.cur.Current()
	if tok.Kind == scanner.Illegal && p.cur.Err() != nil {
		return p.cur.Err()
	}
	if tok.Kind == scanner.EOF {
		return qlang.Errorf(qlang.SyntaxError, tok.Loc, "unexpected end of input, expected %s", expected)
	}
	return qlang.Errorf(qlang.SyntaxError, tok.Loc, "unexpected %s %q, expected %s",
		tok.Kind, tok.Lexeme, expected)
}
