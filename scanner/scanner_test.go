package scanner

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/qikcik/qlang"
)

var inputStrings = []string{
	"1",
	"x := 1+12",
	`print "Hello\nWorld"`,
	`a == b // commented `,
	"f(1,22,333)",
	"{ x := 2.5; y := x ^ 2 }",
}

var tokenCounts = []int{1, 5, 2, 3, 8, 11}

func makeCursor(t *testing.T, input string) *Cursor {
	lexer, err := NewLexer(DefaultSeparators)
	if err != nil {
		t.Fatal(err)
	}
	c, err := lexer.Cursor(qlang.NewSource("test", input))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestScanTokenCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		c := makeCursor(t, input)
		count := 0
		for token := c.Current(); token.Kind != EOF; token = c.Advance() {
			t.Logf(" %9s | %15s | @%s", token.Kind, token.Lexeme, token.Loc)
			if token.Kind == Illegal {
				t.Fatalf("unexpected illegal token in %q", input)
			}
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	c := makeCursor(t, `x:=1.5 <= 42 "a\"b"`)
	expected := []Token{
		{Kind: Label, Lexeme: "x"},
		{Kind: Separator, Lexeme: ":="},
		{Kind: Float, Lexeme: "1.5", Float: 1.5},
		{Kind: Separator, Lexeme: "<="},
		{Kind: Integer, Lexeme: "42", Int: 42},
		{Kind: String, Lexeme: `a\"b`},
	}
	for i, exp := range expected {
		tok := c.Current()
		if tok.Kind != exp.Kind || tok.Lexeme != exp.Lexeme {
			t.Errorf("token #%d: expected %s{%s}, got %v", i, exp.Kind, exp.Lexeme, tok)
		}
		if tok.Int != exp.Int || tok.Float != exp.Float {
			t.Errorf("token #%d: expected payload %d/%g, got %d/%g", i, exp.Int, exp.Float, tok.Int, tok.Float)
		}
		c.Advance()
	}
	if !c.Matches(EOF, "") {
		t.Errorf("expected EOF, got %v", c.Current())
	}
}

func TestLocators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	c := makeCursor(t, "a\n  bb := 1")
	if loc := c.Current().Loc; loc.Line != 1 || loc.Column != 1 {
		t.Errorf("expected 'a' at 1:1, is at %d:%d", loc.Line, loc.Column)
	}
	c.Advance()
	if loc := c.Current().Loc; loc.Line != 2 || loc.Column != 3 || loc.Offset != 4 {
		t.Errorf("expected 'bb' at 2:3 (offset 4), is at %s (offset %d)", loc, loc.Offset)
	}
	c.Advance()
	if loc := c.Current().Loc; loc.Line != 2 || loc.Column != 6 {
		t.Errorf("expected ':=' at 2:6, is at %s", loc)
	}
}

func TestRestart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	c := makeCursor(t, "a b c")
	c.Advance()
	c.Advance()
	if !c.Matches(Label, "c") {
		t.Fatalf("expected label c, got %v", c.Current())
	}
	if err := c.Restart(); err != nil {
		t.Fatal(err)
	}
	if !c.Matches(Label, "a") {
		t.Errorf("expected cursor to be rewound to label a, got %v", c.Current())
	}
}

func TestIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	c := makeCursor(t, "x := 1 @ 2")
	for c.Current().Kind != EOF && c.Current().Kind != Illegal {
		c.Advance()
	}
	if c.Current().Kind != Illegal {
		t.Fatalf("expected illegal token, got %v", c.Current())
	}
	if !qlang.IsKind(c.Err(), qlang.ScanError) {
		t.Errorf("expected scan error, got %v", c.Err())
	}
	if loc := c.Current().Loc; loc.Column != 8 {
		t.Errorf("expected illegal input at column 8, is at %s", loc)
	}
	c.Advance()
	if c.Current().Kind != Illegal {
		t.Errorf("expected cursor to stay at illegal input")
	}
}

func TestCustomSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.scanner")
	defer teardown()
	//
	lexer, err := NewLexer([]string{"=", "==", "===", "(", ")"})
	if err != nil {
		t.Fatal(err)
	}
	c, _ := lexer.Cursor(qlang.NewSource("custom", "a === b == (c = d)"))
	var seps []string
	for tok := c.Current(); tok.Kind != EOF; tok = c.Advance() {
		if tok.Kind == Separator {
			seps = append(seps, tok.Lexeme)
		}
	}
	if fmt.Sprint(seps) != "[=== == ( = )]" {
		t.Errorf("expected longest separator matches, got %v", seps)
	}
}
