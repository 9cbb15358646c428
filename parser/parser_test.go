package parser

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
)

func parse(t *testing.T, input string) *ast.Block {
	prog, err := Parse(qlang.NewSource("test", input))
	if err != nil {
		t.Fatalf("parsing %q: %v", input, err)
	}
	return prog
}

// render creates a compact, single-line representation of a tree.
func render(n ast.Node) string {
	lines := ast.Lines(n, ast.WithLocations(false))
	var b strings.Builder
	depth := -1
	for _, l := range lines {
		for ; depth >= l.Depth; depth-- {
			b.WriteString(")")
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(" + l.Text)
		depth = l.Depth
	}
	for ; depth >= 0; depth-- {
		b.WriteString(")")
	}
	return b.String()
}

func TestExpressionPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.parser")
	defer teardown()
	//
	cases := []struct{ input, tree string }{
		{"2^3^2", "(BinaryOp ^ (Integer 2) (BinaryOp ^ (Integer 3) (Integer 2)))"},
		{"1-2-3", "(BinaryOp - (BinaryOp - (Integer 1) (Integer 2)) (Integer 3))"},
		{"1+2*3", "(BinaryOp + (Integer 1) (BinaryOp * (Integer 2) (Integer 3)))"},
		{"(1+2)*3", "(BinaryOp * (BinaryOp + (Integer 1) (Integer 2)) (Integer 3))"},
		{"-2^2", "(BinaryOp ^ (UnaryOp - (Integer 2)) (Integer 2))"},
		{"a < b && !c", "(BinaryOp && (BinaryOp < (Identifier a) (Identifier b)) (UnaryOp ! (Identifier c)))"},
		{"1 == 2 || 3 != 4", "(BinaryOp || (BinaryOp == (Integer 1) (Integer 2)) (BinaryOp != (Integer 3) (Integer 4)))"},
		{"x % 2.5", "(BinaryOp % (Identifier x) (Float 2.5))"},
		{`"a" + true`, `(BinaryOp + (String "a") (Bool true))`},
		{"f(1, g(), h)", "(FunctionCall (Identifier f) (Integer 1) (FunctionCall (Identifier g)) (Identifier h))"},
	}
	for _, c := range cases {
		prog := parse(t, c.input)
		if len(prog.Statements) != 1 {
			t.Fatalf("expected 1 statement for %q, got %d", c.input, len(prog.Statements))
		}
		if tree := render(prog.Statements[0]); tree != c.tree {
			t.Errorf("%q: expected %s, got %s", c.input, c.tree, tree)
		}
	}
}

func TestStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.parser")
	defer teardown()
	//
	cases := []struct{ input, tree string }{
		{"print 1", "(Print (Integer 1))"},
		{"x := 1 + 2", "(Assign (Identifier x) (BinaryOp + (Integer 1) (Integer 2)))"},
		{"if x print 1", "(If (Identifier x) (Print (Integer 1)))"},
		{"if x { 1 } else { 2 }", "(If (Identifier x) (Block (Integer 1)) (Block (Integer 2)))"},
		{"while x < 3 x := x + 1", "(While (BinaryOp < (Identifier x) (Integer 3)) (Assign (Identifier x) (BinaryOp + (Identifier x) (Integer 1))))"},
		{"for (i := 0, i < 3, i := i + 1) print i",
			"(For (Assign (Identifier i) (Integer 0)) (BinaryOp < (Identifier i) (Integer 3)) (Assign (Identifier i) (BinaryOp + (Identifier i) (Integer 1))) (Print (Identifier i)))"},
		{"f := fn (a, b) { ret a + b }",
			"(Assign (Identifier f) (FunctionDecl (Identifier a) (Identifier b) (Block (Return (BinaryOp + (Identifier a) (Identifier b))))))"},
		{"fn () 1", "(FunctionDecl (Integer 1))"},
		{"{ ; x := 1 ; ; { } ; }", "(Block (Assign (Identifier x) (Integer 1)) (Block))"},
	}
	for _, c := range cases {
		prog := parse(t, c.input)
		if len(prog.Statements) != 1 {
			t.Fatalf("expected 1 statement for %q, got %d", c.input, len(prog.Statements))
		}
		if tree := render(prog.Statements[0]); tree != c.tree {
			t.Errorf("%q: expected\n   %s, got\n   %s", c.input, c.tree, tree)
		}
	}
}

func TestProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.parser")
	defer teardown()
	//
	prog := parse(t, `
	// comment line
	x := 1; if true { x := 2 }; x
	print "done\n"
	`)
	if len(prog.Statements) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Statements))
	}
	if _, ok := prog.Statements[3].(*ast.PrintStmt); !ok {
		t.Errorf("expected last statement to be a print statement, is %T", prog.Statements[3])
	}
	if loc := prog.Statements[1].Locator(); loc.Line != 3 || loc.Column != 10 {
		t.Errorf("expected if statement at 3:10, is at %s", loc)
	}
	empty := parse(t, "  // nothing\n ; ")
	if len(empty.Statements) != 0 {
		t.Errorf("expected empty program, got %d statements", len(empty.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.parser")
	defer teardown()
	//
	cases := []struct {
		input  string
		kind   qlang.ErrorKind
		column int
	}{
		{"(1 + 2", qlang.SyntaxError, 7},
		{"{ x := 1", qlang.SyntaxError, 9},
		{"x := )", qlang.SyntaxError, 6},
		{"f(1, 2", qlang.SyntaxError, 7},
		{"1 + 2 := 3", qlang.NameError, 3},
		{"f() := 3", qlang.NameError, 1},
		{"x := 1 @ 2", qlang.ScanError, 8},
		{"else 1", qlang.SyntaxError, 1},
		{"print while", qlang.SyntaxError, 7},
		{"for (i := 0; i < 3; i := i + 1) 1", qlang.SyntaxError, 12},
		{"for (i, i < 3, i := i + 1) 1", qlang.SyntaxError, 7},
		{"fn (a, 1) a", qlang.SyntaxError, 8},
		{"x := 99999999999", qlang.ScanError, 6},
	}
	for _, c := range cases {
		_, err := Parse(qlang.NewSource("test", c.input))
		if err == nil {
			t.Errorf("expected %q to fail", c.input)
			continue
		}
		t.Logf("%q: %v", c.input, err)
		if !qlang.IsKind(err, c.kind) {
			t.Errorf("%q: expected %s, got %v", c.input, c.kind, err)
			continue
		}
		if col := err.(*qlang.Error).Loc.Column; col != c.column {
			t.Errorf("%q: expected error at column %d, got %d", c.input, c.column, col)
		}
	}
}

func TestParseCopyFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.parser")
	defer teardown()
	//
	prog := parse(t, `
	f := fn (n) { if n <= 1 { ret 1 } else { ret n * f(n - 1) } }
	for (i := 0, i < 5, i := i + 1) { print f(i) + "\n" }
	while !done { done := true }
	`)
	clone := ast.Copy(prog)
	if ast.Format(prog) != ast.Format(clone) {
		t.Errorf("expected deep copy to format identical to original")
	}
	if clone == ast.Node(prog) {
		t.Errorf("expected copy to be a new tree")
	}
}
