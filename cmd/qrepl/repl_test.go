package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/config"
	"github.com/qikcik/qlang/runtime"
)

func TestEvalLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.repl")
	defer teardown()
	//
	var out bytes.Buffer
	q := newIntp(config.New(), &out)
	for _, line := range []string{
		"x := 20",
		"f := fn (a) { ret a + x }",
		`print f(22) + "\n"`,
	} {
		if quit, err := q.Eval(line); quit || err != nil {
			t.Fatalf("%q: quit=%v, err=%v", line, quit, err)
		}
	}
	if out.String() != "42\n" {
		t.Errorf("expected output 42, got %q", out.String())
	}
	if tag, _ := q.intp.Runtime().Resolve("f"); tag == nil || tag.Type() != runtime.FuncType {
		t.Errorf("expected f to be a global function")
	}
}

func TestEvalErrorsDoNotStop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.repl")
	defer teardown()
	//
	q := newIntp(config.New(), &bytes.Buffer{})
	if _, err := q.Eval("x := 1 +"); !qlang.IsKind(err, qlang.SyntaxError) {
		t.Errorf("expected syntax error, got %v", err)
	}
	if _, err := q.Eval(`x := "a" - 1`); !qlang.IsKind(err, qlang.TypeError) {
		t.Errorf("expected type error, got %v", err)
	}
	if _, err := q.Eval("x := 1"); err != nil {
		t.Errorf("expected REPL to continue after errors, got %v", err)
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.repl")
	defer teardown()
	//
	q := newIntp(config.New(), &bytes.Buffer{})
	if _, err := q.Eval("a := 1; b := 2.5"); err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{":vars", ":help", ":ast x := 1 + 2 * 3"} {
		if quit, err := q.Eval(cmd); quit || err != nil {
			t.Errorf("%s: quit=%v, err=%v", cmd, quit, err)
		}
	}
	if _, err := q.Eval(":ast x := ("); err == nil {
		t.Errorf("expected :ast of malformed input to fail")
	}
	if _, err := q.Eval(":nonsense"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if quit, _ := q.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.repl")
	defer teardown()
	//
	var out bytes.Buffer
	conf := config.New()
	conf.Set("interp.maxiterations", 3)
	q := newIntp(conf, &out)
	script := filepath.Join(t.TempDir(), "count.q")
	content := "// counts to the loop bound\nn := 0\nwhile true { n := n + 1 }\nprint n\n"
	if err := os.WriteFile(script, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := q.LoadFile(script); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n" {
		t.Errorf("expected script to print 3, got %q", out.String())
	}
	if err := q.LoadFile(""); err != nil {
		t.Errorf("expected empty file name to be ignored")
	}
	if err := q.LoadFile(filepath.Join(t.TempDir(), "missing.q")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLeveledTree(t *testing.T) {
	prog, err := newIntp(config.New(), &bytes.Buffer{}).intp.Parse(qlang.NewSource("t", "print 1 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	var collect func(n pterm.TreeNode)
	collect = func(n pterm.TreeNode) {
		texts = append(texts, n.Text)
		for _, ch := range n.Children {
			collect(ch)
		}
	}
	collect(leveledTree(prog))
	joined := strings.Join(texts, "|")
	for _, label := range []string{"Block", "Print", "BinaryOp +", "Integer 2"} {
		if !strings.Contains(joined, label) {
			t.Errorf("expected tree to contain %q, has %v", label, texts)
		}
	}
}
