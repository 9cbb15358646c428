package runtime

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/qikcik/qlang/ast"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym", Int(5))
	if sym == nil {
		t.Error("no symbol created for table")
	}
	if sym.Value() != Int(5) {
		t.Errorf("value of tag does not work")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1", Int(1))
	sym2, _ := symtab.DefineTag("new-sym2", Int(1))
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym", Bool(true))
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
	if s := symtab.ResolveTag("no-sym"); s != nil {
		t.Error("found symbol which has not been stored")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym", Int(1))
	if _, old := symtab.DefineTag("new-sym", String("x")); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestTagKeepsType(t *testing.T) {
	tag := NewTag("x", Int(1))
	if !tag.Set(Int(2)) || tag.Value() != Int(2) {
		t.Errorf("expected integer tag to accept integer value")
	}
	if tag.Set(Float(2.0)) {
		t.Errorf("expected integer tag to reject float value")
	}
	if tag.Value() != Int(2) {
		t.Errorf("expected rejected assignment to leave value untouched, is %v", tag.Value())
	}
}

func TestSymbolIterationIsSorted(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		symtab.DefineTag(name, Int(0))
	}
	var names []string
	symtab.Each(func(name string, _ *Tag) {
		names = append(names, name)
	})
	if strings.Join(names, ",") != "a,b,c" {
		t.Errorf("expected sorted iteration, got %v", names)
	}
}

func TestFrameUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	rt.Define("g", Int(1))
	outer := rt.PushFrame("outer", rt.Current)
	rt.Define("x", String("outer"))
	inner := rt.PushFrame("inner", rt.Current)
	rt.Define("x", String("inner"))
	if tag, inx := rt.Resolve("g"); tag == nil || inx != rt.Globals() {
		t.Errorf("expected to find g in global frame, got %v in #%d", tag, inx)
	}
	if tag, _ := rt.Resolve("x"); tag == nil || tag.Value() != String("inner") {
		t.Errorf("expected inner x to shadow outer x, got %v", tag)
	}
	if n := len(rt.Frames.Visible(rt.Current)); n != 2 {
		t.Errorf("expected 2 visible bindings, got %d", n)
	}
	t.Logf("\n%s", rt.Frames.Dump(rt.Current))
	rt.PopFrame(inner)
	if tag, _ := rt.Resolve("x"); tag == nil || tag.Value() != String("outer") {
		t.Errorf("expected outer x after popping inner frame, got %v", tag)
	}
	rt.PopFrame(outer)
	if tag, _ := rt.Resolve("x"); tag != nil {
		t.Errorf("expected x to be gone after popping frames, got %v", tag)
	}
	if rt.Frames.Size() != 1 || rt.Current != rt.Globals() {
		t.Errorf("expected only the global frame to be left")
	}
}

func TestFrameParentIsNotTOS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	prev := rt.PushFrame("block", rt.Current)
	rt.Define("local", Int(1))
	call := rt.PushFrame("call", rt.Globals())
	if tag, _ := rt.Resolve("local"); tag != nil {
		t.Errorf("expected frame with global parent not to see locals of block")
	}
	rt.PopFrame(call)
	rt.PopFrame(prev)
}

func TestPopOutOfOrderPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qlang.runtime")
	defer teardown()
	//
	fa := NewFrameArena()
	a := fa.Push("a", fa.Globals())
	fa.Push("b", a)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected popping a non-top frame to panic")
		}
	}()
	fa.Pop(a)
}

func TestValueRendering(t *testing.T) {
	fn := &ast.FunctionDecl{Params: []*ast.Identifier{{Name: "a"}, {Name: "b"}}, Body: &ast.Block{}}
	cases := []struct {
		v    Value
		s    string
		repr string
	}{
		{Bool(true), "true", "true"},
		{Int(-42), "-42", "-42"},
		{Float(2.5), "2.5", "2.5"},
		{Float(2), "2", "2"},
		{String("a\"b"), "a\"b", `"a\"b"`},
		{NewFunc(fn), "fn(a, b)", "fn(a, b)"},
	}
	for _, c := range cases {
		if c.v.String() != c.s || Repr(c.v) != c.repr {
			t.Errorf("expected %s to render as %s / %s, got %s / %s", c.v.Type(), c.s, c.repr, c.v.String(), Repr(c.v))
		}
	}
	if Repr(nil) != "<undefined>" || TypeOf(nil) != Undefined {
		t.Errorf("expected nil value to be undefined")
	}
}

func TestFuncOwnsDeclaration(t *testing.T) {
	decl := &ast.FunctionDecl{Params: []*ast.Identifier{{Name: "a"}}, Body: &ast.Identifier{Name: "a"}}
	fn := NewFunc(decl)
	if fn.Decl == decl || fn.Decl.Params[0] == decl.Params[0] {
		t.Errorf("expected function value to hold a copy of the declaration")
	}
	decl.Params[0].Name = "z"
	if fn.String() != "fn(a)" || fn.Arity() != 1 {
		t.Errorf("expected function value to be independent of declaration, is %s", fn)
	}
}
