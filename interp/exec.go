package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
	"github.com/qikcik/qlang/runtime"
)

// Outcome is the result of executing a statement: either a normal value or
// a value being returned from a function. A returning outcome propagates
// up to the nearest enclosing function call.
type Outcome struct {
	Value     runtime.Value
	Returning bool
	at        qlang.Locator // location of the return statement
}

func normal(v runtime.Value) Outcome {
	return Outcome{Value: v}
}

// exec executes a node in the active frame. Nested blocks open a new frame.
func (intp *Interpreter) exec(n ast.Node) (Outcome, error) {
	tracer().Debugf("exec %T at %s", n, n.Locator())
	switch n := n.(type) {
	case *ast.Block:
		return intp.execBlock(n, true)
	case *ast.PrintStmt:
		return intp.execPrint(n)
	case *ast.IfStmt:
		return intp.execIf(n)
	case *ast.AssignStmt:
		return intp.execAssign(n)
	case *ast.WhileStmt:
		return intp.execWhile(n)
	case *ast.ForStmt:
		return intp.execFor(n)
	case *ast.Return:
		v, err := intp.operand(n.Operand)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Value: v, Returning: true, at: n.Loc}, nil
	case *ast.Identifier, *ast.Integer, *ast.Float, *ast.String, *ast.Bool,
		*ast.UnaryOp, *ast.BinaryOp, *ast.FunctionDecl, *ast.FunctionCall:
		v, err := intp.eval(n)
		return normal(v), err
	}
	panic(fmt.Sprintf("interp: unknown node type %T", n))
}

// execBody executes the body of an if-branch, a loop or a function in the
// active frame, which the caller has opened for it. A block body does not
// open a further frame.
func (intp *Interpreter) execBody(n ast.Node) (Outcome, error) {
	if b, ok := n.(*ast.Block); ok {
		return intp.execBlock(b, false)
	}
	return intp.exec(n)
}

// inFrame runs f in a new frame, which is released afterwards.
func (intp *Interpreter) inFrame(name string, parent int, f func() (Outcome, error)) (Outcome, error) {
	prev := intp.rt.PushFrame(name, parent)
	out, err := f()
	intp.rt.PopFrame(prev)
	return out, err
}

// execBlock executes statements in order and yields the value of the last
// one. An empty block yields false.
func (intp *Interpreter) execBlock(b *ast.Block, newFrame bool) (Outcome, error) {
	run := func() (Outcome, error) {
		out := normal(runtime.Bool(false))
		for _, stmt := range b.Statements {
			var err error
			if out, err = intp.exec(stmt); err != nil || out.Returning {
				return out, err
			}
		}
		return out, nil
	}
	if !newFrame {
		return run()
	}
	return intp.inFrame("block", intp.rt.Current, run)
}

func (intp *Interpreter) execPrint(n *ast.PrintStmt) (Outcome, error) {
	v, err := intp.operand(n.Operand)
	if err != nil {
		return Outcome{}, err
	}
	if _, err = io.WriteString(intp.out, display(v)); err != nil {
		return Outcome{}, fmt.Errorf("print at %s: %w", n.Loc, err)
	}
	return normal(v), nil
}

// display renders a value for print: strings have the escape sequence \n
// expanded to a line break.
func display(v runtime.Value) string {
	if s, ok := v.(runtime.String); ok {
		return strings.ReplaceAll(string(s), `\n`, "\n")
	}
	return v.String()
}

func (intp *Interpreter) execIf(n *ast.IfStmt) (Outcome, error) {
	cond, err := intp.condition(n.Cond)
	if err != nil {
		return Outcome{}, err
	}
	branch := n.Then
	if !cond {
		branch = n.Else
	}
	if branch == nil {
		return normal(nil), nil
	}
	return intp.inFrame("if", intp.rt.Current, func() (Outcome, error) {
		return intp.execBody(branch)
	})
}

// execAssign overwrites an existing variable visible from the active frame,
// or creates the variable in the active frame.
func (intp *Interpreter) execAssign(n *ast.AssignStmt) (Outcome, error) {
	v, err := intp.operand(n.Value)
	if err != nil {
		return Outcome{}, err
	}
	name := n.Target.Name
	if tag, _ := intp.rt.Resolve(name); tag != nil {
		if !tag.Set(v) {
			return Outcome{}, qlang.Errorf(qlang.TypeError, n.Loc,
				"cannot assign %s value to variable '%s' of type %s", runtime.TypeOf(v), name, tag.Type())
		}
		return normal(v), nil
	}
	intp.rt.Define(name, v)
	return normal(v), nil
}

func (intp *Interpreter) execWhile(n *ast.WhileStmt) (Outcome, error) {
	return intp.inFrame("while", intp.rt.Current, func() (Outcome, error) {
		return intp.loop(n.Loc, n.Cond, n.Body, nil)
	})
}

func (intp *Interpreter) execFor(n *ast.ForStmt) (Outcome, error) {
	return intp.inFrame("for", intp.rt.Current, func() (Outcome, error) {
		if _, err := intp.execAssign(n.Init); err != nil {
			return Outcome{}, err
		}
		return intp.loop(n.Loc, n.Cond, n.Body, n.Step)
	})
}

// loop runs a loop body while cond holds, at most maxIterations times. If
// step is not nil, it is executed after each pass of the body. Yields the
// value of the last pass, or false if the body has not been executed.
func (intp *Interpreter) loop(at qlang.Locator, cond, body ast.Node, step *ast.AssignStmt) (Outcome, error) {
	last := normal(runtime.Bool(false))
	for i := 0; i < intp.maxIterations; i++ {
		ok, err := intp.condition(cond)
		if err != nil || !ok {
			return last, err
		}
		out, err := intp.execBody(body)
		if err != nil || out.Returning {
			return out, err
		}
		last = out
		if step != nil {
			if _, err = intp.execAssign(step); err != nil {
				return Outcome{}, err
			}
		}
	}
	tracer().Infof("loop at %s stopped after %d iterations", at, intp.maxIterations)
	return last, nil
}

// --- Expressions -----------------------------------------------------------

// eval evaluates an expression. An unresolved identifier yields nil.
func (intp *Interpreter) eval(n ast.Node) (runtime.Value, error) {
	switch n := n.(type) {
	case *ast.Identifier:
		if tag, _ := intp.rt.Resolve(n.Name); tag != nil {
			return tag.Value(), nil
		}
		return nil, nil
	case *ast.Integer:
		return runtime.Int(n.Value), nil
	case *ast.Float:
		return runtime.Float(n.Value), nil
	case *ast.String:
		return runtime.String(n.Value), nil
	case *ast.Bool:
		return runtime.Bool(n.Value), nil
	case *ast.UnaryOp:
		v, err := intp.operand(n.Operand)
		if err != nil {
			return nil, err
		}
		r, err := unary(n.Op, v)
		if err != nil {
			return nil, qlang.Errorf(qlang.TypeError, n.Loc, "%v", err)
		}
		return r, nil
	case *ast.BinaryOp:
		return intp.evalBinary(n)
	case *ast.FunctionDecl:
		return runtime.NewFunc(n), nil
	case *ast.FunctionCall:
		return intp.call(n)
	}
	panic(fmt.Sprintf("interp: %T is not an expression", n))
}

// operand evaluates an expression whose value is required.
func (intp *Interpreter) operand(n ast.Node) (runtime.Value, error) {
	v, err := intp.eval(n)
	if err != nil || v != nil {
		return v, err
	}
	if id, ok := n.(*ast.Identifier); ok {
		return nil, qlang.Errorf(qlang.NameError, id.Loc, "undefined variable '%s'", id.Name)
	}
	return nil, qlang.Errorf(qlang.TypeError, n.Locator(), "expression does not yield a value")
}

// condition evaluates the condition of an if-statement or a loop.
func (intp *Interpreter) condition(n ast.Node) (bool, error) {
	v, err := intp.operand(n)
	if err != nil {
		return false, err
	}
	b, ok := v.(runtime.Bool)
	if !ok {
		return false, qlang.Errorf(qlang.TypeError, n.Locator(),
			"condition must be of type bool, is %s %s", v.Type(), runtime.Repr(v))
	}
	return bool(b), nil
}

func (intp *Interpreter) evalBinary(n *ast.BinaryOp) (runtime.Value, error) {
	l, err := intp.operand(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op == "&&" || n.Op == "||" {
		return intp.evalLogic(n, l)
	}
	r, err := intp.operand(n.Right)
	if err != nil {
		return nil, err
	}
	v, err := binary(n.Op, l, r)
	if err != nil {
		return nil, qlang.Errorf(qlang.TypeError, n.Loc, "%v", err)
	}
	return v, nil
}

// evalLogic evaluates '&&' and '||'. The right operand is evaluated only if
// the left one does not determine the result.
func (intp *Interpreter) evalLogic(n *ast.BinaryOp, l runtime.Value) (runtime.Value, error) {
	lb, ok := l.(runtime.Bool)
	if !ok {
		return nil, qlang.Errorf(qlang.TypeError, n.Loc,
			"operands of '%s' must be of type bool, left operand is %s %s", n.Op, runtime.TypeOf(l), runtime.Repr(l))
	}
	if b := bool(lb); (n.Op == "&&" && !b) || (n.Op == "||" && b) {
		return lb, nil
	}
	r, err := intp.operand(n.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := r.(runtime.Bool); !ok {
		return nil, qlang.Errorf(qlang.TypeError, n.Loc,
			"operands of '%s' must be of type bool, right operand is %s %s", n.Op, runtime.TypeOf(r), runtime.Repr(r))
	}
	return r, nil
}

// call invokes a function. Arguments are evaluated in the caller's frame,
// the call frame's parent is the global frame.
func (intp *Interpreter) call(n *ast.FunctionCall) (runtime.Value, error) {
	name := n.Callee.Name
	tag, _ := intp.rt.Resolve(name)
	if tag == nil {
		return nil, qlang.Errorf(qlang.NameError, n.Loc, "undeclared function '%s'", name)
	}
	fn, ok := tag.Value().(*runtime.Func)
	if !ok {
		return nil, qlang.Errorf(qlang.TypeError, n.Loc, "'%s' is not a function, is %s", name, tag.Type())
	}
	if len(n.Args) != fn.Arity() {
		return nil, qlang.Errorf(qlang.TypeError, n.Loc, "function '%s' expects %d arguments, got %d",
			name, fn.Arity(), len(n.Args))
	}
	args := make([]runtime.Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := intp.operand(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if intp.callDepth >= intp.maxCallDepth {
		return nil, qlang.Errorf(qlang.ControlFlowError, n.Loc, "maximum call depth of %d exceeded", intp.maxCallDepth)
	}
	intp.callDepth++
	out, err := intp.inFrame("call "+name, intp.rt.Globals(), func() (Outcome, error) {
		for i, p := range fn.Decl.Params {
			intp.rt.Define(p.Name, args[i])
		}
		return intp.execBody(fn.Decl.Body)
	})
	intp.callDepth--
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}
