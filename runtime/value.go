package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qikcik/qlang/ast"
)

// Type is the tag of a runtime value.
type Type int8

// Value types. Undefined is the type of the "no value" outcome, i.e. of a
// nil Value.
const (
	Undefined Type = iota
	IntegerType
	FloatType
	StringType
	BooleanType
	FuncType
)

func (t Type) String() string {
	switch t {
	case Undefined:
		return "undefined"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case BooleanType:
		return "bool"
	case FuncType:
		return "function"
	}
	return fmt.Sprintf("Type(%d)", int8(t))
}

// Value is a dynamically typed runtime value. The set of implementations is
// closed: Bool, Int, Float, String and *Func.
//
// A nil Value denotes "no value", e.g. the result of an unresolved
// identifier or of an if-statement without a matching branch.
type Value interface {
	Type() Type
	String() string
	isValue()
}

// TypeOf returns the type of a value, Undefined for nil.
func TypeOf(v Value) Type {
	if v == nil {
		return Undefined
	}
	return v.Type()
}

// Bool is a boolean runtime value.
type Bool bool

// Int is a 32-bit integer runtime value.
type Int int32

// Float is a 32-bit floating point runtime value.
type Float float32

// String is a string runtime value.
type String string

// Func is a function value. It holds a private deep copy of the function
// declaration it has been created from.
type Func struct {
	Decl *ast.FunctionDecl
}

// NewFunc creates a function value from a declaration. The declaration is
// copied, the function value never aliases nodes of the caller's tree.
func NewFunc(decl *ast.FunctionDecl) *Func {
	return &Func{Decl: ast.CopyFunction(decl)}
}

func (Bool) Type() Type   { return BooleanType }
func (Int) Type() Type    { return IntegerType }
func (Float) Type() Type  { return FloatType }
func (String) Type() Type { return StringType }
func (*Func) Type() Type  { return FuncType }

func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (*Func) isValue()  {}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// String renders the shortest decimal representation which reads back as
// the same 32-bit float, e.g. "2.5" or "2" for 2.0.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (s String) String() string {
	return string(s)
}

func (fn *Func) String() string {
	if fn == nil || fn.Decl == nil {
		return "fn()"
	}
	names := make([]string, len(fn.Decl.Params))
	for i, p := range fn.Decl.Params {
		names[i] = p.Name
	}
	return "fn(" + strings.Join(names, ", ") + ")"
}

// Arity returns the number of declared parameters.
func (fn *Func) Arity() int {
	return len(fn.Decl.Params)
}

// Repr renders a value for diagnostics: strings are quoted, "no value" is
// shown as <undefined>.
func Repr(v Value) string {
	switch v := v.(type) {
	case nil:
		return "<undefined>"
	case String:
		return strconv.Quote(string(v))
	}
	return v.String()
}
