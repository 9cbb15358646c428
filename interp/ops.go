package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/qikcik/qlang/runtime"
)

var errDivisionByZero = errors.New("division by zero")

// unsupported creates the error for an operator not applicable to its
// operands.
func unsupported(op string, l, r runtime.Value) error {
	return fmt.Errorf("unsupported operation '%s' between %s %s and %s %s",
		op, runtime.TypeOf(l), runtime.Repr(l), runtime.TypeOf(r), runtime.Repr(r))
}

// binary applies a non-short-circuiting binary operator.
func binary(op string, l, r runtime.Value) (runtime.Value, error) {
	lt, rt := runtime.TypeOf(l), runtime.TypeOf(r)
	switch {
	case lt == runtime.FuncType || rt == runtime.FuncType:
		return nil, unsupported(op, l, r)
	case lt == runtime.StringType || rt == runtime.StringType:
		return stringOp(op, l, r)
	case lt == runtime.BooleanType && rt == runtime.BooleanType:
		return boolOp(op, l.(runtime.Bool), r.(runtime.Bool))
	case lt == runtime.IntegerType && rt == runtime.IntegerType:
		return intOp(op, l.(runtime.Int), r.(runtime.Int))
	case isNumeric(lt) && isNumeric(rt):
		return floatOp(op, toFloat(l), toFloat(r))
	}
	return nil, unsupported(op, l, r)
}

func isNumeric(t runtime.Type) bool {
	return t == runtime.IntegerType || t == runtime.FloatType
}

func toFloat(v runtime.Value) runtime.Float {
	switch v := v.(type) {
	case runtime.Int:
		return runtime.Float(v)
	case runtime.Float:
		return v
	}
	panic(fmt.Sprintf("interp: cannot convert %s to float", runtime.TypeOf(v)))
}

// stringOp handles operators with at least one string operand. The other
// operand is converted to its string representation.
func stringOp(op string, l, r runtime.Value) (runtime.Value, error) {
	switch op {
	case "+":
		return runtime.String(l.String() + r.String()), nil
	case "==":
		return runtime.Bool(l.String() == r.String()), nil
	case "!=":
		return runtime.Bool(l.String() != r.String()), nil
	}
	return nil, unsupported(op, l, r)
}

func boolOp(op string, a, b runtime.Bool) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.Bool(a == b), nil
	case "!=":
		return runtime.Bool(a != b), nil
	}
	return nil, unsupported(op, a, b)
}

func intOp(op string, a, b runtime.Int) (runtime.Value, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return nil, errDivisionByZero
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return nil, errDivisionByZero
		}
		return a % b, nil
	case "^":
		return runtime.Int(math.Pow(float64(a), float64(b))), nil
	}
	return compare(op, float64(a), float64(b), a, b)
}

func floatOp(op string, a, b runtime.Float) (runtime.Value, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		return a / b, nil
	case "%":
		return runtime.Float(math.Mod(float64(a), float64(b))), nil
	case "^":
		return runtime.Float(math.Pow(float64(a), float64(b))), nil
	}
	return compare(op, float64(a), float64(b), a, b)
}

// compare applies comparison operators to numbers. l and r are the
// original operands, for error messages.
func compare(op string, a, b float64, l, r runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.Bool(a == b), nil
	case "!=":
		return runtime.Bool(a != b), nil
	case "<":
		return runtime.Bool(a < b), nil
	case ">":
		return runtime.Bool(a > b), nil
	case "<=":
		return runtime.Bool(a <= b), nil
	case ">=":
		return runtime.Bool(a >= b), nil
	}
	return nil, unsupported(op, l, r)
}

// unary applies a prefix operator.
func unary(op string, v runtime.Value) (runtime.Value, error) {
	switch v := v.(type) {
	case runtime.Int:
		switch op {
		case "-":
			return -v, nil
		case "+":
			return v, nil
		}
	case runtime.Float:
		switch op {
		case "-":
			return -v, nil
		case "+":
			return v, nil
		}
	case runtime.Bool:
		if op == "!" {
			return !v, nil
		}
	}
	return nil, fmt.Errorf("unsupported operation '%s' on %s %s", op, runtime.TypeOf(v), runtime.Repr(v))
}
