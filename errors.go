package qlang

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors raised while scanning, parsing and interpreting.
type ErrorKind int8

// Error categories.
const (
	ScanError        ErrorKind = iota // unrecognized input character
	SyntaxError                       // unexpected token, unbalanced delimiters
	NameError                         // undeclared function, bad assignment target
	TypeError                         // incompatible operands, arity, retyping
	ControlFlowError                  // return outside of a function
)

func (k ErrorKind) String() string {
	switch k {
	case ScanError:
		return "scan error"
	case SyntaxError:
		return "syntax error"
	case NameError:
		return "name error"
	case TypeError:
		return "type error"
	case ControlFlowError:
		return "control flow error"
	}
	return "error"
}

// Error is an error with a category and the source position it originates
// from. Every error produced by the core packages is of this type.
type Error struct {
	Kind ErrorKind
	Msg  string
	Loc  Locator
}

// Errorf creates a located error of a given kind.
func Errorf(kind ErrorKind, loc Locator, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Loc:  loc,
	}
}

func (e *Error) Error() string {
	if e.Loc.IsNull() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Loc, e.Msg)
}

// Hint returns the error message followed by a caret-annotated source snippet.
func (e *Error) Hint() string {
	if e.Loc.IsNull() {
		return e.Error()
	}
	return e.Error() + "\n" + e.Loc.Hint()
}

// IsKind is a predicate: is err (or an error it wraps) a located error of
// the given kind?
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
