package scanner

import (
	"fmt"

	"github.com/qikcik/qlang"
)

// Kind is a category type for a Token.
type Kind int

// Token categories. Keywords are not a category of their own: they are
// labels with a reserved lexeme.
const (
	EOF       Kind = iota // end of input
	Illegal               // input the tokenizer could not match
	Separator             // operators and punctuation, e.g. ":=", "(", "&&"
	Label                 // identifiers and keywords
	String                // "…", lexeme without the quotes
	Integer               // 32-bit signed integer literal
	Float                 // 32-bit float literal
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Illegal:
		return "Illegal"
	case Separator:
		return "Separator"
	case Label:
		return "Label"
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DefaultSeparators is the set of separators of the language. Clients may
// supply their own set to NewLexer.
var DefaultSeparators = []string{
	":=", "==", "!=", "<=", ">=", "&&", "||",
	"+", "-", "*", "/", "%", "^", "<", ">", "!",
	"(", ")", "{", "}", ",", ";",
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Token is an input token. Tokens are produced once by a tokenizer and
// never change afterwards.
//
// An example would be a token for a floating point numer:
//
//    Kind   = Float      // category
//    Lexeme = "3.1416"   // lexeme how it appeared in the input stream
//    Float  = 3.1416     // payload, converted from the lexeme
//    Loc    = 1:7        // position in the input stream
//
type Token struct {
	Kind   Kind
	Lexeme string
	Int    int32   // payload for Integer tokens
	Float  float32 // payload for Float tokens
	Loc    qlang.Locator
}

// Is is a predicate: is the token of kind k and, if lexeme is non-empty,
// does it carry this lexeme?
func (t Token) Is(k Kind, lexeme string) bool {
	if t.Kind != k {
		return false
	}
	return lexeme == "" || t.Lexeme == lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s{%s} at %s", t.Kind, t.Lexeme, t.Loc)
}
