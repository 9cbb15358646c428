package scanner

import (
	"strconv"
	"strings"

	"github.com/qikcik/qlang"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer      *lexmachine.Lexer
	separators []string
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// which adds the regular expressions for labels, numbers, strings etc., and a
// list of separators (":=", "(", …). Separators are added as literals.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), separators []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, sep := range separators {
		if sep == "" {
			continue
		}
		r := "\\" + strings.Join(strings.Split(sep, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(Separator))
		adapter.separators = append(adapter.separators, sep)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// NewLexer creates a lexmachine adapter for the language, recognizing
// a given set of separators.
//
// Labels start with a letter and continue with letters, digits or '_'.
// Numbers with a decimal point are floats, otherwise integers.
// Strings are enclosed in double quotes and may contain escaped quotes.
// Comments start with "//" and extend to the end of the line.
func NewLexer(separators []string) (*LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lexer.Add([]byte(`\"([^"\\]|\\.)*\"`), MakeToken(String))
		lexer.Add([]byte(`[0-9]+\.[0-9]*`), MakeToken(Float))
		lexer.Add([]byte(`[0-9]+`), MakeToken(Integer))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(Label))
	}
	return NewLMAdapter(init, separators)
}

// Separators returns the separators this adapter has been created with.
func (lm *LMAdapter) Separators() []string {
	return lm.separators
}

// Scanner creates a scanner for a given source text. The scanner will
// implement the Tokenizer interface.
func (lm *LMAdapter) Scanner(src *qlang.Source) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(src.Content))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, source: src, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	source  *qlang.Source
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be matched is reported to the error handler and
// returned as a token of kind Illegal. Scanning will continue behind it
// on the next call.
func (lms *LMScanner) NextToken() Token {
	if lms.scanner == nil {
		return Token{Kind: EOF}
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			t := lms.illegal(ui.StartTC, ui.FailTC)
			lms.scanner.TC = t.Loc.Offset + len(t.Lexeme)
			return t
		}
		t := Token{Kind: Illegal, Loc: lms.source.Locate(lms.scanner.TC)}
		lms.Error(qlang.Errorf(qlang.ScanError, t.Loc, "%v", err))
		return t
	}
	if eof {
		return Token{Kind: EOF, Loc: lms.source.Locate(len(lms.source.Content))}
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("tok is %T | %v", tok, tok)
	return lms.convert(token)
}

func (lms *LMScanner) illegal(from, to int) Token {
	content := lms.source.Content
	if to <= from {
		to = from + 1
	}
	if to > len(content) {
		to = len(content)
	}
	t := Token{Kind: Illegal, Loc: lms.source.Locate(from)}
	if from < to {
		t.Lexeme = content[from:to]
	}
	lms.Error(qlang.Errorf(qlang.ScanError, t.Loc, "unrecognized input %q", t.Lexeme))
	return t
}

// convert creates a Token from a lexmachine token, converting the payload.
// Out-of-range numbers are reported as illegal input.
func (lms *LMScanner) convert(token *lexmachine.Token) Token {
	t := Token{
		Kind:   Kind(token.Type),
		Lexeme: string(token.Lexeme),
		Loc:    lms.source.Locate(token.TC),
	}
	switch t.Kind {
	case Integer:
		n, err := strconv.ParseInt(t.Lexeme, 10, 32)
		if err != nil {
			return lms.badNumber(t, err)
		}
		t.Int = int32(n)
	case Float:
		f, err := strconv.ParseFloat(t.Lexeme, 32)
		if err != nil {
			return lms.badNumber(t, err)
		}
		t.Float = float32(f)
	case String: // trim off "…"
		t.Lexeme = t.Lexeme[1 : len(t.Lexeme)-1]
	}
	return t
}

func (lms *LMScanner) badNumber(t Token, err error) Token {
	t.Kind = Illegal
	lms.Error(qlang.Errorf(qlang.ScanError, t.Loc, "malformed number %q: %v",
		t.Lexeme, err.(*strconv.NumError).Err))
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}
