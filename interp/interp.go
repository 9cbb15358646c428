package interp

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
	"github.com/qikcik/qlang/parser"
	"github.com/qikcik/qlang/runtime"
	"github.com/qikcik/qlang/scanner"
)

// DefaultMaxIterations is the default upper bound for the number of
// iterations of a single while- or for-loop.
const DefaultMaxIterations = 10000

// DefaultMaxCallDepth is the default upper bound for nested function calls.
const DefaultMaxCallDepth = 1000

// Interpreter is a tree-walking interpreter. It is not safe for concurrent
// use; hosts sharing an interpreter between goroutines have to serialize
// access to it.
type Interpreter struct {
	rt            *runtime.Runtime
	out           io.Writer
	maxIterations int
	maxCallDepth  int
	callDepth     int
	separators    []string
	lexer         *scanner.LMAdapter // created on demand from separators
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput sets the destination for print statements. Default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		if w != nil {
			intp.out = w
		}
	}
}

// WithMaxIterations sets the iteration bound for loops. Values < 1 select
// DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(intp *Interpreter) {
		if n < 1 {
			n = DefaultMaxIterations
		}
		intp.maxIterations = n
	}
}

// WithMaxCallDepth sets the bound for nested function calls. Values < 1
// select DefaultMaxCallDepth.
func WithMaxCallDepth(n int) Option {
	return func(intp *Interpreter) {
		if n < 1 {
			n = DefaultMaxCallDepth
		}
		intp.maxCallDepth = n
	}
}

// WithSeparators sets the separators used by RunSource to tokenize input.
// Default is scanner.DefaultSeparators.
func WithSeparators(seps []string) Option {
	return func(intp *Interpreter) {
		if len(seps) > 0 {
			intp.separators = seps
			intp.lexer = nil
		}
	}
}

// ConfigOptions creates options from a configuration. It reads
//
//	interp.maxiterations   iteration bound for loops
//	interp.maxcalldepth    bound for nested function calls
//	scanner.separators     whitespace-separated list of separators
//
// Keys not set in conf are skipped.
func ConfigOptions(conf schuko.Configuration) []Option {
	var opts []Option
	if conf.IsSet("interp.maxiterations") {
		opts = append(opts, WithMaxIterations(conf.GetInt("interp.maxiterations")))
	}
	if conf.IsSet("interp.maxcalldepth") {
		opts = append(opts, WithMaxCallDepth(conf.GetInt("interp.maxcalldepth")))
	}
	if conf.IsSet("scanner.separators") {
		opts = append(opts, WithSeparators(strings.Fields(conf.GetString("scanner.separators"))))
	}
	return opts
}

// New creates an interpreter with an empty global frame.
func New(opts ...Option) *Interpreter {
	intp := &Interpreter{
		rt:            runtime.NewRuntimeEnvironment(),
		out:           os.Stdout,
		maxIterations: DefaultMaxIterations,
		maxCallDepth:  DefaultMaxCallDepth,
		separators:    scanner.DefaultSeparators,
	}
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// Runtime returns the runtime environment of the interpreter, e.g. to
// inspect global variables.
func (intp *Interpreter) Runtime() *runtime.Runtime {
	return intp.rt
}

// MaxIterations returns the iteration bound for loops.
func (intp *Interpreter) MaxIterations() int {
	return intp.maxIterations
}

// Lexer returns the tokenizer used by RunSource.
func (intp *Interpreter) Lexer() (*scanner.LMAdapter, error) {
	if intp.lexer == nil {
		lexer, err := scanner.NewLexer(intp.separators)
		if err != nil {
			return nil, err
		}
		intp.lexer = lexer
	}
	return intp.lexer, nil
}

// Parse tokenizes and parses a source text.
func (intp *Interpreter) Parse(src *qlang.Source) (*ast.Block, error) {
	lexer, err := intp.Lexer()
	if err != nil {
		return nil, err
	}
	cur, err := lexer.Cursor(src)
	if err != nil {
		return nil, err
	}
	return parser.New(cur).ParseProgram()
}

// RunSource parses a source text and runs it as a program.
func (intp *Interpreter) RunSource(src *qlang.Source) (runtime.Value, error) {
	prog, err := intp.Parse(src)
	if err != nil {
		return nil, err
	}
	return intp.Run(prog)
}

// Run executes a program. The top-level statements are executed in the
// global frame, i.e. variables assigned at top level are globals and
// survive for subsequent calls to Run. Returns the value of the last
// statement.
func (intp *Interpreter) Run(prog *ast.Block) (runtime.Value, error) {
	tracer().Debugf("running program with %d statements", len(prog.Statements))
	out, err := intp.execBlock(prog, false)
	return intp.result(out, err)
}

// Eval evaluates a single node in the active frame.
func (intp *Interpreter) Eval(n ast.Node) (runtime.Value, error) {
	out, err := intp.exec(n)
	return intp.result(out, err)
}

func (intp *Interpreter) result(out Outcome, err error) (runtime.Value, error) {
	if err != nil {
		tracer().Infof("evaluation aborted: %v", err)
		return nil, err
	}
	if out.Returning {
		return nil, qlang.Errorf(qlang.ControlFlowError, out.at, "return outside of function")
	}
	return out.Value, nil
}
