package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/qikcik/qlang"
	"github.com/qikcik/qlang/ast"
	"github.com/qikcik/qlang/config"
	"github.com/qikcik/qlang/interp"
	"github.com/qikcik/qlang/runtime"
)

// Intp is our interpreter object
type Intp struct {
	intp  *interp.Interpreter
	repl  *readline.Instance
	out   *lineWriter // destination for print statements
	units int         // count of evaluated units, for naming REPL input
}

// NewIntp creates an interpreter, configured from conf. Output of print
// statements goes to stdout.
func NewIntp(conf *config.Conf) *Intp {
	return newIntp(conf, os.Stdout)
}

func newIntp(conf *config.Conf, out io.Writer) *Intp {
	lw := &lineWriter{w: out, bol: true}
	opts := append(interp.ConfigOptions(conf), interp.WithOutput(lw))
	return &Intp{
		intp: interp.New(opts...),
		out:  lw,
	}
}

// lineWriter remembers if output is at the beginning of a line.
type lineWriter struct {
	w   io.Writer
	bol bool
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	n, err := lw.w.Write(p)
	if n > 0 {
		lw.bol = p[n-1] == '\n'
	}
	return n, err
}

// newline terminates the current line of output, if any.
func (lw *lineWriter) newline() {
	if !lw.bol {
		lw.Write([]byte{'\n'})
	}
}

// LoadFile runs a script file. An empty filename is ignored.
func (q *Intp) LoadFile(filename string) error {
	if filename == "" {
		return nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open file: %s", filename)
		pterm.Error.Println(err.Error())
		return err
	}
	tracer().Infof("Loading %s", filename)
	_, err = q.run(qlang.NewSource(filename, string(content)))
	q.out.newline()
	return err
}

// REPL reads lines and evaluates them until EOF or ':quit'.
func (q *Intp) REPL() {
	for {
		line, err := q.repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit, _ := q.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input: either a command or program text.
// Returns true if the user requested to quit.
func (q *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		q.units++
		v, err := q.run(qlang.NewSource(fmt.Sprintf("repl#%d", q.units), line))
		if err == nil {
			q.printResult(v)
		}
		return false, err
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":vars":
		q.printVars()
	case ":ast":
		return false, q.printTree(arg)
	case ":help":
		pterm.Info.Println("commands are :vars, :ast <input>, :help, :quit")
	default:
		err := fmt.Errorf("unknown command %s", cmd)
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

// run runs a source text and reports errors together with a source hint.
func (q *Intp) run(src *qlang.Source) (runtime.Value, error) {
	v, err := q.intp.RunSource(src)
	if err != nil {
		q.printError(err)
	}
	return v, err
}

func (q *Intp) printError(err error) {
	var e *qlang.Error
	if errors.As(err, &e) {
		pterm.Error.Println(e.Hint())
		return
	}
	pterm.Error.Println(err.Error())
}

func (q *Intp) printResult(v runtime.Value) {
	if v == nil {
		return
	}
	q.out.newline()
	pterm.Info.Println(runtime.Repr(v))
}

// printVars lists the global variables.
func (q *Intp) printVars() {
	rt := q.intp.Runtime()
	bindings := rt.Frames.Visible(rt.Globals())
	if len(bindings) == 0 {
		pterm.Info.Println("no variables")
		return
	}
	ll := pterm.LeveledList{}
	for _, b := range bindings {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("%s : %s = %s", b.Tag.Name(), b.Tag.Type(), runtime.Repr(b.Tag.Value())),
		})
	}
	tracer().Debugf("\n%s", rt.Frames.Dump(rt.Globals()))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// printTree displays the syntax tree of input on the terminal.
func (q *Intp) printTree(input string) error {
	prog, err := q.intp.Parse(qlang.NewSource("ast", input))
	if err != nil {
		q.printError(err)
		return err
	}
	pterm.DefaultTree.WithRoot(leveledTree(prog)).Render()
	return nil
}

// leveledTree converts a syntax tree to a pterm tree.
func leveledTree(n ast.Node) pterm.TreeNode {
	ll := pterm.LeveledList{}
	for _, l := range ast.Lines(n, ast.WithLocations(false)) {
		ll = append(ll, pterm.LeveledListItem{Level: l.Depth, Text: l.Text})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}
