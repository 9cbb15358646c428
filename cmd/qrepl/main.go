package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/qikcik/qlang/config"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracerKeys are the keys of the tracers of all packages.
var tracerKeys = []string{
	"qlang.scanner",
	"qlang.ast",
	"qlang.parser",
	"qlang.runtime",
	"qlang.interp",
	"qlang.config",
	"qlang.repl",
}

// main() starts an interactive CLI ("Q.REPL"), where users may enter
// statements. Q.REPL will run them and print out the result.
//
func main() {
	initDisplay()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	conffile := flag.String("config", "", "Configuration file (YAML)")
	initf := flag.String("init", "", "Initial load")
	batch := flag.Bool("batch", false, "Run scripts and exit")
	flag.Parse()
	//
	// set up configuration and tracing
	conf := config.New()
	if *conffile != "" {
		var err error
		if conf, err = config.Load(*conffile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	conf.SetInteractive(!*batch)
	if err := setupTracing(conf, *tlevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer trace2go.Teardown()
	tracer().Infof("Trace level is %s", tracer().GetTraceLevel())
	//
	intp := NewIntp(conf)
	if err := intp.LoadFile(*initf); err != nil {
		os.Exit(1)
	}
	for _, script := range flag.Args() {
		if err := intp.LoadFile(script); err != nil {
			os.Exit(1)
		}
	}
	if *batch {
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to Q.REPL") // colored welcome message
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      conf.GetString("repl.prompt"),
		HistoryFile: conf.GetString("repl.history"),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing configures schuko tracing from the configuration, with the
// Go standard logger as the tracing backend. A non-empty level overrides
// the configured trace level for all tracers.
func setupTracing(conf *config.Conf, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if level != "" {
		conf.Set("tracelevel.root", level)
	}
	root := conf.GetString("tracelevel.root")
	for _, key := range tracerKeys {
		if level != "" || !conf.IsSet("tracelevel."+key) {
			conf.Set("tracelevel."+key, root)
		}
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
