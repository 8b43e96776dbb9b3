package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	program       string
	task          string
	config        string
	format        string
	output        string
	maxIterations uint
	refine        bool
	logFixpoint   bool
	noColorize    bool
	verbose       bool
}

const (
	_ANALYZE = iota
	_FIXPOINT_LOG
	_AST_TO_DOT
	_LIST_PROGRAMS
)

// CanColorize gates a colorization function on the -no-colorize flag.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"analyze",
	"Compute the final abstract memory of the given program and print it",
}, {
	"fixpoint-log",
	"Like analyze, but also dump every intermediate memory of each loop fixpoint computation",
}, {
	"ast-to-dot",
	"Render the program syntax tree, annotated with the analysis result, to a Graphviz file",
}, {
	"list-programs",
	"List the names and sources of all bundled example programs",
}}

type taskT int

func (t taskT) IsAnalyze() bool      { return int(t) == _ANALYZE }
func (t taskT) IsFixpointLog() bool  { return int(t) == _FIXPOINT_LOG }
func (t taskT) IsAstToDot() bool     { return int(t) == _AST_TO_DOT }
func (t taskT) IsListPrograms() bool { return int(t) == _LIST_PROGRAMS }

var opts = options{}

// Opts exposes the options singleton. Accessor results are only stable
// after ParseArgs has run.
func Opts() *options {
	return &opts
}

func (o *options) Program() string     { return o.program }
func (o *options) Config() string      { return o.config }
func (o *options) Format() string      { return o.format }
func (o *options) Output() string      { return o.output }
func (o *options) MaxIterations() uint { return o.maxIterations }
func (o *options) Refine() bool        { return o.refine }
func (o *options) LogFixpoint() bool   { return o.logFixpoint }
func (o *options) NoColorize() bool    { return o.noColorize }
func (o *options) Verbose() bool       { return o.verbose }

func (o *options) Task() taskT {
	for i, t := range task {
		if t.flag == o.task {
			return taskT(i)
		}
	}

	log.Fatalf("Unknown task: %s\nValid tasks:\n%s", o.task, taskExplanations())
	panic("Unreachable")
}

func taskExplanations() string {
	strs := make([]string, 0, len(task))
	for _, t := range task {
		strs = append(strs, fmt.Sprintf("  %-15s %s", t.flag, t.explanation))
	}
	return strings.Join(strs, "\n")
}

// ParseArgs declares and parses the command line flags, then layers in
// any YAML configuration file for flags left at their defaults.
func ParseArgs() {
	flag.StringVar(&opts.task, "task", "analyze",
		"Which task to perform. One of:\n"+taskExplanations())
	flag.StringVar(&opts.program, "program", "",
		"Name of the bundled example program to analyze.")
	flag.StringVar(&opts.config, "config", "",
		"Path to a YAML configuration file. Explicit flags take precedence.")
	flag.StringVar(&opts.format, "format", "png",
		"Image format for the ast-to-dot task.")
	flag.StringVar(&opts.output, "output", "",
		"Output file prefix for the ast-to-dot task.")
	flag.UintVar(&opts.maxIterations, "max-iterations", 0,
		"Bound on the number of iterations per fixpoint computation. 0 disables the bound.")
	flag.BoolVar(&opts.refine, "refine", false,
		"Refine abstract memories under branch and loop conditions.")
	flag.BoolVar(&opts.logFixpoint, "log-fixpoint", false,
		"Log every intermediate memory of each fixpoint computation.")
	flag.BoolVar(&opts.noColorize, "no-colorize", false,
		"Disable colorization of printed lattice elements.")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable verbose printing.")

	flag.Parse()

	if opts.config != "" {
		conf, err := LoadConfig(opts.config)
		if err != nil {
			log.Fatalln("Failed to load configuration file:", err)
		}
		conf.apply(&opts)
	}
}
