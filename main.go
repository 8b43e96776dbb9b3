package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	ai "github.com/cs-au-dk/absign/analysis/absint"
	L "github.com/cs-au-dk/absign/analysis/lattice"
	"github.com/cs-au-dk/absign/graph"
	tu "github.com/cs-au-dk/absign/testutil"
	"github.com/cs-au-dk/absign/utils"
	"github.com/cs-au-dk/absign/utils/dot"

	"github.com/fatih/color"
)

var opts = utils.Opts()

func main() {
	utils.ParseArgs()
	task := opts.Task()

	if task.IsListPrograms() {
		for _, p := range tu.Programs() {
			fmt.Printf("%s\n    %s\n", color.CyanString(p.Name), p.Body)
		}
		return
	}

	prog := selectProgram()
	ctxt := makeCtxt()

	utils.VerbosePrint("Analyzing %s\n", prog.Name)
	mem, err := ctxt.Analyze(prog.Body)
	if err != nil {
		log.Fatalf("Analysis of %s failed: %v", prog.Name, err)
	}

	switch {
	case task.IsAnalyze() || task.IsFixpointLog():
		fmt.Printf("Program %s:\n    %s\n", color.CyanString(prog.Name), prog.Body)
		fmt.Println("Analysis result:")
		fmt.Println(mem)

	case task.IsAstToDot():
		g := graph.ASTGraph(prog.Name, prog.Body, mem)

		var buf bytes.Buffer
		if err := g.WriteDot(&buf); err != nil {
			log.Fatalln("Failed to render dot graph:", err)
		}

		outfname := opts.Output()
		if outfname == "" {
			outfname = prog.Name
		}
		img, err := dot.DotToImage(outfname, opts.Format(), buf.Bytes())
		if err != nil {
			log.Fatalln("Failed to render image:", err)
		}
		log.Println("Exported analysis graph to", img)
	}
}

// selectProgram resolves the -program flag against the bundled fixtures.
func selectProgram() tu.Program {
	name := opts.Program()
	if name == "" {
		log.Println("No program given. Choose one with -program; available programs:")
		for _, p := range tu.Programs() {
			fmt.Println("   ", p.Name)
		}
		os.Exit(1)
	}

	prog, found := tu.ProgramNamed(name)
	if !found {
		log.Fatalf("Unknown program: %s (use -task list-programs to see all)", name)
	}
	return prog
}

// makeCtxt assembles the analysis context from the command line options.
func makeCtxt() ai.AnalysisCtxt {
	ctxt := ai.DefaultCtxt()
	ctxt.MaxIterations = opts.MaxIterations()

	if opts.Refine() {
		ctxt.Refinement = ai.MeetRefinement{}
	}

	if opts.LogFixpoint() || opts.Task().IsFixpointLog() {
		ctxt.Observer = func(iteration int, mem L.Memory) {
			log.Printf("Fixpoint iteration %d: %s", iteration, mem)
		}
	}

	return ctxt
}
