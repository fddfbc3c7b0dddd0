// Command riftc is the compiler driver: it wires the lexer, parser,
// checker, semantic lowering, and optimizer stages into one pipeline
// run per input file and reports diagnostics to stderr.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/1cbyc/rust-compiler/internal/checker"
	"github.com/1cbyc/rust-compiler/internal/codegen"
	"github.com/1cbyc/rust-compiler/internal/config"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/ir"
	"github.com/1cbyc/rust-compiler/internal/lexer"
	"github.com/1cbyc/rust-compiler/internal/optimizer"
	"github.com/1cbyc/rust-compiler/internal/parser"
	"github.com/1cbyc/rust-compiler/internal/pipeline"
	"github.com/1cbyc/rust-compiler/internal/semantics"
	"github.com/1cbyc/rust-compiler/internal/stdlib"
	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// exit codes: 0 a clean compile, 1 a compile that reported an Error
// or Fatal diagnostic, 2 a driver-level invocation problem (bad flag,
// unreadable file).
const (
	exitOK            = 0
	exitCompileErrors = 1
	exitInvocation    = 2
)

var (
	flagEmit     string
	flagMaxError int
	flagColor    string
	flagConfig   string
)

func main() {
	root := &cobra.Command{
		Use:   "riftc",
		Short: "riftc compiles a single source file through the full pipeline",
	}

	compileCmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Lex, parse, check, lower, and optimize a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], cmd.Flags().Changed("emit"), cmd.Flags().Changed("color"))
		},
	}
	compileCmd.Flags().StringVar(&flagEmit, "emit", "ir", "output to print: ir or asm")
	compileCmd.Flags().IntVar(&flagMaxError, "max-errors", 0, "diagnostic cap (0 uses the project/default cap)")
	compileCmd.Flags().StringVar(&flagColor, "color", "auto", "color mode: auto, always, never")
	compileCmd.Flags().StringVar(&flagConfig, "config", "", "path to a riftc.yaml project config")

	root.AddCommand(compileCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInvocation)
	}
}

func runCompile(path string, emitSet, colorSet bool) error {
	if flagEmit != "ir" && flagEmit != "asm" {
		fmt.Fprintf(os.Stderr, "invalid --emit value %q: must be ir or asm\n", flagEmit)
		os.Exit(exitInvocation)
	}
	if flagColor != "auto" && flagColor != "always" && flagColor != "never" {
		fmt.Fprintf(os.Stderr, "invalid --color value %q: must be auto, always, or never\n", flagColor)
		os.Exit(exitInvocation)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		os.Exit(exitInvocation)
	}

	cfg := config.DefaultProjectConfig()
	if flagConfig != "" {
		cfg, err = config.LoadProjectConfig(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot load config %s: %v\n", flagConfig, err)
			os.Exit(exitInvocation)
		}
	}

	maxErrors := cfg.MaxErrors
	if flagMaxError > 0 {
		maxErrors = flagMaxError
	}

	// The project config's emit and color values apply when the
	// matching flag was not given; an unrecognized emit value is ignored.
	if !emitSet && (cfg.Emit == "ir" || cfg.Emit == "asm") {
		flagEmit = cfg.Emit
	}
	if !colorSet && cfg.Color != "" {
		flagColor = cfg.Color
	}

	useColor := resolveColor(flagColor)

	start := time.Now()

	ctx := &pipeline.PipelineContext{
		FilePath: path,
		Source:   string(source),
		Sink:     diagnostics.NewSink(maxErrors),
		Universe: typesystem.Init(),
	}

	macros := stdlib.NewMacroExpander()
	ctx.Source = macros.Expand(ctx.Source)

	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&checker.Processor{},
		&semantics.Processor{},
		&optimizer.Processor{},
	)
	ctx = p.Run(ctx)

	if cfg.WarningsAsErrors {
		ctx.Sink.EscalateWarnings()
	}

	elapsed := time.Since(start)

	for _, msg := range ctx.Sink.Messages() {
		printDiagnostic(msg, ctx.Source, useColor)
	}

	if ctx.IR != nil {
		switch flagEmit {
		case "ir":
			printIRSummary(ctx, elapsed)
		case "asm":
			fmt.Println(codegen.Generate(ctx.IR))
		}
	}

	if ctx.Sink.HasErrors() {
		os.Exit(exitCompileErrors)
	}
	return nil
}

func resolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

func printDiagnostic(msg *diagnostics.Message, source string, color bool) {
	text := diagnostics.Format(msg, source)
	if color {
		text = colorize(msg.Severity, text)
	}
	fmt.Fprintln(os.Stderr, text)
}

func colorize(sev diagnostics.Severity, text string) string {
	code := "0"
	switch sev {
	case diagnostics.Fatal, diagnostics.Error:
		code = "31"
	case diagnostics.Warning:
		code = "33"
	case diagnostics.Info:
		code = "36"
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func printIRSummary(ctx *pipeline.PipelineContext, elapsed time.Duration) {
	rendered := ir.Print(ctx.IR)
	nodeCount := countIRNodes(ctx.IR)

	fmt.Println(rendered)
	fmt.Fprintf(os.Stderr, "\ncompiled %s in %s (%s IR nodes, %s)\n",
		ctx.FilePath, elapsed.Round(time.Microsecond), humanize.Comma(int64(nodeCount)),
		humanize.Bytes(uint64(len(rendered))))

	for _, stat := range ctx.OptimizerStats {
		fmt.Fprintf(os.Stderr, "  %-24s %d node(s) changed\n", stat.Name, stat.NodesChanged)
	}
}

func countIRNodes(root ir.Node) int {
	count := 0
	ir.Walk(root, func(ir.Node) { count++ })
	return count
}
