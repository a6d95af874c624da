package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/checker"
	"github.com/lhaig/mjc/internal/compiler"
	"github.com/lhaig/mjc/internal/parser"
)

const usage = `mjc - MiniJava semantic analyzer

Usage:
  mjc check [--workers N] <file.java>     Parse and type-check
  mjc ast <file.java>                     Print the syntax tree
  mjc symbols [--workers N] <file.java>   Print the resolved class registry
  mjc lint [--werror] <file.java>         Run lint checks for style issues

Options:
  --workers N    Check class bodies on N goroutines (default 1)
  --werror       Exit with status 1 when lint reports warnings

Examples:
  mjc check Factorial.java
  mjc check --workers 8 BigProgram.java
  mjc lint --werror Factorial.java
`

// options holds the flags shared by every command
type options struct {
	filePath string
	workers  int
	werror   bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "check":
		handleCheck(parseOptions(os.Args[2:]))
	case "ast":
		handleAST(parseOptions(os.Args[2:]))
	case "symbols":
		handleSymbols(parseOptions(os.Args[2:]))
	case "lint":
		handleLint(parseOptions(os.Args[2:]))
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func parseOptions(args []string) options {
	opts := options{workers: 1}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--werror":
			opts.werror = true
		case "--workers":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --workers needs a value")
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "Error: invalid worker count %q\n", args[i])
				os.Exit(1)
			}
			opts.workers = n
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				os.Exit(1)
			}
			opts.filePath = arg
		}
	}

	if opts.filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}
	return opts
}

// analyze checks the input file, exiting on read or analysis errors
func analyze(opts options) *compiler.Result {
	res, err := compiler.CheckFile(opts.filePath, checker.Config{Workers: opts.workers})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if !res.OK() {
		fmt.Fprintln(os.Stderr, res.Diagnostics.Format(opts.filePath))
		fmt.Fprintf(os.Stderr, "%d error(s) found.\n", res.Diagnostics.ErrorCount())
		os.Exit(1)
	}
	return res
}

func handleCheck(opts options) {
	analyze(opts)
	fmt.Println("No errors found.")
}

func handleSymbols(opts options) {
	res := analyze(opts)
	fmt.Print(compiler.FormatSymbols(res.Check.Registry))
}

func handleAST(opts options) {
	source, err := os.ReadFile(opts.filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		fmt.Fprintln(os.Stderr, p.Diagnostics().Format(opts.filePath))
		os.Exit(1)
	}
	fmt.Print(ast.Print(prog))
}

func handleLint(opts options) {
	source, err := os.ReadFile(opts.filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	diag := compiler.Lint(string(source))
	if diag.HasErrors() {
		fmt.Fprintln(os.Stderr, diag.Format(opts.filePath))
		os.Exit(1)
	}

	if diag.Count() == 0 {
		fmt.Println("No lint warnings.")
		return
	}

	fmt.Print(diag.Format(opts.filePath))
	fmt.Println()
	fmt.Printf("%d warning(s) found.\n", diag.Count())
	if opts.werror {
		os.Exit(1)
	}
}
