package compiler

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lhaig/mjc/internal/ast"
	"github.com/lhaig/mjc/internal/checker"
	"github.com/lhaig/mjc/internal/diagnostic"
	"github.com/lhaig/mjc/internal/linter"
	"github.com/lhaig/mjc/internal/parser"
)

// Result holds the output of an analysis run
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Program     *ast.Program
	Check       *checker.Result // nil when parsing failed
}

// OK reports whether the source is free of errors. Code generation must
// not run otherwise.
func (r *Result) OK() bool {
	return r.Diagnostics == nil || !r.Diagnostics.HasErrors()
}

// Analyze runs parse -> check. Checking is skipped when parsing fails.
func Analyze(source string) *Result {
	return AnalyzeWithConfig(source, checker.Config{})
}

// AnalyzeWithConfig is Analyze with explicit checker settings
func AnalyzeWithConfig(source string, cfg checker.Config) *Result {
	res := &Result{}

	p := parser.New(source)
	res.Program = p.Parse()
	if p.Diagnostics().HasErrors() {
		res.Diagnostics = p.Diagnostics()
		return res
	}

	res.Check = checker.CheckWithConfig(res.Program, cfg)
	res.Diagnostics = res.Check.Diagnostics
	return res
}

// Check runs parse + check and returns only the diagnostics
func Check(source string) *diagnostic.Diagnostics {
	return Analyze(source).Diagnostics
}

// Lint parses source and runs the lint rules. Parse errors are returned
// instead of warnings.
func Lint(source string) *diagnostic.Diagnostics {
	p := parser.New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		return p.Diagnostics()
	}
	return linter.Lint(prog)
}

// CheckFile reads and analyzes the file at path. The error is non-nil only
// when the file cannot be read.
func CheckFile(path string, cfg checker.Config) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return AnalyzeWithConfig(string(source), cfg), nil
}

// FormatSymbols renders the class registry: every class with its resolved
// superclass, fields and methods, inherited members marked with their
// declaring class.
func FormatSymbols(reg *checker.Registry) string {
	var sb strings.Builder
	for _, cls := range reg.Classes() {
		sb.WriteString("class " + cls.Name)
		if cls.Super != "" {
			sb.WriteString(" extends " + cls.Super)
		}
		if cls.Cyclic {
			sb.WriteString(" (cyclic)")
		}
		sb.WriteString("\n")

		fieldNames := maps.Keys(cls.AllFields)
		slices.Sort(fieldNames)
		for _, name := range fieldNames {
			f := cls.AllFields[name]
			fmt.Fprintf(&sb, "  field %s %s%s\n", f.Type, f.Name, inheritedFrom(cls, f.Class))
		}
		if cls.Main != nil {
			sb.WriteString("  static void main(String[])\n")
		}
		methodNames := maps.Keys(cls.AllMethods)
		slices.Sort(methodNames)
		for _, name := range methodNames {
			m := cls.AllMethods[name]
			fmt.Fprintf(&sb, "  method %s%s\n", m.Signature(), inheritedFrom(cls, m.Class))
		}
	}
	return sb.String()
}

func inheritedFrom(cls *checker.ClassDescriptor, owner string) string {
	if owner == cls.Name {
		return ""
	}
	return " (from " + owner + ")"
}
