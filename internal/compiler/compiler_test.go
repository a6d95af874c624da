package compiler

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lhaig/mjc/internal/checker"
	"github.com/lhaig/mjc/internal/diagnostic"
)

const validProgram = `class Main {
    public static void main(String[] args) {
        Counter c = new Counter();
        print(c.next());
    }
}
class Base {
    int count;
}
class Counter extends Base {
    public int next() {
        count = count + 1;
        return count;
    }
}`

func TestAnalyzeValidProgram(t *testing.T) {
	res := Analyze(validProgram)
	if !res.OK() {
		t.Fatalf("Expected no errors, got:\n%s", res.Diagnostics.Format("test"))
	}
	if res.Check == nil {
		t.Fatal("Expected checker results")
	}
	if _, ok := res.Check.Registry.Lookup("Counter"); !ok {
		t.Error("Expected Counter in the registry")
	}
	if len(res.Program.Classes) != 3 {
		t.Errorf("Expected 3 classes, got %d", len(res.Program.Classes))
	}
}

func TestAnalyzeParseError(t *testing.T) {
	res := Analyze(`class Main { int x }`)
	if res.OK() {
		t.Fatal("Expected parse errors")
	}
	if res.Check != nil {
		t.Error("Expected checking to be skipped after a parse error")
	}
	for _, d := range res.Diagnostics.Errors() {
		if d.Kind != diagnostic.Syntax {
			t.Errorf("Expected only syntax errors, got %s", d.Kind)
		}
	}
}

func TestCheckInvalidProgram(t *testing.T) {
	source := `class Main {
    public static void main(String[] args) {
        int x;
        x = true;
    }
}`
	diags := Check(source)
	if !diags.HasErrors() {
		t.Fatal("Expected check errors")
	}
	out := diags.Format("prog.java")
	if !strings.Contains(out, "error[prog.java:4:11]: Cannot assign boolean to int") {
		t.Errorf("Unexpected formatted output:\n%s", out)
	}
}

func TestAnalyzeWithWorkers(t *testing.T) {
	source := validProgram + `
class Broken extends Missing { }
class Other { public int f() { return true; } }`

	seq := AnalyzeWithConfig(source, checker.Config{})
	par := AnalyzeWithConfig(source, checker.Config{Workers: 3})
	if seq.Diagnostics.Format("t") != par.Diagnostics.Format("t") {
		t.Errorf("parallel output differs:\n%s\nvs\n%s", seq.Diagnostics.Format("t"), par.Diagnostics.Format("t"))
	}
	if seq.Diagnostics.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got:\n%s", seq.Diagnostics.Format("t"))
	}
}

func TestLint(t *testing.T) {
	diags := Lint(`class Main {
    public static void main(String[] args) {
        int unused = 0;
    }
}`)
	if diags.HasErrors() {
		t.Fatalf("Lint must not report errors: %s", diags.Format("test"))
	}
	if diags.WarningCount() != 1 {
		t.Errorf("Expected one warning, got:\n%s", diags.Format("test"))
	}

	parseErrs := Lint(`class {`)
	if !parseErrs.HasErrors() {
		t.Error("Expected parse errors to be returned")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(path, []byte(validProgram), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := CheckFile(path, checker.Config{Workers: 2})
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !res.OK() {
		t.Errorf("Expected no errors, got:\n%s", res.Diagnostics.Format(path))
	}
}

func TestCheckFileMissing(t *testing.T) {
	_, err := CheckFile(filepath.Join(t.TempDir(), "nope.java"), checker.Config{})
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}
}

func TestFormatSymbols(t *testing.T) {
	res := Analyze(validProgram)
	if !res.OK() {
		t.Fatalf("unexpected errors:\n%s", res.Diagnostics.Format("test"))
	}
	got := FormatSymbols(res.Check.Registry)
	want := `class Main
  static void main(String[])
class Base
  field int count
class Counter extends Base
  field int count (from Base)
  method int next()
`
	if got != want {
		t.Errorf("unexpected symbols:\n%s\nwant:\n%s", got, want)
	}
}
