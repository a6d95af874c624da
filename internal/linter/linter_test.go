package linter

import (
	"strings"
	"testing"

	"github.com/lhaig/mjc/internal/diagnostic"
	"github.com/lhaig/mjc/internal/parser"
)

func parseAndLint(t *testing.T, source string) []string {
	t.Helper()
	p := parser.New(source)
	prog := p.Parse()

	if p.Diagnostics().HasErrors() {
		t.Fatalf("Parser errors: %s", p.Diagnostics().Format("test"))
	}

	diag := Lint(prog)
	if diag.HasErrors() {
		t.Fatalf("Lint must only warn, got: %s", diag.Format("test"))
	}
	var warnings []string
	for _, d := range diag.All() {
		if d.Kind != diagnostic.Lint {
			t.Errorf("expected lint kind, got %s", d.Kind)
		}
		warnings = append(warnings, d.Message)
	}
	return warnings
}

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// --- Empty method body ---

func TestEmptyMethodBody(t *testing.T) {
	source := `class Greeter {
    public void noop() { }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'Greeter.noop' has an empty body") {
		t.Errorf("Expected empty body warning, got: %v", warnings)
	}
}

func TestEmptyMainNoWarning(t *testing.T) {
	source := `class Main {
    public static void main(String[] args) { }
}`
	warnings := parseAndLint(t, source)
	if len(warnings) != 0 {
		t.Errorf("Did not expect warnings, got: %v", warnings)
	}
}

// --- Naming ---

func TestMethodNamingCamelCase(t *testing.T) {
	for _, name := range []string{"BadName", "bad_name"} {
		source := "class Tool {\n    public int " + name + "() { return 0; }\n}"
		warnings := parseAndLint(t, source)
		if !containsWarning(warnings, "camelCase") {
			t.Errorf("Expected camelCase warning for %s, got: %v", name, warnings)
		}
	}
}

func TestClassNamingPascalCase(t *testing.T) {
	source := `class bank_account {
    public int balance() { return 0; }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "PascalCase") {
		t.Errorf("Expected PascalCase warning, got: %v", warnings)
	}
}

func TestNamingCorrectNoWarning(t *testing.T) {
	source := `class BankAccount {
    public int getBalance() { return 0; }
}`
	warnings := parseAndLint(t, source)
	if len(warnings) != 0 {
		t.Errorf("Did not expect warnings, got: %v", warnings)
	}
}

// --- Unused locals and parameters ---

func TestUnusedVariable(t *testing.T) {
	source := `class Calc {
    public int run() {
        int unused = 1;
        int x = 2;
        return x;
    }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'unused' is declared but never used") {
		t.Errorf("Expected unused variable warning, got: %v", warnings)
	}
	if containsWarning(warnings, "'x' is declared but never used") {
		t.Errorf("Did not expect warning for x, got: %v", warnings)
	}
}

func TestWriteOnlyVariable(t *testing.T) {
	source := `class Calc {
    public int run() {
        int sink = 0;
        sink = 5;
        return 0;
    }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'sink' is declared but never used") {
		t.Errorf("Expected write-only variable to be reported, got: %v", warnings)
	}
}

func TestNestedDeclarations(t *testing.T) {
	source := `class Calc {
    public int run(int n) {
        int[] buf = new int[n];
        for (int i = 0; i < n; i = i + 1) {
            if (true) { int deep = 1; }
        }
        buf[0] = 1;
        return 0;
    }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'deep' is declared but never used") {
		t.Errorf("Expected nested unused variable warning, got: %v", warnings)
	}
	for _, name := range []string{"'i'", "'buf'", "'n'"} {
		if containsWarning(warnings, name) {
			t.Errorf("Did not expect a warning for %s, got: %v", name, warnings)
		}
	}
}

func TestUnusedParameter(t *testing.T) {
	source := `class Calc {
    public int pick(int a, int b) { return a; }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "parameter 'b' in 'Calc.pick' is never used") {
		t.Errorf("Expected unused parameter warning, got: %v", warnings)
	}
	if containsWarning(warnings, "parameter 'a'") {
		t.Errorf("Did not expect warning for a, got: %v", warnings)
	}
}

func TestMainParameterNotReported(t *testing.T) {
	source := `class Main {
    public static void main(String[] args) { print(1); }
}`
	warnings := parseAndLint(t, source)
	if containsWarning(warnings, "args") {
		t.Errorf("Did not expect a warning for main's parameter, got: %v", warnings)
	}
}

// --- Shadowing ---

func TestLocalShadowsField(t *testing.T) {
	source := `class Base {
    int size;
}
class Box extends Base {
    int width;
    public int area(int width) {
        int size = 2;
        return width * size;
    }
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'width' shadows a field of 'Box'") {
		t.Errorf("Expected parameter shadowing warning, got: %v", warnings)
	}
	if !containsWarning(warnings, "'size' shadows a field inherited from 'Base'") {
		t.Errorf("Expected inherited field shadowing warning, got: %v", warnings)
	}
}

func TestShadowingTerminatesOnCycle(t *testing.T) {
	source := `class A extends B {
    public int f(int x) { return x; }
}
class B extends A {
    int x;
}`
	warnings := parseAndLint(t, source)
	if !containsWarning(warnings, "'x' shadows a field inherited from 'B'") {
		t.Errorf("Expected inherited shadowing warning, got: %v", warnings)
	}
}

// --- Naming helpers ---

func TestIsCamelCase(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"getValue", true},
		{"run", true},
		{"x2", true},
		{"GetValue", false},
		{"get_value", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isCamelCase(tt.name); got != tt.want {
			t.Errorf("isCamelCase(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsPascalCase(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"BankAccount", true},
		{"A", true},
		{"bankAccount", false},
		{"Bank_Account", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isPascalCase(tt.name); got != tt.want {
			t.Errorf("isPascalCase(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
