package diagnostic

import (
	"strings"
	"testing"
)

func TestReport_KeepsDetectionOrder(t *testing.T) {
	d := New()
	d.Report(TypeMismatch, 3, 5, "Cannot assign %s to %s", "boolean", "int")
	d.Report(BreakOutsideLoop, 1, 1, "Break statement must be inside a loop")
	d.Warningf(7, 2, "unused variable '%s'", "z")

	all := d.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(all))
	}
	if all[0].Kind != TypeMismatch || all[1].Kind != BreakOutsideLoop || all[2].Kind != Lint {
		t.Errorf("unexpected kind order: %v, %v, %v", all[0].Kind, all[1].Kind, all[2].Kind)
	}
	if all[0].Message != "Cannot assign boolean to int" {
		t.Errorf("unexpected message %q", all[0].Message)
	}
	if d.ErrorCount() != 2 || d.WarningCount() != 1 || d.Count() != 3 {
		t.Errorf("unexpected counts: errors=%d warnings=%d total=%d",
			d.ErrorCount(), d.WarningCount(), d.Count())
	}
}

func TestHasErrors_WarningsOnly(t *testing.T) {
	d := New()
	d.Warningf(1, 1, "style")
	if d.HasErrors() {
		t.Error("warnings alone must not count as errors")
	}
	d.Errorf(2, 1, "expected %s", "SEMICOLON")
	if !d.HasErrors() {
		t.Error("expected HasErrors after Errorf")
	}
	if got := d.Errors()[0].Kind; got != Syntax {
		t.Errorf("Errorf should report Syntax, got %s", got)
	}
}

func TestAppend(t *testing.T) {
	a := New()
	a.Report(DuplicateClass, 1, 1, "first")
	b := New()
	b.Report(UnknownType, 2, 1, "second")
	b.Report(UnknownType, 3, 1, "third")

	a.Append(b)
	a.Append(nil)

	if a.Count() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", a.Count())
	}
	if len(a.OfKind(UnknownType)) != 2 {
		t.Errorf("expected 2 UnknownType diagnostics, got %d", len(a.OfKind(UnknownType)))
	}
	if a.All()[2].Message != "third" {
		t.Errorf("appended diagnostics out of order: %q", a.All()[2].Message)
	}
}

func TestFormat(t *testing.T) {
	d := New()
	d.ReportWithHint(UndeclaredIdentifier, 3, 10, "'x' is not defined", "did you mean 'y'?")
	d.WarningWithHint(5, 1, "unused variable 'z'", "")

	got := d.Format("Main.java")
	want := "error[Main.java:3:10]: 'x' is not defined\n  hint: did you mean 'y'?\nwarning[Main.java:5:1]: unused variable 'z'"
	if got != want {
		t.Errorf("Format mismatch.\n got: %q\nwant: %q", got, want)
	}

	if New().Format("x") != "" {
		t.Error("empty collection should format to empty string")
	}
}

func TestKind_String(t *testing.T) {
	if CyclicInheritance.String() != "CyclicInheritance" {
		t.Errorf("got %s", CyclicInheritance.String())
	}
	if !strings.HasPrefix(Kind(999).String(), "Kind(") {
		t.Errorf("unknown kind should print numerically, got %s", Kind(999).String())
	}
}
