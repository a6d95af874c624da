package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Kind classifies a diagnostic independently of its message text
type Kind int

const (
	KindNone Kind = iota
	Syntax
	DuplicateClass
	DuplicateMember
	UnknownSuperclass
	CyclicInheritance
	IncompatibleOverride
	UnknownType
	UndeclaredIdentifier
	DuplicateDeclaration
	TypeMismatch
	InvalidOperandTypes
	InvalidAssignmentTarget
	ArgumentCountMismatch
	ArgumentTypeMismatch
	InvalidIndexing
	IndexTypeMismatch
	InvalidThisUsage
	ConditionTypeMismatch
	ReturnTypeMismatch
	BreakOutsideLoop
	InvalidLiteral
	InvalidMemberAccess
	InvalidPrintArgument
	Lint
)

var kindNames = [...]string{
	KindNone:                "None",
	Syntax:                  "Syntax",
	DuplicateClass:          "DuplicateClass",
	DuplicateMember:         "DuplicateMember",
	UnknownSuperclass:       "UnknownSuperclass",
	CyclicInheritance:       "CyclicInheritance",
	IncompatibleOverride:    "IncompatibleOverride",
	UnknownType:             "UnknownType",
	UndeclaredIdentifier:    "UndeclaredIdentifier",
	DuplicateDeclaration:    "DuplicateDeclaration",
	TypeMismatch:            "TypeMismatch",
	InvalidOperandTypes:     "InvalidOperandTypes",
	InvalidAssignmentTarget: "InvalidAssignmentTarget",
	ArgumentCountMismatch:   "ArgumentCountMismatch",
	ArgumentTypeMismatch:    "ArgumentTypeMismatch",
	InvalidIndexing:         "InvalidIndexing",
	IndexTypeMismatch:       "IndexTypeMismatch",
	InvalidThisUsage:        "InvalidThisUsage",
	ConditionTypeMismatch:   "ConditionTypeMismatch",
	ReturnTypeMismatch:      "ReturnTypeMismatch",
	BreakOutsideLoop:        "BreakOutsideLoop",
	InvalidLiteral:          "InvalidLiteral",
	InvalidMemberAccess:     "InvalidMemberAccess",
	InvalidPrintArgument:    "InvalidPrintArgument",
	Lint:                    "Lint",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic represents a single compiler error or warning
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Line     int
	Column   int
	File     string // optional file path
	Hint     string // optional suggestion
}

// Diagnostics is an ordered, append-only collection of diagnostic messages.
// It is not safe for concurrent use; parallel producers keep their own
// collection and Append them in a fixed order.
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Report adds an error diagnostic of the given kind
func (d *Diagnostics) Report(kind Kind, line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// Errorf adds a syntax error diagnostic with formatted message
func (d *Diagnostics) Errorf(line, col int, format string, args ...interface{}) {
	d.Report(Syntax, line, col, format, args...)
}

// Warningf adds a warning diagnostic with formatted message
func (d *Diagnostics) Warningf(line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Kind:     Lint,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// ReportWithHint adds an error diagnostic of the given kind with a hint
func (d *Diagnostics) ReportWithHint(kind Kind, line, col int, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Kind:     kind,
		Message:  msg,
		Line:     line,
		Column:   col,
		Hint:     hint,
	})
}

// WarningWithHint adds a warning diagnostic with an optional hint
func (d *Diagnostics) WarningWithHint(line, col int, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Kind:     Lint,
		Message:  msg,
		Line:     line,
		Column:   col,
		Hint:     hint,
	})
}

// Append adds every diagnostic of other, in order, to d
func (d *Diagnostics) Append(other *Diagnostics) {
	if other == nil {
		return
	}
	d.items = append(d.items, other.items...)
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	errors := make([]Diagnostic, 0)
	for _, item := range d.items {
		if item.Severity == Error {
			errors = append(errors, item)
		}
	}
	return errors
}

// OfKind returns the diagnostics of one kind, in detection order
func (d *Diagnostics) OfKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// All returns all diagnostics regardless of severity
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// ErrorCount returns the number of error-level diagnostics
func (d *Diagnostics) ErrorCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Error {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level diagnostics
func (d *Diagnostics) WarningCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Warning {
			count++
		}
	}
	return count
}

// Format returns human-readable error messages
// Output format:
//
//	error[filename:3:10]: 'x' is not defined
//	  hint: did you mean 'y'?
//	warning[filename:5:1]: unused variable 'z'
func (d *Diagnostics) Format(filename string) string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		fileToUse := filename
		if item.File != "" {
			fileToUse = item.File
		}

		builder.WriteString(fmt.Sprintf("%s[%s:%d:%d]: %s",
			item.Severity.String(),
			fileToUse,
			item.Line,
			item.Column,
			item.Message,
		))

		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}

		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
