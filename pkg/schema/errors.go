package schema

import (
	"fmt"
	"strings"
)

// SchemaError reports a malformed schema definition. It is returned by Load
// and is a deployment/programmer error: a registry that fails to load should
// halt startup.
type SchemaError struct {
	Path   string // dotted path of the offending definition node
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema %s: %s", e.Path, e.Reason)
}

// ErrorKind classifies a single validation failure.
type ErrorKind string

const (
	MissingRequired ErrorKind = "missing_required"
	TypeMismatch    ErrorKind = "type_mismatch"
	EnumViolation   ErrorKind = "enum_violation"
	UnknownKey      ErrorKind = "unknown_key"
	PatternMismatch ErrorKind = "pattern_mismatch"
)

// ValidationError is a single recorded violation, tagged with the dotted
// field path it occurred at.
type ValidationError struct {
	Path   string
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Detail)
}

// Errors aggregates every violation found in one validation pass, in
// deterministic path order. It is the error value returned by Validate so a
// caller can report all problems in a single edit-validate cycle.
type Errors struct {
	Violations []*ValidationError
}

func (e *Errors) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.Error())
	}
	return b.String()
}

// Violations returns the individual validation errors if err came from
// Validate, or nil for any other error.
func Violations(err error) []*ValidationError {
	if agg, ok := err.(*Errors); ok {
		return agg.Violations
	}
	return nil
}
