package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode  Phase = "encode"  // selection to loadout string
	PhaseDecode  Phase = "decode"  // loadout string to selection
	PhaseResolve Phase = "resolve" // name-keyed directives to node IDs
	PhaseCatalog Phase = "catalog" // trait tree loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidCharacter   Kind = "invalid_character"
	KindTooShort           Kind = "too_short"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindUnknownNode        Kind = "unknown_node"
	KindOutOfRange         Kind = "out_of_range"
	KindChoiceRequired     Kind = "choice_required"
	KindInvalidDirective   Kind = "invalid_directive"
	KindInvalidData        Kind = "invalid_data"
	KindRejected           Kind = "rejected"
)

// Error is the structured error type used throughout the library for
// fatal (non-accumulating) failures. Rule violations found by the
// validator are not errors; they are collected into a codec.Report.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Node   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Node != "" {
		b.WriteString(" at node ")
		b.WriteString(e.Node)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Node sets the node the error refers to (display name or ID rendering)
func (b *Builder) Node(node string) *Builder {
	b.err.Node = node
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownNode creates an error for a name or ID with no catalog entry
func UnknownNode(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownNode,
		Node:   name,
		Detail: "no such node in catalog",
	}
}

// OutOfRange creates an error for a rank or entry index outside its field
func OutOfRange(phase Phase, node string, what string, value, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Node:   node,
		Detail: fmt.Sprintf("%s %d out of range (max %d)", what, value, max),
		Value:  value,
	}
}

// ChoiceRequired creates an error for a choice node picked without an entry
func ChoiceRequired(phase Phase, node string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindChoiceRequired,
		Node:   node,
		Detail: "choice node selected without an entry",
	}
}

// InvalidDirective creates an error for an unparseable override directive
func InvalidDirective(directive, reason string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidDirective,
		Detail: fmt.Sprintf("directive %q: %s", directive, reason),
		Value:  directive,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Rejected creates an error carrying validator problems for an operation
// that refuses to produce output
func Rejected(phase Phase, problems []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRejected,
		Detail: fmt.Sprintf("validation failed: %s", strings.Join(problems, "; ")),
		Value:  problems,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
