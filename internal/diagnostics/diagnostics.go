// Package diagnostics is the typed error taxonomy shared across the
// compiler's stages: a phase tag, an error code, a token-anchored
// location, and a uniform Error() rendering.
package diagnostics

import (
	"fmt"

	"github.com/krajzeg/september/internal/token"
)

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseCompile  Phase = "compile"
	PhaseIO       Phase = "io"
)

// Code is a short, stable error identifier, grouped by phase prefix.
type Code string

const (
	// Lexer
	ErrUnrecognizedInput Code = "L001"
	ErrUnmatchedCloser   Code = "L002"
	ErrMismatchedCloser  Code = "L003"

	// Parser
	ErrUnexpectedToken     Code = "P001"
	ErrBadOperatorFlag     Code = "P002"
	ErrAssignNonIdentifier Code = "P003"
	ErrBadComplexReceiver  Code = "P004"
	ErrExpectedToken       Code = "P005"

	// Compiler
	ErrInternal Code = "C001"

	// IO (external-collaborator surface, e.g. file read/write failures)
	ErrIO Code = "I001"
)

var templates = map[Code]string{
	ErrUnrecognizedInput:   "unrecognized input %q",
	ErrUnmatchedCloser:     "unmatched closing bracket %q",
	ErrMismatchedCloser:    "mismatched brackets: expected %q, got %q",
	ErrUnexpectedToken:     "unexpected token %s at start of expression",
	ErrBadOperatorFlag:     "unrecognized operator flag %q in parameter list",
	ErrAssignNonIdentifier: ":= requires an identifier on the left, got %s",
	ErrBadComplexReceiver:  "complex call receiver must be an identifier, got %s",
	ErrExpectedToken:       "expected %s, got %s",
	ErrInternal:            "internal error: %s",
	ErrIO:                  "%s",
}

// Error is the uniform diagnostic type every stage returns.
type Error struct {
	Code  Code
	Phase Phase
	Loc   token.Location
	Args  []any
}

func New(phase Phase, code Code, loc token.Location, args ...any) *Error {
	return &Error{Phase: phase, Code: code, Loc: loc, Args: args}
}

func (e *Error) Error() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		tmpl = "error"
	}
	msg := fmt.Sprintf(tmpl, e.Args...)
	if e.Loc.Line > 0 {
		return fmt.Sprintf("%s error at %s [%s]: %s", e.Phase, e.Loc, e.Code, msg)
	}
	return fmt.Sprintf("%s error [%s]: %s", e.Phase, e.Code, msg)
}

// IOError wraps a filesystem or encoding failure as a diagnostic,
// matching the phase/code/rendering contract every other stage uses.
func IOError(err error) *Error {
	return &Error{Phase: PhaseIO, Code: ErrIO, Args: []any{err.Error()}}
}
